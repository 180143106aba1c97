package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sable-lang/sable/internal/diag"
	"github.com/sable-lang/sable/internal/lexer"
	"github.com/sable-lang/sable/internal/sexpr"
	"github.com/sable-lang/sable/internal/translate"
)

const version = "0.1.0"

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: sable <command> [options]\n")
		fmt.Fprintf(os.Stderr, "\nCommands:\n")
		fmt.Fprintf(os.Stderr, "  translate <file>   Translate a Sable source file to canonical forms\n")
		fmt.Fprintf(os.Stderr, "  check <file>       Check a Sable source file and report diagnostics\n")
		fmt.Fprintf(os.Stderr, "  tokens <file>      Dump the post-layout token stream\n")
		fmt.Fprintf(os.Stderr, "  repl               Start an interactive translation session\n")
		fmt.Fprintf(os.Stderr, "  version            Print the version\n")
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	command := flag.Arg(0)
	args := flag.Args()[1:]

	switch command {
	case "translate":
		os.Exit(runTranslate(args))
	case "check":
		os.Exit(runCheck(args))
	case "tokens":
		os.Exit(runTokens(args))
	case "repl":
		os.Exit(runRepl(args))
	case "version":
		fmt.Println(version)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		flag.Usage()
		os.Exit(1)
	}
}

func loadSource(args []string, command string) (src, filename string, ok bool) {
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "Usage: sable %s <file>\n", command)
		return "", "", false
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "sable: %v\n", err)
		return "", "", false
	}
	return string(data), args[0], true
}

func report(src, filename string, diags []diag.Diagnostic) {
	formatter := diag.NewFormatter(os.Stderr)
	formatter.AddSource(filename, src)
	for _, d := range diags {
		formatter.Format(d)
	}
}

func runTranslate(args []string) int {
	src, filename, ok := loadSource(args, "translate")
	if !ok {
		return 1
	}

	forms, diags := translate.Translate(src, translate.WithFilename(filename))
	if len(diags) > 0 {
		report(src, filename, diags)
		return 1
	}

	for _, form := range forms {
		fmt.Println(sexpr.Write(form))
	}
	return 0
}

func runCheck(args []string) int {
	src, filename, ok := loadSource(args, "check")
	if !ok {
		return 1
	}

	_, diags := translate.Translate(src, translate.WithFilename(filename))
	if len(diags) > 0 {
		report(src, filename, diags)
		return 1
	}

	fmt.Printf("%s: ok\n", filename)
	return 0
}

func runTokens(args []string) int {
	src, filename, ok := loadSource(args, "tokens")
	if !ok {
		return 1
	}

	stream := lexer.NewStream(src)
	stream.SetFilename(filename)
	stream.SetReader(sexpr.StandardReader{})

	for {
		tok := stream.NextToken()
		mark := ""
		if tok.Virtual {
			mark = "\tvirtual"
		}
		fmt.Printf("%d:%d\t%s\t%q%s\n",
			tok.Span.Line, tok.Span.Column, tok.Type, tok.Raw, mark)
		if tok.Type == lexer.EOF {
			break
		}
	}

	if errs := stream.Errors(); len(errs) > 0 {
		var diags []diag.Diagnostic
		for _, err := range errs {
			diags = append(diags, err.ToDiagnostic())
		}
		report(src, filename, diags)
		return 1
	}
	return 0
}
