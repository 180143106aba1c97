package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	"github.com/sable-lang/sable/internal/diag"
	"github.com/sable-lang/sable/internal/sexpr"
	"github.com/sable-lang/sable/internal/translate"
)

const (
	historyFile = ".sable_history"
	promptMain  = "sable> "
	promptCont  = "  ...> "
)

func runRepl(_ []string) int {
	fmt.Printf("Sable %s\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit.\n", version)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	formatter := diag.NewFormatter(os.Stderr)

	for {
		src, ok := readUnit(ln)
		if !ok {
			fmt.Println()
			return 0
		}

		trimmed := strings.TrimSpace(src)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, ":") {
			if strings.ToLower(trimmed) == ":quit" {
				return 0
			}
			fmt.Println("unknown command. Type :quit to exit.")
			continue
		}

		forms, diags := translate.Translate(src, translate.WithFilename("<repl>"))
		if len(diags) > 0 {
			formatter.AddSource("<repl>", src)
			for _, d := range diags {
				formatter.Format(d)
			}
			continue
		}

		for _, form := range forms {
			fmt.Println(sexpr.Write(form))
		}
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))
	}
}

// readUnit collects lines until the input translates, or fails with an
// error that more input cannot fix.
func readUnit(ln *liner.State) (string, bool) {
	var b strings.Builder

	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}

		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if err != nil {
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		_, diags := translate.Translate(src, translate.WithFilename("<repl>"))
		if needsMore(src, diags) {
			continue
		}
		return src, true
	}
}

// needsMore reports whether the diagnostics describe input that simply
// stopped short rather than input that is wrong.
func needsMore(src string, diags []diag.Diagnostic) bool {
	for _, d := range diags {
		switch d.Code {
		case diag.CodeLayoutUnclosedBlock,
			diag.CodeLexUnterminatedString,
			diag.CodeLexUnterminatedChar,
			diag.CodeLexUnterminatedBlockComment:
			return true
		}
		if d.Stage == diag.StageParser && d.Span.End >= len([]rune(src)) {
			return true
		}
	}
	return false
}
