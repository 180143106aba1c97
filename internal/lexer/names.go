package lexer

import "strings"

// Identifier name translation. The rules are ordered and the first match
// wins; an identifier matching none of them only has its underscores
// replaced by hyphens. Raw always keeps the source spelling.

type suffixRule struct {
	suffix string
	op     string
}

// Comparison/arithmetic suffix rules, tried in listed order.
var suffixRules = []suffixRule{
	{"_eq", "="},
	{"_lt", "<"},
	{"_le", "<="},
	{"_gt", ">"},
	{"_ge", ">="},
	{"_add", "+"},
	{"_sub", "-"},
	{"_mul", "*"},
	{"_div", "/"},
}

// TranslateName rewrites a surface identifier into its canonical Scheme
// spelling: is_null -> null?, string_to_list -> string->list,
// vector_set -> vector-set!, set_box -> set-box!, fx_add -> fx+,
// sort_mut -> sort!.
func TranslateName(name string) string {
	if rest, ok := strings.CutPrefix(name, "is_"); ok && rest != "" {
		return hyphenate(rest) + "?"
	}

	if before, after, ok := strings.Cut(name, "_to_"); ok && before != "" && after != "" {
		return hyphenate(before) + "->" + hyphenate(after)
	}

	if base, ok := strings.CutSuffix(name, "_set"); ok && base != "" {
		return hyphenate(base) + "-set!"
	}

	if rest, ok := strings.CutPrefix(name, "set_"); ok && rest != "" {
		return "set-" + hyphenate(rest) + "!"
	}

	for _, r := range suffixRules {
		if base, ok := strings.CutSuffix(name, r.suffix); ok && base != "" {
			return hyphenate(base) + r.op
		}
	}

	if base, ok := strings.CutSuffix(name, "_mut"); ok && base != "" {
		return hyphenate(base) + "!"
	}

	return hyphenate(name)
}

func hyphenate(s string) string {
	return strings.ReplaceAll(s, "_", "-")
}

// isSymbolicConstant reports whether an identifier is written in the
// all-uppercase convention: at least one letter and no lowercase letters.
func isSymbolicConstant(name string) bool {
	hasLetter := false
	for _, r := range name {
		if r >= 'a' && r <= 'z' {
			return false
		}
		if r >= 'A' && r <= 'Z' {
			hasLetter = true
		}
	}
	return hasLetter
}
