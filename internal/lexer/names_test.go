package lexer

import "testing"

func TestTranslateName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"is_null", "null?"},
		{"is_even", "even?"},
		{"is_char_alphabetic", "char-alphabetic?"},
		{"string_to_list", "string->list"},
		{"list_to_vector", "list->vector"},
		{"exact_to_inexact", "exact->inexact"},
		{"vector_set", "vector-set!"},
		{"string_set", "string-set!"},
		{"set_box", "set-box!"},
		{"set_car", "set-car!"},
		{"char_eq", "char="},
		{"char_lt", "char<"},
		{"char_le", "char<="},
		{"char_gt", "char>"},
		{"char_ge", "char>="},
		{"fx_add", "fx+"},
		{"fx_sub", "fx-"},
		{"fx_mul", "fx*"},
		{"fx_div", "fx/"},
		{"sort_mut", "sort!"},
		{"append_mut", "append!"},
		{"list_length", "list-length"},
		{"x", "x"},
		{"is_", "is-"},
		{"_to_", "-to-"},
	}

	for _, tt := range tests {
		if got := TranslateName(tt.in); got != tt.want {
			t.Errorf("TranslateName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsSymbolicConstant(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"RED", true},
		{"GREEN_LIGHT", true},
		{"HTTP_404", true},
		{"red", false},
		{"Red", false},
		{"_", false},
		{"X", true},
	}

	for _, tt := range tests {
		if got := isSymbolicConstant(tt.in); got != tt.want {
			t.Errorf("isSymbolicConstant(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
