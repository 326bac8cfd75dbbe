package docclean

import (
	"strings"
	"testing"
)

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"crlf", "a\r\nb", "a\nb"},
		{"bare cr", "a\rb", "a\nb"},
		{"tab to space", "a\tb", "a b"},
		{"trailing spaces stripped", "line one   \nline two\t\t", "line one\nline two"},
		{"leading spaces kept", "  indented\nplain", "  indented\nplain"},
		{"single blank kept", "a\n\nb", "a\n\nb"},
		{"two blanks collapse", "a\n\n\nb", "a\n\nb"},
		{"five blanks collapse", "a\n\n\n\n\n\nb", "a\n\nb"},
		{"whitespace-only line is blank", "a\n   \n\t\nb", "a\n\nb"},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizePage(tt.in)
			if got != tt.want {
				t.Errorf("NormalizePage(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizePage_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		"a\r\nb\rc\td",
		"one\n\n\n\ntwo   \n  three\n",
		"   \n\n\t\n",
		strings.Repeat("x\n\n\n", 50),
	}
	for _, in := range inputs {
		once := NormalizePage(in)
		twice := NormalizePage(once)
		if once != twice {
			t.Errorf("not idempotent for %q:\nonce:  %q\ntwice: %q", in, once, twice)
		}
	}
}

func TestNormalizePage_BlankRunCollapse(t *testing.T) {
	// Any run of N>=2 blank lines becomes exactly one blank line.
	for n := 2; n <= 8; n++ {
		in := "top" + strings.Repeat("\n", n+1) + "bottom"
		got := NormalizePage(in)
		if got != "top\n\nbottom" {
			t.Errorf("n=%d: got %q, want %q", n, got, "top\n\nbottom")
		}
	}
}
