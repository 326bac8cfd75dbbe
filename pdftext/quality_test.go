package pdftext

import (
	"strings"
	"testing"
)

func TestPrintableRatio(t *testing.T) {
	if r := printableRatio(""); r != 1.0 {
		t.Errorf("empty text ratio = %f, want 1.0", r)
	}
	if r := printableRatio("clean readable text"); r != 1.0 {
		t.Errorf("clean text ratio = %f, want 1.0", r)
	}

	// Private Use Area runes are the signature of broken font
	// encodings and must drag the ratio down.
	junk := strings.Repeat("\uE000", 50) + strings.Repeat("a", 50)
	if r := printableRatio(junk); r != 0.5 {
		t.Errorf("half-junk ratio = %f, want 0.5", r)
	}
}

func TestWordlikeRatio(t *testing.T) {
	if r := wordlikeRatio(""); r != 0 {
		t.Errorf("empty text ratio = %f, want 0", r)
	}
	if r := wordlikeRatio("normal words in sentence"); r != 1.0 {
		t.Errorf("normal words ratio = %f, want 1.0", r)
	}

	// Single runes and over-long tokens are not word-like.
	mixed := "a b proper words " + strings.Repeat("x", 30)
	got := wordlikeRatio(mixed)
	if got != 0.4 {
		t.Errorf("mixed ratio = %f, want 0.4", got)
	}
}

func TestQualityNeedsOCR(t *testing.T) {
	tests := []struct {
		name string
		q    Quality
		want bool
	}{
		{"sparse pages with images", Quality{CharsPerPage: 10, HasImageStreams: true, PrintableRatio: 1.0}, true},
		{"sparse pages without images", Quality{CharsPerPage: 10, PrintableRatio: 1.0}, false},
		{"dense text", Quality{CharsPerPage: 1800, PrintableRatio: 0.99}, false},
		{"garbled text", Quality{CharsPerPage: 1800, PrintableRatio: 0.5}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.q.NeedsOCR(); got != tt.want {
				t.Errorf("NeedsOCR() = %v, want %v", got, tt.want)
			}
		})
	}
}
