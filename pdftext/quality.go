package pdftext

import (
	"strings"
	"unicode"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Quality captures metrics about a PDF text extraction.
type Quality struct {
	PageCount       int     `json:"page_count"`
	CharsPerPage    float64 `json:"chars_per_page"`
	PrintableRatio  float64 `json:"printable_ratio"`
	WordlikeRatio   float64 `json:"wordlike_ratio"`
	HasImageStreams bool    `json:"has_image_streams"`
}

// NeedsOCR reports whether the document likely needs OCR: near-empty
// pages alongside embedded images, or text dominated by junk runes.
func (q *Quality) NeedsOCR() bool {
	return (q.CharsPerPage < 50 && q.HasImageStreams) || q.PrintableRatio < 0.85
}

func measureQuality(pctx *model.Context, fullText string, totalRunes int) *Quality {
	var perPage float64
	if pctx.PageCount > 0 {
		perPage = float64(totalRunes) / float64(pctx.PageCount)
	}
	return &Quality{
		PageCount:       pctx.PageCount,
		CharsPerPage:    perPage,
		PrintableRatio:  printableRatio(fullText),
		WordlikeRatio:   wordlikeRatio(fullText),
		HasImageStreams: hasImageStreams(pctx),
	}
}

// printableRatio returns the share of printable runes in text.
// Junk runes (Private Use Area, U+FFFD, control chars other than
// \n\r\t) count against the ratio; they are the signature of broken
// font encodings.
func printableRatio(text string) float64 {
	if text == "" {
		return 1.0
	}
	total, printable := 0, 0
	for _, r := range text {
		total++
		if isJunkRune(r) {
			continue
		}
		if unicode.IsPrint(r) || r == '\n' || r == '\r' || r == '\t' {
			printable++
		}
	}
	return float64(printable) / float64(total)
}

func isJunkRune(r rune) bool {
	if r >= 0xE000 && r <= 0xF8FF {
		return true
	}
	if r == 0xFFFD {
		return true
	}
	return r < 0x0020 && r != '\n' && r != '\r' && r != '\t'
}

// wordlikeRatio returns the share of tokens with a plausible word
// length (2-15 runes).
func wordlikeRatio(text string) float64 {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return 0
	}
	wordlike := 0
	for _, f := range fields {
		if n := len([]rune(f)); n >= 2 && n <= 15 {
			wordlike++
		}
	}
	return float64(wordlike) / float64(len(fields))
}

// hasImageStreams reports whether any page carries an image XObject.
func hasImageStreams(pctx *model.Context) bool {
	if pctx.Optimize == nil {
		return false
	}
	for pageNr := 1; pageNr <= pctx.PageCount; pageNr++ {
		if len(pdfcpu.ImageObjNrs(pctx, pageNr)) > 0 {
			return true
		}
	}
	return false
}
