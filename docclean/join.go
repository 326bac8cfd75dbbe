package docclean

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// maxHeadingLen is the cutoff below which a title-cased line is
// treated as a standalone heading.
const maxHeadingLen = 40

// sectionMarkerRe matches dotted numeral outline labels: "3", "3.2",
// "3.2.1".
var sectionMarkerRe = regexp.MustCompile(`^\d+(\.\d+)*$`)

// sentenceEnders close a sentence or clause; a line ending in one is
// emitted as-is rather than merged forward.
var sentenceEnders = []string{".", "!", "?", ";", ":", "”", `"`, "’", "'"}

var bulletMarkers = []string{"•", "-", "*", "–", "—"}

// JoinWrappedLines merges soft-wrapped sentence fragments into single
// lines. Blank lines, bullets, section markers, short title-case
// headings and sentence-final lines all block merging. A line ending
// in a hyphen whose successor starts lowercase is a word split across
// the break: the hyphen is dropped and the fragments concatenated
// with no space.
//
// The pass is greedy and forward-only. A freshly merged pair is not
// reconsidered against the line after it, so a continuation chain
// spanning three or more physical lines keeps its later breaks.
func JoinWrappedLines(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))

	for i := 0; i < len(lines); {
		cur := lines[i]
		curTrim := strings.TrimSpace(cur)

		if curTrim == "" {
			out = append(out, "")
			i++
			continue
		}
		if i == len(lines)-1 {
			out = append(out, strings.TrimRightFunc(cur, unicode.IsSpace))
			break
		}

		next := lines[i+1]
		nextTrim := strings.TrimSpace(next)
		curLine := strings.TrimRightFunc(cur, unicode.IsSpace)

		switch {
		case nextTrim == "":
			out = append(out, curLine)
			i++
		case isBullet(cur) || isBullet(next):
			out = append(out, curLine)
			i++
		case isSectionMarker(cur) || isSectionMarker(next):
			out = append(out, curLine)
			i++
		case utf8.RuneCountInString(curTrim) <= maxHeadingLen && isTitleCase(curTrim):
			out = append(out, curLine)
			i++
		case endsSentence(curLine):
			out = append(out, curLine)
			i++
		case strings.HasSuffix(curLine, "-") && startsLower(nextTrim):
			// hyphenation repair: "informa-" + "tion" => "information"
			out = append(out, strings.TrimSuffix(curLine, "-")+strings.TrimLeftFunc(next, unicode.IsSpace))
			i += 2
		case startsLower(nextTrim):
			out = append(out, curLine+" "+strings.TrimLeftFunc(next, unicode.IsSpace))
			i += 2
		default:
			out = append(out, curLine)
			i++
		}
	}
	return strings.Join(out, "\n")
}

// isBullet reports whether the line (ignoring leading whitespace)
// starts with a bullet marker.
func isBullet(line string) bool {
	s := strings.TrimLeftFunc(line, unicode.IsSpace)
	for _, m := range bulletMarkers {
		if strings.HasPrefix(s, m) {
			return true
		}
	}
	return false
}

func isSectionMarker(line string) bool {
	return sectionMarkerRe.MatchString(strings.TrimSpace(line))
}

func endsSentence(line string) bool {
	for _, p := range sentenceEnders {
		if strings.HasSuffix(line, p) {
			return true
		}
	}
	return false
}

func startsLower(trimmed string) bool {
	r, _ := utf8.DecodeRuneInString(trimmed)
	return unicode.IsLower(r)
}

// isTitleCase reports whether every cased run in s starts with an
// uppercase rune followed only by lowercase, with at least one cased
// rune present. "Chapter One" and "Overview 2" qualify; "This is"
// does not.
func isTitleCase(s string) bool {
	hasCased := false
	prevCased := false
	for _, r := range s {
		switch {
		case unicode.IsUpper(r) || unicode.IsTitle(r):
			if prevCased {
				return false
			}
			hasCased = true
			prevCased = true
		case unicode.IsLower(r):
			if !prevCased {
				return false
			}
			hasCased = true
		default:
			prevCased = false
		}
	}
	return hasCased
}
