package docclean

import (
	"strings"
	"testing"
)

func TestIsBoilerplate(t *testing.T) {
	cfg := DefaultCleanConfig()

	tests := []struct {
		line string
		want bool
	}{
		{"", false},
		{"   ", false},
		{"1", true},
		{"12", true},
		{"103", true},
		{"1234", false},
		{"12a", false},
		{"-3", false},
		{"Financial Conduct Authority", true},
		{"  Financial Conduct Authority  ", true},
		{"financial conduct authority", false},
		{"FG22/5", true},
		{"FG22/5 Final non-Handbook Guidance for firms", true},
		{"fg22/5 final non-handbook guidance", false},
		{"Chapter 3", true},
		{"chapter 3", true},
		{"CHAPTER 3", true},
		{"Chapters and verses", true},
		{"A chapter on testing", false},
		{"Substantive policy text", false},
	}

	for _, tt := range tests {
		if got := isBoilerplate(tt.line, cfg); got != tt.want {
			t.Errorf("isBoilerplate(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestStripBoilerplate_ZoneGating(t *testing.T) {
	cfg := CleanConfig{
		HeaderScanLines:   1,
		FooterScanLines:   1,
		HeaderFooterExact: []string{"RUNNING HEADER"},
	}

	// The exact match in the interior must survive; the same content
	// in the header zone must not.
	in := strings.Join([]string{
		"RUNNING HEADER",
		"body line one",
		"RUNNING HEADER",
		"body line two",
		"42",
	}, "\n")

	got := StripBoilerplate(in, cfg)
	want := strings.Join([]string{
		"body line one",
		"RUNNING HEADER",
		"body line two",
	}, "\n")
	if got != want {
		t.Errorf("StripBoilerplate = %q, want %q", got, want)
	}
}

func TestStripBoilerplate_ZeroZones(t *testing.T) {
	cfg := CleanConfig{HeaderFooterExact: []string{"HEADER"}}
	in := "HEADER\n1\nHEADER"
	if got := StripBoilerplate(in, cfg); got != in {
		t.Errorf("zero scan zones must strip nothing, got %q", got)
	}
}

func TestStripBoilerplate_OverlappingZones(t *testing.T) {
	// A 2-line page with generous zones: both rules apply to every
	// line independently.
	cfg := CleanConfig{
		HeaderScanLines:   10,
		FooterScanLines:   3,
		HeaderFooterExact: []string{"TITLE"},
	}
	got := StripBoilerplate("TITLE\n7", cfg)
	if got != "" {
		t.Errorf("expected both lines stripped, got %q", got)
	}
}

func TestStripBoilerplate_PreservesOrder(t *testing.T) {
	cfg := CleanConfig{HeaderScanLines: 2, FooterScanLines: 1}
	in := "12\nalpha\nbeta\ngamma\n3"
	want := "alpha\nbeta\ngamma"
	if got := StripBoilerplate(in, cfg); got != want {
		t.Errorf("StripBoilerplate = %q, want %q", got, want)
	}
}
