package docclean

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultOutDir is where cleaned artifacts land when no explicit
// output path is given.
const DefaultOutDir = "data/processed"

// CleanConfig is the entire tunable surface of the cleaning stages.
// The header/footer scan zones may overlap on short pages; both rules
// then apply independently per line.
type CleanConfig struct {
	// HeaderScanLines counts lines from the page top eligible for
	// boilerplate removal.
	HeaderScanLines int `yaml:"header_scan_lines"`
	// FooterScanLines counts lines from the page bottom.
	FooterScanLines int `yaml:"footer_scan_lines"`
	// HeaderFooterExact lines are stripped on a verbatim match after
	// trimming.
	HeaderFooterExact []string `yaml:"header_footer_exact"`
	// HeaderFooterPrefixes strip lines by prefix. The marker
	// "Chapter" matches case-insensitively; all others are
	// case-sensitive.
	HeaderFooterPrefixes []string `yaml:"header_footer_prefixes"`
}

// DefaultCleanConfig returns the boilerplate heuristics tuned for the
// FG22/5 guidance corpus this pipeline was first built against. Keep
// the lists small and general; corpus-specific patterns belong in a
// config file.
func DefaultCleanConfig() CleanConfig {
	return CleanConfig{
		HeaderScanLines: 10,
		FooterScanLines: 3,
		HeaderFooterExact: []string{
			"Financial Conduct Authority",
			"FG22/5",
		},
		HeaderFooterPrefixes: []string{
			"FG22/5 Final non-Handbook Guidance",
			"Chapter",
		},
	}
}

func (c *CleanConfig) isZero() bool {
	return c.HeaderScanLines == 0 && c.FooterScanLines == 0 &&
		len(c.HeaderFooterExact) == 0 && len(c.HeaderFooterPrefixes) == 0
}

// Config configures a Cleaner.
type Config struct {
	// Clean holds the boilerplate heuristics. The zero value means
	// "use DefaultCleanConfig".
	Clean CleanConfig `yaml:"clean"`

	// OutDir is the default artifact directory (default:
	// "data/processed").
	OutDir string `yaml:"out_dir"`

	// CatalogPath, if set, names the SQLite run catalog.
	CatalogPath string `yaml:"catalog_path"`

	// Source yields raw per-page text. Defaults to the pdftext
	// extractor.
	Source PageSource `yaml:"-"`

	// Logger for debug/error messages.
	Logger *slog.Logger `yaml:"-"`
}

func (c *Config) defaults() {
	if c.Clean.isZero() {
		c.Clean = DefaultCleanConfig()
	}
	if c.Clean.HeaderScanLines < 0 {
		c.Clean.HeaderScanLines = 0
	}
	if c.Clean.FooterScanLines < 0 {
		c.Clean.FooterScanLines = 0
	}
	if c.OutDir == "" {
		c.OutDir = DefaultOutDir
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// LoadConfigFile reads a YAML configuration file and applies defaults
// for anything it omits.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("docclean: parse config %s: %w", path, err)
	}

	cfg.defaults()
	return &cfg, nil
}
