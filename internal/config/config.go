// =============================================================================
// Outreach Merger - Configuration Module
// =============================================================================
//
// This module loads the application configuration from a YAML file. The
// configuration covers output placement and naming, the blank-cell fill
// string, and the three template lists (subject, copy, chaser). Every
// setting has a default, and every setting except the template lists can be
// overridden by a command-line flag.
//
// Template lists are ordered. Order matters: it is the rotation sequence,
// row i receives entry (i mod length).
//
// EXAMPLE:
//   output_dir: ./output
//   output_format: csv
//   blank_fill: ""
//   templates:
//     copy:
//       - text: "Hi {{first_name}}, we saw you work in {{niche}}."
//       - file: ./templates/copy_b.txt
//     subject:
//       - text: "Quick question, {{first_name}}"
//
// =============================================================================

package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Output formats accepted by the exporter.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// =============================================================================
// CONFIGURATION STRUCTURES
// =============================================================================

// Config holds the application configuration for one merge operation.
type Config struct {
	// OutputDir is the directory where the merged export is written.
	// Default: "./output"
	OutputDir string `yaml:"output_dir"`

	// OutputFormat selects the export format.
	// Valid values: "csv" (Email,Email Copy export) or "xlsx" (full
	// outreach workbook with subject, chaser, and tracking columns).
	// Default: "csv"
	OutputFormat string `yaml:"output_format"`

	// OutputNameFormat defines the output file name. Placeholders:
	//   {name}      - input file name without extension
	//   {uuid}      - a random UUID
	//   {timestamp} - current timestamp (YYYYMMDD_HHMMSS)
	//   {ext}       - output format extension (csv or xlsx)
	// Default: "{name}_{uuid}.{ext}"
	OutputNameFormat string `yaml:"output_name_format"`

	// BlankFill is substituted when a placeholder matches a column but the
	// row's cell is blank. The outreach team sets this to a marker such as
	// "[MISSING]" when they want blanks to be visible in review.
	// Default: "" (blank cells merge as empty strings)
	BlankFill string `yaml:"blank_fill"`

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// Templates contains the ordered template lists.
	Templates TemplatesConfig `yaml:"templates"`
}

// TemplatesConfig holds the three ordered template lists. Copy templates
// are required before any merge; subject templates are required only for
// XLSX output; chaser templates are always optional.
type TemplatesConfig struct {
	// Subject contains the subject line templates, in rotation order.
	Subject []TemplateSource `yaml:"subject"`

	// Copy contains the email copy templates, in rotation order.
	Copy []TemplateSource `yaml:"copy"`

	// Chaser contains the follow-up copy templates, in rotation order.
	Chaser []TemplateSource `yaml:"chaser"`
}

// TemplateSource is a single template, supplied either inline or as a file
// path. Exactly one of Text and File should be set; when both are set, Text
// wins.
type TemplateSource struct {
	// Text is the template content, inline in the configuration file.
	Text string `yaml:"text,omitempty"`

	// File is a path to a file containing the template content. The file
	// is read verbatim, including any newlines.
	File string `yaml:"file,omitempty"`
}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// Load reads the configuration from a YAML file, applies defaults, and
// validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// LoadOrDefault behaves like Load, but a missing file is not an error: the
// default configuration is returned instead. This lets the CLI run entirely
// from flags without a config file on disk.
func LoadOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := &Config{}
		applyDefaults(cfg)
		return cfg, nil
	}

	return Load(path)
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(cfg *Config) {
	if cfg.OutputDir == "" {
		cfg.OutputDir = "./output"
	}
	if cfg.OutputFormat == "" {
		cfg.OutputFormat = FormatCSV
	}
	if cfg.OutputNameFormat == "" {
		cfg.OutputNameFormat = "{name}_{uuid}.{ext}"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}

// Validate checks the configuration for values the pipeline cannot work
// with, normalizing the output format to lowercase. Template list contents
// are checked separately at merge time, since an empty copy list is the one
// configuration error the merge itself owns. Callers that override settings
// after loading (command-line flags) re-run Validate on the result.
func (c *Config) Validate() error {
	switch strings.ToLower(c.OutputFormat) {
	case FormatCSV, FormatXLSX:
		c.OutputFormat = strings.ToLower(c.OutputFormat)
	default:
		return fmt.Errorf("output_format must be %q or %q, got %q", FormatCSV, FormatXLSX, c.OutputFormat)
	}

	return nil
}

// =============================================================================
// TEMPLATE RESOLUTION
// =============================================================================

// ResolveTemplates materializes a template list: inline entries are used
// as-is, file entries are read from disk. Order is preserved. Entries with
// neither text nor file are skipped, as are entries whose text is only
// whitespace.
func ResolveTemplates(sources []TemplateSource) ([]string, error) {
	templates := make([]string, 0, len(sources))

	for i, src := range sources {
		switch {
		case src.Text != "":
			if strings.TrimSpace(src.Text) == "" {
				continue
			}
			templates = append(templates, src.Text)
		case src.File != "":
			content, err := os.ReadFile(src.File)
			if err != nil {
				return nil, fmt.Errorf("failed to read template %d from %s: %w", i+1, src.File, err)
			}
			templates = append(templates, string(content))
		}
	}

	return templates, nil
}
