// =============================================================================
// NZFCC Generator - Configuration Module
// =============================================================================
//
// This module loads the generator configuration (nzfcc.yaml).
//
// CONFIGURATION FILE:
//   snapshot_path:   categories.json
//   output_dir:      pkg/nzfcc
//   package_name:    nzfcc
//   groups_file:     category_groups_gen.go
//   codes_file:      nzfcc_codes_gen.go
//   group_id_prefix: group_
//   code_id_prefix:  nzfcc_
//   log_level:       info
//   log_format:      console
//   export:
//     output_dir:       reports
//     file_name_format: nzfcc_{timestamp}_{uuid}.xlsx
//
// Every key is optional. Unknown keys are rejected so a typo does not
// silently fall back to a default.
//
// =============================================================================

package config

import (
	"bytes"
	"errors"
	"fmt"
	"go/token"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file used when --config is not given.
const DefaultPath = "nzfcc.yaml"

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the generator configuration.
type Config struct {
	// =========================================================================
	// INPUT
	// =========================================================================

	// SnapshotPath is the NZFCC categories.json file.
	// Default: "categories.json"
	SnapshotPath string `yaml:"snapshot_path" validate:"required"`

	// GroupIDPrefix is the prefix every group stable ID must carry.
	// Default: "group_"
	GroupIDPrefix string `yaml:"group_id_prefix" validate:"required"`

	// CodeIDPrefix is the prefix every category stable ID must carry.
	// Default: "nzfcc_"
	CodeIDPrefix string `yaml:"code_id_prefix" validate:"required"`

	// =========================================================================
	// GENERATED OUTPUT
	// =========================================================================

	// OutputDir is where the generated Go files are written.
	// Default: "pkg/nzfcc"
	OutputDir string `yaml:"output_dir" validate:"required"`

	// PackageName is the Go package name of the generated files.
	// Default: "nzfcc"
	PackageName string `yaml:"package_name" validate:"required,go_ident"`

	// GroupsFile is the file name for the CategoryGroup enumeration.
	// Default: "category_groups_gen.go"
	GroupsFile string `yaml:"groups_file" validate:"required,endswith=.go"`

	// CodesFile is the file name for the NzfccCode enumeration.
	// Default: "nzfcc_codes_gen.go"
	CodesFile string `yaml:"codes_file" validate:"required,endswith=.go,nefield=GroupsFile"`

	// =========================================================================
	// LOGGING SETTINGS
	// =========================================================================

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`

	// LogFormat selects the log encoding.
	// Valid values: "console", "json"
	// Default: "console"
	LogFormat string `yaml:"log_format" validate:"oneof=console json"`

	// =========================================================================
	// SPREADSHEET EXPORT
	// =========================================================================

	// Export configures the `export` command.
	Export ExportConfig `yaml:"export"`
}

// ExportConfig holds settings for the XLSX taxonomy report.
type ExportConfig struct {
	// OutputDir is where workbooks are written.
	// Default: "reports"
	OutputDir string `yaml:"output_dir" validate:"required"`

	// FileNameFormat is the workbook file name.
	// Placeholders:
	//   {uuid}      - A random UUID
	//   {timestamp} - Current timestamp (YYYYMMDD_HHMMSS)
	//   {date}      - Current date (YYYY-MM-DD)
	//   {snapshot}  - Snapshot file name without extension
	// Default: "nzfcc_{timestamp}_{uuid}.xlsx"
	FileNameFormat string `yaml:"file_name_format" validate:"required,endswith=.xlsx"`
}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// Load reads the configuration file at path.
//
// PARAMETERS:
//   - path: The configuration file. A missing file at DefaultPath yields the
//     defaults; any other missing file is an error.
//
// RETURNS:
//   - The configuration with defaults applied and validated.
//   - An error if the file cannot be read, parsed or validated.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
	case errors.Is(err, os.ErrNotExist) && path == DefaultPath:
		data = nil
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if len(bytes.TrimSpace(data)) > 0 {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	ApplyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults sets default values for any unset configuration options.
func ApplyDefaults(cfg *Config) {
	if cfg.SnapshotPath == "" {
		cfg.SnapshotPath = "categories.json"
	}
	if cfg.GroupIDPrefix == "" {
		cfg.GroupIDPrefix = "group_"
	}
	if cfg.CodeIDPrefix == "" {
		cfg.CodeIDPrefix = "nzfcc_"
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "pkg/nzfcc"
	}
	if cfg.PackageName == "" {
		cfg.PackageName = "nzfcc"
	}
	if cfg.GroupsFile == "" {
		cfg.GroupsFile = "category_groups_gen.go"
	}
	if cfg.CodesFile == "" {
		cfg.CodesFile = "nzfcc_codes_gen.go"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "console"
	}
	if cfg.Export.OutputDir == "" {
		cfg.Export.OutputDir = "reports"
	}
	if cfg.Export.FileNameFormat == "" {
		cfg.Export.FileNameFormat = "nzfcc_{timestamp}_{uuid}.xlsx"
	}
}

// Validate checks the configuration. Call it again after applying CLI
// overrides.
func (c *Config) Validate() error {
	v := validator.New()
	_ = v.RegisterValidation("go_ident", func(fl validator.FieldLevel) bool {
		return token.IsIdentifier(fl.Field().String())
	})

	if err := v.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%s: failed %q check (value %q)", fe.Namespace(), fe.Tag(), fe.Value())
		}
		return err
	}
	return nil
}
