// =============================================================================
// Purchase Order Generator - Configuration Module
// =============================================================================
//
// This module is responsible for loading the main application configuration.
//
// SOURCES (highest priority first):
//   1. Environment variables with the POGEN_ prefix (e.g., POGEN_OUTPUT_DIR)
//   2. A .env file in the working directory (loaded into the environment)
//   3. The YAML config file (config.yaml by default, optional)
//   4. Built-in defaults
//
// The per-user contact details and saved vendors are NOT part of this file;
// they live in the settings file managed by the settings package.
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "POGEN"

// Default column names of the shop order export.
const (
	DefaultNameColumn     = "Lineitem name"
	DefaultQuantityColumn = "Lineitem quantity"
)

// =============================================================================
// MAIN CONFIGURATION STRUCTURE
// =============================================================================

// MainConfig holds the global application configuration.
type MainConfig struct {
	// =========================================================================
	// INPUT SETTINGS
	// =========================================================================

	// InputFile is the order export loaded when no --input flag is given.
	// Default: "orders_export.csv"
	InputFile string `mapstructure:"input_file" yaml:"input_file"`

	// NameColumn is the header of the line item name column.
	// Default: "Lineitem name"
	NameColumn string `mapstructure:"name_column" yaml:"name_column"`

	// QuantityColumn is the header of the line item quantity column.
	// Default: "Lineitem quantity"
	QuantityColumn string `mapstructure:"quantity_column" yaml:"quantity_column"`

	// CSV contains settings for reading delimited text exports.
	CSV CSVSettings `mapstructure:"csv" yaml:"csv"`

	// NameRules are rewrites applied to every item name before the size
	// suffix is extracted. Empty by default.
	NameRules []TransformationRule `mapstructure:"name_rules" yaml:"name_rules"`

	// =========================================================================
	// OUTPUT SETTINGS
	// =========================================================================

	// OutputDir is the directory generated documents are written to when the
	// output path is not given explicitly.
	// Default: "."
	OutputDir string `mapstructure:"output_dir" yaml:"output_dir"`

	// OutputNameFormat defines the default output file name.
	// Placeholders:
	//   {product}   - Sanitized product name, or "Multiple_Items"
	//   {timestamp} - Current timestamp (YYYYMMDD_HHMMSS)
	//   {uuid}      - A random UUID
	// Default: "PO_{product}_{timestamp}.pdf"
	OutputNameFormat string `mapstructure:"output_name_format" yaml:"output_name_format"`

	// SettingsFile is the path of the persisted contact/vendor settings.
	// Default: "settings.yaml"
	SettingsFile string `mapstructure:"settings_file" yaml:"settings_file"`

	// =========================================================================
	// LOGGING SETTINGS
	// =========================================================================

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`

	// LogFormat is "console" or "json".
	// Default: "console"
	LogFormat string `mapstructure:"log_format" yaml:"log_format"`

	// LogFile is "stdout", "stderr" or a file path.
	// Default: "stderr"
	LogFile string `mapstructure:"log_file" yaml:"log_file"`
}

// =============================================================================
// CSV SETTINGS STRUCTURE
// =============================================================================

// CSVSettings contains settings for parsing CSV files.
type CSVSettings struct {
	// Delimiter is the character used to separate fields in the CSV.
	// Common values: "," (comma), "|" (pipe), "\t" (tab)
	// Default: ","
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
}

// =============================================================================
// TRANSFORMATION RULE STRUCTURE
// =============================================================================

// TransformationRule is a single rewrite applied to item names.
type TransformationRule struct {
	// Type is the type of transformation to apply.
	// Supported types:
	//   - "trim"          : Remove leading and trailing whitespace
	//   - "replace"       : Replace Find with Value
	//   - "regex_replace" : Replace matches of the Find pattern with Value
	//   - "uppercase"     : Convert to uppercase
	//   - "lowercase"     : Convert to lowercase
	//   - "normalize_whitespace" : Collapse runs of whitespace to one space
	Type string `mapstructure:"type" yaml:"type"`

	// Find is the substring or pattern for "replace" and "regex_replace".
	Find string `mapstructure:"find" yaml:"find,omitempty"`

	// Value is the replacement text.
	Value string `mapstructure:"value" yaml:"value,omitempty"`
}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// LoadMainConfig loads the main configuration.
//
// PARAMETERS:
//   - configPath: The path to the YAML configuration file. A missing file is
//     not an error; defaults and environment variables are used instead.
//
// RETURNS:
//   - A pointer to the MainConfig struct.
//   - An error if the file exists but cannot be parsed, or the result is invalid.
func LoadMainConfig(configPath string) (*MainConfig, error) {
	// A missing .env is the normal case.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigType("yaml")
	setViperDefaults(v)

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			v.SetConfigFile(configPath)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg MainConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	applyMainConfigDefaults(&cfg)

	if err := validateMainConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setViperDefaults registers every key so AutomaticEnv can override it.
func setViperDefaults(v *viper.Viper) {
	v.SetDefault("input_file", "orders_export.csv")
	v.SetDefault("name_column", DefaultNameColumn)
	v.SetDefault("quantity_column", DefaultQuantityColumn)
	v.SetDefault("csv.delimiter", ",")
	v.SetDefault("output_dir", ".")
	v.SetDefault("output_name_format", "PO_{product}_{timestamp}.pdf")
	v.SetDefault("settings_file", "settings.yaml")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")
	v.SetDefault("log_file", "stderr")
}

// Default returns the configuration used when nothing is configured.
func Default() *MainConfig {
	cfg := &MainConfig{}
	applyMainConfigDefaults(cfg)
	return cfg
}

// applyMainConfigDefaults sets default values for any unset configuration options.
func applyMainConfigDefaults(config *MainConfig) {
	if config.InputFile == "" {
		config.InputFile = "orders_export.csv"
	}
	if config.NameColumn == "" {
		config.NameColumn = DefaultNameColumn
	}
	if config.QuantityColumn == "" {
		config.QuantityColumn = DefaultQuantityColumn
	}
	if config.CSV.Delimiter == "" {
		config.CSV.Delimiter = ","
	}
	if config.OutputDir == "" {
		config.OutputDir = "."
	}
	if config.OutputNameFormat == "" {
		config.OutputNameFormat = "PO_{product}_{timestamp}.pdf"
	}
	if config.SettingsFile == "" {
		config.SettingsFile = "settings.yaml"
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
	if config.LogFormat == "" {
		config.LogFormat = "console"
	}
	if config.LogFile == "" {
		config.LogFile = "stderr"
	}
}

// validateMainConfig validates the main configuration.
func validateMainConfig(config *MainConfig) error {
	switch strings.ToLower(config.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log_level %q", config.LogLevel)
	}

	switch config.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("unknown log_format %q", config.LogFormat)
	}

	for i, rule := range config.NameRules {
		switch rule.Type {
		case "trim", "uppercase", "lowercase", "normalize_whitespace":
		case "replace", "regex_replace":
			if rule.Find == "" {
				return fmt.Errorf("name_rules[%d]: %s requires find", i, rule.Type)
			}
		default:
			return fmt.Errorf("name_rules[%d]: unknown transformation type %q", i, rule.Type)
		}
	}

	return nil
}
