package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/viper"

	"doclint/internal/formatters"
	"doclint/internal/sourceparse"
)

const (
	// DirName is the per-project configuration directory.
	DirName = ".doclint"
	// FileName is the configuration file name without extension.
	FileName = "config"
	// EnvPrefix prefixes environment overrides, e.g. DOCLINT_LOGGING_LEVEL.
	EnvPrefix = "DOCLINT"
	// CurrentVersion is the schema version written by Save.
	CurrentVersion = 1
)

// SupportedConfigVersions lists schema versions Validate accepts.
var SupportedConfigVersions = []int{1}

// OutputFormats lists the report formats the CLI can print.
var OutputFormats = []string{"human", "json", "yaml"}

// FileFormat selects the encoding of a saved configuration.
type FileFormat string

const (
	FileJSON FileFormat = "json"
	FileTOML FileFormat = "toml"
)

// Config represents the complete doclint configuration
type Config struct {
	Version int `json:"version" toml:"version" mapstructure:"version"`

	// Root is the directory the configuration was loaded for. Not persisted.
	Root string `json:"-" toml:"-" mapstructure:"-"`

	// Language is the default source language when it cannot be detected from a file name.
	Language string `json:"language" toml:"language" mapstructure:"language"`

	Tags    TagsConfig    `json:"tags" toml:"tags" mapstructure:"tags"`
	Output  OutputConfig  `json:"output" toml:"output" mapstructure:"output"`
	Logging LoggingConfig `json:"logging" toml:"logging" mapstructure:"logging"`
}

// TagsConfig selects which tag formatters run
type TagsConfig struct {
	Enabled []string `json:"enabled" toml:"enabled" mapstructure:"enabled"`
}

// OutputConfig contains report output settings
type OutputConfig struct {
	Format string `json:"format" toml:"format" mapstructure:"format"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level string `json:"level" toml:"level" mapstructure:"level"`
	// File, when set, receives a copy of every log line. Relative paths resolve against Root.
	File string `json:"file,omitempty" toml:"file,omitempty" mapstructure:"file"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	tags := make([]string, 0, len(formatters.KnownTags()))
	for _, t := range formatters.KnownTags() {
		tags = append(tags, string(t))
	}

	return &Config{
		Version:  CurrentVersion,
		Root:     ".",
		Language: string(sourceparse.LangJavaScript),
		Tags: TagsConfig{
			Enabled: tags,
		},
		Output: OutputConfig{
			Format: "human",
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
	}
}

// Dir returns the configuration directory for a project root.
func Dir(root string) string {
	return filepath.Join(root, DirName)
}

// Path returns the configuration file path for a project root and encoding.
func Path(root string, format FileFormat) string {
	return filepath.Join(Dir(root), FileName+"."+string(format))
}

// Exists reports whether any configuration file exists under root.
func Exists(root string) bool {
	for _, f := range []FileFormat{FileJSON, FileTOML} {
		if _, err := os.Stat(Path(root, f)); err == nil {
			return true
		}
	}
	return false
}

// LoadConfig loads configuration from .doclint/config.{json,toml}, then applies
// DOCLINT_* environment overrides. A missing file yields the defaults.
func LoadConfig(root string) (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetConfigName(FileName)
	v.AddConfigPath(Dir(root))

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.Root = root

	return &cfg, nil
}

// setDefaults registers every key so environment overrides reach Unmarshal.
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("version", d.Version)
	v.SetDefault("language", d.Language)
	v.SetDefault("tags.enabled", d.Tags.Enabled)
	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.file", d.Logging.File)
}

// Save writes the configuration to .doclint/config.<format> and returns the path.
func (c *Config) Save(root string, format FileFormat) (string, error) {
	if err := os.MkdirAll(Dir(root), 0755); err != nil {
		return "", err
	}
	path := Path(root, format)

	switch format {
	case FileJSON:
		data, err := json.MarshalIndent(c, "", "  ")
		if err != nil {
			return "", err
		}
		return path, os.WriteFile(path, append(data, '\n'), 0644)
	case FileTOML:
		f, err := os.Create(path)
		if err != nil {
			return "", err
		}
		defer func() { _ = f.Close() }()
		if err := toml.NewEncoder(f).Encode(c); err != nil {
			return "", err
		}
		return path, nil
	default:
		return "", &ConfigError{Field: "format", Message: "unsupported file format " + string(format)}
	}
}

// EnabledTags returns the configured tags as formatter identifiers.
func (c *Config) EnabledTags() ([]formatters.Tag, error) {
	tags := make([]formatters.Tag, 0, len(c.Tags.Enabled))
	for _, name := range c.Tags.Enabled {
		t, err := formatters.ParseTag(strings.TrimSpace(name))
		if err != nil {
			return nil, &ConfigError{Field: "tags.enabled", Message: err.Error()}
		}
		tags = append(tags, t)
	}
	return tags, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	supported := false
	for _, v := range SupportedConfigVersions {
		if c.Version == v {
			supported = true
			break
		}
	}
	if !supported {
		return &ConfigError{Field: "version", Message: fmt.Sprintf("unsupported config version %d", c.Version)}
	}

	if _, err := sourceparse.ParseLanguage(c.Language); err != nil {
		return &ConfigError{Field: "language", Message: err.Error()}
	}

	if _, err := c.EnabledTags(); err != nil {
		return err
	}

	validFormat := false
	for _, f := range OutputFormats {
		if c.Output.Format == f {
			validFormat = true
			break
		}
	}
	if !validFormat {
		return &ConfigError{Field: "output.format", Message: "unsupported output format " + c.Output.Format}
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return &ConfigError{Field: "logging.level", Message: "unknown level " + c.Logging.Level}
	}

	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
