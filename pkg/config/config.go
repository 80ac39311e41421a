package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/beetlebugorg/mif/pkg/mif"
	"gopkg.in/yaml.v3"
)

// Config represents the mif tool configuration
type Config struct {
	Codec   Codec   `yaml:"codec"`
	Logging Logging `yaml:"logging"`
}

// Codec contains encoding settings applied when layers are written.
// A precision of 0 selects the library default and -1 the shortest form.
type Codec struct {
	CoordPrecision   int    `yaml:"coord_precision"`
	DecimalPrecision int    `yaml:"decimal_precision"`
	Delimiter        string `yaml:"delimiter"`
	Charset          string `yaml:"charset"`
}

// Logging contains logging configuration
type Logging struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	defaults := mif.DefaultDumpOptions()
	return &Config{
		Codec: Codec{
			CoordPrecision:   defaults.CoordPrecision,
			DecimalPrecision: defaults.DecimalPrecision,
		},
		Logging: Logging{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from the specified path. Keys missing from
// the file keep their default values.
func LoadConfig(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
	}
	return config, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Codec.CoordPrecision < -1 || c.Codec.CoordPrecision > 17 {
		return fmt.Errorf("coord_precision must be between -1 and 17, got %d", c.Codec.CoordPrecision)
	}
	if c.Codec.DecimalPrecision < -1 || c.Codec.DecimalPrecision > 17 {
		return fmt.Errorf("decimal_precision must be between -1 and 17, got %d", c.Codec.DecimalPrecision)
	}
	if d := c.Codec.Delimiter; d != "" && (len(d) != 1 || d == `"` || d == `\`) {
		return fmt.Errorf("delimiter must be a single character other than a quote or backslash, got %q", d)
	}
	if _, err := parseLevel(c.Logging.Level); err != nil {
		return err
	}
	return nil
}

// DumpOptions returns the write options described by the configuration.
func (c *Config) DumpOptions() mif.DumpOptions {
	opts := mif.DefaultDumpOptions()
	opts.CoordPrecision = c.Codec.CoordPrecision
	opts.DecimalPrecision = c.Codec.DecimalPrecision
	return opts
}

// ApplyHeader overrides the header delimiter and charset when configured.
func (c *Config) ApplyHeader(h *mif.Header) {
	if c.Codec.Delimiter != "" {
		h.Delimiter = c.Codec.Delimiter[0]
	}
	if c.Codec.Charset != "" {
		h.Charset = c.Codec.Charset
	}
}

// SlogLevel returns the configured log level.
func (c *Config) SlogLevel() slog.Level {
	level, _ := parseLevel(c.Logging.Level)
	return level
}

// WriteYAML writes the configuration as YAML.
func (c *Config) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return enc.Close()
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}
