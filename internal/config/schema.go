package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Config holds docreview configuration.
// Stored at: {home}/config.yaml
type Config struct {
	Server ServerCfg `mapstructure:"server" yaml:"server"`
	Review ReviewCfg `mapstructure:"review" yaml:"review"`
	Log    LogCfg    `mapstructure:"log" yaml:"log"`
}

// ServerCfg configures the HTTP host.
type ServerCfg struct {
	Host string `mapstructure:"host" yaml:"host"`
	Port string `mapstructure:"port" yaml:"port"`
}

// ReviewCfg configures how a review session is presented and exported.
type ReviewCfg struct {
	// InternalPrefix hides fields whose name starts with it (default: "_").
	InternalPrefix string `mapstructure:"internal_prefix" yaml:"internal_prefix"`
	// ExportDir is where saved exports go. Empty means {home}/exports.
	// Supports ${ENV_VAR} syntax.
	ExportDir string `mapstructure:"export_dir" yaml:"export_dir"`
	// ExportFormat is "json" or "xlsx".
	ExportFormat string `mapstructure:"export_format" yaml:"export_format"`
}

// LogCfg configures the slog handler built by the CLI.
type LogCfg struct {
	Level  string `mapstructure:"level" yaml:"level"`   // debug, info, warn, error
	Format string `mapstructure:"format" yaml:"format"` // text, json
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerCfg{
			Host: "127.0.0.1",
			Port: "8080",
		},
		Review: ReviewCfg{
			InternalPrefix: "_",
			ExportDir:      "",
			ExportFormat:   "json",
		},
		Log: LogCfg{
			Level:  "info",
			Format: "text",
		},
	}
}

// Validate checks enumerated values.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Review.ExportFormat) {
	case "", "json", "xlsx":
	default:
		return fmt.Errorf("%w: review.export_format %q", ErrInvalidValue, c.Review.ExportFormat)
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalidValue, c.Log.Format)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// ResolveExportDir returns the configured export directory with environment
// references expanded, or fallback when none is set. Relative paths are
// made absolute.
func (c *Config) ResolveExportDir(fallback string) string {
	dir := ResolveEnvVars(c.Review.ExportDir)
	if dir == "" {
		return fallback
	}
	if abs, err := filepath.Abs(dir); err == nil {
		return abs
	}
	return dir
}
