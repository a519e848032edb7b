package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrNoDefault is returned when no default value exists for a config key.
var ErrNoDefault = errors.New("no default exists")

// ErrInvalidKey is returned when a config key contains invalid characters.
var ErrInvalidKey = errors.New("invalid config key")

var envKeyReplacer = strings.NewReplacer(".", "_")

// Entry is a single configuration key with its value and description.
type Entry struct {
	Key         string `json:"key" yaml:"key"`
	Value       any    `json:"value" yaml:"value"`
	Description string `json:"description" yaml:"description"`
}

// DefaultEntries returns the default configuration entries.
// These seed viper defaults and back the settings listing.
func DefaultEntries() []Entry {
	d := DefaultConfig()
	return []Entry{
		// ===================
		// Server
		// ===================
		{
			Key:         "server.host",
			Value:       d.Server.Host,
			Description: "Interface the review server binds to",
		},
		{
			Key:         "server.port",
			Value:       d.Server.Port,
			Description: "Port the review server listens on",
		},

		// ===================
		// Review
		// ===================
		{
			Key:         "review.internal_prefix",
			Value:       d.Review.InternalPrefix,
			Description: "Fields whose name starts with this prefix are hidden from the editor",
		},
		{
			Key:         "review.export_dir",
			Value:       d.Review.ExportDir,
			Description: "Directory for saved exports (empty uses {home}/exports)",
		},
		{
			Key:         "review.export_format",
			Value:       d.Review.ExportFormat,
			Description: "Default format for saved exports: json or xlsx",
		},

		// ===================
		// Logging
		// ===================
		{
			Key:         "log.level",
			Value:       d.Log.Level,
			Description: "Log level: debug, info, warn, error",
		},
		{
			Key:         "log.format",
			Value:       d.Log.Format,
			Description: "Log format: text or json",
		},
	}
}

// GetDefault returns the default entry for a config key.
// Returns nil if no default exists for the key.
func GetDefault(key string) *Entry {
	for _, entry := range DefaultEntries() {
		if entry.Key == key {
			return &entry
		}
	}
	return nil
}

// Entries returns every known key with its value from cfg.
func (c *Config) Entries() []Entry {
	current := map[string]any{
		"server.host":            c.Server.Host,
		"server.port":            c.Server.Port,
		"review.internal_prefix": c.Review.InternalPrefix,
		"review.export_dir":      c.Review.ExportDir,
		"review.export_format":   c.Review.ExportFormat,
		"log.level":              c.Log.Level,
		"log.format":             c.Log.Format,
	}
	entries := DefaultEntries()
	for i := range entries {
		entries[i].Value = current[entries[i].Key]
	}
	return entries
}

// Lookup returns the entry for key with its value from cfg.
func (c *Config) Lookup(key string) (*Entry, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}
	for _, e := range c.Entries() {
		if e.Key == key {
			return &e, nil
		}
	}
	return nil, fmt.Errorf("%w for key %q", ErrNoDefault, key)
}

// ValidateKey checks if a config key contains only allowed characters.
// Valid keys contain: letters, digits, dots, underscores, and hyphens.
func ValidateKey(key string) error {
	if key == "" {
		return fmt.Errorf("%w: key cannot be empty", ErrInvalidKey)
	}
	for i, r := range key {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '.' && r != '_' && r != '-' {
			return fmt.Errorf("%w: invalid character %q at position %d", ErrInvalidKey, r, i)
		}
	}
	// Don't allow keys starting or ending with dots
	if key[0] == '.' || key[len(key)-1] == '.' {
		return fmt.Errorf("%w: key cannot start or end with a dot", ErrInvalidKey)
	}
	return nil
}
