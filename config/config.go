package config

import (
	"os"
	"strconv"
)

const (
	// EnvMaxMarkdownBytes is the environment variable name for the input size limit.
	EnvMaxMarkdownBytes = "MD2DOCX_MAX_MARKDOWN_BYTES"

	// DefaultMaxMarkdownBytes is the default maximum accepted Markdown input size (10 MiB).
	DefaultMaxMarkdownBytes int64 = 10 << 20
)

// Config holds runtime configuration sourced from environment variables.
type Config struct {
	MaxMarkdownBytes int64
}

// MaxMarkdownMB returns the configured limit in whole megabytes.
func (c *Config) MaxMarkdownMB() int64 {
	return c.MaxMarkdownBytes >> 20
}

// Load reads Config from environment variables, falling back to defaults for
// missing or invalid values.
func Load() *Config {
	cfg := &Config{MaxMarkdownBytes: DefaultMaxMarkdownBytes}
	if v := os.Getenv(EnvMaxMarkdownBytes); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			cfg.MaxMarkdownBytes = n
		}
	}
	return cfg
}
