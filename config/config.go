// Package config provides configuration loading and management for gorcmap.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config represents the complete gorcmap configuration
type Config struct {
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
	Export ExportConfig `yaml:"export"`
}

// ServerConfig configures the HTTP server
type ServerConfig struct {
	// Addr is the listen address (default: :5000)
	Addr string `yaml:"addr" validate:"required"`
	// ReadTimeout bounds reading a request
	ReadTimeout time.Duration `yaml:"read_timeout" validate:"gte=0"`
	// WriteTimeout bounds writing a response
	WriteTimeout time.Duration `yaml:"write_timeout" validate:"gte=0"`
	// ShutdownTimeout bounds graceful shutdown
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" validate:"gte=0"`
	// CORSOrigins lists origins allowed on /api/* ("*" allows any)
	CORSOrigins []string `yaml:"cors_origins" validate:"dive,required"`
}

// LogConfig configures logging
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
	// Format is text or json
	Format string `yaml:"format" validate:"oneof=text json"`
}

// ExportConfig configures the export engine
type ExportConfig struct {
	// DefaultTaxonomy is used when a request names none
	DefaultTaxonomy string `yaml:"default_taxonomy" validate:"oneof=original revised"`
	// CommentAuthor signs matrix cell annotations
	CommentAuthor string `yaml:"comment_author" validate:"required"`
	// Timezone is an IANA zone name or "Local" for timestamps and filenames
	Timezone string `yaml:"timezone" validate:"required"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":5000",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			CORSOrigins:     []string{"*"},
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Export: ExportConfig{
			DefaultTaxonomy: "original",
			CommentAuthor:   "GORC-MaLDReTH Tool",
			Timezone:        "Local",
		},
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := c.Export.Location(); err != nil {
		return fmt.Errorf("export.timezone: %w", err)
	}
	return nil
}

// Location resolves the configured time zone.
func (e ExportConfig) Location() (*time.Location, error) {
	if strings.EqualFold(e.Timezone, "local") {
		return time.Local, nil
	}
	return time.LoadLocation(e.Timezone)
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Server
	if other.Server.Addr != "" {
		c.Server.Addr = other.Server.Addr
	}
	if other.Server.ReadTimeout != 0 {
		c.Server.ReadTimeout = other.Server.ReadTimeout
	}
	if other.Server.WriteTimeout != 0 {
		c.Server.WriteTimeout = other.Server.WriteTimeout
	}
	if other.Server.ShutdownTimeout != 0 {
		c.Server.ShutdownTimeout = other.Server.ShutdownTimeout
	}
	if len(other.Server.CORSOrigins) > 0 {
		c.Server.CORSOrigins = other.Server.CORSOrigins
	}

	// Log
	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}
	if other.Log.Format != "" {
		c.Log.Format = other.Log.Format
	}

	// Export
	if other.Export.DefaultTaxonomy != "" {
		c.Export.DefaultTaxonomy = other.Export.DefaultTaxonomy
	}
	if other.Export.CommentAuthor != "" {
		c.Export.CommentAuthor = other.Export.CommentAuthor
	}
	if other.Export.Timezone != "" {
		c.Export.Timezone = other.Export.Timezone
	}
}
