package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Command CommandConfig `toml:"command"`
	Catalog CatalogConfig `toml:"catalog"`
	Storage StorageConfig `toml:"storage"`
	Logging LoggingConfig `toml:"logging"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port int    `toml:"port"`
	Host string `toml:"host"`
}

// CommandConfig describes how the underlying notebook CLI is invoked.
type CommandConfig struct {
	// Binary is the executable spawned for every tool invocation.
	Binary string `toml:"binary"`
	// Args are tokens placed before the command name (e.g. a script path
	// when Binary is an interpreter).
	Args []string `toml:"args"`
	// Timeout bounds a single invocation ("120s", "5m", ...).
	Timeout string `toml:"timeout"`
	// MaxConcurrent bounds the number of in-flight child processes.
	MaxConcurrent int `toml:"max_concurrent"`
}

// GetTimeout parses and returns the invocation timeout duration.
func (c *CommandConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		return 120 * time.Second
	}
	return d
}

// CatalogConfig contains command catalog settings.
type CatalogConfig struct {
	// File is an optional JSON catalog that replaces the built-in
	// notebook command set when present.
	File string `toml:"file"`
}

// StorageConfig contains storage layer settings.
type StorageConfig struct {
	Badger BadgerConfig `toml:"badger"`
}

// BadgerConfig contains BadgerDB-specific settings.
// An empty Path disables invocation history.
type BadgerConfig struct {
	Path string `toml:"path"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level      string   `toml:"level"`
	Format     string   `toml:"format"`
	Outputs    []string `toml:"outputs"`
	FilePath   string   `toml:"file_path"`
	MaxSizeMB  int      `toml:"max_size_mb"`
	MaxBackups int      `toml:"max_backups"`
}

// LoadFromFile loads configuration with priority: defaults -> file -> env.
func LoadFromFile(path string) (*Config, error) {
	if path == "" {
		return LoadFromFiles()
	}
	return LoadFromFiles(path)
}

// LoadFromFiles loads configuration from multiple files with priority:
// defaults -> file1 -> file2 -> ... -> env.
// Later files override earlier files.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		err = toml.Unmarshal(data, config)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies TOOLBRIDGE_* environment variable overrides to config.
func applyEnvOverrides(config *Config) {
	if port := os.Getenv("TOOLBRIDGE_SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if host := os.Getenv("TOOLBRIDGE_SERVER_HOST"); host != "" {
		config.Server.Host = host
	}
	if binary := os.Getenv("TOOLBRIDGE_COMMAND_BINARY"); binary != "" {
		config.Command.Binary = binary
	}
	if timeout := os.Getenv("TOOLBRIDGE_COMMAND_TIMEOUT"); timeout != "" {
		config.Command.Timeout = timeout
	}
	if file := os.Getenv("TOOLBRIDGE_CATALOG_FILE"); file != "" {
		config.Catalog.File = file
	}
	if badgerPath := os.Getenv("TOOLBRIDGE_BADGER_PATH"); badgerPath != "" {
		config.Storage.Badger.Path = badgerPath
	}
	if level := os.Getenv("TOOLBRIDGE_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if format := os.Getenv("TOOLBRIDGE_LOG_FORMAT"); format != "" {
		config.Logging.Format = format
	}
}

// ApplyFlagOverrides applies command-line flag overrides to config.
func ApplyFlagOverrides(config *Config, port int, host string) {
	if port > 0 {
		config.Server.Port = port
	}
	if host != "" {
		config.Server.Host = host
	}
}

// Validate reports mandatory fields that are missing or invalid.
func (c *Config) Validate() []string {
	var issues []string
	if c.Command.Binary == "" {
		issues = append(issues, "command.binary must name the notebook CLI executable")
	}
	if c.Command.Timeout != "" {
		if _, err := time.ParseDuration(c.Command.Timeout); err != nil {
			issues = append(issues, fmt.Sprintf("command.timeout %q is not a valid duration", c.Command.Timeout))
		}
	}
	if c.Command.MaxConcurrent < 0 {
		issues = append(issues, "command.max_concurrent must not be negative")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		issues = append(issues, fmt.Sprintf("server.port %d is out of range", c.Server.Port))
	}
	return issues
}
