package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration options for the task tracker
type Config struct {
	Database    DatabaseConfig    `toml:"database"`
	Display     DisplayConfig     `toml:"display"`
	Application ApplicationConfig `toml:"application"`

	// ConfigFile is the TOML file the loader reads; not itself part of the file.
	ConfigFile string `toml:"-"`
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Path           string        `toml:"path" env:"TD_DB"`
	Dir            string        `toml:"dir" env:"TD_DB_DIR"`
	Filename       string        `toml:"filename" env:"TD_DB_FILENAME"`
	QueryTimeout   time.Duration `toml:"query_timeout" env:"TD_DB_QUERY_TIMEOUT"`
	WriteTimeout   time.Duration `toml:"write_timeout" env:"TD_DB_WRITE_TIMEOUT"`
	DirPermissions uint32        `toml:"dir_permissions" env:"TD_DB_DIR_PERMISSIONS"`
}

// DisplayConfig holds the glyphs used when rendering tasks
type DisplayConfig struct {
	WarningSign string `toml:"warning" env:"TD_SIGN_WARNING"`
	DoneSign    string `toml:"done" env:"TD_SIGN_DONE"`
	NotDoneSign string `toml:"not_done" env:"TD_SIGN_NOT_DONE"`
	Color       bool   `toml:"color" env:"TD_DISPLAY_COLOR"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `toml:"timeout" env:"TD_APP_TIMEOUT"`
	Verbose bool          `toml:"verbose" env:"TD_APP_VERBOSE"`
}

// Signs are the three display glyphs for a task line.
type Signs struct {
	Warning string
	Done    string
	NotDone string
}

// DefaultSigns returns the glyphs used when nothing is configured.
func DefaultSigns() Signs {
	return Signs{
		Warning: "⚠",
		Done:    "✔",
		NotDone: " ",
	}
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDir := filepath.Join(homeDir, ".td")
	signs := DefaultSigns()

	return &Config{
		Database: DatabaseConfig{
			Dir:            defaultDir,
			Filename:       "td.db",
			QueryTimeout:   10 * time.Second,
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0755,
		},
		Display: DisplayConfig{
			WarningSign: signs.Warning,
			DoneSign:    signs.Done,
			NotDoneSign: signs.NotDone,
			Color:       false,
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
		ConfigFile: filepath.Join(defaultDir, "config.toml"),
	}
}

// GetDatabasePath returns the full path to the database file.
// An explicit Path wins over Dir and Filename.
func (c *Config) GetDatabasePath() string {
	if c.Database.Path != "" {
		return c.Database.Path
	}
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// GetQueryTimeout returns the database query timeout
func (c *Config) GetQueryTimeout() time.Duration {
	return c.Database.QueryTimeout
}

// GetWriteTimeout returns the database write timeout
func (c *Config) GetWriteTimeout() time.Duration {
	return c.Database.WriteTimeout
}

// GetSigns returns the configured display glyphs
func (c *Config) GetSigns() Signs {
	return Signs{
		Warning: c.Display.WarningSign,
		Done:    c.Display.DoneSign,
		NotDone: c.Display.NotDoneSign,
	}
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Database configuration
	if path := os.Getenv("TD_DB"); path != "" {
		c.Database.Path = path
	}
	if dir := os.Getenv("TD_DB_DIR"); dir != "" {
		c.Database.Dir = dir
	}
	if filename := os.Getenv("TD_DB_FILENAME"); filename != "" {
		c.Database.Filename = filename
	}
	if timeout := os.Getenv("TD_DB_QUERY_TIMEOUT"); timeout != "" {
		c.Database.QueryTimeout = ParseDurationWithFallback(timeout, c.Database.QueryTimeout)
	}
	if timeout := os.Getenv("TD_DB_WRITE_TIMEOUT"); timeout != "" {
		c.Database.WriteTimeout = ParseDurationWithFallback(timeout, c.Database.WriteTimeout)
	}
	if perms := os.Getenv("TD_DB_DIR_PERMISSIONS"); perms != "" {
		c.Database.DirPermissions = ParseUint32WithFallback(perms, 8, c.Database.DirPermissions)
	}

	// Display configuration; a sign may legitimately be set to a single space
	if sign, ok := os.LookupEnv("TD_SIGN_WARNING"); ok {
		c.Display.WarningSign = sign
	}
	if sign, ok := os.LookupEnv("TD_SIGN_DONE"); ok {
		c.Display.DoneSign = sign
	}
	if sign, ok := os.LookupEnv("TD_SIGN_NOT_DONE"); ok {
		c.Display.NotDoneSign = sign
	}
	if color := os.Getenv("TD_DISPLAY_COLOR"); color != "" {
		c.Display.Color = ParseBoolWithFallback(color, c.Display.Color)
	}

	// Application configuration
	if timeout := os.Getenv("TD_APP_TIMEOUT"); timeout != "" {
		c.Application.Timeout = ParseDurationWithFallback(timeout, c.Application.Timeout)
	}
	if verbose := os.Getenv("TD_APP_VERBOSE"); verbose != "" {
		c.Application.Verbose = ParseBoolWithFallback(verbose, c.Application.Verbose)
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		if c.Database.Dir == "" {
			return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
		}
		if c.Database.Filename == "" {
			return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
		}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Database.WriteTimeout <= 0 {
		return &ConfigError{Field: "database.write_timeout", Message: "write timeout must be positive"}
	}

	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}

// ParseDurationWithFallback parses a duration string with a fallback value
func ParseDurationWithFallback(s string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	return fallback
}

// ParseBoolWithFallback parses a boolean string with a fallback value
func ParseBoolWithFallback(s string, fallback bool) bool {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return fallback
}

// ParseUint32WithFallback parses a uint32 string with a fallback value
func ParseUint32WithFallback(s string, base int, fallback uint32) uint32 {
	if u, err := strconv.ParseUint(s, base, 32); err == nil {
		return uint32(u)
	}
	return fallback
}
