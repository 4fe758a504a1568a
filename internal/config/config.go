package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config represents the main structure mapping the entire application configuration.
// This struct uses mapstructure tags to map YAML/JSON keys to Go struct fields.
type Config struct {
	// Server configuration section containing HTTP server settings
	Server struct {
		Port           int      `mapstructure:"port"`            // HTTP server port (default: 8080)
		Mode           string   `mapstructure:"mode"`            // Gin mode: debug, release or test
		BaseURL        string   `mapstructure:"base_url"`        // Public URL of the site
		TrustedProxies []string `mapstructure:"trusted_proxies"` // Proxies gin may trust for ClientIP
	} `mapstructure:"server"`

	// Database configuration section
	Database struct {
		Driver   string `mapstructure:"driver"`    // sqlite or postgres
		Name     string `mapstructure:"name"`      // SQLite database file name
		DSN      string `mapstructure:"dsn"`       // PostgreSQL connection string
		LogLevel string `mapstructure:"log_level"` // GORM logger level: silent, error, warn, info
	} `mapstructure:"database"`

	Log struct {
		Level      string `mapstructure:"level"`
		Format     string `mapstructure:"format"` // json or console
		File       string `mapstructure:"file"`   // optional rotating log file
		MaxSizeMB  int    `mapstructure:"max_size_mb"`
		MaxBackups int    `mapstructure:"max_backups"`
		MaxAgeDays int    `mapstructure:"max_age_days"`
	} `mapstructure:"log"`

	// Monitor configuration for project link health checking
	Monitor struct {
		Enabled         bool `mapstructure:"enabled"`
		IntervalMinutes int  `mapstructure:"interval_minutes"` // Interval in minutes between link checks
		TimeoutSeconds  int  `mapstructure:"timeout_seconds"`  // Per-request timeout
	} `mapstructure:"monitor"`
}

// LoadConfig loads the application configuration from ./configs/config.yaml,
// a .env file and environment variables, in increasing order of precedence.
func LoadConfig() (*Config, error) {
	// .env is optional; real environment variables win over it
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Warning: could not read .env file: %v", err)
	}
	return Load(viper.New(), "./configs")
}

// Load reads the configuration with the given viper instance, searching the
// config file in paths.
func Load(v *viper.Viper, paths ...string) (*Config, error) {
	// Replace dots with underscores in environment variable names
	// e.g., "server.port" becomes "SERVER_PORT"
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// Missing config file is not fatal, defaults and env apply
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			log.Println("Config file not found, using default values")
		} else {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// setDefaults registers every key with viper so AutomaticEnv can override it.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.base_url", "http://localhost:8080")
	v.SetDefault("server.trusted_proxies", []string{})
	v.SetDefault("database.driver", DriverSQLite)
	v.SetDefault("database.name", "portfolio.db")
	v.SetDefault("database.dsn", "")
	v.SetDefault("database.log_level", "warn")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 100)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)
	v.SetDefault("monitor.enabled", false)
	v.SetDefault("monitor.interval_minutes", 30)
	v.SetDefault("monitor.timeout_seconds", 5)
}

// Validate checks the values that would otherwise fail late at startup.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port: %d is out of range", c.Server.Port)
	}
	switch c.Server.Mode {
	case "", "debug", "release", "test":
	default:
		return fmt.Errorf("server.mode: unknown mode %q", c.Server.Mode)
	}
	switch c.Database.Driver {
	case DriverSQLite:
		if c.Database.Name == "" {
			return errors.New("database.name: is required for the sqlite driver")
		}
	case DriverPostgres:
		if c.Database.DSN == "" {
			return errors.New("database.dsn: is required for the postgres driver")
		}
	default:
		return fmt.Errorf("database.driver: unsupported driver %q", c.Database.Driver)
	}
	if c.Monitor.Enabled && c.Monitor.IntervalMinutes <= 0 {
		return errors.New("monitor.interval_minutes: must be positive when the monitor is enabled")
	}
	if c.Monitor.Enabled && c.Monitor.TimeoutSeconds <= 0 {
		return errors.New("monitor.timeout_seconds: must be positive when the monitor is enabled")
	}
	return nil
}
