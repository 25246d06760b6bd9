// Package config loads the service configuration from a TOML file.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config is the full service configuration
type Config struct {
	Server         ServerConfig   `toml:"server"`
	Database       DatabaseConfig `toml:"database"`
	AuthService    ServiceConfig  `toml:"auth_service"`
	BranchService  ServiceConfig  `toml:"branch_service"`
	JourneyService ServiceConfig  `toml:"journey_service"`
	Metrics        MetricsConfig  `toml:"metrics"`
	Logs           LogsConfig     `toml:"logs"`
}

// ServerConfig configures the HTTP listener
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // seconds
	WriteTimeout    int `toml:"write_timeout"`    // seconds
	IdleTimeout     int `toml:"idle_timeout"`     // seconds
	ShutdownTimeout int `toml:"shutdown_timeout"` // seconds
}

// DatabaseConfig configures the PostgreSQL connection pool
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // seconds
}

// DSN builds the lib/pq connection string
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// ServiceConfig configures one upstream integration client. Username and
// password are only used by the auth service login.
type ServiceConfig struct {
	URL      string `toml:"url"`
	Timeout  int    `toml:"timeout"` // seconds
	Username string `toml:"username,omitempty"`
	Password string `toml:"password,omitempty"`
}

// MetricsConfig configures the Prometheus endpoint
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// LogsConfig configures the file logger
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Load reads and validates the configuration file
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("server.http_port must be positive")
	}
	if c.Database.Host == "" {
		return fmt.Errorf("database.host is required")
	}
	if c.AuthService.URL == "" {
		return fmt.Errorf("auth_service.url is required")
	}
	if c.BranchService.URL == "" {
		return fmt.Errorf("branch_service.url is required")
	}
	if c.JourneyService.URL == "" {
		return fmt.Errorf("journey_service.url is required")
	}
	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("metrics.path is required when metrics are enabled")
	}
	return nil
}
