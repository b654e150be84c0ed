package config

import (
	"time"
)

// Config represents the complete application configuration
type Config struct {
	App       AppConfig       `yaml:"app" mapstructure:"app"`
	Server    ServerConfig    `yaml:"server" mapstructure:"server"`
	CoinGecko CoinGeckoConfig `yaml:"coingecko" mapstructure:"coingecko"`
	Display   DisplayConfig   `yaml:"display" mapstructure:"display"`
	Logging   LoggingConfig   `yaml:"logging" mapstructure:"logging"`
}

// AppConfig identifies the running service
type AppConfig struct {
	Name        string `yaml:"name" mapstructure:"name"`
	Version     string `yaml:"version" mapstructure:"version"`
	Environment string `yaml:"environment" mapstructure:"environment"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port            int           `yaml:"port" mapstructure:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout" mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" mapstructure:"shutdown_timeout"`
}

// CoinGeckoConfig contains the market data API configuration
type CoinGeckoConfig struct {
	BaseURL        string        `yaml:"base_url" mapstructure:"base_url"`
	APIKey         string        `yaml:"api_key" mapstructure:"api_key"`
	UserAgent      string        `yaml:"user_agent" mapstructure:"user_agent"`
	Timeout        time.Duration `yaml:"timeout" mapstructure:"timeout"`
	RequestTimeout time.Duration `yaml:"request_timeout" mapstructure:"request_timeout"`
	// MaxAttempts is the total number of GETs per call; 1 disables retries.
	MaxAttempts int `yaml:"max_attempts" mapstructure:"max_attempts"`
}

// DisplayConfig controls presentation details of the views
type DisplayConfig struct {
	Timezone  string `yaml:"timezone" mapstructure:"timezone"`
	ChartDays int    `yaml:"chart_days" mapstructure:"chart_days"`
}

// LoggingConfig contains logging system configuration
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Location resolves the display timezone, falling back to UTC.
func (d DisplayConfig) Location() *time.Location {
	if d.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(d.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// GetDefaultConfig returns the default configuration
func GetDefaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:        "crypto-tracker",
			Version:     "1.0.0",
			Environment: "development",
		},
		Server: ServerConfig{
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 30 * time.Second,
		},
		CoinGecko: CoinGeckoConfig{
			BaseURL:        "https://api.coingecko.com/api/v3",
			UserAgent:      "crypto-tracker/1.0",
			Timeout:        15 * time.Second,
			RequestTimeout: 10 * time.Second,
			MaxAttempts:    1,
		},
		Display: DisplayConfig{
			Timezone:  "UTC",
			ChartDays: 7,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}
