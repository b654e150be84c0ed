package config

import (
	"strings"
	"testing"
	"time"
)

// TestValidate_DefaultConfig verifica que los valores por defecto son válidos
func TestValidate_DefaultConfig(t *testing.T) {
	if err := NewValidator().Validate(GetDefaultConfig()); err != nil {
		t.Fatalf("Expected default config to be valid, got: %v", err)
	}
}

// TestValidateCoinGecko_FailFast tests market API validation with specific edge cases
func TestValidateCoinGecko_FailFast(t *testing.T) {
	validator := NewValidator()
	base := GetDefaultConfig().CoinGecko

	tests := []struct {
		name          string
		mutate        func(c *CoinGeckoConfig)
		expectError   bool
		errorContains string
	}{
		{
			name:        "Válido - Configuración por defecto",
			mutate:      func(c *CoinGeckoConfig) {},
			expectError: false,
		},
		{
			name:        "Válido - Reintentos habilitados",
			mutate:      func(c *CoinGeckoConfig) { c.MaxAttempts = 3 },
			expectError: false,
		},
		{
			name:          "Inválido - URL vacía",
			mutate:        func(c *CoinGeckoConfig) { c.BaseURL = "" },
			expectError:   true,
			errorContains: "cannot be empty",
		},
		{
			name:          "Inválido - Esquema ws",
			mutate:        func(c *CoinGeckoConfig) { c.BaseURL = "ws://api.coingecko.com" },
			expectError:   true,
			errorContains: "must be http or https",
		},
		{
			name:          "Inválido - Timeout cero",
			mutate:        func(c *CoinGeckoConfig) { c.Timeout = 0 },
			expectError:   true,
			errorContains: "timeout must be positive",
		},
		{
			name:          "Inválido - Request timeout mayor que timeout",
			mutate:        func(c *CoinGeckoConfig) { c.RequestTimeout = time.Minute },
			expectError:   true,
			errorContains: "should not exceed timeout",
		},
		{
			name:          "Inválido - Cero intentos",
			mutate:        func(c *CoinGeckoConfig) { c.MaxAttempts = 0 },
			expectError:   true,
			errorContains: "max_attempts must be between 1-5",
		},
		{
			name:          "Inválido - Demasiados intentos",
			mutate:        func(c *CoinGeckoConfig) { c.MaxAttempts = 10 },
			expectError:   true,
			errorContains: "max_attempts must be between 1-5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			err := validator.validateCoinGecko(cfg)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for config %+v, but got none", cfg)
				} else if tt.errorContains != "" && !strings.Contains(err.Error(), tt.errorContains) {
					t.Errorf("Expected error to contain '%s', got: %v", tt.errorContains, err)
				}
			} else if err != nil {
				t.Errorf("Expected no error for config %+v, got: %v", cfg, err)
			}
		})
	}
}

// TestValidateDisplay tests timezone and chart window validation
func TestValidateDisplay(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name          string
		config        DisplayConfig
		expectError   bool
		errorContains string
	}{
		{
			name:        "Válido - UTC",
			config:      DisplayConfig{Timezone: "UTC", ChartDays: 7},
			expectError: false,
		},
		{
			name:        "Válido - Zona vacía",
			config:      DisplayConfig{ChartDays: 30},
			expectError: false,
		},
		{
			name:          "Inválido - Zona desconocida",
			config:        DisplayConfig{Timezone: "Mars/Olympus", ChartDays: 7},
			expectError:   true,
			errorContains: "invalid display timezone",
		},
		{
			name:          "Inválido - Cero días",
			config:        DisplayConfig{Timezone: "UTC", ChartDays: 0},
			expectError:   true,
			errorContains: "chart_days",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.validateDisplay(tt.config)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for config %+v, but got none", tt.config)
				} else if !strings.Contains(err.Error(), tt.errorContains) {
					t.Errorf("Expected error to contain '%s', got: %v", tt.errorContains, err)
				}
			} else if err != nil {
				t.Errorf("Expected no error for config %+v, got: %v", tt.config, err)
			}
		})
	}
}

// TestValidate_WrapsSection verifies the failing section is named in the error
func TestValidate_WrapsSection(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		section string
	}{
		{"server", func(c *Config) { c.Server.Port = 70000 }, "server config validation failed"},
		{"shutdown", func(c *Config) { c.Server.ShutdownTimeout = 10 * time.Minute }, "server config validation failed"},
		{"logging level", func(c *Config) { c.Logging.Level = "verbose" }, "logging config validation failed"},
		{"logging format", func(c *Config) { c.Logging.Format = "xml" }, "logging config validation failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := GetDefaultConfig()
			tt.mutate(cfg)

			err := NewValidator().Validate(cfg)
			if err == nil || !strings.Contains(err.Error(), tt.section) {
				t.Errorf("Expected error containing %q, got: %v", tt.section, err)
			}
		})
	}
}
