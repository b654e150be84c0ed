package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Validator valida la configuración cargada
type Validator struct{}

// NewValidator crea una nueva instancia del validador
func NewValidator() *Validator {
	return &Validator{}
}

// Validate valida toda la configuración
func (v *Validator) Validate(config *Config) error {
	if err := v.validateServer(config.Server); err != nil {
		return fmt.Errorf("server config validation failed: %w", err)
	}

	if err := v.validateCoinGecko(config.CoinGecko); err != nil {
		return fmt.Errorf("coingecko config validation failed: %w", err)
	}

	if err := v.validateDisplay(config.Display); err != nil {
		return fmt.Errorf("display config validation failed: %w", err)
	}

	if err := v.validateLogging(config.Logging); err != nil {
		return fmt.Errorf("logging config validation failed: %w", err)
	}

	return nil
}

// validateServer valida la configuración del servidor
func (v *Validator) validateServer(config ServerConfig) error {
	if config.Port <= 0 || config.Port > 65535 {
		return fmt.Errorf("invalid port: %d, must be between 1-65535", config.Port)
	}

	if config.ReadTimeout <= 0 || config.WriteTimeout <= 0 {
		return fmt.Errorf("read_timeout and write_timeout must be positive, got: %v/%v", config.ReadTimeout, config.WriteTimeout)
	}

	if config.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown_timeout must be positive, got: %v", config.ShutdownTimeout)
	}

	if config.ShutdownTimeout > 5*time.Minute {
		return fmt.Errorf("shutdown_timeout too long: %v, max 5 minutes", config.ShutdownTimeout)
	}

	return nil
}

// validateCoinGecko valida la configuración de la API de mercado
func (v *Validator) validateCoinGecko(config CoinGeckoConfig) error {
	if err := v.validateURL(config.BaseURL, "coingecko base_url"); err != nil {
		return err
	}

	if config.Timeout <= 0 {
		return fmt.Errorf("coingecko timeout must be positive, got: %v", config.Timeout)
	}

	if config.RequestTimeout <= 0 {
		return fmt.Errorf("coingecko request_timeout must be positive, got: %v", config.RequestTimeout)
	}

	if config.RequestTimeout > config.Timeout {
		return fmt.Errorf("coingecko request_timeout (%v) should not exceed timeout (%v)", config.RequestTimeout, config.Timeout)
	}

	if config.MaxAttempts < 1 || config.MaxAttempts > 5 {
		return fmt.Errorf("coingecko max_attempts must be between 1-5, got: %d", config.MaxAttempts)
	}

	return nil
}

// validateDisplay valida zona horaria y ventana del gráfico
func (v *Validator) validateDisplay(config DisplayConfig) error {
	if config.Timezone != "" {
		if _, err := time.LoadLocation(config.Timezone); err != nil {
			return fmt.Errorf("invalid display timezone: %s: %w", config.Timezone, err)
		}
	}

	if config.ChartDays < 1 || config.ChartDays > 365 {
		return fmt.Errorf("chart_days must be between 1-365, got: %d", config.ChartDays)
	}

	return nil
}

// validateLogging valida la configuración de logging
func (v *Validator) validateLogging(config LoggingConfig) error {
	validLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLevels, config.Level) {
		return fmt.Errorf("invalid log level: %s, must be one of: %v", config.Level, validLevels)
	}

	validFormats := []string{"json", "text"}
	if !contains(validFormats, config.Format) {
		return fmt.Errorf("invalid log format: %s, must be one of: %v", config.Format, validFormats)
	}

	return nil
}

// validateURL valida que una URL sea válida para HTTP/HTTPS
func (v *Validator) validateURL(rawURL, fieldName string) error {
	if rawURL == "" {
		return fmt.Errorf("%s cannot be empty", fieldName)
	}

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid %s: %s, error: %v", fieldName, rawURL, err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("invalid %s scheme: %s, must be http or https", fieldName, parsedURL.Scheme)
	}

	if parsedURL.Host == "" {
		return fmt.Errorf("%s must have a host", fieldName)
	}

	return nil
}

// contains verifica si un slice contiene un elemento
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if strings.EqualFold(s, item) {
			return true
		}
	}
	return false
}
