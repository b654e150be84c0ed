package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Loader handles configuration loading using Viper
type Loader struct {
	v       *viper.Viper
	envFile string
}

// NewLoader creates a new configuration loader instance
func NewLoader() *Loader {
	return &Loader{
		v:       viper.New(),
		envFile: ".env",
	}
}

// WithEnvFile sets the dotenv file read before the environment is consulted
func (l *Loader) WithEnvFile(path string) *Loader {
	l.envFile = path
	return l
}

// Load loads configuration from .env, files and environment variables
func (l *Loader) Load() (*Config, error) {
	// 1. .env opcional; las variables ya exportadas tienen prioridad
	if l.envFile != "" {
		if err := godotenv.Load(l.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %s: %w", l.envFile, err)
		}
	}

	// 2. Configure Viper
	l.setupViper()

	// 3. Read configuration
	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// 4. Unmarshal over defaults
	config := GetDefaultConfig()
	if err := l.v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if os.Getenv("ENV") != "" || os.Getenv("ENVIRONMENT") != "" {
		config.App.Environment = GetEnvironment()
	}

	return config, nil
}

// setupViper configures Viper to read files and env vars
func (l *Loader) setupViper() {
	l.v.SetConfigName("config")
	l.v.SetConfigType("yaml")

	l.v.AddConfigPath("./configs")
	l.v.AddConfigPath("../configs")
	l.v.AddConfigPath(".")
	l.v.AddConfigPath("/etc/crypto-tracker")

	l.v.SetEnvPrefix("CRYPTO_TRACKER") // CRYPTO_TRACKER_SERVER_PORT
	l.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	l.v.AutomaticEnv()

	l.bindEnvVars()
}

// bindEnvVars maps short environment variables to configuration keys.
// Unmarshal only sees keys viper knows about, so every key is bound here.
func (l *Loader) bindEnvVars() {
	envMappings := map[string]string{
		"app.name":                   "APP_NAME",
		"app.version":                "APP_VERSION",
		"app.environment":            "APP_ENV",
		"server.port":                "PORT",
		"server.read_timeout":        "SERVER_READ_TIMEOUT",
		"server.write_timeout":       "SERVER_WRITE_TIMEOUT",
		"server.shutdown_timeout":    "SHUTDOWN_TIMEOUT",
		"coingecko.base_url":         "COINGECKO_BASE_URL",
		"coingecko.api_key":          "COINGECKO_API_KEY",
		"coingecko.user_agent":       "COINGECKO_USER_AGENT",
		"coingecko.timeout":          "COINGECKO_TIMEOUT",
		"coingecko.request_timeout":  "COINGECKO_REQUEST_TIMEOUT",
		"coingecko.max_attempts":     "COINGECKO_MAX_ATTEMPTS",
		"display.timezone":           "DISPLAY_TIMEZONE",
		"display.chart_days":         "CHART_DAYS",
		"logging.level":              "LOG_LEVEL",
		"logging.format":             "LOG_FORMAT",
	}

	for configKey, envVar := range envMappings {
		prefixed := "CRYPTO_TRACKER_" + strings.ToUpper(strings.ReplaceAll(configKey, ".", "_"))
		_ = l.v.BindEnv(configKey, prefixed, envVar)
	}
}

// GetEnvironment determina el entorno actual desde ENV vars
func GetEnvironment() string {
	env := strings.ToLower(os.Getenv("ENV"))
	if env == "" {
		env = strings.ToLower(os.Getenv("ENVIRONMENT"))
	}
	if env == "" {
		env = "development"
	}
	return env
}
