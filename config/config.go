package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Mouser   MouserConfig
	Throttle ThrottleConfig
	Log      LogConfig
}

// ServerConfig holds server-related configuration (serve mode only)
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// MouserConfig holds Mouser API configuration
type MouserConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
}

// ThrottleConfig holds the batch throttle policy. The CLI pauses for Pause
// after every Every rows; serve mode caps aggregate throughput at PerSecond.
type ThrottleConfig struct {
	Every     int           `mapstructure:"every"`
	Pause     time.Duration `mapstructure:"pause"`
	PerSecond float64       `mapstructure:"per_second"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "json" or "console"
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/bomlens/")

	// Environment variable settings
	v.SetEnvPrefix("BOMLENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"*"})

	// Mouser defaults. The api_key default registers the key with viper so
	// BOMLENS_MOUSER_API_KEY is picked up; there is no embedded key.
	v.SetDefault("mouser.api_key", "")
	v.SetDefault("mouser.base_url", "https://api.mouser.com/api/v2.0")

	// Throttle defaults: pause one second after every ten rows
	v.SetDefault("throttle.every", 10)
	v.SetDefault("throttle.pause", "1s")
	v.SetDefault("throttle.per_second", 2.0)

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

// validate validates the configuration. A missing Mouser API key is the one
// fatal configuration error; there is no embedded default key.
func validate(config *Config) error {
	if config.Mouser.APIKey == "" {
		return fmt.Errorf("Mouser API key is required (set BOMLENS_MOUSER_API_KEY)")
	}

	if config.Throttle.Every < 0 {
		return fmt.Errorf("throttle.every must not be negative, got: %d", config.Throttle.Every)
	}

	if config.Throttle.PerSecond <= 0 {
		return fmt.Errorf("throttle.per_second must be positive, got: %g", config.Throttle.PerSecond)
	}

	return nil
}
