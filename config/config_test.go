package config

import (
	"os"
	"strings"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	// Clean up environment before tests
	cleanupEnv := func() {
		os.Unsetenv("BOMLENS_SERVER_PORT")
		os.Unsetenv("BOMLENS_SERVER_ENVIRONMENT")
		os.Unsetenv("BOMLENS_MOUSER_API_KEY")
		os.Unsetenv("BOMLENS_MOUSER_BASE_URL")
		os.Unsetenv("BOMLENS_THROTTLE_EVERY")
		os.Unsetenv("BOMLENS_THROTTLE_PAUSE")
		os.Unsetenv("BOMLENS_THROTTLE_PER_SECOND")
		os.Unsetenv("BOMLENS_LOG_LEVEL")
		os.Unsetenv("BOMLENS_LOG_FORMAT")
	}

	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		cleanupEnv()
		// Set required API key
		os.Setenv("BOMLENS_MOUSER_API_KEY", "test-key")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		// Check defaults
		if cfg.Server.Port != "8080" {
			t.Errorf("Server.Port = %s, want 8080", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if cfg.Mouser.BaseURL != "https://api.mouser.com/api/v2.0" {
			t.Errorf("Mouser.BaseURL = %s, want https://api.mouser.com/api/v2.0", cfg.Mouser.BaseURL)
		}
		if cfg.Throttle.Every != 10 {
			t.Errorf("Throttle.Every = %d, want 10", cfg.Throttle.Every)
		}
		if cfg.Throttle.Pause != time.Second {
			t.Errorf("Throttle.Pause = %v, want 1s", cfg.Throttle.Pause)
		}
		if cfg.Throttle.PerSecond != 2.0 {
			t.Errorf("Throttle.PerSecond = %v, want 2.0", cfg.Throttle.PerSecond)
		}
		if cfg.Log.Level != "info" {
			t.Errorf("Log.Level = %s, want info", cfg.Log.Level)
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("BOMLENS_SERVER_PORT", "9090")
		os.Setenv("BOMLENS_SERVER_ENVIRONMENT", "production")
		os.Setenv("BOMLENS_MOUSER_API_KEY", "custom-api-key")
		os.Setenv("BOMLENS_MOUSER_BASE_URL", "https://custom.api.com")
		os.Setenv("BOMLENS_THROTTLE_EVERY", "5")
		os.Setenv("BOMLENS_THROTTLE_PAUSE", "500ms")
		os.Setenv("BOMLENS_LOG_FORMAT", "json")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
		}
		if cfg.Mouser.APIKey != "custom-api-key" {
			t.Errorf("Mouser.APIKey = %s, want custom-api-key", cfg.Mouser.APIKey)
		}
		if cfg.Mouser.BaseURL != "https://custom.api.com" {
			t.Errorf("Mouser.BaseURL = %s, want https://custom.api.com", cfg.Mouser.BaseURL)
		}
		if cfg.Throttle.Every != 5 {
			t.Errorf("Throttle.Every = %d, want 5", cfg.Throttle.Every)
		}
		if cfg.Throttle.Pause != 500*time.Millisecond {
			t.Errorf("Throttle.Pause = %v, want 500ms", cfg.Throttle.Pause)
		}
		if cfg.Log.Format != "json" {
			t.Errorf("Log.Format = %s, want json", cfg.Log.Format)
		}
	})

	t.Run("fails validation when API key is missing", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Fatal("Load() error = nil, want error for missing API key")
		}
		if !strings.Contains(err.Error(), "Mouser API key is required") {
			t.Errorf("Load() error = %v, want 'Mouser API key is required'", err)
		}
	})

	t.Run("fails validation for negative throttle cadence", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("BOMLENS_MOUSER_API_KEY", "test-key")
		os.Setenv("BOMLENS_THROTTLE_EVERY", "-1")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Error("Load() error = nil, want error for negative throttle.every")
		}
	})

	t.Run("fails validation for non-positive rate cap", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("BOMLENS_MOUSER_API_KEY", "test-key")
		os.Setenv("BOMLENS_THROTTLE_PER_SECOND", "0")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Error("Load() error = nil, want error for zero throttle.per_second")
		}
	})
}
