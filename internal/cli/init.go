// Package cli provides the startup helpers used by cmd/expenses.
package cli

import (
	"os"

	"github.com/joho/godotenv"

	"expenses/internal/config"
	applog "expenses/internal/log"
)

// LoadEnvFile loads a .env file from the working directory when present.
// A missing file is not an error.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// SetupLogger builds the application logger for the configured level and
// sets it as the slog default. Unknown levels fall back to warn.
func SetupLogger(level string) *applog.Logger {
	cfg := applog.DefaultConfig()
	if l, ok := applog.ParseLevel(level); ok {
		cfg.Level = l
	}
	logger := applog.New(cfg)
	applog.SetDefault(logger)
	return logger
}

// LoadAndValidateConfig loads configuration and validates it.
// Exits the process on validation failure.
func LoadAndValidateConfig() *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		applog.New(applog.DefaultConfig()).WithComponent(applog.ComponentConfig).
			Error("Configuration validation failed", applog.FieldError, err)
		os.Exit(1)
	}
	return cfg
}
