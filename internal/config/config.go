package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Environment variables read by Load.
const (
	EnvDataFile = "EXPENSES_DATA_FILE"
	EnvLogLevel = "EXPENSES_LOG_LEVEL"
)

var validLogLevels = []string{"debug", "info", "warn", "error"}

type Config struct {
	// Storage
	DataFile string

	// Logging
	LogLevel string
}

func Load() *Config {
	return &Config{
		DataFile: getEnv(EnvDataFile, DefaultDataFile()),
		LogLevel: strings.ToLower(getEnv(EnvLogLevel, "warn")),
	}
}

// DefaultDataFile returns data/expenses.tsv next to the running executable,
// falling back to the working directory when the executable path is unknown.
func DefaultDataFile() string {
	exe, err := os.Executable()
	if err != nil {
		return filepath.Join("data", "expenses.tsv")
	}
	return filepath.Join(filepath.Dir(exe), "data", "expenses.tsv")
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if strings.TrimSpace(c.DataFile) == "" {
		errors = append(errors, "data file path cannot be empty")
	} else if info, err := os.Stat(c.DataFile); err == nil && info.IsDir() {
		errors = append(errors, fmt.Sprintf("data file path '%s' is a directory", c.DataFile))
	}

	if !slices.Contains(validLogLevels, c.LogLevel) {
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of %v", c.LogLevel, validLogLevels))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
