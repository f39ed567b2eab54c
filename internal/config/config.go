package config

import (
	"os"
)

// Config holds the runtime settings the CLI reads from the environment.
type Config struct {
	// DataFile is the default dataset path when none is given on the
	// command line (NESTEDLM_DATA_FILE).
	DataFile string
	// LogLevel mirrors the LOG_LEVEL variable consumed by the logger.
	LogLevel string
}

// Load reads configuration from environment variables.
func Load() *Config {
	return &Config{
		DataFile: os.Getenv("NESTEDLM_DATA_FILE"),
		LogLevel: getEnvOrDefault("LOG_LEVEL", "INFO"),
	}
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
