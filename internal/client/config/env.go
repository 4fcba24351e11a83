package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names recognized by parseEnv.
const (
	envAPIBaseURL     = "STORYLINE_API_URL"
	envRequestTimeout = "STORYLINE_REQUEST_TIMEOUT"
	envSessionDBPath  = "STORYLINE_SESSION_DB"
)

// parseEnv overlays cfg with values from the process environment, after
// loading a .env file from the working directory when one exists. A
// missing .env file is the normal case and not an error.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv(envAPIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv(envRequestTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv(envSessionDBPath); v != "" {
		cfg.SessionDBPath = v
	}
}
