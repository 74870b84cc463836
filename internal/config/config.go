// Package config collects runtime configuration from the environment.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds every knob the server reads at startup.
type Config struct {
	Port          string
	ArtifactsDir  string
	DatabaseURL   string
	SaveEstimates bool
	RedisAddr     string
	CacheTTL      time.Duration
	MLServiceURL  string
}

// Get returns the env value for key, or fallback when unset.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getint(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// Load reads the full server configuration with defaults.
func Load() Config {
	return Config{
		Port:          Get("PORT", "8080"),
		ArtifactsDir:  Get("ARTIFACTS_DIR", "data/artifacts"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		SaveEstimates: os.Getenv("SAVE_ESTIMATES") == "true",
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		CacheTTL:      time.Duration(getint("CACHE_TTL_SECONDS", 3600)) * time.Second,
		MLServiceURL:  os.Getenv("ML_SERVICE_URL"),
	}
}
