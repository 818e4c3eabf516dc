package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is the process configuration, read from the environment.
type Config struct {
	Port           string
	Stage          string
	RedisAddr      string // empty selects the in-memory cache
	CacheTTL       time.Duration
	FeeTablePath   string // empty selects the built-in table
	RateLimitRPS   float64
	RateLimitBurst int
}

// Load reads a .env file if present, then the environment.
func Load() (Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()
	return FromEnv()
}

func FromEnv() (Config, error) {
	cfg := Config{
		Port:         getEnvWithDefault("PORT", "8080"),
		Stage:        getEnvWithDefault("STAGE", "dev"),
		RedisAddr:    os.Getenv("REDIS_ADDR"),
		FeeTablePath: os.Getenv("FEE_TABLE_PATH"),
	}

	var err error
	if cfg.CacheTTL, err = time.ParseDuration(getEnvWithDefault("CACHE_TTL", "24h")); err != nil {
		return Config{}, fmt.Errorf("CACHE_TTL: %w", err)
	}
	if cfg.RateLimitRPS, err = strconv.ParseFloat(getEnvWithDefault("RATE_LIMIT_RPS", "5"), 64); err != nil {
		return Config{}, fmt.Errorf("RATE_LIMIT_RPS: %w", err)
	}
	if cfg.RateLimitBurst, err = strconv.Atoi(getEnvWithDefault("RATE_LIMIT_BURST", "10")); err != nil {
		return Config{}, fmt.Errorf("RATE_LIMIT_BURST: %w", err)
	}
	if cfg.RateLimitRPS <= 0 || cfg.RateLimitBurst <= 0 {
		return Config{}, fmt.Errorf("rate limit must be positive")
	}
	return cfg, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
