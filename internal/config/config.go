package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultAddr      = ":8080"
	defaultJWTTTL    = "24h"
	defaultLogLevel  = "INFO"
	defaultLogFormat = "json"
	defaultJWTSecret = "change-me-jwt-secret"
)

// Config holds everything the process needs at startup. It is built once
// in main and passed into constructors; nothing reads the environment
// after this point.
type Config struct {
	AppEnv      string
	Addr        string
	DatabaseURL string
	JWTSecret   string
	JWTTTL      time.Duration
	LogLevel    string
	LogFormat   string
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Addr = getEnv("ADDR", defaultAddr)
	cfg.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "hotelhub.db"
	}

	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))
	if cfg.AppEnv == "prod" && cfg.JWTSecret == defaultJWTSecret {
		return nil, fmt.Errorf("JWT_SECRET must be set in prod")
	}

	ttl, err := time.ParseDuration(getEnv("JWT_TTL", defaultJWTTTL))
	if err != nil {
		return nil, fmt.Errorf("parse JWT_TTL: %w", err)
	}
	cfg.JWTTTL = ttl

	cfg.LogLevel = getEnv("LOG_LEVEL", defaultLogLevel)
	cfg.LogFormat = getEnv("LOG_FORMAT", defaultLogFormat)

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
