package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	defaultAppPort        = "8000"
	defaultSSLMode        = "disable"
	defaultMaxQueryDepth  = 5
	defaultCORSOrigin     = "*"
	defaultRateLimitRPS   = 10.0
	defaultRateLimitBurst = 20
)

var ErrMissingDBHost = errors.New("DB_HOST is not set")

type Config struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	DBSSLMode  string
	AppPort    string
	AppEnv     string

	// MaxQueryDepth bounds the nesting of GraphQL selections; 0 disables the check.
	MaxQueryDepth int

	CORSOrigin     string
	RateLimitRPS   float64
	RateLimitBurst int
}

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:         os.Getenv("DB_HOST"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         os.Getenv("DB_NAME"),
		DBPort:         os.Getenv("DB_PORT"),
		DBSSLMode:      getenv("DB_SSLMODE", defaultSSLMode),
		AppPort:        getenv("APP_PORT", defaultAppPort),
		AppEnv:         os.Getenv("APP_ENV"),
		CORSOrigin:     getenv("CORS_ORIGIN", defaultCORSOrigin),
		MaxQueryDepth:  defaultMaxQueryDepth,
		RateLimitRPS:   defaultRateLimitRPS,
		RateLimitBurst: defaultRateLimitBurst,
	}

	if cfg.DBHost == "" {
		return nil, ErrMissingDBHost
	}

	var err error
	if cfg.MaxQueryDepth, err = intEnv("GRAPHQL_MAX_DEPTH", defaultMaxQueryDepth, 0); err != nil {
		return nil, err
	}
	if cfg.RateLimitBurst, err = intEnv("RATE_LIMIT_BURST", defaultRateLimitBurst, 1); err != nil {
		return nil, err
	}
	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil || rps <= 0 {
			return nil, fmt.Errorf("invalid RATE_LIMIT_RPS %q", v)
		}
		cfg.RateLimitRPS = rps
	}

	return cfg, nil
}

// LoadConfig is Load for callers that cannot continue without configuration.
func LoadConfig() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("Environment variables not loaded properly: %v", err)
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// intEnv parses key as an integer no smaller than lowest.
func intEnv(key string, fallback, lowest int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < lowest {
		return 0, fmt.Errorf("invalid %s %q", key, v)
	}
	return n, nil
}
