package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	AppURL                 string
	DatabaseURL            string
	DatabaseUser           string
	DatabasePassword       string
	CORSOrigin             string
	RateLimit              int
	ShutdownTimeoutSeconds int
}

func Load() Config {
	appHost := getEnv("APP_HOST", "127.0.0.1")
	appPort := getEnv("APP_PORT", "8080")

	cfg := Config{
		AppURL:                 fmt.Sprintf("%s:%s", appHost, appPort),
		DatabaseURL:            getEnv("DB_URL", "todolist.db"),
		DatabaseUser:           getEnv("DB_USER", ""),
		DatabasePassword:       getEnv("DB_PASSWORD", ""),
		CORSOrigin:             getEnv("CORS_ORIGIN", "http://localhost:3000"),
		RateLimit:              getEnvAsInt("RATE_LIMIT_PER_MINUTE", 60),
		ShutdownTimeoutSeconds: getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 20),
	}

	validate(cfg)
	return cfg
}

// DatabaseDSN folds the optional credentials into the connection string
// as _auth query parameters, the form the sqlite driver understands.
func (c Config) DatabaseDSN() string {
	if c.DatabaseUser == "" {
		return c.DatabaseURL
	}

	sep := "?"
	if strings.Contains(c.DatabaseURL, "?") {
		sep = "&"
	}
	return fmt.Sprintf(
		"%s%s_auth&_auth_user=%s&_auth_pass=%s",
		c.DatabaseURL, sep, c.DatabaseUser, c.DatabasePassword,
	)
}

func validate(cfg Config) {
	if cfg.AppURL == "" {
		log.Fatal("APP_URL must not be empty (e.g. 127.0.0.1:8080)")
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DB_URL must not be empty")
	}
	if cfg.CORSOrigin == "" {
		log.Fatal("CORS_ORIGIN must not be empty")
	}
	if cfg.RateLimit <= 0 {
		log.Fatal("RATE_LIMIT_PER_MINUTE must be greater than 0")
	}
	if cfg.ShutdownTimeoutSeconds <= 0 {
		log.Fatal("SHUTDOWN_TIMEOUT_SECONDS must be greater than 0")
	}
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("invalid integer value for %s", key)
		}
		return i
	}
	return defaultVal
}
