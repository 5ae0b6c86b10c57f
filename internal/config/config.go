package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port            string
	DatabaseURL     string
	PublicDir       string
	RateLimitWindow time.Duration
	RateLimitMax    int
}

func Load() Config {
	// clientFoundRows: UPDATE reports matched rows, so replacing a row with
	// identical values still counts as found.
	return Config{
		Port:            getenv("PORT", "29990"),
		DatabaseURL:     getenv("DATABASE_URL", "appuser:apppass@tcp(127.0.0.1:3306)/reservas?parseTime=true&charset=utf8mb4&clientFoundRows=true"),
		PublicDir:       getenv("PUBLIC_DIR", "./public"),
		RateLimitWindow: getdur("RATE_LIMIT_WINDOW", 2*time.Minute),
		RateLimitMax:    getint("RATE_LIMIT_MAX", 125),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// getint and getdur fall back to the default on unset or malformed values.

func getint(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func getdur(k string, def time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return def
}
