package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort       string
	AllowedOrigin string

	// Leaderboard persistence. The flat file is the default; a
	// Postgres store takes over when DatabaseURL is set.
	DatabaseURL     string
	ScoresFile      string
	LeaderboardSize int

	// Redis-backed rate limiting for the single-player API.
	// Disabled (fail-open) when RedisAddr is empty.
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	APIRateLimit  int
	APIRateWindow int // seconds

	LogLevel string
	LogJSON  bool
}

// Load reads configuration from the environment, with .env support.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppPort:         getString("APP_PORT", "8080"),
		AllowedOrigin:   os.Getenv("ALLOWED_ORIGIN"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		ScoresFile:      getString("SCORES_FILE", "scores.json"),
		LeaderboardSize: getInt("LEADERBOARD_SIZE", 5),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		RedisDB:         getInt("REDIS_DB", 0),
		APIRateLimit:    getInt("API_RATE_LIMIT", 30),
		APIRateWindow:   getInt("API_RATE_WINDOW_SECONDS", 60),
		LogLevel:        getString("LOG_LEVEL", "info"),
		LogJSON:         os.Getenv("LOG_JSON") == "true",
	}

	return cfg
}

func getString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
