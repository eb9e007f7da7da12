package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port    string
	GinMode string

	// CORS
	AllowedOrigins []string

	// Requests per minute per client IP; 0 disables the limiter.
	RateLimit int

	// Simulated latency for the mock endpoints.
	GenerateDelay   time.Duration
	EngagementDelay time.Duration

	// Logging
	LogLevel string

	// Directory holding a full set of fixture YAML files. Empty means the
	// embedded fixtures.
	FixturesDir string
}

var defaultOrigins = []string{
	"http://localhost:3000",
	"http://127.0.0.1:3000",
	"http://localhost:8080",
	"http://127.0.0.1:8080",
}

// Load reads an optional .env file and then the process environment.
func Load() *Config {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	return &Config{
		Port:    getEnv("PORT", "8080"),
		GinMode: getEnv("GIN_MODE", "debug"),

		AllowedOrigins: getList("CORS_ORIGINS", defaultOrigins),
		RateLimit:      getInt("RATE_LIMIT_PER_MINUTE", 120),

		GenerateDelay:   getDuration("GENERATE_DELAY", 1500*time.Millisecond),
		EngagementDelay: getDuration("ENGAGEMENT_DELAY", 100*time.Millisecond),

		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FixturesDir: getEnv("FIXTURES_DIR", ""),
	}
}

// Release reports whether gin runs in release mode.
func (c *Config) Release() bool {
	return c.GinMode == "release"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n < 0 {
		return defaultValue
	}
	return n
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d < 0 {
		return defaultValue
	}
	return d
}

func getList(key string, defaultValue []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
