package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// local dev defaults, override through the environment or a .env file
const (
	defaultDSN        = "host=localhost user=postgres password=password dbname=jobtracker port=5432 sslmode=disable"
	defaultPort       = "8080"
	defaultSessionTTL = 30 * time.Minute
)

type Config struct {
	DatabaseURL      string
	Port             string
	GinMode          string
	AllowOrigins     []string
	EditorSessionTTL time.Duration
	EditorReadOnly   bool
}

// Load reads .env (if present) and then the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, using process environment")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() *Config {
	return &Config{
		DatabaseURL:      getEnv("DATABASE_URL", defaultDSN),
		Port:             getEnv("PORT", defaultPort),
		GinMode:          os.Getenv("GIN_MODE"),
		AllowOrigins:     splitList(getEnv("CORS_ALLOW_ORIGINS", "*")),
		EditorSessionTTL: getDuration("EDITOR_SESSION_TTL", defaultSessionTTL),
		EditorReadOnly:   getBool("EDITOR_READ_ONLY", false),
	}
}

// AllowAllOrigins reports whether CORS should accept any origin.
func (c *Config) AllowAllOrigins() bool {
	for _, o := range c.AllowOrigins {
		if o == "*" {
			return true
		}
	}
	return len(c.AllowOrigins) == 0
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Printf("⚠️  Invalid %s=%q, using %v", key, v, fallback)
		return fallback
	}
	return d
}

func getBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("⚠️  Invalid %s=%q, using %v", key, v, fallback)
		return fallback
	}
	return b
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
