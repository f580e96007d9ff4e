package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort      string
	DBDriver        string
	DBDSN           string
	RedisAddr       string
	RedisDB         int
	RedisPass       string
	JWTSecret       string
	SessionTTL      time.Duration
	CookieSecure    bool
	WorkflowStrict  bool
	CORSOrigins     []string
	SwaggerHost     string
	LogLevel        string
	ShutdownTimeout time.Duration
	ResetDB         bool
	SeedFile        string
}

// Load builds Config from environment with sensible defaults.
// A .env file in the working directory is applied first when present.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("config: ignoring .env: %v", err)
	}

	return &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		DBDriver:        strings.ToLower(getEnv("DB_DRIVER", "mysql")),
		DBDSN:           getEnv("DB_DSN", "user:password@tcp(localhost:3306)/gatepass?charset=utf8mb4&parseTime=True&loc=UTC"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:         getEnvInt("REDIS_DB", 0),
		RedisPass:       os.Getenv("REDIS_PASSWORD"),
		JWTSecret:       getEnv("JWT_SECRET", "change-me"),
		SessionTTL:      getEnvDuration("SESSION_TTL", 24*time.Hour),
		CookieSecure:    getEnvBool("COOKIE_SECURE", false),
		WorkflowStrict:  getEnvBool("WORKFLOW_STRICT", true),
		CORSOrigins:     getEnvList("CORS_ORIGINS", []string{"*"}),
		SwaggerHost:     os.Getenv("SWAGGER_HOST"),
		LogLevel:        strings.ToLower(getEnv("LOG_LEVEL", "info")),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 5*time.Second),
		ResetDB:         getEnvBool("RESET_DB", false),
		SeedFile:        getEnv("SEED_FILE", "configs/seed_users.yaml"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil && parsed > 0 {
			return parsed
		}
	}
	return def
}

func getEnvList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
