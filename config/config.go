package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	App     AppConfig
	Session SessionConfig
	Storage StorageConfig
	AI      AIConfig
}

type ServerConfig struct {
	Port           string
	AllowedOrigins []string
}

type AppConfig struct {
	Environment string
	Version     string
}

type SessionConfig struct {
	AdminPasswordHash string
	TTL               time.Duration
	RedisAddr         string
	RedisPassword     string
}

type StorageConfig struct {
	// Backend selects the repository adapter once at startup:
	// memory, file, or firestore.
	Backend             string
	ProjectsFile        string
	FirestoreProjectID  string
	FirebaseCredentials string
}

type AIConfig struct {
	GeminiAPIKey string
	GeminiModel  string
	Timeout      time.Duration
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			AllowedOrigins: splitEnv("ALLOWED_ORIGINS", "http://localhost:3000"),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Session: SessionConfig{
			AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
			TTL:               getEnvAsDuration("SESSION_TTL", 24*time.Hour),
			RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
			RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		},
		Storage: StorageConfig{
			Backend:             getEnv("STORAGE_BACKEND", "memory"),
			ProjectsFile:        getEnv("PROJECTS_FILE", "projects.json"),
			FirestoreProjectID:  getEnv("FIRESTORE_PROJECT_ID", ""),
			FirebaseCredentials: getEnv("FIREBASE_CREDENTIALS_PATH", ""),
		},
		AI: AIConfig{
			GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
			GeminiModel:  getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
			Timeout:      getEnvAsDuration("GEMINI_TIMEOUT", 30*time.Second),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Session.AdminPasswordHash == "" {
		return fmt.Errorf("ADMIN_PASSWORD_HASH is required")
	}

	switch c.Storage.Backend {
	case "memory", "file":
	case "firestore":
		if c.Storage.FirestoreProjectID == "" {
			return fmt.Errorf("FIRESTORE_PROJECT_ID is required for the firestore backend")
		}
	default:
		return fmt.Errorf("STORAGE_BACKEND must be memory, file, or firestore (got %q)", c.Storage.Backend)
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration for %s, using default: %s", key, defaultValue)
		return defaultValue
	}

	return value
}

func splitEnv(key, defaultValue string) []string {
	raw := getEnv(key, defaultValue)
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}
