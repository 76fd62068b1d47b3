package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Roles a public signup may request; anything else falls back to worker.
var PublicSignupRoles = []string{"worker", "contractor", "engineer"}

// Config is built once at process start and injected into the middleware and
// services that need it. Business logic never reads the environment directly.
type Config struct {
	Env        string
	ServerPort string

	JwtSecret string
	Issuer    string
	TokenTTL  time.Duration

	GoogleClientID string

	DbHost     string
	DbPort     string
	DbUser     string
	DbPassword string
	DbName     string

	DefaultWorkerPassword string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		Env:        getEnv("APP_ENV", "development"),
		ServerPort: getEnv("SERVER_PORT", "8080"),

		JwtSecret: getEnv("JWT_SECRET", "defaultsecret"),
		Issuer:    getEnv("ISSUER", "consite"),
		TokenTTL:  7 * 24 * time.Hour,

		GoogleClientID: getEnv("GOOGLE_CLIENT_ID", ""),

		DbHost:     getEnv("DB_HOST", "localhost"),
		DbPort:     getEnv("DB_PORT", "5432"),
		DbUser:     getEnv("DB_USER", "postgres"),
		DbPassword: getEnv("DB_PASSWORD", "password"),
		DbName:     getEnv("DB_NAME", "consite"),

		DefaultWorkerPassword: getEnv("DEFAULT_WORKER_PASSWORD", "worker123"),
	}
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DbHost, c.DbPort, c.DbUser, c.DbPassword, c.DbName,
	)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
