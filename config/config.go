package config

import (
	"fmt"
	"os"
	"strconv"

	"tms-lite/logger"

	"github.com/joho/godotenv"
)

// Config holds the process-wide settings read from .env and the environment.
type Config struct {
	AppHost     string
	AppPort     string
	CatalogPort string
	FrontendURL string
	JWTSecret   string
	RequestLog  bool
	Database    Database
}

// Database describes how to reach the backing store.
type Database struct {
	Driver   string // "postgres" or "sqlite"
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	Path     string // sqlite file
}

// Load reads .env (if present) and then the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		logger.Warning("No .env file loaded, using process environment")
	}

	return Config{
		AppHost:     os.Getenv("APP_HOST"),
		AppPort:     getEnv("APP_PORT", "8080"),
		CatalogPort: getEnv("CATALOG_PORT", "5000"),
		FrontendURL: getEnv("FRONTEND_URL", "*"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		RequestLog:  getBool("REQUEST_LOG", true),
		Database: Database{
			Driver:   getEnv("DB_DRIVER", "sqlite"),
			Host:     os.Getenv("DB_HOST"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     os.Getenv("DB_DATABASE"),
			User:     os.Getenv("DB_USERNAME"),
			Password: os.Getenv("DB_PASSWORD"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			Path:     getEnv("DB_PATH", "database.db"),
		},
	}
}

// Addr joins the configured host with the given port.
func (c Config) Addr(port string) string {
	return c.AppHost + ":" + port
}

// DSN builds the PostgreSQL connection string.
func (d Database) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		logger.Warning(fmt.Sprintf("Invalid boolean for %s: %q, using %t", key, v, fallback))
		return fallback
	}
	return b
}
