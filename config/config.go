package config

import (
	"os"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Media    MediaConfig
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// MediaConfig controls static serving of captured event images. The
// analyzer writes files under Root; image_ref values resolve beneath
// the Route prefix.
type MediaConfig struct {
	Route string
	Root  string
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "ppe_monitor"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Media: MediaConfig{
			Route: getEnv("MEDIA_ROUTE", "/media"),
			Root:  getEnv("MEDIA_ROOT", "./media"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
