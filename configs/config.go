package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

func Config(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("Warning: .env file not found, reading from system environment variables")
	}

	return os.Getenv(key)
}

// AppConfig carries the ambient settings handed to collaborators at
// startup so nothing reads the environment mid-request.
type AppConfig struct {
	DatabaseURL      string
	JWTSecret        string
	Port             string
	CORSAllowOrigins string

	BrevoAPIKey     string
	EmailSender     string
	EmailSenderName string

	AdminEmail    string
	AdminPassword string
	AdminFullName string
}

func Load() AppConfig {
	cfg := AppConfig{
		DatabaseURL:      Config("DATABASE_URL"),
		JWTSecret:        Config("JWT_SECRET"),
		Port:             Config("PORT"),
		CORSAllowOrigins: Config("CORS_ALLOW_ORIGINS"),
		BrevoAPIKey:      Config("BREVO_API_KEY"),
		EmailSender:      Config("EMAIL_SENDER"),
		EmailSenderName:  Config("EMAIL_SENDER_NAME"),
		AdminEmail:       Config("ADMIN_EMAIL"),
		AdminPassword:    Config("ADMIN_PASSWORD"),
		AdminFullName:    Config("ADMIN_FULL_NAME"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if strings.TrimSpace(cfg.CORSAllowOrigins) == "" {
		cfg.CORSAllowOrigins = "*"
	}
	return cfg
}
