package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultServerAddr  = ":8080"
	defaultDatabaseURL = "aerotours.db"
	defaultJWTTTL      = "24h"
	defaultNotifyPath  = "http://localhost:8080/api/send-notification"
)

type EmailConfig struct {
	// Enabled=false logs the rendered email instead of sending it.
	Enabled  bool
	SMTPHost string
	SMTPPort int
	Username string
	Password string
	From     string
	// To is the operations inbox that receives lead notifications.
	To string
}

type Config struct {
	ServerAddr  string
	DatabaseURL string
	JWTSecret   string
	JWTTTL      time.Duration
	// NotifyURL is where the lead service fires its best-effort
	// notification POST; by default the service's own endpoint.
	NotifyURL string
	Email     EmailConfig
}

// Load reads configuration from the environment, picking up a local .env
// file when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ServerAddr:  getEnv("SERVER_ADDR", defaultServerAddr),
		DatabaseURL: getEnv("DATABASE_URL", defaultDatabaseURL),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		NotifyURL:   getEnv("NOTIFY_URL", defaultNotifyPath),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is empty")
	}

	ttl, err := time.ParseDuration(getEnv("JWT_TTL", defaultJWTTTL))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_TTL: %w", err)
	}
	cfg.JWTTTL = ttl

	cfg.Email = EmailConfig{
		Enabled:  getEnvBool("SMTP_ENABLED", false),
		SMTPHost: os.Getenv("SMTP_HOST"),
		SMTPPort: getEnvInt("SMTP_PORT", 587),
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     getEnv("SMTP_FROM", "no-reply@aerotours.mx"),
		To:       getEnv("NOTIFY_TO", "reservas@aerotours.mx"),
	}

	if cfg.Email.Enabled && cfg.Email.SMTPHost == "" {
		return nil, fmt.Errorf("SMTP_ENABLED is set but SMTP_HOST is empty")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
