package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var AppEnv Config

type Config struct {
	MongoURI            string
	DBName              string
	StripeSecretKey     string
	StripeWebhookSecret string
	AdminPassword       string
	AppURL              string
	SMTPHost            string
	SMTPPort            int
	SMTPUser            string
	SMTPPass            string
	EmailFrom           string
}

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}
	AppEnv = Config{
		MongoURI:            getEnvOrDefault("MONGO_URI", ""),
		DBName:              getEnvOrDefault("DB_NAME", "storefront"),
		StripeSecretKey:     getEnvOrDefault("STRIPE_SECRET_KEY", ""),
		StripeWebhookSecret: getEnvOrDefault("STRIPE_WEBHOOK_SECRET", ""),
		AdminPassword:       getEnvOrDefault("ADMIN_PASSWORD", ""),
		AppURL:              getEnvOrDefault("APP_URL", "http://localhost:8080"),
		SMTPHost:            getEnvOrDefault("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:            getIntEnv("SMTP_PORT", 587),
		SMTPUser:            getEnvOrDefault("SMTP_USER", ""),
		SMTPPass:            getEnvOrDefault("SMTP_PASS", ""),
		EmailFrom:           getEnvOrDefault("EMAIL_FROM", "UGo Foods <orders@ugo-foods.com>"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultValue
}
