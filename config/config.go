package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

var (
	PORT       string
	DB_URL     string
	JWT_SECRET string

	STRIPE_SECRET_KEY     string
	STRIPE_WEBHOOK_SECRET string
	APP_URL               string
	FINE_MULTIPLIER       string

	TELEGRAM_API_URL string
	TELEGRAM_CHAT_ID string

	GOOGLE_CLIENT_ID         string
	GOOGLE_CLIENT_SECRET     string
	GOOGLE_REDIRECT_URL      string
	GOOGLE_FRONTEND_REDIRECT string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_URL = mustEnv("DB_URL")
	JWT_SECRET = mustEnv("JWT_SECRET")

	STRIPE_SECRET_KEY = mustEnv("STRIPE_SECRET_KEY")
	STRIPE_WEBHOOK_SECRET = mustEnv("STRIPE_WEBHOOK_SECRET")
	APP_URL = getEnv("APP_URL", "http://localhost:8080")
	FINE_MULTIPLIER = getEnv("FINE_MULTIPLIER", "2")

	TELEGRAM_API_URL = mustEnv("TELEGRAM_API_URL")
	TELEGRAM_CHAT_ID = mustEnv("TELEGRAM_CHAT_ID")

	GOOGLE_CLIENT_ID = getEnv("GOOGLE_CLIENT_ID", "")
	GOOGLE_CLIENT_SECRET = getEnv("GOOGLE_CLIENT_SECRET", "")
	GOOGLE_REDIRECT_URL = getEnv("GOOGLE_REDIRECT_URL", "")
	GOOGLE_FRONTEND_REDIRECT = getEnv("GOOGLE_FRONTEND_REDIRECT", "")
}

// PaymentsConfig is handed to the payments and webhook handlers at
// construction so Stripe credentials are not read ambiently per request.
type PaymentsConfig struct {
	StripeSecretKey string
	WebhookSecret   string
	SuccessURL      string
	CancelURL       string
	FineMultiplier  decimal.Decimal
}

func Payments() PaymentsConfig {
	mult, err := decimal.NewFromString(FINE_MULTIPLIER)
	if err != nil {
		log.Fatalf("Invalid FINE_MULTIPLIER %q: %v", FINE_MULTIPLIER, err)
	}
	return PaymentsConfig{
		StripeSecretKey: STRIPE_SECRET_KEY,
		WebhookSecret:   STRIPE_WEBHOOK_SECRET,
		SuccessURL:      APP_URL + "/payments/",
		CancelURL:       APP_URL + "/payments/",
		FineMultiplier:  mult,
	}
}

// NotifierConfig identifies the Telegram endpoint and chat the overdue
// notifier posts to.
type NotifierConfig struct {
	APIURL string
	ChatID string
}

func Notifier() NotifierConfig {
	return NotifierConfig{
		APIURL: TELEGRAM_API_URL,
		ChatID: TELEGRAM_CHAT_ID,
	}
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
