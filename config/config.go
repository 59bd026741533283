package config

import (
	"fmt"
	"log"
	"os"

	"quotedrop/internal/domain/pricing"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port       string `env:"PORT" envDefault:"8080"`
	GinMode    string `env:"GIN_MODE" envDefault:"debug"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
	CORSOrigin string `env:"CORS_ORIGIN" envDefault:"http://localhost:3000"`

	DBDriver string `env:"DB_DRIVER" envDefault:"postgres"` // postgres | sqlite
	DBURL    string `env:"DB_URL"`

	JWTSecret string `env:"JWT_SECRET"`

	StripeSecretKey     string `env:"STRIPE_SECRET_KEY"`
	StripeWebhookSecret string `env:"STRIPE_WEBHOOK_SECRET"`
	StripePricePro      string `env:"STRIPE_PRICE_PRO"`
	StripePriceProYear  string `env:"STRIPE_PRICE_PRO_YEARLY"`
	StripePriceStudio   string `env:"STRIPE_PRICE_STUDIO"`
	StripePriceStudioYr string `env:"STRIPE_PRICE_STUDIO_YEARLY"`
}

// Settings holds the loaded configuration. LoadEnv fills it.
var Settings = &Config{}

// AppURL is the public base URL, resolved by site.ResolveURL at startup.
var AppURL string

func LoadEnv() error {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	Settings = cfg
	return nil
}

// RequireServe checks the settings only the HTTP server needs.
func (c *Config) RequireServe() error {
	if c.DBURL == "" {
		return fmt.Errorf("missing required environment variable: DB_URL")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("missing required environment variable: JWT_SECRET")
	}
	return nil
}

func (c *Config) PriceIDs() pricing.PriceIDs {
	return pricing.PriceIDs{
		ProMonthly:    c.StripePricePro,
		ProYearly:     c.StripePriceProYear,
		StudioMonthly: c.StripePriceStudio,
		StudioYearly:  c.StripePriceStudioYr,
	}
}

// Getenv is the lookup used for values read outside the Config struct.
func Getenv(key string) string {
	return os.Getenv(key)
}
