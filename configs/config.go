package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Port      string
	DBSource  string
	JWTSecret string
	JWTTTL    time.Duration

	// app-state store: "sqlite" (default, shares the accounts DB) or "redis"
	StoreDriver string
	RedisAddr   string

	// checkout constants; the order ledger treats the resulting total as opaque
	DeliveryFee decimal.Decimal
	VATRate     decimal.Decimal

	// whether a user's own order history includes soft-deleted orders
	ShowDeletedOrders bool

	AdminEmail    string
	AdminPassword string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		Port:              getEnv("PORT", "8000"),
		DBSource:          getEnv("DB_SOURCE", "eatery.db"),
		JWTSecret:         getEnv("JWT_SECRET", "changeme"),
		JWTTTL:            time.Duration(24) * time.Hour,
		StoreDriver:       getEnv("STORE_DRIVER", "sqlite"),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		DeliveryFee:       getDecimal("DELIVERY_FEE", "25"),
		VATRate:           getDecimal("VAT_RATE", "0.15"),
		ShowDeletedOrders: getEnv("SHOW_DELETED_ORDERS", "false") == "true",
		AdminEmail:        os.Getenv("ADMIN_EMAIL"),
		AdminPassword:     os.Getenv("ADMIN_PASSWORD"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getDecimal(key, fallback string) decimal.Decimal {
	raw := getEnv(key, fallback)
	d, err := decimal.NewFromString(raw)
	if err != nil {
		log.Fatalf("invalid decimal for %s: %q", key, raw)
	}
	return d
}
