package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	Host           string
	Env            string
	AllowedOrigins []string
	SeedCustomers  int
	Seed           uint64
	RateLimit      float64
	RateBurst      int
}

func LoadConfig() Config {
	godotenv.Load()

	return Config{
		Port:           getEnv("PORT", "8080"),
		Host:           getEnv("HOST", "http://localhost:8080"),
		Env:            getEnv("ENV", "development"),
		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
		SeedCustomers:  getEnvInt("SEED_CUSTOMERS", 50),
		Seed:           uint64(getEnvInt("SEED", 0)),
		RateLimit:      getEnvFloat("RATE_LIMIT", 50),
		RateBurst:      getEnvInt("RATE_BURST", 100),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		panic(fmt.Sprintf("%s must be a valid integer", key))
	}
	return parsed
}

func getEnvFloat(key string, fallback float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		panic(fmt.Sprintf("%s must be a valid number", key))
	}
	return parsed
}
