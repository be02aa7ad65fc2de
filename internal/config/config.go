package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppName         string
	Port            string
	GinMode         string
	DatabaseURL     string
	DatabaseName    string
	StripeSecretKey string
	LogLevel        string
	LogFormat       string
}

func LoadConfig() *Config {
	// Solo cargar .env en desarrollo local
	// En producción esto se ignora automáticamente
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			log.Warn().Err(err).Msg("error loading .env file")
		} else {
			log.Info().Msg(".env file loaded successfully")
		}
	} else {
		log.Info().Msg("using system environment variables")
	}

	return FromEnv()
}

// FromEnv lee la configuración solo del entorno
func FromEnv() *Config {
	return &Config{
		AppName:         getEnv("APP_NAME", "SEYA API"),
		Port:            getEnv("PORT", "8080"),
		GinMode:         getEnv("GIN_MODE", "debug"),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		DatabaseName:    getEnv("DATABASE_NAME", "seya"),
		StripeSecretKey: getEnv("STRIPE_SECRET_KEY", ""),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "json"),
	}
}

// DatabaseConfigured indica si hay una URL de base de datos
func (c *Config) DatabaseConfigured() bool {
	return c.DatabaseURL != ""
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
