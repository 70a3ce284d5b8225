package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	ApiBaseURL      string
	JwtSecret       string
	Production      bool
	DefaultLocation string
	LogLevel        string
}

func LoadConfig() Config {
	// El archivo .env es opcional, si no existe se usan las variables de entorno
	_ = godotenv.Load()

	return Config{
		Port:            getEnv("PORT", "3000"),
		ApiBaseURL:      getEnv("API_BASE_URL", "http://localhost:8080"),
		JwtSecret:       getEnv("JWT_SECRET", "super_secret_default_jwt_secret"),
		Production:      getEnv("PRODUCTION", "false") == "true",
		DefaultLocation: getEnv("DEFAULT_LOCATION", "Agency"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
	}
}

// getEnv obtiene una variable de entorno o usa un valor por defecto

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
