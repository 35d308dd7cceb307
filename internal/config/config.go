package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config is the process configuration, read once at startup and passed
// down explicitly.
type Config struct {
	Port      string
	MongoURI  string
	DBName    string
	JWTSecret string
	StripeKey string
	LogFile   string
}

// Load reads .env (if present) and environment variables with defaults.
func Load() Config {
	// 1) Load .env (if present)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found – relying on env vars")
	}

	return Config{
		Port:      getEnv("PORT", "5000"),
		MongoURI:  getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:    getEnv("DB_NAME", "bookingDB"),
		JWTSecret: getEnv("ACCESS_TOKEN_SECRET", "supersecret"),
		StripeKey: getEnv("PAYMENT_SECRET_KEY", ""),
		LogFile:   getEnv("LOG_FILE", "./logs/app.log"),
	}
}

// getEnv reads an environment variable or returns the provided default
func getEnv(key, defaultValue string) string {
	if v, exists := os.LookupEnv(key); exists {
		return v
	}
	return defaultValue
}
