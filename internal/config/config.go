package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Init loads .env (when present) and verifies the required variables are
// set before anything tries to connect.
func Init() {
	if err := godotenv.Load(); err != nil {
		Logger.Info("No .env file found, using system environment variables")
	}

	for _, key := range []string{"DB_DSN", "REDIS_ADDR", "JWT_SECRET"} {
		if os.Getenv(key) == "" {
			Logger.Fatal(key + " is not set")
		}
	}
}
