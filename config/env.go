package config

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv loads variables from an env file. WONDERWHIZ_ENV_FILE overrides
// the default path so local setups can keep one file per provider.
func LoadEnv() {
	path := os.Getenv("WONDERWHIZ_ENV_FILE")
	if path == "" {
		path = ".env"
	}

	if err := godotenv.Load(path); err != nil {
		Logger.Info("No env file at ", path, ", using process environment")
	}
}
