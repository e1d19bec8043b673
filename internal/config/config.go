package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the tool reads from the environment.
type Config struct {
	DataDir     string
	Environment string
}

// Load reads an optional .env file and then the environment. Every value
// has a default, so a bare invocation just works.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found, using environment variables")
	} else {
		log.Println("✅ Loaded configuration from .env file")
	}

	cfg := &Config{
		DataDir:     os.Getenv("MONITORIA_DATA_DIR"),
		Environment: os.Getenv("ENV"),
	}

	if cfg.DataDir == "" {
		cfg.DataDir = "data"
	}
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	return cfg, nil
}
