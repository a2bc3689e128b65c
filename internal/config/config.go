package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the server's runtime settings, read from the environment.
type Config struct {
	ServerAddr   string
	DatabaseURL  string
	KafkaBrokers []string
}

// Load reads settings from a .env file (when present) and the process
// environment. An empty DATABASE_URL selects the in-memory store; empty
// KAFKA_BROKERS disables event publishing.
func Load() Config {
	// missing .env is fine, env vars still apply
	_ = godotenv.Load()

	cfg := Config{
		ServerAddr:  os.Getenv("SERVER_ADDR"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}
	if cfg.ServerAddr == "" {
		cfg.ServerAddr = ":8080"
	}

	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}
	return cfg
}
