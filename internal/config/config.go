package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port         int
	LogLevel     string
	DatabaseURL  string
	NatsURL      string
	NatsToken    string
	OpenAIAPIKey string
	OpenAIModel  string
	RateLimit    int
	APIToken     string
}

func Load() Config {
	return Config{
		Port:         envInt("VEXGEN_PORT", 8760),
		LogLevel:     envStr("LOG_LEVEL", "info"),
		DatabaseURL:  envStr("DATABASE_URL", ""),
		NatsURL:      envStr("NATS_URL", ""),
		NatsToken:    envStr("NATS_TOKEN", ""),
		OpenAIAPIKey: envStr("OPENAI_API_KEY", ""),
		OpenAIModel:  envStr("VEXGEN_MODEL", "gpt-4o-mini"),
		RateLimit:    envInt("GENERATE_RATE_LIMIT", 20),
		APIToken:     envStr("VEXGEN_API_TOKEN", ""),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
