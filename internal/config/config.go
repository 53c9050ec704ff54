package config

import "os"

const (
	defaultModel        = "gpt-4o-mini"
	defaultFirefliesURL = "https://api.fireflies.ai/graphql"
	defaultPort         = "8080"
	defaultCostLogDir   = "logs"
)

// Config holds all process-level settings, read once at startup.
type Config struct {
	OpenAIAPIKey    string
	GPTModel        string
	FirefliesAPIKey string
	FirefliesURL    string
	Port            string
	CostLogDir      string
	FrontendURL     string
}

func Load() Config {
	return Config{
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		GPTModel:        getEnv("GPT_MODEL", defaultModel),
		FirefliesAPIKey: os.Getenv("FIREFLIES_API_KEY"),
		FirefliesURL:    getEnv("FIREFLIES_URL", defaultFirefliesURL),
		Port:            getEnv("PORT", defaultPort),
		CostLogDir:      getEnv("COST_LOG_DIR", defaultCostLogDir),
		FrontendURL:     os.Getenv("FRONTEND_URL"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
