package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port     string
	Timezone string
	DBPath   string

	LLMEndpoint string
	LLMAPIKey   string
	LLMModel    string

	EmbEndpoint string
	EmbAPIKey   string
	EmbModel    string

	WeatherEndpoint string
	SpeciesEndpoint string
	SpeciesAPIKey   string

	GuideAllowedDomains string
	EnableTokenAuth     bool
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:     get("PORT", "8080"),
		Timezone: get("TZ", "Europe/Berlin"),
		DBPath:   get("DB_PATH", "sprout.db"),

		LLMEndpoint: get("LLM_ENDPOINT", ""),
		LLMAPIKey:   get("LLM_API_KEY", ""),
		LLMModel:    get("LLM_MODEL", "gpt-4o-mini"),

		EmbEndpoint: get("EMB_ENDPOINT", ""),
		EmbAPIKey:   get("EMB_API_KEY", ""),
		EmbModel:    get("EMB_MODEL", "text-embedding-3-small"),

		WeatherEndpoint: get("WEATHER_ENDPOINT", "https://api.open-meteo.com"),
		SpeciesEndpoint: get("SPECIES_ENDPOINT", ""),
		SpeciesAPIKey:   get("SPECIES_API_KEY", ""),

		GuideAllowedDomains: get("GUIDE_ALLOWED_DOMAINS", ""),
		EnableTokenAuth:     get("ENABLE_TOKEN_AUTH", "false") == "true",
	}
	log.Printf("[cfg] port=%s db=%s tz=%s llm=%v emb=%v token_auth=%v",
		cfg.Port, cfg.DBPath, cfg.Timezone, cfg.LLMEndpoint != "", cfg.EmbEndpoint != "", cfg.EnableTokenAuth)
	return cfg
}
