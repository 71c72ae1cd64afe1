package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("TZ", "")
	t.Setenv("DB_PATH", "")
	t.Setenv("LLM_ENDPOINT", "")
	t.Setenv("WEATHER_ENDPOINT", "")
	t.Setenv("ENABLE_TOKEN_AUTH", "")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.DBPath != "sprout.db" {
		t.Fatalf("expected default db path sprout.db, got %q", cfg.DBPath)
	}
	if cfg.WeatherEndpoint != "https://api.open-meteo.com" {
		t.Fatalf("expected open-meteo default, got %q", cfg.WeatherEndpoint)
	}
	if cfg.EnableTokenAuth {
		t.Fatalf("expected token auth disabled by default")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_PATH", "/tmp/sprout-test.db")
	t.Setenv("LLM_ENDPOINT", "https://llm.example.com")
	t.Setenv("LLM_API_KEY", "k")
	t.Setenv("ENABLE_TOKEN_AUTH", "true")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Fatalf("expected port 9090, got %q", cfg.Port)
	}
	if cfg.DBPath != "/tmp/sprout-test.db" {
		t.Fatalf("expected overridden db path, got %q", cfg.DBPath)
	}
	if cfg.LLMEndpoint != "https://llm.example.com" {
		t.Fatalf("expected llm endpoint, got %q", cfg.LLMEndpoint)
	}
	if !cfg.EnableTokenAuth {
		t.Fatalf("expected token auth enabled")
	}
}
