package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Config carries everything the process needs at startup. The three secrets
// (model key, store URL, store key) have no defaults; missing ones fail the
// boot rather than a request.
type Config struct {
	Port string

	DeepSeekAPIKey  string
	DeepSeekBaseURL string
	DeepSeekModel   string

	SupabaseURL     string
	SupabaseAnonKey string

	JWTSecret string
}

func Load() (*Config, error) {
	// .env is a development convenience; in deployment the vars come from
	// the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getenv("PORT", "8080"),
		DeepSeekAPIKey:  os.Getenv("DEEPSEEK_API_KEY"),
		DeepSeekBaseURL: getenv("DEEPSEEK_BASE_URL", "https://api.deepseek.com/v1"),
		DeepSeekModel:   getenv("DEEPSEEK_MODEL", "deepseek-chat"),
		SupabaseURL:     os.Getenv("SUPABASE_URL"),
		SupabaseAnonKey: os.Getenv("SUPABASE_ANON_KEY"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
	}

	var missing []string
	if cfg.DeepSeekAPIKey == "" {
		missing = append(missing, "DEEPSEEK_API_KEY")
	}
	if cfg.SupabaseURL == "" {
		missing = append(missing, "SUPABASE_URL")
	}
	if cfg.SupabaseAnonKey == "" {
		missing = append(missing, "SUPABASE_ANON_KEY")
	}
	if cfg.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

func NewLogger() (*zap.Logger, error) {
	return zap.NewProduction()
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
