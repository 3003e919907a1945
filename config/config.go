package config

import "os"

// Config holds everything read from the environment at startup.
type Config struct {
	Port          string
	Env           string
	DatabasePath  string
	UploadDir     string
	SessionSecret string

	// Completion service (OpenRouter). The API key is not validated
	// here; a missing key surfaces on the first upstream call.
	OpenRouterAPIKey string
	HTTPReferer      string
	Model            string
}

// Load reads the process environment, applying dev defaults.
func Load() Config {
	return Config{
		Port:             getenv("PORT", "3001"),
		Env:              os.Getenv("ENV"),
		DatabasePath:     getenv("DATABASE_PATH", "users.db"),
		UploadDir:        getenv("UPLOAD_DIR", "uploads"),
		SessionSecret:    getenv("SESSION_SECRET", "default-dev-secret-change-me"),
		OpenRouterAPIKey: os.Getenv("OPENROUTER_API_KEY"),
		HTTPReferer:      os.Getenv("HTTP_REFERER"),
		Model:            getenv("MODEL", "gpt-3.5-turbo"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
