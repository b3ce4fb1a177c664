package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseDSN  string
	JWTSecret    string
	Port         string
	ResumeDir    string
	GeminiAPIKey string
	GmailSender  string
}

// Load reads .env (when present) and assembles the runtime configuration.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return Config{
		DatabaseDSN:  getenv("DATABASE_DSN", "host=localhost user=postgres password=password dbname=jobseeker port=5432 sslmode=disable"),
		JWTSecret:    getenv("JWT_SECRET", "your-secret-key-change-this"),
		Port:         getenv("PORT", "8080"),
		ResumeDir:    getenv("RESUME_DIR", "./resumes"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GmailSender:  os.Getenv("GMAIL_SENDER"),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
