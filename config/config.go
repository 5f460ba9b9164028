package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	FrontendURL string
	// Gemini Configuration
	GeminiAPIKey        string
	GeminiModel         string
	ModelTimeoutSeconds int
	// Firestore Configuration
	FirestoreProjectID       string
	FirestoreDatabaseID      string
	FirestoreCredentialsFile string
	// Object Storage Configuration (S3-compatible)
	S3AccessKeyID     string
	S3SecretAccessKey string
	S3Region          string
	S3Bucket          string
	S3Endpoint        string // optional override for S3-compatible providers
	S3PublicBaseURL   string // optional; defaults to the virtual-hosted AWS URL
}

func LoadConfig() (*Config, error) {
	// Load .env file (effective locally, ignored in production if absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		// Gemini Configuration
		GeminiAPIKey:        getEnv("GEMINI_API_KEY", ""),
		GeminiModel:         getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		ModelTimeoutSeconds: getEnvInt("MODEL_TIMEOUT_SECONDS", 30),
		// Firestore Configuration
		FirestoreProjectID:       getEnv("FIRESTORE_PROJECT_ID", ""),
		FirestoreDatabaseID:      getEnv("FIRESTORE_DATABASE_ID", "machjob"),
		FirestoreCredentialsFile: getEnv("FIRESTORE_CREDENTIALS_FILE", ""),
		// Object Storage Configuration
		S3AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", ""),
		S3SecretAccessKey: getEnv("S3_SECRET_ACCESS_KEY", ""),
		S3Region:          getEnv("S3_REGION", "us-east-1"),
		S3Bucket:          getEnv("S3_BUCKET", ""),
		S3Endpoint:        getEnv("S3_ENDPOINT", ""),
		S3PublicBaseURL:   strings.TrimRight(getEnv("S3_PUBLIC_BASE_URL", ""), "/"),
	}

	// The service still boots without these, but every route that needs the
	// missing dependency answers with a 500 instead.
	if cfg.GeminiAPIKey == "" {
		log.Println("WARNING: GEMINI_API_KEY is missing. Model calls will return a configuration error.")
	}
	if cfg.FirestoreProjectID == "" {
		log.Println("WARNING: FIRESTORE_PROJECT_ID is missing. Profile routes will be unavailable.")
	}
	if cfg.S3Bucket == "" {
		log.Println("WARNING: S3_BUCKET is missing. Resume uploads will be stored as errors.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
