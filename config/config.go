package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Config holds process-wide settings loaded once at startup.
type Config struct {
	Port         string
	DatabaseDSN  string
	JWTSecret    string
	TokenTTL     time.Duration
	UploadDir    string
	PhotoStorage string // "disk" or "s3"
	S3Bucket     string
	AWSRegion    string
	Env          string
}

// Load reads configuration from the environment with defaults suitable for
// development. Call godotenv.Load before this if a .env file should apply.
func Load() Config {
	cfg := Config{}
	cfg.Port = getEnv("PORT", "8080")
	cfg.DatabaseDSN = getEnv("DATABASE_DSN", "matrimony.db")
	cfg.JWTSecret = getEnv("JWT_SECRET", "devsecret")
	cfg.TokenTTL = getDuration("TOKEN_TTL", 24*time.Hour)
	cfg.UploadDir = getEnv("UPLOAD_DIR", "uploads/profile_photos")
	cfg.PhotoStorage = getEnv("PHOTO_STORAGE", "disk")
	cfg.S3Bucket = getEnv("S3_BUCKET_NAME", "")
	cfg.AWSRegion = getEnv("AWS_REGION", "")
	cfg.Env = getEnv("APP_ENV", "development")
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if h, err := strconv.Atoi(v); err == nil {
		return time.Duration(h) * time.Hour
	}
	log.Printf("invalid duration for %s: %s", key, v)
	return def
}
