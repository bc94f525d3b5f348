package config

import (
	"crypto/rand"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv string
	Port   string

	DatabasePath string
	UploadDir    string
	UploadPrefix string

	SessionSecret []byte
	PageSize      int
}

func Load() (*Config, error) {
	// Don't fail if .env doesn't exist (might be prod env vars)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:       getEnv("APP_ENV", "development"),
		Port:         getEnv("PORT", "8080"),
		DatabasePath: getEnv("DATABASE_PATH", "school.db"),
		UploadDir:    getEnv("UPLOAD_DIR", "web/static/uploads"),
		UploadPrefix: getEnv("UPLOAD_PREFIX", "static/uploads"),
	}

	pageSize, err := strconv.Atoi(getEnv("PAGE_SIZE", "10"))
	if err != nil || pageSize < 1 {
		return nil, fmt.Errorf("invalid PAGE_SIZE: %v", err)
	}
	cfg.PageSize = pageSize

	if secret := os.Getenv("SESSION_SECRET"); secret != "" {
		cfg.SessionSecret = []byte(secret)
	} else {
		// Fresh secret on every start: all cookies from previous runs stop
		// verifying, so a restart logs everyone out. Set SESSION_SECRET to
		// keep sessions across restarts.
		cfg.SessionSecret = make([]byte, 32)
		if _, err := rand.Read(cfg.SessionSecret); err != nil {
			return nil, fmt.Errorf("failed to generate session secret: %w", err)
		}
		log.Println("SESSION_SECRET not set, generated a one-off secret")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
