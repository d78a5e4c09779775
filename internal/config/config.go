package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config собирает настройки процесса из окружения.
type Config struct {
	Port      string
	DBDSN     string
	JWTSecret string
	UploadDir string
	TokenTTL  time.Duration
}

// Load reads .env from the usual places (repo root, or parents when run from
// cmd/server) and builds the config from environment variables.
func Load() Config {
	_ = godotenv.Overload(".env", "../.env", "../../.env")

	return Config{
		Port:      getenv("APP_PORT", "8080"),
		DBDSN:     os.Getenv("DB_DSN"),
		JWTSecret: getenv("JWT_SECRET", "dev_fallback_secret"),
		UploadDir: getenv("UPLOAD_DIR", "uploads"),
		TokenTTL:  24 * time.Hour,
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
