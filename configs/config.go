package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource    string
	Port        string
	JWTSecret   string
	JWTTTL      time.Duration
	UploadDir   string
	UploadMaxMB int64
}

func LoadConfig() *Config {
	// .env is optional outside local dev
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		DBSource:    getEnv("DB_SOURCE", "nashiecom.db"),
		Port:        getEnv("PORT", "8000"),
		JWTSecret:   getEnv("JWT_SECRET", "changeme"),
		JWTTTL:      24 * time.Hour,
		UploadDir:   getEnv("UPLOAD_DIR", "./uploads"),
		UploadMaxMB: 5,
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
