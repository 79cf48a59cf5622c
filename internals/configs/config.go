package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

var (
	JWTSecret      string
	TokenExpiry    time.Duration
	AppName        string
	AllowedOrigins string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ .env file tidak ditemukan, pakai ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, pakai ENV dari sistem")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	AppName = GetEnv("APP_NAME", "gjc_backend")
	AllowedOrigins = GetEnv("CORS_ORIGINS", "http://localhost:3000")

	expMinutes := GetEnv("ACCESS_TOKEN_EXPIRE_MINUTES", "1440")
	d, err := time.ParseDuration(expMinutes + "m")
	if err != nil {
		d = 24 * time.Hour
	}
	TokenExpiry = d

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET belum diset!")
	} else {
		log.Println("✅ JWT_SECRET berhasil dimuat.")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
