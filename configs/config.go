package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource  string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration

	// TaxRate is the flat rate applied on bills, e.g. "0.08".
	TaxRate string

	UploadDir string

	// RedisAddr empty = no Redis; sign-out revocation and the dashboard
	// cache degrade gracefully.
	RedisAddr     string
	RedisPassword string

	AdminEmail    string
	AdminPassword string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		DBSource:      getEnv("DB_SOURCE", "shripad.db"),
		Port:          getEnv("PORT", "8000"),
		JWTSecret:     getEnv("JWT_SECRET", "changeme"),
		JWTTTL:        time.Duration(24) * time.Hour,
		TaxRate:       getEnv("TAX_RATE", "0.08"),
		UploadDir:     getEnv("UPLOAD_DIR", "uploads"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
