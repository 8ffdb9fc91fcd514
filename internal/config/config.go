package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type ServerConfig struct {
	Env        string
	Port       string
	CORSOrigin string
}

type DatabaseConfig struct {
	URL string
}

type AuthConfig struct {
	JWTSecret  string
	JWTExpiry  time.Duration
	BcryptCost int
}

type LogConfig struct {
	Level string
	Dir   string
}

type RateLimitConfig struct {
	Global int
	Login  int
}

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Auth      AuthConfig
	Log       LogConfig
	RateLimit RateLimitConfig
	IsDev     bool
}

func validateEnv() {
	environmentVariables := []string{
		"DATABASE_URL",
		"JWT_SECRET",
	}
	for _, env := range environmentVariables {
		if os.Getenv(env) == "" {
			log.Fatalf("Environment variable %s is not set", env)
		}
	}

	// Token signing secret must be at least 32 bytes.
	if len(os.Getenv("JWT_SECRET")) < 32 {
		log.Fatalf("Environment variable JWT_SECRET must be at least 32 bytes")
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("Environment variable %s must be an integer: %v", key, err)
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("Environment variable %s must be a duration: %v", key, err)
	}
	return d
}

func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	validateEnv()

	bcryptCost := getEnvInt("BCRYPT_ROUNDS", 10)
	if bcryptCost < 10 {
		bcryptCost = 10
	}
	if bcryptCost > 15 {
		bcryptCost = 15
	}

	return &Config{
		Server: ServerConfig{
			Env:        getEnv("ENV", "development"),
			Port:       getEnv("PORT", "3001"),
			CORSOrigin: getEnv("CORS_ORIGIN", "http://localhost:5173"),
		},
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Auth: AuthConfig{
			JWTSecret:  os.Getenv("JWT_SECRET"),
			JWTExpiry:  getEnvDuration("JWT_EXPIRES_IN", 24*time.Hour),
			BcryptCost: bcryptCost,
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			Dir:   getEnv("LOG_DIR", "logs"),
		},
		RateLimit: RateLimitConfig{
			Global: getEnvInt("RATE_LIMIT", 100),
			Login:  getEnvInt("LOGIN_RATE_LIMIT", 5),
		},

		IsDev: getEnv("ENV", "development") == "development",
	}
}
