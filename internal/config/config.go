package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config is the process configuration, read once at startup
type Config struct {
	MongoURI    string
	MongoDB     string
	RedisAddr   string
	HTTPPort    string
	JWTSecret   string
	CronSecret  string
	AWSRegion   string
	AlertSender string
	LogLevel    string
	LogFormat   string
}

// Load reads configuration from the environment. A local .env file is
// honored when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		MongoURI:    getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:     getEnv("MONGO_DB", "aijobradar"),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		HTTPPort:    getEnv("HTTP_PORT", "8080"),
		JWTSecret:   getEnv("JWT_SECRET", "super-secret-key-change-in-production"),
		CronSecret:  os.Getenv("CRON_SECRET"),
		AWSRegion:   getEnv("AWS_REGION", "us-east-1"),
		AlertSender: getEnv("ALERT_SENDER", "alerts@aijobradar.io"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "json"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
