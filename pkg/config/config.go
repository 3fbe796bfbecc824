package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Predictor PredictorConfig
	Chat      ChatConfig
	Logger    LoggerConfig
}

type LoggerConfig struct {
	Level string
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Enabled  bool
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// PredictorConfig points at the remote CO2 model service.
type PredictorConfig struct {
	BaseURL string
	Timeout time.Duration
}

type ChatConfig struct {
	// TypingDelay is a cosmetic pause before a reply is returned; the
	// response is already computed when the delay starts.
	TypingDelay time.Duration
	// EventsLimit caps how many analytics events the API reads back.
	EventsLimit int
}

func Load() (*Config, error) {
	// Try to load .env file from current directory or project root
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}
	// No .env file is fine: plain environment variables are used as-is
	// (useful for Docker/K8s).

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "30"))
	predictorTimeout, _ := strconv.Atoi(getEnv("PREDICTOR_TIMEOUT", "30"))
	typingDelayMs, _ := strconv.Atoi(getEnv("CHAT_TYPING_DELAY_MS", "0"))
	eventsLimit, _ := strconv.Atoi(getEnv("CHAT_EVENTS_LIMIT", "50"))
	dbEnabled := getEnv("DB_ENABLED", "false") == "true"

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
		},
		Database: DatabaseConfig{
			Enabled:  dbEnabled,
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "drivegreen"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Predictor: PredictorConfig{
			BaseURL: getEnv("PREDICTOR_URL", "http://localhost:8000"),
			Timeout: time.Duration(predictorTimeout) * time.Second,
		},
		Chat: ChatConfig{
			TypingDelay: time.Duration(typingDelayMs) * time.Millisecond,
			EventsLimit: eventsLimit,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
