package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	SMTP     SMTPConfig
	Keys     APIKeys
	Ai       AIConfig
	Solver   SolverConfig
	Vision   VisionConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	UploadDir          string
}

type DatabaseConfig struct {
	Connection string
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
}

type APIKeys struct {
	DeepSeek   string
	Roboflow   string
	Astrometry string
}

type AIConfig struct {
	Provider string // "deepseek" or "ollama"
	BaseURL  string
	Model    string
}

// SolverConfig points at the remote astrometry job service that runs
// solve-field on our behalf.
type SolverConfig struct {
	BaseURL      string
	PollInterval int // seconds
	MaxWait      int // seconds
}

// VisionConfig covers the two remote inference endpoints: the galaxy
// classifier serving endpoint and the Roboflow constellation detector.
type VisionConfig struct {
	ClassifierURL         string
	DetectorModelID       string
	DetectorOverlap       int
	DetectorMinConfidence int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "5000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:5000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
			UploadDir:          getEnv("UPLOAD_DIR", "uploads"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "AstroObserver"),
		},
		Keys: APIKeys{
			DeepSeek:   getEnv("DEEPSEEK_API_KEY", ""),
			Roboflow:   getEnv("ROBOFLOW_API_KEY", ""),
			Astrometry: getEnv("ASTROMETRY_API_KEY", ""),
		},
		Ai: AIConfig{
			Provider: getEnv("LLM_PROVIDER", "deepseek"),
			BaseURL:  getEnv("LLM_BASE_URL", "https://api.deepseek.com"),
			Model:    getEnv("LLM_MODEL", "deepseek-chat"),
		},
		Solver: SolverConfig{
			BaseURL:      getEnv("ASTROMETRY_API_URL", "http://localhost:8090"),
			PollInterval: getEnvAsInt("ASTROMETRY_POLL_INTERVAL", 2),
			MaxWait:      getEnvAsInt("ASTROMETRY_MAX_WAIT", 300),
		},
		Vision: VisionConfig{
			ClassifierURL:         getEnv("GALAXY_CLASSIFIER_URL", "http://localhost:8501/v1/models/galaxy10:predict"),
			DetectorModelID:       getEnv("ROBOFLOW_MODEL_ID", "ws-qwbuh/constellation-dsphi/1"),
			DetectorOverlap:       getEnvAsInt("ROBOFLOW_OVERLAP", 30),
			DetectorMinConfidence: getEnvAsInt("ROBOFLOW_MIN_CONFIDENCE", 40),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
