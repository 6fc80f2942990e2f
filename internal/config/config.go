package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Session   SessionConfig
	Storage   StorageConfig
	SMTP      SMTPConfig
	Telemetry TelemetryConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	LiveFeedLogPath    string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	AdminAPIKey        string
}

type DatabaseConfig struct {
	// Empty means the in-memory catalog seeded with the demo products.
	Connection string
}

type SessionConfig struct {
	Store  string // "memory" or "redis"
	TTL    time.Duration
	Secret string
}

type StorageConfig struct {
	Driver    string // "filesystem", "s3" or "memory"
	Root      string
	UploadDir string
	S3Bucket  string
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
}

type TelemetryConfig struct {
	OtelEnabled  bool
	OtelEndpoint string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8501"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:8501"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/storefront.log"),
			LiveFeedLogPath:    getEnv("WS_LOG_FILE_PATH", "logs/live-feed.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			NatsURL:            getEnv("NATS_URL", ""),
			RedisURL:           getEnv("REDIS_URL", ""),
			AdminAPIKey:        getEnv("ADMIN_API_KEY", ""),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Session: SessionConfig{
			Store:  strings.ToLower(getEnv("SESSION_STORE", "memory")),
			TTL:    time.Duration(getEnvAsInt("SESSION_TTL_MINUTES", 60)) * time.Minute,
			Secret: getEnv("SESSION_SECRET", "techmart-demo-secret"),
		},
		Storage: StorageConfig{
			Driver:    strings.ToLower(getEnv("IMAGE_STORE", "filesystem")),
			Root:      getEnv("IMAGE_ROOT", "."),
			UploadDir: getEnv("IMAGE_UPLOAD_DIR", "assets/products/product_images"),
			S3Bucket:  getEnv("S3_BUCKET_NAME", ""),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "TechMart"),
		},
		Telemetry: TelemetryConfig{
			OtelEnabled:  getEnvAsBool("OTEL_ENABLED", false),
			OtelEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
		},
	}
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
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

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}
