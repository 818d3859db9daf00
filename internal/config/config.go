package config

import (
	"os"
	"strconv"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// ReportingConfig holds settings for the upstream reporting (analytics) API.
// BaseURL is environment-specific and never hardcoded.
type ReportingConfig struct {
	BaseURL    string
	Token      string
	TimeoutSec int
}

// LLMConfig holds settings for the summary-generation API.
type LLMConfig struct {
	BaseURL         string
	Model           string
	TimeoutSec      int
	MaxContentBytes int64
}

// AnalyticsConfig tunes dashboard orchestration.
type AnalyticsConfig struct {
	CacheTTLSec   int
	FallbackLimit int
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost   string
	Port      string
	APIToken  string
	PrefsPath string
	Database  DatabaseConfig
	MinIO     MinIOConfig
	Reporting ReportingConfig
	LLM       LLMConfig
	Analytics AnalyticsConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:   getEnv("APP_HOST", "localhost:8080"),
		Port:      getEnv("PORT", "8080"), // default only for non-sensitive value
		APIToken:  getEnv("API_TOKEN", ""),
		PrefsPath: getEnv("PREFS_PATH", "data/prefs.json"),
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		Reporting: ReportingConfig{
			BaseURL:    getEnv("REPORTING_BASE_URL", ""),
			Token:      getEnv("REPORTING_TOKEN", ""),
			TimeoutSec: getEnvInt("REPORTING_TIMEOUT_SEC", 10),
		},
		LLM: LLMConfig{
			BaseURL:         getEnv("LLM_BASE_URL", ""),
			Model:           getEnv("LLM_MODEL", "llama3"),
			TimeoutSec:      getEnvInt("LLM_TIMEOUT_SEC", 120),
			MaxContentBytes: getEnvInt64("LLM_MAX_CONTENT_BYTES", 1<<20),
		},
		Analytics: AnalyticsConfig{
			CacheTTLSec:   getEnvInt("ANALYTICS_CACHE_TTL_SEC", 300),
			FallbackLimit: getEnvInt("ANALYTICS_FALLBACK_LIMIT", 1000),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.ParseInt(v, 10, 64)
		if err == nil {
			return i
		}
	}
	return def
}
