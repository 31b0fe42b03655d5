package config

import (
	"os"
	"strconv"
	"time"
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

// SwapiConfig holds settings for the upstream Star Wars GraphQL endpoint.
type SwapiConfig struct {
	Endpoint   string
	TimeoutSec int
	// RequestTimeout, when positive, takes precedence over TimeoutSec.
	RequestTimeout time.Duration
	// CacheSize is the number of upstream responses kept in memory. Zero disables the cache.
	CacheSize int
}

// Timeout returns the per-request timeout for upstream calls.
func (c SwapiConfig) Timeout() time.Duration {
	if c.RequestTimeout > 0 {
		return c.RequestTimeout
	}
	return time.Duration(c.TimeoutSec) * time.Second
}

// ArchiveConfig controls the screen snapshot feature backed by PostgreSQL and MinIO.
type ArchiveConfig struct {
	Enabled      bool
	URLExpirySec int
}

// URLExpiry returns how long presigned download links stay valid.
func (c ArchiveConfig) URLExpiry() time.Duration {
	return time.Duration(c.URLExpirySec) * time.Second
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	// AppHost is the public host:port advertised in API docs. It is not the listen address.
	AppHost  string
	Port     string
	Timezone string
	LogLevel string
	Swapi    SwapiConfig
	Archive  ArchiveConfig
	Database DatabaseConfig
	MinIO    MinIOConfig
}

// DefaultSwapiEndpoint is the public SWAPI GraphQL wrapper.
const DefaultSwapiEndpoint = "https://swapi-graphql.netlify.app/.netlify/functions/index"

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:  getEnv("APP_HOST", "localhost:8080"),
		Port:     getEnv("PORT", "8080"),
		Timezone: getEnv("APP_TIMEZONE", "UTC"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Swapi: SwapiConfig{
			Endpoint:   getEnv("SWAPI_ENDPOINT", DefaultSwapiEndpoint),
			TimeoutSec: getEnvInt("SWAPI_TIMEOUT_SEC", 10),
			CacheSize:  getEnvInt("SWAPI_CACHE_SIZE", 256),
		},
		Archive: ArchiveConfig{
			Enabled:      getEnvBool("ARCHIVE_ENABLED", false),
			URLExpirySec: getEnvInt("ARCHIVE_URL_EXPIRY_SEC", 900),
		},
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
			Bucket:    getEnv("MINIO_BUCKET", "jediarchives"),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
	}
}

// ListenAddr is the address the HTTP server binds: every interface on Port.
func (c *AppConfig) ListenAddr() string {
	return ":" + c.Port
}

// Location resolves the configured timezone, falling back to UTC.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
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
