package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Gateway  GatewayConfig
	MediaAPI MediaAPIConfig
	MasterDB DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	App      AppConfig
	Storage  StorageConfig
}

type GatewayConfig struct {
	Port    string
	GinMode string
	// RootDomain is the operator's own domain, e.g. "snapshop.io".
	// Requests whose host matches it serve the admin application.
	RootDomain string
	// AdminUpstream and StorefrontUpstream are the internal application
	// origins the gateway proxies to after routing.
	AdminUpstream      string
	StorefrontUpstream string
	APIUpstream        string
	// SecureCookies controls the Secure flag on session cookies.
	SecureCookies bool
}

type MediaAPIConfig struct {
	Port        string
	MaxFileSize int64 // bytes
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret string
}

type AppConfig struct {
	Env string
}

type StorageConfig struct {
	Driver      string
	UploadsPath string
	// AWS S3
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	AWSRegion          string
	AWSBucket          string
	// Cloudflare R2
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2AccountID       string
	R2Bucket          string
	R2PublicURL       string
}

func Load() *Config {
	return &Config{
		Gateway: GatewayConfig{
			Port:               getEnv("GATEWAY_PORT", "8080"),
			GinMode:            getEnv("GIN_MODE", "debug"),
			RootDomain:         getEnv("ROOT_DOMAIN", "localhost"),
			AdminUpstream:      getEnv("ADMIN_UPSTREAM", "http://localhost:3000"),
			StorefrontUpstream: getEnv("STOREFRONT_UPSTREAM", "http://localhost:3001"),
			APIUpstream:        getEnv("API_UPSTREAM", "http://localhost:4000"),
			SecureCookies:      getEnv("SECURE_COOKIES", "true") == "true",
		},
		MediaAPI: MediaAPIConfig{
			Port:        getEnv("MEDIA_API_PORT", "8082"),
			MaxFileSize: int64(getEnvAsInt("MEDIA_MAX_FILE_SIZE", 50*1024*1024)),
		},
		MasterDB: DatabaseConfig{
			Host:     getEnv("MASTER_DB_HOST", "localhost"),
			Port:     getEnv("MASTER_DB_PORT", "5432"),
			User:     getEnv("MASTER_DB_USER", "snapshop"),
			Password: getEnv("MASTER_DB_PASSWORD", "snapshop"),
			DBName:   getEnv("MASTER_DB_NAME", "snapshop_master"),
			SSLMode:  getEnv("MASTER_DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "change-me-in-production"),
		},
		App: AppConfig{
			Env: getEnv("APP_ENV", "development"),
		},
		Storage: StorageConfig{
			Driver:             getEnv("STORAGE_DRIVER", "local"),
			UploadsPath:        getEnv("UPLOADS_PATH", "./uploads"),
			AWSAccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
			AWSSecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
			AWSRegion:          getEnv("AWS_REGION", "us-east-1"),
			AWSBucket:          getEnv("AWS_BUCKET", ""),
			R2AccessKeyID:      getEnv("R2_ACCESS_KEY_ID", ""),
			R2SecretAccessKey:  getEnv("R2_SECRET_ACCESS_KEY", ""),
			R2AccountID:        getEnv("R2_ACCOUNT_ID", ""),
			R2Bucket:           getEnv("R2_BUCKET", ""),
			R2PublicURL:        getEnv("R2_PUBLIC_URL", ""),
		},
	}
}

func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.DBName,
		c.SSLMode,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
