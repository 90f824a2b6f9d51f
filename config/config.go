package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Stores    StoresConfig
	JWT       JWTConfig
	CORS      CORSConfig
	S3        S3Config
	Redis     RedisConfig
	Retention RetentionConfig
	Seed      SeedConfig
}

type ServerConfig struct {
	Port        string
	GinMode     string
	Environment string
}

// StoresConfig holds one database config per logical store. The portal keeps
// registrations, live users, and announcements in separate databases, the
// same split the rest of the platform uses.
type StoresConfig struct {
	Registrations DatabaseConfig
	Users         DatabaseConfig
	Announcements DatabaseConfig
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type JWTConfig struct {
	Secret      string
	TokenExpiry time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

type S3Config struct {
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	BaseURL         string // CloudFront or S3 direct URL
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// RetentionConfig controls how long time-bounded records are kept before the
// purge job removes them.
type RetentionConfig struct {
	Announcements time.Duration
	ChatMessages  time.Duration
}

// SeedConfig is the bootstrap admin account created on first start.
type SeedConfig struct {
	AdminName     string
	AdminEmail    string
	AdminPassword string
}

func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{
		Server: ServerConfig{
			Port:        getEnv("SERVER_PORT", "8080"),
			GinMode:     getEnv("GIN_MODE", "debug"),
			Environment: getEnv("ENVIRONMENT", "development"),
		},
		Stores: StoresConfig{
			Registrations: databaseConfig("REGISTRATIONS", "freshkart_registrations"),
			Users:         databaseConfig("USERS", "freshkart_users"),
			Announcements: databaseConfig("ANNOUNCEMENTS", "freshkart_announcements"),
		},
		JWT: JWTConfig{
			Secret:      getEnv("JWT_SECRET", "freshkart-dev-secret"),
			TokenExpiry: parseDuration(getEnv("JWT_TOKEN_EXPIRY", "24h"), 24*time.Hour),
		},
		CORS: CORSConfig{
			AllowedOrigins: parseSlice(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
		},
		S3: S3Config{
			Region:          getEnv("AWS_REGION", "ap-south-1"),
			Bucket:          getEnv("AWS_S3_BUCKET", "freshkart-kyc-uploads"),
			AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
			BaseURL:         getEnv("AWS_S3_BASE_URL", ""),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       parseInt(getEnv("REDIS_DB", "0"), 0),
		},
		Retention: RetentionConfig{
			Announcements: parseDuration(getEnv("ANNOUNCEMENT_RETENTION", "168h"), 7*24*time.Hour),
			ChatMessages:  parseDuration(getEnv("CHAT_RETENTION", "168h"), 7*24*time.Hour),
		},
		Seed: SeedConfig{
			AdminName:     getEnv("SEED_ADMIN_NAME", "Freshkart Admin"),
			AdminEmail:    getEnv("SEED_ADMIN_EMAIL", ""),
			AdminPassword: getEnv("SEED_ADMIN_PASSWORD", ""),
		},
	}

	return config, nil
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// databaseConfig reads the per-store DB_<STORE>_* variables, falling back to
// the shared DB_* values so a single-server setup needs one set of env vars.
func databaseConfig(store, defaultName string) DatabaseConfig {
	return DatabaseConfig{
		Host:     getEnvAny("DB_"+store+"_HOST", "DB_HOST", "localhost"),
		Port:     getEnvAny("DB_"+store+"_PORT", "DB_PORT", "5432"),
		User:     getEnvAny("DB_"+store+"_USER", "DB_USER", "freshkart"),
		Password: getEnvAny("DB_"+store+"_PASSWORD", "DB_PASSWORD", "freshkart"),
		DBName:   getEnvAny("DB_"+store+"_NAME", "DB_NAME_UNUSED", defaultName),
		SSLMode:  getEnvAny("DB_"+store+"_SSLMODE", "DB_SSLMODE", "disable"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAny(key, fallbackKey, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	if value := os.Getenv(fallbackKey); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(s)
	if err != nil {
		log.Printf("Invalid duration %s, using default %s", s, fallback)
		return fallback
	}
	return duration
}

func parseInt(s string, fallback int) int {
	var n int
	if _, err := fmt.Sscanf(s, "%d", &n); err != nil {
		return fallback
	}
	return n
}

func parseSlice(s string) []string {
	if s == "" {
		return []string{}
	}
	var result []string
	for i := 0; i < len(s); {
		end := i
		for end < len(s) && s[end] != ',' {
			end++
		}
		result = append(result, s[i:end])
		i = end + 1
	}
	return result
}
