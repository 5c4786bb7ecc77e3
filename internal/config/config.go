package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration values
type Config struct {
	Server        ServerConfig
	Database      DatabaseConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Session       SessionConfig
	App           AppConfig
	Mail          MailConfig
	Notifications NotificationConfig
	RateLimit     RateLimitConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	Env  string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	AutoMigrate bool
}

// URL returns the database connection URL
func (c DatabaseConfig) URL() string {
	return "postgres://" + c.User + ":" + c.Password + "@" + c.Host + ":" + strconv.Itoa(c.Port) + "/" + c.DBName + "?sslmode=" + c.SSLMode
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	URL      string
	PASSWORD string
}

// JWTConfig holds signing secret and token lifetimes
type JWTConfig struct {
	Secret        string
	SessionExpiry time.Duration
	VerifyExpiry  time.Duration
	ResetExpiry   time.Duration
}

// SessionConfig holds session cookie settings
type SessionConfig struct {
	CookieName    string
	CookieSecure  bool
	EncryptionKey string
}

// AppConfig holds settings of the public application surface
type AppConfig struct {
	PublicURL        string
	AllowSelfPromote bool
	AllowedOrigins   []string
}

// MailConfig holds SMTP settings used by the email worker
type MailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

// NotificationConfig holds outbound email queue settings
type NotificationConfig struct {
	Queue             string
	MaxAttempts       int
	RetryBackoff      time.Duration
	MaxRetryBackoff   time.Duration
	PollTimeout       time.Duration
	StatsSchedule     string
	WorkerID          string
	WorkerMetricsPort string
}

// RateLimitConfig limits login and registration attempts per client IP
type RateLimitConfig struct {
	RPS   float64
	Burst int
}

// Load loads configuration from environment variables
func Load() *Config {
	hostname, _ := os.Hostname()
	if hostname == "" {
		hostname = "worker"
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8000"),
			Env:  getEnv("SERVER_ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:        getEnv("DB_HOST", "localhost"),
			Port:        getEnvAsInt("DB_PORT", 5432),
			User:        getEnv("DB_USER", "postgres"),
			Password:    getEnv("DB_PASSWORD", "postgres"),
			DBName:      getEnv("DB_NAME", "e_commerce"),
			SSLMode:     getEnv("DB_SSLMODE", "disable"),
			AutoMigrate: getEnvAsBool("DB_AUTO_MIGRATE", false),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379"),
			PASSWORD: getEnv("REDIS_PASSWORD", ""),
		},
		JWT: JWTConfig{
			Secret:        getEnv("JWT_SECRET", "change-this-in-production"),
			SessionExpiry: getEnvAsDuration("SESSION_TTL", time.Hour),
			VerifyExpiry:  getEnvAsDuration("VERIFY_TOKEN_TTL", time.Hour),
			ResetExpiry:   getEnvAsDuration("RESET_TOKEN_TTL", time.Hour),
		},
		Session: SessionConfig{
			CookieName:    getEnv("SESSION_COOKIE_NAME", "e_commerce"),
			CookieSecure:  getEnvAsBool("SESSION_COOKIE_SECURE", false),
			EncryptionKey: getEnv("SESSION_ENCRYPTION_KEY", "0000000000000000000000000000000000000000000000000000000000000000"), // 32-bytes hex string
		},
		App: AppConfig{
			PublicURL:        getEnv("APP_PUBLIC_URL", "http://localhost:8000"),
			AllowSelfPromote: getEnvAsBool("ALLOW_SELF_PROMOTE", false),
			AllowedOrigins:   getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		},
		Mail: MailConfig{
			Host:     getEnv("SMTP_HOST", ""),
			Port:     getEnvAsInt("SMTP_PORT", 465),
			User:     getEnv("SMTP_USER", ""),
			Password: getEnv("SMTP_PASS", ""),
			From:     getEnv("MAIL_FROM", getEnv("SMTP_USER", "no-reply@e-commerce.local")),
		},
		Notifications: NotificationConfig{
			Queue:             getEnv("EMAIL_QUEUE", "notifications:email"),
			MaxAttempts:       getEnvAsInt("EMAIL_MAX_ATTEMPTS", 5),
			RetryBackoff:      getEnvAsDuration("EMAIL_RETRY_BACKOFF", 5*time.Second),
			MaxRetryBackoff:   getEnvAsDuration("EMAIL_MAX_RETRY_BACKOFF", 5*time.Minute),
			PollTimeout:       getEnvAsDuration("EMAIL_POLL_TIMEOUT", 5*time.Second),
			StatsSchedule:     getEnv("QUEUE_STATS_SCHEDULE", "@every 30s"),
			WorkerID:          getEnv("WORKER_ID", hostname),
			WorkerMetricsPort: getEnv("WORKER_METRICS_PORT", "9100"),
		},
		RateLimit: RateLimitConfig{
			RPS:   getEnvAsFloat("AUTH_RATE_LIMIT_RPS", 1),
			Burst: getEnvAsInt("AUTH_RATE_LIMIT_BURST", 5),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getEnvAsSlice splits a comma separated value, dropping blanks
func getEnvAsSlice(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
