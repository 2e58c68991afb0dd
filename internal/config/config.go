package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DevJWTSecret signs tokens when JWT_SECRET is unset outside production.
const DevJWTSecret = "change-me"

var ErrInsecureJWTSecret = errors.New("JWT_SECRET must be set to a non-default value in production")

type Config struct {
	AppEnv         string
	AppPort        string
	DbHost         string
	DbPort         string
	DbUser         string
	DbPassword     string
	DbName         string
	DbParams       string
	RunMigrations  bool
	TrustedProxies []string
	AllowedOrigins []string

	JWTSecret  string
	JWTTTL     time.Duration
	BcryptCost int

	RedisURL string

	S3Bucket        string
	S3Region        string
	S3Endpoint      string
	S3PublicBaseURL string

	AIEndpoint string
	AIAPIKey   string
	AITimeout  time.Duration

	CounterAuditSchedule string

	LogFile       string
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		AppPort:        getEnv("APP_PORT", "8080"),
		DbHost:         getEnv("MYSQL_HOST", "db"),
		DbPort:         getEnv("MYSQL_PORT", "3306"),
		DbUser:         getEnv("MYSQL_USER", "taskhub"),
		DbPassword:     getEnv("MYSQL_PASSWORD", "taskhub"),
		DbName:         getEnv("MYSQL_DATABASE", "taskhub"),
		DbParams:       getEnv("MYSQL_PARAMS", "parseTime=true&multiStatements=true"),
		RunMigrations:  getEnvBool("MIGRATIONS_ENABLED", true),
		TrustedProxies: parseList(os.Getenv("TRUSTED_PROXIES")),
		AllowedOrigins: parseList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173")),

		JWTSecret:  getEnv("JWT_SECRET", DevJWTSecret),
		JWTTTL:     time.Duration(getEnvInt("JWT_TTL_HOURS", 24)) * time.Hour,
		BcryptCost: getEnvInt("BCRYPT_COST", 10),

		RedisURL: getEnv("REDIS_URL", ""),

		S3Bucket:        getEnv("S3_BUCKET", ""),
		S3Region:        getEnv("S3_REGION", "us-east-1"),
		S3Endpoint:      getEnv("S3_ENDPOINT", ""),
		S3PublicBaseURL: getEnv("S3_PUBLIC_BASE_URL", ""),

		AIEndpoint: getEnv("AI_ENDPOINT", "https://router.huggingface.co/hf-inference/models/facebook/bart-large-cnn/pipeline/summarization"),
		AIAPIKey:   getEnv("AI_API_KEY", ""),
		AITimeout:  time.Duration(getEnvInt("AI_TIMEOUT_SECONDS", 60)) * time.Second,

		CounterAuditSchedule: getEnv("COUNTER_AUDIT_SCHEDULE", "@hourly"),

		LogFile:       getEnv("LOG_FILE", ""),
		LogMaxSizeMB:  getEnvInt("LOG_MAX_SIZE_MB", 100),
		LogMaxBackups: getEnvInt("LOG_MAX_BACKUPS", 5),
		LogMaxAgeDays: getEnvInt("LOG_MAX_AGE_DAYS", 28),
	}
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Validate rejects settings the API must not start with.
func (c *Config) Validate() error {
	if c.IsProduction() {
		secret := strings.TrimSpace(c.JWTSecret)
		if secret == "" || secret == DevJWTSecret {
			return ErrInsecureJWTSecret
		}
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return parsed
}

func parseList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil
	}

	return items
}
