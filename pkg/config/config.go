package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Dynamo    DynamoConfig
	Redis     RedisConfig
	NATS      NATSConfig
	JWT       JWTConfig
	Log       LogConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name string
	Port string
	Env  string
}

// DynamoConfig describes the tasks table and how to reach it. Endpoint is
// only set for local development (DynamoDB Local); in AWS the SDK resolves
// the endpoint from the region.
type DynamoConfig struct {
	Region         string
	Endpoint       string
	AccessKey      string
	SecretKey      string
	Table          string
	OwnerIndexName string
	UseOwnerIndex  bool          // owner GSI provisioned for this deployment
	MaxAttempts    int           // initial call + retries for transient faults
	RequestTimeout time.Duration // per store call
}

// RedisConfig backs the rate limiter. Optional: an empty URL disables it.
type RedisConfig struct {
	URL      string
	Password string
	DB       int
}

// NATSConfig backs task event publishing. Optional: an empty URL disables it.
type NATSConfig struct {
	URL string
}

type JWTConfig struct {
	Secret string
}

type LogConfig struct {
	Level      string // debug, info, warn, error
	Format     string // json, text
	Output     string // stdout, file, both
	FilePath   string
	MaxSize    int // MB
	MaxBackups int
	MaxAge     int // days
	Compress   bool
}

type RateLimitConfig struct {
	Enabled bool
	Max     int           // requests per window per client
	Window  time.Duration
}

func LoadConfig() (*Config, error) {
	// Missing .env is fine, plain environment variables are used instead.
	_ = godotenv.Load()

	logMaxSize, _ := strconv.Atoi(getEnv("LOG_MAX_SIZE", "100"))
	logMaxBackups, _ := strconv.Atoi(getEnv("LOG_MAX_BACKUPS", "5"))
	logMaxAge, _ := strconv.Atoi(getEnv("LOG_MAX_AGE", "30"))
	logCompress := getEnv("LOG_COMPRESS", "true") == "true"

	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))

	dynamoMaxAttempts, _ := strconv.Atoi(getEnv("DYNAMO_MAX_ATTEMPTS", "4"))
	dynamoTimeoutMs, _ := strconv.Atoi(getEnv("DYNAMO_TIMEOUT_MS", "5000"))

	rateLimitMax, _ := strconv.Atoi(getEnv("RATE_LIMIT_MAX", "120"))
	rateLimitWindowSec, _ := strconv.Atoi(getEnv("RATE_LIMIT_WINDOW_SEC", "60"))

	config := &Config{
		App: AppConfig{
			Name: getEnv("APP_NAME", "Taskboard API"),
			Port: getEnv("APP_PORT", "8080"),
			Env:  getEnv("APP_ENV", "development"),
		},
		Dynamo: DynamoConfig{
			Region:         getEnv("AWS_REGION", "us-east-1"),
			Endpoint:       getEnv("DYNAMO_ENDPOINT", ""),
			AccessKey:      getEnv("AWS_ACCESS_KEY_ID", ""),
			SecretKey:      getEnv("AWS_SECRET_ACCESS_KEY", ""),
			Table:          getEnv("TASKS_TABLE", "tasks"),
			OwnerIndexName: getEnv("TASKS_OWNER_INDEX", "OwnerIdIndex"),
			UseOwnerIndex:  getEnv("USE_OWNER_INDEX", "false") == "true",
			MaxAttempts:    dynamoMaxAttempts,
			RequestTimeout: time.Duration(dynamoTimeoutMs) * time.Millisecond,
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		NATS: NATSConfig{
			URL: getEnv("NATS_URL", ""),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "your-secret-key"),
		},
		Log: LogConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Format:     getEnv("LOG_FORMAT", "json"),
			Output:     getEnv("LOG_OUTPUT", "stdout"),
			FilePath:   getEnv("LOG_FILE", "logs/app.log"),
			MaxSize:    logMaxSize,
			MaxBackups: logMaxBackups,
			MaxAge:     logMaxAge,
			Compress:   logCompress,
		},
		RateLimit: RateLimitConfig{
			Enabled: getEnv("RATE_LIMIT_ENABLED", "false") == "true",
			Max:     rateLimitMax,
			Window:  time.Duration(rateLimitWindowSec) * time.Second,
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
