package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Env представляет окружение приложения
type Env string

const (
	// EnvLocal - локальное окружение (для разработки на хосте)
	EnvLocal Env = "local"
	// EnvDocker - Docker окружение (для запуска в контейнерах)
	EnvDocker Env = "docker"
)

// Config содержит конфигурацию User Service
type Config struct {
	AppEnv               Env
	GRPCAddr             string
	MongoURI             string
	DatabaseName         string
	RedisAddr            string // хранилище сессий
	SessionTTL           time.Duration
	EnableGRPCReflection bool
	ShutdownTimeout      time.Duration
}

// Load загружает конфигурацию из переменных окружения
func Load() (Config, error) {
	cfg := Config{}

	appEnvStr := getString("APP_ENV", string(EnvLocal))
	appEnv := Env(appEnvStr)
	if appEnv != EnvLocal && appEnv != EnvDocker {
		return Config{}, fmt.Errorf("invalid APP_ENV: %s (must be 'local' or 'docker')", appEnvStr)
	}
	cfg.AppEnv = appEnv

	if cfg.AppEnv == EnvLocal {
		cfg.GRPCAddr = getString("GRPC_ADDR", "127.0.0.1:50051")
		cfg.MongoURI = getString("MONGO_URI", "mongodb://127.0.0.1:27017")
		cfg.RedisAddr = getString("REDIS_ADDR", "127.0.0.1:6379")
	} else {
		cfg.GRPCAddr = getString("GRPC_ADDR", "0.0.0.0:50051")
		cfg.MongoURI = getString("MONGO_URI", "mongodb://mongo:27017")
		cfg.RedisAddr = getString("REDIS_ADDR", "redis:6379")
	}

	cfg.DatabaseName = getString("DATABASE_NAME", "ecommerce")

	sessionTTLStr := getString("SESSION_TTL", "24h")
	sessionTTL, err := time.ParseDuration(sessionTTLStr)
	if err != nil {
		return Config{}, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}
	cfg.SessionTTL = sessionTTL

	cfg.EnableGRPCReflection = getBool("ENABLE_GRPC_REFLECTION", false)

	shutdownTimeoutStr := getString("SHUTDOWN_TIMEOUT", "5s")
	shutdownTimeout, err := time.ParseDuration(shutdownTimeoutStr)
	if err != nil {
		return Config{}, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
	}
	cfg.ShutdownTimeout = shutdownTimeout

	if cfg.SessionTTL <= 0 {
		return Config{}, fmt.Errorf("SESSION_TTL must be positive")
	}
	if cfg.ShutdownTimeout <= 0 {
		return Config{}, fmt.Errorf("SHUTDOWN_TIMEOUT must be positive")
	}

	return cfg, nil
}

// getString читает переменную окружения или возвращает дефолт
func getString(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getBool читает булеву переменную окружения или возвращает дефолт
func getBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
