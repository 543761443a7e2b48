package config

import (
	"fmt"
	"log"
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

// Cache backend для корзины
const (
	CacheBackendRedis  = "redis"
	CacheBackendMemory = "memory"
)

// Config содержит конфигурацию Cart Service
type Config struct {
	AppEnv               Env
	GRPCAddr             string
	MongoURI             string
	DatabaseName         string // общий документный store всех сервисов
	CacheBackend         string // redis | memory
	RedisAddr            string
	CacheTTL             time.Duration
	AuthEnabled          bool   // проверка сессий через User Service
	UserGRPCAddr         string // адрес User Service для проверки сессий
	EnableGRPCReflection bool
	ShutdownTimeout      time.Duration
}

// Load загружает конфигурацию из переменных окружения
// Читает APP_ENV и устанавливает дефолты в зависимости от окружения
func Load() (Config, error) {
	cfg := Config{}

	appEnvStr := getString("APP_ENV", string(EnvLocal))
	appEnv := Env(appEnvStr)
	if appEnv != EnvLocal && appEnv != EnvDocker {
		return Config{}, fmt.Errorf("invalid APP_ENV: %s (must be 'local' or 'docker')", appEnvStr)
	}
	cfg.AppEnv = appEnv

	if cfg.AppEnv == EnvLocal {
		cfg.GRPCAddr = getString("GRPC_ADDR", "127.0.0.1:50053")
		cfg.MongoURI = getString("MONGO_URI", "mongodb://127.0.0.1:27017")
		cfg.RedisAddr = getString("REDIS_ADDR", "127.0.0.1:6379")
		cfg.UserGRPCAddr = getString("USER_GRPC_ADDR", "127.0.0.1:50051")
	} else {
		cfg.GRPCAddr = getString("GRPC_ADDR", "0.0.0.0:50053")
		cfg.MongoURI = getString("MONGO_URI", "mongodb://mongo:27017")
		cfg.RedisAddr = getString("REDIS_ADDR", "redis:6379")
		cfg.UserGRPCAddr = getString("USER_GRPC_ADDR", "user:50051")
	}

	cfg.DatabaseName = getString("DATABASE_NAME", "ecommerce")

	cfg.CacheBackend = getString("CACHE_BACKEND", CacheBackendRedis)
	if cfg.CacheBackend != CacheBackendRedis && cfg.CacheBackend != CacheBackendMemory {
		return Config{}, fmt.Errorf("invalid CACHE_BACKEND: %s (must be 'redis' or 'memory')", cfg.CacheBackend)
	}

	cacheTTLStr := getString("CACHE_TTL", "60s")
	cacheTTL, err := time.ParseDuration(cacheTTLStr)
	if err != nil {
		return Config{}, fmt.Errorf("invalid CACHE_TTL: %w", err)
	}
	cfg.CacheTTL = cacheTTL

	cfg.AuthEnabled = getBool("AUTH_ENABLED", false)
	cfg.EnableGRPCReflection = getBool("ENABLE_GRPC_REFLECTION", false)

	shutdownTimeoutStr := getString("SHUTDOWN_TIMEOUT", "5s")
	shutdownTimeout, err := time.ParseDuration(shutdownTimeoutStr)
	if err != nil {
		return Config{}, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
	}
	cfg.ShutdownTimeout = shutdownTimeout

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate проверяет корректность конфигурации
func (c Config) Validate() error {
	if c.GRPCAddr == "" {
		return fmt.Errorf("GRPC_ADDR is required")
	}
	if c.MongoURI == "" {
		return fmt.Errorf("MONGO_URI is required")
	}
	if c.DatabaseName == "" {
		return fmt.Errorf("DATABASE_NAME is required")
	}
	if c.CacheBackend == CacheBackendRedis && c.RedisAddr == "" {
		return fmt.Errorf("REDIS_ADDR is required for redis cache backend")
	}
	if c.CacheTTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive")
	}
	if c.AuthEnabled && c.UserGRPCAddr == "" {
		return fmt.Errorf("USER_GRPC_ADDR is required when AUTH_ENABLED")
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

// Log выводит конфигурацию в лог (с маскировкой паролей)
func (c Config) Log() {
	log.Printf("Config loaded:")
	log.Printf("  APP_ENV: %s", c.AppEnv)
	log.Printf("  GRPC_ADDR: %s", c.GRPCAddr)
	log.Printf("  MONGO_URI: %s", maskMongoURI(c.MongoURI))
	log.Printf("  DATABASE_NAME: %s", c.DatabaseName)
	log.Printf("  CACHE_BACKEND: %s", c.CacheBackend)
	log.Printf("  REDIS_ADDR: %s", c.RedisAddr)
	log.Printf("  CACHE_TTL: %s", c.CacheTTL)
	log.Printf("  AUTH_ENABLED: %v", c.AuthEnabled)
	log.Printf("  USER_GRPC_ADDR: %s", c.UserGRPCAddr)
	log.Printf("  ENABLE_GRPC_REFLECTION: %v", c.EnableGRPCReflection)
	log.Printf("  SHUTDOWN_TIMEOUT: %s", c.ShutdownTimeout)
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

// maskMongoURI маскирует пароль в MongoDB URI для безопасного логирования
func maskMongoURI(uri string) string {
	masked := uri
	for i := 0; i < len(uri)-1; i++ {
		if uri[i] == ':' && i+1 < len(uri) && uri[i+1] != '/' {
			for j := i + 1; j < len(uri); j++ {
				if uri[j] == '@' {
					masked = uri[:i+1] + "***" + uri[j:]
					break
				}
			}
			break
		}
	}
	return masked
}
