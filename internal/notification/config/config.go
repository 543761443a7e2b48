package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	platformkafka "github.com/Sarveshdongare2705/ecommerce-grpc/platform/kafka"
)

// Env представляет окружение приложения
type Env string

const (
	// EnvLocal - локальное окружение (для разработки на хосте)
	EnvLocal Env = "local"
	// EnvDocker - Docker окружение (для запуска в контейнерах)
	EnvDocker Env = "docker"
)

// Config содержит конфигурацию Notification Service
type Config struct {
	AppEnv                Env
	GRPCAddr              string
	MongoURI              string
	DatabaseName          string // общий документный store всех сервисов
	Kafka                 platformkafka.Config
	KafkaRetryMaxAttempts int
	KafkaRetryBackoffBase time.Duration
	SMSEnabled            bool // false = no-op sender, смс только в логах
	TwilioAccountSID      string
	TwilioAuthToken       string
	TwilioFromNumber      string
	EnableGRPCReflection  bool
	ShutdownTimeout       time.Duration
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
		cfg.GRPCAddr = getString("GRPC_ADDR", "127.0.0.1:50055")
		cfg.MongoURI = getString("MONGO_URI", "mongodb://127.0.0.1:27017")
		cfg.Kafka.Brokers = []string{"127.0.0.1:9092"}
	} else {
		cfg.GRPCAddr = getString("GRPC_ADDR", "0.0.0.0:50055")
		cfg.MongoURI = getString("MONGO_URI", "mongodb://mongo:27017")
		cfg.Kafka.Brokers = []string{"kafka:9092"}
	}

	cfg.DatabaseName = getString("DATABASE_NAME", "ecommerce")
	// Дефолты заданы, переменные окружения перекрывают их
	cfg.Kafka.Topic = "order.created"
	cfg.Kafka.GroupID = "notification-order-created"
	if err := platformkafka.LoadEnv(&cfg.Kafka); err != nil {
		return Config{}, fmt.Errorf("invalid kafka config: %w", err)
	}

	maxAttemptsStr := getString("KAFKA_RETRY_MAX_ATTEMPTS", "3")
	maxAttempts, err := strconv.Atoi(maxAttemptsStr)
	if err != nil {
		return Config{}, fmt.Errorf("invalid KAFKA_RETRY_MAX_ATTEMPTS: %w", err)
	}
	cfg.KafkaRetryMaxAttempts = maxAttempts

	backoffStr := getString("KAFKA_RETRY_BACKOFF_BASE", "1s")
	backoff, err := time.ParseDuration(backoffStr)
	if err != nil {
		return Config{}, fmt.Errorf("invalid KAFKA_RETRY_BACKOFF_BASE: %w", err)
	}
	cfg.KafkaRetryBackoffBase = backoff

	cfg.SMSEnabled = getBool("SMS_ENABLED", false)
	cfg.TwilioAccountSID = getString("TWILIO_ACCOUNT_SID", "")
	cfg.TwilioAuthToken = getString("TWILIO_AUTH_TOKEN", "")
	cfg.TwilioFromNumber = getString("TWILIO_FROM_NUMBER", "")

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
	if len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("KAFKA_BROKERS is required")
	}
	if c.Kafka.Topic == "" {
		return fmt.Errorf("KAFKA_TOPIC is required")
	}
	if c.Kafka.GroupID == "" {
		return fmt.Errorf("KAFKA_GROUP_ID is required")
	}
	if c.KafkaRetryMaxAttempts < 1 {
		return fmt.Errorf("KAFKA_RETRY_MAX_ATTEMPTS must be at least 1")
	}
	if c.KafkaRetryBackoffBase <= 0 {
		return fmt.Errorf("KAFKA_RETRY_BACKOFF_BASE must be positive")
	}
	if c.SMSEnabled {
		if c.TwilioAccountSID == "" {
			return fmt.Errorf("TWILIO_ACCOUNT_SID is required when SMS_ENABLED")
		}
		if c.TwilioAuthToken == "" {
			return fmt.Errorf("TWILIO_AUTH_TOKEN is required when SMS_ENABLED")
		}
		if c.TwilioFromNumber == "" {
			return fmt.Errorf("TWILIO_FROM_NUMBER is required when SMS_ENABLED")
		}
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

// Log выводит конфигурацию в лог (с маскировкой секретов)
func (c Config) Log() {
	log.Printf("Config loaded:")
	log.Printf("  APP_ENV: %s", c.AppEnv)
	log.Printf("  GRPC_ADDR: %s", c.GRPCAddr)
	log.Printf("  MONGO_URI: %s", maskMongoURI(c.MongoURI))
	log.Printf("  DATABASE_NAME: %s", c.DatabaseName)
	log.Printf("  KAFKA_BROKERS: %s", strings.Join(c.Kafka.Brokers, ","))
	log.Printf("  KAFKA_TOPIC: %s", c.Kafka.Topic)
	log.Printf("  KAFKA_GROUP_ID: %s", c.Kafka.GroupID)
	log.Printf("  KAFKA_RETRY_MAX_ATTEMPTS: %d", c.KafkaRetryMaxAttempts)
	log.Printf("  KAFKA_RETRY_BACKOFF_BASE: %s", c.KafkaRetryBackoffBase)
	log.Printf("  SMS_ENABLED: %v", c.SMSEnabled)
	log.Printf("  TWILIO_ACCOUNT_SID: %s", maskSecret(c.TwilioAccountSID))
	log.Printf("  TWILIO_FROM_NUMBER: %s", c.TwilioFromNumber)
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

// maskSecret маскирует секрет, оставляя первые 4 символа
func maskSecret(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 4 {
		return "***"
	}
	return s[:4] + "***"
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
