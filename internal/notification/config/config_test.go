package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_LocalDefaults(t *testing.T) {
	os.Clearenv()
	os.Setenv("APP_ENV", "local")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.AppEnv != EnvLocal {
		t.Errorf("Expected AppEnv=local, got %s", cfg.AppEnv)
	}
	if cfg.GRPCAddr != "127.0.0.1:50055" {
		t.Errorf("Expected GRPCAddr=127.0.0.1:50055, got %s", cfg.GRPCAddr)
	}
	if cfg.Kafka.Topic != "order.created" {
		t.Errorf("Expected KafkaTopic=order.created, got %s", cfg.Kafka.Topic)
	}
	if cfg.Kafka.GroupID != "notification-order-created" {
		t.Errorf("Expected KafkaGroupID=notification-order-created, got %s", cfg.Kafka.GroupID)
	}
	if cfg.KafkaRetryMaxAttempts != 3 {
		t.Errorf("Expected KafkaRetryMaxAttempts=3, got %d", cfg.KafkaRetryMaxAttempts)
	}
	if cfg.KafkaRetryBackoffBase != time.Second {
		t.Errorf("Expected KafkaRetryBackoffBase=1s, got %s", cfg.KafkaRetryBackoffBase)
	}
	if cfg.SMSEnabled {
		t.Error("Expected SMSEnabled=false by default")
	}
}

func TestLoad_DockerDefaults(t *testing.T) {
	os.Clearenv()
	os.Setenv("APP_ENV", "docker")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.GRPCAddr != "0.0.0.0:50055" {
		t.Errorf("Expected GRPCAddr=0.0.0.0:50055, got %s", cfg.GRPCAddr)
	}
	if len(cfg.Kafka.Brokers) != 1 || cfg.Kafka.Brokers[0] != "kafka:9092" {
		t.Errorf("Expected KafkaBrokers=[kafka:9092], got %v", cfg.Kafka.Brokers)
	}
}

func TestLoad_SMSEnabledRequiresTwilioCredentials(t *testing.T) {
	os.Clearenv()
	os.Setenv("APP_ENV", "local")
	os.Setenv("SMS_ENABLED", "true")

	_, err := Load()
	if err == nil {
		t.Fatal("Expected error when SMS_ENABLED without Twilio credentials, got nil")
	}

	os.Setenv("TWILIO_ACCOUNT_SID", "AC0123456789")
	os.Setenv("TWILIO_AUTH_TOKEN", "secret-token")
	os.Setenv("TWILIO_FROM_NUMBER", "+15550001111")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !cfg.SMSEnabled {
		t.Error("Expected SMSEnabled=true")
	}
}

func TestLoad_InvalidRetryAttempts(t *testing.T) {
	os.Clearenv()
	os.Setenv("APP_ENV", "local")
	os.Setenv("KAFKA_RETRY_MAX_ATTEMPTS", "zero")

	_, err := Load()
	if err == nil {
		t.Fatal("Expected error for invalid KAFKA_RETRY_MAX_ATTEMPTS, got nil")
	}
}

func TestMaskSecret(t *testing.T) {
	if got := maskSecret("AC0123456789"); got != "AC01***" {
		t.Errorf("Expected AC01***, got %s", got)
	}
	if got := maskSecret("abc"); got != "***" {
		t.Errorf("Expected ***, got %s", got)
	}
	if got := maskSecret(""); got != "" {
		t.Errorf("Expected empty string, got %s", got)
	}
}
