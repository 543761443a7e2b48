package config

import (
	"os"
	"testing"
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
	if cfg.GRPCAddr != "127.0.0.1:50052" {
		t.Errorf("Expected GRPCAddr=127.0.0.1:50052, got %s", cfg.GRPCAddr)
	}
	if cfg.CartGRPCAddr != "127.0.0.1:50053" {
		t.Errorf("Expected CartGRPCAddr=127.0.0.1:50053, got %s", cfg.CartGRPCAddr)
	}
	if len(cfg.Kafka.Brokers) != 1 || cfg.Kafka.Brokers[0] != "127.0.0.1:9092" {
		t.Errorf("Expected KafkaBrokers=[127.0.0.1:9092], got %v", cfg.Kafka.Brokers)
	}
	if cfg.Kafka.Topic != "order.created" {
		t.Errorf("Expected KafkaTopic=order.created, got %s", cfg.Kafka.Topic)
	}
}

func TestLoad_DockerDefaults(t *testing.T) {
	os.Clearenv()
	os.Setenv("APP_ENV", "docker")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.GRPCAddr != "0.0.0.0:50052" {
		t.Errorf("Expected GRPCAddr=0.0.0.0:50052, got %s", cfg.GRPCAddr)
	}
	if cfg.MongoURI != "mongodb://mongo:27017" {
		t.Errorf("Expected MongoURI=mongodb://mongo:27017, got %s", cfg.MongoURI)
	}
	if cfg.CartGRPCAddr != "cart:50053" {
		t.Errorf("Expected CartGRPCAddr=cart:50053, got %s", cfg.CartGRPCAddr)
	}
	if len(cfg.Kafka.Brokers) != 1 || cfg.Kafka.Brokers[0] != "kafka:9092" {
		t.Errorf("Expected KafkaBrokers=[kafka:9092], got %v", cfg.Kafka.Brokers)
	}
}

func TestLoad_InvalidAppEnv(t *testing.T) {
	os.Clearenv()
	os.Setenv("APP_ENV", "production")

	_, err := Load()
	if err == nil {
		t.Fatal("Expected error for invalid APP_ENV, got nil")
	}
}

func TestLoad_KafkaBrokersList(t *testing.T) {
	os.Clearenv()
	os.Setenv("APP_ENV", "local")
	os.Setenv("KAFKA_BROKERS", "broker1:9092,broker2:9092,broker3:9092")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if len(cfg.Kafka.Brokers) != 3 {
		t.Fatalf("Expected 3 brokers, got %v", cfg.Kafka.Brokers)
	}
	if cfg.Kafka.Brokers[1] != "broker2:9092" {
		t.Errorf("Expected broker2:9092, got %s", cfg.Kafka.Brokers[1])
	}
}

func TestLoad_InvalidShutdownTimeout(t *testing.T) {
	os.Clearenv()
	os.Setenv("APP_ENV", "local")
	os.Setenv("SHUTDOWN_TIMEOUT", "not-a-duration")

	_, err := Load()
	if err == nil {
		t.Fatal("Expected error for invalid SHUTDOWN_TIMEOUT, got nil")
	}
}
