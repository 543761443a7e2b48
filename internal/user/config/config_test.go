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
	if cfg.GRPCAddr != "127.0.0.1:50051" {
		t.Errorf("Expected GRPCAddr=127.0.0.1:50051, got %s", cfg.GRPCAddr)
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Errorf("Expected SessionTTL=24h, got %s", cfg.SessionTTL)
	}
}

func TestLoad_DockerDefaults(t *testing.T) {
	os.Clearenv()
	os.Setenv("APP_ENV", "docker")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.GRPCAddr != "0.0.0.0:50051" {
		t.Errorf("Expected GRPCAddr=0.0.0.0:50051, got %s", cfg.GRPCAddr)
	}
	if cfg.RedisAddr != "redis:6379" {
		t.Errorf("Expected RedisAddr=redis:6379, got %s", cfg.RedisAddr)
	}
}

func TestLoad_InvalidSessionTTL(t *testing.T) {
	os.Clearenv()
	os.Setenv("APP_ENV", "local")
	os.Setenv("SESSION_TTL", "yesterday")

	_, err := Load()
	if err == nil {
		t.Fatal("Expected error for invalid SESSION_TTL, got nil")
	}
}
