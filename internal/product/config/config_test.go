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
	if cfg.GRPCAddr != "127.0.0.1:50054" {
		t.Errorf("Expected GRPCAddr=127.0.0.1:50054, got %s", cfg.GRPCAddr)
	}
	if cfg.DatabaseName != "ecommerce" {
		t.Errorf("Expected DatabaseName=ecommerce, got %s", cfg.DatabaseName)
	}
}

func TestLoad_DockerDefaults(t *testing.T) {
	os.Clearenv()
	os.Setenv("APP_ENV", "docker")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.GRPCAddr != "0.0.0.0:50054" {
		t.Errorf("Expected GRPCAddr=0.0.0.0:50054, got %s", cfg.GRPCAddr)
	}
	if cfg.RedisAddr != "redis:6379" {
		t.Errorf("Expected RedisAddr=redis:6379, got %s", cfg.RedisAddr)
	}
}

func TestLoad_InvalidAppEnv(t *testing.T) {
	os.Clearenv()
	os.Setenv("APP_ENV", "staging")

	_, err := Load()
	if err == nil {
		t.Fatal("Expected error for invalid APP_ENV, got nil")
	}
}
