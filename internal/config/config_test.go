package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("API_PORT", "")
	t.Setenv("AI_PROVIDER", "")
	t.Setenv("AI_TIMEOUT_SECONDS", "")
	t.Setenv("MAX_UPLOAD_BYTES", "")
	t.Setenv("CONFIG_FILE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.APIPort != "8080" {
		t.Fatalf("expected default api port 8080, got %q", cfg.APIPort)
	}
	if cfg.AIProvider != "google" {
		t.Fatalf("expected default provider google, got %q", cfg.AIProvider)
	}
	if cfg.AITimeoutSeconds != 60 {
		t.Fatalf("expected default timeout 60, got %d", cfg.AITimeoutSeconds)
	}
	if cfg.MaxUploadBytes != 10<<20 {
		t.Fatalf("expected default upload limit 10MiB, got %d", cfg.MaxUploadBytes)
	}
	if !cfg.BreakerEnabled {
		t.Fatal("expected breaker enabled by default")
	}
}

func TestLoadParsesOverrides(t *testing.T) {
	t.Setenv("API_PORT", "9999")
	t.Setenv("AI_PROVIDER", "openai")
	t.Setenv("AI_REQUESTS_PER_SECOND", "2.5")
	t.Setenv("BREAKER_ENABLED", "false")
	t.Setenv("CONFIG_FILE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.APIPort != "9999" {
		t.Fatalf("expected api port override, got %q", cfg.APIPort)
	}
	if cfg.AIProvider != "openai" {
		t.Fatalf("expected provider override, got %q", cfg.AIProvider)
	}
	if cfg.AIRequestsPerSecond != 2.5 {
		t.Fatalf("expected rps override, got %f", cfg.AIRequestsPerSecond)
	}
	if cfg.BreakerEnabled {
		t.Fatal("expected breaker disabled")
	}
}

func TestLoadYAMLOverlayWinsOverEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("api_port: \"7070\"\nai_model: custom-model\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	t.Setenv("API_PORT", "9999")
	t.Setenv("AI_MODEL", "")
	t.Setenv("CONFIG_FILE", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.APIPort != "7070" {
		t.Fatalf("yaml overlay must win, got api port %q", cfg.APIPort)
	}
	if cfg.AIModel != "custom-model" {
		t.Fatalf("yaml overlay must set ai model, got %q", cfg.AIModel)
	}
}

func TestLoadMissingConfigFileFails(t *testing.T) {
	t.Setenv("CONFIG_FILE", "/does/not/exist.yaml")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
