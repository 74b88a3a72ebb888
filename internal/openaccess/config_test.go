package openaccess

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SMITHSONIAN_API_KEY",
		"SMITHSONIAN_BASE_URL",
		"SMITHSONIAN_TIMEOUT",
		"SMITHSONIAN_USER_AGENT",
		"SMITHSONIAN_CONFIG",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("SMITHSONIAN_API_KEY", "key-123")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.APIKey != "key-123" {
		t.Errorf("APIKey = %q", cfg.APIKey)
	}
	if cfg.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %q, want default", cfg.BaseURL)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", cfg.Timeout, DefaultTimeout)
	}
}

func TestLoadConfigMissingKey(t *testing.T) {
	clearEnv(t)

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error when SMITHSONIAN_API_KEY is unset")
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SMITHSONIAN_API_KEY", "key-123")
	t.Setenv("SMITHSONIAN_BASE_URL", "http://localhost:8080")
	t.Setenv("SMITHSONIAN_TIMEOUT", "5s")
	t.Setenv("SMITHSONIAN_USER_AGENT", "custom-agent/2.0")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.BaseURL != "http://localhost:8080" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", cfg.Timeout)
	}
	if cfg.UserAgent != "custom-agent/2.0" {
		t.Errorf("UserAgent = %q", cfg.UserAgent)
	}
}

func TestLoadConfigInvalidTimeoutIgnored(t *testing.T) {
	clearEnv(t)
	t.Setenv("SMITHSONIAN_API_KEY", "key-123")
	t.Setenv("SMITHSONIAN_TIMEOUT", "soon")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want default for unparseable value", cfg.Timeout)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "api_key: file-key\nbase_url: http://file.example.com\ntimeout: 45s\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SMITHSONIAN_CONFIG", path)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.APIKey != "file-key" {
		t.Errorf("APIKey = %q, want file-key", cfg.APIKey)
	}
	if cfg.BaseURL != "http://file.example.com" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.Timeout != 45*time.Second {
		t.Errorf("Timeout = %v, want 45s", cfg.Timeout)
	}
}

func TestLoadConfigEnvWinsOverFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("api_key: file-key\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SMITHSONIAN_CONFIG", path)
	t.Setenv("SMITHSONIAN_API_KEY", "env-key")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.APIKey != "env-key" {
		t.Errorf("APIKey = %q, env should win over file", cfg.APIKey)
	}
}

func TestLoadConfigBadFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("SMITHSONIAN_API_KEY", "key-123")

	t.Run("missing file", func(t *testing.T) {
		t.Setenv("SMITHSONIAN_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))
		if _, err := LoadConfig(); err == nil {
			t.Error("expected error for missing config file")
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		if err := os.WriteFile(path, []byte("{not yaml"), 0o600); err != nil {
			t.Fatal(err)
		}
		t.Setenv("SMITHSONIAN_CONFIG", path)
		if _, err := LoadConfig(); err == nil {
			t.Error("expected error for invalid yaml")
		}
	})

	t.Run("invalid timeout in file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad-timeout.yaml")
		if err := os.WriteFile(path, []byte("timeout: never\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		t.Setenv("SMITHSONIAN_CONFIG", path)
		if _, err := LoadConfig(); err == nil {
			t.Error("expected error for invalid timeout in file")
		}
	})
}
