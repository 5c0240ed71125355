package config

import (
	"os"
	"path/filepath"
	"testing"
)

const validYAML = `
server:
  host: 127.0.0.1
  port: 8587
storage:
  dir: /var/lib/vaultlog
auth:
  api_key: topsecret
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// TestLoadValid verifies a complete YAML file parses into the expected
// config values.
func TestLoadValid(t *testing.T) {
	cfg, err := Load(writeConfig(t, validYAML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Host != "127.0.0.1" || cfg.Server.Port != 8587 {
		t.Errorf("server = %+v", cfg.Server)
	}
	if cfg.Storage.Dir != "/var/lib/vaultlog" {
		t.Errorf("storage.dir = %q", cfg.Storage.Dir)
	}
	if cfg.Auth.APIKey != "topsecret" {
		t.Errorf("auth.api_key = %q", cfg.Auth.APIKey)
	}
}

// TestLoadEnvOverrides verifies VAULTLOG_* env vars win over the file.
func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("VAULTLOG_SERVER_PORT", "9000")
	t.Setenv("VAULTLOG_STORAGE_DIR", "/tmp/override")
	t.Setenv("VAULTLOG_AUTH_API_KEY", "from-env")

	cfg, err := Load(writeConfig(t, validYAML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Storage.Dir != "/tmp/override" {
		t.Errorf("storage.dir = %q", cfg.Storage.Dir)
	}
	if cfg.Auth.APIKey != "from-env" {
		t.Errorf("api_key = %q", cfg.Auth.APIKey)
	}
}

// TestLoadMissingPort verifies a config without a port fails validation
// unless the tsnet listener is enabled.
func TestLoadMissingPort(t *testing.T) {
	_, err := Load(writeConfig(t, `
storage:
  dir: /var/lib/vaultlog
`))
	if err == nil {
		t.Fatal("expected validation error for missing port")
	}
}

// TestLoadTailscaleNoPort verifies tailscale mode does not require a
// TCP port but does require a hostname.
func TestLoadTailscaleNoPort(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
storage:
  dir: /var/lib/vaultlog
tailscale:
  enabled: true
  hostname: vaultlog
`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Tailscale.Enabled || cfg.Tailscale.Hostname != "vaultlog" {
		t.Errorf("tailscale = %+v", cfg.Tailscale)
	}

	_, err = Load(writeConfig(t, `
storage:
  dir: /var/lib/vaultlog
tailscale:
  enabled: true
`))
	if err == nil {
		t.Fatal("expected validation error for missing tailscale hostname")
	}
}

// TestLoadMissingStorageDir verifies storage.dir is mandatory.
func TestLoadMissingStorageDir(t *testing.T) {
	_, err := Load(writeConfig(t, `
server:
  port: 8587
`))
	if err == nil {
		t.Fatal("expected validation error for missing storage.dir")
	}
}

// TestLoadMissingFile verifies a helpful error for a nonexistent path.
func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}
