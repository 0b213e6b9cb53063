package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test-config.yaml")

	configContent := `
defaultNamespace: "org-acme-ws-main"
timeout: 60
kubeconfigPath: "/tmp/kubeconfig"
envContextPatterns:
  dev: "acme-dev"
`

	err := os.WriteFile(configPath, []byte(configContent), 0644)
	if err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.DefaultNamespace != "org-acme-ws-main" {
		t.Errorf("Expected namespace 'org-acme-ws-main', got '%s'", cfg.DefaultNamespace)
	}

	if cfg.Timeout != 60 {
		t.Errorf("Expected timeout 60, got %d", cfg.Timeout)
	}

	// Overridden entry wins, standard entries are still filled in.
	if cfg.EnvContextPatterns["dev"] != "acme-dev" {
		t.Errorf("Expected dev pattern 'acme-dev', got '%s'", cfg.EnvContextPatterns["dev"])
	}
	if cfg.EnvContextPatterns["prod"] != "kognitos-prod" {
		t.Errorf("Expected prod pattern 'kognitos-prod', got '%s'", cfg.EnvContextPatterns["prod"])
	}
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("Missing config file should not be an error, got: %v", err)
	}

	if cfg.DefaultNamespace != DefaultNamespace {
		t.Errorf("Expected default namespace %q, got %q", DefaultNamespace, cfg.DefaultNamespace)
	}
	if cfg.Timeout != 30 {
		t.Errorf("Expected default timeout 30, got %d", cfg.Timeout)
	}
	if cfg.EnvContextPatterns["local"] != "kind-" {
		t.Errorf("Expected local pattern 'kind-', got %q", cfg.EnvContextPatterns["local"])
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{
			name:    "empty config is valid",
			config:  &Config{},
			wantErr: false,
		},
		{
			name:    "negative timeout",
			config:  &Config{Timeout: -1},
			wantErr: true,
		},
		{
			name: "unknown environment",
			config: &Config{
				EnvContextPatterns: map[string]string{"qa": "acme-qa"},
			},
			wantErr: true,
		},
		{
			name: "missing gitops path",
			config: &Config{
				GitopsPath: "/definitely/not/a/real/path",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateConfig(tt.config)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
