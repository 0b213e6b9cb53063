package config

import (
	"fmt"
	"os"
	"path/filepath"

	"sigs.k8s.io/yaml"
)

// DefaultNamespace is the namespace shown when nothing else was resolved.
const DefaultNamespace = "bdk"

// DefaultEnvContextPatterns maps environments to the substring that
// identifies their kube contexts. A context switch targets the first context
// whose name contains the pattern.
func DefaultEnvContextPatterns() map[string]string {
	return map[string]string{
		"local": "kind-",
		"dev":   "kognitos-dev",
		"stg":   "kognitos-stg",
		"prod":  "kognitos-prod",
	}
}

// LoadConfig reads the Mission Control configuration from a YAML file.
// A missing file is not an error: the defaults are enough to run against the
// standard kubeconfig.
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = findDefaultConfigPath()
	}

	var cfg Config
	data, err := os.ReadFile(configPath)
	switch {
	case os.IsNotExist(err):
		// Run on defaults.
	case err != nil:
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
		}
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	setDefaults(&cfg)

	return &cfg, nil
}

// findDefaultConfigPath looks for a config file in standard locations,
// following the XDG specification and common practice.
func findDefaultConfigPath() string {
	// Current directory first.
	if _, err := os.Stat("./mission-control.yaml"); err == nil {
		return "./mission-control.yaml"
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".mission-control", "config.yaml")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
	}

	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" && homeDir != "" {
		configDir = filepath.Join(homeDir, ".config")
	}

	if configDir != "" {
		configPath := filepath.Join(configDir, "mission-control", "config.yaml")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
	}

	if homeDir != "" {
		return filepath.Join(homeDir, ".mission-control", "config.yaml")
	}

	return "./mission-control.yaml"
}

// validateConfig rejects configurations that would only fail later with a
// much less helpful message.
func validateConfig(cfg *Config) error {
	if cfg.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %d", cfg.Timeout)
	}

	if cfg.GitopsPath != "" {
		if _, err := os.Stat(cfg.GitopsPath); err != nil {
			return fmt.Errorf("gitopsPath not found: %s", cfg.GitopsPath)
		}
	}

	for env := range cfg.EnvContextPatterns {
		switch env {
		case "local", "dev", "stg", "prod":
		default:
			return fmt.Errorf("unknown environment %q in envContextPatterns", env)
		}
	}

	return nil
}

// setDefaults fills in reasonable default values for missing configuration.
func setDefaults(cfg *Config) {
	if cfg.KubeconfigPath == "" {
		if homeDir, err := os.UserHomeDir(); err == nil {
			cfg.KubeconfigPath = filepath.Join(homeDir, ".kube", "config")
		}
	}

	if cfg.DefaultNamespace == "" {
		cfg.DefaultNamespace = DefaultNamespace
	}

	if cfg.Timeout == 0 {
		cfg.Timeout = 30
	}

	if cfg.EnvContextPatterns == nil {
		cfg.EnvContextPatterns = DefaultEnvContextPatterns()
	} else {
		// Partial maps inherit the missing standard entries.
		for env, pattern := range DefaultEnvContextPatterns() {
			if _, ok := cfg.EnvContextPatterns[env]; !ok {
				cfg.EnvContextPatterns[env] = pattern
			}
		}
	}
}
