package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			// Not every invocation needs a project; the built-in
			// network table still works with env-supplied RPC URLs.
			projectRoot = "."
		}
	}

	// .env may hold RPC URL secrets referenced from wirecheck.toml
	_ = godotenv.Load(filepath.Join(projectRoot, ".env"))

	wireFile, err := LoadWireFile(projectRoot)
	if err != nil {
		return nil, err
	}

	cfg := &RuntimeConfig{
		ProjectRoot:    projectRoot,
		AppName:        wireFile.AppName,
		DeploymentsDir: wireFile.DeploymentsDir,
		Networks:       wireFile.Networks,
		Retry: RetryConfig{
			Attempts:  v.GetUint("retry_attempts"),
			BaseDelay: v.GetDuration("retry_base_delay"),
		},
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
	}

	if name := v.GetString("app_name"); name != "" {
		cfg.AppName = name
	}
	if cfg.DeploymentsDir == "" {
		cfg.DeploymentsDir = v.GetString("deployments_dir")
	}
	if wireFile.Retry.Attempts > 0 {
		cfg.Retry.Attempts = wireFile.Retry.Attempts
	}
	if wireFile.Retry.BaseDelay != "" {
		delay, err := time.ParseDuration(wireFile.Retry.BaseDelay)
		if err != nil {
			return nil, fmt.Errorf("invalid retry.base_delay: %w", err)
		}
		cfg.Retry.BaseDelay = delay
	}

	// Zero attempts means retry-forever in retry-go; one attempt is the floor.
	if cfg.Retry.Attempts == 0 {
		cfg.Retry.Attempts = 1
	}

	return cfg, nil
}

// FindProjectRoot walks up from current directory to find wirecheck.toml
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		wireToml := filepath.Join(dir, "wirecheck.toml")
		if _, err := os.Stat(wireToml); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a wirecheck project (wirecheck.toml not found)")
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string) *viper.Viper {
	v := viper.New()

	v.Set("project_root", projectRoot)

	v.SetEnvPrefix("WIRECHECK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	v.SetDefault("retry_attempts", 4)
	v.SetDefault("retry_base_delay", "250ms")
	v.SetDefault("deployments_dir", "deployments")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)

	return v
}
