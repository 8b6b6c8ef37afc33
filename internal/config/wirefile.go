package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// WireFile mirrors the on-disk wirecheck.toml layout.
type WireFile struct {
	AppName        string                   `toml:"app_name"`
	DeploymentsDir string                   `toml:"deployments_dir"`
	Retry          WireFileRetry            `toml:"retry"`
	Networks       map[string]NetworkConfig `toml:"networks"`
}

// WireFileRetry is the [retry] section; base_delay accepts time.ParseDuration syntax.
type WireFileRetry struct {
	Attempts  uint   `toml:"attempts"`
	BaseDelay string `toml:"base_delay"`
}

// LoadWireFile parses wirecheck.toml from the project root. A missing file is
// not an error; the built-in network table still applies.
func LoadWireFile(projectRoot string) (*WireFile, error) {
	path := filepath.Join(projectRoot, "wirecheck.toml")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &WireFile{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var wf WireFile
	if err := toml.Unmarshal(data, &wf); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	// RPC URLs commonly reference secrets, e.g. rpc_url = "https://x.io/${API_KEY}"
	for name, network := range wf.Networks {
		network.RPCURL = os.ExpandEnv(network.RPCURL)
		wf.Networks[name] = network
	}

	return &wf, nil
}
