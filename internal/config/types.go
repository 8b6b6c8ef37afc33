package config

import (
	"time"
)

// NetworkConfig is one [networks.<name>] block from wirecheck.toml.
type NetworkConfig struct {
	RPCURL   string `toml:"rpc_url"`
	Endpoint string `toml:"endpoint"`
	ChainID  uint16 `toml:"chain_id"`
}

// RetryConfig bounds every individual on-chain read.
type RetryConfig struct {
	Attempts  uint
	BaseDelay time.Duration
}

// RuntimeConfig is the resolved configuration for a single invocation,
// assembled from wirecheck.toml, the environment and global flags.
type RuntimeConfig struct {
	// ProjectRoot is the directory containing wirecheck.toml
	ProjectRoot string

	// AppName is the default application name for deployment lookups
	AppName string

	// DeploymentsDir holds per-network deployment artifacts, relative to ProjectRoot
	DeploymentsDir string

	// Networks declared in wirecheck.toml, keyed by name
	Networks map[string]NetworkConfig

	Retry RetryConfig

	Debug          bool
	NonInteractive bool
}
