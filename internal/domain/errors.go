package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for configuration lookups
var (
	// ErrUnknownNetwork is returned when a network name is not configured
	ErrUnknownNetwork = errors.New("unknown network")

	// ErrNoRPCURL is returned when a network has no RPC URL configured
	ErrNoRPCURL = errors.New("no RPC URL configured")

	// ErrNoEndpoint is returned when a network has no endpoint address configured
	ErrNoEndpoint = errors.New("no endpoint address configured")

	// ErrNoChainID is returned when a network has no protocol chain id configured
	ErrNoChainID = errors.New("no protocol chain id configured")

	// ErrInvalidAddress is returned when an Ethereum address is invalid
	ErrInvalidAddress = errors.New("invalid address")
)

type NoDeploymentErr struct {
	Network string
	App     string
}

func (e NoDeploymentErr) Error() string {
	return fmt.Sprintf("no deployment artifact for %s on %s", e.App, e.Network)
}

type InvalidOutputPathErr struct {
	Path   string
	Reason string
}

func (e InvalidOutputPathErr) Error() string {
	return fmt.Sprintf("invalid output path %q: %s", e.Path, e.Reason)
}
