package domain

import (
	"github.com/ethereum/go-ethereum/common"
)

// Network is a fully resolved network entry: where to reach it, where its
// messaging endpoint lives, and the numeric identifier the protocol
// contracts use for it.
type Network struct {
	Name     string
	RPCURL   string
	Endpoint common.Address
	// ChainID is the protocol-level chain identifier, not the EVM chain id.
	ChainID uint16
}

// UAConfig is the raw per-application endpoint record: configured versions
// and library addresses, zero-valued where the application never set them.
type UAConfig struct {
	SendVersion    uint16
	ReceiveVersion uint16
	ReceiveLibrary common.Address
	SendLibrary    common.Address
}

// AppConfig is one messaging-library configuration record for a single
// directional path. The same shape is used for the application-specific
// record and the library default record.
type AppConfig struct {
	InboundProofLibraryVersion uint16         `json:"inboundProofLibraryVersion"`
	InboundBlockConfirmations  uint64         `json:"inboundBlockConfirmations"`
	Relayer                    common.Address `json:"relayer"`
	OutboundProofType          uint16         `json:"outboundProofType"`
	OutboundBlockConfirmations uint64         `json:"outboundBlockConfirmations"`
	Oracle                     common.Address `json:"oracle"`
}

// MergeAppConfig resolves an application-specific record against the library
// default, field by field. Integer fields keep the application value when it
// is greater than zero; address fields keep it when it is not the zero
// address. Everything else falls back to the default.
func MergeAppConfig(app, def AppConfig) AppConfig {
	merged := def
	if app.InboundProofLibraryVersion > 0 {
		merged.InboundProofLibraryVersion = app.InboundProofLibraryVersion
	}
	if app.InboundBlockConfirmations > 0 {
		merged.InboundBlockConfirmations = app.InboundBlockConfirmations
	}
	if app.Relayer != (common.Address{}) {
		merged.Relayer = app.Relayer
	}
	if app.OutboundProofType > 0 {
		merged.OutboundProofType = app.OutboundProofType
	}
	if app.OutboundBlockConfirmations > 0 {
		merged.OutboundBlockConfirmations = app.OutboundBlockConfirmations
	}
	if app.Oracle != (common.Address{}) {
		merged.Oracle = app.Oracle
	}
	return merged
}

// RemoteConfig is the resolved configuration for one directional path, as
// seen from the local network's library contracts.
type RemoteConfig struct {
	RemoteChain string `json:"remoteChain"`
	AppConfig
}

// ChainPathConfig is the per-network slice of the mesh: effective versions,
// the local application address, and one RemoteConfig per wired remote.
type ChainPathConfig struct {
	Name           string         `json:"name,omitempty"`
	Address        common.Address `json:"address"`
	SendVersion    uint16         `json:"sendVersion"`
	ReceiveVersion uint16         `json:"receiveVersion"`
	RemoteConfigs  []RemoteConfig `json:"remoteConfigs"`
}

// Mesh is the complete directional wiring document, keyed by network name.
type Mesh map[string]ChainPathConfig
