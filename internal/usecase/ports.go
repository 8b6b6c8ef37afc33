package usecase

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/omnimesh/wirecheck/internal/domain"
)

// NetworkResolver resolves declared network names to full network entries
type NetworkResolver interface {
	Resolve(ctx context.Context, name string) (*domain.Network, error)
	Networks(ctx context.Context) []string
}

// EndpointClient is a read-only handle on one network's messaging endpoint
type EndpointClient interface {
	// UAConfig is the aggregate per-application lookup: configured send and
	// receive versions plus the library addresses backing them.
	UAConfig(ctx context.Context, app common.Address) (domain.UAConfig, error)
	DefaultSendVersion(ctx context.Context) (uint16, error)
	DefaultReceiveVersion(ctx context.Context) (uint16, error)
	DefaultSendLibrary(ctx context.Context) (common.Address, error)
	DefaultReceiveLibrary(ctx context.Context) (common.Address, error)
}

// MessageLibClient is a read-only handle on one messaging-library contract
type MessageLibClient interface {
	Address() common.Address
	// AppConfig reads the raw application record for a remote path; fields
	// the application never set come back zero-valued.
	AppConfig(ctx context.Context, app common.Address, remoteChainID uint16) (domain.AppConfig, error)
	// DefaultAppConfig reads the protocol-wide default record for a remote path.
	DefaultAppConfig(ctx context.Context, remoteChainID uint16) (domain.AppConfig, error)
}

// ProbeClient invokes the caller-supplied connectivity probe on the
// application contract: one uint16 chain id in, opaque bytes out.
type ProbeClient interface {
	Probe(ctx context.Context, remoteChainID uint16) ([]byte, error)
}

// ChainBinder constructs contract handles on a given network
type ChainBinder interface {
	BindEndpoint(ctx context.Context, network *domain.Network) (EndpointClient, error)
	BindMessageLib(ctx context.Context, network *domain.Network, address common.Address) (MessageLibClient, error)
	BindProbe(ctx context.Context, network *domain.Network, app common.Address, function string) (ProbeClient, error)
}

// DeploymentStore resolves application addresses from deployment artifacts
type DeploymentStore interface {
	Address(ctx context.Context, network, app string) (common.Address, error)
}

// MeshWriter persists the assembled mesh document
type MeshWriter interface {
	// Validate rejects bad output paths before any chain read happens
	Validate(path string) error
	Write(path string, mesh domain.Mesh) error
}
