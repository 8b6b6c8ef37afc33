package network

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/omnimesh/wirecheck/internal/config"
	"github.com/omnimesh/wirecheck/internal/domain"
	"github.com/omnimesh/wirecheck/internal/usecase"
)

// Resolver handles network configuration resolution
type Resolver struct {
	networks map[string]*domain.Network
}

// NewResolver creates a resolver seeded with well-known networks and
// overlaid with the project's wirecheck.toml entries.
func NewResolver(cfg *config.RuntimeConfig) *Resolver {
	r := &Resolver{
		networks: make(map[string]*domain.Network),
	}

	r.initializeDefaultNetworks()
	r.loadConfigNetworks(cfg.Networks)

	return r
}

// initializeDefaultNetworks sets up well-known networks with their canonical
// endpoint addresses and protocol chain ids. RPC URLs always come from
// configuration.
func (r *Resolver) initializeDefaultNetworks() {
	defaultNetworks := []domain.Network{
		{Name: "ethereum", ChainID: 101, Endpoint: common.HexToAddress("0x66A71Dcef29A0fFBDBE3c6a460a3B5BC225Cd675")},
		{Name: "bsc", ChainID: 102, Endpoint: common.HexToAddress("0x3c2269811836af69497E5F486A85D7316753cf62")},
		{Name: "avalanche", ChainID: 106, Endpoint: common.HexToAddress("0x3c2269811836af69497E5F486A85D7316753cf62")},
		{Name: "polygon", ChainID: 109, Endpoint: common.HexToAddress("0x3c2269811836af69497E5F486A85D7316753cf62")},
		{Name: "arbitrum", ChainID: 110, Endpoint: common.HexToAddress("0x3c2269811836af69497E5F486A85D7316753cf62")},
		{Name: "optimism", ChainID: 111, Endpoint: common.HexToAddress("0x3c2269811836af69497E5F486A85D7316753cf62")},
		{Name: "fantom", ChainID: 112, Endpoint: common.HexToAddress("0xb6319cC6c8c27A8F5dAF0dD3DF91EA35C4720dd7")},
	}

	for _, network := range defaultNetworks {
		r.networks[network.Name] = &network
	}
}

// loadConfigNetworks overlays wirecheck.toml entries on the built-in table.
// Config may add new networks or fill in / override fields of known ones.
func (r *Resolver) loadConfigNetworks(networks map[string]config.NetworkConfig) {
	for name, nc := range networks {
		name = strings.ToLower(name)
		network, ok := r.networks[name]
		if !ok {
			network = &domain.Network{Name: name}
			r.networks[name] = network
		}
		if nc.RPCURL != "" {
			network.RPCURL = nc.RPCURL
		}
		if nc.Endpoint != "" {
			network.Endpoint = common.HexToAddress(nc.Endpoint)
		}
		if nc.ChainID != 0 {
			network.ChainID = nc.ChainID
		}
	}
}

// Resolve returns a fully usable network entry or a configuration error. A
// network missing its RPC URL, endpoint address or protocol chain id cannot
// take part in a run, so all three are checked here, before any chain call.
func (r *Resolver) Resolve(ctx context.Context, name string) (*domain.Network, error) {
	network, ok := r.networks[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownNetwork, name)
	}
	if network.RPCURL == "" {
		return nil, fmt.Errorf("%w for network %s", domain.ErrNoRPCURL, name)
	}
	if network.Endpoint == (common.Address{}) {
		return nil, fmt.Errorf("%w for network %s", domain.ErrNoEndpoint, name)
	}
	if network.ChainID == 0 {
		return nil, fmt.Errorf("%w for network %s", domain.ErrNoChainID, name)
	}
	return network, nil
}

// Networks returns all configured network names, sorted
func (r *Resolver) Networks(ctx context.Context) []string {
	names := make([]string, 0, len(r.networks))
	for name := range r.networks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var _ usecase.NetworkResolver = (*Resolver)(nil)
