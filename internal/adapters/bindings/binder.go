package bindings

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/omnimesh/wirecheck/internal/adapters/blockchain"
	"github.com/omnimesh/wirecheck/internal/domain"
	"github.com/omnimesh/wirecheck/internal/usecase"
)

// Binder constructs contract handles on top of the shared provider cache
type Binder struct {
	providers *blockchain.ProviderCache
}

// NewBinder creates a new contract binder
func NewBinder(providers *blockchain.ProviderCache) *Binder {
	return &Binder{providers: providers}
}

// BindEndpoint binds the network's canonical messaging endpoint
func (b *Binder) BindEndpoint(ctx context.Context, network *domain.Network) (usecase.EndpointClient, error) {
	client, err := b.providers.Client(ctx, network)
	if err != nil {
		return nil, err
	}
	return NewEndpoint(client, network.Endpoint), nil
}

// BindMessageLib binds a messaging library at a resolved address
func (b *Binder) BindMessageLib(ctx context.Context, network *domain.Network, address common.Address) (usecase.MessageLibClient, error) {
	client, err := b.providers.Client(ctx, network)
	if err != nil {
		return nil, err
	}
	return NewMessageLib(client, address), nil
}

// BindProbe binds the connectivity probe on the application contract
func (b *Binder) BindProbe(ctx context.Context, network *domain.Network, app common.Address, function string) (usecase.ProbeClient, error) {
	client, err := b.providers.Client(ctx, network)
	if err != nil {
		return nil, err
	}
	return NewProbe(client, app, function)
}

var _ usecase.ChainBinder = (*Binder)(nil)
