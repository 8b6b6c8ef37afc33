package blockchain

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/omnimesh/wirecheck/internal/domain"
)

// ProviderCache dials one ethclient per network, lazily, and hands the same
// client to every caller. Clients are read-only here and safe for concurrent
// use.
type ProviderCache struct {
	log *slog.Logger

	mu      sync.Mutex
	clients map[string]*ethclient.Client
}

// NewProviderCache creates a new provider cache
func NewProviderCache(log *slog.Logger) *ProviderCache {
	return &ProviderCache{
		log:     log,
		clients: make(map[string]*ethclient.Client),
	}
}

// Client returns the RPC client for a network, dialing on first use
func (p *ProviderCache) Client(ctx context.Context, network *domain.Network) (*ethclient.Client, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if client, ok := p.clients[network.Name]; ok {
		return client, nil
	}

	if network.RPCURL == "" {
		return nil, fmt.Errorf("%w for network %s", domain.ErrNoRPCURL, network.Name)
	}

	client, err := ethclient.DialContext(ctx, network.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s RPC: %w", network.Name, err)
	}
	p.log.Debug("dialed RPC provider", "network", network.Name)

	p.clients[network.Name] = client
	return client, nil
}
