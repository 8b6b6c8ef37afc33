package usecase

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/omnimesh/wirecheck/internal/config"
	"github.com/omnimesh/wirecheck/internal/domain"
)

// resolveRemoteConfig produces the fully resolved configuration for one
// directional path: the raw application record merged over the library
// default. Connectivity has already been decided by the prober; this only
// runs for wired remotes.
func resolveRemoteConfig(ctx context.Context, policy config.RetryConfig, lib MessageLibClient, app common.Address, remote *domain.Network) (*domain.RemoteConfig, error) {
	appCfg, err := retryRead(ctx, policy, func(ctx context.Context) (domain.AppConfig, error) {
		return lib.AppConfig(ctx, app, remote.ChainID)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read app config for remote %s: %w", remote.Name, err)
	}

	defCfg, err := retryRead(ctx, policy, func(ctx context.Context) (domain.AppConfig, error) {
		return lib.DefaultAppConfig(ctx, remote.ChainID)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read default config for remote %s: %w", remote.Name, err)
	}

	return &domain.RemoteConfig{
		RemoteChain: remote.Name,
		AppConfig:   domain.MergeAppConfig(appCfg, defCfg),
	}, nil
}
