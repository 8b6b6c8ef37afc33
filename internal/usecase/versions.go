package usecase

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/omnimesh/wirecheck/internal/config"
	"github.com/omnimesh/wirecheck/internal/domain"
)

// pathLibraries is the effective messaging setup of one application on one
// network: resolved versions and the library addresses backing them.
type pathLibraries struct {
	SendVersion    uint16
	ReceiveVersion uint16
	SendLibrary    common.Address
	ReceiveLibrary common.Address
}

// resolvePathLibraries reads the application's endpoint record and applies
// the version fallback rule: a zero version means the application never
// configured that direction, so the endpoint's protocol-wide default version
// and library apply. Each direction resolves independently.
func resolvePathLibraries(ctx context.Context, policy config.RetryConfig, endpoint EndpointClient, app common.Address) (*pathLibraries, error) {
	ua, err := retryRead(ctx, policy, func(ctx context.Context) (domain.UAConfig, error) {
		return endpoint.UAConfig(ctx, app)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read application endpoint config: %w", err)
	}

	libs := &pathLibraries{
		SendVersion:    ua.SendVersion,
		ReceiveVersion: ua.ReceiveVersion,
		SendLibrary:    ua.SendLibrary,
		ReceiveLibrary: ua.ReceiveLibrary,
	}

	if ua.SendVersion == 0 {
		libs.SendVersion, err = retryRead(ctx, policy, endpoint.DefaultSendVersion)
		if err != nil {
			return nil, fmt.Errorf("failed to read default send version: %w", err)
		}
		libs.SendLibrary, err = retryRead(ctx, policy, endpoint.DefaultSendLibrary)
		if err != nil {
			return nil, fmt.Errorf("failed to read default send library: %w", err)
		}
	}

	if ua.ReceiveVersion == 0 {
		libs.ReceiveVersion, err = retryRead(ctx, policy, endpoint.DefaultReceiveVersion)
		if err != nil {
			return nil, fmt.Errorf("failed to read default receive version: %w", err)
		}
		libs.ReceiveLibrary, err = retryRead(ctx, policy, endpoint.DefaultReceiveLibrary)
		if err != nil {
			return nil, fmt.Errorf("failed to read default receive library: %w", err)
		}
	}

	return libs, nil
}
