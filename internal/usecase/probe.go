package usecase

import (
	"context"

	"github.com/omnimesh/wirecheck/internal/config"
)

// probeWired decides whether the local application is wired to a remote
// chain. A non-empty probe payload means wired. An empty payload or a revert
// means not wired. Only a transport failure that survives the retry budget
// is an error.
func probeWired(ctx context.Context, policy config.RetryConfig, probe ProbeClient, remoteChainID uint16) (bool, error) {
	payload, err := retryRead(ctx, policy, func(ctx context.Context) ([]byte, error) {
		return probe.Probe(ctx, remoteChainID)
	})
	if err != nil {
		if isRevert(err) {
			return false, nil
		}
		return false, err
	}
	return len(payload) > 0, nil
}
