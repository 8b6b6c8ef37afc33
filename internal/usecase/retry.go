package usecase

import (
	"context"
	"strings"

	"github.com/avast/retry-go/v4"
	"github.com/omnimesh/wirecheck/internal/config"
)

// retryRead wraps a single read-only contract call with bounded exponential
// backoff. Reverts are not transport flakiness; they stop the retry loop
// immediately and surface to the caller for interpretation.
func retryRead[T any](ctx context.Context, policy config.RetryConfig, op func(context.Context) (T, error)) (T, error) {
	return retry.DoWithData(
		func() (T, error) {
			v, err := op(ctx)
			if err != nil && isRevert(err) {
				var zero T
				return zero, retry.Unrecoverable(err)
			}
			return v, err
		},
		retry.Context(ctx),
		retry.Attempts(policy.Attempts),
		retry.Delay(policy.BaseDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
	)
}

// isRevert reports whether an eth_call failed inside the EVM rather than in
// transport. go-ethereum surfaces both as plain errors, so we match on the
// standard revert message.
func isRevert(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "execution reverted")
}
