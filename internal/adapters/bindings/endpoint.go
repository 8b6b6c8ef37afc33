package bindings

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/omnimesh/wirecheck/internal/domain"
	"github.com/omnimesh/wirecheck/internal/usecase"
)

// endpointABI covers the read surface of the messaging endpoint contract:
// the per-application config record and the protocol-wide defaults.
const endpointABI = `[
  {"type":"function","name":"uaConfigLookup","stateMutability":"view","inputs":[{"name":"","type":"address"}],"outputs":[{"name":"sendVersion","type":"uint16"},{"name":"receiveVersion","type":"uint16"},{"name":"receiveLibraryAddress","type":"address"},{"name":"sendLibrary","type":"address"}]},
  {"type":"function","name":"defaultSendVersion","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint16"}]},
  {"type":"function","name":"defaultReceiveVersion","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint16"}]},
  {"type":"function","name":"defaultSendLibrary","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"address"}]},
  {"type":"function","name":"defaultReceiveLibraryAddress","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"address"}]}
]`

var parsedEndpointABI = mustParseABI(endpointABI)

// Endpoint is a read-only handle on one network's endpoint contract
type Endpoint struct {
	caller caller
}

// NewEndpoint binds the endpoint contract at the given address
func NewEndpoint(client *ethclient.Client, address common.Address) *Endpoint {
	return &Endpoint{caller: caller{client: client, abi: parsedEndpointABI, address: address}}
}

// UAConfig reads the aggregate per-application record
func (e *Endpoint) UAConfig(ctx context.Context, app common.Address) (domain.UAConfig, error) {
	out, err := e.caller.call(ctx, "uaConfigLookup", app)
	if err != nil {
		return domain.UAConfig{}, err
	}
	if len(out) != 4 {
		return domain.UAConfig{}, fmt.Errorf("unexpected uaConfigLookup result arity: %d", len(out))
	}
	return domain.UAConfig{
		SendVersion:    out[0].(uint16),
		ReceiveVersion: out[1].(uint16),
		ReceiveLibrary: out[2].(common.Address),
		SendLibrary:    out[3].(common.Address),
	}, nil
}

// DefaultSendVersion reads the protocol-wide default send version
func (e *Endpoint) DefaultSendVersion(ctx context.Context) (uint16, error) {
	return callUint16(ctx, &e.caller, "defaultSendVersion")
}

// DefaultReceiveVersion reads the protocol-wide default receive version
func (e *Endpoint) DefaultReceiveVersion(ctx context.Context) (uint16, error) {
	return callUint16(ctx, &e.caller, "defaultReceiveVersion")
}

// DefaultSendLibrary reads the protocol-wide default send library address
func (e *Endpoint) DefaultSendLibrary(ctx context.Context) (common.Address, error) {
	return callAddress(ctx, &e.caller, "defaultSendLibrary")
}

// DefaultReceiveLibrary reads the protocol-wide default receive library address
func (e *Endpoint) DefaultReceiveLibrary(ctx context.Context) (common.Address, error) {
	return callAddress(ctx, &e.caller, "defaultReceiveLibraryAddress")
}

func callUint16(ctx context.Context, c *caller, method string) (uint16, error) {
	out, err := c.call(ctx, method)
	if err != nil {
		return 0, err
	}
	if len(out) != 1 {
		return 0, fmt.Errorf("unexpected %s result arity: %d", method, len(out))
	}
	return out[0].(uint16), nil
}

func callAddress(ctx context.Context, c *caller, method string) (common.Address, error) {
	out, err := c.call(ctx, method)
	if err != nil {
		return common.Address{}, err
	}
	if len(out) != 1 {
		return common.Address{}, fmt.Errorf("unexpected %s result arity: %d", method, len(out))
	}
	return out[0].(common.Address), nil
}

var _ usecase.EndpointClient = (*Endpoint)(nil)
