package bindings

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/omnimesh/wirecheck/internal/domain"
	"github.com/omnimesh/wirecheck/internal/usecase"
)

// messageLibABI covers the two configuration getters of a messaging-library
// contract: the raw per-application record and the per-chain default record.
const messageLibABI = `[
  {"type":"function","name":"appConfig","stateMutability":"view","inputs":[{"name":"","type":"address"},{"name":"","type":"uint16"}],"outputs":[{"name":"inboundProofLibraryVersion","type":"uint16"},{"name":"inboundBlockConfirmations","type":"uint64"},{"name":"relayer","type":"address"},{"name":"outboundProofType","type":"uint16"},{"name":"outboundBlockConfirmations","type":"uint64"},{"name":"oracle","type":"address"}]},
  {"type":"function","name":"defaultAppConfig","stateMutability":"view","inputs":[{"name":"","type":"uint16"}],"outputs":[{"name":"inboundProofLibraryVersion","type":"uint16"},{"name":"inboundBlockConfirmations","type":"uint64"},{"name":"relayer","type":"address"},{"name":"outboundProofType","type":"uint16"},{"name":"outboundBlockConfirmations","type":"uint64"},{"name":"oracle","type":"address"}]}
]`

var parsedMessageLibABI = mustParseABI(messageLibABI)

// MessageLib is a read-only handle on one messaging-library contract
type MessageLib struct {
	caller caller
}

// NewMessageLib binds the messaging library at the given address
func NewMessageLib(client *ethclient.Client, address common.Address) *MessageLib {
	return &MessageLib{caller: caller{client: client, abi: parsedMessageLibABI, address: address}}
}

// Address returns the bound library address
func (m *MessageLib) Address() common.Address {
	return m.caller.address
}

// AppConfig reads the raw per-application record for a remote chain
func (m *MessageLib) AppConfig(ctx context.Context, app common.Address, remoteChainID uint16) (domain.AppConfig, error) {
	out, err := m.caller.call(ctx, "appConfig", app, remoteChainID)
	if err != nil {
		return domain.AppConfig{}, err
	}
	return unpackAppConfig("appConfig", out)
}

// DefaultAppConfig reads the protocol-wide default record for a remote chain
func (m *MessageLib) DefaultAppConfig(ctx context.Context, remoteChainID uint16) (domain.AppConfig, error) {
	out, err := m.caller.call(ctx, "defaultAppConfig", remoteChainID)
	if err != nil {
		return domain.AppConfig{}, err
	}
	return unpackAppConfig("defaultAppConfig", out)
}

func unpackAppConfig(method string, out []interface{}) (domain.AppConfig, error) {
	if len(out) != 6 {
		return domain.AppConfig{}, fmt.Errorf("unexpected %s result arity: %d", method, len(out))
	}
	return domain.AppConfig{
		InboundProofLibraryVersion: out[0].(uint16),
		InboundBlockConfirmations:  out[1].(uint64),
		Relayer:                    out[2].(common.Address),
		OutboundProofType:          out[3].(uint16),
		OutboundBlockConfirmations: out[4].(uint64),
		Oracle:                     out[5].(common.Address),
	}, nil
}

var _ usecase.MessageLibClient = (*MessageLib)(nil)
