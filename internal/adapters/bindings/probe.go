package bindings

import (
	"context"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/omnimesh/wirecheck/internal/usecase"
)

// Probe invokes a caller-named view function on the application contract.
// The function takes the remote protocol chain id and returns opaque bytes.
type Probe struct {
	caller   caller
	function string
}

// NewProbe binds a probe for the given function name on the application
// contract. The ABI is synthesized from the name, since the descriptor is
// caller-supplied.
func NewProbe(client *ethclient.Client, app common.Address, function string) (*Probe, error) {
	doc := fmt.Sprintf(
		`[{"type":"function","name":%q,"stateMutability":"view","inputs":[{"name":"","type":"uint16"}],"outputs":[{"name":"","type":"bytes"}]}]`,
		function,
	)
	parsed, err := abi.JSON(strings.NewReader(doc))
	if err != nil {
		return nil, fmt.Errorf("invalid probe function %q: %w", function, err)
	}

	return &Probe{
		caller:   caller{client: client, abi: parsed, address: app},
		function: function,
	}, nil
}

// Probe calls the probe function for a remote chain id
func (p *Probe) Probe(ctx context.Context, remoteChainID uint16) ([]byte, error) {
	out, err := p.caller.call(ctx, p.function, remoteChainID)
	if err != nil {
		return nil, err
	}
	if len(out) != 1 {
		return nil, fmt.Errorf("unexpected %s result arity: %d", p.function, len(out))
	}
	return out[0].([]byte), nil
}

var _ usecase.ProbeClient = (*Probe)(nil)
