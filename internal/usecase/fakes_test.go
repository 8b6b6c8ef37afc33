package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/ethereum/go-ethereum/common"
	"github.com/omnimesh/wirecheck/internal/domain"
)

type fakeEndpoint struct {
	ua    domain.UAConfig
	uaErr error

	defaultSendVersion    uint16
	defaultReceiveVersion uint16
	defaultSendLibrary    common.Address
	defaultReceiveLibrary common.Address
}

func (f *fakeEndpoint) UAConfig(ctx context.Context, app common.Address) (domain.UAConfig, error) {
	return f.ua, f.uaErr
}

func (f *fakeEndpoint) DefaultSendVersion(ctx context.Context) (uint16, error) {
	return f.defaultSendVersion, nil
}

func (f *fakeEndpoint) DefaultReceiveVersion(ctx context.Context) (uint16, error) {
	return f.defaultReceiveVersion, nil
}

func (f *fakeEndpoint) DefaultSendLibrary(ctx context.Context) (common.Address, error) {
	return f.defaultSendLibrary, nil
}

func (f *fakeEndpoint) DefaultReceiveLibrary(ctx context.Context) (common.Address, error) {
	return f.defaultReceiveLibrary, nil
}

type fakeMessageLib struct {
	address    common.Address
	appConfigs map[uint16]domain.AppConfig
	defaults   map[uint16]domain.AppConfig
	appErr     error
}

func (f *fakeMessageLib) Address() common.Address {
	return f.address
}

func (f *fakeMessageLib) AppConfig(ctx context.Context, app common.Address, remoteChainID uint16) (domain.AppConfig, error) {
	if f.appErr != nil {
		return domain.AppConfig{}, f.appErr
	}
	return f.appConfigs[remoteChainID], nil
}

func (f *fakeMessageLib) DefaultAppConfig(ctx context.Context, remoteChainID uint16) (domain.AppConfig, error) {
	return f.defaults[remoteChainID], nil
}

type fakeProbe struct {
	payloads map[uint16][]byte
	errs     map[uint16]error
	calls    atomic.Int32
}

func (f *fakeProbe) Probe(ctx context.Context, remoteChainID uint16) ([]byte, error) {
	f.calls.Add(1)
	if err := f.errs[remoteChainID]; err != nil {
		return nil, err
	}
	return f.payloads[remoteChainID], nil
}

// fakeBinder hands out per-network fakes and records every bind so tests can
// assert that nothing touched a chain.
type fakeBinder struct {
	endpoints map[string]*fakeEndpoint
	libs      map[string]*fakeMessageLib
	probes    map[string]*fakeProbe

	mu           sync.Mutex
	binds        int
	libAddresses map[string]common.Address
}

func (f *fakeBinder) recordBind() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.binds++
}

func (f *fakeBinder) BindEndpoint(ctx context.Context, network *domain.Network) (EndpointClient, error) {
	f.recordBind()
	ep, ok := f.endpoints[network.Name]
	if !ok {
		return nil, fmt.Errorf("no fake endpoint for %s", network.Name)
	}
	return ep, nil
}

func (f *fakeBinder) BindMessageLib(ctx context.Context, network *domain.Network, address common.Address) (MessageLibClient, error) {
	f.recordBind()
	f.mu.Lock()
	if f.libAddresses == nil {
		f.libAddresses = make(map[string]common.Address)
	}
	f.libAddresses[network.Name] = address
	f.mu.Unlock()
	lib, ok := f.libs[network.Name]
	if !ok {
		return nil, fmt.Errorf("no fake message lib for %s", network.Name)
	}
	return lib, nil
}

func (f *fakeBinder) BindProbe(ctx context.Context, network *domain.Network, app common.Address, function string) (ProbeClient, error) {
	f.recordBind()
	probe, ok := f.probes[network.Name]
	if !ok {
		return nil, fmt.Errorf("no fake probe for %s", network.Name)
	}
	return probe, nil
}

// fakeNetworkResolver folds case like the real adapter: any casing of a
// known name resolves to the canonical lowercase entry.
type fakeNetworkResolver struct {
	networks map[string]*domain.Network
}

func (f *fakeNetworkResolver) Resolve(ctx context.Context, name string) (*domain.Network, error) {
	network, ok := f.networks[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownNetwork, name)
	}
	return network, nil
}

func (f *fakeNetworkResolver) Networks(ctx context.Context) []string {
	names := make([]string, 0, len(f.networks))
	for name := range f.networks {
		names = append(names, name)
	}
	return names
}

type fakeDeployments struct {
	addresses map[string]common.Address // keyed by network
}

func (f *fakeDeployments) Address(ctx context.Context, network, app string) (common.Address, error) {
	addr, ok := f.addresses[network]
	if !ok {
		return common.Address{}, domain.NoDeploymentErr{Network: network, App: app}
	}
	return addr, nil
}

type fakeWriter struct {
	validateErr error

	mu      sync.Mutex
	written map[string]domain.Mesh
}

func (f *fakeWriter) Validate(path string) error {
	return f.validateErr
}

func (f *fakeWriter) Write(path string, mesh domain.Mesh) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.written == nil {
		f.written = make(map[string]domain.Mesh)
	}
	f.written[path] = mesh
	return nil
}
