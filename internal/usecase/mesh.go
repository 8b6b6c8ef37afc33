package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ethereum/go-ethereum/common"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/omnimesh/wirecheck/internal/config"
	"github.com/omnimesh/wirecheck/internal/domain"
)

// DefaultProbeFunction is the conventional remote-path registry getter on a
// user application contract.
const DefaultProbeFunction = "trustedRemoteLookup"

// BuildMeshParams contains parameters for assembling the wiring mesh
type BuildMeshParams struct {
	// Networks are the declared network names, in output order
	Networks []string

	// Addresses maps network name to application address; networks missing
	// here fall back to deployment artifacts keyed by AppName
	Addresses map[string]common.Address

	// AppName annotates the output and keys deployment-artifact lookups
	AppName string

	// ProbeFunction names the arity-one bytes-returning probe on the
	// application contract; empty means DefaultProbeFunction
	ProbeFunction string

	// OutputPath is the relative .json path the mesh is written to
	OutputPath string
}

// BuildMeshResult contains the assembled mesh and where it was written
type BuildMeshResult struct {
	Mesh       domain.Mesh
	OutputPath string
}

// BuildMesh reconstructs the effective directional wiring configuration of a
// messaging application across the declared networks.
type BuildMesh struct {
	cfg         *config.RuntimeConfig
	log         *slog.Logger
	networks    NetworkResolver
	binder      ChainBinder
	deployments DeploymentStore
	writer      MeshWriter
}

// NewBuildMesh creates a new BuildMesh use case
func NewBuildMesh(
	cfg *config.RuntimeConfig,
	log *slog.Logger,
	networks NetworkResolver,
	binder ChainBinder,
	deployments DeploymentStore,
	writer MeshWriter,
) *BuildMesh {
	return &BuildMesh{
		cfg:         cfg,
		log:         log,
		networks:    networks,
		binder:      binder,
		deployments: deployments,
		writer:      writer,
	}
}

// Run executes the use case. The run is all-or-nothing: any network that
// fails to resolve after retries aborts the whole assembly and nothing is
// written, since a half-resolved mesh could silently misconfigure a live
// application.
func (uc *BuildMesh) Run(ctx context.Context, params BuildMeshParams) (*BuildMeshResult, error) {
	// Everything that can fail without touching a chain fails here.
	if err := uc.writer.Validate(params.OutputPath); err != nil {
		return nil, err
	}
	if len(params.Networks) == 0 {
		return nil, fmt.Errorf("no networks declared")
	}
	probeFn := params.ProbeFunction
	if probeFn == "" {
		probeFn = DefaultProbeFunction
	}
	appName := params.AppName
	if appName == "" {
		appName = uc.cfg.AppName
	}

	networks := make([]*domain.Network, len(params.Networks))
	addresses := make(map[string]common.Address, len(params.Networks))
	for i, name := range params.Networks {
		network, err := uc.networks.Resolve(ctx, name)
		if err != nil {
			return nil, err
		}
		networks[i] = network

		// Addresses are keyed by the resolver's canonical name, never the
		// raw declared one, so mixed-case declarations stay consistent.
		addr, err := uc.resolveAddress(ctx, network.Name, appName, params.Addresses)
		if err != nil {
			return nil, err
		}
		addresses[network.Name] = addr
	}

	// Fan out per network; the shared errgroup context aborts every sibling
	// on the first fatal error.
	paths := make([]domain.ChainPathConfig, len(networks))
	eg, egCtx := errgroup.WithContext(ctx)
	for i, local := range networks {
		eg.Go(func() error {
			remotes := lo.Filter(networks, func(n *domain.Network, _ int) bool {
				return n.Name != local.Name
			})
			path, err := uc.assembleNetwork(egCtx, local, addresses[local.Name], appName, probeFn, remotes)
			if err != nil {
				return fmt.Errorf("network %s: %w", local.Name, err)
			}
			paths[i] = path
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	mesh := make(domain.Mesh, len(networks))
	for i, network := range networks {
		mesh[network.Name] = paths[i]
	}

	if err := uc.writer.Write(params.OutputPath, mesh); err != nil {
		return nil, err
	}
	uc.log.Info("wrote wiring mesh", "path", params.OutputPath, "networks", len(mesh))

	return &BuildMeshResult{Mesh: mesh, OutputPath: params.OutputPath}, nil
}

// resolveAddress picks the explicit address when supplied, otherwise falls
// back to the deployment artifact for the application name.
func (uc *BuildMesh) resolveAddress(ctx context.Context, network, appName string, addresses map[string]common.Address) (common.Address, error) {
	if addr, ok := addresses[network]; ok {
		return addr, nil
	}
	if appName == "" {
		return common.Address{}, fmt.Errorf("no address supplied for %s and no app name to look one up", network)
	}

	return uc.deployments.Address(ctx, network, appName)
}

// assembleNetwork builds one network's slice of the mesh: effective
// versions, then concurrent probes against every other declared network,
// then concurrent config resolution for the wired subset. Remote order
// follows the declared network order, never probe completion order.
func (uc *BuildMesh) assembleNetwork(
	ctx context.Context,
	local *domain.Network,
	app common.Address,
	appName string,
	probeFn string,
	remotes []*domain.Network,
) (domain.ChainPathConfig, error) {
	var path domain.ChainPathConfig

	endpoint, err := uc.binder.BindEndpoint(ctx, local)
	if err != nil {
		return path, err
	}

	libs, err := resolvePathLibraries(ctx, uc.cfg.Retry, endpoint, app)
	if err != nil {
		return path, err
	}

	probe, err := uc.binder.BindProbe(ctx, local, app, probeFn)
	if err != nil {
		return path, err
	}
	sendLib, err := uc.binder.BindMessageLib(ctx, local, libs.SendLibrary)
	if err != nil {
		return path, err
	}
	uc.log.Debug("resolved libraries",
		"network", local.Name,
		"sendVersion", libs.SendVersion,
		"receiveVersion", libs.ReceiveVersion,
		"sendLibrary", sendLib.Address(),
	)

	// Probe first, fetch after: unwired remotes never cost a config read and
	// an unreachable unwired remote stays a non-event.
	wired := make([]bool, len(remotes))
	eg, egCtx := errgroup.WithContext(ctx)
	for i, remote := range remotes {
		eg.Go(func() error {
			ok, err := probeWired(egCtx, uc.cfg.Retry, probe, remote.ChainID)
			if err != nil {
				return fmt.Errorf("probe %s->%s: %w", local.Name, remote.Name, err)
			}
			wired[i] = ok
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return path, err
	}

	configs := make([]*domain.RemoteConfig, len(remotes))
	eg, egCtx = errgroup.WithContext(ctx)
	for i, remote := range remotes {
		if !wired[i] {
			uc.log.Debug("remote not wired", "network", local.Name, "remote", remote.Name)
			continue
		}
		eg.Go(func() error {
			cfg, err := resolveRemoteConfig(egCtx, uc.cfg.Retry, sendLib, app, remote)
			if err != nil {
				return err
			}
			configs[i] = cfg
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return path, err
	}

	path = domain.ChainPathConfig{
		Name:           appName,
		Address:        app,
		SendVersion:    libs.SendVersion,
		ReceiveVersion: libs.ReceiveVersion,
		RemoteConfigs: lo.Map(lo.Compact(configs), func(c *domain.RemoteConfig, _ int) domain.RemoteConfig {
			return *c
		}),
	}
	return path, nil
}
