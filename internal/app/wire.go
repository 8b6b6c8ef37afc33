//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"

	"github.com/omnimesh/wirecheck/internal/adapters/bindings"
	"github.com/omnimesh/wirecheck/internal/adapters/blockchain"
	"github.com/omnimesh/wirecheck/internal/adapters/fs"
	"github.com/omnimesh/wirecheck/internal/adapters/network"
	"github.com/omnimesh/wirecheck/internal/adapters/registry"
	"github.com/omnimesh/wirecheck/internal/config"
	"github.com/omnimesh/wirecheck/internal/logging"
	"github.com/omnimesh/wirecheck/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper) (*App, error) {
	wire.Build(
		config.Provider,
		logging.LoggingSet,

		// Adapters
		network.NewResolver,
		blockchain.NewProviderCache,
		bindings.NewBinder,
		registry.NewDeploymentStore,
		fs.NewMeshWriter,
		wire.Bind(new(usecase.NetworkResolver), new(*network.Resolver)),
		wire.Bind(new(usecase.ChainBinder), new(*bindings.Binder)),
		wire.Bind(new(usecase.DeploymentStore), new(*registry.DeploymentStore)),
		wire.Bind(new(usecase.MeshWriter), new(*fs.MeshWriter)),

		// Use cases
		usecase.NewBuildMesh,
		usecase.NewListNetworks,

		// App
		NewApp,
	)
	return nil, nil
}
