package app

import (
	"github.com/omnimesh/wirecheck/internal/config"
	"github.com/omnimesh/wirecheck/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig

	// Use cases
	BuildMesh    *usecase.BuildMesh
	ListNetworks *usecase.ListNetworks
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	buildMesh *usecase.BuildMesh,
	listNetworks *usecase.ListNetworks,
) (*App, error) {
	return &App{
		Config:       cfg,
		BuildMesh:    buildMesh,
		ListNetworks: listNetworks,
	}, nil
}
