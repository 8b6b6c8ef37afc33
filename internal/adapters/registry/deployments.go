package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ethereum/go-ethereum/common"
	"github.com/omnimesh/wirecheck/internal/config"
	"github.com/omnimesh/wirecheck/internal/domain"
	"github.com/omnimesh/wirecheck/internal/usecase"
)

// DeploymentStore reads per-network deployment artifacts:
// <deployments_dir>/<network>/<AppName>.json containing {"address": "0x…"}.
type DeploymentStore struct {
	root string
}

// NewDeploymentStore creates a deployment store rooted at the project's
// deployments directory.
func NewDeploymentStore(cfg *config.RuntimeConfig) *DeploymentStore {
	return &DeploymentStore{
		root: filepath.Join(cfg.ProjectRoot, cfg.DeploymentsDir),
	}
}

type deploymentArtifact struct {
	Address string `json:"address"`
}

// Address returns the deployed application address on a network
func (s *DeploymentStore) Address(ctx context.Context, network, app string) (common.Address, error) {
	path := filepath.Join(s.root, network, app+".json")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return common.Address{}, domain.NoDeploymentErr{Network: network, App: app}
		}
		return common.Address{}, fmt.Errorf("failed to read deployment artifact %s: %w", path, err)
	}

	var artifact deploymentArtifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return common.Address{}, fmt.Errorf("malformed deployment artifact %s: %w", path, err)
	}
	if !common.IsHexAddress(artifact.Address) {
		return common.Address{}, fmt.Errorf("%w in deployment artifact %s: %q", domain.ErrInvalidAddress, path, artifact.Address)
	}

	return common.HexToAddress(artifact.Address), nil
}

var _ usecase.DeploymentStore = (*DeploymentStore)(nil)
