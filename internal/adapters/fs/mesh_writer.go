package fs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/omnimesh/wirecheck/internal/domain"
	"github.com/omnimesh/wirecheck/internal/usecase"
)

// MeshWriter persists the mesh document as a JSON artifact. Paths are
// interpreted relative to the working directory.
type MeshWriter struct{}

// NewMeshWriter creates a new mesh writer
func NewMeshWriter() *MeshWriter {
	return &MeshWriter{}
}

// Validate rejects absolute paths and non-.json extensions. Called by the
// assembler before any chain read, so a bad path never costs a single RPC.
func (w *MeshWriter) Validate(path string) error {
	if path == "" {
		return domain.InvalidOutputPathErr{Path: path, Reason: "path is empty"}
	}
	if filepath.IsAbs(path) {
		return domain.InvalidOutputPathErr{Path: path, Reason: "path must be relative"}
	}
	if !strings.HasSuffix(path, ".json") {
		return domain.InvalidOutputPathErr{Path: path, Reason: "path must end in .json"}
	}
	return nil
}

// Write serializes the mesh to the given path
func (w *MeshWriter) Write(path string, mesh domain.Mesh) error {
	if err := w.Validate(path); err != nil {
		return err
	}

	data, err := json.MarshalIndent(mesh, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize mesh: %w", err)
	}
	data = append(data, '\n')

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write mesh: %w", err)
	}
	return nil
}

var _ usecase.MeshWriter = (*MeshWriter)(nil)
