package fs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omnimesh/wirecheck/internal/domain"
)

func TestMeshWriterValidate(t *testing.T) {
	w := NewMeshWriter()

	t.Run("accepts relative json path", func(t *testing.T) {
		assert.NoError(t, w.Validate("cfg.json"))
		assert.NoError(t, w.Validate("out/mesh.json"))
	})

	t.Run("rejects absolute path", func(t *testing.T) {
		err := w.Validate("/cfg.json")
		require.Error(t, err)
		var pathErr domain.InvalidOutputPathErr
		require.ErrorAs(t, err, &pathErr)
		assert.Equal(t, "/cfg.json", pathErr.Path)
	})

	t.Run("rejects non-json extension", func(t *testing.T) {
		assert.Error(t, w.Validate("cfg.txt"))
		assert.Error(t, w.Validate("cfg"))
	})

	t.Run("rejects empty path", func(t *testing.T) {
		assert.Error(t, w.Validate(""))
	})
}

func TestMeshWriterWrite(t *testing.T) {
	w := NewMeshWriter()

	dir := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	mesh := domain.Mesh{
		"eth": {
			Name:           "Bridge",
			Address:        common.HexToAddress("0x0000000000000000000000000000000000000AAA"),
			SendVersion:    2,
			ReceiveVersion: 2,
			RemoteConfigs: []domain.RemoteConfig{
				{RemoteChain: "bsc", AppConfig: domain.AppConfig{InboundBlockConfirmations: 15}},
			},
		},
	}

	t.Run("writes parseable document", func(t *testing.T) {
		require.NoError(t, w.Write("out/cfg.json", mesh))

		data, err := os.ReadFile(filepath.Join(dir, "out", "cfg.json"))
		require.NoError(t, err)

		var decoded map[string]map[string]any
		require.NoError(t, json.Unmarshal(data, &decoded))
		require.Contains(t, decoded, "eth")
		assert.Equal(t, float64(2), decoded["eth"]["sendVersion"])

		remotes, ok := decoded["eth"]["remoteConfigs"].([]any)
		require.True(t, ok)
		require.Len(t, remotes, 1)
	})

	t.Run("refuses invalid path", func(t *testing.T) {
		assert.Error(t, w.Write("/abs.json", mesh))
		assert.Error(t, w.Write("cfg.txt", mesh))
	})
}
