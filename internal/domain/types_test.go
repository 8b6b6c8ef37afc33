package domain

import (
	"encoding/json"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeAppConfig(t *testing.T) {
	appCfg := AppConfig{
		InboundProofLibraryVersion: 2,
		InboundBlockConfirmations:  42,
		Relayer:                    common.HexToAddress("0x1111111111111111111111111111111111111111"),
		OutboundProofType:          2,
		OutboundBlockConfirmations: 37,
		Oracle:                     common.HexToAddress("0x2222222222222222222222222222222222222222"),
	}
	defCfg := AppConfig{
		InboundProofLibraryVersion: 1,
		InboundBlockConfirmations:  15,
		Relayer:                    common.HexToAddress("0x3333333333333333333333333333333333333333"),
		OutboundProofType:          1,
		OutboundBlockConfirmations: 20,
		Oracle:                     common.HexToAddress("0x4444444444444444444444444444444444444444"),
	}

	t.Run("fully set application record wins everywhere", func(t *testing.T) {
		assert.Equal(t, appCfg, MergeAppConfig(appCfg, defCfg))
	})

	t.Run("fully unset application record yields the default exactly", func(t *testing.T) {
		assert.Equal(t, defCfg, MergeAppConfig(AppConfig{}, defCfg))
	})

	t.Run("fields merge independently", func(t *testing.T) {
		partial := AppConfig{
			InboundBlockConfirmations: 99,
			Relayer:                   common.HexToAddress("0x5555555555555555555555555555555555555555"),
		}

		merged := MergeAppConfig(partial, defCfg)

		assert.Equal(t, uint64(99), merged.InboundBlockConfirmations)
		assert.Equal(t, partial.Relayer, merged.Relayer)
		assert.Equal(t, defCfg.InboundProofLibraryVersion, merged.InboundProofLibraryVersion)
		assert.Equal(t, defCfg.OutboundProofType, merged.OutboundProofType)
		assert.Equal(t, defCfg.OutboundBlockConfirmations, merged.OutboundBlockConfirmations)
		assert.Equal(t, defCfg.Oracle, merged.Oracle)
	})

	t.Run("merge is idempotent over its own output", func(t *testing.T) {
		merged := MergeAppConfig(appCfg, defCfg)
		assert.Equal(t, merged, MergeAppConfig(merged, defCfg))
	})
}

func TestRemoteConfigJSONShape(t *testing.T) {
	rc := RemoteConfig{
		RemoteChain: "bsc",
		AppConfig: AppConfig{
			InboundProofLibraryVersion: 1,
			InboundBlockConfirmations:  15,
		},
	}

	data, err := json.Marshal(rc)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	// The configuration fields must sit flat beside remoteChain.
	assert.Equal(t, "bsc", decoded["remoteChain"])
	assert.Equal(t, float64(1), decoded["inboundProofLibraryVersion"])
	assert.Equal(t, float64(15), decoded["inboundBlockConfirmations"])
	assert.NotContains(t, decoded, "AppConfig")
}
