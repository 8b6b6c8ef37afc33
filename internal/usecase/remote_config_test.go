package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omnimesh/wirecheck/internal/domain"
)

func TestResolveRemoteConfig(t *testing.T) {
	ctx := context.Background()
	app := common.HexToAddress("0xAAA0000000000000000000000000000000000001")
	remote := &domain.Network{Name: "bsc", ChainID: 102}

	defCfg := domain.AppConfig{
		InboundProofLibraryVersion: 1,
		InboundBlockConfirmations:  15,
		Relayer:                    common.HexToAddress("0x5555555555555555555555555555555555555555"),
		OutboundProofType:          1,
		OutboundBlockConfirmations: 20,
		Oracle:                     common.HexToAddress("0x6666666666666666666666666666666666666666"),
	}

	t.Run("merges app record over library default", func(t *testing.T) {
		lib := &fakeMessageLib{
			appConfigs: map[uint16]domain.AppConfig{
				102: {
					InboundBlockConfirmations: 42,
					Oracle:                    common.HexToAddress("0x7777777777777777777777777777777777777777"),
				},
			},
			defaults: map[uint16]domain.AppConfig{102: defCfg},
		}

		got, err := resolveRemoteConfig(ctx, testPolicy(), lib, app, remote)

		require.NoError(t, err)
		assert.Equal(t, "bsc", got.RemoteChain)
		// overridden by the application
		assert.Equal(t, uint64(42), got.InboundBlockConfirmations)
		assert.Equal(t, common.HexToAddress("0x7777777777777777777777777777777777777777"), got.Oracle)
		// inherited from the default
		assert.Equal(t, uint16(1), got.InboundProofLibraryVersion)
		assert.Equal(t, defCfg.Relayer, got.Relayer)
		assert.Equal(t, uint16(1), got.OutboundProofType)
		assert.Equal(t, uint64(20), got.OutboundBlockConfirmations)
	})

	t.Run("propagates read failure", func(t *testing.T) {
		lib := &fakeMessageLib{appErr: errors.New("connection refused")}

		_, err := resolveRemoteConfig(ctx, testPolicy(), lib, app, remote)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "bsc")
	})
}
