package config

import (
	"testing"

	chainCore "github.com/multiversx/mx-chain-core-go/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWalletCheckerConfig(t *testing.T) {
	t.Parallel()

	cfg := WalletCheckerConfig{}
	err := chainCore.LoadTomlFile(&cfg, "../cmd/wallet-checker/config/config.toml")
	require.Nil(t, err)

	assert.Equal(t, "https://eth-goerli.g.alchemy.com/v2", cfg.GeneralConfig.NetworkAddress)
	assert.Equal(t, "PRIVATE_KEY", cfg.GeneralConfig.PrivateKeyEnvVariable)
	assert.Equal(t, "ALCHEMY_API_KEY", cfg.GeneralConfig.ApiKeyEnvVariable)
	assert.Equal(t, uint64(21000), cfg.GeneralConfig.DefaultGasLimit)
	assert.Equal(t, uint64(200), cfg.GeneralConfig.MaxGasPriceInGwei)
	assert.Equal(t, uint64(15), cfg.GeneralConfig.GasPriceCacheSeconds)
	assert.Equal(t, 86400, cfg.GeneralConfig.Logs.LogFileLifeSpanInSec)
	assert.Equal(t, "0xddB51f100672Cb252C67D516eb79931bf27cE3E6", cfg.Transfer.To)
	assert.Equal(t, "0.001", cfg.Transfer.ValueInEther)
	assert.Equal(t, "Hello World", cfg.Transfer.Data)
	assert.Equal(t, uint64(25000), cfg.Transfer.GasLimit)
}
