package groups_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/klever-io/evm-wallet-checker/api/groups"
	"github.com/klever-io/evm-wallet-checker/api/mock"
	"github.com/klever-io/evm-wallet-checker/facade"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetworkGroup_GetGasPrice(t *testing.T) {
	t.Parallel()

	facadeStub := &mock.FacadeStub{
		GetGasPriceCalled: func(ctx context.Context) (*facade.GasPrice, error) {
			return &facade.GasPrice{Wei: "1500000000", Gwei: 1.5}, nil
		},
	}
	ng, err := groups.NewNetworkGroup(facadeStub)
	require.Nil(t, err)
	ws := startWebServer(ng, "/network")

	code, response := doRequest(t, ws, http.MethodGet, "/network/gas-price", "")
	require.Equal(t, http.StatusOK, code)

	gasPrice := facade.GasPrice{}
	_ = json.Unmarshal(response.Data["gasPrice"], &gasPrice)
	assert.Equal(t, "1500000000", gasPrice.Wei)
	assert.InDelta(t, 1.5, gasPrice.Gwei, 0.000001)
}
