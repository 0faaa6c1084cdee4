package groups

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/klever-io/evm-wallet-checker/api/errors"
	"github.com/klever-io/evm-wallet-checker/api/shared"
	"github.com/klever-io/evm-wallet-checker/facade"
)

const gasPricePath = "/gas-price"

type networkFacadeHandler interface {
	GetGasPrice(ctx context.Context) (*facade.GasPrice, error)
	IsInterfaceNil() bool
}

type networkGroup struct {
	facade networkFacadeHandler
	*baseGroup
}

// NewNetworkGroup returns a new instance of networkGroup
func NewNetworkGroup(facadeHandler interface{}) (*networkGroup, error) {
	if facadeHandler == nil {
		return nil, errors.ErrNilFacadeHandler
	}

	facade, ok := facadeHandler.(networkFacadeHandler)
	if !ok {
		return nil, fmt.Errorf("%w for network group", errors.ErrFacadeWrongTypeAssertion)
	}

	ng := &networkGroup{
		facade:    facade,
		baseGroup: &baseGroup{},
	}

	ng.endpoints = []*shared.EndpointHandlerData{
		{
			Path:    gasPricePath,
			Method:  http.MethodGet,
			Handler: ng.getGasPrice,
		},
	}

	return ng, nil
}

// getGasPrice returns the gas price new transactions are built with
func (ng *networkGroup) getGasPrice(c *gin.Context) {
	gasPrice, err := ng.facade.GetGasPrice(c.Request.Context())
	if err != nil {
		respondWithError(c, err, errors.ErrGetGasPrice)
		return
	}

	respondWithData(c, gin.H{"gasPrice": gasPrice})
}
