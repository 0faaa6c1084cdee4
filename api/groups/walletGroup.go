package groups

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/klever-io/evm-wallet-checker/api/errors"
	"github.com/klever-io/evm-wallet-checker/api/shared"
	"github.com/klever-io/evm-wallet-checker/facade"
	"github.com/klever-io/evm-wallet-checker/storage"
)

const (
	addressPath = "/address"
	pendingPath = "/pending"
)

type walletFacadeHandler interface {
	GetWalletInfo(ctx context.Context) (*facade.WalletInfo, error)
	GetPendingTransactions() ([]*storage.TxRecord, error)
	IsInterfaceNil() bool
}

type walletGroup struct {
	facade walletFacadeHandler
	*baseGroup
}

// NewWalletGroup returns a new instance of walletGroup
func NewWalletGroup(facadeHandler interface{}) (*walletGroup, error) {
	if facadeHandler == nil {
		return nil, errors.ErrNilFacadeHandler
	}

	facade, ok := facadeHandler.(walletFacadeHandler)
	if !ok {
		return nil, fmt.Errorf("%w for wallet group", errors.ErrFacadeWrongTypeAssertion)
	}

	wg := &walletGroup{
		facade:    facade,
		baseGroup: &baseGroup{},
	}

	wg.endpoints = []*shared.EndpointHandlerData{
		{
			Path:    addressPath,
			Method:  http.MethodGet,
			Handler: wg.getWalletInfo,
		},
		{
			Path:    pendingPath,
			Method:  http.MethodGet,
			Handler: wg.getPendingTransactions,
		},
	}

	return wg, nil
}

// getWalletInfo returns the signer address, its balance and the chain ID
func (wg *walletGroup) getWalletInfo(c *gin.Context) {
	info, err := wg.facade.GetWalletInfo(c.Request.Context())
	if err != nil {
		respondWithError(c, err, errors.ErrGetWalletInfo)
		return
	}

	respondWithData(c, gin.H{"wallet": info})
}

// getPendingTransactions returns the journal transactions waiting for a receipt
func (wg *walletGroup) getPendingTransactions(c *gin.Context) {
	records, err := wg.facade.GetPendingTransactions()
	if err != nil {
		respondWithError(c, err, errors.ErrGetPendingTransactions)
		return
	}

	respondWithData(c, gin.H{"transactions": records})
}
