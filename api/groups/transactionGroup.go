package groups

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/klever-io/evm-wallet-checker/api/errors"
	"github.com/klever-io/evm-wallet-checker/api/shared"
	"github.com/klever-io/evm-wallet-checker/facade"
	"github.com/klever-io/evm-wallet-checker/validator"
)

const (
	validatePath       = "/validate"
	signPath           = "/sign"
	sendPath           = "/send"
	getTransactionPath = "/:hash"
)

type transactionFacadeHandler interface {
	ValidateTransaction(request validator.TransactionRequest) error
	SignTransaction(ctx context.Context, request validator.TransactionRequest) (*facade.SignedTransaction, error)
	SendTransaction(ctx context.Context, request validator.TransactionRequest) (string, error)
	GetTransaction(ctx context.Context, hash string) (*facade.TransactionStatus, error)
	IsInterfaceNil() bool
}

type transactionGroup struct {
	facade transactionFacadeHandler
	*baseGroup
}

// NewTransactionGroup returns a new instance of transactionGroup
func NewTransactionGroup(facadeHandler interface{}) (*transactionGroup, error) {
	if facadeHandler == nil {
		return nil, errors.ErrNilFacadeHandler
	}

	facade, ok := facadeHandler.(transactionFacadeHandler)
	if !ok {
		return nil, fmt.Errorf("%w for transaction group", errors.ErrFacadeWrongTypeAssertion)
	}

	tg := &transactionGroup{
		facade:    facade,
		baseGroup: &baseGroup{},
	}

	tg.endpoints = []*shared.EndpointHandlerData{
		{
			Path:    validatePath,
			Method:  http.MethodPost,
			Handler: tg.validateTransaction,
		},
		{
			Path:    signPath,
			Method:  http.MethodPost,
			Handler: tg.signTransaction,
		},
		{
			Path:    sendPath,
			Method:  http.MethodPost,
			Handler: tg.sendTransaction,
		},
		{
			Path:    getTransactionPath,
			Method:  http.MethodGet,
			Handler: tg.getTransaction,
		},
	}

	return tg, nil
}

// validateTransaction checks the request fields and the asserted sender
func (tg *transactionGroup) validateTransaction(c *gin.Context) {
	request, err := bindTransactionRequest(c)
	if err != nil {
		respondWithError(c, err, errors.ErrValidation)
		return
	}

	err = tg.facade.ValidateTransaction(request)
	if err != nil {
		respondWithError(c, err, errors.ErrValidation)
		return
	}

	respondWithData(c, gin.H{"valid": true})
}

// signTransaction returns the signed transaction without submitting it
func (tg *transactionGroup) signTransaction(c *gin.Context) {
	request, err := bindTransactionRequest(c)
	if err != nil {
		respondWithError(c, err, errors.ErrValidation)
		return
	}

	signed, err := tg.facade.SignTransaction(c.Request.Context(), request)
	if err != nil {
		respondWithError(c, err, errors.ErrTxGenerationFailed)
		return
	}

	respondWithData(c, gin.H{"transaction": signed})
}

// sendTransaction signs and submits the request, returning the transaction hash
func (tg *transactionGroup) sendTransaction(c *gin.Context) {
	request, err := bindTransactionRequest(c)
	if err != nil {
		respondWithError(c, err, errors.ErrValidation)
		return
	}

	hash, err := tg.facade.SendTransaction(c.Request.Context(), request)
	if err != nil {
		respondWithError(c, err, errors.ErrTxGenerationFailed)
		return
	}

	respondWithData(c, gin.H{"txHash": hash})
}

// getTransaction returns the network status of a transaction
func (tg *transactionGroup) getTransaction(c *gin.Context) {
	status, err := tg.facade.GetTransaction(c.Request.Context(), c.Param("hash"))
	if err != nil {
		respondWithError(c, err, errors.ErrGetTransaction)
		return
	}

	respondWithData(c, gin.H{"transaction": status})
}
