package shared

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/klever-io/evm-wallet-checker/facade"
	"github.com/klever-io/evm-wallet-checker/storage"
	"github.com/klever-io/evm-wallet-checker/validator"
)

// GroupHandler defines the actions needed to be performed by a gin API group
type GroupHandler interface {
	RegisterRoutes(ws *gin.RouterGroup)
	IsInterfaceNil() bool
}

// HttpServerCloser defines the basic actions of starting and closing that a web server should be able to do
type HttpServerCloser interface {
	Start()
	Close() error
	IsInterfaceNil() bool
}

// FacadeHandler defines all the methods that a facade should implement
type FacadeHandler interface {
	RestApiInterface() string
	GetWalletInfo(ctx context.Context) (*facade.WalletInfo, error)
	ValidateTransaction(request validator.TransactionRequest) error
	SignTransaction(ctx context.Context, request validator.TransactionRequest) (*facade.SignedTransaction, error)
	SendTransaction(ctx context.Context, request validator.TransactionRequest) (string, error)
	GetTransaction(ctx context.Context, hash string) (*facade.TransactionStatus, error)
	GetPendingTransactions() ([]*storage.TxRecord, error)
	GetGasPrice(ctx context.Context) (*facade.GasPrice, error)
	IsInterfaceNil() bool
}
