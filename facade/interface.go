package facade

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/klever-io/evm-wallet-checker/provider"
	"github.com/klever-io/evm-wallet-checker/storage"
	"github.com/klever-io/evm-wallet-checker/transfer"
	"github.com/klever-io/evm-wallet-checker/validator"
)

// TransferSender is the pipeline that signs and submits transfers
type TransferSender interface {
	SignerAddress() common.Address
	SignTransfer(ctx context.Context, request validator.TransactionRequest) (*transfer.SignedTransfer, error)
	SendTransfer(ctx context.Context, request validator.TransactionRequest) (string, error)
	IsInterfaceNil() bool
}

// TransactionValidator checks a request against the signer address
type TransactionValidator interface {
	Validate(request validator.TransactionRequest, signer common.Address) error
	IsInterfaceNil() bool
}

// Proxy holds the network queries exposed by the facade
type Proxy interface {
	ChainID(ctx context.Context) (*big.Int, error)
	GetBalance(ctx context.Context, address common.Address) (*big.Int, error)
	GetTransaction(ctx context.Context, hash string) (*provider.TransactionInfo, error)
	IsInterfaceNil() bool
}

// GasPriceService returns the gas price used for new transactions
type GasPriceService interface {
	GetGasPrice(ctx context.Context) (*big.Int, error)
	IsInterfaceNil() bool
}

// TxJournal gives read access to the submitted transactions
type TxJournal interface {
	Get(hash string) (*storage.TxRecord, error)
	Pending() ([]*storage.TxRecord, error)
	IsInterfaceNil() bool
}

// MetricsHandler records the validation outcomes of the validate endpoint
type MetricsHandler interface {
	RecordValidation(err error)
	IsInterfaceNil() bool
}
