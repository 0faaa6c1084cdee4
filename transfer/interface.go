package transfer

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/klever-io/evm-wallet-checker/provider"
	"github.com/klever-io/evm-wallet-checker/storage"
	"github.com/klever-io/evm-wallet-checker/validator"
)

// Proxy holds the network calls the transfer pipeline needs
type Proxy interface {
	ChainID(ctx context.Context) (*big.Int, error)
	GetBalance(ctx context.Context, address common.Address) (*big.Int, error)
	EstimateGas(ctx context.Context, call ethereum.CallMsg) (uint64, error)
	GetTransaction(ctx context.Context, hash string) (*provider.TransactionInfo, error)
	IsInterfaceNil() bool
}

// TransactionNonceHandler defines the component able to apply the nonce and gas price to a request and send
// the signed transaction
type TransactionNonceHandler interface {
	ApplyNonceAndGasPrice(ctx context.Context, address common.Address, request validator.TransactionRequest) (validator.TransactionRequest, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) (string, error)
	DropNonce(address common.Address)
	IsInterfaceNil() bool
}

// TransactionValidator checks a request before it is populated and signed
type TransactionValidator interface {
	Validate(request validator.TransactionRequest, signer common.Address) error
	IsInterfaceNil() bool
}

// TxJournal records the submitted transactions
type TxJournal interface {
	Put(record *storage.TxRecord) error
	IsInterfaceNil() bool
}
