package nonceHandler

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Proxy holds the network provider calls needed to manage nonces
type Proxy interface {
	GetTransactionCount(ctx context.Context, address common.Address) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) (string, error)
	IsInterfaceNil() bool
}

// GasPriceService defines the component able to provide the gas price to be used
type GasPriceService interface {
	GetGasPrice(ctx context.Context) (*big.Int, error)
	IsInterfaceNil() bool
}
