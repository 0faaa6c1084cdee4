package gas

import (
	"context"
	"math/big"
)

// GasPriceProvider defines the behavior of a component able to query the network gas price
type GasPriceProvider interface {
	GetGasPrice(ctx context.Context) (*big.Int, error)
	IsInterfaceNil() bool
}
