package mock

import (
	"context"
	"math/big"
)

// GasPriceProviderStub -
type GasPriceProviderStub struct {
	GetGasPriceCalled func(ctx context.Context) (*big.Int, error)
}

// GetGasPrice -
func (stub *GasPriceProviderStub) GetGasPrice(ctx context.Context) (*big.Int, error) {
	if stub.GetGasPriceCalled != nil {
		return stub.GetGasPriceCalled(ctx)
	}

	return big.NewInt(1000000000), nil
}

// IsInterfaceNil -
func (stub *GasPriceProviderStub) IsInterfaceNil() bool {
	return stub == nil
}
