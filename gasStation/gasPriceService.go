package gas

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/params"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
)

const maxBumpPercent = 1000

var log = logger.GetOrCreate("evm-wallet-checker/gasStation")

// ArgsGasPriceService is the DTO used to create a new GasPriceService
type ArgsGasPriceService struct {
	Provider    GasPriceProvider // Network gas price source
	BumpPercent uint64           // Percent added on top of the suggested price
	MaxGasPrice *big.Int         // Cap in wei, nil or zero disables it
}

type gasPriceService struct {
	provider    GasPriceProvider
	bumpPercent uint64
	maxGasPrice *big.Int
}

// NewGasPriceService creates a new instance of the gas price service
func NewGasPriceService(args ArgsGasPriceService) (*gasPriceService, error) {
	if err := checkArgsGasPriceService(args); err != nil {
		return nil, err
	}

	maxGasPrice := big.NewInt(0)
	if args.MaxGasPrice != nil {
		maxGasPrice.Set(args.MaxGasPrice)
	}

	return &gasPriceService{
		provider:    args.Provider,
		bumpPercent: args.BumpPercent,
		maxGasPrice: maxGasPrice,
	}, nil
}

func checkArgsGasPriceService(args ArgsGasPriceService) error {
	if check.IfNil(args.Provider) {
		return ErrNilGasPriceProvider
	}
	if args.BumpPercent > maxBumpPercent {
		return fmt.Errorf("%w, maximum %d, got %d", ErrInvalidBumpPercent, maxBumpPercent, args.BumpPercent)
	}
	if args.MaxGasPrice != nil && args.MaxGasPrice.Sign() < 0 {
		return ErrNegativeMaxGasPrice
	}

	return nil
}

// GetGasPrice returns the network suggested gas price increased by the bump percent and capped at the max gas price
func (gps *gasPriceService) GetGasPrice(ctx context.Context) (*big.Int, error) {
	suggested, err := gps.provider.GetGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch gas price: %w", err)
	}
	if suggested.Sign() <= 0 {
		return nil, ErrZeroGasPrice
	}

	gasPrice := new(big.Int).Mul(suggested, big.NewInt(int64(100+gps.bumpPercent)))
	gasPrice.Div(gasPrice, big.NewInt(100))

	if gps.maxGasPrice.Sign() > 0 && gasPrice.Cmp(gps.maxGasPrice) > 0 {
		log.Debug("gas price capped", "suggested", suggested.String(), "cap", gps.maxGasPrice.String())
		gasPrice.Set(gps.maxGasPrice)
	}

	return gasPrice, nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (gps *gasPriceService) IsInterfaceNil() bool {
	return gps == nil
}

// ComputeMaxCost returns value + gasLimit * gasPrice, the amount the sender balance must cover
func ComputeMaxCost(value *big.Int, gasLimit uint64, gasPrice *big.Int) *big.Int {
	cost := new(big.Int).SetUint64(gasLimit)
	if gasPrice != nil {
		cost.Mul(cost, gasPrice)
	} else {
		cost.SetUint64(0)
	}
	if value != nil {
		cost.Add(cost, value)
	}

	return cost
}

// ConvertToGwei converts a wei amount to GWEI
func ConvertToGwei(wei *big.Int) float64 {
	if wei == nil {
		return 0
	}

	gwei, _ := new(big.Float).Quo(new(big.Float).SetInt(wei), big.NewFloat(params.GWei)).Float64()
	return gwei
}

// GweiToWei converts a GWEI amount to wei
func GweiToWei(gwei uint64) *big.Int {
	return new(big.Int).Mul(new(big.Int).SetUint64(gwei), big.NewInt(params.GWei))
}
