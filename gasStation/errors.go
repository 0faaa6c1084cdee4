package gas

import "errors"

var (
	// ErrNilGasPriceProvider signals that a nil gas price provider was provided
	ErrNilGasPriceProvider = errors.New("nil gas price provider")
	// ErrInvalidBumpPercent signals that the gas price bump percent is out of range
	ErrInvalidBumpPercent = errors.New("invalid gas price bump percent")
	// ErrNegativeMaxGasPrice signals that a negative gas price cap was provided
	ErrNegativeMaxGasPrice = errors.New("negative max gas price")
	// ErrZeroGasPrice signals that the provider suggested a zero gas price
	ErrZeroGasPrice = errors.New("zero gas price suggested")
)
