package transfer

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/params"
)

// ParseEther converts a decimal ether amount, such as "0.01", to wei
func ParseEther(amount string) (*big.Int, error) {
	value, ok := new(big.Rat).SetString(amount)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a decimal amount", ErrInvalidTransactionField, amount)
	}
	if value.Sign() < 0 {
		return nil, fmt.Errorf("%w: %s", errNegativeAmount, amount)
	}

	value.Mul(value, new(big.Rat).SetInt(big.NewInt(params.Ether)))
	if !value.IsInt() {
		return nil, fmt.Errorf("%w: %s has more than 18 decimals", errNonIntegerAmount, amount)
	}

	return new(big.Int).Set(value.Num()), nil
}
