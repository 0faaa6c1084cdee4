package transfer

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"reflect"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	ethMath "github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/klever-io/evm-wallet-checker/validator"
	"github.com/mitchellh/mapstructure"
)

var (
	bigIntType  = reflect.TypeOf(big.Int{})
	uint64Type  = reflect.TypeOf(uint64(0))
	addressType = reflect.TypeOf(common.Address{})
	bytesType   = reflect.TypeOf([]byte{})
)

type transferFields struct {
	To       common.Address `mapstructure:"to"`
	Value    big.Int        `mapstructure:"value"`
	Data     []byte         `mapstructure:"data"`
	Nonce    uint64         `mapstructure:"nonce"`
	GasLimit uint64         `mapstructure:"gasLimit"`
	GasPrice big.Int        `mapstructure:"gasPrice"`
}

// BuildTransaction converts a request into an unsigned legacy transaction. Amounts may be given as decimal or
// 0x-prefixed hex strings, Go integers, integral JSON numbers or *big.Int values. A request without a
// recipient builds a contract creation
func BuildTransaction(request validator.TransactionRequest) (*types.Transaction, error) {
	fields := transferFields{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: transferDecodeHook,
		Result:     &fields,
	})
	if err != nil {
		return nil, err
	}

	err = decoder.Decode(map[string]interface{}(request))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTransactionField, err.Error())
	}

	var to *common.Address
	if request.Has(validator.FieldTo) {
		recipient := fields.To
		to = &recipient
	}

	return types.NewTx(&types.LegacyTx{
		Nonce:    fields.Nonce,
		GasPrice: new(big.Int).Set(&fields.GasPrice),
		Gas:      fields.GasLimit,
		To:       to,
		Value:    new(big.Int).Set(&fields.Value),
		Data:     fields.Data,
	}), nil
}

func transferDecodeHook(_ reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	switch to {
	case bigIntType:
		return toBigInt(data)
	case uint64Type:
		value, err := toBigInt(data)
		if err != nil {
			return nil, err
		}
		if !value.IsUint64() {
			return nil, fmt.Errorf("%w: %s overflows uint64", errAmountTooLarge, value.String())
		}
		return value.Uint64(), nil
	case addressType:
		return toAddress(data)
	case bytesType:
		return toBytes(data)
	default:
		return data, nil
	}
}

func toBigInt(data interface{}) (*big.Int, error) {
	var value *big.Int
	switch v := data.(type) {
	case *big.Int:
		value = new(big.Int).Set(v)
	case big.Int:
		value = new(big.Int).Set(&v)
	case int:
		value = big.NewInt(int64(v))
	case int8:
		value = big.NewInt(int64(v))
	case int16:
		value = big.NewInt(int64(v))
	case int32:
		value = big.NewInt(int64(v))
	case int64:
		value = big.NewInt(v)
	case uint:
		value = new(big.Int).SetUint64(uint64(v))
	case uint8:
		value = new(big.Int).SetUint64(uint64(v))
	case uint16:
		value = new(big.Int).SetUint64(uint64(v))
	case uint32:
		value = new(big.Int).SetUint64(uint64(v))
	case uint64:
		value = new(big.Int).SetUint64(v)
	case float64:
		if math.IsInf(v, 0) || math.IsNaN(v) || v != math.Trunc(v) {
			return nil, fmt.Errorf("%w: %v", errNonIntegerAmount, v)
		}
		value, _ = new(big.Float).SetFloat64(v).Int(nil)
	case json.Number:
		return toBigInt(string(v))
	case string:
		trimmed := strings.TrimSpace(v)
		parsed, ok := ethMath.ParseBig256(trimmed)
		if len(trimmed) == 0 || !ok {
			return nil, fmt.Errorf("%w: %q is not a decimal or hex amount", errUnsupportedType, v)
		}
		value = parsed
	default:
		return nil, fmt.Errorf("%w: %T", errUnsupportedType, data)
	}

	if value.Sign() < 0 {
		return nil, fmt.Errorf("%w: %s", errNegativeAmount, value.String())
	}
	if value.BitLen() > 256 {
		return nil, errAmountTooLarge
	}

	return value, nil
}

func toAddress(data interface{}) (common.Address, error) {
	switch v := data.(type) {
	case common.Address:
		return v, nil
	case *common.Address:
		return *v, nil
	case []byte:
		if len(v) == common.AddressLength {
			return common.BytesToAddress(v), nil
		}
	case string:
		hexAddress := strings.TrimSpace(v)
		if common.IsHexAddress(hexAddress) {
			return common.HexToAddress(hexAddress), nil
		}
	}

	return common.Address{}, fmt.Errorf("%w: %v is not an address", errUnsupportedType, data)
}

func toBytes(data interface{}) ([]byte, error) {
	switch v := data.(type) {
	case []byte:
		return common.CopyBytes(v), nil
	case string:
		if len(v) == 0 {
			return []byte{}, nil
		}
		return hexutil.Decode(v)
	}

	return nil, fmt.Errorf("%w: %T", errUnsupportedType, data)
}
