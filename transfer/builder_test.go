package transfer

import (
	"encoding/json"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/klever-io/evm-wallet-checker/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const recipient = "0x3f4f037dfc910a3517b9a5b23cf036ffae01a5a7"

func TestBuildTransaction(t *testing.T) {
	t.Parallel()

	t.Run("string amounts", func(t *testing.T) {
		t.Parallel()

		tx, err := BuildTransaction(validator.TransactionRequest{
			validator.FieldTo:       recipient,
			validator.FieldValue:    "10000000000000000",
			validator.FieldData:     "0x1234",
			validator.FieldNonce:    "0x10",
			validator.FieldGasLimit: "21000",
			validator.FieldGasPrice: "0x3b9aca00",
		})
		require.Nil(t, err)

		assert.Equal(t, common.HexToAddress(recipient), *tx.To())
		assert.Equal(t, big.NewInt(10000000000000000), tx.Value())
		assert.Equal(t, []byte{0x12, 0x34}, tx.Data())
		assert.Equal(t, uint64(16), tx.Nonce())
		assert.Equal(t, uint64(21000), tx.Gas())
		assert.Equal(t, big.NewInt(1000000000), tx.GasPrice())
	})
	t.Run("native amounts", func(t *testing.T) {
		t.Parallel()

		to := common.HexToAddress(recipient)
		tx, err := BuildTransaction(validator.TransactionRequest{
			validator.FieldTo:       &to,
			validator.FieldValue:    big.NewInt(5),
			validator.FieldData:     []byte{1},
			validator.FieldNonce:    uint64(3),
			validator.FieldGasLimit: 21000,
			validator.FieldGasPrice: float64(2000000000),
		})
		require.Nil(t, err)

		assert.Equal(t, to, *tx.To())
		assert.Equal(t, big.NewInt(5), tx.Value())
		assert.Equal(t, []byte{1}, tx.Data())
		assert.Equal(t, uint64(3), tx.Nonce())
		assert.Equal(t, uint64(21000), tx.Gas())
		assert.Equal(t, big.NewInt(2000000000), tx.GasPrice())
	})
	t.Run("json numbers", func(t *testing.T) {
		t.Parallel()

		tx, err := BuildTransaction(validator.TransactionRequest{
			validator.FieldValue: json.Number("42"),
		})
		require.Nil(t, err)
		assert.Equal(t, big.NewInt(42), tx.Value())
	})
	t.Run("missing recipient builds a contract creation", func(t *testing.T) {
		t.Parallel()

		tx, err := BuildTransaction(validator.TransactionRequest{validator.FieldData: "0x60"})
		require.Nil(t, err)
		assert.Nil(t, tx.To())
		assert.Equal(t, big.NewInt(0), tx.Value())
	})
	t.Run("from is ignored", func(t *testing.T) {
		t.Parallel()

		tx, err := BuildTransaction(validator.TransactionRequest{
			validator.FieldTo:   recipient,
			validator.FieldFrom: "not an address",
		})
		require.Nil(t, err)
		assert.NotNil(t, tx.To())
	})
	t.Run("invalid fields should error", func(t *testing.T) {
		t.Parallel()

		invalidRequests := map[string]validator.TransactionRequest{
			"negative value":     {validator.FieldValue: -1},
			"negative string":    {validator.FieldValue: "-5"},
			"fractional value":   {validator.FieldValue: 1.5},
			"text value":         {validator.FieldValue: "one ether"},
			"empty value":        {validator.FieldValue: ""},
			"bad recipient":      {validator.FieldTo: "0x1234"},
			"bad data":           {validator.FieldData: "0xzz"},
			"nonce overflow":     {validator.FieldNonce: "0x10000000000000000"},
			"unsupported type":   {validator.FieldGasPrice: true},
			"value over 256 bit": {validator.FieldValue: new(big.Int).Lsh(big.NewInt(1), 256)},
		}

		for name, request := range invalidRequests {
			tx, err := BuildTransaction(request)
			assert.Nil(t, tx, name)
			assert.True(t, errors.Is(err, ErrInvalidTransactionField), name)
		}
	})
}

func TestParseEther(t *testing.T) {
	t.Parallel()

	value, err := ParseEther("0.01")
	require.Nil(t, err)
	assert.Equal(t, big.NewInt(10000000000000000), value)

	value, err = ParseEther("2")
	require.Nil(t, err)
	assert.Equal(t, "2000000000000000000", value.String())

	_, err = ParseEther("-1")
	assert.True(t, errors.Is(err, errNegativeAmount))

	_, err = ParseEther("0.0000000000000000001")
	assert.True(t, errors.Is(err, errNonIntegerAmount))

	_, err = ParseEther("abc")
	assert.True(t, errors.Is(err, ErrInvalidTransactionField))
}
