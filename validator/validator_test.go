package validator_test

import (
	"errors"
	"math/big"
	"strings"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/klever-io/evm-wallet-checker/validator"
	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var signerAddress = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")

func createBaseRequest() validator.TransactionRequest {
	return validator.TransactionRequest{
		validator.FieldTo:       "0xddB51f100672Cb252C67D516eb79931bf27cE3E6",
		validator.FieldValue:    big.NewInt(1000000000000000),
		validator.FieldData:     []byte("Hello World"),
		validator.FieldNonce:    uint64(7),
		validator.FieldGasLimit: uint64(25000),
		validator.FieldGasPrice: big.NewInt(1500000000),
	}
}

func TestNewTransactionValidator(t *testing.T) {
	t.Parallel()

	tv := validator.NewTransactionValidator()
	assert.False(t, check.IfNil(tv))
}

func TestCheckTransaction(t *testing.T) {
	t.Parallel()

	t.Run("request without from should work", func(t *testing.T) {
		t.Parallel()

		err := validator.CheckTransaction(createBaseRequest(), signerAddress)
		assert.Nil(t, err)
	})
	t.Run("empty request should work", func(t *testing.T) {
		t.Parallel()

		err := validator.CheckTransaction(validator.TransactionRequest{}, signerAddress)
		assert.Nil(t, err)
	})
	t.Run("from matching the signer should work", func(t *testing.T) {
		t.Parallel()

		request := createBaseRequest().With(validator.FieldFrom, signerAddress.Hex())
		assert.Nil(t, validator.CheckTransaction(request, signerAddress))
	})
	t.Run("from matching the signer in lower case should work", func(t *testing.T) {
		t.Parallel()

		request := createBaseRequest().With(validator.FieldFrom, strings.ToLower(signerAddress.Hex()))
		assert.Nil(t, validator.CheckTransaction(request, signerAddress))
	})
	t.Run("from matching the signer in upper case without prefix should work", func(t *testing.T) {
		t.Parallel()

		request := createBaseRequest().With(validator.FieldFrom, strings.ToUpper(signerAddress.Hex()[2:]))
		assert.Nil(t, validator.CheckTransaction(request, signerAddress))
	})
	t.Run("from as address types should work", func(t *testing.T) {
		t.Parallel()

		addr := signerAddress
		assert.Nil(t, validator.CheckTransaction(createBaseRequest().With(validator.FieldFrom, addr), signerAddress))
		assert.Nil(t, validator.CheckTransaction(createBaseRequest().With(validator.FieldFrom, &addr), signerAddress))
		assert.Nil(t, validator.CheckTransaction(createBaseRequest().With(validator.FieldFrom, addr.Bytes()), signerAddress))
	})
	t.Run("nil from is treated as absent", func(t *testing.T) {
		t.Parallel()

		var nilAddress *common.Address
		assert.Nil(t, validator.CheckTransaction(createBaseRequest().With(validator.FieldFrom, nil), signerAddress))
		assert.Nil(t, validator.CheckTransaction(createBaseRequest().With(validator.FieldFrom, nilAddress), signerAddress))
	})
	t.Run("unknown field should error", func(t *testing.T) {
		t.Parallel()

		request := createBaseRequest().With("unicorn", "Jerry")
		err := validator.CheckTransaction(request, signerAddress)

		require.NotNil(t, err)
		assert.True(t, errors.Is(err, validator.ErrUnknownField))
		assert.Equal(t, "invalid transaction key: unicorn", err.Error())

		unknownErr := &validator.UnknownFieldError{}
		require.True(t, errors.As(err, &unknownErr))
		assert.Equal(t, "unicorn", unknownErr.Field)
	})
	t.Run("unknown field alone should error", func(t *testing.T) {
		t.Parallel()

		err := validator.CheckTransaction(validator.TransactionRequest{"unicorn": "Jerry"}, signerAddress)
		assert.True(t, errors.Is(err, validator.ErrUnknownField))
	})
	t.Run("several unknown fields report the smallest name", func(t *testing.T) {
		t.Parallel()

		request := createBaseRequest().With("zebra", 1).With("unicorn", "Jerry").With("chainId", 5)
		for i := 0; i < 20; i++ {
			err := validator.CheckTransaction(request, signerAddress)
			assert.Equal(t, "invalid transaction key: chainId", err.Error())
		}
	})
	t.Run("field names are case sensitive", func(t *testing.T) {
		t.Parallel()

		request := createBaseRequest().With("GasLimit", 21000)
		err := validator.CheckTransaction(request, signerAddress)
		assert.Equal(t, "invalid transaction key: GasLimit", err.Error())
	})
	t.Run("mismatched from should error", func(t *testing.T) {
		t.Parallel()

		request := createBaseRequest().With(validator.FieldFrom, "0x3f4f037dfc910a3517b9a5b23cf036ffae01a5a7")
		err := validator.CheckTransaction(request, signerAddress)

		require.NotNil(t, err)
		assert.True(t, errors.Is(err, validator.ErrSenderMismatch))
		assert.False(t, errors.Is(err, validator.ErrUnknownField))

		mismatchErr := &validator.SenderMismatchError{}
		require.True(t, errors.As(err, &mismatchErr))
		assert.Equal(t, signerAddress.Hex(), mismatchErr.Signer)
		assert.Equal(t, "0x3f4f037dfc910a3517b9a5b23cf036ffae01a5a7", mismatchErr.Asserted)
		assert.Equal(t, "from address mismatch: transaction.from 0x3f4f037dfc910a3517b9a5b23cf036ffae01a5a7, signer "+signerAddress.Hex(), err.Error())
	})
	t.Run("from on a request holding only from should error", func(t *testing.T) {
		t.Parallel()

		request := validator.TransactionRequest{validator.FieldFrom: "0xddddddddddddddddddddddddddddddddddddddd6"}
		err := validator.CheckTransaction(request, signerAddress)
		assert.True(t, errors.Is(err, validator.ErrSenderMismatch))
	})
	t.Run("malformed from should error with mismatch", func(t *testing.T) {
		t.Parallel()

		for _, value := range []interface{}{"not an address", "0x1234", 42, []byte{1, 2, 3}} {
			err := validator.CheckTransaction(createBaseRequest().With(validator.FieldFrom, value), signerAddress)
			assert.True(t, errors.Is(err, validator.ErrSenderMismatch), "value %v", value)
		}
	})
	t.Run("unknown field wins over mismatched from", func(t *testing.T) {
		t.Parallel()

		request := createBaseRequest().
			With(validator.FieldFrom, "0x3f4f037dfc910a3517b9a5b23cf036ffae01a5a7").
			With("unicorn", "Jerry")
		err := validator.CheckTransaction(request, signerAddress)

		assert.True(t, errors.Is(err, validator.ErrUnknownField))
		assert.False(t, errors.Is(err, validator.ErrSenderMismatch))
	})
}

func TestCheckTransaction_IsIdempotentAndReadOnly(t *testing.T) {
	t.Parallel()

	request := createBaseRequest().With(validator.FieldFrom, "0x3f4f037dfc910a3517b9a5b23cf036ffae01a5a7")
	snapshot := request.Clone()

	first := validator.CheckTransaction(request, signerAddress)
	second := validator.CheckTransaction(request, signerAddress)

	assert.Equal(t, first, second)
	assert.Equal(t, snapshot, request)
}

func TestTransactionValidator_ConcurrentCalls(t *testing.T) {
	t.Parallel()

	tv := validator.NewTransactionValidator()
	valid := createBaseRequest().With(validator.FieldFrom, signerAddress.Hex())
	invalid := createBaseRequest().With("unicorn", "Jerry")

	wg := sync.WaitGroup{}
	numCalls := 100
	wg.Add(numCalls)
	for i := 0; i < numCalls; i++ {
		go func(idx int) {
			defer wg.Done()

			if idx%2 == 0 {
				assert.Nil(t, tv.Validate(valid, signerAddress))
				return
			}
			assert.True(t, errors.Is(tv.Validate(invalid, signerAddress), validator.ErrUnknownField))
		}(i)
	}
	wg.Wait()
}
