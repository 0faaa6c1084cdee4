package mock

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/klever-io/evm-wallet-checker/validator"
)

// TxNonceHandlerStub -
type TxNonceHandlerStub struct {
	ApplyNonceAndGasPriceCalled func(ctx context.Context, address common.Address, request validator.TransactionRequest) (validator.TransactionRequest, error)
	SendTransactionCalled       func(ctx context.Context, tx *types.Transaction) (string, error)
	DropNonceCalled             func(address common.Address)
}

// ApplyNonceAndGasPrice -
func (stub *TxNonceHandlerStub) ApplyNonceAndGasPrice(ctx context.Context, address common.Address, request validator.TransactionRequest) (validator.TransactionRequest, error) {
	if stub.ApplyNonceAndGasPriceCalled != nil {
		return stub.ApplyNonceAndGasPriceCalled(ctx, address, request)
	}

	return request.Clone(), nil
}

// SendTransaction -
func (stub *TxNonceHandlerStub) SendTransaction(ctx context.Context, tx *types.Transaction) (string, error) {
	if stub.SendTransactionCalled != nil {
		return stub.SendTransactionCalled(ctx, tx)
	}

	return tx.Hash().Hex(), nil
}

// DropNonce -
func (stub *TxNonceHandlerStub) DropNonce(address common.Address) {
	if stub.DropNonceCalled != nil {
		stub.DropNonceCalled(address)
	}
}

// IsInterfaceNil -
func (stub *TxNonceHandlerStub) IsInterfaceNil() bool {
	return stub == nil
}
