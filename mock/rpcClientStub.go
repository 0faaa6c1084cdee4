package mock

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// RPCClientStub -
type RPCClientStub struct {
	ChainIDCalled            func(ctx context.Context) (*big.Int, error)
	PendingNonceAtCalled     func(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPriceCalled    func(ctx context.Context) (*big.Int, error)
	BalanceAtCalled          func(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	EstimateGasCalled        func(ctx context.Context, call ethereum.CallMsg) (uint64, error)
	SendTransactionCalled    func(ctx context.Context, tx *types.Transaction) error
	TransactionByHashCalled  func(ctx context.Context, hash common.Hash) (*types.Transaction, bool, error)
	TransactionReceiptCalled func(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	CloseCalled              func()
}

// ChainID -
func (stub *RPCClientStub) ChainID(ctx context.Context) (*big.Int, error) {
	if stub.ChainIDCalled != nil {
		return stub.ChainIDCalled(ctx)
	}

	return big.NewInt(5), nil
}

// PendingNonceAt -
func (stub *RPCClientStub) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	if stub.PendingNonceAtCalled != nil {
		return stub.PendingNonceAtCalled(ctx, account)
	}

	return 0, nil
}

// SuggestGasPrice -
func (stub *RPCClientStub) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	if stub.SuggestGasPriceCalled != nil {
		return stub.SuggestGasPriceCalled(ctx)
	}

	return big.NewInt(1), nil
}

// BalanceAt -
func (stub *RPCClientStub) BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error) {
	if stub.BalanceAtCalled != nil {
		return stub.BalanceAtCalled(ctx, account, blockNumber)
	}

	return big.NewInt(0), nil
}

// EstimateGas -
func (stub *RPCClientStub) EstimateGas(ctx context.Context, call ethereum.CallMsg) (uint64, error) {
	if stub.EstimateGasCalled != nil {
		return stub.EstimateGasCalled(ctx, call)
	}

	return 21000, nil
}

// SendTransaction -
func (stub *RPCClientStub) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	if stub.SendTransactionCalled != nil {
		return stub.SendTransactionCalled(ctx, tx)
	}

	return nil
}

// TransactionByHash -
func (stub *RPCClientStub) TransactionByHash(ctx context.Context, hash common.Hash) (*types.Transaction, bool, error) {
	if stub.TransactionByHashCalled != nil {
		return stub.TransactionByHashCalled(ctx, hash)
	}

	return nil, false, ethereum.NotFound
}

// TransactionReceipt -
func (stub *RPCClientStub) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	if stub.TransactionReceiptCalled != nil {
		return stub.TransactionReceiptCalled(ctx, txHash)
	}

	return nil, ethereum.NotFound
}

// Close -
func (stub *RPCClientStub) Close() {
	if stub.CloseCalled != nil {
		stub.CloseCalled()
	}
}
