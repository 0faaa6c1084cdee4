package mock

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/klever-io/evm-wallet-checker/provider"
)

// ProxyStub -
type ProxyStub struct {
	ChainIDCalled             func(ctx context.Context) (*big.Int, error)
	GetTransactionCountCalled func(ctx context.Context, address common.Address) (uint64, error)
	GetGasPriceCalled         func(ctx context.Context) (*big.Int, error)
	GetBalanceCalled          func(ctx context.Context, address common.Address) (*big.Int, error)
	EstimateGasCalled         func(ctx context.Context, call ethereum.CallMsg) (uint64, error)
	SendTransactionCalled     func(ctx context.Context, tx *types.Transaction) (string, error)
	GetTransactionCalled      func(ctx context.Context, hash string) (*provider.TransactionInfo, error)
	GetReceiptCalled          func(ctx context.Context, hash string) (*types.Receipt, error)
	CloseCalled               func()
}

// ChainID -
func (stub *ProxyStub) ChainID(ctx context.Context) (*big.Int, error) {
	if stub.ChainIDCalled != nil {
		return stub.ChainIDCalled(ctx)
	}

	return big.NewInt(5), nil
}

// GetTransactionCount -
func (stub *ProxyStub) GetTransactionCount(ctx context.Context, address common.Address) (uint64, error) {
	if stub.GetTransactionCountCalled != nil {
		return stub.GetTransactionCountCalled(ctx, address)
	}

	return 0, nil
}

// GetGasPrice -
func (stub *ProxyStub) GetGasPrice(ctx context.Context) (*big.Int, error) {
	if stub.GetGasPriceCalled != nil {
		return stub.GetGasPriceCalled(ctx)
	}

	return big.NewInt(1000000000), nil
}

// GetBalance -
func (stub *ProxyStub) GetBalance(ctx context.Context, address common.Address) (*big.Int, error) {
	if stub.GetBalanceCalled != nil {
		return stub.GetBalanceCalled(ctx, address)
	}

	return big.NewInt(0), nil
}

// EstimateGas -
func (stub *ProxyStub) EstimateGas(ctx context.Context, call ethereum.CallMsg) (uint64, error) {
	if stub.EstimateGasCalled != nil {
		return stub.EstimateGasCalled(ctx, call)
	}

	return 21000, nil
}

// SendTransaction -
func (stub *ProxyStub) SendTransaction(ctx context.Context, tx *types.Transaction) (string, error) {
	if stub.SendTransactionCalled != nil {
		return stub.SendTransactionCalled(ctx, tx)
	}

	return tx.Hash().Hex(), nil
}

// GetTransaction -
func (stub *ProxyStub) GetTransaction(ctx context.Context, hash string) (*provider.TransactionInfo, error) {
	if stub.GetTransactionCalled != nil {
		return stub.GetTransactionCalled(ctx, hash)
	}

	return nil, provider.ErrTransactionNotFound
}

// GetReceipt -
func (stub *ProxyStub) GetReceipt(ctx context.Context, hash string) (*types.Receipt, error) {
	if stub.GetReceiptCalled != nil {
		return stub.GetReceiptCalled(ctx, hash)
	}

	return nil, provider.ErrTransactionNotFound
}

// Close -
func (stub *ProxyStub) Close() {
	if stub.CloseCalled != nil {
		stub.CloseCalled()
	}
}

// IsInterfaceNil -
func (stub *ProxyStub) IsInterfaceNil() bool {
	return stub == nil
}
