package mock

import (
	"context"

	"github.com/klever-io/evm-wallet-checker/facade"
	"github.com/klever-io/evm-wallet-checker/storage"
	"github.com/klever-io/evm-wallet-checker/validator"
)

// FacadeStub -
type FacadeStub struct {
	RestApiInterfaceCalled       func() string
	GetWalletInfoCalled          func(ctx context.Context) (*facade.WalletInfo, error)
	ValidateTransactionCalled    func(request validator.TransactionRequest) error
	SignTransactionCalled        func(ctx context.Context, request validator.TransactionRequest) (*facade.SignedTransaction, error)
	SendTransactionCalled        func(ctx context.Context, request validator.TransactionRequest) (string, error)
	GetTransactionCalled         func(ctx context.Context, hash string) (*facade.TransactionStatus, error)
	GetPendingTransactionsCalled func() ([]*storage.TxRecord, error)
	GetGasPriceCalled            func(ctx context.Context) (*facade.GasPrice, error)
}

// RestApiInterface -
func (stub *FacadeStub) RestApiInterface() string {
	if stub.RestApiInterfaceCalled != nil {
		return stub.RestApiInterfaceCalled()
	}

	return "localhost:8080"
}

// GetWalletInfo -
func (stub *FacadeStub) GetWalletInfo(ctx context.Context) (*facade.WalletInfo, error) {
	if stub.GetWalletInfoCalled != nil {
		return stub.GetWalletInfoCalled(ctx)
	}

	return &facade.WalletInfo{}, nil
}

// ValidateTransaction -
func (stub *FacadeStub) ValidateTransaction(request validator.TransactionRequest) error {
	if stub.ValidateTransactionCalled != nil {
		return stub.ValidateTransactionCalled(request)
	}

	return nil
}

// SignTransaction -
func (stub *FacadeStub) SignTransaction(ctx context.Context, request validator.TransactionRequest) (*facade.SignedTransaction, error) {
	if stub.SignTransactionCalled != nil {
		return stub.SignTransactionCalled(ctx, request)
	}

	return &facade.SignedTransaction{}, nil
}

// SendTransaction -
func (stub *FacadeStub) SendTransaction(ctx context.Context, request validator.TransactionRequest) (string, error) {
	if stub.SendTransactionCalled != nil {
		return stub.SendTransactionCalled(ctx, request)
	}

	return "", nil
}

// GetTransaction -
func (stub *FacadeStub) GetTransaction(ctx context.Context, hash string) (*facade.TransactionStatus, error) {
	if stub.GetTransactionCalled != nil {
		return stub.GetTransactionCalled(ctx, hash)
	}

	return &facade.TransactionStatus{Hash: hash}, nil
}

// GetPendingTransactions -
func (stub *FacadeStub) GetPendingTransactions() ([]*storage.TxRecord, error) {
	if stub.GetPendingTransactionsCalled != nil {
		return stub.GetPendingTransactionsCalled()
	}

	return make([]*storage.TxRecord, 0), nil
}

// GetGasPrice -
func (stub *FacadeStub) GetGasPrice(ctx context.Context) (*facade.GasPrice, error) {
	if stub.GetGasPriceCalled != nil {
		return stub.GetGasPriceCalled(ctx)
	}

	return &facade.GasPrice{}, nil
}

// IsInterfaceNil -
func (stub *FacadeStub) IsInterfaceNil() bool {
	return stub == nil
}
