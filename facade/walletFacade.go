package facade

import (
	"context"
	"errors"

	gas "github.com/klever-io/evm-wallet-checker/gasStation"
	"github.com/klever-io/evm-wallet-checker/storage"
	"github.com/klever-io/evm-wallet-checker/validator"
	"github.com/multiversx/mx-chain-core-go/core/check"
)

// DefaultRestPortOff is the value of the rest api interface that disables the web server
const DefaultRestPortOff = "off"

// ArgsWalletFacade is the argument DTO for the NewWalletFacade function
type ArgsWalletFacade struct {
	TransferSender   TransferSender
	Validator        TransactionValidator
	Proxy            Proxy
	GasPriceService  GasPriceService
	Journal          TxJournal
	Metrics          MetricsHandler
	RestApiInterface string
}

type walletFacade struct {
	transferSender   TransferSender
	validator        TransactionValidator
	proxy            Proxy
	gasPriceService  GasPriceService
	journal          TxJournal
	metrics          MetricsHandler
	restApiInterface string
}

// NewWalletFacade creates the facade used by the REST API groups
func NewWalletFacade(args ArgsWalletFacade) (*walletFacade, error) {
	err := checkArgsWalletFacade(args)
	if err != nil {
		return nil, err
	}

	return &walletFacade{
		transferSender:   args.TransferSender,
		validator:        args.Validator,
		proxy:            args.Proxy,
		gasPriceService:  args.GasPriceService,
		journal:          args.Journal,
		metrics:          args.Metrics,
		restApiInterface: args.RestApiInterface,
	}, nil
}

func checkArgsWalletFacade(args ArgsWalletFacade) error {
	if check.IfNil(args.TransferSender) {
		return errNilTransferSender
	}
	if check.IfNil(args.Validator) {
		return errNilValidator
	}
	if check.IfNil(args.Proxy) {
		return errNilProxy
	}
	if check.IfNil(args.GasPriceService) {
		return errNilGasPriceService
	}
	if check.IfNil(args.Journal) {
		return errNilJournal
	}
	if check.IfNil(args.Metrics) {
		return errNilMetrics
	}

	return nil
}

// RestApiInterface returns the interface the web server binds to
func (wf *walletFacade) RestApiInterface() string {
	return wf.restApiInterface
}

// GetWalletInfo returns the signer address together with its balance and the network chain ID
func (wf *walletFacade) GetWalletInfo(ctx context.Context) (*WalletInfo, error) {
	address := wf.transferSender.SignerAddress()

	balance, err := wf.proxy.GetBalance(ctx, address)
	if err != nil {
		return nil, err
	}

	chainID, err := wf.proxy.ChainID(ctx)
	if err != nil {
		return nil, err
	}

	return &WalletInfo{
		Address: address.Hex(),
		Balance: balance.String(),
		ChainID: chainID.String(),
	}, nil
}

// ValidateTransaction checks the request against the signer address without touching the network
func (wf *walletFacade) ValidateTransaction(request validator.TransactionRequest) error {
	err := wf.validator.Validate(request, wf.transferSender.SignerAddress())
	wf.metrics.RecordValidation(err)

	return err
}

// SignTransaction validates, populates and signs the request without submitting it
func (wf *walletFacade) SignTransaction(ctx context.Context, request validator.TransactionRequest) (*SignedTransaction, error) {
	signed, err := wf.transferSender.SignTransfer(ctx, request)
	if err != nil {
		return nil, err
	}

	return &SignedTransaction{
		Hash:   signed.Hash,
		RawHex: signed.RawHex,
		Nonce:  signed.Tx.Nonce(),
	}, nil
}

// SendTransaction validates, populates, signs and submits the request
func (wf *walletFacade) SendTransaction(ctx context.Context, request validator.TransactionRequest) (string, error) {
	return wf.transferSender.SendTransfer(ctx, request)
}

// GetTransaction returns the network view of the transaction, joined with its journal record if any
func (wf *walletFacade) GetTransaction(ctx context.Context, hash string) (*TransactionStatus, error) {
	info, err := wf.proxy.GetTransaction(ctx, hash)
	if err != nil {
		return nil, err
	}

	status := &TransactionStatus{
		Hash:     info.Tx.Hash().Hex(),
		From:     info.From.Hex(),
		Value:    info.Tx.Value().String(),
		Nonce:    info.Tx.Nonce(),
		Pending:  info.Pending,
		IsSigner: info.From == wf.transferSender.SignerAddress(),
	}
	if info.Tx.To() != nil {
		status.To = info.Tx.To().Hex()
	}

	record, err := wf.journal.Get(status.Hash)
	if err != nil && !errors.Is(err, storage.ErrRecordNotFound) {
		return nil, err
	}
	status.Record = record

	return status, nil
}

// GetPendingTransactions returns the journal transactions still waiting for a receipt
func (wf *walletFacade) GetPendingTransactions() ([]*storage.TxRecord, error) {
	return wf.journal.Pending()
}

// GetGasPrice returns the gas price new transactions are built with
func (wf *walletFacade) GetGasPrice(ctx context.Context) (*GasPrice, error) {
	gasPrice, err := wf.gasPriceService.GetGasPrice(ctx)
	if err != nil {
		return nil, err
	}

	return &GasPrice{
		Wei:  gasPrice.String(),
		Gwei: gas.ConvertToGwei(gasPrice),
	}, nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (wf *walletFacade) IsInterfaceNil() bool {
	return wf == nil
}
