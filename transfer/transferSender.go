package transfer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	gas "github.com/klever-io/evm-wallet-checker/gasStation"
	"github.com/klever-io/evm-wallet-checker/metrics"
	"github.com/klever-io/evm-wallet-checker/provider"
	"github.com/klever-io/evm-wallet-checker/storage"
	"github.com/klever-io/evm-wallet-checker/tools/wallet"
	"github.com/klever-io/evm-wallet-checker/validator"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("evm-wallet-checker/transfer")

// ArgsTransferSender is the argument DTO for the NewTransferSender function
type ArgsTransferSender struct {
	Proxy           Proxy
	TxNonceHandler  TransactionNonceHandler
	Wallet          wallet.Wallet
	Validator       TransactionValidator
	Journal         TxJournal
	Metrics         metrics.Handler
	DefaultGasLimit uint64
}

// SignedTransfer is a populated and signed transaction, ready to be submitted
type SignedTransfer struct {
	Tx     *types.Transaction
	RawHex string
	Hash   string
}

type transferSender struct {
	proxy           Proxy
	txNonceHandler  TransactionNonceHandler
	wallet          wallet.Wallet
	validator       TransactionValidator
	journal         TxJournal
	metrics         metrics.Handler
	defaultGasLimit uint64
	mutPipeline     sync.Mutex
}

// NewTransferSender creates the component that validates, populates, signs and submits transfers
func NewTransferSender(args ArgsTransferSender) (*transferSender, error) {
	err := checkArgsTransferSender(args)
	if err != nil {
		return nil, err
	}

	return &transferSender{
		proxy:           args.Proxy,
		txNonceHandler:  args.TxNonceHandler,
		wallet:          args.Wallet,
		validator:       args.Validator,
		journal:         args.Journal,
		metrics:         args.Metrics,
		defaultGasLimit: args.DefaultGasLimit,
	}, nil
}

func checkArgsTransferSender(args ArgsTransferSender) error {
	if check.IfNil(args.Proxy) {
		return errNilProxy
	}
	if check.IfNil(args.TxNonceHandler) {
		return errNilTxNonceHandler
	}
	if check.IfNil(args.Wallet) {
		return errNilWallet
	}
	if check.IfNil(args.Validator) {
		return errNilValidator
	}
	if check.IfNil(args.Journal) {
		return errNilJournal
	}
	if check.IfNil(args.Metrics) {
		return errNilMetrics
	}

	return nil
}

// SignerAddress returns the address of the wallet signing the transfers
func (ts *transferSender) SignerAddress() common.Address {
	return ts.wallet.Address()
}

// SignTransfer validates the request, fills in the nonce, gas price and gas limit, checks the sender can
// afford it and signs it. Nothing is signed if the validation fails. The transfer is not submitted, so its
// nonce is released for the next request
func (ts *transferSender) SignTransfer(ctx context.Context, request validator.TransactionRequest) (*SignedTransfer, error) {
	ts.mutPipeline.Lock()
	defer ts.mutPipeline.Unlock()

	signed, err := ts.signTransfer(ctx, request)
	ts.txNonceHandler.DropNonce(ts.wallet.Address())

	return signed, err
}

func (ts *transferSender) signTransfer(ctx context.Context, request validator.TransactionRequest) (*SignedTransfer, error) {
	signer := ts.wallet.Address()

	err := ts.validator.Validate(request, signer)
	ts.metrics.RecordValidation(err)
	if err != nil {
		ts.metrics.RecordFailure(metrics.StageValidate)
		return nil, err
	}

	tx, err := ts.populate(ctx, signer, request)
	if err != nil {
		ts.txNonceHandler.DropNonce(signer)
		ts.metrics.RecordFailure(metrics.StagePopulate)
		return nil, err
	}

	signed, err := ts.sign(ctx, tx)
	if err != nil {
		ts.txNonceHandler.DropNonce(signer)
		ts.metrics.RecordFailure(metrics.StageSign)
		return nil, err
	}

	return signed, nil
}

func (ts *transferSender) populate(ctx context.Context, signer common.Address, request validator.TransactionRequest) (*types.Transaction, error) {
	populated, err := ts.txNonceHandler.ApplyNonceAndGasPrice(ctx, signer, request)
	if err != nil {
		return nil, err
	}

	if !populated.Has(validator.FieldGasLimit) {
		gasLimit, errEstimate := ts.estimateGasLimit(ctx, signer, populated)
		if errEstimate != nil {
			return nil, errEstimate
		}
		populated = populated.With(validator.FieldGasLimit, gasLimit)
	}

	tx, err := BuildTransaction(populated)
	if err != nil {
		return nil, err
	}

	err = ts.checkFunds(ctx, signer, tx)
	if err != nil {
		return nil, err
	}

	return tx, nil
}

func (ts *transferSender) estimateGasLimit(ctx context.Context, signer common.Address, request validator.TransactionRequest) (uint64, error) {
	draft, err := BuildTransaction(request)
	if err != nil {
		return 0, err
	}

	gasLimit, err := ts.proxy.EstimateGas(ctx, ethereum.CallMsg{
		From:     signer,
		To:       draft.To(),
		GasPrice: draft.GasPrice(),
		Value:    draft.Value(),
		Data:     draft.Data(),
	})
	if err == nil {
		return gasLimit, nil
	}
	if ts.defaultGasLimit == 0 || errors.Is(err, provider.ErrInsufficientFunds) || ctx.Err() != nil {
		return 0, err
	}

	log.Warn("gas estimation failed, using the default gas limit", "gas limit", ts.defaultGasLimit, "error", err)

	return ts.defaultGasLimit, nil
}

func (ts *transferSender) checkFunds(ctx context.Context, signer common.Address, tx *types.Transaction) error {
	balance, err := ts.proxy.GetBalance(ctx, signer)
	if err != nil {
		return err
	}

	cost := gas.ComputeMaxCost(tx.Value(), tx.Gas(), tx.GasPrice())
	if balance.Cmp(cost) < 0 {
		return fmt.Errorf("%w: address %s, balance %s, cost %s",
			provider.ErrInsufficientFunds, signer.Hex(), balance.String(), cost.String())
	}

	return nil
}

func (ts *transferSender) sign(ctx context.Context, tx *types.Transaction) (*SignedTransfer, error) {
	chainID, err := ts.proxy.ChainID(ctx)
	if err != nil {
		return nil, err
	}

	signedTx, err := ts.wallet.SignTransaction(tx, chainID)
	if err != nil {
		return nil, err
	}

	raw, err := signedTx.MarshalBinary()
	if err != nil {
		return nil, err
	}

	return &SignedTransfer{
		Tx:     signedTx,
		RawHex: hexutil.Encode(raw),
		Hash:   signedTx.Hash().Hex(),
	}, nil
}

// SendTransfer signs the request and submits it. The returned hash is recorded in the journal. Transfers of the
// signer are processed one at a time, so each one gets its own nonce
func (ts *transferSender) SendTransfer(ctx context.Context, request validator.TransactionRequest) (string, error) {
	ts.mutPipeline.Lock()
	defer ts.mutPipeline.Unlock()

	signed, err := ts.signTransfer(ctx, request)
	if err != nil {
		return "", err
	}
	log.Debug("signed transaction", "hash", signed.Hash, "raw", signed.RawHex)

	hash, err := ts.txNonceHandler.SendTransaction(ctx, signed.Tx)
	if err != nil {
		ts.metrics.RecordFailure(metrics.StageSend)
		return "", err
	}
	ts.metrics.RecordSent()

	log.Info("sent transaction", "hash", hash, "nonce", signed.Tx.Nonce(),
		"value", signed.Tx.Value().String(), "gas price (gwei)", gas.ConvertToGwei(signed.Tx.GasPrice()))

	err = ts.journal.Put(ts.createRecord(hash, signed.Tx))
	if err != nil {
		log.Error("failed to record the sent transaction", "hash", hash, "error", err)
	}

	return hash, nil
}

func (ts *transferSender) createRecord(hash string, tx *types.Transaction) *storage.TxRecord {
	to := ""
	if tx.To() != nil {
		to = tx.To().Hex()
	}

	return &storage.TxRecord{
		Hash:        hash,
		From:        ts.wallet.Address().Hex(),
		To:          to,
		Value:       tx.Value().String(),
		Nonce:       tx.Nonce(),
		GasLimit:    tx.Gas(),
		GasPrice:    tx.GasPrice().String(),
		Status:      storage.StatusPending,
		SubmittedAt: time.Now().Unix(),
	}
}

// VerifySender fetches the transaction from the network and checks it was sent by the wallet address
func (ts *transferSender) VerifySender(ctx context.Context, hash string) (*provider.TransactionInfo, error) {
	info, err := ts.proxy.GetTransaction(ctx, hash)
	if err != nil {
		return nil, err
	}

	signer := ts.wallet.Address()
	if info.From != signer {
		return nil, fmt.Errorf("%w: transaction %s sent by %s, signer %s", ErrSenderNotSigner, hash, info.From.Hex(), signer.Hex())
	}

	return info, nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (ts *transferSender) IsInterfaceNil() bool {
	return ts == nil
}
