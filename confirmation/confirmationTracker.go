package confirmation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/klever-io/evm-wallet-checker/metrics"
	"github.com/klever-io/evm-wallet-checker/provider"
	"github.com/klever-io/evm-wallet-checker/storage"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
)

const minPollingInterval = time.Millisecond

var log = logger.GetOrCreate("evm-wallet-checker/confirmation")

// ArgsConfirmationTracker is the argument DTO for the NewConfirmationTracker function
type ArgsConfirmationTracker struct {
	Proxy         Proxy
	Journal       TxJournal
	Metrics       metrics.Handler
	Notifee       Notifee
	SignerAddress common.Address
}

// Confirmation describes a mined transaction
type Confirmation struct {
	Hash        string
	From        common.Address
	BlockNumber uint64
	GasUsed     uint64
	Success     bool
}

type confirmationTracker struct {
	proxy         Proxy
	journal       TxJournal
	metrics       metrics.Handler
	notifee       Notifee
	signerAddress common.Address
}

// NewConfirmationTracker creates the component that checks the journal pending transactions for receipts
func NewConfirmationTracker(args ArgsConfirmationTracker) (*confirmationTracker, error) {
	err := checkArgsConfirmationTracker(args)
	if err != nil {
		return nil, err
	}

	return &confirmationTracker{
		proxy:         args.Proxy,
		journal:       args.Journal,
		metrics:       args.Metrics,
		notifee:       args.Notifee,
		signerAddress: args.SignerAddress,
	}, nil
}

func checkArgsConfirmationTracker(args ArgsConfirmationTracker) error {
	if check.IfNil(args.Proxy) {
		return errNilProxy
	}
	if check.IfNil(args.Journal) {
		return errNilJournal
	}
	if check.IfNil(args.Metrics) {
		return errNilMetrics
	}
	if check.IfNil(args.Notifee) {
		return errNilNotifee
	}

	return nil
}

// Execute checks every pending transaction of the journal and records the mined ones. A transaction that can not
// be checked is left pending for the next round
func (ct *confirmationTracker) Execute(ctx context.Context) error {
	records, err := ct.journal.Pending()
	if err != nil {
		return err
	}

	for _, record := range records {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		confirmation, errCheck := ct.checkTransaction(ctx, record.Hash)
		if errors.Is(errCheck, provider.ErrTransactionNotFound) {
			log.Trace("transaction still pending", "hash", record.Hash, "nonce", record.Nonce)
			continue
		}
		if errCheck != nil && !errors.Is(errCheck, errSenderMismatch) {
			log.Warn("could not check journal transaction", "hash", record.Hash, "nonce", record.Nonce, "error", errCheck)
			continue
		}

		err = ct.journal.MarkConfirmed(record.Hash, confirmation.BlockNumber, confirmation.Success && errCheck == nil)
		if err != nil {
			return err
		}
		if errCheck != nil {
			log.Error("journal transaction was not sent by the signer", "hash", record.Hash, "error", errCheck)
			ct.metrics.RecordFailure(metrics.StageConfirm)
			continue
		}

		err = ct.notifee.TransactionConfirmed(ctx, confirmation)
		if err != nil {
			return err
		}
	}

	return nil
}

// WaitForConfirmation polls the network until the transaction is mined or the context is done. The mined
// transaction is marked in the journal, if it was recorded there
func (ct *confirmationTracker) WaitForConfirmation(ctx context.Context, hash string, pollingInterval time.Duration) (*Confirmation, error) {
	if pollingInterval < minPollingInterval {
		return nil, fmt.Errorf("%w, minimum %v, got %v", errInvalidPollingInterval, minPollingInterval, pollingInterval)
	}

	ticker := time.NewTicker(pollingInterval)
	defer ticker.Stop()

	for {
		confirmation, err := ct.checkTransaction(ctx, hash)
		if err == nil {
			errMark := ct.markConfirmed(confirmation, confirmation.Success)
			if errMark != nil {
				return nil, errMark
			}

			return confirmation, nil
		}
		if errors.Is(err, errSenderMismatch) {
			ct.metrics.RecordFailure(metrics.StageConfirm)
			errMark := ct.markConfirmed(confirmation, false)
			if errMark != nil {
				log.Error("could not mark the transaction as failed", "hash", hash, "error", errMark)
			}

			return nil, err
		}
		if !errors.Is(err, provider.ErrTransactionNotFound) {
			return nil, err
		}

		log.Debug("waiting for transaction", "hash", hash)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

// markConfirmed ignores transactions that were never journaled, like the ones sent by other tools
func (ct *confirmationTracker) markConfirmed(confirmation *Confirmation, success bool) error {
	err := ct.journal.MarkConfirmed(confirmation.Hash, confirmation.BlockNumber, success)
	if errors.Is(err, storage.ErrRecordNotFound) {
		log.Debug("transaction is not in the journal", "hash", confirmation.Hash)
		return nil
	}

	return err
}

func (ct *confirmationTracker) checkTransaction(ctx context.Context, hash string) (*Confirmation, error) {
	receipt, err := ct.proxy.GetReceipt(ctx, hash)
	if err != nil {
		return nil, err
	}

	info, err := ct.proxy.GetTransaction(ctx, hash)
	if err != nil {
		return nil, err
	}

	confirmation := &Confirmation{
		Hash:    hash,
		From:    info.From,
		GasUsed: receipt.GasUsed,
		Success: receipt.Status == types.ReceiptStatusSuccessful,
	}
	if receipt.BlockNumber != nil {
		confirmation.BlockNumber = receipt.BlockNumber.Uint64()
	}

	if info.From != ct.signerAddress {
		return confirmation, fmt.Errorf("%w: sender %s, signer %s", errSenderMismatch, info.From.Hex(), ct.signerAddress.Hex())
	}
	ct.metrics.RecordConfirmed(confirmation.Success)

	return confirmation, nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (ct *confirmationTracker) IsInterfaceNil() bool {
	return ct == nil
}
