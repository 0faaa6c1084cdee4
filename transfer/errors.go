package transfer

import "errors"

var (
	// ErrInvalidTransactionField signals that a request field could not be converted to its transaction type
	ErrInvalidTransactionField = errors.New("invalid transaction field")
	// ErrSenderNotSigner signals that a network transaction was not sent by the wallet address
	ErrSenderNotSigner = errors.New("transaction sender is not the signer")

	errNilProxy          = errors.New("nil proxy")
	errNilTxNonceHandler = errors.New("nil tx nonce handler")
	errNilWallet         = errors.New("nil wallet")
	errNilValidator      = errors.New("nil transaction validator")
	errNilJournal        = errors.New("nil transaction journal")
	errNilMetrics        = errors.New("nil metrics handler")
	errNegativeAmount    = errors.New("negative amount")
	errAmountTooLarge    = errors.New("amount does not fit in 256 bits")
	errNonIntegerAmount  = errors.New("non integer amount")
	errUnsupportedType   = errors.New("unsupported value type")
)
