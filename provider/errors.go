package provider

import "errors"

var (
	// ErrInsufficientFunds signals that the sender balance cannot cover value + gasLimit * gasPrice
	ErrInsufficientFunds = errors.New("insufficient funds for transfer")
	// ErrTransactionNotFound signals that the network does not know the requested transaction
	ErrTransactionNotFound = errors.New("transaction not found")
	// ErrNonceTooLow signals that the network rejected a transaction because its nonce was already used
	ErrNonceTooLow = errors.New("nonce too low")
	// ErrInvalidTransactionHash signals that an invalid transaction hash was provided
	ErrInvalidTransactionHash = errors.New("invalid transaction hash")
	// ErrNilTransaction signals that a nil transaction was provided
	ErrNilTransaction = errors.New("nil transaction")

	errNilRPCClient                   = errors.New("nil rpc client")
	errInvalidCacheExpirationInterval = errors.New("invalid cache expiration interval")
	errInvalidRetryInterval           = errors.New("invalid retry interval")
	errEmptyNetworkAddress            = errors.New("empty network address")
)
