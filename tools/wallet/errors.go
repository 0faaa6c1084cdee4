package wallet

import "errors"

var (
	// ErrEmptyPrivateKey signals that an empty private key was provided
	ErrEmptyPrivateKey = errors.New("empty private key")
	// ErrInvalidKeyLength signals that a key of unexpected length was provided
	ErrInvalidKeyLength = errors.New("invalid key length")
	// ErrInvalidHashLength signals that the data to be signed is not a 32 bytes hash
	ErrInvalidHashLength = errors.New("invalid hash length")
	// ErrNilTransaction signals that a nil transaction was provided
	ErrNilTransaction = errors.New("nil transaction")
	// ErrNilChainID signals that a nil chain ID was provided
	ErrNilChainID = errors.New("nil chain ID")
	// ErrPublicKeyMismatch signals that two public key derivations of the same private key differ
	ErrPublicKeyMismatch = errors.New("public key mismatch")
	// ErrAddressMismatch signals that the address computed from the public key differs from the one computed from the private key
	ErrAddressMismatch = errors.New("address mismatch")
)
