package validator

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownField signals that a transaction request contains a field outside the supported set
	ErrUnknownField = errors.New("invalid transaction key")
	// ErrSenderMismatch signals that the from field of a transaction request is not the signer address
	ErrSenderMismatch = errors.New("from address mismatch")
)

// UnknownFieldError carries the name of the unsupported field
type UnknownFieldError struct {
	Field string
}

// Error returns the error message, naming the offending field
func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnknownField.Error(), e.Field)
}

// Is makes errors.Is(err, ErrUnknownField) hold
func (e *UnknownFieldError) Is(target error) bool {
	return target == ErrUnknownField
}

// SenderMismatchError carries the asserted sender and the signer address
type SenderMismatchError struct {
	Asserted string
	Signer   string
}

// Error returns the error message
func (e *SenderMismatchError) Error() string {
	return fmt.Sprintf("%s: transaction.from %s, signer %s", ErrSenderMismatch.Error(), e.Asserted, e.Signer)
}

// Is makes errors.Is(err, ErrSenderMismatch) hold
func (e *SenderMismatchError) Is(target error) bool {
	return target == ErrSenderMismatch
}
