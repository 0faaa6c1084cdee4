package storage

import "errors"

var (
	// ErrRecordNotFound signals that the journal holds no record for the requested hash
	ErrRecordNotFound = errors.New("transaction record not found")

	errNilRecord = errors.New("nil transaction record")
	errEmptyHash = errors.New("empty transaction hash")
	errEmptyPath = errors.New("empty journal path")
)
