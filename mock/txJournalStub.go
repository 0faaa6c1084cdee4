package mock

import "github.com/klever-io/evm-wallet-checker/storage"

// TxJournalStub -
type TxJournalStub struct {
	PutCalled           func(record *storage.TxRecord) error
	GetCalled           func(hash string) (*storage.TxRecord, error)
	PendingCalled       func() ([]*storage.TxRecord, error)
	MarkConfirmedCalled func(hash string, blockNumber uint64, success bool) error
	CloseCalled         func() error
}

// Put -
func (stub *TxJournalStub) Put(record *storage.TxRecord) error {
	if stub.PutCalled != nil {
		return stub.PutCalled(record)
	}

	return nil
}

// Get -
func (stub *TxJournalStub) Get(hash string) (*storage.TxRecord, error) {
	if stub.GetCalled != nil {
		return stub.GetCalled(hash)
	}

	return nil, storage.ErrRecordNotFound
}

// Pending -
func (stub *TxJournalStub) Pending() ([]*storage.TxRecord, error) {
	if stub.PendingCalled != nil {
		return stub.PendingCalled()
	}

	return make([]*storage.TxRecord, 0), nil
}

// MarkConfirmed -
func (stub *TxJournalStub) MarkConfirmed(hash string, blockNumber uint64, success bool) error {
	if stub.MarkConfirmedCalled != nil {
		return stub.MarkConfirmedCalled(hash, blockNumber, success)
	}

	return nil
}

// Close -
func (stub *TxJournalStub) Close() error {
	if stub.CloseCalled != nil {
		return stub.CloseCalled()
	}

	return nil
}

// IsInterfaceNil -
func (stub *TxJournalStub) IsInterfaceNil() bool {
	return stub == nil
}
