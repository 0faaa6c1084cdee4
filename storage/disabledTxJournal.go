package storage

type disabledTxJournal struct {
}

// NewDisabledTxJournal creates a journal that stores nothing
func NewDisabledTxJournal() *disabledTxJournal {
	return &disabledTxJournal{}
}

// Put does nothing
func (journal *disabledTxJournal) Put(_ *TxRecord) error {
	return nil
}

// Get always returns ErrRecordNotFound
func (journal *disabledTxJournal) Get(_ string) (*TxRecord, error) {
	return nil, ErrRecordNotFound
}

// Pending returns an empty slice
func (journal *disabledTxJournal) Pending() ([]*TxRecord, error) {
	return make([]*TxRecord, 0), nil
}

// MarkConfirmed does nothing
func (journal *disabledTxJournal) MarkConfirmed(_ string, _ uint64, _ bool) error {
	return nil
}

// Close does nothing
func (journal *disabledTxJournal) Close() error {
	return nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (journal *disabledTxJournal) IsInterfaceNil() bool {
	return journal == nil
}
