package storage

// TxJournal defines the operations of the submitted transactions journal
type TxJournal interface {
	Put(record *TxRecord) error
	Get(hash string) (*TxRecord, error)
	Pending() ([]*TxRecord, error)
	MarkConfirmed(hash string, blockNumber uint64, success bool) error
	Close() error
	IsInterfaceNil() bool
}

// CreateTxJournal returns a bolt backed journal, or a disabled one when no path is configured
func CreateTxJournal(path string) (TxJournal, error) {
	if len(path) == 0 {
		log.Debug("transaction journal disabled")
		return NewDisabledTxJournal(), nil
	}

	return NewTxJournal(path)
}
