package storage

import (
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/multiversx/mx-chain-core-go/marshal"
	logger "github.com/multiversx/mx-chain-logger-go"
	bolt "go.etcd.io/bbolt"
)

const (
	transactionsBucket = "transactions"
	fileMode           = 0600
	dirMode            = 0700
	openTimeout        = time.Second
)

var log = logger.GetOrCreate("evm-wallet-checker/storage")

type txJournal struct {
	db          *bolt.DB
	marshalizer marshal.Marshalizer
}

// NewTxJournal opens (or creates) the bolt file holding the submitted transactions
func NewTxJournal(path string) (*txJournal, error) {
	if len(path) == 0 {
		return nil, errEmptyPath
	}

	err := os.MkdirAll(filepath.Dir(path), dirMode)
	if err != nil {
		return nil, err
	}

	db, err := bolt.Open(path, fileMode, &bolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, errCreate := tx.CreateBucketIfNotExists([]byte(transactionsBucket))
		return errCreate
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	log.Debug("opened transaction journal", "path", path)

	return &txJournal{
		db:          db,
		marshalizer: &marshal.JsonMarshalizer{},
	}, nil
}

// Put stores or overwrites the record
func (journal *txJournal) Put(record *TxRecord) error {
	if record == nil {
		return errNilRecord
	}
	if len(record.Hash) == 0 {
		return errEmptyHash
	}

	buff, err := journal.marshalizer.Marshal(record)
	if err != nil {
		return err
	}

	return journal.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(transactionsBucket)).Put([]byte(record.Hash), buff)
	})
}

// Get returns the record of the hash
func (journal *txJournal) Get(hash string) (*TxRecord, error) {
	record := &TxRecord{}
	err := journal.db.View(func(tx *bolt.Tx) error {
		buff := tx.Bucket([]byte(transactionsBucket)).Get([]byte(hash))
		if buff == nil {
			return ErrRecordNotFound
		}

		return journal.marshalizer.Unmarshal(record, buff)
	})
	if err != nil {
		return nil, err
	}

	return record, nil
}

// Pending returns the records still waiting for a receipt, ordered by nonce
func (journal *txJournal) Pending() ([]*TxRecord, error) {
	records := make([]*TxRecord, 0)
	err := journal.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(transactionsBucket)).ForEach(func(k, v []byte) error {
			record := &TxRecord{}
			errUnmarshal := journal.marshalizer.Unmarshal(record, v)
			if errUnmarshal != nil {
				log.Warn("skipping corrupted journal record", "key", string(k), "error", errUnmarshal)
				return nil
			}
			if record.IsPending() {
				records = append(records, record)
			}

			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Nonce < records[j].Nonce
	})

	return records, nil
}

// MarkConfirmed sets the final status of the record and the block it was mined in
func (journal *txJournal) MarkConfirmed(hash string, blockNumber uint64, success bool) error {
	return journal.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(transactionsBucket))
		buff := bucket.Get([]byte(hash))
		if buff == nil {
			return ErrRecordNotFound
		}

		record := &TxRecord{}
		err := journal.marshalizer.Unmarshal(record, buff)
		if err != nil {
			return err
		}

		record.Status = StatusConfirmed
		if !success {
			record.Status = StatusFailed
		}
		record.BlockNumber = blockNumber
		record.ConfirmedAt = time.Now().Unix()

		buff, err = journal.marshalizer.Marshal(record)
		if err != nil {
			return err
		}

		return bucket.Put([]byte(hash), buff)
	})
}

// Close closes the bolt file
func (journal *txJournal) Close() error {
	return journal.db.Close()
}

// IsInterfaceNil returns true if there is no value under the interface
func (journal *txJournal) IsInterfaceNil() bool {
	return journal == nil
}
