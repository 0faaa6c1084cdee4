package storage

import (
	"path/filepath"
	"testing"

	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestJournal(t *testing.T) *txJournal {
	journal, err := NewTxJournal(filepath.Join(t.TempDir(), "journal.db"))
	require.Nil(t, err)
	t.Cleanup(func() {
		_ = journal.Close()
	})

	return journal
}

func createRecord(hash string, nonce uint64) *TxRecord {
	return &TxRecord{
		Hash:        hash,
		From:        "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266",
		To:          "0x3f4f037dfc910a3517b9a5b23cf036ffae01a5a7",
		Value:       "1000",
		Nonce:       nonce,
		GasLimit:    21000,
		GasPrice:    "1000000000",
		Status:      StatusPending,
		SubmittedAt: 1700000000,
	}
}

func TestNewTxJournal(t *testing.T) {
	t.Parallel()

	t.Run("empty path should error", func(t *testing.T) {
		t.Parallel()

		journal, err := NewTxJournal("")
		assert.True(t, check.IfNil(journal))
		assert.Equal(t, errEmptyPath, err)
	})
	t.Run("should work", func(t *testing.T) {
		t.Parallel()

		journal := createTestJournal(t)
		assert.False(t, check.IfNil(journal))
	})
	t.Run("missing directories are created", func(t *testing.T) {
		t.Parallel()

		journal, err := NewTxJournal(filepath.Join(t.TempDir(), "db", "nested", "journal.db"))
		require.Nil(t, err)
		assert.False(t, check.IfNil(journal))
		assert.Nil(t, journal.Close())
	})
}

func TestTxJournal_PutGet(t *testing.T) {
	t.Parallel()

	t.Run("nil record should error", func(t *testing.T) {
		t.Parallel()

		journal := createTestJournal(t)
		assert.Equal(t, errNilRecord, journal.Put(nil))
	})
	t.Run("empty hash should error", func(t *testing.T) {
		t.Parallel()

		journal := createTestJournal(t)
		assert.Equal(t, errEmptyHash, journal.Put(&TxRecord{}))
	})
	t.Run("missing record should error", func(t *testing.T) {
		t.Parallel()

		journal := createTestJournal(t)
		record, err := journal.Get("0x01")
		assert.Nil(t, record)
		assert.Equal(t, ErrRecordNotFound, err)
	})
	t.Run("should store and load", func(t *testing.T) {
		t.Parallel()

		journal := createTestJournal(t)
		record := createRecord("0x01", 3)
		require.Nil(t, journal.Put(record))

		loaded, err := journal.Get("0x01")
		require.Nil(t, err)
		assert.Equal(t, record, loaded)
	})
}

func TestTxJournal_PendingAndMarkConfirmed(t *testing.T) {
	t.Parallel()

	journal := createTestJournal(t)
	require.Nil(t, journal.Put(createRecord("0x03", 3)))
	require.Nil(t, journal.Put(createRecord("0x01", 1)))
	require.Nil(t, journal.Put(createRecord("0x02", 2)))

	pending, err := journal.Pending()
	require.Nil(t, err)
	require.Equal(t, 3, len(pending))
	assert.Equal(t, "0x01", pending[0].Hash)
	assert.Equal(t, "0x02", pending[1].Hash)
	assert.Equal(t, "0x03", pending[2].Hash)

	require.Nil(t, journal.MarkConfirmed("0x01", 100, true))
	require.Nil(t, journal.MarkConfirmed("0x03", 101, false))
	assert.Equal(t, ErrRecordNotFound, journal.MarkConfirmed("0x04", 1, true))

	pending, err = journal.Pending()
	require.Nil(t, err)
	require.Equal(t, 1, len(pending))
	assert.Equal(t, "0x02", pending[0].Hash)

	confirmed, err := journal.Get("0x01")
	require.Nil(t, err)
	assert.Equal(t, StatusConfirmed, confirmed.Status)
	assert.Equal(t, uint64(100), confirmed.BlockNumber)
	assert.True(t, confirmed.ConfirmedAt > 0)

	failed, err := journal.Get("0x03")
	require.Nil(t, err)
	assert.Equal(t, StatusFailed, failed.Status)
}

func TestTxJournal_SurvivesReopen(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "journal.db")
	journal, err := NewTxJournal(path)
	require.Nil(t, err)
	require.Nil(t, journal.Put(createRecord("0x01", 1)))
	require.Nil(t, journal.Close())

	journal, err = NewTxJournal(path)
	require.Nil(t, err)
	defer func() {
		_ = journal.Close()
	}()

	record, err := journal.Get("0x01")
	require.Nil(t, err)
	assert.Equal(t, uint64(1), record.Nonce)
}

func TestCreateTxJournal(t *testing.T) {
	t.Parallel()

	t.Run("empty path creates a disabled journal", func(t *testing.T) {
		t.Parallel()

		journal, err := CreateTxJournal("")
		require.Nil(t, err)
		_, isDisabled := journal.(*disabledTxJournal)
		assert.True(t, isDisabled)

		assert.Nil(t, journal.Put(createRecord("0x01", 1)))
		record, err := journal.Get("0x01")
		assert.Nil(t, record)
		assert.Equal(t, ErrRecordNotFound, err)
		pending, err := journal.Pending()
		assert.Nil(t, err)
		assert.Empty(t, pending)
		assert.Nil(t, journal.MarkConfirmed("0x01", 1, true))
		assert.Nil(t, journal.Close())
	})
	t.Run("path creates a bolt journal", func(t *testing.T) {
		t.Parallel()

		journal, err := CreateTxJournal(filepath.Join(t.TempDir(), "journal.db"))
		require.Nil(t, err)
		_, isBolt := journal.(*txJournal)
		assert.True(t, isBolt)
		assert.Nil(t, journal.Close())
	})
}
