package confirmation

import (
	"context"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/klever-io/evm-wallet-checker/provider"
	"github.com/klever-io/evm-wallet-checker/storage"
)

// Proxy holds the network calls needed to confirm a transaction
type Proxy interface {
	GetTransaction(ctx context.Context, hash string) (*provider.TransactionInfo, error)
	GetReceipt(ctx context.Context, hash string) (*types.Receipt, error)
	IsInterfaceNil() bool
}

// TxJournal is the store of the transactions waiting for a receipt
type TxJournal interface {
	Pending() ([]*storage.TxRecord, error)
	MarkConfirmed(hash string, blockNumber uint64, success bool) error
	IsInterfaceNil() bool
}

// Notifee defines the behavior of a component able to be notified when a transaction is mined
type Notifee interface {
	TransactionConfirmed(ctx context.Context, confirmation *Confirmation) error
	IsInterfaceNil() bool
}
