package storage

// Transaction record statuses
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusFailed    = "failed"
)

// TxRecord is the journal entry of a submitted transfer. Amounts are decimal wei strings
type TxRecord struct {
	Hash        string `json:"hash"`
	From        string `json:"from"`
	To          string `json:"to"`
	Value       string `json:"value"`
	Nonce       uint64 `json:"nonce"`
	GasLimit    uint64 `json:"gasLimit"`
	GasPrice    string `json:"gasPrice"`
	Status      string `json:"status"`
	BlockNumber uint64 `json:"blockNumber,omitempty"`
	SubmittedAt int64  `json:"submittedAt"`
	ConfirmedAt int64  `json:"confirmedAt,omitempty"`
}

// IsPending returns true while the transaction has no receipt
func (r *TxRecord) IsPending() bool {
	return r.Status == StatusPending
}
