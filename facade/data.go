package facade

import "github.com/klever-io/evm-wallet-checker/storage"

// WalletInfo describes the signing wallet
type WalletInfo struct {
	Address string `json:"address"`
	Balance string `json:"balance"`
	ChainID string `json:"chainId"`
}

// SignedTransaction is the API view of a signed, not yet submitted, transfer
type SignedTransaction struct {
	Hash   string `json:"hash"`
	RawHex string `json:"raw"`
	Nonce  uint64 `json:"nonce"`
}

// TransactionStatus is the API view of a network transaction
type TransactionStatus struct {
	Hash     string            `json:"hash"`
	From     string            `json:"from"`
	To       string            `json:"to"`
	Value    string            `json:"value"`
	Nonce    uint64            `json:"nonce"`
	Pending  bool              `json:"pending"`
	IsSigner bool              `json:"isSigner"`
	Record   *storage.TxRecord `json:"record,omitempty"`
}

// GasPrice is the API view of the gas price used for new transactions
type GasPrice struct {
	Wei  string  `json:"wei"`
	Gwei float64 `json:"gwei"`
}
