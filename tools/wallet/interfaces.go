package wallet

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Wallet defines the signer identity: a private key, the derived public key and address
type Wallet interface {
	PrivateKey() []byte
	PublicKey() []byte
	Address() common.Address
	Sign(hash []byte) ([]byte, error)
	SignHex(hash string) ([]byte, error)
	SignTransaction(tx *types.Transaction, chainID *big.Int) (*types.Transaction, error)
	IsInterfaceNil() bool
}
