package wallet

import (
	"crypto/ecdsa"
	"encoding/hex"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("evm-wallet-checker/tools/wallet")

type wallet struct {
	privateKey *ecdsa.PrivateKey
	publicKey  []byte
	address    common.Address
}

// NewWalletFromHex creates a wallet from a hex encoded private key. The 0x prefix is optional
func NewWalletFromHex(hexKey string) (*wallet, error) {
	hexKey = trimHexPrefix(strings.TrimSpace(hexKey))
	if len(hexKey) == 0 {
		return nil, ErrEmptyPrivateKey
	}

	privateKey, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		return nil, fmt.Errorf("%w while decoding the private key", err)
	}

	w := &wallet{
		privateKey: privateKey,
		publicKey:  crypto.FromECDSAPub(&privateKey.PublicKey),
		address:    crypto.PubkeyToAddress(privateKey.PublicKey),
	}
	log.Debug("loaded wallet", "address", w.address.Hex())

	return w, nil
}

// NewWalletFromEnv creates a wallet from the hex encoded private key held by the provided environment variable
func NewWalletFromEnv(envVariable string) (*wallet, error) {
	value, found := os.LookupEnv(envVariable)
	if !found || len(strings.TrimSpace(value)) == 0 {
		return nil, fmt.Errorf("%w, environment variable %s", ErrEmptyPrivateKey, envVariable)
	}

	return NewWalletFromHex(value)
}

// PrivateKey returns the 32 bytes private key
func (w *wallet) PrivateKey() []byte {
	return crypto.FromECDSA(w.privateKey)
}

// PublicKey returns the 65 bytes uncompressed public key
func (w *wallet) PublicKey() []byte {
	return append([]byte{}, w.publicKey...)
}

// Address returns the address derived from the public key
func (w *wallet) Address() common.Address {
	return w.address
}

// Sign signs a 32 bytes hash, returning the 65 bytes [R || S || V] signature
func (w *wallet) Sign(hash []byte) ([]byte, error) {
	if len(hash) != common.HashLength {
		return nil, fmt.Errorf("%w, expected %d, got %d", ErrInvalidHashLength, common.HashLength, len(hash))
	}

	return crypto.Sign(hash, w.privateKey)
}

// SignHex decodes the hex hash and signs it
func (w *wallet) SignHex(hash string) ([]byte, error) {
	hashBytes, err := hex.DecodeString(trimHexPrefix(hash))
	if err != nil {
		return nil, err
	}

	return w.Sign(hashBytes)
}

// SignTransaction signs the transaction for the provided chain
func (w *wallet) SignTransaction(tx *types.Transaction, chainID *big.Int) (*types.Transaction, error) {
	if tx == nil {
		return nil, ErrNilTransaction
	}
	if chainID == nil {
		return nil, ErrNilChainID
	}

	signer := types.LatestSignerForChainID(chainID)

	return types.SignTx(tx, signer, w.privateKey)
}

// IsInterfaceNil returns true if there is no value under the interface
func (w *wallet) IsInterfaceNil() bool {
	return w == nil
}

func trimHexPrefix(value string) string {
	if strings.HasPrefix(value, "0x") || strings.HasPrefix(value, "0X") {
		return value[2:]
	}

	return value
}
