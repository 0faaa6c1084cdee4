package wallet

import (
	"encoding/hex"
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const walletSk = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

var expectedAddress = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")

func TestNewWalletFromHex(t *testing.T) {
	t.Parallel()

	t.Run("empty key should error", func(t *testing.T) {
		t.Parallel()

		w, err := NewWalletFromHex("  ")
		assert.True(t, check.IfNil(w))
		assert.Equal(t, ErrEmptyPrivateKey, err)
	})
	t.Run("invalid hex should error", func(t *testing.T) {
		t.Parallel()

		w, err := NewWalletFromHex("not a key")
		assert.True(t, check.IfNil(w))
		assert.NotNil(t, err)
	})
	t.Run("short key should error", func(t *testing.T) {
		t.Parallel()

		w, err := NewWalletFromHex("0x0102")
		assert.True(t, check.IfNil(w))
		assert.NotNil(t, err)
	})
	t.Run("should work without prefix", func(t *testing.T) {
		t.Parallel()

		w, err := NewWalletFromHex(walletSk)
		require.Nil(t, err)
		assert.False(t, check.IfNil(w))
		assert.Equal(t, expectedAddress, w.Address())
	})
	t.Run("should work with prefix", func(t *testing.T) {
		t.Parallel()

		w, err := NewWalletFromHex("0x" + walletSk)
		require.Nil(t, err)
		assert.Equal(t, expectedAddress, w.Address())

		sk, _ := hex.DecodeString(walletSk)
		assert.Equal(t, sk, w.PrivateKey())
		assert.Len(t, w.PublicKey(), uncompressedPublicKeyLength)
	})
}

func TestNewWalletFromEnv(t *testing.T) {
	t.Run("missing variable should error", func(t *testing.T) {
		w, err := NewWalletFromEnv("WALLET_TEST_MISSING_KEY")
		assert.True(t, check.IfNil(w))
		assert.True(t, errors.Is(err, ErrEmptyPrivateKey))
	})
	t.Run("should work", func(t *testing.T) {
		t.Setenv("WALLET_TEST_PRIVATE_KEY", "0x"+walletSk+"\n")

		w, err := NewWalletFromEnv("WALLET_TEST_PRIVATE_KEY")
		require.Nil(t, err)
		assert.Equal(t, expectedAddress, w.Address())
	})
}

func TestWallet_Sign(t *testing.T) {
	t.Parallel()

	w, _ := NewWalletFromHex(walletSk)

	t.Run("invalid hash length should error", func(t *testing.T) {
		t.Parallel()

		sig, err := w.Sign([]byte("not a hash"))
		assert.Nil(t, sig)
		assert.True(t, errors.Is(err, ErrInvalidHashLength))
	})
	t.Run("invalid hex should error", func(t *testing.T) {
		t.Parallel()

		sig, err := w.SignHex("zz")
		assert.Nil(t, sig)
		assert.NotNil(t, err)
	})
	t.Run("signature recovers the wallet public key", func(t *testing.T) {
		t.Parallel()

		hash := crypto.Keccak256([]byte("Hello World"))
		sig, err := w.Sign(hash)
		require.Nil(t, err)
		require.Len(t, sig, 65)

		recovered, err := crypto.Ecrecover(hash, sig)
		require.Nil(t, err)
		assert.Equal(t, w.PublicKey(), recovered)

		sigFromHex, err := w.SignHex("0x" + hex.EncodeToString(hash))
		require.Nil(t, err)
		assert.Equal(t, sig, sigFromHex)
	})
}

func TestWallet_SignTransaction(t *testing.T) {
	t.Parallel()

	w, _ := NewWalletFromHex(walletSk)
	to := common.HexToAddress("0xddB51f100672Cb252C67D516eb79931bf27cE3E6")
	tx := types.NewTx(&types.LegacyTx{
		Nonce:    3,
		To:       &to,
		Value:    big.NewInt(1000000000000000),
		Gas:      25000,
		GasPrice: big.NewInt(1500000000),
		Data:     []byte("Hello World"),
	})

	t.Run("nil transaction should error", func(t *testing.T) {
		t.Parallel()

		signed, err := w.SignTransaction(nil, big.NewInt(5))
		assert.Nil(t, signed)
		assert.Equal(t, ErrNilTransaction, err)
	})
	t.Run("nil chain ID should error", func(t *testing.T) {
		t.Parallel()

		signed, err := w.SignTransaction(tx, nil)
		assert.Nil(t, signed)
		assert.Equal(t, ErrNilChainID, err)
	})
	t.Run("sender of the signed transaction is the wallet", func(t *testing.T) {
		t.Parallel()

		chainID := big.NewInt(5)
		signed, err := w.SignTransaction(tx, chainID)
		require.Nil(t, err)

		sender, err := types.Sender(types.LatestSignerForChainID(chainID), signed)
		require.Nil(t, err)
		assert.Equal(t, w.Address(), sender)
		assert.Equal(t, chainID, signed.ChainId())
	})
}

func TestKeys_Derivations(t *testing.T) {
	t.Parallel()

	sk, _ := hex.DecodeString(walletSk)

	t.Run("compute public key is deterministic", func(t *testing.T) {
		t.Parallel()

		first, err := ComputePublicKey(sk, false)
		require.Nil(t, err)
		second, err := ComputePublicKey(sk, false)
		require.Nil(t, err)
		assert.Equal(t, first, second)
		assert.Equal(t, byte(4), first[0])

		compressed, err := ComputePublicKey(sk, true)
		require.Nil(t, err)
		assert.Len(t, compressed, compressedPublicKeyLength)
		assert.Equal(t, first[1:33], compressed[1:])
	})
	t.Run("signing key public key equals computed public key", func(t *testing.T) {
		t.Parallel()

		computed, _ := ComputePublicKey(sk, false)
		fromSigningKey, err := SigningKeyPublicKey(sk)
		require.Nil(t, err)
		assert.Equal(t, computed, fromSigningKey)
	})
	t.Run("address from public key equals address from private key", func(t *testing.T) {
		t.Parallel()

		publicKey, _ := ComputePublicKey(sk, false)
		compressed, _ := ComputePublicKey(sk, true)

		fromPublicKey, err := ComputeAddress(publicKey)
		require.Nil(t, err)
		fromCompressed, err := ComputeAddress(compressed)
		require.Nil(t, err)
		fromPrivateKey, err := ComputeAddress(sk)
		require.Nil(t, err)

		assert.Equal(t, expectedAddress, fromPublicKey)
		assert.Equal(t, expectedAddress, fromCompressed)
		assert.Equal(t, expectedAddress, fromPrivateKey)
	})
	t.Run("invalid key length should error", func(t *testing.T) {
		t.Parallel()

		_, err := ComputeAddress([]byte{1, 2, 3})
		assert.True(t, errors.Is(err, ErrInvalidKeyLength))
	})
	t.Run("verify key consistency should work", func(t *testing.T) {
		t.Parallel()

		report, err := VerifyKeyConsistency(sk)
		require.Nil(t, err)
		assert.Equal(t, expectedAddress, report.Address)
		assert.Equal(t, report.Address, report.AddressFromPrivateKey)
		assert.True(t, strings.EqualFold(expectedAddress.Hex(), report.AddressFromPrivateKey.Hex()))
	})
	t.Run("verify key consistency on an invalid key should error", func(t *testing.T) {
		t.Parallel()

		report, err := VerifyKeyConsistency(make([]byte, 32))
		assert.Nil(t, report)
		assert.NotNil(t, err)
	})
}
