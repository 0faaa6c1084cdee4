package wallet

import (
	"bytes"
	"crypto/ecdsa"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/multiversx/mx-chain-crypto-go/signing"
	"github.com/multiversx/mx-chain-crypto-go/signing/secp256k1"
)

const (
	privateKeyLength            = 32
	compressedPublicKeyLength   = 33
	uncompressedPublicKeyLength = 65
)

var signingKeyGenerator = signing.NewKeyGenerator(secp256k1.NewSecp256k1())

// KeyReport holds every derivation computed out of a single private key
type KeyReport struct {
	PublicKey             []byte
	CompressedPublicKey   []byte
	SigningKeyPublicKey   []byte
	Address               common.Address
	AddressFromPrivateKey common.Address
}

// ComputePublicKey derives the public key of the provided private key, in compressed (33 bytes) or
// uncompressed (65 bytes) form
func ComputePublicKey(privateKey []byte, compressed bool) ([]byte, error) {
	key, err := crypto.ToECDSA(privateKey)
	if err != nil {
		return nil, err
	}

	if compressed {
		return crypto.CompressPubkey(&key.PublicKey), nil
	}

	return crypto.FromECDSAPub(&key.PublicKey), nil
}

// ComputeAddress computes the address out of a 32 bytes private key, a 33 bytes compressed public key or
// a 65 bytes uncompressed public key
func ComputeAddress(key []byte) (common.Address, error) {
	if len(key) == privateKeyLength {
		privateKey, err := crypto.ToECDSA(key)
		if err != nil {
			return common.Address{}, err
		}

		return crypto.PubkeyToAddress(privateKey.PublicKey), nil
	}

	publicKey, err := parsePublicKey(key)
	if err != nil {
		return common.Address{}, err
	}

	return crypto.PubkeyToAddress(*publicKey), nil
}

// SigningKeyPublicKey derives the uncompressed public key through the secp256k1 key generator, independently
// of ComputePublicKey
func SigningKeyPublicKey(privateKey []byte) ([]byte, error) {
	sk, err := signingKeyGenerator.PrivateKeyFromByteArray(privateKey)
	if err != nil {
		return nil, err
	}

	pkBytes, err := sk.GeneratePublic().ToByteArray()
	if err != nil {
		return nil, err
	}

	publicKey, err := parsePublicKey(pkBytes)
	if err != nil {
		return nil, err
	}

	return crypto.FromECDSAPub(publicKey), nil
}

// DeriveKeyReport computes all public key and address derivations of the private key
func DeriveKeyReport(privateKey []byte) (*KeyReport, error) {
	publicKey, err := ComputePublicKey(privateKey, false)
	if err != nil {
		return nil, err
	}
	compressed, err := ComputePublicKey(privateKey, true)
	if err != nil {
		return nil, err
	}
	signingKeyPublicKey, err := SigningKeyPublicKey(privateKey)
	if err != nil {
		return nil, err
	}
	address, err := ComputeAddress(publicKey)
	if err != nil {
		return nil, err
	}
	addressFromPrivateKey, err := ComputeAddress(privateKey)
	if err != nil {
		return nil, err
	}

	return &KeyReport{
		PublicKey:             publicKey,
		CompressedPublicKey:   compressed,
		SigningKeyPublicKey:   signingKeyPublicKey,
		Address:               address,
		AddressFromPrivateKey: addressFromPrivateKey,
	}, nil
}

// VerifyKeyConsistency checks that all derivations of the private key agree
func VerifyKeyConsistency(privateKey []byte) (*KeyReport, error) {
	report, err := DeriveKeyReport(privateKey)
	if err != nil {
		return nil, err
	}

	if !bytes.Equal(report.PublicKey, report.SigningKeyPublicKey) {
		return report, fmt.Errorf("%w: %x vs %x", ErrPublicKeyMismatch, report.PublicKey, report.SigningKeyPublicKey)
	}
	if report.Address != report.AddressFromPrivateKey {
		return report, fmt.Errorf("%w: %s vs %s", ErrAddressMismatch, report.Address.Hex(), report.AddressFromPrivateKey.Hex())
	}

	return report, nil
}

func parsePublicKey(key []byte) (*ecdsa.PublicKey, error) {
	switch len(key) {
	case compressedPublicKeyLength:
		return crypto.DecompressPubkey(key)
	case uncompressedPublicKeyLength:
		return crypto.UnmarshalPubkey(key)
	}

	return nil, fmt.Errorf("%w: %d", ErrInvalidKeyLength, len(key))
}
