package tron

import (
	"crypto/rand"

	"github.com/btcsuite/btcd/btcec/v2"
)

// GenerateKeyPair generates a new random secp256k1 key pair.
func GenerateKeyPair() (*btcec.PrivateKey, *btcec.PublicKey, error) {
	var privKeyBytes [32]byte
	if _, err := rand.Read(privKeyBytes[:]); err != nil {
		return nil, nil, err
	}

	privKey, pubKey := btcec.PrivKeyFromBytes(privKeyBytes[:])
	return privKey, pubKey, nil
}

// NewAddress generates a fresh random Tron address. The private key is
// discarded; this exists for producing known-good sample addresses.
func NewAddress() (string, error) {
	_, pubKey, err := GenerateKeyPair()
	if err != nil {
		return "", err
	}
	return DeriveAddress(pubKey.SerializeUncompressed()), nil
}
