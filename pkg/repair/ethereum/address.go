package ethereum

import (
	"crypto/ecdsa"

	"github.com/ethereum/go-ethereum/crypto"
)

// AddressFromKey returns the 0x-prefixed address for a secp256k1
// private key. The result uses EIP-55 casing, which CheckAddress
// accepts like any other case pattern.
func AddressFromKey(privKey *ecdsa.PrivateKey) string {
	return crypto.PubkeyToAddress(privKey.PublicKey).Hex()
}

// NewAddress generates a fresh random Ethereum address, discarding the
// private key. Used for producing known-good sample addresses.
func NewAddress() (string, error) {
	privKey, err := crypto.GenerateKey()
	if err != nil {
		return "", err
	}
	return AddressFromKey(privKey), nil
}
