package tron

import (
	"github.com/btcsuite/btcd/btcutil/base58"
	"golang.org/x/crypto/sha3"
)

// DeriveAddress derives a Tron mainnet address from an uncompressed
// secp256k1 public key (65 bytes, 0x04 prefix).
// Tron address = Base58Check(0x41 + last 20 bytes of Keccak256(pubKey[1:])).
func DeriveAddress(pubKeyBytes []byte) string {
	// Keccak256 over the key material without the 0x04 prefix,
	// same derivation as Ethereum.
	hasher := sha3.NewLegacyKeccak256()
	hasher.Write(pubKeyBytes[1:])
	hash := hasher.Sum(nil)

	// Last 20 bytes of the hash form the account body; CheckEncode
	// prepends the 0x41 version byte and appends the double-SHA256
	// checksum.
	return base58.CheckEncode(hash[len(hash)-20:], VersionByte)
}
