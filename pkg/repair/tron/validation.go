package tron

import (
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/mr-tron/base58"
)

// Address format constants for Tron mainnet. These are part of the
// Base58Check contract and must not change.
const (
	// AddressLength is the length of a Base58Check-encoded Tron address.
	AddressLength = 34

	// VersionByte is the leading payload byte for Tron mainnet (0x41).
	// It is the reason every mainnet address starts with 'T'.
	VersionByte = 0x41

	// ChecksumLength is the number of trailing checksum bytes.
	ChecksumLength = 4
)

// Alphabet is the Base58 symbol set (excludes 0, O, I, l).
const Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// Validation errors, ordered by the pipeline stage that produces them.
var (
	ErrBadLength   = errors.New("tron: address must be 34 characters")
	ErrBadPrefix   = errors.New("tron: address must start with 'T'")
	ErrBadSymbol   = errors.New("tron: address contains non-Base58 characters")
	ErrDecode      = errors.New("tron: Base58 decoding failed")
	ErrBadVersion  = errors.New("tron: version byte is not 0x41")
	ErrBadChecksum = errors.New("tron: checksum mismatch")
)

// alphabetMember is a process-wide membership table for the Base58
// alphabet, built once at init. Read-only after that.
var alphabetMember [128]bool

func init() {
	for _, c := range Alphabet {
		alphabetMember[c] = true
	}
}

// IsAlphabetChar reports whether c is a valid Base58 symbol.
func IsAlphabetChar(c rune) bool {
	return c >= 0 && c < 128 && alphabetMember[c]
}

// BadSymbolPositions returns the indices of characters outside the
// Base58 alphabet. An empty result means the string is clean.
func BadSymbolPositions(s string) []int {
	var bad []int
	for i := 0; i < len(s); i++ {
		if !IsAlphabetChar(rune(s[i])) {
			bad = append(bad, i)
		}
	}
	return bad
}

// CaseTwin returns the same letter in the opposite case, if that twin
// is itself a Base58 symbol. Base58 is case-sensitive, so a flipped
// twin is a plausible one-keystroke typo ('a' vs 'A'), while characters
// like 'L' have no twin because 'l' is excluded from the alphabet.
func CaseTwin(c byte) (byte, bool) {
	var twin byte
	switch {
	case c >= 'a' && c <= 'z':
		twin = c - 'a' + 'A'
	case c >= 'A' && c <= 'Z':
		twin = c - 'A' + 'a'
	default:
		return 0, false
	}
	if !alphabetMember[twin] {
		return 0, false
	}
	return twin, true
}

// CheckAddress validates a Tron mainnet address, short-circuiting on the
// first failing stage: shape, Base58 decode, decoded length, version
// byte, then the double-SHA256 checksum.
func CheckAddress(address string) error {
	if err := checkStructure(address); err != nil {
		return err
	}
	decoded, err := decodeChecked(address)
	if err != nil {
		return err
	}
	payload := decoded[:len(decoded)-ChecksumLength]
	if !checksumMatches(payload, decoded[len(decoded)-ChecksumLength:]) {
		return ErrBadChecksum
	}
	return nil
}

// CheckShape validates everything except the checksum: shape, decode,
// decoded length, and version byte. A nil result here is a
// reduced-confidence verdict; callers that can afford the hashing
// should use CheckAddress instead.
func CheckShape(address string) error {
	if err := checkStructure(address); err != nil {
		return err
	}
	_, err := decodeChecked(address)
	return err
}

// checkStructure applies the textual rules: exact length, leading 'T',
// and Base58 body.
func checkStructure(address string) error {
	if len(address) != AddressLength {
		return ErrBadLength
	}
	if address[0] != 'T' {
		return ErrBadPrefix
	}
	for i := 1; i < len(address); i++ {
		if !IsAlphabetChar(rune(address[i])) {
			return ErrBadSymbol
		}
	}
	return nil
}

// decodeChecked Base58-decodes the address and verifies the decoded
// shape: at least 21 payload bytes plus the 4 checksum bytes (leading
// '1' characters decode to leading zero bytes, so the decoded form can
// be longer than 25), with the version byte first.
func decodeChecked(address string) ([]byte, error) {
	decoded, err := base58.Decode(address)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if len(decoded) < 21+ChecksumLength {
		return nil, fmt.Errorf("%w: decoded to %d bytes", ErrDecode, len(decoded))
	}
	if decoded[0] != VersionByte {
		return nil, ErrBadVersion
	}
	return decoded, nil
}

// checksumMatches verifies the Base58Check checksum:
// SHA256(SHA256(payload))[:4] must equal the trailing bytes.
func checksumMatches(payload, checksum []byte) bool {
	first := sha256.Sum256(payload)
	second := sha256.Sum256(first[:])
	for i := 0; i < ChecksumLength; i++ {
		if checksum[i] != second[i] {
			return false
		}
	}
	return true
}
