package ethereum

import (
	"errors"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// AddressLength is the length of a 0x-prefixed Ethereum address.
const AddressLength = 42

// Alphabet is the hex symbol set used when generating repair
// candidates. Validation itself is case-insensitive.
const Alphabet = "0123456789abcdef"

// Validation errors.
var (
	ErrBadLength = errors.New("ethereum: address must be 42 characters")
	ErrBadPrefix = errors.New("ethereum: address must start with '0x'")
	ErrBadSymbol = errors.New("ethereum: address contains non-hex characters")
)

// IsHexChar reports whether c is a hexadecimal digit in either case.
func IsHexChar(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// CheckAddress validates an Ethereum address: exactly "0x" followed by
// 40 hex characters. EIP-55 mixed-case checksums are deliberately not
// verified; any case pattern is accepted.
func CheckAddress(address string) error {
	if len(address) != AddressLength {
		return ErrBadLength
	}
	if !strings.HasPrefix(address, "0x") {
		return ErrBadPrefix
	}
	if !common.IsHexAddress(address) {
		return ErrBadSymbol
	}
	return nil
}

// BadSymbolPositions returns the indices of characters that break the
// address format: non-hex body characters, plus the prefix positions
// when the "0x" prefix itself is wrong.
func BadSymbolPositions(s string) []int {
	var bad []int
	for i := 0; i < len(s); i++ {
		c := rune(s[i])
		switch i {
		case 0:
			if c != '0' {
				bad = append(bad, i)
			}
		case 1:
			if c != 'x' {
				bad = append(bad, i)
			}
		default:
			if !IsHexChar(c) {
				bad = append(bad, i)
			}
		}
	}
	return bad
}
