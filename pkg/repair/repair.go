// Package repair decides whether a Tron or Ethereum wallet address is
// well-formed and, when it is not, proposes a ranked list of
// minimally-edited corrections. Validation is authoritative: Tron
// addresses are checked down to their Base58Check double-SHA256
// checksum, and every proposed correction is independently re-validated
// before it is returned. The package holds no state between calls, so
// concurrent use needs no locking.
package repair

import (
	"errors"
	"fmt"
	"strings"

	"github.com/walletlab/addrfix/pkg/repair/ethereum"
	"github.com/walletlab/addrfix/pkg/repair/tron"
)

// Chain identifies the blockchain an address belongs to. It selects
// the alphabet, the target length, and whether checksum verification
// applies.
type Chain int

const (
	Tron     Chain = iota // Tron (Base58Check, 34 chars, 'T' prefix)
	Ethereum              // Ethereum (hex, 42 chars, '0x' prefix)
)

// String returns the chain name.
func (c Chain) String() string {
	switch c {
	case Tron:
		return "Tron"
	case Ethereum:
		return "Ethereum"
	default:
		return "Unknown"
	}
}

// Reason classifies why an address failed validation.
type Reason int

const (
	ReasonOK Reason = iota
	ReasonEmpty
	ReasonBadLength
	ReasonBadPrefix
	ReasonBadSymbol
	ReasonDecodeFailed
	ReasonBadVersion
	ReasonChecksumMismatch
)

// String returns a short human-readable description of the reason.
func (r Reason) String() string {
	switch r {
	case ReasonOK:
		return "ok"
	case ReasonEmpty:
		return "empty input"
	case ReasonBadLength:
		return "wrong length"
	case ReasonBadPrefix:
		return "wrong prefix"
	case ReasonBadSymbol:
		return "invalid character"
	case ReasonDecodeFailed:
		return "Base58 decode failed"
	case ReasonBadVersion:
		return "wrong version byte"
	case ReasonChecksumMismatch:
		return "checksum mismatch"
	default:
		return "unknown"
	}
}

// Verdict is the result of validating a single address.
//
// Degraded is set when the checksum stage was skipped (shape-only
// validation); a degraded pass means the address looks right but its
// checksum was never verified, and callers must not conflate it with a
// full pass.
type Verdict struct {
	Valid    bool
	Reason   Reason
	Degraded bool
}

// Validate checks whether address is well-formed for the given chain.
// Tron addresses are verified down to the Base58Check checksum;
// Ethereum addresses are checked for shape only ("0x" plus 40 hex
// characters, any case — EIP-55 casing is deliberately not enforced).
//
// Validate panics on an unsupported Chain value: that is a programming
// mistake by the caller, not a data problem.
func Validate(chain Chain, address string) Verdict {
	if address == "" {
		return Verdict{Reason: ReasonEmpty}
	}
	switch chain {
	case Tron:
		return verdictFrom(tron.CheckAddress(address), false)
	case Ethereum:
		return verdictFrom(ethereum.CheckAddress(address), false)
	default:
		panic(fmt.Sprintf("repair: unsupported chain %d", int(chain)))
	}
}

// ValidateShape is the documented reduced-confidence escape hatch: it
// skips the Tron checksum stage and reports the result with Degraded
// set. For Ethereum the full check is already shape-only, so the
// verdict is identical to Validate and not marked degraded.
func ValidateShape(chain Chain, address string) Verdict {
	if address == "" {
		return Verdict{Reason: ReasonEmpty}
	}
	switch chain {
	case Tron:
		return verdictFrom(tron.CheckShape(address), true)
	case Ethereum:
		return verdictFrom(ethereum.CheckAddress(address), false)
	default:
		panic(fmt.Sprintf("repair: unsupported chain %d", int(chain)))
	}
}

// IsValid is a convenience wrapper around Validate for callers that
// only need a boolean, e.g. live-typing feedback.
func IsValid(chain Chain, address string) bool {
	return Validate(chain, address).Valid
}

// DetectChain guesses the chain an address was intended for based on
// its prefix. It is a convenience for callers handling mixed input
// lists; the guess is heuristic and does not imply validity.
func DetectChain(address string) (Chain, bool) {
	switch {
	case strings.HasPrefix(address, "0x") || strings.HasPrefix(address, "0X"):
		return Ethereum, true
	case strings.HasPrefix(address, "T"):
		return Tron, true
	default:
		return 0, false
	}
}

// verdictFrom maps a chain package's validation error onto a Verdict.
func verdictFrom(err error, degraded bool) Verdict {
	if err == nil {
		return Verdict{Valid: true, Reason: ReasonOK, Degraded: degraded}
	}
	v := Verdict{Degraded: degraded}
	switch {
	case errors.Is(err, tron.ErrBadLength) || errors.Is(err, ethereum.ErrBadLength):
		v.Reason = ReasonBadLength
	case errors.Is(err, tron.ErrBadPrefix) || errors.Is(err, ethereum.ErrBadPrefix):
		v.Reason = ReasonBadPrefix
	case errors.Is(err, tron.ErrBadSymbol) || errors.Is(err, ethereum.ErrBadSymbol):
		v.Reason = ReasonBadSymbol
	case errors.Is(err, tron.ErrDecode):
		v.Reason = ReasonDecodeFailed
	case errors.Is(err, tron.ErrBadVersion):
		v.Reason = ReasonBadVersion
	case errors.Is(err, tron.ErrBadChecksum):
		v.Reason = ReasonChecksumMismatch
	default:
		v.Reason = ReasonBadSymbol
	}
	return v
}
