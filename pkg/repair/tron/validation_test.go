package tron

import (
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	btcbase58 "github.com/btcsuite/btcd/btcutil/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// usdtContract is the well-known USDT TRC20 contract address, used as a
// fixed known-good vector alongside freshly derived ones.
const usdtContract = "TR7NHqjeKQxGTCi8q8ZY4pL8otSzgjLj6t"

// deriveTestAddress builds a valid address from a fixed private key so
// the checksum is correct by construction.
func deriveTestAddress(t *testing.T, seed byte) string {
	t.Helper()
	require.NotZero(t, seed)

	var key [32]byte
	key[31] = seed
	_, pubKey := btcec.PrivKeyFromBytes(key[:])
	return DeriveAddress(pubKey.SerializeUncompressed())
}

func TestCheckAddressKnownGood(t *testing.T) {
	assert.NoError(t, CheckAddress(usdtContract))
}

func TestCheckAddressDerived(t *testing.T) {
	for seed := byte(1); seed <= 5; seed++ {
		addr := deriveTestAddress(t, seed)
		assert.Len(t, addr, AddressLength)
		assert.Equal(t, byte('T'), addr[0])
		assert.NoError(t, CheckAddress(addr))
	}
}

func TestCheckAddressRejectsBadShape(t *testing.T) {
	addr := deriveTestAddress(t, 1)

	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"too short", addr[:AddressLength-1], ErrBadLength},
		{"too long", addr + "x", ErrBadLength},
		{"wrong prefix", "A" + addr[1:], ErrBadPrefix},
		{"zero digit", addr[:AddressLength-1] + "0", ErrBadSymbol},
		{"uppercase o", addr[:AddressLength-1] + "O", ErrBadSymbol},
		{"lowercase l", addr[:AddressLength-1] + "l", ErrBadSymbol},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, CheckAddress(tt.input), tt.want)
		})
	}
}

func TestCheckAddressRejectsCorruptChecksum(t *testing.T) {
	addr := deriveTestAddress(t, 2)

	// Swap the last character for a different Base58 symbol: still
	// shape-valid, but the checksum no longer matches.
	last := addr[AddressLength-1]
	var replacement byte
	for i := 0; i < len(Alphabet); i++ {
		if Alphabet[i] != last {
			replacement = Alphabet[i]
			break
		}
	}
	corrupted := addr[:AddressLength-1] + string(replacement)

	assert.ErrorIs(t, CheckAddress(corrupted), ErrBadChecksum)
	// Shape-only validation accepts it: that is exactly the degraded
	// confidence gap CheckShape documents.
	assert.NoError(t, CheckShape(corrupted))
}

func TestCheckAddressRejectsWrongVersionByte(t *testing.T) {
	// A checksummed payload with the wrong version byte must never
	// validate, whichever stage catches it.
	body := make([]byte, 20)
	for i := range body {
		body[i] = byte(i + 1)
	}
	wrong := btcbase58.CheckEncode(body, 0x42)
	assert.Error(t, CheckAddress(wrong))
}

func TestDecodeAgreesWithBtcutil(t *testing.T) {
	// Our decode path (mr-tron) and btcutil's Base58Check must agree on
	// good addresses.
	addr := deriveTestAddress(t, 3)
	payload, version, err := btcbase58.CheckDecode(addr)
	require.NoError(t, err)
	assert.Equal(t, byte(VersionByte), version)
	assert.Len(t, payload, 20)
	assert.NoError(t, CheckAddress(addr))
}

func TestBadSymbolPositions(t *testing.T) {
	assert.Empty(t, BadSymbolPositions(usdtContract))
	assert.Equal(t, []int{1, 3}, BadSymbolPositions("T0a0bc"))
	assert.Equal(t, []int{0}, BadSymbolPositions("!abc"))
}

func TestCaseTwin(t *testing.T) {
	twin, ok := CaseTwin('a')
	require.True(t, ok)
	assert.Equal(t, byte('A'), twin)

	twin, ok = CaseTwin('Q')
	require.True(t, ok)
	assert.Equal(t, byte('q'), twin)

	// 'L' has no twin because lowercase 'l' is not in the alphabet;
	// same for 'i' ('I' excluded) and digits.
	_, ok = CaseTwin('L')
	assert.False(t, ok)
	_, ok = CaseTwin('i')
	assert.False(t, ok)
	_, ok = CaseTwin('7')
	assert.False(t, ok)
}

func TestIsAlphabetChar(t *testing.T) {
	for _, c := range Alphabet {
		assert.True(t, IsAlphabetChar(c))
	}
	for _, c := range "0OIl!@# " {
		assert.False(t, IsAlphabetChar(c))
	}
}
