package ethereum

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckAddressAcceptsAnyCase(t *testing.T) {
	mixed := "0x4F23D5907a5cE83CD31e29Eb610e158fC1A9Ab3f"
	require.Len(t, mixed, AddressLength)

	assert.NoError(t, CheckAddress(mixed))
	assert.NoError(t, CheckAddress(strings.ToLower(mixed)))
	assert.NoError(t, CheckAddress("0x"+strings.ToUpper(mixed[2:])))
}

func TestCheckAddressRejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"too short", "0x4F23D5907a5cE83CD31e29Eb610e158fC1A9Ab3", ErrBadLength},
		{"too long", "0x4F23D5907a5cE83CD31e29Eb610e158fC1A9Ab3f0", ErrBadLength},
		{"no prefix", "1x4F23D5907a5cE83CD31e29Eb610e158fC1A9Ab3f", ErrBadPrefix},
		{"uppercase X", "0X4F23D5907a5cE83CD31e29Eb610e158fC1A9Ab3f", ErrBadPrefix},
		{"non-hex char", "0x4F23D5907a5cE83CD31e29Eb610e158fC1A9Abgg", ErrBadSymbol},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, CheckAddress(tt.input), tt.want)
		})
	}
}

func TestNewAddressIsValid(t *testing.T) {
	for i := 0; i < 10; i++ {
		addr, err := NewAddress()
		require.NoError(t, err)
		assert.Len(t, addr, AddressLength)
		assert.NoError(t, CheckAddress(addr))
	}
}

func TestBadSymbolPositions(t *testing.T) {
	assert.Empty(t, BadSymbolPositions("0x4F23D5907a5cE83CD31e29Eb610e158fC1A9Ab3f"))
	assert.Equal(t, []int{0, 1}, BadSymbolPositions("ab1234"))
	assert.Equal(t, []int{4}, BadSymbolPositions("0x12g4"))
}

func TestIsHexChar(t *testing.T) {
	for _, c := range "0123456789abcdefABCDEF" {
		assert.True(t, IsHexChar(c))
	}
	for _, c := range "ghxGHX !-" {
		assert.False(t, IsHexChar(c))
	}
}
