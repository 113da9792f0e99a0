package tron

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddressIsValid(t *testing.T) {
	for i := 0; i < 10; i++ {
		addr, err := NewAddress()
		require.NoError(t, err)
		assert.Len(t, addr, AddressLength)
		assert.Equal(t, byte('T'), addr[0])
		assert.NoError(t, CheckAddress(addr))
	}
}

func TestDeriveAddressDeterministic(t *testing.T) {
	_, pubKey, err := GenerateKeyPair()
	require.NoError(t, err)

	uncompressed := pubKey.SerializeUncompressed()
	assert.Equal(t, DeriveAddress(uncompressed), DeriveAddress(uncompressed))
}
