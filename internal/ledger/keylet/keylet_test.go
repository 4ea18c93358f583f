package keylet

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeAccountID(t *testing.T) {
	// ACCOUNT_ZERO encodes the all-zero account ID
	accountID, err := DecodeAccountID("rrrrrrrrrrrrrrrrrrrrrhoLvTp")
	require.NoError(t, err)
	assert.Equal(t, [20]byte{}, accountID)
}

func TestDecodeAccountIDInvalid(t *testing.T) {
	tests := []struct {
		name    string
		address string
	}{
		{"empty", ""},
		{"not base58", "r0OIl"},
		{"truncated", "rrrrrrrrrrrr"},
		{"corrupted checksum", "rrrrrrrrrrrrrrrrrrrrrhoLvTq"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeAccountID(tc.address)
			assert.ErrorIs(t, err, ErrInvalidAddress)
		})
	}
}

func TestOfferIndex(t *testing.T) {
	index, err := Offer("rrrrrrrrrrrrrrrrrrrrrhoLvTp", 7)
	require.NoError(t, err)
	assert.Len(t, index, 64)
	assert.Equal(t, strings.ToUpper(index), index)

	// deterministic, and sequence-sensitive
	again, err := Offer("rrrrrrrrrrrrrrrrrrrrrhoLvTp", 7)
	require.NoError(t, err)
	assert.Equal(t, index, again)

	other, err := Offer("rrrrrrrrrrrrrrrrrrrrrhoLvTp", 8)
	require.NoError(t, err)
	assert.NotEqual(t, index, other)
}

func TestEntrySpacesDiffer(t *testing.T) {
	offer, err := Offer("rrrrrrrrrrrrrrrrrrrrrhoLvTp", 7)
	require.NoError(t, err)
	escrow, err := Escrow("rrrrrrrrrrrrrrrrrrrrrhoLvTp", 7)
	require.NoError(t, err)
	check, err := Check("rrrrrrrrrrrrrrrrrrrrrhoLvTp", 7)
	require.NoError(t, err)

	assert.NotEqual(t, offer, escrow)
	assert.NotEqual(t, offer, check)
	assert.NotEqual(t, escrow, check)
}
