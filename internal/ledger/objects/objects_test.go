package objects

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerlens/ledgerlens/internal/ledger/fields"
)

const (
	ownerAddress       = "rOwnerwRNbzZvg4wGSsbmcfnNLzEtMmXXXX"
	destinationAddress = "rDestinationDkpD7wDiqmdCvSak4QCQXXXX"
)

func TestInstantiateCheck(t *testing.T) {
	raw := map[string]any{
		"LedgerEntryType": "Check",
		"Account":         ownerAddress,
		"Destination":     destinationAddress,
		"SendMax":         "50000000",
		"Sequence":        float64(5),
		"Expiration":      float64(fields.TimeToRippleTime(time.Now().Add(-time.Hour))),
		"index":           "49647F0D748DC3FE26BDACBC57F251AADEFFF391403EC9BF87C97F67E9977FB0",
	}

	obj, err := Instantiate(raw, fields.DefaultOptions)
	require.NoError(t, err)

	check, ok := obj.(*Check)
	require.True(t, ok)
	assert.Equal(t, TypeCheck, check.EntryType())
	assert.Equal(t, ownerAddress, check.Account())
	assert.Equal(t, destinationAddress, check.Destination())
	require.NotNil(t, check.SendMax())
	assert.Equal(t, "50", check.SendMax().Value)
	assert.True(t, check.IsExpired())
	assert.Equal(t, "49647F0D748DC3FE26BDACBC57F251AADEFFF391403EC9BF87C97F67E9977FB0", check.Index())
}

func TestCheckWithoutExpirationNeverExpires(t *testing.T) {
	obj, err := Instantiate(map[string]any{
		"LedgerEntryType": "Check",
		"Account":         ownerAddress,
		"Destination":     destinationAddress,
		"SendMax":         "1",
	}, fields.DefaultOptions)
	require.NoError(t, err)

	check := obj.(*Check)
	assert.Nil(t, check.Expiration())
	assert.False(t, check.IsExpired())
}

func TestEscrowDatePreference(t *testing.T) {
	finish := fields.TimeToRippleTime(time.Now().Add(time.Hour))
	cancel := fields.TimeToRippleTime(time.Now().Add(2 * time.Hour))

	obj, err := Instantiate(map[string]any{
		"LedgerEntryType": "Escrow",
		"Account":         ownerAddress,
		"Destination":     destinationAddress,
		"Amount":          "1000000",
		"FinishAfter":     float64(finish),
		"CancelAfter":     float64(cancel),
	}, fields.DefaultOptions)
	require.NoError(t, err)

	escrow := obj.(*Escrow)
	require.NotNil(t, escrow.Date())
	assert.Equal(t, escrow.FinishAfter().Unix(), escrow.Date().Unix())
	assert.False(t, escrow.IsExpired())
}

func TestNFTokenOfferSellFlag(t *testing.T) {
	obj, err := Instantiate(map[string]any{
		"LedgerEntryType": "NFTokenOffer",
		"Owner":           ownerAddress,
		"NFTokenID":       "000B013A95F14B0044F78A264E41713C64B5F89242540EE208C3098E00000D65",
		"Amount":          "1000000",
		"Flags":           float64(1),
	}, fields.DefaultOptions)
	require.NoError(t, err)

	offer := obj.(*NFTokenOffer)
	assert.True(t, offer.IsSellOffer())
	assert.Equal(t, "1", offer.Amount().Value)
}

func TestURITokenDecode(t *testing.T) {
	obj, err := Instantiate(map[string]any{
		"LedgerEntryType": "URIToken",
		"Owner":           ownerAddress,
		"Issuer":          destinationAddress,
		"URI":             "697066733A2F2F636F6E74656E74",
		"Amount":          "5000000",
	}, fields.DefaultOptions)
	require.NoError(t, err)

	token := obj.(*URIToken)
	assert.Equal(t, "ipfs://content", token.URI())
	assert.True(t, token.ForSale())
}

func TestInstantiateUnknownEntryFallsBack(t *testing.T) {
	obj, err := Instantiate(map[string]any{
		"LedgerEntryType": "SomeFutureEntry",
		"Flags":           float64(0),
		"NewStuff":        "kept",
	}, fields.DefaultOptions)
	require.NoError(t, err)

	fallback, ok := obj.(*Fallback)
	require.True(t, ok)
	assert.Equal(t, "SomeFutureEntry", fallback.EntryType())
	assert.Equal(t, "kept", fallback.Raw()["NewStuff"])
}

func TestInstantiateMissingDiscriminant(t *testing.T) {
	_, err := Instantiate(map[string]any{"Account": ownerAddress}, fields.DefaultOptions)
	require.Error(t, err)
	assert.ErrorIs(t, err, fields.ErrMissingField)
}

func TestInstantiateMissingRequiredEntryField(t *testing.T) {
	_, err := Instantiate(map[string]any{
		"LedgerEntryType": "Ticket",
		"Account":         ownerAddress,
	}, fields.DefaultOptions)

	require.Error(t, err)
	var missing *fields.MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "TicketSequence", missing.Field)
}
