package fields

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeAmountDualRepresentation(t *testing.T) {
	tests := []struct {
		name    string
		raw     any
		want    Amount
		wantErr bool
	}{
		{
			name: "bare drops string is native at human scale",
			raw:  "100000000",
			want: Amount{Currency: "XRP", Value: "100", Native: true},
		},
		{
			name: "sub-unit drops keep full precision",
			raw:  "1",
			want: Amount{Currency: "XRP", Value: "0.000001", Native: true},
		},
		{
			name: "issued currency object passes through",
			raw: map[string]any{
				"currency": "USD",
				"issuer":   "rvYAfWj5gh67oV6fW32ZzP3Aw4Eubs59B",
				"value":    "1337.25",
			},
			want: Amount{Currency: "USD", Issuer: "rvYAfWj5gh67oV6fW32ZzP3Aw4Eubs59B", Value: "1337.25"},
		},
		{
			name: "issuer casing preserved verbatim",
			raw: map[string]any{
				"currency": "EUR",
				"issuer":   "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh",
				"value":    "0.5",
			},
			want: Amount{Currency: "EUR", Issuer: "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh", Value: "0.5"},
		},
		{
			name:    "non numeric string fails",
			raw:     "12x4",
			wantErr: true,
		},
		{
			name:    "object without value fails",
			raw:     map[string]any{"currency": "USD"},
			wantErr: true,
		},
		{
			name:    "unexpected shape fails",
			raw:     42.0,
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := decodeAmount(tc.raw, "XRP")
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDecodeAmountNativeAssetName(t *testing.T) {
	got, err := decodeAmount("2500000", "XAH")
	require.NoError(t, err)
	assert.Equal(t, Amount{Currency: "XAH", Value: "2.5", Native: true}, got)
}

func TestDropsRoundTrip(t *testing.T) {
	native, err := DropsToNative("1337000001")
	require.NoError(t, err)
	assert.Equal(t, "1337.000001", native)

	drops, err := NativeToDrops(native)
	require.NoError(t, err)
	assert.Equal(t, "1337000001", drops)
}

func TestDecodeHash(t *testing.T) {
	valid256 := "C2D60DAFC8AEAD7E91F1BAE4DC24FDABD1D456CEE0EAD5CE9F074C1F26E2C7FF"

	got, err := decodeKind(Hash256, valid256, DefaultOptions)
	require.NoError(t, err)
	assert.Equal(t, valid256, got)

	_, err = decodeKind(Hash256, valid256[:40], DefaultOptions)
	require.Error(t, err)

	_, err = decodeKind(Hash256, valid256[:63]+"G", DefaultOptions)
	require.Error(t, err)
}

func TestDecodeUints(t *testing.T) {
	got, err := decodeKind(UInt32, float64(4294967295), DefaultOptions)
	require.NoError(t, err)
	assert.Equal(t, uint32(4294967295), got)

	_, err = decodeKind(UInt16, float64(70000), DefaultOptions)
	require.Error(t, err)

	_, err = decodeKind(UInt32, float64(-1), DefaultOptions)
	require.Error(t, err)

	_, err = decodeKind(UInt32, float64(1.5), DefaultOptions)
	require.Error(t, err)

	// 64-bit fields appear as strings on the wire
	got, err = decodeKind(UInt64, "18446744073709551615", DefaultOptions)
	require.NoError(t, err)
	assert.Equal(t, uint64(18446744073709551615), got)
}

func TestRippleTimeCodec(t *testing.T) {
	// 2000-01-01T00:00:00Z is ledger epoch zero
	v, err := applyCodec(RippleTime, uint32(0))
	require.NoError(t, err)
	assert.Equal(t, time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), v)

	v, err = applyCodec(RippleTime, uint32(748128180))
	require.NoError(t, err)
	assert.Equal(t, time.Unix(748128180+946684800, 0).UTC(), v)
}

func TestTransferFeeCodec(t *testing.T) {
	v, err := applyCodec(TransferFee, uint32(25000))
	require.NoError(t, err)
	assert.Equal(t, float64(25), v)
}

func TestTransferRateCodec(t *testing.T) {
	v, err := applyCodec(TransferRate, uint32(1200000000))
	require.NoError(t, err)
	assert.Equal(t, float64(20), v)

	v, err = applyCodec(TransferRate, uint32(0))
	require.NoError(t, err)
	assert.Equal(t, float64(0), v)
}

func TestSignerEntriesCodec(t *testing.T) {
	raw := []map[string]any{
		{"SignerEntry": map[string]any{"Account": "rAlice", "SignerWeight": float64(2)}},
		{"SignerEntry": map[string]any{"Account": "rBob", "SignerWeight": float64(1)}},
	}
	v, err := applyCodec(SignerEntries, raw)
	require.NoError(t, err)
	entries := v.([]SignerEntry)
	require.Len(t, entries, 2)
	assert.Equal(t, SignerEntry{Account: "rAlice", SignerWeight: 2}, entries[0])
	assert.Equal(t, SignerEntry{Account: "rBob", SignerWeight: 1}, entries[1])
}

func TestMemosCodec(t *testing.T) {
	raw := []map[string]any{
		{"Memo": map[string]any{
			"MemoType": "4465736372697074696F6E",
			"MemoData": "48656C6C6F",
		}},
	}
	v, err := applyCodec(Memos, raw)
	require.NoError(t, err)
	memos := v.([]Memo)
	require.Len(t, memos, 1)
	assert.Equal(t, "Description", memos[0].Type)
	assert.Equal(t, "Hello", memos[0].Data)
}

func TestDecodeSchema(t *testing.T) {
	schema := Schema{
		"Destination": {Kind: AccountID, Required: true},
		"SendMax":     {Kind: AmountKind, Required: true},
		"Expiration":  {Kind: UInt32, Codec: RippleTime},
		"InvoiceID":   {Kind: Hash256},
	}

	raw := map[string]any{
		"Destination": "rBobrU9pvD8PvJtgNfcNXgpDyK6pkNWbw",
		"SendMax":     "50000000",
		"Expiration":  float64(0),
		"Unknown":     "ignored",
	}

	decoded, err := DecodeSchema(schema, raw, DefaultOptions)
	require.NoError(t, err)
	assert.Equal(t, "rBobrU9pvD8PvJtgNfcNXgpDyK6pkNWbw", decoded["Destination"])
	assert.Equal(t, Amount{Currency: "XRP", Value: "50", Native: true}, decoded["SendMax"])
	assert.Equal(t, time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), decoded["Expiration"])
	_, present := decoded["InvoiceID"]
	assert.False(t, present, "optional absent field must stay absent, not zero-valued")
}

func TestDecodeSchemaMissingRequired(t *testing.T) {
	schema := Schema{
		"Destination": {Kind: AccountID, Required: true},
	}

	_, err := DecodeSchema(schema, map[string]any{}, DefaultOptions)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingField)

	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "Destination", missing.Field)
}

func TestDecodeSchemaMalformed(t *testing.T) {
	schema := Schema{
		"Amount": {Kind: AmountKind},
	}

	_, err := DecodeSchema(schema, map[string]any{"Amount": "not-a-number"}, DefaultOptions)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedField)

	var malformed *MalformedFieldError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "Amount", malformed.Field)
}
