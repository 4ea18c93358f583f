package meta

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, jsonMeta string) *Meta {
	t.Helper()
	var raw map[string]any
	require.NoError(t, json.Unmarshal([]byte(jsonMeta), &raw))
	m, err := Parse(raw, "XRP")
	require.NoError(t, err)
	return m
}

const paymentMeta = `{
	"TransactionResult": "tesSUCCESS",
	"AffectedNodes": [
		{"ModifiedNode": {
			"LedgerEntryType": "AccountRoot",
			"LedgerIndex": "AAAA",
			"FinalFields": {"Account": "rAlice11111111111111111111111111111", "Balance": "89999988"},
			"PreviousFields": {"Balance": "100000000"}
		}},
		{"ModifiedNode": {
			"LedgerEntryType": "AccountRoot",
			"LedgerIndex": "BBBB",
			"FinalFields": {"Account": "rBob222222222222222222222222222222", "Balance": "110000000"},
			"PreviousFields": {"Balance": "100000000"}
		}}
	]
}`

func TestParseAbsentMetaIsEmpty(t *testing.T) {
	m, err := Parse(nil, "XRP")
	require.NoError(t, err)
	assert.True(t, m.Empty())
	assert.Empty(t, m.Nodes())
	assert.Empty(t, m.BalanceChanges())
	assert.Empty(t, m.TicketSequences())
	assert.Empty(t, m.AMMAccountID())
	assert.Nil(t, m.ClaimStatusFor("rAlice"))
}

func TestParseMalformedMeta(t *testing.T) {
	_, err := Parse(map[string]any{"AffectedNodes": "oops"}, "XRP")
	require.ErrorIs(t, err, ErrMalformedMeta)

	_, err = Parse(map[string]any{"AffectedNodes": []any{"not-an-object"}}, "XRP")
	require.ErrorIs(t, err, ErrMalformedMeta)

	_, err = Parse(map[string]any{"AffectedNodes": []any{map[string]any{"RenamedNode": map[string]any{}}}}, "XRP")
	require.ErrorIs(t, err, ErrMalformedMeta)
}

func TestNativeBalanceChanges(t *testing.T) {
	m := mustParse(t, paymentMeta)
	changes := m.BalanceChanges()

	alice := changes["rAlice11111111111111111111111111111"]
	require.Len(t, alice, 1)
	assert.Equal(t, BalanceChange{Currency: "XRP", Value: "10.000012", Action: ActionDecrease}, alice[0])

	bob := changes["rBob222222222222222222222222222222"]
	require.Len(t, bob, 1)
	assert.Equal(t, BalanceChange{Currency: "XRP", Value: "10", Action: ActionIncrease}, bob[0])
}

func TestDeletedEntriesYieldNoBalanceChanges(t *testing.T) {
	// account deletion removes the root and the remaining trust line; only
	// the surviving counterparties' modified entries count as movements
	meta := `{
		"AffectedNodes": [
			{"DeletedNode": {
				"LedgerEntryType": "AccountRoot",
				"FinalFields": {"Account": "rGone111111111111111111111111111111", "Balance": "0"},
				"PreviousFields": {"Balance": "12000000"}
			}},
			{"DeletedNode": {
				"LedgerEntryType": "RippleState",
				"FinalFields": {
					"Balance": {"currency": "USD", "issuer": "rrrrrrrrrrrrrrrrrrrrBZbvji", "value": "0"},
					"LowLimit": {"currency": "USD", "issuer": "rGone111111111111111111111111111111", "value": "0"},
					"HighLimit": {"currency": "USD", "issuer": "rGateway111111111111111111111111111", "value": "100"}
				},
				"PreviousFields": {
					"Balance": {"currency": "USD", "issuer": "rrrrrrrrrrrrrrrrrrrrBZbvji", "value": "3"}
				}
			}},
			{"ModifiedNode": {
				"LedgerEntryType": "AccountRoot",
				"FinalFields": {"Account": "rHeir222222222222222222222222222222", "Balance": "112000000"},
				"PreviousFields": {"Balance": "100000000"}
			}}
		]
	}`
	m := mustParse(t, meta)
	changes := m.BalanceChanges()

	assert.Empty(t, changes["rGone111111111111111111111111111111"])
	assert.Empty(t, changes["rGateway111111111111111111111111111"])

	heir := changes["rHeir222222222222222222222222222222"]
	require.Len(t, heir, 1)
	assert.Equal(t, BalanceChange{Currency: "XRP", Value: "12", Action: ActionIncrease}, heir[0])
}

func TestBalanceChangeConservation(t *testing.T) {
	// one currency, exactly two parties: sent must mirror received
	meta := `{
		"AffectedNodes": [
			{"ModifiedNode": {
				"LedgerEntryType": "RippleState",
				"FinalFields": {
					"Balance": {"currency": "USD", "issuer": "rrrrrrrrrrrrrrrrrrrrBZbvji", "value": "-25"},
					"LowLimit": {"currency": "USD", "issuer": "rGateway111111111111111111111111111", "value": "0"},
					"HighLimit": {"currency": "USD", "issuer": "rHolder2222222222222222222222222222", "value": "100"}
				},
				"PreviousFields": {
					"Balance": {"currency": "USD", "issuer": "rrrrrrrrrrrrrrrrrrrrBZbvji", "value": "-10"}
				}
			}}
		]
	}`
	m := mustParse(t, meta)
	changes := m.BalanceChanges()

	gateway := changes["rGateway111111111111111111111111111"]
	holder := changes["rHolder2222222222222222222222222222"]
	require.Len(t, gateway, 1)
	require.Len(t, holder, 1)

	assert.Equal(t, ActionDecrease, gateway[0].Action)
	assert.Equal(t, ActionIncrease, holder[0].Action)
	assert.Equal(t, gateway[0].Value, holder[0].Value, "absolute sent must equal absolute received")
	assert.Equal(t, "15", holder[0].Value)

	// the stored balance is low-node perspective; each side sees the other as issuer
	assert.Equal(t, "rHolder2222222222222222222222222222", gateway[0].Issuer)
	assert.Equal(t, "rGateway111111111111111111111111111", holder[0].Issuer)
}

func TestTrustlineCreatedWithStartingBalance(t *testing.T) {
	meta := `{
		"AffectedNodes": [
			{"CreatedNode": {
				"LedgerEntryType": "RippleState",
				"NewFields": {
					"Balance": {"currency": "EUR", "issuer": "rrrrrrrrrrrrrrrrrrrrBZbvji", "value": "5"},
					"LowLimit": {"currency": "EUR", "issuer": "rLow11111111111111111111111111111", "value": "0"},
					"HighLimit": {"currency": "EUR", "issuer": "rHigh2222222222222222222222222222", "value": "50"}
				}
			}}
		]
	}`
	m := mustParse(t, meta)
	changes := m.BalanceChanges()
	require.Len(t, changes["rLow11111111111111111111111111111"], 1)
	assert.Equal(t, ActionIncrease, changes["rLow11111111111111111111111111111"][0].Action)
	assert.Equal(t, ActionDecrease, changes["rHigh2222222222222222222222222222"][0].Action)
}

func TestCombineSameCurrencyChanges(t *testing.T) {
	// applied paths can move the same currency over two trust lines
	meta := `{
		"AffectedNodes": [
			{"ModifiedNode": {
				"LedgerEntryType": "RippleState",
				"FinalFields": {
					"Balance": {"currency": "USD", "issuer": "rrrrrrrrrrrrrrrrrrrrBZbvji", "value": "30"},
					"LowLimit": {"currency": "USD", "issuer": "rTarget11111111111111111111111111", "value": "0"},
					"HighLimit": {"currency": "USD", "issuer": "rIssuerA22222222222222222222222222", "value": "100"}
				},
				"PreviousFields": {
					"Balance": {"currency": "USD", "issuer": "rrrrrrrrrrrrrrrrrrrrBZbvji", "value": "20"}
				}
			}},
			{"ModifiedNode": {
				"LedgerEntryType": "RippleState",
				"FinalFields": {
					"Balance": {"currency": "USD", "issuer": "rrrrrrrrrrrrrrrrrrrrBZbvji", "value": "7"},
					"LowLimit": {"currency": "USD", "issuer": "rTarget11111111111111111111111111", "value": "0"},
					"HighLimit": {"currency": "USD", "issuer": "rIssuerB33333333333333333333333333", "value": "100"}
				},
				"PreviousFields": {
					"Balance": {"currency": "USD", "issuer": "rrrrrrrrrrrrrrrrrrrrBZbvji", "value": "2"}
				}
			}}
		]
	}`
	m := mustParse(t, meta)
	target := m.BalanceChangesFor("rTarget11111111111111111111111111")
	require.Len(t, target, 1, "same action and currency must combine")
	assert.Equal(t, "15", target[0].Value)
	assert.Equal(t, ActionIncrease, target[0].Action)
}

func TestTicketSequences(t *testing.T) {
	meta := `{
		"AffectedNodes": [
			{"CreatedNode": {
				"LedgerEntryType": "Ticket",
				"NewFields": {"Account": "rAlice", "TicketSequence": 102}
			}},
			{"ModifiedNode": {
				"LedgerEntryType": "AccountRoot",
				"FinalFields": {"Account": "rAlice", "Balance": "999"},
				"PreviousFields": {"Balance": "1000"}
			}},
			{"CreatedNode": {
				"LedgerEntryType": "Ticket",
				"NewFields": {"Account": "rAlice", "TicketSequence": 101}
			}}
		]
	}`
	m := mustParse(t, meta)
	assert.Equal(t, []uint32{101, 102}, m.TicketSequences())
}

func TestAMMAccountID(t *testing.T) {
	created := `{
		"AffectedNodes": [
			{"CreatedNode": {
				"LedgerEntryType": "AMM",
				"NewFields": {"Account": "rAMMPseudo111111111111111111111111"}
			}}
		]
	}`
	m := mustParse(t, created)
	assert.Equal(t, "rAMMPseudo111111111111111111111111", m.AMMAccountID())

	modified := `{
		"AffectedNodes": [
			{"ModifiedNode": {
				"LedgerEntryType": "AMM",
				"FinalFields": {"Account": "rAMMPseudo111111111111111111111111"}
			}}
		]
	}`
	m = mustParse(t, modified)
	assert.Equal(t, "rAMMPseudo111111111111111111111111", m.AMMAccountID())

	m = mustParse(t, paymentMeta)
	assert.Equal(t, "", m.AMMAccountID(), "non-AMM transactions must not throw and yield nothing")
}

func TestClaimStatus(t *testing.T) {
	optOut := `{
		"AffectedNodes": [
			{"ModifiedNode": {
				"LedgerEntryType": "AccountRoot",
				"FinalFields": {"Account": "rAlice", "Balance": "1000"},
				"PreviousFields": {"RewardLgrFirst": 100, "RewardAccumulator": "5"}
			}}
		]
	}`
	m := mustParse(t, optOut)
	status := m.ClaimStatusFor("rAlice")
	require.NotNil(t, status)
	assert.Equal(t, ClaimOptOut, *status)

	optIn := `{
		"AffectedNodes": [
			{"ModifiedNode": {
				"LedgerEntryType": "AccountRoot",
				"FinalFields": {"Account": "rAlice", "RewardLgrFirst": 200, "RewardAccumulator": "0"},
				"PreviousFields": {"RewardAccumulator": "5"}
			}}
		]
	}`
	m = mustParse(t, optIn)
	status = m.ClaimStatusFor("rAlice")
	require.NotNil(t, status)
	assert.Equal(t, ClaimOptIn, *status)

	// unrelated modification: no transition, defer to the transaction flag
	m = mustParse(t, paymentMeta)
	assert.Nil(t, m.ClaimStatusFor("rAlice11111111111111111111111111111"))
}

func TestOfferStatusChange(t *testing.T) {
	tests := []struct {
		name  string
		meta  string
		owner string
		index string
		want  OfferStatus
	}{
		{
			name: "deleted with previous TakerPays is filled",
			meta: `{"AffectedNodes": [
				{"DeletedNode": {
					"LedgerEntryType": "Offer",
					"LedgerIndex": "OFFER1",
					"FinalFields": {"Account": "rAlice"},
					"PreviousFields": {"TakerPays": "1000"}
				}}
			]}`,
			owner: "rAlice", index: "OFFER1", want: OfferFilled,
		},
		{
			name: "deleted clean is cancelled",
			meta: `{"AffectedNodes": [
				{"DeletedNode": {
					"LedgerEntryType": "Offer",
					"LedgerIndex": "OFFER1",
					"FinalFields": {"Account": "rAlice"}
				}}
			]}`,
			owner: "rAlice", index: "OFFER1", want: OfferCancelled,
		},
		{
			name: "created without trust line change stays created",
			meta: `{"AffectedNodes": [
				{"CreatedNode": {
					"LedgerEntryType": "Offer",
					"LedgerIndex": "OFFER1",
					"NewFields": {"Account": "rAlice"}
				}}
			]}`,
			owner: "rAlice", index: "OFFER1", want: OfferCreated,
		},
		{
			name: "created with trust line change is partially filled",
			meta: `{"AffectedNodes": [
				{"CreatedNode": {
					"LedgerEntryType": "Offer",
					"LedgerIndex": "OFFER1",
					"NewFields": {"Account": "rAlice"}
				}},
				{"ModifiedNode": {
					"LedgerEntryType": "RippleState",
					"FinalFields": {
						"HighLimit": {"issuer": "rAlice"},
						"LowLimit": {"issuer": "rGateway"}
					}
				}}
			]}`,
			owner: "rAlice", index: "OFFER1", want: OfferPartiallyFilled,
		},
		{
			name: "absent node with trust line change is filled",
			meta: `{"AffectedNodes": [
				{"ModifiedNode": {
					"LedgerEntryType": "RippleState",
					"FinalFields": {
						"HighLimit": {"issuer": "rAlice"},
						"LowLimit": {"issuer": "rGateway"}
					}
				}}
			]}`,
			owner: "rAlice", index: "OFFER1", want: OfferFilled,
		},
		{
			name:  "absent node without any change is killed",
			meta:  `{"AffectedNodes": []}`,
			owner: "rAlice", index: "OFFER1", want: OfferKilled,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := mustParse(t, tc.meta)
			assert.Equal(t, tc.want, m.OfferStatusChange(tc.owner, tc.index))
		})
	}
}

func TestOwnerCountChanges(t *testing.T) {
	meta := `{
		"AffectedNodes": [
			{"ModifiedNode": {
				"LedgerEntryType": "AccountRoot",
				"FinalFields": {"Account": "rAlice", "OwnerCount": 3},
				"PreviousFields": {"OwnerCount": 2}
			}}
		]
	}`
	m := mustParse(t, meta)
	changes := m.OwnerCountChanges()
	require.Len(t, changes, 1)
	assert.Equal(t, OwnerCountChange{Address: "rAlice", Value: 1, Action: ActionIncrease}, changes[0])
}

func TestMintedNFTokenID(t *testing.T) {
	meta := `{
		"AffectedNodes": [
			{"ModifiedNode": {
				"LedgerEntryType": "NFTokenPage",
				"FinalFields": {"NFTokens": [
					{"NFToken": {"NFTokenID": "000B0000AAAA"}},
					{"NFToken": {"NFTokenID": "000B0000BBBB"}}
				]},
				"PreviousFields": {"NFTokens": [
					{"NFToken": {"NFTokenID": "000B0000AAAA"}}
				]}
			}}
		]
	}`
	m := mustParse(t, meta)
	assert.Equal(t, "000B0000BBBB", m.MintedNFTokenID())
}
