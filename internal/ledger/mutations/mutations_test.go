package mutations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerlens/ledgerlens/internal/ledger/fields"
	"github.com/ledgerlens/ledgerlens/internal/ledger/meta"
	"github.com/ledgerlens/ledgerlens/internal/ledger/txn"
)

const (
	senderAddress   = "rEoPwRNbzZvg4wGSsbmcfnNLzEtMmIGXXX"
	receiverAddress = "rDestinationDkpD7wDiqmdCvSak4QCQGXXX"
	issuerAddress   = "rIssuerBzZvg4wGSsbmcfnNLzEtMmIGXXXX"
)

func accountRootChange(address, prevDrops, finalDrops string) map[string]any {
	return map[string]any{"ModifiedNode": map[string]any{
		"LedgerEntryType": "AccountRoot",
		"FinalFields":     map[string]any{"Account": address, "Balance": finalDrops},
		"PreviousFields":  map[string]any{"Balance": prevDrops},
	}}
}

func composePayment(t *testing.T, rawMeta map[string]any) *Composed {
	t.Helper()
	tx, err := txn.Instantiate(map[string]any{
		"TransactionType": "Payment",
		"Account":         senderAddress,
		"Destination":     receiverAddress,
		"Amount":          "10000000",
		"Fee":             "12",
	}, rawMeta, fields.DefaultOptions)
	require.NoError(t, err)
	return Compose(tx)
}

func TestBalanceChangeHidesFoldedFee(t *testing.T) {
	// sender's native balance dropped by amount plus fee
	rawMeta := map[string]any{
		"TransactionResult": "tesSUCCESS",
		"AffectedNodes": []any{
			accountRootChange(senderAddress, "50000012", "40000000"),
			accountRootChange(receiverAddress, "20000000", "30000000"),
		},
	}

	composed := composePayment(t, rawMeta)

	senderView := composed.BalanceChange(senderAddress)
	require.Len(t, senderView.Sent, 1)
	assert.Equal(t, "10", senderView.Sent[0].Value)
	assert.Equal(t, "XRP", senderView.Sent[0].Currency)
	assert.Empty(t, senderView.Received)

	receiverView := composed.BalanceChange(receiverAddress)
	require.Len(t, receiverView.Received, 1)
	assert.Equal(t, "10", receiverView.Received[0].Value)
}

func TestBalanceChangeRemovesStandaloneFee(t *testing.T) {
	// issued-currency payment: the only native movement is the fee itself
	rawMeta := map[string]any{
		"AffectedNodes": []any{
			accountRootChange(senderAddress, "50000012", "50000000"),
			map[string]any{"ModifiedNode": map[string]any{
				"LedgerEntryType": "RippleState",
				"FinalFields": map[string]any{
					"Balance":   map[string]any{"currency": "USD", "issuer": "rrrrrrrrrrrrrrrrrrrrBZbvji", "value": "-5"},
					"LowLimit":  map[string]any{"currency": "USD", "issuer": issuerAddress, "value": "0"},
					"HighLimit": map[string]any{"currency": "USD", "issuer": senderAddress, "value": "100"},
				},
				"PreviousFields": map[string]any{
					"Balance": map[string]any{"currency": "USD", "issuer": "rrrrrrrrrrrrrrrrrrrrBZbvji", "value": "-20"},
				},
			}},
		},
	}

	composed := composePayment(t, rawMeta)
	view := composed.BalanceChange(senderAddress)

	require.Len(t, view.Sent, 1)
	assert.Equal(t, "USD", view.Sent[0].Currency)
	assert.Equal(t, "15", view.Sent[0].Value)
	assert.Empty(t, view.Received)
}

func TestBalanceChangeFeeOnlyTransaction(t *testing.T) {
	// the whole native decrease is the fee: nothing to report
	rawMeta := map[string]any{
		"AffectedNodes": []any{
			accountRootChange(senderAddress, "50000012", "50000000"),
		},
	}

	composed := composePayment(t, rawMeta)
	view := composed.BalanceChange(senderAddress)

	assert.Empty(t, view.Sent)
	assert.Empty(t, view.Received)
}

func TestBalanceChangeWithoutMeta(t *testing.T) {
	composed := composePayment(t, nil)
	view := composed.BalanceChange("")
	assert.Empty(t, view.Sent)
	assert.Empty(t, view.Received)
}

func TestBalanceChangeMemoized(t *testing.T) {
	rawMeta := map[string]any{
		"AffectedNodes": []any{
			accountRootChange(senderAddress, "50000012", "40000000"),
		},
	}
	composed := composePayment(t, rawMeta)

	first := composed.BalanceChange(senderAddress)
	second := composed.BalanceChange(senderAddress)
	assert.Equal(t, first, second)
}

func TestNFTokenAcceptOfferFeeFlip(t *testing.T) {
	// seller netted less than the fee: the residual decrease flips into an
	// increase of the remainder after fee adjustment
	tx, err := txn.Instantiate(map[string]any{
		"TransactionType":  "NFTokenAcceptOffer",
		"Account":          senderAddress,
		"NFTokenSellOffer": "9C92E061381C1EF37A8CDE0E8FC35188BFC30B1883825042A64309AC09F4C36D",
		"Fee":              "5000000",
	}, map[string]any{
		"AffectedNodes": []any{
			// net native decrease of 2, fee is 5: operation gained 3
			accountRootChange(senderAddress, "50000000", "48000000"),
		},
	}, fields.DefaultOptions)
	require.NoError(t, err)

	view := Compose(tx).BalanceChange(senderAddress)
	require.Len(t, view.Received, 1)
	assert.Equal(t, "3", view.Received[0].Value)
	assert.Empty(t, view.Sent)
}

func TestOwnerCountChange(t *testing.T) {
	rawMeta := map[string]any{
		"AffectedNodes": []any{
			map[string]any{"ModifiedNode": map[string]any{
				"LedgerEntryType": "AccountRoot",
				"FinalFields":     map[string]any{"Account": senderAddress, "OwnerCount": float64(3)},
				"PreviousFields":  map[string]any{"OwnerCount": float64(2)},
			}},
		},
	}

	composed := composePayment(t, rawMeta)

	change := composed.OwnerCountChange("")
	require.NotNil(t, change)
	assert.Equal(t, uint32(1), change.Value)
	assert.Equal(t, meta.ActionIncrease, change.Action)

	assert.Nil(t, composed.OwnerCountChange(receiverAddress))
}

func TestHookExecutionsMemoized(t *testing.T) {
	rawMeta := map[string]any{
		"HookExecutions": []any{
			map[string]any{"HookExecution": map[string]any{
				"HookAccount":    senderAddress,
				"HookReturnCode": "0",
				"HookHash":       "610F33B8EBF7EC795F822A454FB852156AEFE50BE0CB8326338A81CD74801864",
			}},
		},
	}

	composed := composePayment(t, rawMeta)
	execs := composed.HookExecutions()
	require.Len(t, execs, 1)
	assert.Equal(t, senderAddress, execs[0]["HookAccount"])
	assert.Equal(t, execs, composed.HookExecutions())
}
