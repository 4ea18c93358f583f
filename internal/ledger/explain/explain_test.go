package explain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerlens/ledgerlens/internal/ledger/fields"
	"github.com/ledgerlens/ledgerlens/internal/ledger/mutations"
	"github.com/ledgerlens/ledgerlens/internal/ledger/txn"
)

const (
	senderAddress   = "rEoPwRNbzZvg4wGSsbmcfnNLzEtMmIGXXX"
	receiverAddress = "rDestinationDkpD7wDiqmdCvSak4QCQGXXX"
)

func compose(t *testing.T, raw, rawMeta map[string]any) *mutations.Composed {
	t.Helper()
	transaction, err := txn.Instantiate(raw, rawMeta, fields.DefaultOptions)
	require.NoError(t, err)
	return mutations.Compose(transaction)
}

func TestPaymentExplainerLabels(t *testing.T) {
	item := compose(t, map[string]any{
		"TransactionType": "Payment",
		"Account":         senderAddress,
		"Destination":     receiverAddress,
		"Amount":          "85000000",
		"Fee":             "12",
	}, nil)

	tests := []struct {
		name    string
		account string
		label   string
	}{
		{"sender view", senderAddress, "Payment Sent"},
		{"receiver view", receiverAddress, "Payment Received"},
		{"third party view", "rSomeoneElseDkpD7wDiqmdCvSak4QCQGXXX", "Payment"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			label, err := New(item, tc.account).EventsLabel()
			require.NoError(t, err)
			assert.Equal(t, tc.label, label)
		})
	}
}

func TestPaymentExplainerDescriptionAndParticipants(t *testing.T) {
	item := compose(t, map[string]any{
		"TransactionType": "Payment",
		"Account":         senderAddress,
		"Destination":     receiverAddress,
		"DestinationTag":  float64(7),
		"Amount":          "85000000",
		"Fee":             "12",
	}, nil)
	explainer := New(item, senderAddress)

	description, err := explainer.Description()
	require.NoError(t, err)
	assert.Contains(t, description, "delivered 85 XRP")
	assert.Contains(t, description, receiverAddress)
	assert.Contains(t, description, "destination tag: 7")

	participants, err := explainer.Participants()
	require.NoError(t, err)
	require.NotNil(t, participants.Start)
	require.NotNil(t, participants.End)
	assert.Equal(t, senderAddress, participants.Start.Address)
	assert.Equal(t, receiverAddress, participants.End.Address)
	require.NotNil(t, participants.End.Tag)
	assert.Equal(t, uint32(7), *participants.End.Tag)
}

func TestPaymentExplainerMonetaryDetails(t *testing.T) {
	item := compose(t, map[string]any{
		"TransactionType": "Payment",
		"Account":         senderAddress,
		"Destination":     receiverAddress,
		"Amount":          "85000000",
		"Fee":             "12",
	}, map[string]any{
		"delivered_amount": "80000000",
	})

	details, err := New(item, senderAddress).MonetaryDetails()
	require.NoError(t, err)
	require.Len(t, details.Factor, 1)
	assert.Equal(t, "80", details.Factor[0].Value)
	assert.Equal(t, ImmediateEffect, details.Factor[0].Effect)
}

func TestExplainerOutputIsStable(t *testing.T) {
	item := compose(t, map[string]any{
		"TransactionType": "Payment",
		"Account":         senderAddress,
		"Destination":     receiverAddress,
		"Amount":          "85000000",
		"Fee":             "12",
	}, nil)
	explainer := New(item, senderAddress)

	first, err := explainer.Description()
	require.NoError(t, err)
	second, err := explainer.Description()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestPseudoTransactionsRefuseExplaining(t *testing.T) {
	item := compose(t, map[string]any{
		"TransactionType": "SignIn",
	}, nil)
	explainer := New(item, senderAddress)

	_, err := explainer.EventsLabel()
	assert.ErrorIs(t, err, ErrUnsupportedOperation)
	_, err = explainer.Description()
	assert.ErrorIs(t, err, ErrUnsupportedOperation)
	_, err = explainer.Participants()
	assert.ErrorIs(t, err, ErrUnsupportedOperation)
	_, err = explainer.MonetaryDetails()
	assert.ErrorIs(t, err, ErrUnsupportedOperation)
}

func TestFallbackExplainer(t *testing.T) {
	item := compose(t, map[string]any{
		"TransactionType": "SomethingBrandNew",
		"Account":         senderAddress,
		"Fee":             "12",
	}, nil)
	explainer := New(item, senderAddress)

	label, err := explainer.EventsLabel()
	require.NoError(t, err)
	assert.Equal(t, "SomethingBrandNew", label)

	description, err := explainer.Description()
	require.NoError(t, err)
	assert.Equal(t, "This is a SomethingBrandNew transaction.", description)

	participants, err := explainer.Participants()
	require.NoError(t, err)
	assert.Nil(t, participants.Start)
	assert.Nil(t, participants.End)
}

func TestTrustSetExplainer(t *testing.T) {
	issuer := "rIssuerBzZvg4wGSsbmcfnNLzEtMmIGXXXX"
	limit := func(value string) map[string]any {
		return map[string]any{
			"TransactionType": "TrustSet",
			"Account":         senderAddress,
			"Fee":             "12",
			"LimitAmount": map[string]any{
				"currency": "USD",
				"issuer":   issuer,
				"value":    value,
			},
		}
	}

	addLabel, err := New(compose(t, limit("1000"), nil), senderAddress).EventsLabel()
	require.NoError(t, err)
	assert.Equal(t, "Add Asset", addLabel)

	removeLabel, err := New(compose(t, limit("0"), nil), senderAddress).EventsLabel()
	require.NoError(t, err)
	assert.Equal(t, "Remove Asset", removeLabel)

	issuerLabel, err := New(compose(t, limit("1000"), nil), issuer).EventsLabel()
	require.NoError(t, err)
	assert.Equal(t, "Incoming Trust Line", issuerLabel)
}

func TestOfferCreateExplainer(t *testing.T) {
	item := compose(t, map[string]any{
		"TransactionType": "OfferCreate",
		"Account":         senderAddress,
		"Fee":             "12",
		"Sequence":        float64(7),
		"TakerGets":       "10000000",
		"TakerPays": map[string]any{
			"currency": "USD",
			"issuer":   "rIssuerBzZvg4wGSsbmcfnNLzEtMmIGXXXX",
			"value":    "20",
		},
	}, nil)
	explainer := New(item, senderAddress)

	label, err := explainer.EventsLabel()
	require.NoError(t, err)
	assert.Equal(t, "Create Offer", label)

	description, err := explainer.Description()
	require.NoError(t, err)
	assert.Contains(t, description, "pay 10 XRP")
	assert.Contains(t, description, "receive 20 USD")
	assert.Contains(t, description, "2 USD/XRP")

	details, err := explainer.MonetaryDetails()
	require.NoError(t, err)
	require.Len(t, details.Factor, 1)
	assert.Equal(t, "USD", details.Factor[0].Currency)
	assert.Equal(t, PotentialEffect, details.Factor[0].Effect)
}

func TestCheckCreateExplainer(t *testing.T) {
	item := compose(t, map[string]any{
		"TransactionType": "CheckCreate",
		"Account":         senderAddress,
		"Destination":     receiverAddress,
		"SendMax":         "50000000",
		"Fee":             "12",
	}, nil)
	explainer := New(item, senderAddress)

	description, err := explainer.Description()
	require.NoError(t, err)
	assert.Contains(t, description, "up to 50 XRP")

	details, err := explainer.MonetaryDetails()
	require.NoError(t, err)
	require.Len(t, details.Factor, 1)
	assert.Equal(t, PotentialEffect, details.Factor[0].Effect)
}

func TestAccountSetExplainerShapes(t *testing.T) {
	cancelTicket := compose(t, map[string]any{
		"TransactionType": "AccountSet",
		"Account":         senderAddress,
		"Fee":             "12",
		"Sequence":        float64(0),
		"TicketSequence":  float64(42),
	}, nil)
	label, err := New(cancelTicket, senderAddress).EventsLabel()
	require.NoError(t, err)
	assert.Equal(t, "Cancel Ticket", label)

	domainSet := compose(t, map[string]any{
		"TransactionType": "AccountSet",
		"Account":         senderAddress,
		"Fee":             "12",
		"Domain":          "6578616D706C652E636F6D",
	}, nil)
	description, err := New(domainSet, senderAddress).Description()
	require.NoError(t, err)
	assert.Contains(t, description, "example.com")
}
