package explain

import (
	"fmt"
	"strings"

	"github.com/ledgerlens/ledgerlens/internal/ledger/txn"
)

type payChannelCreateExplainer struct {
	explainer
	tx *txn.PaymentChannelCreate
}

func (e *payChannelCreateExplainer) EventsLabel() (string, error) {
	return "Open Payment Channel", nil
}

func (e *payChannelCreateExplainer) Description() (string, error) {
	amount := e.tx.Amount()

	var b strings.Builder
	fmt.Fprintf(&b, "%s opened a payment channel to %s funded with %s %s.",
		e.tx.Account(), e.tx.Destination(), amount.Value, NormalizeCurrencyCode(amount.Currency))
	if channel := e.tx.ChannelID(); channel != "" {
		fmt.Fprintf(&b, "\nThe channel ID is %s.", channel)
	}
	if delay := e.tx.SettleDelay(); delay != nil {
		fmt.Fprintf(&b, "\nThe channel's settle delay is %d seconds.", *delay)
	}
	if cancelAfter := e.tx.CancelAfter(); cancelAfter != nil {
		fmt.Fprintf(&b, "\nIt expires at %s.", cancelAfter.UTC().Format("2006-01-02 15:04:05 UTC"))
	}
	return b.String(), nil
}

func (e *payChannelCreateExplainer) Participants() (Participants, error) {
	return e.withEnd(e.tx.Destination(), e.tx.DestinationTag())
}

func (e *payChannelCreateExplainer) MonetaryDetails() (*MonetaryDetails, error) {
	return e.monetary(amountFactor(e.tx.Amount(), ImmediateEffect)...)
}

type payChannelFundExplainer struct {
	explainer
	tx *txn.PaymentChannelFund
}

func (e *payChannelFundExplainer) EventsLabel() (string, error) {
	return "Fund Payment Channel", nil
}

func (e *payChannelFundExplainer) Description() (string, error) {
	amount := e.tx.Amount()

	var b strings.Builder
	fmt.Fprintf(&b, "%s added %s %s to payment channel %s.",
		e.tx.Account(), amount.Value, NormalizeCurrencyCode(amount.Currency), e.tx.Channel())
	if expiration := e.tx.Expiration(); expiration != nil {
		fmt.Fprintf(&b, "\nThe channel's expiration moves to %s.",
			expiration.UTC().Format("2006-01-02 15:04:05 UTC"))
	}
	return b.String(), nil
}

func (e *payChannelFundExplainer) MonetaryDetails() (*MonetaryDetails, error) {
	return e.monetary(amountFactor(e.tx.Amount(), ImmediateEffect)...)
}

type payChannelClaimExplainer struct {
	explainer
	tx *txn.PaymentChannelClaim
}

func (e *payChannelClaimExplainer) EventsLabel() (string, error) {
	if e.tx.IsClosed() {
		return "Close Payment Channel", nil
	}
	return "Claim Payment Channel", nil
}

func (e *payChannelClaimExplainer) Description() (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s submitted a claim against payment channel %s.",
		e.tx.Account(), e.tx.Channel())
	if balance := e.tx.Balance(); balance != nil {
		fmt.Fprintf(&b, "\nThe channel balance after the claim is %s %s.",
			balance.Value, NormalizeCurrencyCode(balance.Currency))
	}
	if e.tx.IsClosed() {
		b.WriteString("\nThe channel was closed and its remaining funds returned.")
	}
	return b.String(), nil
}

func (e *payChannelClaimExplainer) MonetaryDetails() (*MonetaryDetails, error) {
	return e.monetary(amountFactor(e.tx.Balance(), ImmediateEffect)...)
}
