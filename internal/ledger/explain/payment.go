package explain

import (
	"fmt"
	"strings"

	"github.com/ledgerlens/ledgerlens/internal/ledger/txn"
)

type paymentExplainer struct {
	explainer
	tx *txn.Payment
}

func (e *paymentExplainer) EventsLabel() (string, error) {
	switch e.account {
	case e.tx.Account():
		return "Payment Sent", nil
	case e.tx.Destination():
		return "Payment Received", nil
	default:
		return "Payment", nil
	}
}

func (e *paymentExplainer) Description() (string, error) {
	var b strings.Builder

	amount := e.tx.Amount()
	if amount != nil {
		fmt.Fprintf(&b, "%s delivered %s %s to %s.",
			e.tx.Account(), amount.Value, NormalizeCurrencyCode(amount.Currency), e.tx.Destination())
	} else {
		fmt.Fprintf(&b, "%s sent a payment to %s.", e.tx.Account(), e.tx.Destination())
	}

	if delivered := e.tx.DeliveredAmount(); delivered != nil && amount != nil && delivered.Value != amount.Value {
		fmt.Fprintf(&b, "\nThe amount actually delivered was %s %s.",
			delivered.Value, NormalizeCurrencyCode(delivered.Currency))
	}
	if tag := e.tx.DestinationTag(); tag != nil {
		fmt.Fprintf(&b, "\nThe payment has a destination tag: %d.", *tag)
	}
	if invoice := e.tx.InvoiceID(); invoice != "" {
		fmt.Fprintf(&b, "\nThe payment references invoice %s.", invoice)
	}

	return b.String(), nil
}

func (e *paymentExplainer) Participants() (Participants, error) {
	return e.withEnd(e.tx.Destination(), e.tx.DestinationTag())
}

func (e *paymentExplainer) MonetaryDetails() (*MonetaryDetails, error) {
	amount := e.tx.DeliveredAmount()
	if amount == nil {
		amount = e.tx.Amount()
	}
	return e.monetary(amountFactor(amount, ImmediateEffect)...)
}

type remitExplainer struct {
	explainer
	tx *txn.Remit
}

func (e *remitExplainer) EventsLabel() (string, error) {
	if e.account == e.tx.Destination() {
		return "Remit Received", nil
	}
	return "Remit Sent", nil
}

func (e *remitExplainer) Description() (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s remitted to %s.", e.tx.Account(), e.tx.Destination())

	for _, amount := range e.tx.Amounts() {
		fmt.Fprintf(&b, "\nIt sends %s %s.", amount.Value, NormalizeCurrencyCode(amount.Currency))
	}
	if ids := e.tx.URITokenIDs(); len(ids) > 0 {
		fmt.Fprintf(&b, "\nIt transfers %d URI token(s).", len(ids))
	}
	if e.tx.MintURIToken() != nil {
		b.WriteString("\nIt also mints a URI token for the destination.")
	}

	return b.String(), nil
}

func (e *remitExplainer) Participants() (Participants, error) {
	return e.withEnd(e.tx.Destination(), e.tx.DestinationTag())
}

func (e *remitExplainer) MonetaryDetails() (*MonetaryDetails, error) {
	var factors []Factor
	for _, amount := range e.tx.Amounts() {
		factors = append(factors, Factor{
			Currency: amount.Currency,
			Issuer:   amount.Issuer,
			Value:    amount.Value,
			Effect:   ImmediateEffect,
		})
	}
	return e.monetary(factors...)
}

type genesisMintExplainer struct {
	explainer
	tx *txn.GenesisMint
}

func (e *genesisMintExplainer) EventsLabel() (string, error) { return "Genesis Mint", nil }

func (e *genesisMintExplainer) Description() (string, error) {
	var b strings.Builder
	b.WriteString("This is a genesis distribution.")
	for _, mint := range e.tx.Mints() {
		if mint.Amount != nil {
			fmt.Fprintf(&b, "\nIt mints %s %s to %s.",
				mint.Amount.Value, NormalizeCurrencyCode(mint.Amount.Currency), mint.Destination)
		}
	}
	return b.String(), nil
}

func (e *genesisMintExplainer) MonetaryDetails() (*MonetaryDetails, error) {
	var factors []Factor
	for _, mint := range e.tx.Mints() {
		if mint.Amount == nil {
			continue
		}
		factors = append(factors, Factor{
			Currency: mint.Amount.Currency,
			Value:    mint.Amount.Value,
			Effect:   ImmediateEffect,
		})
	}
	return e.monetary(factors...)
}

type clawbackExplainer struct {
	explainer
	tx *txn.Clawback
}

func (e *clawbackExplainer) EventsLabel() (string, error) { return "Clawback", nil }

func (e *clawbackExplainer) Description() (string, error) {
	amount := e.tx.Amount()
	if amount == nil {
		return fmt.Sprintf("%s clawed back issued funds.", e.tx.Account()), nil
	}
	return fmt.Sprintf("%s clawed back %s %s from %s.",
		e.tx.Account(), amount.Value, NormalizeCurrencyCode(amount.Currency), e.tx.Holder()), nil
}

func (e *clawbackExplainer) Participants() (Participants, error) {
	return e.withEnd(e.tx.Holder(), nil)
}

func (e *clawbackExplainer) MonetaryDetails() (*MonetaryDetails, error) {
	return e.monetary(amountFactor(e.tx.Amount(), ImmediateEffect)...)
}

type importExplainer struct {
	explainer
	tx *txn.Import
}

func (e *importExplainer) EventsLabel() (string, error) { return "Import", nil }

func (e *importExplainer) Description() (string, error) {
	if issuer := e.tx.Issuer(); issuer != "" {
		return fmt.Sprintf("%s imported a proven transaction issued by %s.", e.tx.Account(), issuer), nil
	}
	return fmt.Sprintf("%s imported a proven transaction from another network.", e.tx.Account()), nil
}

type invokeExplainer struct {
	explainer
	tx *txn.Invoke
}

func (e *invokeExplainer) EventsLabel() (string, error) { return "Invoke", nil }

func (e *invokeExplainer) Description() (string, error) {
	if destination := e.tx.Destination(); destination != "" {
		return fmt.Sprintf("%s invoked the hooks of %s.", e.tx.Account(), destination), nil
	}
	return fmt.Sprintf("%s invoked its hooks.", e.tx.Account()), nil
}

func (e *invokeExplainer) Participants() (Participants, error) {
	return e.withEnd(e.tx.Destination(), e.tx.DestinationTag())
}
