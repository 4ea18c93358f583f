package explain

import (
	"fmt"
	"strings"

	"github.com/ledgerlens/ledgerlens/internal/ledger/txn"
)

type escrowCreateExplainer struct {
	explainer
	tx *txn.EscrowCreate
}

func (e *escrowCreateExplainer) EventsLabel() (string, error) { return "Create Escrow", nil }

func (e *escrowCreateExplainer) Description() (string, error) {
	amount := e.tx.Amount()

	var b strings.Builder
	fmt.Fprintf(&b, "%s escrowed %s %s for %s.",
		e.tx.Account(), amount.Value, NormalizeCurrencyCode(amount.Currency), e.tx.Destination())
	if finishAfter := e.tx.FinishAfter(); finishAfter != nil {
		fmt.Fprintf(&b, "\nIt can be finished after %s.",
			finishAfter.UTC().Format("2006-01-02 15:04:05 UTC"))
	}
	if cancelAfter := e.tx.CancelAfter(); cancelAfter != nil {
		fmt.Fprintf(&b, "\nIt expires at %s if not finished before then.",
			cancelAfter.UTC().Format("2006-01-02 15:04:05 UTC"))
	}
	if e.tx.Condition() != "" {
		b.WriteString("\nFinishing it requires a cryptographic fulfillment.")
	}
	return b.String(), nil
}

func (e *escrowCreateExplainer) Participants() (Participants, error) {
	return e.withEnd(e.tx.Destination(), e.tx.DestinationTag())
}

func (e *escrowCreateExplainer) MonetaryDetails() (*MonetaryDetails, error) {
	return e.monetary(amountFactor(e.tx.Amount(), PotentialEffect)...)
}

type escrowFinishExplainer struct {
	explainer
	tx *txn.EscrowFinish
}

func (e *escrowFinishExplainer) EventsLabel() (string, error) { return "Finish Escrow", nil }

func (e *escrowFinishExplainer) Description() (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s finished an escrow created by %s.", e.tx.Account(), e.tx.Owner())
	if amount := e.tx.Amount(); amount != nil {
		fmt.Fprintf(&b, "\nThe escrowed amount of %s %s was released to its destination.",
			amount.Value, NormalizeCurrencyCode(amount.Currency))
	}
	return b.String(), nil
}

func (e *escrowFinishExplainer) Participants() (Participants, error) {
	return e.withEnd(e.tx.Owner(), nil)
}

func (e *escrowFinishExplainer) MonetaryDetails() (*MonetaryDetails, error) {
	return e.monetary(amountFactor(e.tx.Amount(), NoEffect)...)
}

type escrowCancelExplainer struct {
	explainer
	tx *txn.EscrowCancel
}

func (e *escrowCancelExplainer) EventsLabel() (string, error) { return "Cancel Escrow", nil }

func (e *escrowCancelExplainer) Description() (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s cancelled an escrow created by %s.", e.tx.Account(), e.tx.Owner())
	if amount := e.tx.Amount(); amount != nil {
		fmt.Fprintf(&b, "\nThe escrowed amount of %s %s was returned to its creator.",
			amount.Value, NormalizeCurrencyCode(amount.Currency))
	}
	return b.String(), nil
}

func (e *escrowCancelExplainer) Participants() (Participants, error) {
	return e.withEnd(e.tx.Owner(), nil)
}

func (e *escrowCancelExplainer) MonetaryDetails() (*MonetaryDetails, error) {
	return e.monetary(amountFactor(e.tx.Amount(), NoEffect)...)
}
