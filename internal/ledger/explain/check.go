package explain

import (
	"fmt"
	"strings"

	"github.com/ledgerlens/ledgerlens/internal/ledger/txn"
)

type checkCreateExplainer struct {
	explainer
	tx *txn.CheckCreate
}

func (e *checkCreateExplainer) EventsLabel() (string, error) { return "Create Check", nil }

func (e *checkCreateExplainer) Description() (string, error) {
	sendMax := e.tx.SendMax()

	var b strings.Builder
	fmt.Fprintf(&b, "%s wrote a check for up to %s %s, cashable by %s.",
		e.tx.Account(), sendMax.Value, NormalizeCurrencyCode(sendMax.Currency), e.tx.Destination())
	if expiration := e.tx.Expiration(); expiration != nil {
		fmt.Fprintf(&b, "\nThe check expires at %s.",
			expiration.UTC().Format("2006-01-02 15:04:05 UTC"))
	}
	if invoice := e.tx.InvoiceID(); invoice != "" {
		fmt.Fprintf(&b, "\nThe check references invoice %s.", invoice)
	}
	return b.String(), nil
}

func (e *checkCreateExplainer) Participants() (Participants, error) {
	return e.withEnd(e.tx.Destination(), e.tx.DestinationTag())
}

func (e *checkCreateExplainer) MonetaryDetails() (*MonetaryDetails, error) {
	return e.monetary(amountFactor(e.tx.SendMax(), PotentialEffect)...)
}

type checkCashExplainer struct {
	explainer
	tx *txn.CheckCash
}

func (e *checkCashExplainer) EventsLabel() (string, error) { return "Cash Check", nil }

func (e *checkCashExplainer) Description() (string, error) {
	if amount := e.tx.Amount(); amount != nil {
		return fmt.Sprintf("%s cashed check %s for %s %s.",
			e.tx.Account(), e.tx.CheckID(), amount.Value, NormalizeCurrencyCode(amount.Currency)), nil
	}
	if deliverMin := e.tx.DeliverMin(); deliverMin != nil {
		return fmt.Sprintf("%s cashed check %s for at least %s %s.",
			e.tx.Account(), e.tx.CheckID(), deliverMin.Value, NormalizeCurrencyCode(deliverMin.Currency)), nil
	}
	return fmt.Sprintf("%s cashed check %s.", e.tx.Account(), e.tx.CheckID()), nil
}

func (e *checkCashExplainer) MonetaryDetails() (*MonetaryDetails, error) {
	amount := e.tx.Amount()
	if amount == nil {
		amount = e.tx.DeliverMin()
	}
	return e.monetary(amountFactor(amount, ImmediateEffect)...)
}

type checkCancelExplainer struct {
	explainer
	tx *txn.CheckCancel
}

func (e *checkCancelExplainer) EventsLabel() (string, error) { return "Cancel Check", nil }

func (e *checkCancelExplainer) Description() (string, error) {
	return fmt.Sprintf("%s cancelled check %s.", e.tx.Account(), e.tx.CheckID()), nil
}
