package txn

import (
	"github.com/ledgerlens/ledgerlens/internal/ledger/fields"
)

// Payment moves value from one account to another, natively or across
// currencies along a path.
type Payment struct {
	*Base
}

func init() {
	register(TypePayment, fields.Schema{
		"Destination":    {Kind: fields.AccountID, Required: true},
		"DestinationTag": {Kind: fields.UInt32},
		"Amount":         {Kind: fields.AmountKind},
		"DeliverMax":     {Kind: fields.AmountKind},
		"SendMax":        {Kind: fields.AmountKind},
		"DeliverMin":     {Kind: fields.AmountKind},
		"InvoiceID":      {Kind: fields.Hash256},
	}, func(b *Base) Transaction { return &Payment{Base: b} })
}

func (t *Payment) Destination() string     { return t.str("Destination") }
func (t *Payment) DestinationTag() *uint32 { return t.uint32p("DestinationTag") }
func (t *Payment) SendMax() *fields.Amount { return t.amount("SendMax") }
func (t *Payment) DeliverMin() *fields.Amount {
	return t.amount("DeliverMin")
}
func (t *Payment) InvoiceID() string { return t.str("InvoiceID") }

// Amount is the delivery amount; newer payloads spell it DeliverMax.
func (t *Payment) Amount() *fields.Amount {
	if a := t.amount("Amount"); a != nil {
		return a
	}
	return t.amount("DeliverMax")
}

// Paths is the raw path set; path steps are not schema-decoded.
func (t *Payment) Paths() []any {
	v, _ := t.raw["Paths"].([]any)
	return v
}

// DeliveredAmount is the amount actually delivered per the metadata, which
// differs from Amount for partial payments. Nil when the metadata does not
// record it.
func (t *Payment) DeliveredAmount() *fields.Amount {
	rawDelivered := t.meta.DeliveredAmount()
	if rawDelivered == nil || rawDelivered == "unavailable" {
		return nil
	}
	v, err := fields.Decode("DeliveredAmount", fields.Field{Kind: fields.AmountKind}, rawDelivered, t.opts)
	if err != nil {
		return nil
	}
	a := v.(fields.Amount)
	return &a
}

// Validate applies the payment business rules: a concrete positive amount,
// and no self-payment unless source and destination tags differ. Pathfinding
// payments are exempt, their delivery is decided by the path.
func (t *Payment) Validate() error {
	if len(t.Paths()) > 0 {
		return nil
	}
	amount := t.Amount()
	if amount == nil || amount.IsZero() {
		return &ValidationError{Reason: "payment requires a positive amount"}
	}
	if t.Destination() == t.Account() && !tagsDiffer(t.SourceTag(), t.DestinationTag()) {
		return &ValidationError{Reason: "payment source and destination are the same account"}
	}
	return nil
}

func tagsDiffer(source, destination *uint32) bool {
	if source == nil && destination == nil {
		return false
	}
	if source == nil || destination == nil {
		return true
	}
	return *source != *destination
}
