package txn

import (
	"time"

	"github.com/ledgerlens/ledgerlens/internal/ledger/fields"
)

// CheckCreate writes a deferred payment the destination may cash later.
type CheckCreate struct {
	*Base
}

func init() {
	register(TypeCheckCreate, fields.Schema{
		"Destination":    {Kind: fields.AccountID, Required: true},
		"SendMax":        {Kind: fields.AmountKind, Required: true},
		"DestinationTag": {Kind: fields.UInt32},
		"Expiration":     {Kind: fields.UInt32, Codec: fields.RippleTime},
		"InvoiceID":      {Kind: fields.Hash256},
	}, func(b *Base) Transaction { return &CheckCreate{Base: b} })
}

func (t *CheckCreate) Destination() string     { return t.str("Destination") }
func (t *CheckCreate) DestinationTag() *uint32 { return t.uint32p("DestinationTag") }
func (t *CheckCreate) SendMax() *fields.Amount { return t.amount("SendMax") }
func (t *CheckCreate) Expiration() *time.Time  { return t.timep("Expiration") }
func (t *CheckCreate) InvoiceID() string       { return t.str("InvoiceID") }

// IsExpired reports whether the check's expiration has passed. A check
// without an expiration never expires.
func (t *CheckCreate) IsExpired() bool {
	expiration := t.Expiration()
	return expiration != nil && expiration.Before(time.Now())
}

// CheckCash redeems a check for an exact amount or a minimum.
type CheckCash struct {
	*Base
}

func init() {
	register(TypeCheckCash, fields.Schema{
		"CheckID":    {Kind: fields.Hash256, Required: true},
		"Amount":     {Kind: fields.AmountKind},
		"DeliverMin": {Kind: fields.AmountKind},
	}, func(b *Base) Transaction { return &CheckCash{Base: b} })
}

func (t *CheckCash) CheckID() string            { return t.str("CheckID") }
func (t *CheckCash) Amount() *fields.Amount     { return t.amount("Amount") }
func (t *CheckCash) DeliverMin() *fields.Amount { return t.amount("DeliverMin") }

// CheckCancel voids a check before it is cashed.
type CheckCancel struct {
	*Base
}

func init() {
	register(TypeCheckCancel, fields.Schema{
		"CheckID": {Kind: fields.Hash256, Required: true},
	}, func(b *Base) Transaction { return &CheckCancel{Base: b} })
}

func (t *CheckCancel) CheckID() string { return t.str("CheckID") }

// Validate applies the cancellation rule against the targeted check's
// parties: before expiry only the check's creator or destination may cancel;
// once expired anyone may.
func (t *CheckCancel) Validate(checkOwner, checkDestination string, expiration *time.Time) error {
	if expiration != nil && expiration.Before(time.Now()) {
		return nil
	}
	account := t.Account()
	if account == checkOwner || account == checkDestination {
		return nil
	}
	return &ValidationError{Reason: "only the check creator or destination can cancel an unexpired check"}
}
