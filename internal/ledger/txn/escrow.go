package txn

import (
	"time"

	"github.com/ledgerlens/ledgerlens/internal/ledger/fields"
)

// EscrowCreate locks an amount until a time or condition releases it.
type EscrowCreate struct {
	*Base
}

func init() {
	register(TypeEscrowCreate, fields.Schema{
		"Amount":         {Kind: fields.AmountKind, Required: true},
		"Destination":    {Kind: fields.AccountID, Required: true},
		"DestinationTag": {Kind: fields.UInt32},
		"CancelAfter":    {Kind: fields.UInt32, Codec: fields.RippleTime},
		"FinishAfter":    {Kind: fields.UInt32, Codec: fields.RippleTime},
		"Condition":      {Kind: fields.Blob},
	}, func(b *Base) Transaction { return &EscrowCreate{Base: b} })
}

func (t *EscrowCreate) Amount() *fields.Amount  { return t.amount("Amount") }
func (t *EscrowCreate) Destination() string     { return t.str("Destination") }
func (t *EscrowCreate) DestinationTag() *uint32 { return t.uint32p("DestinationTag") }
func (t *EscrowCreate) CancelAfter() *time.Time { return t.timep("CancelAfter") }
func (t *EscrowCreate) FinishAfter() *time.Time { return t.timep("FinishAfter") }
func (t *EscrowCreate) Condition() string       { return t.str("Condition") }

// EscrowFinish releases a held escrow to its destination.
type EscrowFinish struct {
	*Base
}

func init() {
	register(TypeEscrowFinish, fields.Schema{
		"Owner":         {Kind: fields.AccountID, Required: true},
		"OfferSequence": {Kind: fields.UInt32},
		"Condition":     {Kind: fields.Blob},
		"Fulfillment":   {Kind: fields.Blob},
		"EscrowID":      {Kind: fields.Hash256},
	}, func(b *Base) Transaction { return &EscrowFinish{Base: b} })
}

func (t *EscrowFinish) Owner() string          { return t.str("Owner") }
func (t *EscrowFinish) OfferSequence() *uint32 { return t.uint32p("OfferSequence") }
func (t *EscrowFinish) Condition() string      { return t.str("Condition") }
func (t *EscrowFinish) Fulfillment() string    { return t.str("Fulfillment") }
func (t *EscrowFinish) EscrowID() string       { return t.str("EscrowID") }

// Amount is the escrowed amount released to the destination, read from the
// metadata's deleted escrow entry.
func (t *EscrowFinish) Amount() *fields.Amount {
	return escrowedAmount(t.Base)
}

// EscrowCancel returns an expired escrow to its creator.
type EscrowCancel struct {
	*Base
}

func init() {
	register(TypeEscrowCancel, fields.Schema{
		"Owner":         {Kind: fields.AccountID, Required: true},
		"OfferSequence": {Kind: fields.UInt32},
		"EscrowID":      {Kind: fields.Hash256},
	}, func(b *Base) Transaction { return &EscrowCancel{Base: b} })
}

func (t *EscrowCancel) Owner() string          { return t.str("Owner") }
func (t *EscrowCancel) OfferSequence() *uint32 { return t.uint32p("OfferSequence") }
func (t *EscrowCancel) EscrowID() string       { return t.str("EscrowID") }

// Amount is the escrowed amount returned to the owner.
func (t *EscrowCancel) Amount() *fields.Amount {
	return escrowedAmount(t.Base)
}

func escrowedAmount(b *Base) *fields.Amount {
	for _, node := range b.meta.Nodes() {
		if node.LedgerEntryType != "Escrow" {
			continue
		}
		rawAmount := node.FinalFields["Amount"]
		if rawAmount == nil {
			rawAmount = node.NewFields["Amount"]
		}
		if rawAmount == nil {
			continue
		}
		v, err := fields.Decode("Amount", fields.Field{Kind: fields.AmountKind}, rawAmount, b.opts)
		if err != nil {
			return nil
		}
		a := v.(fields.Amount)
		return &a
	}
	return nil
}
