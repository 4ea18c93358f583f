package txn

import (
	"time"

	"github.com/ledgerlens/ledgerlens/internal/ledger/fields"
	"github.com/ledgerlens/ledgerlens/internal/ledger/keylet"
	"github.com/ledgerlens/ledgerlens/internal/ledger/meta"
)

// OfferCreate places an order on the decentralized exchange.
type OfferCreate struct {
	*Base

	// status memoizes the reconstructed outcome; it never changes for a
	// given transaction.
	status *meta.OfferStatus
}

func init() {
	register(TypeOfferCreate, fields.Schema{
		"TakerGets":     {Kind: fields.AmountKind, Required: true},
		"TakerPays":     {Kind: fields.AmountKind, Required: true},
		"OfferSequence": {Kind: fields.UInt32},
		"Expiration":    {Kind: fields.UInt32, Codec: fields.RippleTime},
		"OfferID":       {Kind: fields.Hash256},
	}, func(b *Base) Transaction { return &OfferCreate{Base: b} })
}

func (t *OfferCreate) TakerGets() *fields.Amount { return t.amount("TakerGets") }
func (t *OfferCreate) TakerPays() *fields.Amount { return t.amount("TakerPays") }
func (t *OfferCreate) Expiration() *time.Time    { return t.timep("Expiration") }
func (t *OfferCreate) OfferID() string           { return t.str("OfferID") }

// OfferSequence is the sequence of an earlier offer this one replaces,
// defaulting to the transaction's own sequence.
func (t *OfferCreate) OfferSequence() *uint32 {
	if v := t.uint32p("OfferSequence"); v != nil {
		return v
	}
	return t.Sequence()
}

// Rate is the offer's exchange price expressed in the non-native (or pays)
// currency per unit.
func (t *OfferCreate) Rate() (float64, error) {
	gets, err := t.TakerGets().Decimal()
	if err != nil {
		return 0, err
	}
	pays, err := t.TakerPays().Decimal()
	if err != nil {
		return 0, err
	}
	rate := gets.Div(pays)
	if t.TakerGets().Currency == t.NativeAsset() {
		rate = pays.Div(gets)
	}
	f, _ := rate.Round(8).Float64()
	return f, nil
}

// Status reconstructs what happened to the offer from the metadata, seen
// from the owner's side. Offers touched by someone else's transaction were
// crossed, which reads as partially filled.
func (t *OfferCreate) Status(owner string) meta.OfferStatus {
	if t.status != nil {
		return *t.status
	}

	var status meta.OfferStatus
	switch {
	case owner != t.Account():
		status = meta.OfferPartiallyFilled
	case t.meta.Empty():
		// Without metadata nothing can be reconstructed; the fallthrough
		// classifier would misread the absence of an offer node as killed.
		status = meta.OfferStatusUnknown
	default:
		sequence := t.Sequence()
		if sequence == nil {
			status = meta.OfferStatusUnknown
			break
		}
		index, err := keylet.Offer(owner, *sequence)
		if err != nil {
			status = meta.OfferStatusUnknown
			break
		}
		status = t.meta.OfferStatusChange(owner, index)
	}

	t.status = &status
	return status
}

// OfferCancel withdraws an open offer by its sequence number.
type OfferCancel struct {
	*Base
}

func init() {
	register(TypeOfferCancel, fields.Schema{
		"OfferSequence": {Kind: fields.UInt32, Required: true},
		"OfferID":       {Kind: fields.Hash256},
	}, func(b *Base) Transaction { return &OfferCancel{Base: b} })
}

func (t *OfferCancel) OfferSequence() *uint32 { return t.uint32p("OfferSequence") }
func (t *OfferCancel) OfferID() string        { return t.str("OfferID") }
