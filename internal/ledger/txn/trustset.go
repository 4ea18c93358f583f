package txn

import (
	"github.com/ledgerlens/ledgerlens/internal/ledger/fields"
)

// TrustSet creates, adjusts, or removes a trust line to an issuer.
type TrustSet struct {
	*Base
}

func init() {
	register(TypeTrustSet, fields.Schema{
		"LimitAmount": {Kind: fields.AmountKind, Required: true},
		"QualityIn":   {Kind: fields.UInt32},
		"QualityOut":  {Kind: fields.UInt32},
	}, func(b *Base) Transaction { return &TrustSet{Base: b} })
}

func (t *TrustSet) LimitAmount() *fields.Amount { return t.amount("LimitAmount") }
func (t *TrustSet) QualityIn() *uint32          { return t.uint32p("QualityIn") }
func (t *TrustSet) QualityOut() *uint32         { return t.uint32p("QualityOut") }

// Currency is the trust line's currency code, straight off the limit.
func (t *TrustSet) Currency() string {
	if limit := t.LimitAmount(); limit != nil {
		return limit.Currency
	}
	return ""
}

// Issuer is the counterparty the trust line points at.
func (t *TrustSet) Issuer() string {
	if limit := t.LimitAmount(); limit != nil {
		return limit.Issuer
	}
	return ""
}

// Limit is the trust amount ceiling.
func (t *TrustSet) Limit() string {
	if limit := t.LimitAmount(); limit != nil {
		return limit.Value
	}
	return ""
}

// IsRemoval reports whether the transaction zeroes the line limit, the
// conventional way of deleting a trust line.
func (t *TrustSet) IsRemoval() bool {
	limit := t.LimitAmount()
	return limit != nil && limit.IsZero()
}
