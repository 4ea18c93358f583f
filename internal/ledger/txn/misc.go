package txn

import (
	"github.com/ledgerlens/ledgerlens/internal/ledger/fields"
)

// Clawback recovers issued currency from a holder. The Amount's issuer
// field names the holder being clawed back from, not the issuing account.
type Clawback struct {
	*Base
}

func init() {
	register(TypeClawback, fields.Schema{
		"Amount": {Kind: fields.AmountKind, Required: true},
	}, func(b *Base) Transaction { return &Clawback{Base: b} })
}

func (t *Clawback) Amount() *fields.Amount { return t.amount("Amount") }

// Holder is the account the funds are recovered from.
func (t *Clawback) Holder() string {
	if amount := t.Amount(); amount != nil {
		return amount.Issuer
	}
	return ""
}

// EnableAmendment is a validator-produced transaction recording an
// amendment's status change.
type EnableAmendment struct {
	*Base
}

func init() {
	register(TypeEnableAmendment, fields.Schema{
		"Amendment":      {Kind: fields.Hash256, Required: true},
		"LedgerSequence": {Kind: fields.UInt32},
	}, func(b *Base) Transaction { return &EnableAmendment{Base: b} })
}

func (t *EnableAmendment) Amendment() string       { return t.str("Amendment") }
func (t *EnableAmendment) LedgerSequence() *uint32 { return t.uint32p("LedgerSequence") }
