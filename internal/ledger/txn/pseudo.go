package txn

import (
	"github.com/ledgerlens/ledgerlens/internal/ledger/fields"
)

// SignIn is a signing request carrying no ledger operation at all; it only
// proves control of a key.
type SignIn struct {
	*Base
}

func init() {
	registerPseudo(TypeSignIn, fields.Schema{}, func(b *Base) Transaction {
		return &SignIn{Base: b}
	})
}

// PaymentChannelAuthorize signs a claim authorization off-ledger; it is
// never submitted as a transaction.
type PaymentChannelAuthorize struct {
	*Base
}

func init() {
	registerPseudo(TypePaymentChannelAuthorize, fields.Schema{
		"Channel": {Kind: fields.Hash256},
		"Amount":  {Kind: fields.AmountKind},
	}, func(b *Base) Transaction { return &PaymentChannelAuthorize{Base: b} })
}

func (t *PaymentChannelAuthorize) Channel() string        { return t.str("Channel") }
func (t *PaymentChannelAuthorize) Amount() *fields.Amount { return t.amount("Amount") }
