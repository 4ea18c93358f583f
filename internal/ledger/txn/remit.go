package txn

import (
	"github.com/ledgerlens/ledgerlens/internal/ledger/fields"
)

// Remit sends multiple amounts and URI tokens to one destination in a
// single transaction, and can mint a token on the way.
type Remit struct {
	*Base
}

func init() {
	register(TypeRemit, fields.Schema{
		"Destination":    {Kind: fields.AccountID, Required: true},
		"DestinationTag": {Kind: fields.UInt32},
		"Amounts":        {Kind: fields.STArray},
		"Inform":         {Kind: fields.AccountID},
		"InvoiceID":      {Kind: fields.Hash256},
		"Blob":           {Kind: fields.Blob},
	}, func(b *Base) Transaction { return &Remit{Base: b} })
}

func (t *Remit) Destination() string     { return t.str("Destination") }
func (t *Remit) DestinationTag() *uint32 { return t.uint32p("DestinationTag") }
func (t *Remit) Inform() string          { return t.str("Inform") }
func (t *Remit) InvoiceID() string       { return t.str("InvoiceID") }
func (t *Remit) Blob() string            { return t.str("Blob") }

// Amounts lists the sent amounts, unwrapped from their AmountEntry
// envelopes.
func (t *Remit) Amounts() []fields.Amount {
	var amounts []fields.Amount
	for _, wrapper := range t.objects("Amounts") {
		inner, ok := wrapper["AmountEntry"].(map[string]any)
		if !ok {
			continue
		}
		rawAmount, ok := inner["Amount"]
		if !ok {
			continue
		}
		v, err := fields.Decode("Amount", fields.Field{Kind: fields.AmountKind}, rawAmount, t.opts)
		if err != nil {
			continue
		}
		amounts = append(amounts, v.(fields.Amount))
	}
	return amounts
}

// URITokenIDs lists the existing URI tokens transferred along.
func (t *Remit) URITokenIDs() []string {
	raw, _ := t.raw["URITokenIDs"].([]any)
	ids := make([]string, 0, len(raw))
	for _, item := range raw {
		if id, ok := item.(string); ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// MintURIToken is the inline mint request carried by the transaction, nil
// when it only transfers.
func (t *Remit) MintURIToken() map[string]any {
	v, _ := t.raw["MintURIToken"].(map[string]any)
	return v
}
