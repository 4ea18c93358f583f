package txn

import (
	"github.com/ledgerlens/ledgerlens/internal/ledger/fields"
	"github.com/ledgerlens/ledgerlens/internal/ledger/meta"
)

// URITokenMint issues a URI token, optionally with an attached sell offer.
type URITokenMint struct {
	*Base
}

func init() {
	register(TypeURITokenMint, fields.Schema{
		"URI":         {Kind: fields.Blob, Required: true},
		"Digest":      {Kind: fields.Hash256},
		"Amount":      {Kind: fields.AmountKind},
		"Destination": {Kind: fields.AccountID},
	}, func(b *Base) Transaction { return &URITokenMint{Base: b} })
}

func (t *URITokenMint) URI() string            { return hexToUTF8(t.str("URI")) }
func (t *URITokenMint) Digest() string         { return t.str("Digest") }
func (t *URITokenMint) Amount() *fields.Amount { return t.amount("Amount") }
func (t *URITokenMint) Destination() string    { return t.str("Destination") }

// IsBurnable reports the tfBurnable flag, which lets the issuer reclaim the
// token later.
func (t *URITokenMint) IsBurnable() bool {
	return t.Flags()&1 != 0
}

// URITokenID is the minted token's ledger index, read from the metadata.
func (t *URITokenMint) URITokenID() string {
	for _, node := range t.meta.Nodes() {
		if node.Diff == meta.CreatedNode && node.LedgerEntryType == "URIToken" {
			return node.LedgerIndex
		}
	}
	return ""
}

// URITokenBurn destroys a URI token.
type URITokenBurn struct {
	*Base
}

func init() {
	register(TypeURITokenBurn, fields.Schema{
		"URITokenID": {Kind: fields.Hash256, Required: true},
	}, func(b *Base) Transaction { return &URITokenBurn{Base: b} })
}

func (t *URITokenBurn) URITokenID() string { return t.str("URITokenID") }

// URITokenBuy accepts a URI token's sell offer at its asking amount.
type URITokenBuy struct {
	*Base
}

func init() {
	register(TypeURITokenBuy, fields.Schema{
		"URITokenID": {Kind: fields.Hash256, Required: true},
		"Amount":     {Kind: fields.AmountKind, Required: true},
	}, func(b *Base) Transaction { return &URITokenBuy{Base: b} })
}

func (t *URITokenBuy) URITokenID() string     { return t.str("URITokenID") }
func (t *URITokenBuy) Amount() *fields.Amount { return t.amount("Amount") }

// URITokenCreateSellOffer lists a held URI token for sale.
type URITokenCreateSellOffer struct {
	*Base
}

func init() {
	register(TypeURITokenCreateSellOffer, fields.Schema{
		"URITokenID":  {Kind: fields.Hash256, Required: true},
		"Amount":      {Kind: fields.AmountKind, Required: true},
		"Destination": {Kind: fields.AccountID},
	}, func(b *Base) Transaction { return &URITokenCreateSellOffer{Base: b} })
}

func (t *URITokenCreateSellOffer) URITokenID() string     { return t.str("URITokenID") }
func (t *URITokenCreateSellOffer) Amount() *fields.Amount { return t.amount("Amount") }
func (t *URITokenCreateSellOffer) Destination() string    { return t.str("Destination") }

// URITokenCancelSellOffer withdraws a token's open sell offer.
type URITokenCancelSellOffer struct {
	*Base
}

func init() {
	register(TypeURITokenCancelSellOffer, fields.Schema{
		"URITokenID": {Kind: fields.Hash256, Required: true},
	}, func(b *Base) Transaction { return &URITokenCancelSellOffer{Base: b} })
}

func (t *URITokenCancelSellOffer) URITokenID() string { return t.str("URITokenID") }
