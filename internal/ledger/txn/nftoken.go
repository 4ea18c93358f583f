package txn

import (
	"time"

	"github.com/ledgerlens/ledgerlens/internal/ledger/fields"
)

// NFTokenMint issues a new non-fungible token into the minter's page.
type NFTokenMint struct {
	*Base
}

func init() {
	register(TypeNFTokenMint, fields.Schema{
		"NFTokenTaxon": {Kind: fields.UInt32, Required: true},
		"Issuer":       {Kind: fields.AccountID},
		"TransferFee":  {Kind: fields.UInt16, Codec: fields.TransferFee},
		"URI":          {Kind: fields.Blob},
	}, func(b *Base) Transaction { return &NFTokenMint{Base: b} })
}

func (t *NFTokenMint) NFTokenTaxon() uint32 {
	if v := t.uint32p("NFTokenTaxon"); v != nil {
		return *v
	}
	return 0
}

func (t *NFTokenMint) Issuer() string        { return t.str("Issuer") }
func (t *NFTokenMint) TransferFee() *float64 { return t.percent("TransferFee") }
func (t *NFTokenMint) URI() string           { return hexToUTF8(t.str("URI")) }

// NFTokenID is the minted token's identifier, recovered by diffing the
// token pages in the metadata.
func (t *NFTokenMint) NFTokenID() string {
	return t.meta.MintedNFTokenID()
}

// NFTokenBurn destroys a token held by the account (or one it may burn).
type NFTokenBurn struct {
	*Base
}

func init() {
	register(TypeNFTokenBurn, fields.Schema{
		"NFTokenID": {Kind: fields.Hash256, Required: true},
		"Owner":     {Kind: fields.AccountID},
	}, func(b *Base) Transaction { return &NFTokenBurn{Base: b} })
}

func (t *NFTokenBurn) NFTokenID() string { return t.str("NFTokenID") }
func (t *NFTokenBurn) Owner() string     { return t.str("Owner") }

// NFTokenCreateOffer posts a buy or sell offer for a token.
type NFTokenCreateOffer struct {
	*Base
}

func init() {
	register(TypeNFTokenCreateOffer, fields.Schema{
		"NFTokenID":   {Kind: fields.Hash256, Required: true},
		"Amount":      {Kind: fields.AmountKind, Required: true},
		"Owner":       {Kind: fields.AccountID},
		"Destination": {Kind: fields.AccountID},
		"Expiration":  {Kind: fields.UInt32, Codec: fields.RippleTime},
	}, func(b *Base) Transaction { return &NFTokenCreateOffer{Base: b} })
}

func (t *NFTokenCreateOffer) NFTokenID() string      { return t.str("NFTokenID") }
func (t *NFTokenCreateOffer) Amount() *fields.Amount { return t.amount("Amount") }
func (t *NFTokenCreateOffer) Owner() string          { return t.str("Owner") }
func (t *NFTokenCreateOffer) Destination() string    { return t.str("Destination") }
func (t *NFTokenCreateOffer) Expiration() *time.Time { return t.timep("Expiration") }

// IsSellOffer reports the tfSellNFToken flag.
func (t *NFTokenCreateOffer) IsSellOffer() bool {
	return t.Flags()&1 != 0
}

// NFTokenAcceptOffer takes an open token offer, or brokers a matched buy
// and sell pair.
type NFTokenAcceptOffer struct {
	*Base
}

func init() {
	register(TypeNFTokenAcceptOffer, fields.Schema{
		"NFTokenSellOffer": {Kind: fields.Hash256},
		"NFTokenBuyOffer":  {Kind: fields.Hash256},
		"NFTokenBrokerFee": {Kind: fields.AmountKind},
	}, func(b *Base) Transaction { return &NFTokenAcceptOffer{Base: b} })
}

func (t *NFTokenAcceptOffer) NFTokenSellOffer() string { return t.str("NFTokenSellOffer") }
func (t *NFTokenAcceptOffer) NFTokenBuyOffer() string  { return t.str("NFTokenBuyOffer") }
func (t *NFTokenAcceptOffer) NFTokenBrokerFee() *fields.Amount {
	return t.amount("NFTokenBrokerFee")
}

// NFTokenCancelOffer withdraws a batch of token offers.
type NFTokenCancelOffer struct {
	*Base
}

func init() {
	register(TypeNFTokenCancelOffer, fields.Schema{}, func(b *Base) Transaction {
		return &NFTokenCancelOffer{Base: b}
	})
}

// NFTokenOffers lists the offer indexes being cancelled. The field is a
// plain hash array, so it is read off the raw payload.
func (t *NFTokenCancelOffer) NFTokenOffers() []string {
	raw, _ := t.raw["NFTokenOffers"].([]any)
	offers := make([]string, 0, len(raw))
	for _, item := range raw {
		if id, ok := item.(string); ok {
			offers = append(offers, id)
		}
	}
	return offers
}

// NFTokenModify updates the mutable URI of an existing token.
type NFTokenModify struct {
	*Base
}

func init() {
	register(TypeNFTokenModify, fields.Schema{
		"NFTokenID": {Kind: fields.Hash256, Required: true},
		"Owner":     {Kind: fields.AccountID},
		"URI":       {Kind: fields.Blob},
	}, func(b *Base) Transaction { return &NFTokenModify{Base: b} })
}

func (t *NFTokenModify) NFTokenID() string { return t.str("NFTokenID") }
func (t *NFTokenModify) Owner() string     { return t.str("Owner") }
func (t *NFTokenModify) URI() string       { return hexToUTF8(t.str("URI")) }
