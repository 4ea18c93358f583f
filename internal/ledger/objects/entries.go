package objects

import (
	"encoding/hex"
	"time"

	"github.com/ledgerlens/ledgerlens/internal/ledger/fields"
)

// Check is a deferred payment entry waiting to be cashed or cancelled.
type Check struct {
	expirable
}

func init() {
	register(TypeCheck, fields.Schema{
		"Account":        {Kind: fields.AccountID, Required: true},
		"Destination":    {Kind: fields.AccountID, Required: true},
		"DestinationTag": {Kind: fields.UInt32},
		"SourceTag":      {Kind: fields.UInt32},
		"SendMax":        {Kind: fields.AmountKind, Required: true},
		"Sequence":       {Kind: fields.UInt32},
		"Expiration":     {Kind: fields.UInt32, Codec: fields.RippleTime},
		"InvoiceID":      {Kind: fields.Hash256},
	}, func(b *Base) Object { return &Check{expirable: expirable{Base: b}} })
}

func (o *Check) Account() string         { return o.str("Account") }
func (o *Check) Destination() string     { return o.str("Destination") }
func (o *Check) DestinationTag() *uint32 { return o.uint32p("DestinationTag") }
func (o *Check) SourceTag() *uint32      { return o.uint32p("SourceTag") }
func (o *Check) SendMax() *fields.Amount { return o.amount("SendMax") }
func (o *Check) Sequence() *uint32       { return o.uint32p("Sequence") }
func (o *Check) InvoiceID() string       { return o.str("InvoiceID") }

// Escrow is a conditional hold of funds between two accounts.
type Escrow struct {
	*Base
}

func init() {
	register(TypeEscrow, fields.Schema{
		"Account":        {Kind: fields.AccountID, Required: true},
		"Destination":    {Kind: fields.AccountID, Required: true},
		"Amount":         {Kind: fields.AmountKind, Required: true},
		"Condition":      {Kind: fields.Blob},
		"CancelAfter":    {Kind: fields.UInt32, Codec: fields.RippleTime},
		"FinishAfter":    {Kind: fields.UInt32, Codec: fields.RippleTime},
		"DestinationTag": {Kind: fields.UInt32},
		"SourceTag":      {Kind: fields.UInt32},
	}, func(b *Base) Object { return &Escrow{Base: b} })
}

func (o *Escrow) Account() string         { return o.str("Account") }
func (o *Escrow) Destination() string     { return o.str("Destination") }
func (o *Escrow) DestinationTag() *uint32 { return o.uint32p("DestinationTag") }
func (o *Escrow) SourceTag() *uint32      { return o.uint32p("SourceTag") }
func (o *Escrow) Amount() *fields.Amount  { return o.amount("Amount") }
func (o *Escrow) Condition() string       { return o.str("Condition") }
func (o *Escrow) CancelAfter() *time.Time { return o.timep("CancelAfter") }
func (o *Escrow) FinishAfter() *time.Time { return o.timep("FinishAfter") }

// Date is the escrow's next relevant instant: when it can be finished, or
// failing that when it can be cancelled.
func (o *Escrow) Date() *time.Time {
	if finish := o.FinishAfter(); finish != nil {
		return finish
	}
	return o.CancelAfter()
}

// IsExpired reports whether the escrow's cancel deadline has passed.
func (o *Escrow) IsExpired() bool {
	cancel := o.CancelAfter()
	return cancel != nil && cancel.Before(time.Now())
}

// Offer is an open order on the decentralized exchange.
type Offer struct {
	expirable
}

func init() {
	register(TypeOffer, fields.Schema{
		"Account":       {Kind: fields.AccountID, Required: true},
		"TakerGets":     {Kind: fields.AmountKind, Required: true},
		"TakerPays":     {Kind: fields.AmountKind, Required: true},
		"Sequence":      {Kind: fields.UInt32},
		"Expiration":    {Kind: fields.UInt32, Codec: fields.RippleTime},
		"BookNode":      {Kind: fields.UInt64},
		"BookDirectory": {Kind: fields.Hash256},
	}, func(b *Base) Object { return &Offer{expirable: expirable{Base: b}} })
}

func (o *Offer) Account() string           { return o.str("Account") }
func (o *Offer) TakerGets() *fields.Amount { return o.amount("TakerGets") }
func (o *Offer) TakerPays() *fields.Amount { return o.amount("TakerPays") }
func (o *Offer) Sequence() *uint32         { return o.uint32p("Sequence") }

// NFTokenOffer is an open buy or sell offer for a non-fungible token.
type NFTokenOffer struct {
	expirable
}

func init() {
	register(TypeNFTokenOffer, fields.Schema{
		"Owner":       {Kind: fields.AccountID, Required: true},
		"NFTokenID":   {Kind: fields.Hash256, Required: true},
		"Amount":      {Kind: fields.AmountKind, Required: true},
		"Destination": {Kind: fields.AccountID},
		"Expiration":  {Kind: fields.UInt32, Codec: fields.RippleTime},
	}, func(b *Base) Object { return &NFTokenOffer{expirable: expirable{Base: b}} })
}

func (o *NFTokenOffer) Owner() string          { return o.str("Owner") }
func (o *NFTokenOffer) NFTokenID() string      { return o.str("NFTokenID") }
func (o *NFTokenOffer) Amount() *fields.Amount { return o.amount("Amount") }
func (o *NFTokenOffer) Destination() string    { return o.str("Destination") }

// IsSellOffer reports the lsfSellNFToken flag.
func (o *NFTokenOffer) IsSellOffer() bool { return o.Flags()&1 != 0 }

// PayChannel is an open unidirectional payment channel.
type PayChannel struct {
	expirable
}

func init() {
	register(TypePayChannel, fields.Schema{
		"Account":        {Kind: fields.AccountID, Required: true},
		"Destination":    {Kind: fields.AccountID, Required: true},
		"Amount":         {Kind: fields.AmountKind, Required: true},
		"Balance":        {Kind: fields.AmountKind},
		"SettleDelay":    {Kind: fields.UInt32},
		"PublicKey":      {Kind: fields.Blob},
		"Expiration":     {Kind: fields.UInt32, Codec: fields.RippleTime},
		"CancelAfter":    {Kind: fields.UInt32, Codec: fields.RippleTime},
		"DestinationTag": {Kind: fields.UInt32},
		"SourceTag":      {Kind: fields.UInt32},
	}, func(b *Base) Object { return &PayChannel{expirable: expirable{Base: b}} })
}

func (o *PayChannel) Account() string         { return o.str("Account") }
func (o *PayChannel) Destination() string     { return o.str("Destination") }
func (o *PayChannel) DestinationTag() *uint32 { return o.uint32p("DestinationTag") }
func (o *PayChannel) SourceTag() *uint32      { return o.uint32p("SourceTag") }
func (o *PayChannel) Amount() *fields.Amount  { return o.amount("Amount") }
func (o *PayChannel) Balance() *fields.Amount { return o.amount("Balance") }
func (o *PayChannel) SettleDelay() *uint32    { return o.uint32p("SettleDelay") }
func (o *PayChannel) PublicKey() string       { return o.str("PublicKey") }
func (o *PayChannel) CancelAfter() *time.Time { return o.timep("CancelAfter") }

// Ticket is a set-aside sequence number.
type Ticket struct {
	*Base
}

func init() {
	register(TypeTicket, fields.Schema{
		"Account":        {Kind: fields.AccountID, Required: true},
		"TicketSequence": {Kind: fields.UInt32, Required: true},
	}, func(b *Base) Object { return &Ticket{Base: b} })
}

func (o *Ticket) Account() string { return o.str("Account") }

func (o *Ticket) TicketSequence() uint32 {
	if v := o.uint32p("TicketSequence"); v != nil {
		return *v
	}
	return 0
}

// URIToken is a URI-bearing token entry, optionally carrying an open sell
// offer.
type URIToken struct {
	*Base
}

func init() {
	register(TypeURIToken, fields.Schema{
		"Owner":       {Kind: fields.AccountID, Required: true},
		"Issuer":      {Kind: fields.AccountID, Required: true},
		"URI":         {Kind: fields.Blob, Required: true},
		"Digest":      {Kind: fields.Hash256},
		"Amount":      {Kind: fields.AmountKind},
		"Destination": {Kind: fields.AccountID},
	}, func(b *Base) Object { return &URIToken{Base: b} })
}

func (o *URIToken) Owner() string          { return o.str("Owner") }
func (o *URIToken) Issuer() string         { return o.str("Issuer") }
func (o *URIToken) Digest() string         { return o.str("Digest") }
func (o *URIToken) Amount() *fields.Amount { return o.amount("Amount") }
func (o *URIToken) Destination() string    { return o.str("Destination") }

// URI is the token's target, hex on the wire.
func (o *URIToken) URI() string {
	raw := o.str("URI")
	decoded, err := hex.DecodeString(raw)
	if err != nil {
		return raw
	}
	return string(decoded)
}

// ForSale reports whether the token carries an open sell offer.
func (o *URIToken) ForSale() bool { return o.Amount() != nil }

// DepositPreauthObj is a stored deposit preauthorization.
type DepositPreauthObj struct {
	*Base
}

func init() {
	register(TypeDepositPreauth, fields.Schema{
		"Account":   {Kind: fields.AccountID, Required: true},
		"Authorize": {Kind: fields.AccountID, Required: true},
	}, func(b *Base) Object { return &DepositPreauthObj{Base: b} })
}

func (o *DepositPreauthObj) Account() string   { return o.str("Account") }
func (o *DepositPreauthObj) Authorize() string { return o.str("Authorize") }
