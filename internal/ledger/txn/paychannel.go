package txn

import (
	"time"

	"github.com/ledgerlens/ledgerlens/internal/ledger/fields"
	"github.com/ledgerlens/ledgerlens/internal/ledger/meta"
)

// PaymentChannelCreate opens a unidirectional payment channel.
type PaymentChannelCreate struct {
	*Base
}

func init() {
	register(TypePaymentChannelCreate, fields.Schema{
		"Amount":         {Kind: fields.AmountKind, Required: true},
		"Destination":    {Kind: fields.AccountID, Required: true},
		"DestinationTag": {Kind: fields.UInt32},
		"SettleDelay":    {Kind: fields.UInt32},
		"PublicKey":      {Kind: fields.Blob},
		"CancelAfter":    {Kind: fields.UInt32, Codec: fields.RippleTime},
	}, func(b *Base) Transaction { return &PaymentChannelCreate{Base: b} })
}

func (t *PaymentChannelCreate) Amount() *fields.Amount  { return t.amount("Amount") }
func (t *PaymentChannelCreate) Destination() string     { return t.str("Destination") }
func (t *PaymentChannelCreate) DestinationTag() *uint32 { return t.uint32p("DestinationTag") }
func (t *PaymentChannelCreate) SettleDelay() *uint32    { return t.uint32p("SettleDelay") }
func (t *PaymentChannelCreate) PublicKey() string       { return t.str("PublicKey") }
func (t *PaymentChannelCreate) CancelAfter() *time.Time { return t.timep("CancelAfter") }

// ChannelID is the created channel's ledger index, read from the metadata.
func (t *PaymentChannelCreate) ChannelID() string {
	for _, node := range t.meta.Nodes() {
		if node.Diff == meta.CreatedNode && node.LedgerEntryType == "PayChannel" {
			return node.LedgerIndex
		}
	}
	return ""
}

// PaymentChannelFund adds value or extends the expiration of a channel.
type PaymentChannelFund struct {
	*Base
}

func init() {
	register(TypePaymentChannelFund, fields.Schema{
		"Channel":    {Kind: fields.Hash256, Required: true},
		"Amount":     {Kind: fields.AmountKind, Required: true},
		"Expiration": {Kind: fields.UInt32, Codec: fields.RippleTime},
	}, func(b *Base) Transaction { return &PaymentChannelFund{Base: b} })
}

func (t *PaymentChannelFund) Channel() string        { return t.str("Channel") }
func (t *PaymentChannelFund) Amount() *fields.Amount { return t.amount("Amount") }
func (t *PaymentChannelFund) Expiration() *time.Time { return t.timep("Expiration") }

// PaymentChannelClaim redeems a signed claim against a channel, or closes
// it.
type PaymentChannelClaim struct {
	*Base
}

func init() {
	register(TypePaymentChannelClaim, fields.Schema{
		"Channel":   {Kind: fields.Hash256, Required: true},
		"Balance":   {Kind: fields.AmountKind},
		"Amount":    {Kind: fields.AmountKind},
		"Signature": {Kind: fields.Blob},
		"PublicKey": {Kind: fields.Blob},
	}, func(b *Base) Transaction { return &PaymentChannelClaim{Base: b} })
}

func (t *PaymentChannelClaim) Channel() string         { return t.str("Channel") }
func (t *PaymentChannelClaim) Balance() *fields.Amount { return t.amount("Balance") }
func (t *PaymentChannelClaim) Amount() *fields.Amount  { return t.amount("Amount") }
func (t *PaymentChannelClaim) Signature() string       { return t.str("Signature") }
func (t *PaymentChannelClaim) PublicKey() string       { return t.str("PublicKey") }

// IsClosed reports whether the claim closed the channel, observable as a
// deleted PayChannel entry in the metadata.
func (t *PaymentChannelClaim) IsClosed() bool {
	for _, node := range t.meta.Nodes() {
		if node.Diff == meta.DeletedNode && node.LedgerEntryType == "PayChannel" {
			return true
		}
	}
	return false
}
