package txn

import (
	"github.com/ledgerlens/ledgerlens/internal/ledger/fields"
)

// ammTx is the shared surface of AMM transactions: the asset pair plus the
// pool's pseudo-account resolved from the metadata.
type ammTx struct {
	*Base
}

func (t *ammTx) Asset() *fields.Issue  { return t.issue("Asset") }
func (t *ammTx) Asset2() *fields.Issue { return t.issue("Asset2") }

// AMMAccount is the pool's pseudo-account address, resolved from the AMM
// entry the transaction touched. Empty when the metadata carries none.
func (t *ammTx) AMMAccount() string {
	return t.meta.AMMAccountID()
}

var ammPairSchema = fields.Schema{
	"Asset":  {Kind: fields.IssueKind, Required: true},
	"Asset2": {Kind: fields.IssueKind, Required: true},
}

// AMMCreate funds a new automated market maker for an asset pair.
type AMMCreate struct {
	ammTx
}

func init() {
	register(TypeAMMCreate, fields.Schema{
		"Amount":     {Kind: fields.AmountKind, Required: true},
		"Amount2":    {Kind: fields.AmountKind, Required: true},
		"TradingFee": {Kind: fields.UInt16, Codec: fields.TransferFee},
	}, func(b *Base) Transaction { return &AMMCreate{ammTx: ammTx{Base: b}} })
}

func (t *AMMCreate) Amount() *fields.Amount  { return t.amount("Amount") }
func (t *AMMCreate) Amount2() *fields.Amount { return t.amount("Amount2") }
func (t *AMMCreate) TradingFee() *float64    { return t.percent("TradingFee") }

// AMMDeposit adds liquidity to a pool for LP tokens.
type AMMDeposit struct {
	ammTx
}

func init() {
	register(TypeAMMDeposit, ammPairSchema.Merge(fields.Schema{
		"Amount":     {Kind: fields.AmountKind},
		"Amount2":    {Kind: fields.AmountKind},
		"EPrice":     {Kind: fields.AmountKind},
		"LPTokenOut": {Kind: fields.AmountKind},
	}), func(b *Base) Transaction { return &AMMDeposit{ammTx: ammTx{Base: b}} })
}

func (t *AMMDeposit) Amount() *fields.Amount     { return t.amount("Amount") }
func (t *AMMDeposit) Amount2() *fields.Amount    { return t.amount("Amount2") }
func (t *AMMDeposit) EPrice() *fields.Amount     { return t.amount("EPrice") }
func (t *AMMDeposit) LPTokenOut() *fields.Amount { return t.amount("LPTokenOut") }

// AMMWithdraw removes liquidity from a pool.
type AMMWithdraw struct {
	ammTx
}

func init() {
	register(TypeAMMWithdraw, ammPairSchema.Merge(fields.Schema{
		"Amount":    {Kind: fields.AmountKind},
		"Amount2":   {Kind: fields.AmountKind},
		"EPrice":    {Kind: fields.AmountKind},
		"LPTokenIn": {Kind: fields.AmountKind},
	}), func(b *Base) Transaction { return &AMMWithdraw{ammTx: ammTx{Base: b}} })
}

func (t *AMMWithdraw) Amount() *fields.Amount    { return t.amount("Amount") }
func (t *AMMWithdraw) Amount2() *fields.Amount   { return t.amount("Amount2") }
func (t *AMMWithdraw) EPrice() *fields.Amount    { return t.amount("EPrice") }
func (t *AMMWithdraw) LPTokenIn() *fields.Amount { return t.amount("LPTokenIn") }

// AMMBid bids LP tokens for the pool's discounted auction slot.
type AMMBid struct {
	ammTx
}

func init() {
	register(TypeAMMBid, ammPairSchema.Merge(fields.Schema{
		"BidMin":       {Kind: fields.AmountKind},
		"BidMax":       {Kind: fields.AmountKind},
		"AuthAccounts": {Kind: fields.STArray, Codec: fields.AuthAccounts},
	}), func(b *Base) Transaction { return &AMMBid{ammTx: ammTx{Base: b}} })
}

func (t *AMMBid) BidMin() *fields.Amount { return t.amount("BidMin") }
func (t *AMMBid) BidMax() *fields.Amount { return t.amount("BidMax") }

// AuthAccounts lists the accounts allowed to share the auction slot.
func (t *AMMBid) AuthAccounts() []string {
	v, _ := t.values["AuthAccounts"].([]string)
	return v
}

// AMMVote votes the holder's LP weight on the pool's trading fee.
type AMMVote struct {
	ammTx
}

func init() {
	register(TypeAMMVote, ammPairSchema.Merge(fields.Schema{
		"TradingFee": {Kind: fields.UInt16, Codec: fields.TransferFee},
	}), func(b *Base) Transaction { return &AMMVote{ammTx: ammTx{Base: b}} })
}

func (t *AMMVote) TradingFee() *float64 { return t.percent("TradingFee") }

// AMMDelete removes an empty pool's remaining ledger entries.
type AMMDelete struct {
	ammTx
}

func init() {
	register(TypeAMMDelete, ammPairSchema, func(b *Base) Transaction {
		return &AMMDelete{ammTx: ammTx{Base: b}}
	})
}
