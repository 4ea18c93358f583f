package txn

import (
	"github.com/ledgerlens/ledgerlens/internal/ledger/fields"
	"github.com/ledgerlens/ledgerlens/internal/ledger/meta"
)

// tfClaimRewardOptOut marks a reward claim as an opt-out request.
const tfClaimRewardOptOut = 1

// SetHook installs, updates, or removes hooks on the account.
type SetHook struct {
	*Base
}

func init() {
	register(TypeSetHook, fields.Schema{
		"Hooks": {Kind: fields.STArray},
	}, func(b *Base) Transaction { return &SetHook{Base: b} })
}

// Hooks returns the raw hook definition set.
func (t *SetHook) Hooks() []map[string]any { return t.objects("Hooks") }

// Invoke runs the destination account's hooks with an optional payload.
type Invoke struct {
	*Base
}

func init() {
	register(TypeInvoke, fields.Schema{
		"Destination":    {Kind: fields.AccountID},
		"DestinationTag": {Kind: fields.UInt32},
		"Blob":           {Kind: fields.Blob},
		"InvoiceID":      {Kind: fields.Hash256},
	}, func(b *Base) Transaction { return &Invoke{Base: b} })
}

func (t *Invoke) Destination() string     { return t.str("Destination") }
func (t *Invoke) DestinationTag() *uint32 { return t.uint32p("DestinationTag") }
func (t *Invoke) Blob() string            { return t.str("Blob") }
func (t *Invoke) InvoiceID() string       { return t.str("InvoiceID") }

// Import replays a proven transaction from another network.
type Import struct {
	*Base
}

func init() {
	register(TypeImport, fields.Schema{
		"Blob":   {Kind: fields.Blob},
		"Issuer": {Kind: fields.AccountID},
	}, func(b *Base) Transaction { return &Import{Base: b} })
}

func (t *Import) Blob() string   { return t.str("Blob") }
func (t *Import) Issuer() string { return t.str("Issuer") }

// GenesisMint distributes native funds from the genesis hook.
type GenesisMint struct {
	*Base
}

func init() {
	register(TypeGenesisMint, fields.Schema{
		"GenesisMints": {Kind: fields.STArray},
	}, func(b *Base) Transaction { return &GenesisMint{Base: b} })
}

// Mint is one destination/amount pair of a genesis distribution.
type Mint struct {
	Destination string
	Amount      *fields.Amount
}

func (t *GenesisMint) Mints() []Mint {
	var mints []Mint
	for _, wrapper := range t.objects("GenesisMints") {
		inner, ok := wrapper["GenesisMint"].(map[string]any)
		if !ok {
			continue
		}
		destination, _ := inner["Destination"].(string)
		mint := Mint{Destination: destination}
		if rawAmount, ok := inner["Amount"]; ok {
			if v, err := fields.Decode("Amount", fields.Field{Kind: fields.AmountKind}, rawAmount, t.opts); err == nil {
				a := v.(fields.Amount)
				mint.Amount = &a
			}
		}
		mints = append(mints, mint)
	}
	return mints
}

// ClaimReward claims accumulated balance rewards, or opts the account out of
// the reward program.
type ClaimReward struct {
	*Base
}

func init() {
	register(TypeClaimReward, fields.Schema{
		"Issuer": {Kind: fields.AccountID},
	}, func(b *Base) Transaction { return &ClaimReward{Base: b} })
}

func (t *ClaimReward) Issuer() string { return t.str("Issuer") }

// Status derives the claim outcome. The metadata's reward-field transition
// is authoritative; without one the transaction's own opt-out flag decides.
func (t *ClaimReward) Status() meta.ClaimStatus {
	if status := t.meta.ClaimStatusFor(t.Account()); status != nil {
		return *status
	}
	if t.Flags()&tfClaimRewardOptOut != 0 {
		return meta.ClaimOptOut
	}
	return meta.ClaimOptIn
}
