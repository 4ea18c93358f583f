// Package mutations composes a decoded transaction with memoized access to
// its reconstructed effects: balance changes with the network fee hidden,
// owner-count changes, and hook executions.
package mutations

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/shopspring/decimal"

	"github.com/ledgerlens/ledgerlens/internal/ledger/meta"
	"github.com/ledgerlens/ledgerlens/internal/ledger/txn"
)

// cacheSize bounds the per-transaction memo caches; a transaction rarely
// gets queried for more than a handful of accounts.
const cacheSize = 32

// Changes is one account's view of a transaction, split by direction.
type Changes struct {
	Sent     []meta.BalanceChange
	Received []meta.BalanceChange
}

// Composed wraps a transaction with memoized mutation queries.
type Composed struct {
	txn.Transaction

	balances    *lru.Cache[string, Changes]
	ownerCounts *lru.Cache[string, *meta.OwnerCountChange]

	hookOnce  sync.Once
	hookExecs []map[string]any
}

// Compose wraps the transaction. The wrapper is cheap; all reconstruction
// happens lazily on first query.
func Compose(transaction txn.Transaction) *Composed {
	balances, _ := lru.New[string, Changes](cacheSize)
	ownerCounts, _ := lru.New[string, *meta.OwnerCountChange](cacheSize)
	return &Composed{
		Transaction: transaction,
		balances:    balances,
		ownerCounts: ownerCounts,
	}
}

// BalanceChange returns the balance movements the transaction caused for
// the owner account, fee-adjusted. An empty owner defaults to the
// transaction's own account. Transactions without metadata yield empty
// changes, never an error.
func (c *Composed) BalanceChange(owner string) Changes {
	if owner == "" {
		owner = c.Account()
	}
	if cached, ok := c.balances.Get(owner); ok {
		return cached
	}

	changes := c.hideFee(owner, c.Meta().BalanceChangesFor(owner))

	result := Changes{}
	for _, change := range changes {
		switch change.Action {
		case meta.ActionDecrease:
			result.Sent = append(result.Sent, change)
		case meta.ActionIncrease:
			result.Received = append(result.Received, change)
		}
	}

	c.balances.Add(owner, result)
	return result
}

// OwnerCountChange returns the owner's directory count movement, nil when
// the transaction did not change it.
func (c *Composed) OwnerCountChange(owner string) *meta.OwnerCountChange {
	if owner == "" {
		owner = c.Account()
	}
	if cached, ok := c.ownerCounts.Get(owner); ok {
		return cached
	}

	var found *meta.OwnerCountChange
	for _, change := range c.Meta().OwnerCountChanges() {
		if change.Address == owner {
			match := change
			found = &match
			break
		}
	}

	c.ownerCounts.Add(owner, found)
	return found
}

// HookExecutions returns the hook execution records, memoized.
func (c *Composed) HookExecutions() []map[string]any {
	c.hookOnce.Do(func() {
		c.hookExecs = c.Meta().HookExecutions()
	})
	return c.hookExecs
}

// hideFee removes the network fee from the owner's balance changes so the
// reported movement reflects the operation itself. Two shapes occur: the fee
// as a standalone native decrease next to other movements, and the fee
// folded into the owner's native movement.
func (c *Composed) hideFee(owner string, changes []meta.BalanceChange) []meta.BalanceChange {
	fee := c.Fee()
	if len(changes) == 0 || fee == nil {
		return changes
	}
	native := c.NativeAsset()

	adjusted := make([]meta.BalanceChange, len(changes))
	copy(adjusted, changes)

	// standalone fee: several decreases where the native one equals the fee
	var decreases []meta.BalanceChange
	for _, change := range adjusted {
		if change.Action == meta.ActionDecrease {
			decreases = append(decreases, change)
		}
	}
	if len(decreases) > 1 {
		for _, change := range decreases {
			if change.Currency == native && change.Value == fee.Value {
				adjusted = removeChange(adjusted, meta.ActionDecrease, native)
				break
			}
		}
	}

	// folded fee: adjust the owner's native movement by the fee amount
	feeIndex := -1
	if owner == c.Account() {
		feeIndex = indexOf(adjusted, meta.ActionDecrease, native)
		if feeIndex == -1 && (c.TypeName() == txn.TypeNFTokenAcceptOffer || c.TypeName() == txn.TypeOfferCreate) {
			feeIndex = indexOf(adjusted, meta.ActionIncrease, native)
		}
	}
	if feeIndex == -1 {
		return adjusted
	}

	value, err := decimal.NewFromString(adjusted[feeIndex].Value)
	if err != nil {
		return adjusted
	}
	feeValue, err := decimal.NewFromString(fee.Value)
	if err != nil {
		return adjusted
	}

	afterFee := value.Sub(feeValue)
	switch {
	case afterFee.IsZero():
		adjusted = append(adjusted[:feeIndex], adjusted[feeIndex+1:]...)
	case afterFee.IsNegative() &&
		c.TypeName() == txn.TypeNFTokenAcceptOffer &&
		adjusted[feeIndex].Action == meta.ActionDecrease:
		// the broker paid more fee than it earned: the decrease flips to
		// an increase of the remainder
		adjusted[feeIndex].Action = meta.ActionIncrease
		adjusted[feeIndex].Value = afterFee.Abs().Round(8).String()
	default:
		adjusted[feeIndex].Value = afterFee.Round(8).String()
	}

	return adjusted
}

func indexOf(changes []meta.BalanceChange, action meta.Action, currency string) int {
	for i, change := range changes {
		if change.Action == action && change.Currency == currency {
			return i
		}
	}
	return -1
}

func removeChange(changes []meta.BalanceChange, action meta.Action, currency string) []meta.BalanceChange {
	i := indexOf(changes, action, currency)
	if i == -1 {
		return changes
	}
	return append(changes[:i], changes[i+1:]...)
}
