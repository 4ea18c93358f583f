package meta

import (
	"github.com/shopspring/decimal"
)

// Action classifies the direction of a balance movement for one account.
type Action string

const (
	ActionIncrease Action = "INC"
	ActionDecrease Action = "DEC"
)

// BalanceChange is one per-currency movement observed for an account. Value
// is always the absolute human-scale amount; Action carries the sign.
type BalanceChange struct {
	Currency string
	Issuer   string
	Value    string
	Action   Action
}

type quantity struct {
	address string
	change  BalanceChange
	signed  decimal.Decimal
}

func actionOf(value decimal.Decimal) Action {
	if value.IsNegative() {
		return ActionDecrease
	}
	return ActionIncrease
}

func format8(d decimal.Decimal) string {
	return d.Round(8).String()
}

// parseBalanceValue reads a Balance field, which is a drops string on
// AccountRoot entries and a {currency, issuer, value} object on RippleState
// entries.
func parseBalanceValue(raw any) (decimal.Decimal, bool) {
	switch v := raw.(type) {
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Decimal{}, false
		}
		return d, true
	case map[string]any:
		s, _ := v["value"].(string)
		d, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Decimal{}, false
		}
		return d, true
	default:
		return decimal.Decimal{}, false
	}
}

// balanceDelta computes after - before for a node's Balance field. Created
// entries count their full starting balance; deleted entries, unchanged
// balances and absent balances yield no delta.
func balanceDelta(node Node) (decimal.Decimal, bool) {
	switch node.Diff {
	case CreatedNode:
		if raw, present := node.NewFields["Balance"]; present {
			if v, ok := parseBalanceValue(raw); ok && !v.IsZero() {
				return v, true
			}
		}
	case ModifiedNode:
		rawFinal, okFinal := node.FinalFields["Balance"]
		rawPrev, okPrev := node.PreviousFields["Balance"]
		if okFinal && okPrev {
			final, fOK := parseBalanceValue(rawFinal)
			prev, pOK := parseBalanceValue(rawPrev)
			if fOK && pOK {
				delta := final.Sub(prev)
				if !delta.IsZero() {
					return delta, true
				}
			}
		}
	}
	return decimal.Decimal{}, false
}

// nativeQuantity turns an AccountRoot balance delta into a quantity,
// converting drops to human-scale units at this boundary.
func (m *Meta) nativeQuantity(node Node) *quantity {
	delta, ok := balanceDelta(node)
	if !ok {
		return nil
	}
	scaled := delta.Shift(-6)
	return &quantity{
		address: node.account(),
		signed:  scaled,
		change: BalanceChange{
			Currency: m.nativeAsset,
			Value:    format8(scaled.Abs()),
			Action:   actionOf(scaled),
		},
	}
}

// trustlineQuantities turns a RippleState balance delta into two quantities:
// the stored balance is from the low node's perspective, so the high node
// sees the negated value. A trust line can be created with a non-zero
// starting balance when an offer crossing establishes it.
func (m *Meta) trustlineQuantities(node Node) []*quantity {
	delta, ok := balanceDelta(node)
	if !ok {
		return nil
	}

	entryFields := node.fields()
	if entryFields == nil {
		return nil
	}
	low, _ := entryFields["LowLimit"].(map[string]any)
	high, _ := entryFields["HighLimit"].(map[string]any)
	balance, _ := entryFields["Balance"].(map[string]any)
	if low == nil || high == nil || balance == nil {
		return nil
	}

	lowIssuer, _ := low["issuer"].(string)
	highIssuer, _ := high["issuer"].(string)
	currency, _ := balance["currency"].(string)

	lowSide := &quantity{
		address: lowIssuer,
		signed:  delta,
		change: BalanceChange{
			Currency: currency,
			Issuer:   highIssuer,
			Value:    format8(delta.Abs()),
			Action:   actionOf(delta),
		},
	}

	negated := delta.Neg()
	highSide := &quantity{
		address: highIssuer,
		signed:  negated,
		change: BalanceChange{
			Currency: currency,
			Issuer:   lowIssuer,
			Value:    format8(negated.Abs()),
			Action:   actionOf(negated),
		},
	}

	return []*quantity{lowSide, highSide}
}

// BalanceChanges walks the affected nodes and returns the per-account
// balance movements, grouped by account address and combined per
// (action, currency). Multiple movements of the same currency (applied
// payment paths) are summed without regard to issuer.
func (m *Meta) BalanceChanges() map[string][]BalanceChange {
	var quantities []*quantity
	for _, node := range m.nodes {
		switch node.LedgerEntryType {
		case entryAccountRoot:
			if q := m.nativeQuantity(node); q != nil {
				quantities = append(quantities, q)
			}
		case entryRippleState:
			quantities = append(quantities, m.trustlineQuantities(node)...)
		}
	}

	grouped := make(map[string][]BalanceChange)
	for _, q := range quantities {
		grouped[q.address] = append(grouped[q.address], q.change)
	}
	for address, changes := range grouped {
		grouped[address] = combineChanges(changes)
	}
	return grouped
}

// BalanceChangesFor returns the combined movements for one account.
func (m *Meta) BalanceChangesFor(address string) []BalanceChange {
	return m.BalanceChanges()[address]
}

// combineChanges merges changes sharing (action, currency), summing values.
func combineChanges(changes []BalanceChange) []BalanceChange {
	type key struct {
		action   Action
		currency string
	}
	var order []key
	groups := make(map[key][]BalanceChange)
	for _, c := range changes {
		k := key{action: c.Action, currency: c.Currency}
		if _, seen := groups[k]; !seen {
			order = append(order, k)
		}
		groups[k] = append(groups[k], c)
	}

	combined := make([]BalanceChange, 0, len(order))
	for _, k := range order {
		group := groups[k]
		if len(group) == 1 {
			combined = append(combined, group[0])
			continue
		}
		sum := decimal.Zero
		for _, c := range group {
			d, err := decimal.NewFromString(c.Value)
			if err != nil {
				continue
			}
			sum = sum.Add(d)
		}
		combined = append(combined, BalanceChange{
			Currency: k.currency,
			Issuer:   group[0].Issuer,
			Value:    format8(sum),
			Action:   k.action,
		})
	}
	return combined
}

// OwnerCountChange is a change in an account's owner directory count.
type OwnerCountChange struct {
	Address string
	Value   uint32
	Action  Action
}

// OwnerCountChanges extracts owner-count movements from modified account
// roots.
func (m *Meta) OwnerCountChanges() []OwnerCountChange {
	var changes []OwnerCountChange
	for _, node := range m.nodes {
		if node.Diff != ModifiedNode || node.LedgerEntryType != entryAccountRoot {
			continue
		}
		final, okF := node.FinalFields["OwnerCount"].(float64)
		prev, okP := node.PreviousFields["OwnerCount"].(float64)
		if !okF || !okP {
			continue
		}
		delta := decimal.NewFromFloat(final).Sub(decimal.NewFromFloat(prev))
		if delta.IsZero() {
			continue
		}
		changes = append(changes, OwnerCountChange{
			Address: node.account(),
			Value:   uint32(delta.Abs().IntPart()),
			Action:  actionOf(delta),
		})
	}
	return changes
}
