package explain

import (
	"fmt"
	"strings"

	"github.com/ledgerlens/ledgerlens/internal/ledger/fields"
	"github.com/ledgerlens/ledgerlens/internal/ledger/meta"
	"github.com/ledgerlens/ledgerlens/internal/ledger/txn"
)

type offerCreateExplainer struct {
	explainer
	tx *txn.OfferCreate
}

func (e *offerCreateExplainer) EventsLabel() (string, error) {
	switch e.tx.Status(e.account) {
	case meta.OfferFilled, meta.OfferPartiallyFilled:
		return "Exchanged Assets", nil
	default:
		return "Create Offer", nil
	}
}

func (e *offerCreateExplainer) Description() (string, error) {
	gets := e.tx.TakerGets()
	pays := e.tx.TakerPays()

	var b strings.Builder
	fmt.Fprintf(&b, "%s offered to pay %s %s in order to receive %s %s.",
		e.tx.Account(),
		gets.Value, NormalizeCurrencyCode(gets.Currency),
		pays.Value, NormalizeCurrencyCode(pays.Currency))

	if rate, err := e.tx.Rate(); err == nil {
		fmt.Fprintf(&b, "\nThe exchange rate for this offer is %g %s/%s.",
			rate, NormalizeCurrencyCode(pays.Currency), NormalizeCurrencyCode(gets.Currency))
	}
	if sequence := e.tx.OfferSequence(); sequence != nil && e.tx.Sequence() != nil && *sequence != *e.tx.Sequence() {
		fmt.Fprintf(&b, "\nThe transaction will also cancel the previous offer with sequence %d.", *sequence)
	}
	if expiration := e.tx.Expiration(); expiration != nil {
		fmt.Fprintf(&b, "\nThe offer expires at %s unless it is cancelled or consumed before then.",
			expiration.UTC().Format("2006-01-02 15:04:05 UTC"))
	}
	return b.String(), nil
}

func (e *offerCreateExplainer) MonetaryDetails() (*MonetaryDetails, error) {
	return e.monetary(amountFactor(e.tx.TakerPays(), PotentialEffect)...)
}

type offerCancelExplainer struct {
	explainer
	tx *txn.OfferCancel
}

func (e *offerCancelExplainer) EventsLabel() (string, error) { return "Cancel Offer", nil }

func (e *offerCancelExplainer) Description() (string, error) {
	if sequence := e.tx.OfferSequence(); sequence != nil {
		return fmt.Sprintf("%s cancelled the offer with sequence %d.", e.tx.Account(), *sequence), nil
	}
	return fmt.Sprintf("%s cancelled an offer.", e.tx.Account()), nil
}

type ammCreateExplainer struct {
	explainer
	tx *txn.AMMCreate
}

func (e *ammCreateExplainer) EventsLabel() (string, error) { return "Create AMM Pool", nil }

func (e *ammCreateExplainer) Description() (string, error) {
	amount := e.tx.Amount()
	amount2 := e.tx.Amount2()

	var b strings.Builder
	fmt.Fprintf(&b, "%s funded a new liquidity pool with %s %s and %s %s.",
		e.tx.Account(),
		amount.Value, NormalizeCurrencyCode(amount.Currency),
		amount2.Value, NormalizeCurrencyCode(amount2.Currency))
	if fee := e.tx.TradingFee(); fee != nil {
		fmt.Fprintf(&b, "\nThe pool's trading fee starts at %g%%.", *fee)
	}
	if pool := e.tx.AMMAccount(); pool != "" {
		fmt.Fprintf(&b, "\nThe pool account is %s.", pool)
	}
	return b.String(), nil
}

func (e *ammCreateExplainer) Participants() (Participants, error) {
	return e.withEnd(e.tx.AMMAccount(), nil)
}

func (e *ammCreateExplainer) MonetaryDetails() (*MonetaryDetails, error) {
	factors := append(
		amountFactor(e.tx.Amount(), ImmediateEffect),
		amountFactor(e.tx.Amount2(), ImmediateEffect)...)
	return e.monetary(factors...)
}

type ammDepositExplainer struct {
	explainer
	tx *txn.AMMDeposit
}

func (e *ammDepositExplainer) EventsLabel() (string, error) { return "Deposit to AMM Pool", nil }

func (e *ammDepositExplainer) Description() (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s deposited into the %s liquidity pool.",
		e.tx.Account(), assetPairLabel(e.tx.Asset(), e.tx.Asset2()))
	for _, amount := range []*fields.Amount{e.tx.Amount(), e.tx.Amount2()} {
		if amount != nil {
			fmt.Fprintf(&b, "\nIt deposits %s %s.", amount.Value, NormalizeCurrencyCode(amount.Currency))
		}
	}
	return b.String(), nil
}

func (e *ammDepositExplainer) Participants() (Participants, error) {
	return e.withEnd(e.tx.AMMAccount(), nil)
}

func (e *ammDepositExplainer) MonetaryDetails() (*MonetaryDetails, error) {
	factors := append(
		amountFactor(e.tx.Amount(), ImmediateEffect),
		amountFactor(e.tx.Amount2(), ImmediateEffect)...)
	return e.monetary(factors...)
}

type ammWithdrawExplainer struct {
	explainer
	tx *txn.AMMWithdraw
}

func (e *ammWithdrawExplainer) EventsLabel() (string, error) { return "Withdraw from AMM Pool", nil }

func (e *ammWithdrawExplainer) Description() (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s withdrew from the %s liquidity pool.",
		e.tx.Account(), assetPairLabel(e.tx.Asset(), e.tx.Asset2()))
	for _, amount := range []*fields.Amount{e.tx.Amount(), e.tx.Amount2()} {
		if amount != nil {
			fmt.Fprintf(&b, "\nIt withdraws %s %s.", amount.Value, NormalizeCurrencyCode(amount.Currency))
		}
	}
	return b.String(), nil
}

func (e *ammWithdrawExplainer) Participants() (Participants, error) {
	return e.withEnd(e.tx.AMMAccount(), nil)
}

func (e *ammWithdrawExplainer) MonetaryDetails() (*MonetaryDetails, error) {
	factors := append(
		amountFactor(e.tx.Amount(), ImmediateEffect),
		amountFactor(e.tx.Amount2(), ImmediateEffect)...)
	return e.monetary(factors...)
}

type ammBidExplainer struct {
	explainer
	tx *txn.AMMBid
}

func (e *ammBidExplainer) EventsLabel() (string, error) { return "Bid on AMM Auction Slot", nil }

func (e *ammBidExplainer) Description() (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s bid on the auction slot of the %s liquidity pool.",
		e.tx.Account(), assetPairLabel(e.tx.Asset(), e.tx.Asset2()))
	if min := e.tx.BidMin(); min != nil {
		fmt.Fprintf(&b, "\nThe minimum bid is %s LP tokens.", min.Value)
	}
	if max := e.tx.BidMax(); max != nil {
		fmt.Fprintf(&b, "\nThe maximum bid is %s LP tokens.", max.Value)
	}
	if accounts := e.tx.AuthAccounts(); len(accounts) > 0 {
		fmt.Fprintf(&b, "\nThe slot is shared with: %s.", strings.Join(accounts, ", "))
	}
	return b.String(), nil
}

func (e *ammBidExplainer) Participants() (Participants, error) {
	return e.withEnd(e.tx.AMMAccount(), nil)
}

type ammVoteExplainer struct {
	explainer
	tx *txn.AMMVote
}

func (e *ammVoteExplainer) EventsLabel() (string, error) { return "Vote on AMM Fee", nil }

func (e *ammVoteExplainer) Description() (string, error) {
	if fee := e.tx.TradingFee(); fee != nil {
		return fmt.Sprintf("%s voted for a trading fee of %g%% on the %s liquidity pool.",
			e.tx.Account(), *fee, assetPairLabel(e.tx.Asset(), e.tx.Asset2())), nil
	}
	return fmt.Sprintf("%s voted on the trading fee of the %s liquidity pool.",
		e.tx.Account(), assetPairLabel(e.tx.Asset(), e.tx.Asset2())), nil
}

func (e *ammVoteExplainer) Participants() (Participants, error) {
	return e.withEnd(e.tx.AMMAccount(), nil)
}

type ammDeleteExplainer struct {
	explainer
	tx *txn.AMMDelete
}

func (e *ammDeleteExplainer) EventsLabel() (string, error) { return "Delete AMM Pool", nil }

func (e *ammDeleteExplainer) Description() (string, error) {
	return fmt.Sprintf("%s deleted the empty %s liquidity pool.",
		e.tx.Account(), assetPairLabel(e.tx.Asset(), e.tx.Asset2())), nil
}

func (e *ammDeleteExplainer) Participants() (Participants, error) {
	return e.withEnd(e.tx.AMMAccount(), nil)
}

// assetPairLabel renders an AMM asset pair for narration.
func assetPairLabel(asset, asset2 *fields.Issue) string {
	name := func(issue *fields.Issue) string {
		if issue == nil {
			return "?"
		}
		return NormalizeCurrencyCode(issue.Currency)
	}
	return name(asset) + "/" + name(asset2)
}
