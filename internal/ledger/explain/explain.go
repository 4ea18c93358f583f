// Package explain renders decoded transactions into human-consumable
// explanations: a short event label, a narrative description, the
// participant graph, and the monetary effect. Every transaction variant has
// a descriptor; pseudo transactions refuse all operations and unknown types
// get a generic one.
package explain

import (
	"errors"

	"github.com/ledgerlens/ledgerlens/internal/ledger/fields"
	"github.com/ledgerlens/ledgerlens/internal/ledger/meta"
	"github.com/ledgerlens/ledgerlens/internal/ledger/mutations"
	"github.com/ledgerlens/ledgerlens/internal/ledger/txn"
)

// ErrUnsupportedOperation is returned by every operation of a pseudo
// transaction's descriptor: a signing request has no events to explain.
var ErrUnsupportedOperation = errors.New("operation not supported for this transaction kind")

// EffectStatus classifies how a transaction's declared amount relates to
// the account's balance.
type EffectStatus string

const (
	// NoEffect marks amounts that move between third parties.
	NoEffect EffectStatus = "NO_EFFECT"
	// PotentialEffect marks amounts that may settle later (open offers,
	// uncashed checks, unexpired escrows).
	PotentialEffect EffectStatus = "POTENTIAL_EFFECT"
	// ImmediateEffect marks amounts settled by this transaction.
	ImmediateEffect EffectStatus = "IMMEDIATE_EFFECT"
)

// Participant is one side of the transaction's participant graph.
type Participant struct {
	Address string
	Tag     *uint32
}

// Participants is the start/end pair of the graph; either side may be
// absent.
type Participants struct {
	Start *Participant
	End   *Participant
}

// Factor is one declared amount of the transaction with its effect class.
type Factor struct {
	Currency string
	Issuer   string
	Value    string
	Effect   EffectStatus
	Action   meta.Action
}

// MonetaryDetails pairs the reconstructed balance mutations with the
// transaction's declared amounts.
type MonetaryDetails struct {
	Mutate mutations.Changes
	Factor []Factor
}

// Explainer is the uniform descriptor contract every variant satisfies.
type Explainer interface {
	EventsLabel() (string, error)
	Description() (string, error)
	Participants() (Participants, error)
	MonetaryDetails() (*MonetaryDetails, error)
}

// New picks the descriptor matching the composed transaction's concrete
// variant. The account is the observer's address; labels and monetary
// details are rendered from its point of view.
func New(item *mutations.Composed, account string) Explainer {
	base := explainer{item: item, account: account}

	switch tx := item.Transaction.(type) {
	case *txn.Payment:
		return &paymentExplainer{explainer: base, tx: tx}
	case *txn.TrustSet:
		return &trustSetExplainer{explainer: base, tx: tx}
	case *txn.AccountSet:
		return &accountSetExplainer{explainer: base, tx: tx}
	case *txn.AccountDelete:
		return &accountDeleteExplainer{explainer: base, tx: tx}
	case *txn.SetRegularKey:
		return &setRegularKeyExplainer{explainer: base, tx: tx}
	case *txn.SignerListSet:
		return &signerListSetExplainer{explainer: base, tx: tx}
	case *txn.DepositPreauth:
		return &depositPreauthExplainer{explainer: base, tx: tx}
	case *txn.DelegateSet:
		return &delegateSetExplainer{explainer: base, tx: tx}
	case *txn.SetRemarks:
		return &setRemarksExplainer{explainer: base, tx: tx}
	case *txn.OfferCreate:
		return &offerCreateExplainer{explainer: base, tx: tx}
	case *txn.OfferCancel:
		return &offerCancelExplainer{explainer: base, tx: tx}
	case *txn.EscrowCreate:
		return &escrowCreateExplainer{explainer: base, tx: tx}
	case *txn.EscrowFinish:
		return &escrowFinishExplainer{explainer: base, tx: tx}
	case *txn.EscrowCancel:
		return &escrowCancelExplainer{explainer: base, tx: tx}
	case *txn.CheckCreate:
		return &checkCreateExplainer{explainer: base, tx: tx}
	case *txn.CheckCash:
		return &checkCashExplainer{explainer: base, tx: tx}
	case *txn.CheckCancel:
		return &checkCancelExplainer{explainer: base, tx: tx}
	case *txn.PaymentChannelCreate:
		return &payChannelCreateExplainer{explainer: base, tx: tx}
	case *txn.PaymentChannelFund:
		return &payChannelFundExplainer{explainer: base, tx: tx}
	case *txn.PaymentChannelClaim:
		return &payChannelClaimExplainer{explainer: base, tx: tx}
	case *txn.TicketCreate:
		return &ticketCreateExplainer{explainer: base, tx: tx}
	case *txn.NFTokenMint:
		return &nftokenMintExplainer{explainer: base, tx: tx}
	case *txn.NFTokenBurn:
		return &nftokenBurnExplainer{explainer: base, tx: tx}
	case *txn.NFTokenCreateOffer:
		return &nftokenCreateOfferExplainer{explainer: base, tx: tx}
	case *txn.NFTokenAcceptOffer:
		return &nftokenAcceptOfferExplainer{explainer: base, tx: tx}
	case *txn.NFTokenCancelOffer:
		return &nftokenCancelOfferExplainer{explainer: base, tx: tx}
	case *txn.NFTokenModify:
		return &nftokenModifyExplainer{explainer: base, tx: tx}
	case *txn.URITokenMint:
		return &uriTokenMintExplainer{explainer: base, tx: tx}
	case *txn.URITokenBurn:
		return &uriTokenBurnExplainer{explainer: base, tx: tx}
	case *txn.URITokenBuy:
		return &uriTokenBuyExplainer{explainer: base, tx: tx}
	case *txn.URITokenCreateSellOffer:
		return &uriTokenCreateSellOfferExplainer{explainer: base, tx: tx}
	case *txn.URITokenCancelSellOffer:
		return &uriTokenCancelSellOfferExplainer{explainer: base, tx: tx}
	case *txn.AMMCreate:
		return &ammCreateExplainer{explainer: base, tx: tx}
	case *txn.AMMDeposit:
		return &ammDepositExplainer{explainer: base, tx: tx}
	case *txn.AMMWithdraw:
		return &ammWithdrawExplainer{explainer: base, tx: tx}
	case *txn.AMMBid:
		return &ammBidExplainer{explainer: base, tx: tx}
	case *txn.AMMVote:
		return &ammVoteExplainer{explainer: base, tx: tx}
	case *txn.AMMDelete:
		return &ammDeleteExplainer{explainer: base, tx: tx}
	case *txn.SetHook:
		return &setHookExplainer{explainer: base, tx: tx}
	case *txn.Invoke:
		return &invokeExplainer{explainer: base, tx: tx}
	case *txn.Import:
		return &importExplainer{explainer: base, tx: tx}
	case *txn.GenesisMint:
		return &genesisMintExplainer{explainer: base, tx: tx}
	case *txn.ClaimReward:
		return &claimRewardExplainer{explainer: base, tx: tx}
	case *txn.Remit:
		return &remitExplainer{explainer: base, tx: tx}
	case *txn.Clawback:
		return &clawbackExplainer{explainer: base, tx: tx}
	case *txn.DIDSet:
		return &didSetExplainer{explainer: base, tx: tx}
	case *txn.DIDDelete:
		return &didDeleteExplainer{explainer: base}
	case *txn.OracleSet:
		return &oracleSetExplainer{explainer: base, tx: tx}
	case *txn.OracleDelete:
		return &oracleDeleteExplainer{explainer: base, tx: tx}
	case *txn.MPTokenIssuanceCreate:
		return &mptIssuanceCreateExplainer{explainer: base, tx: tx}
	case *txn.MPTokenIssuanceDestroy:
		return &mptIssuanceDestroyExplainer{explainer: base, tx: tx}
	case *txn.MPTokenIssuanceSet:
		return &mptIssuanceSetExplainer{explainer: base, tx: tx}
	case *txn.MPTokenAuthorize:
		return &mptAuthorizeExplainer{explainer: base, tx: tx}
	case *txn.CredentialCreate:
		return &credentialCreateExplainer{explainer: base, tx: tx}
	case *txn.CredentialAccept:
		return &credentialAcceptExplainer{explainer: base, tx: tx}
	case *txn.CredentialDelete:
		return &credentialDeleteExplainer{explainer: base, tx: tx}
	case *txn.EnableAmendment:
		return &enableAmendmentExplainer{explainer: base, tx: tx}
	case *txn.SignIn, *txn.PaymentChannelAuthorize:
		return &pseudoExplainer{}
	default:
		return &fallbackExplainer{explainer: base}
	}
}

// explainer carries what every descriptor needs; descriptors embed it and
// override per operation. The defaults are a start-only participant graph
// and mutation-only monetary details.
type explainer struct {
	item    *mutations.Composed
	account string
}

func (e explainer) Participants() (Participants, error) {
	return Participants{Start: participant(e.item.Account(), e.item.SourceTag())}, nil
}

func (e explainer) MonetaryDetails() (*MonetaryDetails, error) {
	return &MonetaryDetails{Mutate: e.item.BalanceChange(e.account)}, nil
}

// withEnd builds the common start-to-end graph.
func (e explainer) withEnd(address string, tag *uint32) (Participants, error) {
	p := Participants{Start: participant(e.item.Account(), e.item.SourceTag())}
	if address != "" {
		p.End = participant(address, tag)
	}
	return p, nil
}

// monetary attaches declared-amount factors to the mutation view.
func (e explainer) monetary(factors ...Factor) (*MonetaryDetails, error) {
	return &MonetaryDetails{
		Mutate: e.item.BalanceChange(e.account),
		Factor: factors,
	}, nil
}

// amountFactor wraps a declared amount as a factor list, empty when the
// amount is absent.
func amountFactor(a *fields.Amount, effect EffectStatus) []Factor {
	if a == nil {
		return nil
	}
	return []Factor{{
		Currency: a.Currency,
		Issuer:   a.Issuer,
		Value:    a.Value,
		Effect:   effect,
	}}
}

func participant(address string, tag *uint32) *Participant {
	if address == "" {
		return nil
	}
	return &Participant{Address: address, Tag: tag}
}

// pseudoExplainer rejects every operation: pseudo transactions are signing
// requests, not ledger events.
type pseudoExplainer struct{}

func (pseudoExplainer) EventsLabel() (string, error) { return "", ErrUnsupportedOperation }
func (pseudoExplainer) Description() (string, error) { return "", ErrUnsupportedOperation }
func (pseudoExplainer) Participants() (Participants, error) {
	return Participants{}, ErrUnsupportedOperation
}
func (pseudoExplainer) MonetaryDetails() (*MonetaryDetails, error) {
	return nil, ErrUnsupportedOperation
}

// fallbackExplainer describes a transaction of an unknown type without
// guessing at its semantics.
type fallbackExplainer struct {
	explainer
}

func (e *fallbackExplainer) EventsLabel() (string, error) {
	return e.item.TypeName(), nil
}

func (e *fallbackExplainer) Description() (string, error) {
	return "This is a " + e.item.TypeName() + " transaction.", nil
}

func (e *fallbackExplainer) Participants() (Participants, error) {
	return Participants{}, nil
}

func (e *fallbackExplainer) MonetaryDetails() (*MonetaryDetails, error) {
	return &MonetaryDetails{}, nil
}
