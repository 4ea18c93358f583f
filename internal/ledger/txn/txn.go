// Package txn decodes raw transaction payloads into typed entities. Each
// variant declares a field schema on top of the shared common schema; the
// dispatcher reads the TransactionType discriminant and constructs the
// matching entity, falling back to a generic one for unknown types so the
// pipeline keeps working when the protocol grows a new transaction kind.
package txn

import (
	"fmt"

	"github.com/ledgerlens/ledgerlens/internal/ledger/fields"
	"github.com/ledgerlens/ledgerlens/internal/ledger/meta"
)

// Genuine transaction type names, as they appear on the wire.
const (
	TypePayment                 = "Payment"
	TypeTrustSet                = "TrustSet"
	TypeAccountDelete           = "AccountDelete"
	TypeAccountSet              = "AccountSet"
	TypeOfferCreate             = "OfferCreate"
	TypeOfferCancel             = "OfferCancel"
	TypeEscrowCreate            = "EscrowCreate"
	TypeEscrowCancel            = "EscrowCancel"
	TypeEscrowFinish            = "EscrowFinish"
	TypeSetRegularKey           = "SetRegularKey"
	TypeDelegateSet             = "DelegateSet"
	TypeSignerListSet           = "SignerListSet"
	TypeDepositPreauth          = "DepositPreauth"
	TypeCheckCreate             = "CheckCreate"
	TypeCheckCash               = "CheckCash"
	TypeCheckCancel             = "CheckCancel"
	TypeTicketCreate            = "TicketCreate"
	TypePaymentChannelCreate    = "PaymentChannelCreate"
	TypePaymentChannelClaim     = "PaymentChannelClaim"
	TypePaymentChannelFund      = "PaymentChannelFund"
	TypeNFTokenModify           = "NFTokenModify"
	TypeNFTokenMint             = "NFTokenMint"
	TypeNFTokenBurn             = "NFTokenBurn"
	TypeNFTokenCreateOffer      = "NFTokenCreateOffer"
	TypeNFTokenAcceptOffer      = "NFTokenAcceptOffer"
	TypeNFTokenCancelOffer      = "NFTokenCancelOffer"
	TypeSetHook                 = "SetHook"
	TypeClaimReward             = "ClaimReward"
	TypeInvoke                  = "Invoke"
	TypeImport                  = "Import"
	TypeURITokenMint            = "URITokenMint"
	TypeURITokenBurn            = "URITokenBurn"
	TypeURITokenBuy             = "URITokenBuy"
	TypeURITokenCreateSellOffer = "URITokenCreateSellOffer"
	TypeURITokenCancelSellOffer = "URITokenCancelSellOffer"
	TypeGenesisMint             = "GenesisMint"
	TypeEnableAmendment         = "EnableAmendment"
	TypeAMMBid                  = "AMMBid"
	TypeAMMCreate               = "AMMCreate"
	TypeAMMDelete               = "AMMDelete"
	TypeAMMDeposit              = "AMMDeposit"
	TypeAMMVote                 = "AMMVote"
	TypeAMMWithdraw             = "AMMWithdraw"
	TypeRemit                   = "Remit"
	TypeClawback                = "Clawback"
	TypeDIDDelete               = "DIDDelete"
	TypeDIDSet                  = "DIDSet"
	TypeOracleSet               = "OracleSet"
	TypeOracleDelete            = "OracleDelete"
	TypeMPTokenIssuanceCreate   = "MPTokenIssuanceCreate"
	TypeMPTokenIssuanceDestroy  = "MPTokenIssuanceDestroy"
	TypeMPTokenIssuanceSet      = "MPTokenIssuanceSet"
	TypeMPTokenAuthorize        = "MPTokenAuthorize"
	TypeCredentialCreate        = "CredentialCreate"
	TypeCredentialAccept        = "CredentialAccept"
	TypeCredentialDelete        = "CredentialDelete"
	TypeSetRemarks              = "SetRemarks"
)

// Pseudo transaction type names. Pseudo transactions never touch the ledger;
// they exist only as signing requests.
const (
	TypeSignIn                  = "SignIn"
	TypePaymentChannelAuthorize = "PaymentChannelAuthorize"
)

// Transaction is the surface every decoded transaction entity exposes,
// genuine, pseudo, or fallback.
type Transaction interface {
	TypeName() string
	Account() string
	SourceTag() *uint32
	Fee() *fields.Amount
	Flags() uint32
	Raw() map[string]any
	Meta() *meta.Meta
	NativeAsset() string
	IsPseudo() bool
}

// ValidationError reports a business-rule failure on an otherwise
// well-formed transaction.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

type definition struct {
	schema fields.Schema
	build  func(*Base) Transaction
	pseudo bool
}

var registry = map[string]definition{}

func register(name string, schema fields.Schema, build func(*Base) Transaction) {
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("transaction variant already registered: %s", name))
	}
	registry[name] = definition{schema: schema, build: build}
}

func registerPseudo(name string, schema fields.Schema, build func(*Base) Transaction) {
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("transaction variant already registered: %s", name))
	}
	registry[name] = definition{schema: schema, build: build, pseudo: true}
}

// Registered reports whether a variant is registered for the type name.
func Registered(name string) bool {
	_, ok := registry[name]
	return ok
}

// Instantiate decodes a raw transaction payload plus its execution metadata
// into the typed entity matching the TransactionType discriminant. Unknown
// discriminants produce a Fallback entity rather than an error.
func Instantiate(raw, rawMeta map[string]any, opts fields.Options) (Transaction, error) {
	discriminant, present := raw["TransactionType"]
	if !present || discriminant == nil {
		return nil, &fields.MissingFieldError{Field: "TransactionType"}
	}
	typeName, ok := discriminant.(string)
	if !ok {
		return nil, &fields.MalformedFieldError{
			Field:  "TransactionType",
			Reason: fmt.Sprintf("expected string, got %T", discriminant),
		}
	}

	m, err := meta.Parse(rawMeta, opts.NativeAsset)
	if err != nil {
		return nil, err
	}

	def, known := registry[typeName]
	if !known {
		return newFallback(typeName, raw, m, opts), nil
	}

	common := commonSchema
	if def.pseudo {
		common = pseudoCommonSchema
	}
	values, err := fields.DecodeSchema(common.Merge(def.schema), raw, opts)
	if err != nil {
		return nil, err
	}

	base := &Base{
		typeName: typeName,
		raw:      raw,
		values:   values,
		meta:     m,
		opts:     opts,
		pseudo:   def.pseudo,
	}
	return def.build(base), nil
}
