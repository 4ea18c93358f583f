// Package objects decodes persisted ledger state entries. Entries use the
// LedgerEntryType discriminant instead of TransactionType but share the same
// schema-driven decoding as transactions.
package objects

import (
	"fmt"
	"time"

	"github.com/ledgerlens/ledgerlens/internal/ledger/fields"
)

// Entry type names as they appear on the wire.
const (
	TypeCheck          = "Check"
	TypeEscrow         = "Escrow"
	TypeOffer          = "Offer"
	TypeNFTokenOffer   = "NFTokenOffer"
	TypePayChannel     = "PayChannel"
	TypeTicket         = "Ticket"
	TypeURIToken       = "URIToken"
	TypeDepositPreauth = "DepositPreauth"
)

// Object is the surface every decoded ledger entry exposes.
type Object interface {
	EntryType() string
	Index() string
	Raw() map[string]any
}

// commonSchema covers the envelope fields every ledger entry carries.
var commonSchema = fields.Schema{
	"LedgerEntryType":   {Kind: fields.String, Required: true},
	"Flags":             {Kind: fields.UInt32},
	"PreviousTxnID":     {Kind: fields.Hash256},
	"PreviousTxnLgrSeq": {Kind: fields.UInt32},
	"OwnerNode":         {Kind: fields.UInt64},
	"index":             {Kind: fields.Hash256},
}

type definition struct {
	schema fields.Schema
	build  func(*Base) Object
}

var registry = map[string]definition{}

func register(name string, schema fields.Schema, build func(*Base) Object) {
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("ledger entry variant already registered: %s", name))
	}
	registry[name] = definition{schema: schema, build: build}
}

// Instantiate decodes a raw ledger entry into the typed variant matching its
// LedgerEntryType. Unknown entry types produce a Fallback object.
func Instantiate(raw map[string]any, opts fields.Options) (Object, error) {
	discriminant, present := raw["LedgerEntryType"]
	if !present || discriminant == nil {
		return nil, &fields.MissingFieldError{Field: "LedgerEntryType"}
	}
	entryType, ok := discriminant.(string)
	if !ok {
		return nil, &fields.MalformedFieldError{
			Field:  "LedgerEntryType",
			Reason: fmt.Sprintf("expected string, got %T", discriminant),
		}
	}

	def, known := registry[entryType]
	if !known {
		return newFallback(entryType, raw, opts), nil
	}

	values, err := fields.DecodeSchema(commonSchema.Merge(def.schema), raw, opts)
	if err != nil {
		return nil, err
	}

	return def.build(&Base{
		entryType: entryType,
		raw:       raw,
		values:    values,
		opts:      opts,
	}), nil
}

// Base carries the decoded fields shared by every entry variant.
type Base struct {
	entryType string
	raw       map[string]any
	values    map[string]any
	opts      fields.Options
}

func (b *Base) EntryType() string   { return b.entryType }
func (b *Base) Raw() map[string]any { return b.raw }
func (b *Base) Index() string       { return b.str("index") }
func (b *Base) PreviousTxnID() string {
	return b.str("PreviousTxnID")
}

func (b *Base) Flags() uint32 {
	if v, ok := b.values["Flags"].(uint32); ok {
		return v
	}
	return 0
}

func (b *Base) str(name string) string {
	v, _ := b.values[name].(string)
	return v
}

func (b *Base) amount(name string) *fields.Amount {
	if v, ok := b.values[name].(fields.Amount); ok {
		return &v
	}
	return nil
}

func (b *Base) uint32p(name string) *uint32 {
	if v, ok := b.values[name].(uint32); ok {
		return &v
	}
	return nil
}

func (b *Base) timep(name string) *time.Time {
	if v, ok := b.values[name].(time.Time); ok {
		return &v
	}
	return nil
}

// expirable is embedded by entries with an Expiration field and provides
// the shared expiry convenience.
type expirable struct {
	*Base
}

// Expiration is the entry's expiry instant, nil when it never expires.
func (e expirable) Expiration() *time.Time { return e.timep("Expiration") }

// Date is an alias of Expiration kept for display layers.
func (e expirable) Date() *time.Time { return e.Expiration() }

// IsExpired reports whether the entry's expiration has passed. Entries
// without one never expire.
func (e expirable) IsExpired() bool {
	expiration := e.Expiration()
	return expiration != nil && expiration.Before(time.Now())
}

// Fallback holds a ledger entry of an unknown type with its raw payload
// preserved.
type Fallback struct {
	*Base
}

func newFallback(entryType string, raw map[string]any, opts fields.Options) *Fallback {
	values := make(map[string]any, len(commonSchema))
	for name, f := range commonSchema {
		rawValue, present := raw[name]
		if !present || rawValue == nil {
			continue
		}
		v, err := fields.Decode(name, fields.Field{Kind: f.Kind, Codec: f.Codec}, rawValue, opts)
		if err != nil {
			continue
		}
		values[name] = v
	}
	return &Fallback{Base: &Base{entryType: entryType, raw: raw, values: values, opts: opts}}
}
