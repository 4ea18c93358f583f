package txn

import (
	"time"

	"github.com/ledgerlens/ledgerlens/internal/ledger/fields"
	"github.com/ledgerlens/ledgerlens/internal/ledger/meta"
)

// commonSchema covers the fields every genuine transaction may carry,
// including the node-added envelope fields (hash, date, ledger_index).
var commonSchema = fields.Schema{
	"TransactionType":     {Kind: fields.String, Required: true},
	"Account":             {Kind: fields.AccountID, Required: true},
	"Fee":                 {Kind: fields.AmountKind},
	"Sequence":            {Kind: fields.UInt32},
	"TicketSequence":      {Kind: fields.UInt32},
	"LastLedgerSequence":  {Kind: fields.UInt32},
	"FirstLedgerSequence": {Kind: fields.UInt32},
	"SourceTag":           {Kind: fields.UInt32},
	"Flags":               {Kind: fields.UInt32},
	"NetworkID":           {Kind: fields.UInt32},
	"OperationLimit":      {Kind: fields.UInt32},
	"Memos":               {Kind: fields.STArray, Codec: fields.Memos},
	"Signers":             {Kind: fields.STArray},
	"SigningPubKey":       {Kind: fields.Blob},
	"TxnSignature":        {Kind: fields.Blob},
	"AccountTxnID":        {Kind: fields.Hash256},
	"PreviousTxnID":       {Kind: fields.Hash256},
	"HookParameters":      {Kind: fields.STArray, Codec: fields.HookParameters},
	"hash":                {Kind: fields.Hash256},
	"date":                {Kind: fields.UInt32, Codec: fields.RippleTime},
	"ledger_index":        {Kind: fields.UInt32},
}

// pseudoCommonSchema relaxes Account: a signing request has no on-ledger
// sender until it is signed.
var pseudoCommonSchema = commonSchema.Merge(fields.Schema{
	"Account": {Kind: fields.AccountID},
})

// Base carries the decoded common fields and the parsed metadata. Every
// variant embeds it and inherits the common accessors.
type Base struct {
	typeName string
	raw      map[string]any
	values   map[string]any
	meta     *meta.Meta
	opts     fields.Options
	pseudo   bool
}

func (b *Base) TypeName() string    { return b.typeName }
func (b *Base) Raw() map[string]any { return b.raw }
func (b *Base) Meta() *meta.Meta    { return b.meta }
func (b *Base) IsPseudo() bool      { return b.pseudo }

// NativeAsset is the currency code native amounts decode under.
func (b *Base) NativeAsset() string {
	if b.opts.NativeAsset == "" {
		return fields.DefaultOptions.NativeAsset
	}
	return b.opts.NativeAsset
}

func (b *Base) Account() string             { return b.str("Account") }
func (b *Base) Fee() *fields.Amount         { return b.amount("Fee") }
func (b *Base) Sequence() *uint32           { return b.uint32p("Sequence") }
func (b *Base) TicketSequence() *uint32     { return b.uint32p("TicketSequence") }
func (b *Base) LastLedgerSequence() *uint32 { return b.uint32p("LastLedgerSequence") }
func (b *Base) SourceTag() *uint32          { return b.uint32p("SourceTag") }
func (b *Base) NetworkID() *uint32          { return b.uint32p("NetworkID") }
func (b *Base) OperationLimit() *uint32     { return b.uint32p("OperationLimit") }
func (b *Base) SigningPubKey() string       { return b.str("SigningPubKey") }
func (b *Base) TxnSignature() string        { return b.str("TxnSignature") }
func (b *Base) AccountTxnID() string        { return b.str("AccountTxnID") }
func (b *Base) PreviousTxnID() string       { return b.str("PreviousTxnID") }
func (b *Base) Hash() string                { return b.str("hash") }
func (b *Base) Date() *time.Time            { return b.timep("date") }
func (b *Base) LedgerIndex() *uint32        { return b.uint32p("ledger_index") }

func (b *Base) Flags() uint32 {
	if v, ok := b.values["Flags"].(uint32); ok {
		return v
	}
	return 0
}

func (b *Base) Memos() []fields.Memo {
	v, _ := b.values["Memos"].([]fields.Memo)
	return v
}

func (b *Base) Signers() []map[string]any {
	v, _ := b.values["Signers"].([]map[string]any)
	return v
}

func (b *Base) HookParameters() []fields.HookParameter {
	v, _ := b.values["HookParameters"].([]fields.HookParameter)
	return v
}

// Result is the engine result code recorded in the metadata, empty when the
// payload carried no metadata.
func (b *Base) Result() string {
	return b.meta.TransactionResult()
}

// Typed lookups into the decoded value table. Absent fields stay absent:
// pointer accessors return nil, string accessors the empty string.

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

func (b *Base) issue(name string) *fields.Issue {
	if v, ok := b.values[name].(fields.Issue); ok {
		return &v
	}
	return nil
}

func (b *Base) uint8p(name string) *uint8 {
	if v, ok := b.values[name].(uint8); ok {
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

func (b *Base) uint64p(name string) *uint64 {
	if v, ok := b.values[name].(uint64); ok {
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

func (b *Base) percent(name string) *float64 {
	if v, ok := b.values[name].(float64); ok {
		return &v
	}
	return nil
}

func (b *Base) objects(name string) []map[string]any {
	v, _ := b.values[name].([]map[string]any)
	return v
}
