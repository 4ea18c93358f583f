package txn

import (
	"encoding/hex"

	"github.com/ledgerlens/ledgerlens/internal/ledger/fields"
)

// AccountSet adjusts account-level settings: flags, domain, transfer rate,
// tick size, and the NFT minter delegation.
type AccountSet struct {
	*Base
}

func init() {
	register(TypeAccountSet, fields.Schema{
		"SetFlag":       {Kind: fields.UInt32},
		"ClearFlag":     {Kind: fields.UInt32},
		"Domain":        {Kind: fields.Blob},
		"EmailHash":     {Kind: fields.Hash128},
		"MessageKey":    {Kind: fields.Blob},
		"TransferRate":  {Kind: fields.UInt32, Codec: fields.TransferRate},
		"TickSize":      {Kind: fields.UInt8},
		"NFTokenMinter": {Kind: fields.AccountID},
		"WalletLocator": {Kind: fields.Hash256},
		"WalletSize":    {Kind: fields.UInt32},
	}, func(b *Base) Transaction { return &AccountSet{Base: b} })
}

func (t *AccountSet) SetFlag() *uint32       { return t.uint32p("SetFlag") }
func (t *AccountSet) ClearFlag() *uint32     { return t.uint32p("ClearFlag") }
func (t *AccountSet) EmailHash() string      { return t.str("EmailHash") }
func (t *AccountSet) MessageKey() string     { return t.str("MessageKey") }
func (t *AccountSet) TransferRate() *float64 { return t.percent("TransferRate") }
func (t *AccountSet) TickSize() *uint8       { return t.uint8p("TickSize") }
func (t *AccountSet) NFTokenMinter() string  { return t.str("NFTokenMinter") }
func (t *AccountSet) WalletLocator() string  { return t.str("WalletLocator") }
func (t *AccountSet) WalletSize() *uint32    { return t.uint32p("WalletSize") }

// Domain is the account's claimed domain, hex on the wire.
func (t *AccountSet) Domain() string {
	raw := t.str("Domain")
	if raw == "" {
		return ""
	}
	decoded, err := hex.DecodeString(raw)
	if err != nil {
		return raw
	}
	return string(decoded)
}

// IsNoOperation reports whether the transaction changes nothing, a shape
// wallets submit to burn a sequence number.
func (t *AccountSet) IsNoOperation() bool {
	for _, name := range []string{
		"SetFlag", "ClearFlag", "Domain", "EmailHash", "MessageKey",
		"TransferRate", "TickSize", "NFTokenMinter", "WalletLocator", "WalletSize",
	} {
		if _, present := t.values[name]; present {
			return false
		}
	}
	return true
}

// IsCancelTicket reports whether the no-op targets a ticket: a ticket
// sequence with Sequence pinned to zero consumes the ticket and does
// nothing else.
func (t *AccountSet) IsCancelTicket() bool {
	ticket := t.TicketSequence()
	sequence := t.Sequence()
	return ticket != nil && *ticket > 0 && sequence != nil && *sequence == 0
}

// AccountDelete removes the account from the ledger and sends its remaining
// balance to the destination.
type AccountDelete struct {
	*Base
}

func init() {
	register(TypeAccountDelete, fields.Schema{
		"Destination":    {Kind: fields.AccountID, Required: true},
		"DestinationTag": {Kind: fields.UInt32},
	}, func(b *Base) Transaction { return &AccountDelete{Base: b} })
}

func (t *AccountDelete) Destination() string     { return t.str("Destination") }
func (t *AccountDelete) DestinationTag() *uint32 { return t.uint32p("DestinationTag") }

// DepositPreauth grants or revokes permission for another account to send
// deposits when deposit authorization is on.
type DepositPreauth struct {
	*Base
}

func init() {
	register(TypeDepositPreauth, fields.Schema{
		"Authorize":   {Kind: fields.AccountID},
		"Unauthorize": {Kind: fields.AccountID},
	}, func(b *Base) Transaction { return &DepositPreauth{Base: b} })
}

func (t *DepositPreauth) Authorize() string   { return t.str("Authorize") }
func (t *DepositPreauth) Unauthorize() string { return t.str("Unauthorize") }

// DelegateSet delegates a permission set to another account.
type DelegateSet struct {
	*Base
}

func init() {
	register(TypeDelegateSet, fields.Schema{
		"Authorize":   {Kind: fields.AccountID, Required: true},
		"Permissions": {Kind: fields.STArray},
	}, func(b *Base) Transaction { return &DelegateSet{Base: b} })
}

func (t *DelegateSet) Authorize() string { return t.str("Authorize") }

// Permissions lists the delegated permission values. An empty list revokes
// the delegation.
func (t *DelegateSet) Permissions() []string {
	var permissions []string
	for _, wrapper := range t.objects("Permissions") {
		inner, ok := wrapper["Permission"].(map[string]any)
		if !ok {
			continue
		}
		if value, ok := inner["PermissionValue"].(string); ok {
			permissions = append(permissions, value)
		}
	}
	return permissions
}

// SetRemarks attaches free-form remarks to a ledger object.
type SetRemarks struct {
	*Base
}

func init() {
	register(TypeSetRemarks, fields.Schema{
		"ObjectID": {Kind: fields.Hash256, Required: true},
		"Remarks":  {Kind: fields.STArray},
	}, func(b *Base) Transaction { return &SetRemarks{Base: b} })
}

func (t *SetRemarks) ObjectID() string { return t.str("ObjectID") }

// Remark is a decoded name/value annotation on a ledger object.
type Remark struct {
	Name      string
	Value     string
	Immutable bool
}

func (t *SetRemarks) Remarks() []Remark {
	var remarks []Remark
	for _, wrapper := range t.objects("Remarks") {
		inner, ok := wrapper["Remark"].(map[string]any)
		if !ok {
			continue
		}
		name, _ := inner["RemarkName"].(string)
		value, _ := inner["RemarkValue"].(string)
		flags, _ := inner["Flags"].(float64)
		remarks = append(remarks, Remark{
			Name:      hexToUTF8(name),
			Value:     hexToUTF8(value),
			Immutable: uint32(flags)&1 != 0,
		})
	}
	return remarks
}

// hexToUTF8 renders a hex blob as text, falling back to the raw string when
// it is not valid hex.
func hexToUTF8(s string) string {
	if s == "" {
		return ""
	}
	decoded, err := hex.DecodeString(s)
	if err != nil {
		return s
	}
	return string(decoded)
}
