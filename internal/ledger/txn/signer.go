package txn

import (
	"github.com/ledgerlens/ledgerlens/internal/ledger/fields"
)

// SetRegularKey assigns or clears the account's regular signing key.
type SetRegularKey struct {
	*Base
}

func init() {
	register(TypeSetRegularKey, fields.Schema{
		"RegularKey": {Kind: fields.AccountID},
	}, func(b *Base) Transaction { return &SetRegularKey{Base: b} })
}

func (t *SetRegularKey) RegularKey() string { return t.str("RegularKey") }

// IsRemoval reports whether the transaction clears the regular key instead
// of setting one.
func (t *SetRegularKey) IsRemoval() bool { return t.RegularKey() == "" }

// SignerListSet installs or removes the account's multi-signing list.
type SignerListSet struct {
	*Base
}

func init() {
	register(TypeSignerListSet, fields.Schema{
		"SignerQuorum":  {Kind: fields.UInt32, Required: true},
		"SignerEntries": {Kind: fields.STArray, Codec: fields.SignerEntries},
	}, func(b *Base) Transaction { return &SignerListSet{Base: b} })
}

func (t *SignerListSet) SignerQuorum() uint32 {
	if v := t.uint32p("SignerQuorum"); v != nil {
		return *v
	}
	return 0
}

func (t *SignerListSet) SignerEntries() []fields.SignerEntry {
	v, _ := t.values["SignerEntries"].([]fields.SignerEntry)
	return v
}

// IsRemoval reports whether the list is being deleted; a zero quorum with no
// entries removes the signer list.
func (t *SignerListSet) IsRemoval() bool {
	return t.SignerQuorum() == 0 && len(t.SignerEntries()) == 0
}
