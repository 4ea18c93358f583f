package txn

import (
	"github.com/ledgerlens/ledgerlens/internal/ledger/fields"
)

// DIDSet creates or updates the account's decentralized identifier entry.
type DIDSet struct {
	*Base
}

func init() {
	register(TypeDIDSet, fields.Schema{
		"URI":         {Kind: fields.Blob},
		"Data":        {Kind: fields.Blob},
		"DIDDocument": {Kind: fields.Blob},
	}, func(b *Base) Transaction { return &DIDSet{Base: b} })
}

func (t *DIDSet) URI() string         { return hexToUTF8(t.str("URI")) }
func (t *DIDSet) Data() string        { return t.str("Data") }
func (t *DIDSet) DIDDocument() string { return t.str("DIDDocument") }

// DIDDelete removes the account's decentralized identifier entry.
type DIDDelete struct {
	*Base
}

func init() {
	register(TypeDIDDelete, fields.Schema{}, func(b *Base) Transaction {
		return &DIDDelete{Base: b}
	})
}
