package txn

import (
	"time"

	"github.com/ledgerlens/ledgerlens/internal/ledger/fields"
)

// CredentialCreate issues a credential about a subject account.
type CredentialCreate struct {
	*Base
}

func init() {
	register(TypeCredentialCreate, fields.Schema{
		"Subject":        {Kind: fields.AccountID, Required: true},
		"CredentialType": {Kind: fields.Blob, Required: true},
		"Expiration":     {Kind: fields.UInt32, Codec: fields.RippleTime},
		"URI":            {Kind: fields.Blob},
	}, func(b *Base) Transaction { return &CredentialCreate{Base: b} })
}

func (t *CredentialCreate) Subject() string        { return t.str("Subject") }
func (t *CredentialCreate) CredentialType() string { return hexToUTF8(t.str("CredentialType")) }
func (t *CredentialCreate) Expiration() *time.Time { return t.timep("Expiration") }
func (t *CredentialCreate) URI() string            { return hexToUTF8(t.str("URI")) }

// CredentialAccept is the subject's acceptance of an issued credential.
type CredentialAccept struct {
	*Base
}

func init() {
	register(TypeCredentialAccept, fields.Schema{
		"Issuer":         {Kind: fields.AccountID, Required: true},
		"CredentialType": {Kind: fields.Blob, Required: true},
	}, func(b *Base) Transaction { return &CredentialAccept{Base: b} })
}

func (t *CredentialAccept) Issuer() string         { return t.str("Issuer") }
func (t *CredentialAccept) CredentialType() string { return hexToUTF8(t.str("CredentialType")) }

// CredentialDelete removes a credential; issuer, subject, or anyone after
// expiry may delete it.
type CredentialDelete struct {
	*Base
}

func init() {
	register(TypeCredentialDelete, fields.Schema{
		"CredentialType": {Kind: fields.Blob, Required: true},
		"Subject":        {Kind: fields.AccountID},
		"Issuer":         {Kind: fields.AccountID},
	}, func(b *Base) Transaction { return &CredentialDelete{Base: b} })
}

func (t *CredentialDelete) CredentialType() string { return hexToUTF8(t.str("CredentialType")) }
func (t *CredentialDelete) Subject() string        { return t.str("Subject") }
func (t *CredentialDelete) Issuer() string         { return t.str("Issuer") }
