package txn

import (
	"github.com/ledgerlens/ledgerlens/internal/ledger/fields"
)

// MPTokenIssuanceCreate defines a new multi-purpose token issuance.
type MPTokenIssuanceCreate struct {
	*Base
}

func init() {
	register(TypeMPTokenIssuanceCreate, fields.Schema{
		"AssetScale":      {Kind: fields.UInt8},
		"MaximumAmount":   {Kind: fields.UInt64},
		"TransferFee":     {Kind: fields.UInt16, Codec: fields.TransferFee},
		"MPTokenMetadata": {Kind: fields.Blob},
	}, func(b *Base) Transaction { return &MPTokenIssuanceCreate{Base: b} })
}

func (t *MPTokenIssuanceCreate) AssetScale() *uint8      { return t.uint8p("AssetScale") }
func (t *MPTokenIssuanceCreate) MaximumAmount() *uint64  { return t.uint64p("MaximumAmount") }
func (t *MPTokenIssuanceCreate) TransferFee() *float64   { return t.percent("TransferFee") }
func (t *MPTokenIssuanceCreate) MPTokenMetadata() string { return hexToUTF8(t.str("MPTokenMetadata")) }

// MPTokenIssuanceDestroy removes an issuance with no outstanding holders.
type MPTokenIssuanceDestroy struct {
	*Base
}

func init() {
	register(TypeMPTokenIssuanceDestroy, fields.Schema{
		"MPTokenIssuanceID": {Kind: fields.Hash192, Required: true},
	}, func(b *Base) Transaction { return &MPTokenIssuanceDestroy{Base: b} })
}

func (t *MPTokenIssuanceDestroy) MPTokenIssuanceID() string { return t.str("MPTokenIssuanceID") }

// MPTokenIssuanceSet locks or unlocks an issuance, globally or per holder.
type MPTokenIssuanceSet struct {
	*Base
}

func init() {
	register(TypeMPTokenIssuanceSet, fields.Schema{
		"MPTokenIssuanceID": {Kind: fields.Hash192, Required: true},
		"Holder":            {Kind: fields.AccountID},
	}, func(b *Base) Transaction { return &MPTokenIssuanceSet{Base: b} })
}

func (t *MPTokenIssuanceSet) MPTokenIssuanceID() string { return t.str("MPTokenIssuanceID") }
func (t *MPTokenIssuanceSet) Holder() string            { return t.str("Holder") }

// MPTokenAuthorize opts a holder in or out of an issuance.
type MPTokenAuthorize struct {
	*Base
}

func init() {
	register(TypeMPTokenAuthorize, fields.Schema{
		"MPTokenIssuanceID": {Kind: fields.Hash192, Required: true},
		"Holder":            {Kind: fields.AccountID},
	}, func(b *Base) Transaction { return &MPTokenAuthorize{Base: b} })
}

func (t *MPTokenAuthorize) MPTokenIssuanceID() string { return t.str("MPTokenIssuanceID") }
func (t *MPTokenAuthorize) Holder() string            { return t.str("Holder") }
