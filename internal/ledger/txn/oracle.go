package txn

import (
	"github.com/ledgerlens/ledgerlens/internal/ledger/fields"
)

// OracleSet creates or updates a price oracle document.
type OracleSet struct {
	*Base
}

func init() {
	register(TypeOracleSet, fields.Schema{
		"OracleDocumentID": {Kind: fields.UInt32, Required: true},
		"Provider":         {Kind: fields.Blob},
		"URI":              {Kind: fields.Blob},
		"AssetClass":       {Kind: fields.Blob},
		"LastUpdateTime":   {Kind: fields.UInt32},
		"PriceDataSeries":  {Kind: fields.STArray},
	}, func(b *Base) Transaction { return &OracleSet{Base: b} })
}

func (t *OracleSet) OracleDocumentID() uint32 {
	if v := t.uint32p("OracleDocumentID"); v != nil {
		return *v
	}
	return 0
}

func (t *OracleSet) Provider() string   { return hexToUTF8(t.str("Provider")) }
func (t *OracleSet) URI() string        { return hexToUTF8(t.str("URI")) }
func (t *OracleSet) AssetClass() string { return hexToUTF8(t.str("AssetClass")) }

// LastUpdateTime is a Unix timestamp, not a ledger epoch value.
func (t *OracleSet) LastUpdateTime() *uint32 { return t.uint32p("LastUpdateTime") }

// PriceData is one asset-pair price point of an oracle update.
type PriceData struct {
	BaseAsset  string
	QuoteAsset string
	AssetPrice uint64
	Scale      uint8
}

func (t *OracleSet) PriceDataSeries() []PriceData {
	var series []PriceData
	for _, wrapper := range t.objects("PriceDataSeries") {
		inner, ok := wrapper["PriceData"].(map[string]any)
		if !ok {
			continue
		}
		entry := PriceData{}
		entry.BaseAsset, _ = inner["BaseAsset"].(string)
		entry.QuoteAsset, _ = inner["QuoteAsset"].(string)
		if price, ok := inner["AssetPrice"].(string); ok {
			if v, err := fields.Decode("AssetPrice", fields.Field{Kind: fields.UInt64}, price, t.opts); err == nil {
				entry.AssetPrice = v.(uint64)
			}
		}
		if scale, ok := inner["Scale"].(float64); ok {
			entry.Scale = uint8(scale)
		}
		series = append(series, entry)
	}
	return series
}

// OracleDelete removes a price oracle document.
type OracleDelete struct {
	*Base
}

func init() {
	register(TypeOracleDelete, fields.Schema{
		"OracleDocumentID": {Kind: fields.UInt32, Required: true},
	}, func(b *Base) Transaction { return &OracleDelete{Base: b} })
}

func (t *OracleDelete) OracleDocumentID() uint32 {
	if v := t.uint32p("OracleDocumentID"); v != nil {
		return *v
	}
	return 0
}
