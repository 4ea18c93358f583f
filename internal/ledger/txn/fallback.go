package txn

import (
	"github.com/ledgerlens/ledgerlens/internal/ledger/fields"
	"github.com/ledgerlens/ledgerlens/internal/ledger/meta"
)

// Fallback holds a transaction of a type the decoder does not know. The raw
// payload is preserved unfiltered and the common fields are decoded
// best-effort, so new protocol additions flow through the pipeline instead
// of breaking it.
type Fallback struct {
	*Base
}

func newFallback(typeName string, raw map[string]any, m *meta.Meta, opts fields.Options) *Fallback {
	values := make(map[string]any, len(commonSchema))
	for name, f := range commonSchema {
		rawValue, present := raw[name]
		if !present || rawValue == nil {
			continue
		}
		// lenient: a field that does not decode is simply skipped
		v, err := fields.Decode(name, fields.Field{Kind: f.Kind, Codec: f.Codec}, rawValue, opts)
		if err != nil {
			continue
		}
		values[name] = v
	}

	return &Fallback{Base: &Base{
		typeName: typeName,
		raw:      raw,
		values:   values,
		meta:     m,
		opts:     opts,
	}}
}
