// Package fields implements the primitive field types and value codecs the
// entity decoders are built on. A variant declares its shape as a Schema, a
// static table of field name to descriptor, and the generic DecodeSchema
// walks the raw payload against it.
package fields

// Field describes one declared field of a variant: its primitive kind, an
// optional second-stage codec, and whether a well-formed payload must carry
// it.
type Field struct {
	Kind     Kind
	Codec    Codec
	Required bool
}

// Schema is a variant's field table, fixed at variant-definition time.
type Schema map[string]Field

// Merge returns a new schema combining the receiver with extra descriptors.
// Descriptors in extra win on name collision.
func (s Schema) Merge(extra Schema) Schema {
	merged := make(Schema, len(s)+len(extra))
	for name, f := range s {
		merged[name] = f
	}
	for name, f := range extra {
		merged[name] = f
	}
	return merged
}

// Decode runs one descriptor against a raw value: primitive kind first, then
// the optional codec. The field name is only used for error reporting.
func Decode(name string, f Field, raw any, opts Options) (any, error) {
	v, err := decodeKind(f.Kind, raw, opts)
	if err != nil {
		return nil, &MalformedFieldError{Field: name, Reason: err.Error()}
	}
	v, err = applyCodec(f.Codec, v)
	if err != nil {
		return nil, &MalformedFieldError{Field: name, Reason: err.Error()}
	}
	return v, nil
}

// DecodeSchema decodes every declared field present in the raw payload.
// Required-but-absent fields fail with MissingFieldError; unknown extra
// fields in the payload are ignored for forward compatibility. The raw
// payload is treated as frozen input and never mutated.
func DecodeSchema(schema Schema, raw map[string]any, opts Options) (map[string]any, error) {
	decoded := make(map[string]any, len(schema))
	for name, f := range schema {
		rawValue, present := raw[name]
		if !present || rawValue == nil {
			if f.Required {
				return nil, &MissingFieldError{Field: name}
			}
			continue
		}
		v, err := Decode(name, f, rawValue, opts)
		if err != nil {
			return nil, err
		}
		decoded[name] = v
	}
	return decoded, nil
}
