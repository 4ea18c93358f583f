package fields

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Kind identifies a primitive wire field type. Every kind knows how to turn
// the raw JSON value into its domain representation.
type Kind int

const (
	String Kind = iota
	AccountID
	AmountKind
	Hash128
	Hash192
	Hash256
	UInt8
	UInt16
	UInt32
	UInt64
	Blob
	STArray
	IssueKind
)

func (k Kind) String() string {
	switch k {
	case String:
		return "String"
	case AccountID:
		return "AccountID"
	case AmountKind:
		return "Amount"
	case Hash128:
		return "Hash128"
	case Hash192:
		return "Hash192"
	case Hash256:
		return "Hash256"
	case UInt8:
		return "UInt8"
	case UInt16:
		return "UInt16"
	case UInt32:
		return "UInt32"
	case UInt64:
		return "UInt64"
	case Blob:
		return "Blob"
	case STArray:
		return "STArray"
	case IssueKind:
		return "Issue"
	default:
		return "Unknown"
	}
}

// Issue is a currency/issuer pair without a value, as used by AMM asset
// definitions.
type Issue struct {
	Currency string
	Issuer   string
}

// Options carries decode context. NativeAsset is the currency code native
// amounts are reported under ("XRP" on the main ledger, "XAH" on Xahau).
type Options struct {
	NativeAsset string
}

// DefaultOptions is the decode context used when the caller does not supply
// one.
var DefaultOptions = Options{NativeAsset: "XRP"}

func (o Options) nativeAsset() string {
	if o.NativeAsset == "" {
		return DefaultOptions.NativeAsset
	}
	return o.NativeAsset
}

// decodeKind converts a raw JSON value into the kind's domain representation.
// Errors carry the reason only; the schema decoder attaches the field name.
func decodeKind(k Kind, raw any, opts Options) (any, error) {
	switch k {
	case String:
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("expected string, got %T", raw)
		}
		return s, nil
	case AccountID:
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("expected account address string, got %T", raw)
		}
		if s == "" || s[0] != 'r' {
			return nil, errors.New("account address must start with 'r'")
		}
		return s, nil
	case AmountKind:
		return decodeAmount(raw, opts.nativeAsset())
	case Hash128:
		return decodeHash(raw, 32)
	case Hash192:
		return decodeHash(raw, 48)
	case Hash256:
		return decodeHash(raw, 64)
	case UInt8:
		return decodeUint(raw, math.MaxUint8)
	case UInt16:
		return decodeUint(raw, math.MaxUint16)
	case UInt32:
		return decodeUint(raw, math.MaxUint32)
	case UInt64:
		return decodeUint64(raw)
	case Blob:
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("expected hex blob string, got %T", raw)
		}
		if !isHex(s) {
			return nil, errors.New("blob is not valid hex")
		}
		return s, nil
	case STArray:
		arr, ok := raw.([]any)
		if !ok {
			return nil, fmt.Errorf("expected array of objects, got %T", raw)
		}
		out := make([]map[string]any, 0, len(arr))
		for _, item := range arr {
			obj, ok := item.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("expected object in array, got %T", item)
			}
			out = append(out, obj)
		}
		return out, nil
	case IssueKind:
		obj, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("expected issue object, got %T", raw)
		}
		currency, ok := obj["currency"].(string)
		if !ok || currency == "" {
			return nil, errors.New("issue requires currency")
		}
		issuer, _ := obj["issuer"].(string)
		return Issue{Currency: currency, Issuer: issuer}, nil
	default:
		return nil, fmt.Errorf("unknown field kind %d", k)
	}
}

func decodeHash(raw any, hexLen int) (string, error) {
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("expected hash string, got %T", raw)
	}
	if len(s) != hexLen {
		return "", fmt.Errorf("expected %d hex characters, got %d", hexLen, len(s))
	}
	if !isHex(s) {
		return "", errors.New("hash is not valid hex")
	}
	return s, nil
}

// decodeUint accepts the number shapes encoding/json produces plus numeric
// strings, which some node responses use for 64-bit fields.
func decodeUint(raw any, max uint64) (any, error) {
	u, err := decodeUint64(raw)
	if err != nil {
		return nil, err
	}
	if u > max {
		return nil, fmt.Errorf("value %d exceeds field range", u)
	}
	switch max {
	case math.MaxUint8:
		return uint8(u), nil
	case math.MaxUint16:
		return uint16(u), nil
	default:
		return uint32(u), nil
	}
}

func decodeUint64(raw any) (uint64, error) {
	switch v := raw.(type) {
	case float64:
		if v < 0 || v != math.Trunc(v) {
			return 0, errors.New("expected unsigned integer")
		}
		return uint64(v), nil
	case string:
		u, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			// 64-bit fields also appear as hex strings on the wire
			u, err = strconv.ParseUint(v, 16, 64)
			if err != nil {
				return 0, errors.New("expected numeric string")
			}
		}
		return u, nil
	default:
		return 0, fmt.Errorf("expected number, got %T", raw)
	}
}

func isHex(s string) bool {
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
