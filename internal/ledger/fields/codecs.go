package fields

import (
	"encoding/hex"
	"fmt"
	"time"
)

// rippleEpochOffset is the number of seconds between the Unix epoch and the
// ledger epoch (2000-01-01T00:00:00Z).
const rippleEpochOffset = 946684800

// Codec is an optional second-stage transform layered on top of a primitive
// kind.
type Codec int

const (
	NoCodec Codec = iota
	// RippleTime maps a ledger epoch integer to an absolute timestamp.
	RippleTime
	// TransferFee scales a basis-point integer to a percentage (÷ 1000).
	TransferFee
	// TransferRate scales a billionths transfer rate to a percentage.
	TransferRate
	// SignerEntries normalizes a SignerEntry wrapper list.
	SignerEntries
	// AuthAccounts normalizes an AuthAccount wrapper list to addresses.
	AuthAccounts
	// Memos hex-decodes memo wrapper entries.
	Memos
	// HookParameters normalizes a HookParameter wrapper list.
	HookParameters
)

// SignerEntry is a normalized entry of a signer list.
type SignerEntry struct {
	Account       string
	SignerWeight  uint16
	WalletLocator string
}

// Memo is a decoded memo attached to a transaction.
type Memo struct {
	Type   string
	Format string
	Data   string
}

// HookParameter is a normalized hook invocation parameter.
type HookParameter struct {
	Name  string
	Value string
}

// RippleTimeToTime converts a ledger epoch value to UTC time.
func RippleTimeToTime(rippleTime uint32) time.Time {
	return time.Unix(int64(rippleTime)+rippleEpochOffset, 0).UTC()
}

// TimeToRippleTime converts UTC time to a ledger epoch value.
func TimeToRippleTime(t time.Time) uint32 {
	return uint32(t.Unix() - rippleEpochOffset)
}

// applyCodec runs the codec over an already kind-decoded value.
func applyCodec(c Codec, v any) (any, error) {
	switch c {
	case NoCodec:
		return v, nil
	case RippleTime:
		u, ok := toUint32(v)
		if !ok {
			return nil, fmt.Errorf("ripple time codec expects uint32, got %T", v)
		}
		return RippleTimeToTime(u), nil
	case TransferFee:
		u, ok := toUint32(v)
		if !ok {
			return nil, fmt.Errorf("transfer fee codec expects uint32, got %T", v)
		}
		return float64(u) / 1000, nil
	case TransferRate:
		u, ok := toUint32(v)
		if !ok {
			return nil, fmt.Errorf("transfer rate codec expects uint32, got %T", v)
		}
		if u == 0 {
			return float64(0), nil
		}
		// billionths: 1_200_000_000 means a 20% transfer fee
		return (float64(u)/1_000_000 - 1000) / 10, nil
	case SignerEntries:
		return decodeSignerEntries(v)
	case AuthAccounts:
		return decodeAuthAccounts(v)
	case Memos:
		return decodeMemos(v)
	case HookParameters:
		return decodeHookParameters(v)
	default:
		return nil, fmt.Errorf("unknown codec %d", c)
	}
}

func toUint32(v any) (uint32, bool) {
	switch u := v.(type) {
	case uint32:
		return u, true
	case uint16:
		return uint32(u), true
	case uint8:
		return uint32(u), true
	default:
		return 0, false
	}
}

func decodeSignerEntries(v any) ([]SignerEntry, error) {
	arr, ok := v.([]map[string]any)
	if !ok {
		return nil, fmt.Errorf("signer entries codec expects object array, got %T", v)
	}
	entries := make([]SignerEntry, 0, len(arr))
	for _, wrapper := range arr {
		inner, ok := wrapper["SignerEntry"].(map[string]any)
		if !ok {
			return nil, fmt.Errorf("expected SignerEntry wrapper")
		}
		account, _ := inner["Account"].(string)
		if account == "" {
			return nil, fmt.Errorf("signer entry requires Account")
		}
		weight, _ := inner["SignerWeight"].(float64)
		locator, _ := inner["WalletLocator"].(string)
		entries = append(entries, SignerEntry{
			Account:       account,
			SignerWeight:  uint16(weight),
			WalletLocator: locator,
		})
	}
	return entries, nil
}

func decodeAuthAccounts(v any) ([]string, error) {
	arr, ok := v.([]map[string]any)
	if !ok {
		return nil, fmt.Errorf("auth accounts codec expects object array, got %T", v)
	}
	accounts := make([]string, 0, len(arr))
	for _, wrapper := range arr {
		inner, ok := wrapper["AuthAccount"].(map[string]any)
		if !ok {
			return nil, fmt.Errorf("expected AuthAccount wrapper")
		}
		account, _ := inner["Account"].(string)
		if account == "" {
			return nil, fmt.Errorf("auth account requires Account")
		}
		accounts = append(accounts, account)
	}
	return accounts, nil
}

func decodeMemos(v any) ([]Memo, error) {
	arr, ok := v.([]map[string]any)
	if !ok {
		return nil, fmt.Errorf("memos codec expects object array, got %T", v)
	}
	memos := make([]Memo, 0, len(arr))
	for _, wrapper := range arr {
		inner, ok := wrapper["Memo"].(map[string]any)
		if !ok {
			return nil, fmt.Errorf("expected Memo wrapper")
		}
		memos = append(memos, Memo{
			Type:   hexField(inner, "MemoType"),
			Format: hexField(inner, "MemoFormat"),
			Data:   hexField(inner, "MemoData"),
		})
	}
	return memos, nil
}

func decodeHookParameters(v any) ([]HookParameter, error) {
	arr, ok := v.([]map[string]any)
	if !ok {
		return nil, fmt.Errorf("hook parameters codec expects object array, got %T", v)
	}
	params := make([]HookParameter, 0, len(arr))
	for _, wrapper := range arr {
		inner, ok := wrapper["HookParameter"].(map[string]any)
		if !ok {
			return nil, fmt.Errorf("expected HookParameter wrapper")
		}
		name, _ := inner["HookParameterName"].(string)
		value, _ := inner["HookParameterValue"].(string)
		params = append(params, HookParameter{Name: name, Value: value})
	}
	return params, nil
}

// hexField returns the UTF-8 decoding of a hex string member, or the raw
// string when it is not valid hex.
func hexField(obj map[string]any, key string) string {
	s, ok := obj[key].(string)
	if !ok {
		return ""
	}
	decoded, err := hex.DecodeString(s)
	if err != nil {
		return s
	}
	return string(decoded)
}
