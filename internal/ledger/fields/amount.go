package fields

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// DropsPerNative is the number of indivisible base units in one unit of the
// native asset.
const DropsPerNative = 1_000_000

// Amount is a decoded currency amount. Native-asset amounts carry the
// human-scale value (never drops) with Native set; issued-currency amounts
// keep currency/issuer/value exactly as they appear on the wire.
type Amount struct {
	Currency string
	Issuer   string
	Value    string
	Native   bool
}

// Decimal returns the amount value as an exact decimal.
func (a Amount) Decimal() (decimal.Decimal, error) {
	return decimal.NewFromString(a.Value)
}

// IsZero reports whether the amount value is zero.
func (a Amount) IsZero() bool {
	d, err := a.Decimal()
	if err != nil {
		return false
	}
	return d.IsZero()
}

func (a Amount) String() string {
	if a.Issuer != "" {
		return fmt.Sprintf("%s %s (%s)", a.Value, a.Currency, a.Issuer)
	}
	return fmt.Sprintf("%s %s", a.Value, a.Currency)
}

// DropsToNative converts an integer drops string to a human-scale decimal
// string. The conversion is exact; drops are a fixed-point representation
// with six decimal places.
func DropsToNative(drops string) (string, error) {
	d, err := decimal.NewFromString(drops)
	if err != nil {
		return "", err
	}
	if strings.ContainsAny(drops, ".eE") {
		return "", errors.New("drops value must be an integer string")
	}
	return d.Shift(-6).String(), nil
}

// NativeToDrops converts a human-scale native amount to an integer drops
// string.
func NativeToDrops(value string) (string, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return "", err
	}
	shifted := d.Shift(6)
	if !shifted.Equal(shifted.Truncate(0)) {
		return "", errors.New("native amount has more than 6 decimal places")
	}
	return shifted.String(), nil
}

// decodeAmount handles the dual wire representation of amounts: a bare
// numeric string is the native asset in drops and is scaled to human units
// here; an object {currency, issuer, value} is an issued currency and passes
// through unchanged (issuer casing preserved verbatim).
func decodeAmount(raw any, nativeAsset string) (Amount, error) {
	switch v := raw.(type) {
	case string:
		value, err := DropsToNative(v)
		if err != nil {
			return Amount{}, fmt.Errorf("native amount: %w", err)
		}
		return Amount{Currency: nativeAsset, Value: value, Native: true}, nil
	case map[string]any:
		currency, ok := v["currency"].(string)
		if !ok || currency == "" {
			return Amount{}, errors.New("issued amount requires currency")
		}
		value, ok := v["value"].(string)
		if !ok {
			return Amount{}, errors.New("issued amount requires value")
		}
		if _, err := decimal.NewFromString(value); err != nil {
			return Amount{}, errors.New("issued amount value is not numeric")
		}
		issuer, _ := v["issuer"].(string)
		return Amount{Currency: currency, Issuer: issuer, Value: value}, nil
	default:
		return Amount{}, fmt.Errorf("unexpected amount shape %T", raw)
	}
}
