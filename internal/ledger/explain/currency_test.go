package explain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCurrencyCode(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{"empty", "", ""},
		{"standard code", "USD", "USD"},
		{"standard code with spaces", " EUR ", "EUR"},
		{"hex code", "534F4C4F00000000000000000000000000000000", "SOLO"},
		{"hex lowercase xrp lookalike", "7872700000000000000000000000000000000000", "7872700000000000000000000000000000000000"},
		{"hex uppercase xrp lookalike", "5852500000000000000000000000000000000000", "5852500000000000000000000000000000000000"},
		{"hex non printable", "0102030000000000000000000000000000000000", "0102030000000000000000000000000000000000"},
		{"not hex at all", "ZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZ", "ZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZ"},
		{"short hex passthrough", "534F4C4F", "534F4C4F"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeCurrencyCode(tc.code))
		})
	}
}
