package explain

import (
	"encoding/hex"
	"strings"
)

// NormalizeCurrencyCode renders a wire currency code for display. Standard
// three-letter codes pass through; 160-bit hex codes decode to their ASCII
// name when printable. Display-only: decoded entities keep the wire form.
func NormalizeCurrencyCode(code string) string {
	if code == "" {
		return ""
	}
	if len(code) == 3 {
		return strings.TrimSpace(code)
	}
	if len(code) != 40 || !isHexString(code) {
		return code
	}

	trimmed := strings.TrimRight(code, "0")
	// hex pairs only
	if len(trimmed)%2 != 0 {
		trimmed += "0"
	}
	decoded, err := hex.DecodeString(trimmed)
	if err != nil || len(decoded) == 0 {
		return code
	}
	for _, b := range decoded {
		if b < 0x21 || b > 0x7E {
			return code
		}
	}
	name := string(decoded)
	if strings.EqualFold(name, "xrp") {
		return code
	}
	return name
}

func isHexString(s string) bool {
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
