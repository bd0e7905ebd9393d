package turboshake

import (
	"encoding/hex"
	"strings"
)

// EncodeHex returns the uppercase hexadecimal encoding of b, two characters
// per byte with no separators.
func EncodeHex(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}

// DecodeHex decodes a hexadecimal string. It accepts mixed case and silently
// drops any non-hexadecimal characters (spaces, colons, etc.) before parsing.
// An odd number of hex digits is an *ArgumentError.
func DecodeHex(s string) ([]byte, error) {
	s = strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
			return r
		default:
			return -1
		}
	}, s)
	return DecodeHexStrict(s)
}

// DecodeHexStrict decodes a hexadecimal string, rejecting any input that is
// not an even number of hex digits.
func DecodeHexStrict(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, &ArgumentError{msg: "invalid hex input: " + err.Error()}
	}
	return b, nil
}
