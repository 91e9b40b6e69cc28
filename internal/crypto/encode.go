package crypto

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
)

// B64 returns standard base64 encoding without newlines.
func B64(b []byte) string { return base64.StdEncoding.EncodeToString(b) }

// Hex returns lowercase hex.
func Hex(b []byte) string { return hex.EncodeToString(b) }

// Encode renders b in the named text encoding ("hex" or "base64").
func Encode(encoding string, b []byte) (string, error) {
	switch encoding {
	case "hex":
		return Hex(b), nil
	case "base64":
		return B64(b), nil
	default:
		return "", fmt.Errorf("unknown encoding %q", encoding)
	}
}

// Decode parses text in the named encoding. Surrounding whitespace is ignored.
func Decode(encoding, text string) ([]byte, error) {
	text = strings.TrimSpace(text)
	switch encoding {
	case "hex":
		return hex.DecodeString(text)
	case "base64":
		return base64.StdEncoding.DecodeString(text)
	default:
		return nil, fmt.Errorf("unknown encoding %q", encoding)
	}
}
