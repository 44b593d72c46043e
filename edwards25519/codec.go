package edwards25519

import (
	"encoding/hex"
	"fmt"
)

// HexToBytes decodes a hex string, accepted case-insensitively, into raw
// bytes. It fails with an error wrapping the odd-length/non-hex-digit
// cases the spec's byte/number codec contract (4.B) calls out explicitly.
func HexToBytes(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("edwards25519: odd-length hex string (%d chars)", len(s))
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("edwards25519: invalid hex digit: %w", err)
	}
	return b, nil
}

// BytesToHex renders b as lowercase hex with no separators or prefix.
func BytesToHex(b []byte) string {
	return hex.EncodeToString(b)
}

// Concat returns the concatenation of parts as a single byte slice.
func Concat(parts ...[]byte) []byte {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]byte, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// Normalize32 accepts either a 32-byte buffer or a 64-character hex string
// and returns the raw 32 bytes, per the length-checked normalization
// contract of spec 4.B. Any other shape is rejected.
func Normalize32(v interface{}) ([32]byte, error) {
	var out [32]byte
	switch x := v.(type) {
	case []byte:
		if len(x) != 32 {
			return out, fmt.Errorf("edwards25519: expected 32 bytes, got %d", len(x))
		}
		copy(out[:], x)
		return out, nil
	case string:
		b, err := HexToBytes(x)
		if err != nil {
			return out, err
		}
		if len(b) != 32 {
			return out, fmt.Errorf("edwards25519: expected 64 hex chars, got %d", len(x))
		}
		copy(out[:], b)
		return out, nil
	default:
		return out, fmt.Errorf("edwards25519: unsupported input type %T", v)
	}
}

// NormalizeBytes accepts either a []byte or a hex string and returns raw
// bytes of arbitrary length (used for messages, which are not
// length-constrained).
func NormalizeBytes(v interface{}) ([]byte, error) {
	switch x := v.(type) {
	case []byte:
		return x, nil
	case string:
		return HexToBytes(x)
	default:
		return nil, fmt.Errorf("edwards25519: unsupported input type %T", v)
	}
}
