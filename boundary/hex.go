// Package boundary renders and parses the core's values in the canonical
// transport encoding the arbiter expects: 0x-prefixed hex for fixed-size
// values, bracket-comma strings for lists, parenthesized comma strings for
// tuples. Nothing here is consensus-critical on its own, but a
// misformatted boundary value is indistinguishable from a malformed
// request to the arbiter, so parsing is strict.
package boundary

import (
	"encoding/hex"
	"strings"

	"github.com/denysRiman/privacy-preserving-auctions/errs"
)

// Hex renders bytes as a 0x-prefixed lowercase hex string.
func Hex(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}

// Hex32 renders a 32-byte value as 0x-prefixed hex.
func Hex32(v [32]byte) string { return Hex(v[:]) }

// Hex16 renders a 16-byte value as 0x-prefixed hex.
func Hex16(v [16]byte) string { return Hex(v[:]) }

// strip0x removes a leading "0x"/"0X" prefix, if present.
func strip0x(s string) string {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return s[2:]
	}
	return s
}

// DecodeHex parses a hex string with an optional 0x/0X prefix into bytes.
func DecodeHex(s string) ([]byte, error) {
	raw := strip0x(strings.TrimSpace(s))
	b, err := hex.DecodeString(raw)
	if err != nil {
		return nil, errs.New(errs.MalformedEncoding, "invalid hex %q: %v", s, err)
	}
	return b, nil
}

// DecodeFixed parses s into exactly n bytes, failing if the decoded
// length differs.
func DecodeFixed(s string, n int) ([]byte, error) {
	b, err := DecodeHex(s)
	if err != nil {
		return nil, err
	}
	if len(b) != n {
		return nil, errs.New(errs.MalformedEncoding, "expected %d bytes, got %d", n, len(b))
	}
	return b, nil
}

// DecodeBytes32 parses a hex string into a 32-byte array.
func DecodeBytes32(s string) ([32]byte, error) {
	var out [32]byte
	b, err := DecodeFixed(s, 32)
	if err != nil {
		return out, err
	}
	copy(out[:], b)
	return out, nil
}

// DecodeBytes16 parses a hex string into a 16-byte array.
func DecodeBytes16(s string) ([16]byte, error) {
	var out [16]byte
	b, err := DecodeFixed(s, 16)
	if err != nil {
		return out, err
	}
	copy(out[:], b)
	return out, nil
}

// DecodeLeaf71 parses a hex string into a 71-byte gate-leaf blob.
func DecodeLeaf71(s string) ([]byte, error) {
	return DecodeFixed(s, 71)
}

// SolidityHexLiteral renders bytes as a Solidity hex string literal
// (hex"...") for pasting straight into an arbiter-side test fixture.
func SolidityHexLiteral(b []byte) string {
	return `hex"` + hex.EncodeToString(b) + `"`
}

// DecodeBytes32CSV parses "[]", "", or a comma-separated, optionally
// bracketed list of 32-byte hex values into a slice.
func DecodeBytes32CSV(s string) ([][32]byte, error) {
	trimmed := strings.TrimSpace(s)
	trimmed = strings.TrimPrefix(trimmed, "[")
	trimmed = strings.TrimSuffix(trimmed, "]")
	trimmed = strings.TrimSpace(trimmed)
	if trimmed == "" {
		return nil, nil
	}

	parts := strings.Split(trimmed, ",")
	out := make([][32]byte, len(parts))
	for i, part := range parts {
		v, err := DecodeBytes32(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
