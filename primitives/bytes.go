// Package primitives implements the byte-level encodings shared by every
// consensus-bound derivation in this module: big-endian integer encoding,
// fixed-length label buffers, and the domain-separated hash wrapper.
package primitives

import "encoding/binary"

// Uint64BE encodes value as a 32-byte big-endian integer (24 leading zero
// bytes, 8 value bytes), matching the arbiter's uint256 slot convention.
func Uint64BE(value uint64) [32]byte {
	var out [32]byte
	binary.BigEndian.PutUint64(out[24:], value)
	return out
}

// Uint16BE encodes value as 2 big-endian bytes.
func Uint16BE(value uint16) [2]byte {
	var out [2]byte
	binary.BigEndian.PutUint16(out[:], value)
	return out
}

// Label16 is a 16-byte wire label buffer.
type Label16 [16]byte

// Xor16 xors two 16-byte buffers and returns a new 16-byte result.
func Xor16(a, b Label16) Label16 {
	var out Label16
	for i := range out {
		out[i] = a[i] ^ b[i]
	}
	return out
}
