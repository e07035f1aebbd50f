package primitives

import "golang.org/x/crypto/sha3"

// DomainHash hashes the ordered sequence of byte segments with the 256-bit
// Keccak variant, the same construction the external arbiter uses. Segments
// are fed into the sponge in order with no framing bytes between them: the
// hash is over the straight concatenation. Every call site must agree
// bit-for-bit on segment order.
func DomainHash(segments ...[]byte) [32]byte {
	h := sha3.NewLegacyKeccak256()
	for _, seg := range segments {
		h.Write(seg)
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}
