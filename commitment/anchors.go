package commitment

import "github.com/denysRiman/privacy-preserving-auctions/primitives"

// AnchorHash hashes a 16-byte output label right-padded to 32 bytes with
// zero bytes, the encoding the arbiter expects for h0/h1: H(label ||
// 0x00*16).
func AnchorHash(label primitives.Label16) [32]byte {
	var padded [32]byte
	copy(padded[:16], label[:])
	return primitives.DomainHash(padded[:])
}

// SeedCommitment is the binding commitment to a per-instance garbling
// seed: H(seed), opened only during cut-and-choose or dispute adjudication.
func SeedCommitment(seed [32]byte) [32]byte {
	return primitives.DomainHash(seed[:])
}
