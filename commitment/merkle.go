package commitment

import (
	"bytes"

	"github.com/denysRiman/privacy-preserving-auctions/errs"
	"github.com/denysRiman/privacy-preserving-auctions/primitives"
)

// NodeHash is the OpenZeppelin-compatible commutative pair hash: the
// smaller of the two inputs, lexicographically, is always hashed first.
// Substituting positional left/right hashing breaks verification against
// an external verifier that expects this convention.
func NodeHash(a, b [32]byte) [32]byte {
	if bytes.Compare(a[:], b[:]) <= 0 {
		return primitives.DomainHash(a[:], b[:])
	}
	return primitives.DomainHash(b[:], a[:])
}

// MerkleRoot builds the tree root over leaves using commutative node
// hashing, duplicating the last node of any odd-width level. The root of
// an empty leaf set is the zero value.
func MerkleRoot(leaves [][32]byte) [32]byte {
	if len(leaves) == 0 {
		return [32]byte{}
	}
	level := append([][32]byte(nil), leaves...)
	for len(level) > 1 {
		next := make([][32]byte, 0, (len(level)+1)/2)
		for i := 0; i < len(level); i += 2 {
			left := level[i]
			right := left
			if i+1 < len(level) {
				right = level[i+1]
			}
			next = append(next, NodeHash(left, right))
		}
		level = next
	}
	return level[0]
}

// MerkleProof builds an OpenZeppelin-style inclusion proof for
// leaves[index]: one sibling hash per tree level, from leaf to root.
func MerkleProof(leaves [][32]byte, index int) ([][32]byte, error) {
	if len(leaves) == 0 {
		return nil, errs.New(errs.LayoutMismatch, "cannot build Merkle proof for empty tree")
	}
	if index < 0 || index >= len(leaves) {
		return nil, errs.New(errs.InputOutOfRange, "Merkle proof index %d out of range [0,%d)", index, len(leaves))
	}

	var proof [][32]byte
	idx := index
	level := append([][32]byte(nil), leaves...)

	for len(level) > 1 {
		var sibling [32]byte
		if idx%2 == 0 {
			if idx+1 < len(level) {
				sibling = level[idx+1]
			} else {
				sibling = level[idx]
			}
		} else {
			sibling = level[idx-1]
		}
		proof = append(proof, sibling)

		next := make([][32]byte, 0, (len(level)+1)/2)
		for i := 0; i < len(level); i += 2 {
			left := level[i]
			right := left
			if i+1 < len(level) {
				right = level[i+1]
			}
			next = append(next, NodeHash(left, right))
		}
		idx /= 2
		level = next
	}

	return proof, nil
}

// VerifyMerkleProof replays proof against leaf and checks the result
// equals root.
func VerifyMerkleProof(leaf [32]byte, proof [][32]byte, root [32]byte) bool {
	computed := leaf
	for _, sibling := range proof {
		computed = NodeHash(computed, sibling)
	}
	return computed == root
}
