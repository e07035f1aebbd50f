// Package commitment implements the two consensus-bound commitment
// structures over a garbled instance's ordered gate leaves: the
// incremental hash (IH) chain, a rolling left-fold used as the cheap
// running commitment to leaves as they are produced, and the sibling-
// sorted Merkle tree, used for the circuit layout (gate descriptors,
// independent of any seed) and for individual-leaf disputes.
package commitment

import (
	"github.com/denysRiman/privacy-preserving-auctions/errs"
	"github.com/denysRiman/privacy-preserving-auctions/primitives"
)

// IHRootFromHashes folds an ordered sequence of gate-block hashes into the
// terminal incremental-hash state: IH_0 = H(0 || B_0), IH_i = H(IH_{i-1} ||
// B_i). The empty-chain root is the zero value.
func IHRootFromHashes(blockHashes [][32]byte) [32]byte {
	var state [32]byte
	for _, h := range blockHashes {
		state = advanceIH(state, h)
	}
	return state
}

func advanceIH(prev, blockHash [32]byte) [32]byte {
	return primitives.DomainHash(prev[:], blockHash[:])
}

// IHProofFromHashes builds the proof for blockHashes[index]: empty when
// there is only one block; otherwise [prefixState, suffixBlocks...] where
// prefixState is the IH state folded over blockHashes[:index] and
// suffixBlocks are blockHashes[index+1:] in order.
func IHProofFromHashes(blockHashes [][32]byte, index int) ([][32]byte, error) {
	if len(blockHashes) == 0 {
		return nil, errs.New(errs.LayoutMismatch, "cannot build IH proof for empty chain")
	}
	if index < 0 || index >= len(blockHashes) {
		return nil, errs.New(errs.InputOutOfRange, "IH proof index %d out of range [0,%d)", index, len(blockHashes))
	}
	if len(blockHashes) == 1 {
		return nil, nil
	}

	var prefixState [32]byte
	for _, h := range blockHashes[:index] {
		prefixState = advanceIH(prefixState, h)
	}

	proof := make([][32]byte, 0, 1+len(blockHashes)-(index+1))
	proof = append(proof, prefixState)
	proof = append(proof, blockHashes[index+1:]...)
	return proof, nil
}

// VerifyIHProof replays proof against blockHash and checks the result
// equals root, mirroring the arbiter's incremental-proof processing: the
// first proof element (or the zero state, if proof is empty) seeds the
// fold with blockHash, then every remaining element is folded in order.
func VerifyIHProof(blockHash [32]byte, proof [][32]byte, root [32]byte) bool {
	var state [32]byte
	if len(proof) == 0 {
		state = advanceIH(state, blockHash)
	} else {
		state = advanceIH(proof[0], blockHash)
	}
	start := 1
	if start > len(proof) {
		start = len(proof)
	}
	for _, h := range proof[start:] {
		state = advanceIH(state, h)
	}
	return state == root
}
