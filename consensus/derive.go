// Package consensus implements the domain-separated hash derivations that
// are bit-for-bit consensus-critical with the on-chain arbiter: wire-label
// derivation, permutation-bit derivation, row-key derivation, pad
// expansion, and layout/gate-block leaf hashing (the 71-byte leaf
// encoding itself lives in package circuit). Every exported function here must agree byte-for-byte
// with the arbiter's Solidity implementation; nothing here may be
// reordered or reframed without breaking adjudication.
package consensus

import (
	"github.com/denysRiman/privacy-preserving-auctions/primitives"
)

// Opcode identifies a gate's boolean operation. Numeric values are
// consensus-bound: AND=0, XOR=1, NOT=2.
type Opcode byte

// Supported gate opcodes.
const (
	AND Opcode = 0
	XOR Opcode = 1
	NOT Opcode = 2
)

func (op Opcode) String() string {
	switch op {
	case AND:
		return "AND"
	case XOR:
		return "XOR"
	case NOT:
		return "NOT"
	default:
		return "INVALID"
	}
}

// Truth evaluates the gate's truth table for semantic input bits a, b.
// NOT always returns 0: its two rows are trivially one-to-one and are
// canonicalized away, so the truth table is not used for row generation.
func Truth(op Opcode, a, b uint8) uint8 {
	switch op {
	case AND:
		return (a & b) & 1
	case XOR:
		return (a ^ b) & 1
	case NOT:
		return 0
	default:
		return 0
	}
}

// FlipBit derives the per-wire permutation-flip bit:
// H("P" || circuitId || instanceId || wireId || seed), LSB of the last byte.
func FlipBit(circuitID [32]byte, instanceID uint64, wireID uint16, seed [32]byte) uint8 {
	inst := primitives.Uint64BE(instanceID)
	wire := primitives.Uint16BE(wireID)
	h := primitives.DomainHash([]byte("P"), circuitID[:], inst[:], wire[:], seed[:])
	return h[31] & 1
}

// WireLabel derives the 16-byte label for (wire, semantic bit b):
// first 16 bytes of H("L" || circuitId || instanceId || wireId || b || seed),
// with byte 0's LSB overwritten by flipBit XOR b. The rewrite binds the
// permutation bit to the label and must never be omitted.
func WireLabel(circuitID [32]byte, instanceID uint64, wireID uint16, b uint8, seed [32]byte) primitives.Label16 {
	inst := primitives.Uint64BE(instanceID)
	wire := primitives.Uint16BE(wireID)
	bit := b & 1
	h := primitives.DomainHash([]byte("L"), circuitID[:], inst[:], wire[:], []byte{bit}, seed[:])

	var label primitives.Label16
	copy(label[:], h[:16])

	flip := FlipBit(circuitID, instanceID, wireID, seed)
	permute := (flip ^ bit) & 1
	label[0] = (label[0] &^ 1) | permute
	return label
}

// RowKey derives the per-row key for a gate:
// H("K" || circuitId || instanceId || gateIndex || permA || permB || labelA || labelB).
func RowKey(circuitID [32]byte, instanceID, gateIndex uint64, permA, permB uint8, labelA, labelB primitives.Label16) [32]byte {
	inst := primitives.Uint64BE(instanceID)
	gate := primitives.Uint64BE(gateIndex)
	return primitives.DomainHash(
		[]byte("K"), circuitID[:], inst[:], gate[:],
		[]byte{permA & 1}, []byte{permB & 1},
		labelA[:], labelB[:],
	)
}

// PadExpand expands a row key into a 16-byte keystream pad:
// H("PAD" || rowKey) truncated to 16 bytes.
func PadExpand(rowKey [32]byte) primitives.Label16 {
	h := primitives.DomainHash([]byte("PAD"), rowKey[:])
	var out primitives.Label16
	copy(out[:], h[:16])
	return out
}

// GateBlockHash computes the incremental-hash block hash for one gate leaf:
// H(gateIndex || leafBytes71).
func GateBlockHash(gateIndex uint64, leaf []byte) [32]byte {
	idx := primitives.Uint64BE(gateIndex)
	return primitives.DomainHash(idx[:], leaf)
}

// LayoutLeafHash computes the layout Merkle-tree leaf hash for one gate
// descriptor: H(gateIndex || opcode || a || b || c). This is independent of
// any instance seed, so the verifier can know the layout root before any
// instance is garbled.
func LayoutLeafHash(gateIndex uint64, opcode Opcode, a, b, c uint16) [32]byte {
	idx := primitives.Uint64BE(gateIndex)
	wa := primitives.Uint16BE(a)
	wb := primitives.Uint16BE(b)
	wc := primitives.Uint16BE(c)
	return primitives.DomainHash(idx[:], []byte{byte(opcode)}, wa[:], wb[:], wc[:])
}
