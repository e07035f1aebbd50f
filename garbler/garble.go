// Package garbler produces the garbled gate leaves for one circuit
// instance: for every gate, in layout order, it enumerates the four
// permutation rows, derives the output label each row should carry, and
// masks it with the row's keystream pad. Row generation is pure and
// stateless in the seed: two calls to Garble with the same seed and layout
// produce byte-identical leaves, which is what lets the arbiter recompute
// and challenge an opened instance independently.
package garbler

import (
	"github.com/denysRiman/privacy-preserving-auctions/circuit"
	"github.com/denysRiman/privacy-preserving-auctions/consensus"
	"github.com/denysRiman/privacy-preserving-auctions/primitives"
)

// GarbleGate recomputes the 71-byte leaf for a single gate. Row index
// within the leaf's four-row table is 2*permA + permB, fixed by the
// consensus wire format; NOT gates are canonicalized to all-zero rows.
func GarbleGate(seed [32]byte, circuitID [32]byte, instanceID, gateIndex uint64, gate circuit.GateDescriptor) *circuit.GateLeaf {
	leaf := &circuit.GateLeaf{
		Op: gate.Op,
		A:  uint16(gate.A),
		B:  uint16(gate.B),
		C:  uint16(gate.C),
	}

	if gate.Op == consensus.NOT {
		leaf.Canonicalize()
		return leaf
	}

	flipA := consensus.FlipBit(circuitID, instanceID, uint16(gate.A), seed)
	flipB := consensus.FlipBit(circuitID, instanceID, uint16(gate.B), seed)

	for permA := uint8(0); permA <= 1; permA++ {
		for permB := uint8(0); permB <= 1; permB++ {
			bitA := permA ^ flipA
			bitB := permB ^ flipB
			outBit := consensus.Truth(gate.Op, bitA, bitB)

			labelA := consensus.WireLabel(circuitID, instanceID, uint16(gate.A), bitA, seed)
			labelB := consensus.WireLabel(circuitID, instanceID, uint16(gate.B), bitB, seed)
			outLabel := consensus.WireLabel(circuitID, instanceID, uint16(gate.C), outBit, seed)

			rowKey := consensus.RowKey(circuitID, instanceID, gateIndex, permA, permB, labelA, labelB)
			ct := primitives.Xor16(outLabel, consensus.PadExpand(rowKey))

			rowIndex := 2*permA + permB
			leaf.Rows[rowIndex] = ct
		}
	}

	return leaf
}

// Garble garbles every gate of layout in order and returns the resulting
// leaves. The slice index of a leaf is its consensus gateIndex.
func Garble(seed [32]byte, layout *circuit.CircuitLayout) []*circuit.GateLeaf {
	leaves := make([]*circuit.GateLeaf, len(layout.Gates))
	for idx, gate := range layout.Gates {
		leaves[idx] = GarbleGate(seed, layout.CircuitID, layout.InstanceID, uint64(idx), gate)
	}
	return leaves
}
