// Package evaluator runs one chosen garbled instance forward: given the
// layout, its leaves, and the input labels, it walks gates in order and
// recovers the output label, never learning an intermediate semantic bit.
package evaluator

import (
	"github.com/denysRiman/privacy-preserving-auctions/circuit"
	"github.com/denysRiman/privacy-preserving-auctions/consensus"
	"github.com/denysRiman/privacy-preserving-auctions/errs"
	"github.com/denysRiman/privacy-preserving-auctions/primitives"
)

// NotHint carries the auxiliary input/output label pairs a NOT gate's
// canonicalized, all-zero leaf cannot encode: the garbler hands one of
// these per NOT gate so the evaluator can recover the complemented label
// by equality match instead of by row decryption.
type NotHint struct {
	GateIndex uint64
	InLabel0  primitives.Label16 // label carried when the semantic input bit is 0
	OutIfIn0  primitives.Label16 // output label when the input was 0 (semantic 1)
	InLabel1  primitives.Label16 // label carried when the semantic input bit is 1
	OutIfIn1  primitives.Label16 // output label when the input was 1 (semantic 0)
}

// Evaluate walks layout's gates in order against leaves, starting from
// aliceLabels and bobLabels (the garbler's revealed labels and the
// evaluator's selected labels, indexed by input bit position 0..w-1), resolving NOT gates
// via hints, and returns the label that ends up on outputWire.
func Evaluate(layout *circuit.CircuitLayout, leaves []*circuit.GateLeaf, aliceLabels, bobLabels []primitives.Label16, hints []NotHint, outputWire circuit.Wire) (primitives.Label16, error) {
	if len(leaves) != len(layout.Gates) {
		return primitives.Label16{}, errs.New(errs.LayoutMismatch, "leaf count %d does not match gate count %d", len(leaves), len(layout.Gates))
	}

	numWires := layout.NumWires(max(len(aliceLabels), len(bobLabels)))
	labels := make([]*primitives.Label16, numWires)

	for i, l := range aliceLabels {
		v := l
		labels[i] = &v
	}
	for i, l := range bobLabels {
		v := l
		labels[len(aliceLabels)+i] = &v
	}

	hintByGate := make(map[uint64]NotHint, len(hints))
	for _, h := range hints {
		hintByGate[h.GateIndex] = h
	}

	for idx, gate := range layout.Gates {
		labelA := labels[gate.A]
		if labelA == nil {
			return primitives.Label16{}, errs.New(errs.MissingMaterial, "gate %d: no label for input wire %d", idx, gate.A)
		}

		if gate.Op == consensus.NOT {
			hint, ok := hintByGate[uint64(idx)]
			if !ok {
				return primitives.Label16{}, errs.New(errs.MissingMaterial, "gate %d: no NOT hint", idx)
			}
			var out primitives.Label16
			switch *labelA {
			case hint.InLabel0:
				out = hint.OutIfIn0
			case hint.InLabel1:
				out = hint.OutIfIn1
			default:
				return primitives.Label16{}, errs.New(errs.MissingMaterial, "gate %d: input label matches neither NOT hint entry", idx)
			}
			labels[gate.C] = &out
			continue
		}

		labelB := labels[gate.B]
		if labelB == nil {
			return primitives.Label16{}, errs.New(errs.MissingMaterial, "gate %d: no label for input wire %d", idx, gate.B)
		}

		permA := labelA[0] & 1
		permB := labelB[0] & 1
		rowIndex := 2*permA + permB

		leaf := leaves[idx]
		ct := leaf.Rows[rowIndex]

		rowKey := consensus.RowKey(layout.CircuitID, layout.InstanceID, uint64(idx), permA, permB, *labelA, *labelB)
		out := primitives.Xor16(ct, consensus.PadExpand(rowKey))
		labels[gate.C] = &out
	}

	result := labels[outputWire]
	if result == nil {
		return primitives.Label16{}, errs.New(errs.MissingMaterial, "output wire %d never assigned a label", outputWire)
	}
	return *result, nil
}
