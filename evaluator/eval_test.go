package evaluator

import (
	"testing"

	"github.com/denysRiman/privacy-preserving-auctions/circuit"
	"github.com/denysRiman/privacy-preserving-auctions/commitment"
	"github.com/denysRiman/privacy-preserving-auctions/consensus"
	"github.com/denysRiman/privacy-preserving-auctions/garbler"
	"github.com/denysRiman/privacy-preserving-auctions/primitives"
)

// bitsLE returns the bit_width least-significant bits of value, bit 0
// first, matching the layout's input wire convention (wire i carries bit
// i of the value assigned to that party).
func bitsLE(value uint64, bitWidth int) []uint8 {
	bits := make([]uint8, bitWidth)
	for i := range bits {
		bits[i] = uint8((value >> uint(i)) & 1)
	}
	return bits
}

func notHintsForLayout(circuitID [32]byte, instanceID uint64, seed [32]byte, layout *circuit.CircuitLayout) []NotHint {
	var hints []NotHint
	for idx, gate := range layout.Gates {
		if gate.Op != consensus.NOT {
			continue
		}
		hints = append(hints, NotHint{
			GateIndex: uint64(idx),
			InLabel0:  consensus.WireLabel(circuitID, instanceID, uint16(gate.A), 0, seed),
			OutIfIn0:  consensus.WireLabel(circuitID, instanceID, uint16(gate.C), 1, seed),
			InLabel1:  consensus.WireLabel(circuitID, instanceID, uint16(gate.A), 1, seed),
			OutIfIn1:  consensus.WireLabel(circuitID, instanceID, uint16(gate.C), 0, seed),
		})
	}
	return hints
}

func inputLabels(circuitID [32]byte, instanceID uint64, seed [32]byte, firstWire uint16, value uint64, bitWidth int) []primitives.Label16 {
	bits := bitsLE(value, bitWidth)
	labels := make([]primitives.Label16, bitWidth)
	for i, b := range bits {
		labels[i] = consensus.WireLabel(circuitID, instanceID, firstWire+uint16(i), b, seed)
	}
	return labels
}

// TestComparatorEndToEnd pins the shape of spec.md §8.5: w=4, x=5, y=3,
// evaluating the instance must recover the label for semantic 1 on the
// greater-than output wire, whose anchor hash is h1.
func TestComparatorEndToEnd(t *testing.T) {
	const bitWidth = 4
	const instanceID = 0
	circuitID := primitives.DomainHash([]byte("millionaires-yao-v1"))
	seed := primitives.DomainHash([]byte("master-seed-v1"))

	layout, outWire, err := circuit.NewMillionairesLayout(circuitID, instanceID, bitWidth)
	if err != nil {
		t.Fatalf("NewMillionairesLayout: %v", err)
	}
	leaves := garbler.Garble(seed, layout)
	hints := notHintsForLayout(circuitID, instanceID, seed, layout)

	aliceLabels := inputLabels(circuitID, instanceID, seed, 0, 5, bitWidth)
	bobLabels := inputLabels(circuitID, instanceID, seed, bitWidth, 3, bitWidth)

	result, err := Evaluate(layout, leaves, aliceLabels, bobLabels, hints, outWire)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	wantTrue := consensus.WireLabel(circuitID, instanceID, uint16(outWire), 1, seed)
	if result != wantTrue {
		t.Fatalf("x=5 > y=3: expected the semantic-1 label on the output wire")
	}

	h1 := commitment.AnchorHash(wantTrue)
	got := commitment.AnchorHash(result)
	if got != h1 {
		t.Fatalf("AnchorHash(recovered label) must equal h1")
	}
}

func TestComparatorEndToEndFalseCase(t *testing.T) {
	const bitWidth = 4
	const instanceID = 0
	circuitID := primitives.DomainHash([]byte("millionaires-yao-v1"))
	seed := primitives.DomainHash([]byte("master-seed-v1"))

	layout, outWire, err := circuit.NewMillionairesLayout(circuitID, instanceID, bitWidth)
	if err != nil {
		t.Fatalf("NewMillionairesLayout: %v", err)
	}
	leaves := garbler.Garble(seed, layout)
	hints := notHintsForLayout(circuitID, instanceID, seed, layout)

	aliceLabels := inputLabels(circuitID, instanceID, seed, 0, 3, bitWidth)
	bobLabels := inputLabels(circuitID, instanceID, seed, bitWidth, 5, bitWidth)

	result, err := Evaluate(layout, leaves, aliceLabels, bobLabels, hints, outWire)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	wantFalse := consensus.WireLabel(circuitID, instanceID, uint16(outWire), 0, seed)
	if result != wantFalse {
		t.Fatalf("x=3 > y=5: expected the semantic-0 label on the output wire")
	}
}

func TestEvaluateRejectsLeafCountMismatch(t *testing.T) {
	layout, _, err := circuit.NewMillionairesLayout([32]byte{}, 0, 2)
	if err != nil {
		t.Fatalf("NewMillionairesLayout: %v", err)
	}
	_, err = Evaluate(layout, nil, nil, nil, nil, 0)
	if err == nil {
		t.Fatalf("expected LayoutMismatch error for leaf/gate count mismatch")
	}
}
