package circuit

import (
	"testing"

	"github.com/denysRiman/privacy-preserving-auctions/consensus"
)

func TestBuildMillionairesLayoutSingleBit(t *testing.T) {
	gates, out, err := BuildMillionairesLayout(1)
	if err != nil {
		t.Fatalf("BuildMillionairesLayout(1): %v", err)
	}
	// a=0, b=1: xor(0,1)=w2, not(w2)=w3 [eqBit, unused], not(1)=w4, and(0,w4)=w5 [gtBit].
	if len(gates) != 4 {
		t.Fatalf("expected 4 gates for bit width 1, got %d", len(gates))
	}
	last := gates[len(gates)-1]
	if last.Op != consensus.AND || last.C != out {
		t.Fatalf("expected final AND gate to be the output wire, got %+v (out=%d)", last, out)
	}
}

func TestBuildMillionairesLayoutWireIDsStrictlyIncreasing(t *testing.T) {
	gates, _, err := BuildMillionairesLayout(8)
	if err != nil {
		t.Fatalf("BuildMillionairesLayout(8): %v", err)
	}
	seen := map[Wire]bool{}
	for i := 0; i < 16; i++ {
		seen[Wire(i)] = true
	}
	for idx, g := range gates {
		if seen[g.C] {
			t.Fatalf("gate %d: output wire %d reused", idx, g.C)
		}
		seen[g.C] = true
		if g.C <= g.A || (g.Op != consensus.NOT && g.C <= g.B) {
			t.Fatalf("gate %d: output wire %d must exceed its inputs", idx, g.C)
		}
	}
}

func TestBuildMillionairesLayoutOutputWireIsSecondToLastForMultiBit(t *testing.T) {
	gates, out, err := BuildMillionairesLayout(4)
	if err != nil {
		t.Fatalf("BuildMillionairesLayout(4): %v", err)
	}
	if len(gates) < 2 {
		t.Fatalf("expected at least 2 gates, got %d", len(gates))
	}
	if gates[len(gates)-2].C != out {
		t.Fatalf("expected the greater-than output wire to be the penultimate gate's output")
	}
}

func TestBuildMillionairesLayoutRejectsZeroWidth(t *testing.T) {
	if _, _, err := BuildMillionairesLayout(0); err == nil {
		t.Fatalf("expected error for bit width 0")
	}
}

func TestNewMillionairesLayoutPropagatesIdentity(t *testing.T) {
	circuitID := [32]byte{0x01}
	layout, _, err := NewMillionairesLayout(circuitID, 3, 4)
	if err != nil {
		t.Fatalf("NewMillionairesLayout: %v", err)
	}
	if layout.CircuitID != circuitID || layout.InstanceID != 3 {
		t.Fatalf("layout identity not propagated: %+v", layout)
	}
}
