// Package circuit implements the fixed comparator circuit's layout: gate
// descriptors, wire allocation, and the 71-byte garbled gate-leaf wire
// format. The layout is independent of any garbling seed: two layouts built
// from the same bit width are identical down to the gate order, which is
// what lets the arbiter know the layout Merkle root before any instance is
// garbled.
package circuit

import (
	"fmt"

	"github.com/denysRiman/privacy-preserving-auctions/consensus"
)

// Wire identifies a wire in a circuit layout by its allocation index.
type Wire uint16

// GateDescriptor is one gate in a circuit layout: an opcode and up to two
// input wires plus one output wire. For NOT gates, B is 0 and ignored.
type GateDescriptor struct {
	Op consensus.Opcode
	A  Wire
	B  Wire
	C  Wire
}

func (g GateDescriptor) String() string {
	if g.Op == consensus.NOT {
		return fmt.Sprintf("%s w%d -> w%d", g.Op, g.A, g.C)
	}
	return fmt.Sprintf("%s w%d w%d -> w%d", g.Op, g.A, g.B, g.C)
}

// CircuitLayout is a full circuit description: a 32-byte circuit
// identifier, a 64-bit instance identifier, and the ordered gate sequence.
// The gate sequence, and therefore the layout Merkle root, is shared by
// every instance of one session; only the instance identifier and the
// garbling seed change per instance.
type CircuitLayout struct {
	CircuitID  [32]byte
	InstanceID uint64
	Gates      []GateDescriptor
}

// NumWires returns one more than the highest wire id referenced anywhere in
// the layout (inputs or gate outputs), i.e. the size a wire-label slice
// needs to hold every wire in this layout.
func (l *CircuitLayout) NumWires(bitWidth int) int {
	max := 2*bitWidth - 1
	for _, g := range l.Gates {
		if int(g.A) > max {
			max = int(g.A)
		}
		if int(g.B) > max {
			max = int(g.B)
		}
		if int(g.C) > max {
			max = int(g.C)
		}
	}
	return max + 1
}

// Dump prints a Bristol-style textual rendering of the layout for operator
// debugging. This is plain text only; it carries no consensus meaning.
func (l *CircuitLayout) Dump() {
	fmt.Printf("circuit: %d gates\n", len(l.Gates))
	for i, g := range l.Gates {
		fmt.Printf("%04d\t%s\n", i, g)
	}
}
