package circuit

import "github.com/denysRiman/privacy-preserving-auctions/consensus"

// allocator hands out fresh wire ids, counting upward from the first
// non-input wire. It mirrors the teacher's compiler/circuits counting
// allocator, minus its Wire/Gate pointer bookkeeping: this layout is a
// flat, fixed gate list, not a dataflow graph.
type allocator struct {
	next Wire
}

func (a *allocator) fresh() Wire {
	w := a.next
	a.next++
	return w
}

type builder struct {
	alloc allocator
	gates []GateDescriptor
}

func (b *builder) push(op consensus.Opcode, a, bb Wire) Wire {
	out := b.alloc.fresh()
	b.gates = append(b.gates, GateDescriptor{Op: op, A: a, B: bb, C: out})
	return out
}

func (b *builder) xor(a, bb Wire) Wire { return b.push(consensus.XOR, a, bb) }

func (b *builder) and(a, bb Wire) Wire { return b.push(consensus.AND, a, bb) }

func (b *builder) not(a Wire) Wire { return b.push(consensus.NOT, a, 0) }

// or synthesizes OR as (a XOR b) XOR (a AND b): there is no native OR row
// shape in this circuit's two-input-gate alphabet, so it costs one XOR and
// one AND gate plus a combining XOR, same as the teacher's NewINV/NewBinary
// OR helper.
func (b *builder) or(a, bb Wire) Wire {
	x := b.xor(a, bb)
	y := b.and(a, bb)
	return b.xor(x, y)
}

// BuildMillionairesLayout constructs the deterministic MSB-to-LSB
// bit-serial comparator layout for bitWidth-bit unsigned inputs. Input wire
// convention: Alice's bits occupy [0, bitWidth), Bob's bits occupy
// [bitWidth, 2*bitWidth). The returned wire carries "A > B": for
// bitWidth 1 it is the last gate's output, and for bitWidth >= 2 it is the
// second-to-last gate's output (the last gate computes the now-unused
// equality accumulator).
func BuildMillionairesLayout(bitWidth int) ([]GateDescriptor, Wire, error) {
	if bitWidth <= 0 {
		return nil, 0, errInvalidBitWidth("bit width must be > 0")
	}
	if bitWidth > 0xffff/4 {
		return nil, 0, errInvalidBitWidth("bit width too large")
	}

	b := &builder{alloc: allocator{next: Wire(bitWidth * 2)}}

	var gtAcc, eqAcc Wire
	haveAcc := false

	for bit := bitWidth - 1; bit >= 0; bit-- {
		a := Wire(bit)
		bb := Wire(bit + bitWidth)

		xorAB := b.xor(a, bb)
		eqBit := b.not(xorAB)

		notB := b.not(bb)
		gtBit := b.and(a, notB)

		if !haveAcc {
			gtAcc = gtBit
			eqAcc = eqBit
			haveAcc = true
			continue
		}

		eqAndGt := b.and(eqAcc, gtBit)
		gtNew := b.or(gtAcc, eqAndGt)
		eqNew := b.and(eqAcc, eqBit)
		gtAcc = gtNew
		eqAcc = eqNew
	}

	return b.gates, gtAcc, nil
}

type errInvalidBitWidth string

func (e errInvalidBitWidth) Error() string { return string(e) }

// NewMillionairesLayout builds the full CircuitLayout for one instance of
// the fixed bit-width comparator circuit. The gate sequence is identical
// across every instance of a session; only circuitID and instanceID vary,
// which is what lets the layout Merkle root be agreed before any instance
// is garbled.
func NewMillionairesLayout(circuitID [32]byte, instanceID uint64, bitWidth int) (*CircuitLayout, Wire, error) {
	gates, gtWire, err := BuildMillionairesLayout(bitWidth)
	if err != nil {
		return nil, 0, err
	}
	return &CircuitLayout{
		CircuitID:  circuitID,
		InstanceID: instanceID,
		Gates:      gates,
	}, gtWire, nil
}
