package circuit

import (
	"encoding/binary"
	"fmt"

	"github.com/denysRiman/privacy-preserving-auctions/consensus"
	"github.com/denysRiman/privacy-preserving-auctions/primitives"
)

// LeafSize is the fixed on-wire length of one garbled gate leaf: a 1-byte
// opcode, three 2-byte big-endian wire ids, and four 16-byte rows.
const LeafSize = 1 + 2 + 2 + 2 + 4*16

// GateLeaf is the garbled, on-wire representation of one gate: its
// descriptor plus its four garbled-table rows. For NOT gates all four rows
// are the zero value; the evaluator recovers NOT outputs from a NotHint
// instead of from table rows.
type GateLeaf struct {
	Op      consensus.Opcode
	A, B, C uint16
	Rows    [4]primitives.Label16
}

// Encode renders the leaf into its canonical 71-byte wire form.
func (l *GateLeaf) Encode() []byte {
	buf := make([]byte, LeafSize)
	buf[0] = byte(l.Op)
	binary.BigEndian.PutUint16(buf[1:3], l.A)
	binary.BigEndian.PutUint16(buf[3:5], l.B)
	binary.BigEndian.PutUint16(buf[5:7], l.C)
	for i, row := range l.Rows {
		copy(buf[7+i*16:7+(i+1)*16], row[:])
	}
	return buf
}

// DecodeLeaf parses a 71-byte wire blob back into a GateLeaf.
func DecodeLeaf(buf []byte) (*GateLeaf, error) {
	if len(buf) != LeafSize {
		return nil, fmt.Errorf("circuit: leaf must be %d bytes, got %d", LeafSize, len(buf))
	}
	l := &GateLeaf{
		Op: consensus.Opcode(buf[0]),
		A:  binary.BigEndian.Uint16(buf[1:3]),
		B:  binary.BigEndian.Uint16(buf[3:5]),
		C:  binary.BigEndian.Uint16(buf[5:7]),
	}
	for i := range l.Rows {
		copy(l.Rows[i][:], buf[7+i*16:7+(i+1)*16])
	}
	return l, nil
}

// Canonicalize zeroes the four rows of a NOT-gate leaf. NOT gates never
// carry garbled-table rows on the wire: the evaluator uses the
// accompanying NotHint to recover the output label directly.
func (l *GateLeaf) Canonicalize() {
	if l.Op != consensus.NOT {
		return
	}
	for i := range l.Rows {
		l.Rows[i] = primitives.Label16{}
	}
}
