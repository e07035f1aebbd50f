package boundary

import (
	"strconv"
	"strings"
)

// Bytes32List renders values as the bracket-comma list literal the
// arbiter's array-typed parameters expect: "[]" when empty, otherwise
// "[0x..,0x..,...]".
func Bytes32List(values [][32]byte) string {
	if len(values) == 0 {
		return "[]"
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = Hex32(v)
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// Tuple renders fields as the arbiter's parenthesized tuple literal:
// "(f0,f1,...)".
func Tuple(fields ...string) string {
	return "(" + strings.Join(fields, ",") + ")"
}

// CommitmentTuple renders one 7-tuple in the arbiter's field order
// (seedCommit, ihRootGC, blobHash, reserved, reserved, h1, h0).
func CommitmentTuple(seedCommit, ihRoot, blobHash, reserved0, reserved1, h1, h0 [32]byte) string {
	return Tuple(Hex32(seedCommit), Hex32(ihRoot), Hex32(blobHash), Hex32(reserved0), Hex32(reserved1), Hex32(h1), Hex32(h0))
}

// CommitmentTupleList renders N commitment tuples as the fixed-length
// array submitCommitments expects: "[(...),(...),...]".
func CommitmentTupleList(tuples []string) string {
	if len(tuples) == 0 {
		return "[]"
	}
	return "[" + strings.Join(tuples, ",") + "]"
}

// DisputeGateTuple renders the gate-descriptor tuple (opcode, a, b, c)
// used inside disputeGarbledTable.
func DisputeGateTuple(opcode byte, a, b, c uint16) string {
	return Tuple(
		strconv.FormatUint(uint64(opcode), 10),
		strconv.FormatUint(uint64(a), 10),
		strconv.FormatUint(uint64(b), 10),
		strconv.FormatUint(uint64(c), 10),
	)
}
