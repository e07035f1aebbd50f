package boundary

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBytes32ListEmpty(t *testing.T) {
	require.Equal(t, "[]", Bytes32List(nil))
}

func TestCommitmentTupleFieldOrder(t *testing.T) {
	var seedCommit, ihRoot, blobHash, r0, r1, h1, h0 [32]byte
	seedCommit[0] = 1
	ihRoot[0] = 2
	h1[0] = 6
	h0[0] = 7

	got := CommitmentTuple(seedCommit, ihRoot, blobHash, r0, r1, h1, h0)
	want := Tuple(Hex32(seedCommit), Hex32(ihRoot), Hex32(blobHash), Hex32(r0), Hex32(r1), Hex32(h1), Hex32(h0))
	require.Equal(t, want, got, "field order mismatch")
}

func TestCommitmentTupleListEmpty(t *testing.T) {
	require.Equal(t, "[]", CommitmentTupleList(nil))
}

func TestDisputeGateTuple(t *testing.T) {
	require.Equal(t, "(0,7,8,9)", DisputeGateTuple(0, 7, 8, 9))
}
