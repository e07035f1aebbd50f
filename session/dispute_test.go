package session

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/denysRiman/privacy-preserving-auctions/commitment"
	"github.com/denysRiman/privacy-preserving-auctions/consensus"
	"github.com/denysRiman/privacy-preserving-auctions/errs"
	"github.com/denysRiman/privacy-preserving-auctions/garbler"
	"github.com/denysRiman/privacy-preserving-auctions/primitives"
)

// TestPrepareDisputeFindsTamperedLeaf pins the shape of spec.md §8.6:
// flip one byte in claimed leaf 0, dispute preparer picks gate 0, and both
// proofs verify.
func TestPrepareDisputeFindsTamperedLeaf(t *testing.T) {
	circuitID := primitives.DomainHash([]byte("millionaires-yao-v1"))
	masterSeed := primitives.DomainHash([]byte("master-seed-v1"))
	inst, err := BuildInstance(circuitID, 0, masterSeed, 8)
	require.NoError(t, err)

	claimed := make([][]byte, len(inst.Leaves))
	for i, leaf := range inst.Leaves {
		claimed[i] = append([]byte(nil), leaf.Encode()...)
	}
	claimed[0][10] ^= 0xff

	packet, err := PrepareDispute(inst.Layout, inst.Seed, claimed, -1)
	require.NoError(t, err)
	require.EqualValues(t, 0, packet.GateIndex)

	blockHash := consensus.GateBlockHash(0, claimed[0])
	blockHashes := make([][32]byte, len(claimed))
	for i, leaf := range claimed {
		blockHashes[i] = consensus.GateBlockHash(uint64(i), leaf)
	}
	ihRoot := commitment.IHRootFromHashes(blockHashes)
	require.True(t, commitment.VerifyIHProof(blockHash, packet.IHProof, ihRoot), "IH proof failed to verify against the claimed IH root")

	layoutHashes := make([][32]byte, len(inst.Layout.Gates))
	for i, g := range inst.Layout.Gates {
		layoutHashes[i] = consensus.LayoutLeafHash(uint64(i), g.Op, uint16(g.A), uint16(g.B), uint16(g.C))
	}
	layoutRoot := commitment.MerkleRoot(layoutHashes)
	leafHash := consensus.LayoutLeafHash(0, inst.Layout.Gates[0].Op, uint16(inst.Layout.Gates[0].A), uint16(inst.Layout.Gates[0].B), uint16(inst.Layout.Gates[0].C))
	require.True(t, commitment.VerifyMerkleProof(leafHash, packet.LayoutProof, layoutRoot), "layout proof failed to verify against the untampered layout root")

	canonical := garbler.GarbleGate(inst.Seed, inst.Layout.CircuitID, inst.Layout.InstanceID, 0, inst.Layout.Gates[0]).Encode()
	require.NotEqual(t, string(claimed[0]), string(canonical), "expected the two leaves to differ")
}

func TestPrepareDisputeNonMismatchingOverrideIsFalseChallenge(t *testing.T) {
	circuitID := primitives.DomainHash([]byte("millionaires-yao-v1"))
	masterSeed := primitives.DomainHash([]byte("master-seed-v1"))
	inst, err := BuildInstance(circuitID, 0, masterSeed, 8)
	require.NoError(t, err)

	claimed := make([][]byte, len(inst.Leaves))
	for i, leaf := range inst.Leaves {
		claimed[i] = append([]byte(nil), leaf.Encode()...)
	}
	claimed[0][10] ^= 0xff

	_, err = PrepareDispute(inst.Layout, inst.Seed, claimed, 1)
	var target *errs.Error
	require.True(t, errors.As(err, &target) && target.Kind == errs.FalseChallenge, "expected FalseChallenge for a non-mismatching override index, got %v", err)
}

func TestPrepareDisputeNoMismatchReturnsError(t *testing.T) {
	circuitID := primitives.DomainHash([]byte("millionaires-yao-v1"))
	masterSeed := primitives.DomainHash([]byte("master-seed-v1"))
	inst, err := BuildInstance(circuitID, 0, masterSeed, 8)
	require.NoError(t, err)

	claimed := make([][]byte, len(inst.Leaves))
	for i, leaf := range inst.Leaves {
		claimed[i] = append([]byte(nil), leaf.Encode()...)
	}

	_, err = PrepareDispute(inst.Layout, inst.Seed, claimed, -1)
	var target *errs.Error
	require.True(t, errors.As(err, &target) && target.Kind == errs.NoMismatchToDispute, "expected NoMismatchToDispute, got %v", err)
}
