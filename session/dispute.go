package session

import (
	"bytes"

	"github.com/denysRiman/privacy-preserving-auctions/circuit"
	"github.com/denysRiman/privacy-preserving-auctions/commitment"
	"github.com/denysRiman/privacy-preserving-auctions/consensus"
	"github.com/denysRiman/privacy-preserving-auctions/errs"
	"github.com/denysRiman/privacy-preserving-auctions/garbler"
)

// DisputePacket is the minimal evidence bundle handed to the arbiter so it
// can recompute the canonical leaf for gateIndex and compare it against
// what the evaluator claims was produced.
type DisputePacket struct {
	InstanceID    uint64
	Seed          [32]byte
	GateIndex     uint64
	Gate          circuit.GateDescriptor
	CanonicalLeaf []byte
	IHProof       [][32]byte
	LayoutProof   [][32]byte
}

// firstMismatch returns the index of the first claimed leaf that differs
// from its canonical recomputation, or -1 if none differ.
func firstMismatch(layout *circuit.CircuitLayout, seed [32]byte, claimedLeaves [][]byte) int {
	for idx, gate := range layout.Gates {
		canonical := garbler.GarbleGate(seed, layout.CircuitID, layout.InstanceID, uint64(idx), gate).Encode()
		if idx >= len(claimedLeaves) || !bytes.Equal(canonical, claimedLeaves[idx]) {
			return idx
		}
	}
	return -1
}

// PrepareDispute builds a DisputePacket for layout/seed's instance against
// claimedLeaves, at gateIndex if overrideIndex is non-negative, otherwise
// at the first mismatching gate. If gateIndex (explicit or discovered)
// turns out not to mismatch, the request is rejected: a caller-supplied
// override at a non-mismatching index is a FalseChallenge, and a missing
// mismatch anywhere is NoMismatchToDispute.
func PrepareDispute(layout *circuit.CircuitLayout, seed [32]byte, claimedLeaves [][]byte, overrideIndex int) (*DisputePacket, error) {
	if len(claimedLeaves) != len(layout.Gates) {
		return nil, errs.New(errs.LayoutMismatch, "claimed leaf count %d does not match gate count %d", len(claimedLeaves), len(layout.Gates))
	}

	gateIndex := overrideIndex
	if gateIndex < 0 {
		gateIndex = firstMismatch(layout, seed, claimedLeaves)
		if gateIndex < 0 {
			return nil, errs.New(errs.NoMismatchToDispute, "claimed leaves are byte-identical to canonical")
		}
	} else {
		if gateIndex >= len(layout.Gates) {
			return nil, errs.New(errs.InputOutOfRange, "gate index %d out of range [0,%d)", gateIndex, len(layout.Gates))
		}
		gate := layout.Gates[gateIndex]
		canonical := garbler.GarbleGate(seed, layout.CircuitID, layout.InstanceID, uint64(gateIndex), gate).Encode()
		if bytes.Equal(canonical, claimedLeaves[gateIndex]) {
			return nil, errs.New(errs.FalseChallenge, "claimed leaf at gate %d matches canonical", gateIndex)
		}
	}

	gate := layout.Gates[gateIndex]

	blockHashes := make([][32]byte, len(claimedLeaves))
	for idx, leaf := range claimedLeaves {
		blockHashes[idx] = consensus.GateBlockHash(uint64(idx), leaf)
	}
	ihProof, err := commitment.IHProofFromHashes(blockHashes, gateIndex)
	if err != nil {
		return nil, err
	}

	layoutHashes := make([][32]byte, len(layout.Gates))
	for idx, g := range layout.Gates {
		layoutHashes[idx] = consensus.LayoutLeafHash(uint64(idx), g.Op, uint16(g.A), uint16(g.B), uint16(g.C))
	}
	layoutProof, err := commitment.MerkleProof(layoutHashes, gateIndex)
	if err != nil {
		return nil, err
	}

	return &DisputePacket{
		InstanceID:    layout.InstanceID,
		Seed:          seed,
		GateIndex:     uint64(gateIndex),
		Gate:          gate,
		CanonicalLeaf: garbler.GarbleGate(seed, layout.CircuitID, layout.InstanceID, uint64(gateIndex), gate).Encode(),
		IHProof:       ihProof,
		LayoutProof:   layoutProof,
	}, nil
}
