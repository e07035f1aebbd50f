// Package session orchestrates one cut-and-choose comparison session over
// N garbled instances sharing a circuit layout: per-instance seed
// derivation, concurrent garbling and commitment, opened-set selection,
// and dispute-packet construction. Every operation here is a pure function
// of its explicit inputs; there is no package-level mutable state, so a
// host may run multiple sessions concurrently as long as each passes its
// own buffers.
package session

import (
	"sync"

	"github.com/denysRiman/privacy-preserving-auctions/circuit"
	"github.com/denysRiman/privacy-preserving-auctions/commitment"
	"github.com/denysRiman/privacy-preserving-auctions/consensus"
	"github.com/denysRiman/privacy-preserving-auctions/errs"
	"github.com/denysRiman/privacy-preserving-auctions/garbler"
	"github.com/denysRiman/privacy-preserving-auctions/primitives"
)

// Instance bundles everything derived for one cut-and-choose instance: its
// seed and seed commitment, the circuit layout (its gate sequence is the
// same across instances, since it does not depend on the seed), the
// garbled leaves, the output wire, and the commitment tuple's IH root and
// anchor hashes.
type Instance struct {
	ID         uint64
	Seed       [32]byte
	SeedCommit [32]byte
	Layout     *circuit.CircuitLayout
	Leaves     []*circuit.GateLeaf
	OutputWire circuit.Wire
	IHRoot     [32]byte
	H0, H1     [32]byte
}

// DeriveInstanceSeed derives the per-instance garbling seed from the
// session's master seed: H("SEED" || circuitId || instanceId || masterSeed).
func DeriveInstanceSeed(circuitID [32]byte, instanceID uint64, masterSeed [32]byte) [32]byte {
	inst := primitives.Uint64BE(instanceID)
	return primitives.DomainHash([]byte("SEED"), circuitID[:], inst[:], masterSeed[:])
}

// BuildInstance garbles one instance end to end: derives its seed, garbles
// the layout, and computes its IH root and output-anchor hashes.
func BuildInstance(circuitID [32]byte, instanceID uint64, masterSeed [32]byte, bitWidth int) (*Instance, error) {
	seed := DeriveInstanceSeed(circuitID, instanceID, masterSeed)

	layout, outputWire, err := circuit.NewMillionairesLayout(circuitID, instanceID, bitWidth)
	if err != nil {
		return nil, err
	}
	leaves := garbler.Garble(seed, layout)

	blockHashes := make([][32]byte, len(leaves))
	for idx, leaf := range leaves {
		blockHashes[idx] = consensus.GateBlockHash(uint64(idx), leaf.Encode())
	}

	label0 := consensus.WireLabel(circuitID, instanceID, uint16(outputWire), 0, seed)
	label1 := consensus.WireLabel(circuitID, instanceID, uint16(outputWire), 1, seed)

	return &Instance{
		ID:         instanceID,
		Seed:       seed,
		SeedCommit: commitment.SeedCommitment(seed),
		Layout:     layout,
		Leaves:     leaves,
		OutputWire: outputWire,
		IHRoot:     commitment.IHRootFromHashes(blockHashes),
		H0:         commitment.AnchorHash(label0),
		H1:         commitment.AnchorHash(label1),
	}, nil
}

// BuildInstances garbles all N instances concurrently, one goroutine per
// instance writing into its own index of a pre-sized slice; since indices
// are disjoint and there is no other shared state, no locking is needed.
// The WaitGroup join is the only synchronization point.
func BuildInstances(circuitID [32]byte, masterSeed [32]byte, bitWidth, n int) ([]*Instance, error) {
	if n <= 0 {
		return nil, errs.New(errs.InputOutOfRange, "N must be > 0, got %d", n)
	}

	instances := make([]*Instance, n)
	errsOut := make([]error, n)

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			inst, err := BuildInstance(circuitID, uint64(i), masterSeed, bitWidth)
			instances[i] = inst
			errsOut[i] = err
		}(i)
	}
	wg.Wait()

	for _, err := range errsOut {
		if err != nil {
			return nil, err
		}
	}
	return instances, nil
}
