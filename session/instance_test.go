package session

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/denysRiman/privacy-preserving-auctions/primitives"
)

func TestDeriveInstanceSeedDeterministic(t *testing.T) {
	circuitID := [32]byte{0x11}
	masterSeed := [32]byte{0x22}
	a := DeriveInstanceSeed(circuitID, 3, masterSeed)
	b := DeriveInstanceSeed(circuitID, 3, masterSeed)
	require.Equal(t, a, b, "DeriveInstanceSeed must be deterministic")
	other := DeriveInstanceSeed(circuitID, 4, masterSeed)
	require.NotEqual(t, a, other, "DeriveInstanceSeed must be sensitive to instance id")
}

func TestBuildInstanceSeedLeafCountAndAnchors(t *testing.T) {
	circuitID := primitives.DomainHash([]byte("millionaires-yao-v1"))
	masterSeed := primitives.DomainHash([]byte("master-seed-v1"))

	inst, err := BuildInstance(circuitID, 0, masterSeed, 4)
	require.NoError(t, err)
	require.Equal(t, DeriveInstanceSeed(circuitID, 0, masterSeed), inst.Seed, "instance seed mismatch")
	require.Len(t, inst.Leaves, len(inst.Layout.Gates), "leaf count must equal gate count")
	require.NotEqual(t, inst.H0, inst.H1, "h0 and h1 must differ")
}

func TestBuildInstancesConcurrentMatchesSequential(t *testing.T) {
	circuitID := primitives.DomainHash([]byte("millionaires-yao-v1"))
	masterSeed := primitives.DomainHash([]byte("master-seed-v1"))

	const n = 10
	instances, err := BuildInstances(circuitID, masterSeed, 8, n)
	require.NoError(t, err)
	require.Len(t, instances, n)
	for i, inst := range instances {
		want, err := BuildInstance(circuitID, uint64(i), masterSeed, 8)
		require.NoError(t, err, "BuildInstance(%d)", i)
		require.Equal(t, want.Seed, inst.Seed, "instance %d seed diverges from sequential build", i)
		require.Equal(t, want.IHRoot, inst.IHRoot, "instance %d IH root diverges from sequential build", i)
		require.Equal(t, want.H0, inst.H0, "instance %d h0 diverges from sequential build", i)
		require.Equal(t, want.H1, inst.H1, "instance %d h1 diverges from sequential build", i)
	}
}

func TestBuildInstancesRejectsNonPositiveN(t *testing.T) {
	circuitID := [32]byte{}
	masterSeed := [32]byte{}
	_, err := BuildInstances(circuitID, masterSeed, 8, 0)
	require.Error(t, err, "expected error for N=0")
}
