package session

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpenedIndicesExcludesChosen(t *testing.T) {
	opened := OpenedIndices(10, 4)
	require.Len(t, opened, 9)
	for _, idx := range opened {
		require.NotEqual(t, uint64(4), idx, "opened set must not include the chosen index")
	}
}

func TestValidateOpenedSetAccepts(t *testing.T) {
	opened := OpenedIndices(10, 4)
	require.NoError(t, ValidateOpenedSet(opened, 4, 10))
}

func TestValidateOpenedSetRejectsWrongLength(t *testing.T) {
	require.Error(t, ValidateOpenedSet([]uint64{0, 1, 2}, 4, 10), "expected error for wrong-length opened set")
}

func TestValidateOpenedSetRejectsOutOfOrder(t *testing.T) {
	opened := []uint64{1, 0, 2, 3}
	require.Error(t, ValidateOpenedSet(opened, 4, 5), "expected error for out-of-order opened set")
}

func TestValidateOpenedSetRejectsChosenIndexOutOfRange(t *testing.T) {
	require.Error(t, ValidateOpenedSet(OpenedIndices(5, 0), 10, 5), "expected error for chosen index out of range")
}
