package session

import "github.com/denysRiman/privacy-preserving-auctions/errs"

// OpenedIndices returns every instance index except m, in ascending order:
// the set the garbler reveals seeds for under cut-and-choose.
func OpenedIndices(n int, m int) []uint64 {
	opened := make([]uint64, 0, n-1)
	for i := 0; i < n; i++ {
		if i == m {
			continue
		}
		opened = append(opened, uint64(i))
	}
	return opened
}

// ValidateOpenedSet checks that openedIndices, together with m, is an
// ordered, ascending, pairwise-disjoint partition of {0, ..., n-1}: the
// bijectivity invariant cut-and-choose depends on.
func ValidateOpenedSet(openedIndices []uint64, m uint64, n int) error {
	if m >= uint64(n) {
		return errs.New(errs.InputOutOfRange, "chosen index %d out of range [0,%d)", m, n)
	}
	if len(openedIndices) != n-1 {
		return errs.New(errs.LayoutMismatch, "expected %d opened indices, got %d", n-1, len(openedIndices))
	}

	want := uint64(0)
	for _, idx := range openedIndices {
		if idx == m {
			return errs.New(errs.LayoutMismatch, "opened set must not include chosen index %d", m)
		}
		if want == m {
			want++
		}
		if idx != want {
			return errs.New(errs.LayoutMismatch, "opened indices must be {0..N-1}\\{m} in ascending order, expected %d, got %d", want, idx)
		}
		want++
	}
	return nil
}
