package commitment

// Tuple is the 7-field, 32-byte-per-field commitment submitted to the
// arbiter for one instance, in the arbiter's field order: (seedCommit,
// ihRoot, blobHash, reserved0, reserved1, h1, h0). BlobHash, Reserved0, and
// Reserved1 are not populated by this core; a caller that has them from
// elsewhere passes them through unchanged, otherwise they stay zero.
type Tuple struct {
	SeedCommit [32]byte
	IHRoot     [32]byte
	BlobHash   [32]byte
	Reserved0  [32]byte
	Reserved1  [32]byte
	H1         [32]byte
	H0         [32]byte
}

// Fields returns the tuple as an ordered 7-element array, the shape the
// arbiter's submitCommitments(tuple7[N]) call expects.
func (t Tuple) Fields() [7][32]byte {
	return [7][32]byte{t.SeedCommit, t.IHRoot, t.BlobHash, t.Reserved0, t.Reserved1, t.H1, t.H0}
}
