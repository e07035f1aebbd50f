// Package errs defines the machine-checkable error kinds that cross the
// core's boundary. Internally, packages still return plain fmt.Errorf
// errors for conditions a caller cannot usefully branch on; errs.Error
// is reserved for conditions a caller or orchestration layer needs to
// distinguish by kind, e.g. to tell a malformed request apart from a
// detected equivocation.
package errs

import "fmt"

// Kind enumerates the boundary error categories.
type Kind int

// Boundary error kinds.
const (
	// InputOutOfRange: a parameter (bit width, instance index, gate
	// index, wire id, integer value) violates a stated constraint.
	InputOutOfRange Kind = iota
	// MalformedEncoding: hex/byte input has the wrong length or illegal
	// characters.
	MalformedEncoding
	// LayoutMismatch: claimed leaf count != gate count, or a gate
	// references an undefined wire.
	LayoutMismatch
	// MissingMaterial: evaluator is missing an input label, a NOT hint,
	// or an offer for a wire.
	MissingMaterial
	// CommitmentMismatch: recomputed IH root or seed commitment does
	// not match the claimed value.
	CommitmentMismatch
	// NoMismatchToDispute: dispute requested but claimed leaves are
	// byte-identical to canonical.
	NoMismatchToDispute
	// FalseChallenge: dispute requested at a gate index whose claimed
	// leaf matches canonical.
	FalseChallenge
)

func (k Kind) String() string {
	switch k {
	case InputOutOfRange:
		return "InputOutOfRange"
	case MalformedEncoding:
		return "MalformedEncoding"
	case LayoutMismatch:
		return "LayoutMismatch"
	case MissingMaterial:
		return "MissingMaterial"
	case CommitmentMismatch:
		return "CommitmentMismatch"
	case NoMismatchToDispute:
		return "NoMismatchToDispute"
	case FalseChallenge:
		return "FalseChallenge"
	default:
		return "Unknown"
	}
}

// Error is a boundary error: a Kind plus a human-readable message. It
// satisfies the standard error interface and supports errors.Is/As via Kind
// equality and type assertion respectively.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Is reports whether target is an *Error with the same Kind, so that
// errors.Is(err, errs.New(errs.FalseChallenge, "")) matches any
// FalseChallenge error regardless of message.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

// New constructs a boundary error of the given kind.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}
