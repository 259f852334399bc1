package locustron

import "errors"

// Sentinel errors returned by façade operations. Callers distinguish error
// kinds with errors.Is; call sites that need to name the offending value
// wrap these with fmt.Errorf("...: %w", ...).
var (
	// ErrInvalidInput indicates a null/missing identity, a non-finite
	// bbox, or a query with missing coordinates.
	ErrInvalidInput = errors.New("locustron: invalid input")
	// ErrInvalidExtent indicates a query with non-positive width or height.
	ErrInvalidExtent = errors.New("locustron: query extent must be positive")
	// ErrDuplicateRegistration indicates Add was called with an identity
	// already present in the index.
	ErrDuplicateRegistration = errors.New("locustron: object already registered")
	// ErrUnknownObject indicates Update, Remove, or GetBBox was called
	// with an identity not present in the index.
	ErrUnknownObject = errors.New("locustron: unknown object")
	// ErrUnknownStrategy indicates New was called with an unrecognised
	// strategy name.
	ErrUnknownStrategy = errors.New("locustron: unknown strategy")
)

// invariant panics with msg if cond is false. It marks a condition the
// implementation asserts can never occur during normal operation — an
// invariant-violation, not a caller error — so a panic is the right
// signal rather than a returned error.
func invariant(cond bool, msg string) {
	if !cond {
		panic("locustron: invariant violation: " + msg)
	}
}
