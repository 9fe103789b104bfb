package ahp

import "errors"

// ErrNoCandidates marks the distinct "nothing qualifies" outcome: the hard
// constraint filter removed every candidate. Callers must be able to tell
// this apart from an empty candidate set.
var ErrNoCandidates = errors.New("no rooms satisfy the given requirements")

// ValidationError reports malformed engine input: out-of-range judgment
// magnitudes, unknown criteria, inverted preferred ranges. It aborts the
// ranking call.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid ranking input: " + e.Reason
}
