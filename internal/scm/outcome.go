package scm

import "errors"

// Abort is a recoverable, user-facing refusal raised before any mutation:
// a missing or unknown branch argument, a publication-state precondition,
// or an absent remote. The process exits non-zero but the repository is
// untouched.
type Abort struct {
	// Reason is the one-line explanation shown to the user.
	Reason string

	// Hint optionally tells the user what to do instead.
	Hint string

	// ListBranches asks the caller to show the available branches after
	// the reason, for aborts caused by branch-name arguments.
	ListBranches bool
}

// Error implements the error interface.
func (a *Abort) Error() string {
	return a.Reason
}

// AsAbort extracts an *Abort from err's chain.
func AsAbort(err error) (*Abort, bool) {
	var abort *Abort
	if errors.As(err, &abort) {
		return abort, true
	}
	return nil, false
}
