package git

import (
	"errors"
	"fmt"
	"strings"
)

// Common sentinel errors that can be checked with errors.Is().
// These wrap underlying go-git and git-binary errors while providing a
// stable API for consumers.

// ErrNoRepository is returned when the working directory is not inside a
// git repository.
var ErrNoRepository = errors.New("not a git repository")

// ErrNoRemote is returned when an operation requires a configured remote
// and the repository has none with the expected name.
var ErrNoRemote = errors.New("no remote configured")

// ErrDetachedHead is returned when an operation needs a current branch but
// HEAD does not point to one.
var ErrDetachedHead = errors.New("HEAD is detached")

// ErrBranchMissing is returned when attempting to operate on a branch that
// does not exist.
var ErrBranchMissing = errors.New("branch does not exist")

// ErrMergeConflict is returned when a merge stops on conflicts that need
// manual resolution. The working tree is left in the conflicted state.
var ErrMergeConflict = errors.New("merge conflict")

// ErrStashPopConflict is returned when popping a stash would overwrite
// changes in the working tree. The stash entry is preserved.
var ErrStashPopConflict = errors.New("stash pop conflict")

// ErrRemoteBranchGone is returned when deleting a remote branch that the
// remote no longer has, typically because someone else already deleted it.
var ErrRemoteBranchGone = errors.New("remote branch already deleted")

// ErrNothingToUndo is returned when the current branch has no commit to
// remove, i.e. HEAD is the root commit or the branch is unborn.
var ErrNothingToUndo = errors.New("nothing to undo")

// ErrAlreadyUpToDate is returned when fetch or push results in no changes
// because local and remote are already synchronized.
var ErrAlreadyUpToDate = errors.New("already up to date")

// ErrNotFastForward is returned when a push is rejected because the remote
// has commits the local branch does not.
var ErrNotFastForward = errors.New("not a fast-forward")

// WrapError wraps an error with additional context while preserving
// the ability to check against sentinel errors using errors.Is().
func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// WrapErrorf wraps an error with formatted additional context while
// preserving the ability to check against sentinel errors using errors.Is().
func WrapErrorf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// GitError captures a failed git command: the arguments it ran with, the
// process error, and the combined output for user-facing diagnostics.
type GitError struct {
	Args   []string
	Err    error
	Output string
}

// Error implements the error interface with the command and its output.
func (e *GitError) Error() string {
	msg := fmt.Sprintf("git %s failed", strings.Join(e.Args, " "))
	if e.Output != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Output)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying error for use with errors.Is and errors.As.
func (e *GitError) Unwrap() error {
	return e.Err
}

// CommandOutput returns the captured git output from the first GitError in
// err's chain, or an empty string when there is none.
func CommandOutput(err error) string {
	var gitErr *GitError
	if errors.As(err, &gitErr) {
		return gitErr.Output
	}
	return ""
}
