package git

import (
	"context"
	"strings"
)

// StashPush shelves uncommitted working-tree changes under the given
// message. Stash entries are strictly LIFO; the message only identifies the
// entry in stash listings.
//
// Context timeout/cancellation is honored during the operation.
func (r *Repo) StashPush(ctx context.Context, message string) error {
	args := []string{"stash", "push"}
	if r.stashUntracked {
		args = append(args, "--include-untracked")
	}
	if message != "" {
		args = append(args, "-m", message)
	}

	if _, err := r.run.run(ctx, args...); err != nil {
		return WrapError(err, "failed to stash changes")
	}
	return nil
}

// StashPop restores the most recent stash entry into the working tree and
// drops it. When restoring would overwrite current modifications it returns
// ErrStashPopConflict and git keeps the entry, so nothing is lost.
//
// Context timeout/cancellation is honored during the operation.
func (r *Repo) StashPop(ctx context.Context) error {
	out, err := r.run.run(ctx, "stash", "pop")
	if err != nil {
		if isStashConflict(out) {
			return WrapError(ErrStashPopConflict, "failed to restore stashed changes")
		}
		return WrapError(err, "failed to restore stashed changes")
	}
	return nil
}

// isStashConflict recognizes the git output for a pop blocked by the state
// of the working tree.
func isStashConflict(out string) bool {
	return strings.Contains(out, "CONFLICT") ||
		strings.Contains(out, "overwritten by merge") ||
		strings.Contains(out, "could not restore untracked files")
}
