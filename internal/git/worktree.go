package git

import (
	"context"

	gogit "github.com/go-git/go-git/v5"
)

// IsDirty reports whether the working tree has uncommitted changes,
// including untracked files. The status walk is purely local.
func (r *Repo) IsDirty(ctx context.Context) (bool, error) {
	status, err := r.worktree.Status()
	if err != nil {
		return false, WrapError(err, "failed to get worktree status")
	}
	return !status.IsClean(), nil
}

// SoftResetLastCommit removes the most recent commit from the current
// branch while keeping its changes staged in the working tree. Returns
// ErrNothingToUndo when HEAD is the root commit. The reset is purely local.
func (r *Repo) SoftResetLastCommit(ctx context.Context) error {
	head, err := r.repo.Head()
	if err != nil {
		return WrapError(err, "failed to get HEAD reference")
	}

	commit, err := r.repo.CommitObject(head.Hash())
	if err != nil {
		return WrapError(err, "failed to read HEAD commit")
	}

	if commit.NumParents() == 0 {
		return WrapError(ErrNothingToUndo, "HEAD is the root commit")
	}

	parent, err := commit.Parent(0)
	if err != nil {
		return WrapError(err, "failed to read parent commit")
	}

	err = r.worktree.Reset(&gogit.ResetOptions{
		Commit: parent.Hash,
		Mode:   gogit.SoftReset,
	})
	if err != nil {
		return WrapError(err, "failed to reset to parent commit")
	}
	return nil
}
