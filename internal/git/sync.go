package git

import (
	"context"
	"errors"
	"fmt"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
)

// Fetch downloads refs and objects from the configured remote.
// Returns ErrAlreadyUpToDate when there is nothing new, which callers may
// treat as success.
//
// Context timeout/cancellation is honored during the fetch operation.
func (r *Repo) Fetch(ctx context.Context) error {
	err := r.repo.FetchContext(ctx, &gogit.FetchOptions{
		RemoteName: r.remote,
	})
	if err != nil {
		if errors.Is(err, gogit.ErrRemoteNotFound) {
			return WrapError(ErrNoRemote, r.remote)
		}
		if errors.Is(err, gogit.NoErrAlreadyUpToDate) {
			return ErrAlreadyUpToDate
		}
		return WrapError(err, "failed to fetch from remote")
	}
	return nil
}

// Merge merges the given ref (typically "<remote>/<branch>") into the
// current branch via the git binary, which performs a real three-way merge.
// Returns ErrMergeConflict when the merge stops on conflicts; the working
// tree is left in the conflicted state for manual resolution.
//
// Context timeout/cancellation is honored during the operation.
func (r *Repo) Merge(ctx context.Context, ref string) error {
	out, err := r.run.run(ctx, "merge", "--no-edit", ref)
	if err != nil {
		if isMergeConflict(out) {
			return WrapErrorf(ErrMergeConflict, "merging %s", ref)
		}
		return WrapErrorf(err, "failed to merge %s", ref)
	}
	return nil
}

// isMergeConflict recognizes the git output for a merge stopped on
// conflicting changes.
func isMergeConflict(out string) bool {
	return strings.Contains(out, "CONFLICT") ||
		strings.Contains(out, "Automatic merge failed")
}

// Push uploads the named branch to the configured remote, creating the
// remote-tracking branch when it does not exist yet. Returns
// ErrAlreadyUpToDate when the remote already has everything, and
// ErrNotFastForward when the remote has commits the local branch lacks.
//
// Context timeout/cancellation is honored during the push operation.
func (r *Repo) Push(ctx context.Context, branch string) error {
	if branch == "" {
		return WrapError(ErrBranchMissing, "branch name cannot be empty")
	}

	refSpec := config.RefSpec(fmt.Sprintf("refs/heads/%s:refs/heads/%s", branch, branch))
	err := r.repo.PushContext(ctx, &gogit.PushOptions{
		RemoteName: r.remote,
		RefSpecs:   []config.RefSpec{refSpec},
	})
	if err != nil {
		if errors.Is(err, gogit.ErrRemoteNotFound) {
			return WrapError(ErrNoRemote, r.remote)
		}
		if errors.Is(err, gogit.NoErrAlreadyUpToDate) {
			return ErrAlreadyUpToDate
		}
		if errors.Is(err, gogit.ErrNonFastForwardUpdate) {
			return WrapErrorf(ErrNotFastForward, "pushing %s", branch)
		}
		return WrapErrorf(err, "failed to push %s", branch)
	}
	return nil
}

// DeleteRemoteBranch removes the named branch from the remote and drops the
// local remote-tracking ref. The remote is consulted first so a branch that
// someone else already deleted surfaces as ErrRemoteBranchGone instead of a
// generic push failure.
//
// Context timeout/cancellation is honored during the operation.
func (r *Repo) DeleteRemoteBranch(ctx context.Context, branch string) error {
	if branch == "" {
		return WrapError(ErrBranchMissing, "branch name cannot be empty")
	}

	remote, err := r.repo.Remote(r.remote)
	if err != nil {
		return WrapError(ErrNoRemote, r.remote)
	}

	refs, err := remote.ListContext(ctx, &gogit.ListOptions{})
	if err != nil {
		return WrapError(err, "failed to list remote references")
	}

	want := plumbing.NewBranchReferenceName(branch)
	found := false
	for _, ref := range refs {
		if ref.Name() == want {
			found = true
			break
		}
	}
	if !found {
		return WrapErrorf(ErrRemoteBranchGone, "deleting %s", branch)
	}

	refSpec := config.RefSpec(":refs/heads/" + branch)
	err = r.repo.PushContext(ctx, &gogit.PushOptions{
		RemoteName: r.remote,
		RefSpecs:   []config.RefSpec{refSpec},
	})
	if err != nil && !errors.Is(err, gogit.NoErrAlreadyUpToDate) {
		return WrapErrorf(err, "failed to delete remote branch %s", branch)
	}

	// Keep the local view consistent without requiring a prune.
	trackingRef := plumbing.NewRemoteReferenceName(r.remote, branch)
	_ = r.repo.Storer.RemoveReference(trackingRef)

	return nil
}
