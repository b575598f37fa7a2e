package git

import (
	"context"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5/plumbing"
)

// CurrentBranch returns the name of the currently checked out branch.
// It returns ErrDetachedHead if HEAD is not on a branch. The read is purely
// local; ctx is accepted for interface symmetry.
func (r *Repo) CurrentBranch(ctx context.Context) (string, error) {
	head, err := r.repo.Head()
	if err != nil {
		return "", WrapError(err, "failed to get HEAD reference")
	}

	if !head.Name().IsBranch() {
		return "", WrapError(ErrDetachedHead, "cannot determine current branch")
	}

	return head.Name().Short(), nil
}

// BranchNames lists branch names sorted alphabetically. With local true it
// lists local branches; otherwise it lists the remote-tracking branches of
// the configured remote, with the remote prefix stripped so names compare
// directly against local ones. The read is purely local.
func (r *Repo) BranchNames(ctx context.Context, local bool) ([]string, error) {
	refs, err := r.repo.References()
	if err != nil {
		return nil, WrapError(err, "failed to get references")
	}

	prefix := r.remote + "/"
	var names []string
	err = refs.ForEach(func(ref *plumbing.Reference) error {
		if local {
			if ref.Name().IsBranch() {
				names = append(names, ref.Name().Short())
			}
			return nil
		}
		if !ref.Name().IsRemote() {
			return nil
		}
		short := ref.Name().Short()
		if !strings.HasPrefix(short, prefix) {
			return nil
		}
		name := strings.TrimPrefix(short, prefix)
		if name == "HEAD" {
			return nil
		}
		names = append(names, name)
		return nil
	})
	if err != nil {
		return nil, WrapError(err, "failed to iterate references")
	}

	sort.Strings(names)
	return names, nil
}

// Checkout switches the working tree to the named branch via the git binary,
// so local modifications that would be overwritten make it fail the same way
// git fails interactively. Returns ErrBranchMissing when no such branch
// exists.
//
// Context timeout/cancellation is honored during the operation.
func (r *Repo) Checkout(ctx context.Context, branch string) error {
	if branch == "" {
		return WrapError(ErrBranchMissing, "branch name cannot be empty")
	}

	out, err := r.run.run(ctx, "checkout", branch)
	if err != nil {
		if strings.Contains(out, "did not match any") || strings.Contains(out, "pathspec") {
			return WrapErrorf(ErrBranchMissing, "cannot check out %q", branch)
		}
		return WrapErrorf(err, "failed to check out %q", branch)
	}
	return nil
}
