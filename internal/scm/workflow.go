package scm

import (
	"context"
	"errors"
	"fmt"

	"github.com/legit-scm/legit/internal/git"
)

// Switch moves the working tree to the named branch, stashing local changes
// before the checkout and restoring them after it. When the checkout fails
// the stash is left in place so nothing is lost.
func (s *SCM) Switch(ctx context.Context, branch string) error {
	if branch == "" {
		return &Abort{
			Reason:       "please specify a branch to switch to",
			ListBranches: true,
		}
	}

	owed, err := s.maybeStash(ctx, stashSwitchMessage)
	if err != nil {
		return err
	}

	err = s.rep.Run(fmt.Sprintf("Switching to %s.", branch), "checkout "+branch, func() error {
		return s.backend.Checkout(ctx, branch)
	})
	if err != nil {
		// The owed stash stays put; popping onto the wrong branch would
		// scatter the changes.
		return err
	}

	return s.maybeUnstash(ctx, owed)
}

// Sync brings a published branch in line with its remote counterpart:
// stash, fetch + merge, push, unstash. With an explicit target that differs
// from the current branch it switches there first and back afterwards.
// A merge conflict stops the workflow on the conflicted branch; no push,
// restore, or switch-back runs.
func (s *SCM) Sync(ctx context.Context, target string) error {
	if err := s.requireRemote(); err != nil {
		return err
	}

	current, err := s.backend.CurrentBranch(ctx)
	if err != nil {
		return err
	}

	branch := current
	external := false
	if target != "" {
		resolved, ok, rerr := s.resolveLocal(ctx, target)
		if rerr != nil {
			return rerr
		}
		if !ok {
			return &Abort{
				Reason:       fmt.Sprintf("branch %q does not exist", target),
				Hint:         "use a branch that does",
				ListBranches: true,
			}
		}
		branch = resolved
		external = branch != current
	}

	published, err := s.isPublished(ctx, branch)
	if err != nil {
		return err
	}
	if !published {
		return &Abort{
			Reason: fmt.Sprintf("branch %q is not published", branch),
			Hint:   "publish it before syncing",
		}
	}

	if external {
		if err := s.Switch(ctx, branch); err != nil {
			return err
		}
	}

	owed, err := s.maybeStash(ctx, stashSyncMessage)
	if err != nil {
		return err
	}

	if err := s.smartPull(ctx, branch); err != nil {
		return err
	}

	err = s.rep.Run("Pushing commits to the server.", fmt.Sprintf("push %s %s", s.backend.Remote(), branch), func() error {
		perr := s.backend.Push(ctx, branch)
		if errors.Is(perr, git.ErrAlreadyUpToDate) {
			return nil
		}
		return perr
	})
	if err != nil {
		return err
	}

	if err := s.maybeUnstash(ctx, owed); err != nil {
		return err
	}

	if external {
		return s.Switch(ctx, current)
	}
	return nil
}

// smartPull fetches from the remote and merges the remote counterpart of
// branch into the current branch as one logical step with a single
// conflict outcome.
func (s *SCM) smartPull(ctx context.Context, branch string) error {
	ref := s.backend.Remote() + "/" + branch
	return s.rep.Run("Pulling commits from the server.", "fetch && merge "+ref, func() error {
		if err := s.backend.Fetch(ctx); err != nil && !errors.Is(err, git.ErrAlreadyUpToDate) {
			return err
		}
		return s.backend.Merge(ctx, ref)
	})
}

// Publish pushes an unpublished branch to the remote, creating its
// remote-tracking counterpart. Without a target, or with one that resolves
// to nothing, the current branch is used.
func (s *SCM) Publish(ctx context.Context, target string) error {
	if err := s.requireRemote(); err != nil {
		return err
	}

	branch := ""
	if target != "" {
		resolved, ok, err := s.resolveLocal(ctx, target)
		if err != nil {
			return err
		}
		if ok {
			branch = resolved
		} else {
			s.echoBranches(ctx)
			s.rep.Echo("Branch %q not found, using the current branch.", target)
		}
	}
	if branch == "" {
		current, err := s.backend.CurrentBranch(ctx)
		if err != nil {
			return err
		}
		branch = current
	}

	published, err := s.isPublished(ctx, branch)
	if err != nil {
		return err
	}
	if published {
		return &Abort{
			Reason: fmt.Sprintf("branch %q is already published", branch),
			Hint:   "use a branch that is not",
		}
	}

	return s.rep.Run(fmt.Sprintf("Publishing %s.", branch), fmt.Sprintf("push %s %s", s.backend.Remote(), branch), func() error {
		perr := s.backend.Push(ctx, branch)
		if errors.Is(perr, git.ErrAlreadyUpToDate) {
			return nil
		}
		return perr
	})
}

// Unpublish deletes a branch's remote-tracking counterpart. The branch name
// is mandatory. A branch the remote no longer has surfaces as
// git.ErrRemoteBranchGone for the caller to render with prune guidance.
func (s *SCM) Unpublish(ctx context.Context, target string) error {
	if err := s.requireRemote(); err != nil {
		return err
	}

	if target == "" {
		return &Abort{
			Reason:       "please specify a branch to unpublish",
			ListBranches: true,
		}
	}

	branch, ok, err := s.resolveAny(ctx, target)
	if err != nil {
		return err
	}
	if !ok {
		return &Abort{
			Reason:       fmt.Sprintf("branch %q does not exist", target),
			ListBranches: true,
		}
	}

	published, err := s.isPublished(ctx, branch)
	if err != nil {
		return err
	}
	if !published {
		return &Abort{
			Reason: fmt.Sprintf("branch %q is not published", branch),
			Hint:   "use a branch that is",
		}
	}

	return s.rep.Run(fmt.Sprintf("Unpublishing %s.", branch), fmt.Sprintf("push %s :%s", s.backend.Remote(), branch), func() error {
		return s.backend.DeleteRemoteBranch(ctx, branch)
	})
}

// Undo removes the most recent commit from the current branch while keeping
// its changes in the working tree.
func (s *SCM) Undo(ctx context.Context) error {
	return s.rep.Run("Removing the last commit from history.", "reset --soft HEAD~1", func() error {
		return s.backend.SoftResetLastCommit(ctx)
	})
}

// echoBranches prints the local branches with a marker on the current one,
// for messages that name a branch the user may have misspelled. Listing
// failures are swallowed since the list only decorates another message.
func (s *SCM) echoBranches(ctx context.Context) {
	infos, err := s.Branches(ctx)
	if err != nil {
		return
	}
	for _, info := range infos {
		marker := "  "
		if info.Current {
			marker = "* "
		}
		s.rep.Echo("%s%s", marker, info.Name)
	}
}

// requireRemote refuses workflows that need a remote when none is
// configured.
func (s *SCM) requireRemote() error {
	if s.backend.HasRemote() {
		return nil
	}
	return &Abort{
		Reason: fmt.Sprintf("no remote %q is configured", s.backend.Remote()),
		Hint:   "add a remote repository before using remote workflows",
	}
}
