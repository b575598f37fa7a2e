package scm

import (
	"context"
	"sort"
)

// Backend is the capability surface the workflows need from the underlying
// version-control system. It is satisfied by *git.Repo; tests substitute an
// in-memory fake.
type Backend interface {
	// CurrentBranch returns the name of the checked out branch.
	CurrentBranch(ctx context.Context) (string, error)

	// BranchNames lists local branch names when local is true, otherwise
	// the remote-tracking branch names with the remote prefix stripped.
	BranchNames(ctx context.Context, local bool) ([]string, error)

	// IsDirty reports whether the working tree has uncommitted changes.
	IsDirty(ctx context.Context) (bool, error)

	// HasRemote reports whether the configured remote exists, and Remote
	// names it.
	HasRemote() bool
	Remote() string

	// StashPush shelves local changes; StashPop restores the most recent
	// entry, failing with git.ErrStashPopConflict when the tree is in the
	// way (the entry is preserved).
	StashPush(ctx context.Context, message string) error
	StashPop(ctx context.Context) error

	// Checkout switches branches, failing when local changes block it.
	Checkout(ctx context.Context, branch string) error

	// Fetch and Merge form the smart pull; Merge reports conflicts as
	// git.ErrMergeConflict with the tree left conflicted.
	Fetch(ctx context.Context) error
	Merge(ctx context.Context, ref string) error

	// Push uploads a branch, creating its remote-tracking counterpart as a
	// side effect. DeleteRemoteBranch removes one, failing with
	// git.ErrRemoteBranchGone when the remote no longer has it.
	Push(ctx context.Context, branch string) error
	DeleteRemoteBranch(ctx context.Context, branch string) error

	// SoftResetLastCommit drops the latest commit, keeping its changes.
	SoftResetLastCommit(ctx context.Context) error
}

// SCM drives the branch workflows against a backend, reporting progress
// through a Reporter.
type SCM struct {
	backend Backend
	rep     *Reporter
}

// New creates an SCM over the given backend and reporter.
func New(backend Backend, rep *Reporter) *SCM {
	return &SCM{backend: backend, rep: rep}
}

// BranchInfo describes one local branch for listings.
type BranchInfo struct {
	Name      string
	Current   bool
	Published bool
}

// Branches lists local branches with their publication state, sorted by
// name. A detached HEAD simply yields no current marker.
func (s *SCM) Branches(ctx context.Context) ([]BranchInfo, error) {
	locals, err := s.backend.BranchNames(ctx, true)
	if err != nil {
		return nil, err
	}

	remotes, err := s.backend.BranchNames(ctx, false)
	if err != nil {
		return nil, err
	}
	published := make(map[string]bool, len(remotes))
	for _, name := range remotes {
		published[name] = true
	}

	current, _ := s.backend.CurrentBranch(ctx)

	infos := make([]BranchInfo, 0, len(locals))
	for _, name := range locals {
		infos = append(infos, BranchInfo{
			Name:      name,
			Current:   name == current,
			Published: published[name],
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos, nil
}
