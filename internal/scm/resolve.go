package scm

import (
	"context"

	"github.com/legit-scm/legit/internal/match"
)

// resolveLocal resolves a user-supplied name against the local branches:
// exact match first, then the closest similar name above the cutoff.
func (s *SCM) resolveLocal(ctx context.Context, query string) (string, bool, error) {
	names, err := s.backend.BranchNames(ctx, true)
	if err != nil {
		return "", false, err
	}
	name, ok := match.Closest(query, names, match.DefaultCutoff)
	return name, ok, nil
}

// resolveAny resolves a name against the union of local and remote-tracking
// branches, for operations that may target branches without a local
// counterpart.
func (s *SCM) resolveAny(ctx context.Context, query string) (string, bool, error) {
	locals, err := s.backend.BranchNames(ctx, true)
	if err != nil {
		return "", false, err
	}
	remotes, err := s.backend.BranchNames(ctx, false)
	if err != nil {
		return "", false, err
	}

	seen := make(map[string]bool, len(locals))
	names := make([]string, 0, len(locals)+len(remotes))
	for _, n := range locals {
		seen[n] = true
		names = append(names, n)
	}
	for _, n := range remotes {
		if !seen[n] {
			names = append(names, n)
		}
	}

	name, ok := match.Closest(query, names, match.DefaultCutoff)
	return name, ok, nil
}

// isPublished reports whether the branch has a remote-tracking counterpart.
func (s *SCM) isPublished(ctx context.Context, branch string) (bool, error) {
	remotes, err := s.backend.BranchNames(ctx, false)
	if err != nil {
		return false, err
	}
	for _, name := range remotes {
		if name == branch {
			return true, nil
		}
	}
	return false, nil
}
