package scm

import "context"

// Stash messages tag who pushed an entry and why. The switch and sync
// workflows keep separate bookkeeping because both can owe a restore at the
// same time when a sync is run against another branch.
const (
	stashSwitchMessage = "legit: stashing before switching branches"
	stashSyncMessage   = "legit: stashing before syncing branch"
)

// maybeStash shelves local changes when the working tree is dirty and
// reports whether a restore is owed. A clean tree owes nothing.
func (s *SCM) maybeStash(ctx context.Context, message string) (bool, error) {
	dirty, err := s.backend.IsDirty(ctx)
	if err != nil {
		return false, err
	}
	if !dirty {
		return false, nil
	}

	err = s.rep.Run("Saving local changes.", "stash push", func() error {
		return s.backend.StashPush(ctx, message)
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// maybeUnstash restores the most recent stash entry when one is owed.
// Only entries pushed by the same workflow reach here, so the LIFO pop
// always restores the matching snapshot.
func (s *SCM) maybeUnstash(ctx context.Context, owed bool) error {
	if !owed {
		return nil
	}
	return s.rep.Run("Restoring local changes.", "stash pop", func() error {
		return s.backend.StashPop(ctx)
	})
}
