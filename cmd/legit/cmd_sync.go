package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/legit-scm/legit/internal/scm"
)

func newSyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "sync [branch]",
		Aliases: []string{"sy"},
		Short:   "Synchronize a published branch with the server",
		Long:    "Stashes local changes, pulls and merges the remote counterpart, pushes the result, and restores the stash. Without an argument the current branch is synced; with one, that branch is synced and the original branch restored afterwards.",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWorkflow(cmd, func(ctx context.Context, s *scm.SCM) error {
				return s.Sync(ctx, optionalBranchArg(args))
			})
		},
	}
}
