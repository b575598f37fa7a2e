package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/legit-scm/legit/internal/scm"
)

func newUndoCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "undo",
		Aliases: []string{"un"},
		Short:   "Remove the last commit, keeping its changes in the tree",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWorkflow(cmd, func(ctx context.Context, s *scm.SCM) error {
				return s.Undo(ctx)
			})
		},
	}
}
