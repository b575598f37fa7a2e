package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/legit-scm/legit/internal/scm"
)

func newUnpublishCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "unpublish <branch>",
		Aliases: []string{"unp"},
		Short:   "Remove a branch from the server",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWorkflow(cmd, func(ctx context.Context, s *scm.SCM) error {
				return s.Unpublish(ctx, optionalBranchArg(args))
			})
		},
	}
}
