package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/legit-scm/legit/internal/scm"
)

func newPublishCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "publish [branch]",
		Aliases: []string{"pub"},
		Short:   "Publish a branch to the server",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWorkflow(cmd, func(ctx context.Context, s *scm.SCM) error {
				return s.Publish(ctx, optionalBranchArg(args))
			})
		},
	}
}
