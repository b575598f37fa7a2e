package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/legit-scm/legit/internal/scm"
)

func newSwitchCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "switch <branch>",
		Aliases: []string{"sw"},
		Short:   "Switch to a branch, carrying local changes along",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWorkflow(cmd, func(ctx context.Context, s *scm.SCM) error {
				return s.Switch(ctx, optionalBranchArg(args))
			})
		},
	}
}
