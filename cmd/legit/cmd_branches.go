package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/legit-scm/legit/internal/scm"
	"github.com/legit-scm/legit/internal/ui"
)

func newBranchesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "branches",
		Short: "List local branches and their publication state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWorkflow(cmd, func(ctx context.Context, s *scm.SCM) error {
				infos, err := s.Branches(ctx)
				if err != nil {
					return err
				}
				return ui.BranchTable(cmd.OutOrStdout(), branchRows(infos))
			})
		},
	}
}
