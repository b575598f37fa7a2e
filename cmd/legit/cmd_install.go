package main

import (
	"github.com/spf13/cobra"

	"github.com/legit-scm/legit/internal/git"
	"github.com/legit-scm/legit/internal/match"
	"github.com/legit-scm/legit/internal/scm"
)

// aliasedCommands are the workflows installed as global git aliases, so
// `git sync` runs `legit sync`.
var aliasedCommands = []string{
	"branches",
	"publish",
	"switch",
	"sync",
	"unpublish",
	"undo",
}

func newInstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "install",
		Short: "Install the workflows as global git aliases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings := loadSettings()
			verbose, _ := cmd.Flags().GetBool("verbose")
			fake, _ := cmd.Flags().GetBool("fake")
			rep := scm.NewReporter(cmd.OutOrStdout(),
				verbose || settings.Verbose,
				fake || settings.Fake)

			for _, name := range match.SortBySimilarity(aliasedCommands) {
				expansion := "!legit " + name
				err := rep.Run(
					"Installing alias "+name+".",
					git.AliasCommand(name, expansion),
					func() error {
						return git.SetGlobalAlias(cmd.Context(), name, expansion)
					})
				if err != nil {
					return renderError(cmd, nil, err)
				}
			}
			return nil
		},
	}
}
