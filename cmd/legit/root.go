package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/legit-scm/legit/internal/config"
	"github.com/legit-scm/legit/internal/git"
	"github.com/legit-scm/legit/internal/scm"
	"github.com/legit-scm/legit/internal/ui"
)

// errRendered marks an error that has already been shown to the user, so
// main exits non-zero without printing it again.
var errRendered = errors.New("rendered")

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "legit",
		Short:   "Git workflows for humans",
		Long:    "legit wraps the common branch workflows: switching, syncing, publishing, and undoing, with local changes carried safely across each one.",
		Version: version,

		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().Bool("verbose", false, "Show the underlying git commands")
	cmd.PersistentFlags().Bool("fake", false, "Show what would run without executing")

	cmd.AddCommand(
		newSwitchCmd(),
		newSyncCmd(),
		newPublishCmd(),
		newUnpublishCmd(),
		newUndoCmd(),
		newBranchesCmd(),
		newInstallCmd(),
		newSettingsCmd(),
	)

	return cmd
}

// loadSettings reads the settings file, falling back to defaults when it is
// missing or unreadable. A malformed file is reported once and ignored.
func loadSettings() config.Settings {
	path, err := config.Path()
	if err != nil {
		return config.Default()
	}
	settings, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		return config.Default()
	}
	return settings
}

// openSCM opens the repository in the current directory and wires it to a
// reporter configured from the settings file and the command-line flags.
func openSCM(cmd *cobra.Command) (*scm.SCM, error) {
	settings := loadSettings()
	verbose, _ := cmd.Flags().GetBool("verbose")
	fake, _ := cmd.Flags().GetBool("fake")

	repo, err := git.Open(cmd.Context(), &git.Options{
		Remote:         settings.Remote,
		StashUntracked: settings.StashUntracked,
	})
	if err != nil {
		return nil, err
	}

	rep := scm.NewReporter(cmd.OutOrStdout(),
		verbose || settings.Verbose,
		fake || settings.Fake)
	return scm.New(repo, rep), nil
}

// runWorkflow opens the repository, runs the workflow, and renders any
// failure with recovery guidance.
func runWorkflow(cmd *cobra.Command, fn func(ctx context.Context, s *scm.SCM) error) error {
	s, err := openSCM(cmd)
	if err != nil {
		return renderError(cmd, nil, err)
	}
	if err := fn(cmd.Context(), s); err != nil {
		return renderError(cmd, s, err)
	}
	return nil
}

// renderError shows err to the user with guidance matched to what went
// wrong, then returns errRendered so the failure is not printed twice.
func renderError(cmd *cobra.Command, s *scm.SCM, err error) error {
	errOut := cmd.ErrOrStderr()

	if abort, ok := scm.AsAbort(err); ok {
		ui.Errorf(errOut, "Aborted: %s.", abort.Reason)
		if abort.Hint != "" {
			ui.Hintf(errOut, "Hint: %s.", abort.Hint)
		}
		if abort.ListBranches && s != nil {
			printBranches(cmd, s)
		}
		return errRendered
	}

	switch {
	case errors.Is(err, git.ErrNoRepository):
		ui.Errorf(errOut, "Not a git repository (or any parent up to the filesystem root).")
	case errors.Is(err, git.ErrDetachedHead):
		ui.Errorf(errOut, "HEAD is detached; check out a branch first.")
	case errors.Is(err, git.ErrMergeConflict):
		ui.Errorf(errOut, "Merge conflict. Fix the conflicted files, commit the result, then sync again.")
		ui.Hintf(errOut, "Any stashed local changes are preserved; restore them with git stash pop once the tree is clean.")
	case errors.Is(err, git.ErrStashPopConflict):
		ui.Errorf(errOut, "Restoring local changes hit a conflict.")
		ui.Hintf(errOut, "Your changes are still stashed; resolve the conflicts, then run git stash pop.")
	case errors.Is(err, git.ErrRemoteBranchGone):
		ui.Errorf(errOut, "The remote no longer has that branch.")
		ui.Hintf(errOut, "Run git fetch --prune to drop stale remote-tracking branches.")
	case errors.Is(err, git.ErrNotFastForward):
		ui.Errorf(errOut, "The remote has commits this branch does not; sync before pushing.")
	default:
		ui.Errorf(errOut, "%v", err)
		if out := git.CommandOutput(err); out != "" && !strings.Contains(err.Error(), out) {
			ui.Hintf(errOut, "%s", out)
		}
	}
	return errRendered
}

// printBranches renders the branch listing, swallowing listing errors since
// it only decorates another message.
func printBranches(cmd *cobra.Command, s *scm.SCM) {
	infos, err := s.Branches(cmd.Context())
	if err != nil {
		return
	}
	_ = ui.BranchTable(cmd.OutOrStdout(), branchRows(infos))
}

func branchRows(infos []scm.BranchInfo) []ui.BranchRow {
	rows := make([]ui.BranchRow, 0, len(infos))
	for _, info := range infos {
		rows = append(rows, ui.BranchRow{
			Name:      info.Name,
			Current:   info.Current,
			Published: info.Published,
		})
	}
	return rows
}

// optionalBranchArg returns the single optional branch argument, or "".
func optionalBranchArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
