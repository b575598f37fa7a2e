package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/legit-scm/legit/internal/config"
)

func newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show the settings file, or open it in your editor",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := config.Path()
			if err != nil {
				return err
			}

			edit, _ := cmd.Flags().GetBool("edit")
			if edit {
				return openInEditor(cmd, path)
			}

			settings, err := config.Load(path)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Settings file: %s\n\n", path)
			fmt.Fprintf(out, "verbose: %t\n", settings.Verbose)
			fmt.Fprintf(out, "fake: %t\n", settings.Fake)
			fmt.Fprintf(out, "remote: %s\n", settings.Remote)
			fmt.Fprintf(out, "stash_untracked: %t\n", settings.StashUntracked)
			return nil
		},
	}
	cmd.Flags().Bool("edit", false, "Open the settings file in $EDITOR")
	return cmd
}

// openInEditor writes the current settings to disk if the file is missing,
// then hands it to the user's editor.
func openInEditor(cmd *cobra.Command, path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		settings, lerr := config.Load(path)
		if lerr != nil {
			return lerr
		}
		if err := config.Save(path, settings); err != nil {
			return err
		}
	}

	editor := resolveEditor()
	if editor == "" {
		return fmt.Errorf("neither $EDITOR nor $VISUAL is set; edit %s directly", path)
	}

	edit := exec.CommandContext(cmd.Context(), editor, path)
	edit.Stdin = os.Stdin
	edit.Stdout = os.Stdout
	edit.Stderr = os.Stderr
	return edit.Run()
}

// resolveEditor picks the user's editor, $EDITOR before $VISUAL.
func resolveEditor() string {
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	return os.Getenv("VISUAL")
}
