package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/legit-scm/legit/internal/git"
	"github.com/legit-scm/legit/internal/scm"
)

func TestRootCommandWiring(t *testing.T) {
	root := newRootCmd()

	want := map[string][]string{
		"switch":    {"sw"},
		"sync":      {"sy"},
		"publish":   {"pub"},
		"unpublish": {"unp"},
		"undo":      {"un"},
		"branches":  nil,
		"install":   nil,
		"settings":  nil,
	}

	got := map[string][]string{}
	for _, sub := range root.Commands() {
		got[sub.Name()] = sub.Aliases
	}
	for name, aliases := range want {
		require.Contains(t, got, name)
		assert.Equal(t, aliases, got[name], "aliases for %s", name)
	}

	assert.True(t, root.SilenceUsage, "failures do not dump usage text")
	assert.NotNil(t, root.PersistentFlags().Lookup("verbose"))
	assert.NotNil(t, root.PersistentFlags().Lookup("fake"))
}

func TestRenderError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLines []string
	}{
		{
			name:      "abort with reason and hint",
			err:       &scm.Abort{Reason: `branch "dev" is not published`, Hint: "publish it before syncing"},
			wantLines: []string{"Aborted: branch \"dev\" is not published.", "Hint: publish it before syncing."},
		},
		{
			name:      "merge conflict gets recovery guidance",
			err:       git.WrapError(git.ErrMergeConflict, "merge failed"),
			wantLines: []string{"Merge conflict", "git stash pop"},
		},
		{
			name:      "stash pop conflict points at the preserved stash",
			err:       git.ErrStashPopConflict,
			wantLines: []string{"still stashed", "git stash pop"},
		},
		{
			name:      "gone remote branch suggests pruning",
			err:       git.ErrRemoteBranchGone,
			wantLines: []string{"git fetch --prune"},
		},
		{
			name:      "missing repository",
			err:       git.ErrNoRepository,
			wantLines: []string{"Not a git repository"},
		},
		{
			name:      "unclassified errors pass through",
			err:       errors.New("something odd"),
			wantLines: []string{"something odd"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var errOut bytes.Buffer
			cmd := &cobra.Command{}
			cmd.SetErr(&errOut)

			got := renderError(cmd, nil, tt.err)
			assert.True(t, errors.Is(got, errRendered), "rendered errors are not printed twice")
			for _, line := range tt.wantLines {
				assert.Contains(t, errOut.String(), line)
			}
		})
	}
}

func TestOptionalBranchArg(t *testing.T) {
	assert.Equal(t, "", optionalBranchArg(nil))
	assert.Equal(t, "dev", optionalBranchArg([]string{"dev"}))
}
