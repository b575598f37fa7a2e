package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBranchTable(t *testing.T) {
	var out bytes.Buffer

	err := BranchTable(&out, []BranchRow{
		{Name: "dev"},
		{Name: "feature-x", Published: true},
		{Name: "main", Current: true, Published: true},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 4, "header plus one line per branch")

	assert.Contains(t, lines[0], "BRANCH")
	assert.Contains(t, lines[0], "PUBLISHED")

	assert.Contains(t, lines[1], "dev")
	assert.Contains(t, lines[1], "no")
	assert.NotContains(t, lines[1], "*")

	assert.Contains(t, lines[2], "feature-x")
	assert.Contains(t, lines[2], "yes")

	assert.True(t, strings.HasPrefix(lines[3], "*"), "current branch carries the marker")
	assert.Contains(t, lines[3], "main")
	assert.Contains(t, lines[3], "yes")
}

func TestBranchTableEmpty(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, BranchTable(&out, nil))
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	assert.Len(t, lines, 1, "header only")
}
