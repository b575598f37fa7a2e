// Package ui renders command output: styled status lines and the branch
// listing table.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	branchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("yellow"))

	currentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("green")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("red")).
			Bold(true)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))
)

// Branch renders a branch name for inline mentions.
func Branch(name string) string {
	return branchStyle.Render(name)
}

// Errorf prints a styled error line.
func Errorf(out io.Writer, format string, args ...interface{}) {
	fmt.Fprintln(out, errorStyle.Render(fmt.Sprintf(format, args...)))
}

// Hintf prints a dimmed follow-up line under an error.
func Hintf(out io.Writer, format string, args ...interface{}) {
	fmt.Fprintln(out, hintStyle.Render(fmt.Sprintf(format, args...)))
}
