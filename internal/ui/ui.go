// Package ui renders user-facing CLI output. Outcome messages carry a
// colored status marker; plain command output (logs, diffs, status
// listings) goes straight to the command's writer without decoration.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
)

// Successf prints a green check-marked message.
func Successf(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, successStyle.Render("✓ "+fmt.Sprintf(format, args...)))
}

// Errorf prints a red cross-marked message.
func Errorf(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, errorStyle.Render("✗ "+fmt.Sprintf(format, args...)))
}

// Warningf prints a yellow warning-marked message.
func Warningf(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, warningStyle.Render("⚠ "+fmt.Sprintf(format, args...)))
}

// Infof prints a blue info-marked message.
func Infof(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, infoStyle.Render("ℹ "+fmt.Sprintf(format, args...)))
}
