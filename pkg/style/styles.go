// Package style centralizes the terminal styling used by the CLI. Styling is
// disabled automatically when stdout is not a terminal.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12")).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	PathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14")).
			Italic(true)
)

// Operation indicators
var (
	SuccessIndicator = "✓"
	ErrorIndicator   = "✗"
	InfoIndicator    = "•"
)

var enabled = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

// Enabled reports whether styled output is active.
func Enabled() bool {
	return enabled
}

// SetEnabled forces styling on or off, mainly for tests.
func SetEnabled(on bool) {
	enabled = on
}

// render applies a style only when styling is enabled.
func render(s lipgloss.Style, text string) string {
	if !enabled {
		return text
	}
	return s.Render(text)
}

// OK formats a success status line.
func OK(text string) string {
	return render(SuccessStyle, SuccessIndicator) + " " + text
}

// Fail formats a failure status line.
func Fail(text string) string {
	return render(ErrorStyle, ErrorIndicator) + " " + text
}

// Title formats a heading line.
func Title(text string) string {
	return render(TitleStyle, text)
}

// Item formats a list entry.
func Item(text string) string {
	return "  " + render(MutedStyle, "-") + " " + text
}

// Path formats a filesystem path.
func Path(text string) string {
	return render(PathStyle, text)
}
