// Package tui provides terminal output styling for pulse.
//
// This package provides a centralized style system using Lip Gloss for
// consistent output styling. All colors use AdaptiveColor for light/dark
// terminal support.
//
// Call CheckNoColor() at the start of commands to respect the NO_COLOR
// environment variable. Colors are also disabled when TERM=dumb.
package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

//nolint:gochecknoglobals // Intentional package-level constants for styling API
var (
	// ColorPrimary is blue, used for active states and primary headings.
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#0087AF", Dark: "#00D7FF"}

	// ColorSuccess is green, used for completed items and success messages.
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#008700", Dark: "#00FF87"}

	// ColorWarning is yellow, used for attention-required messages.
	ColorWarning = lipgloss.AdaptiveColor{Light: "#AF8700", Dark: "#FFD700"}

	// ColorError is red, used for error messages.
	ColorError = lipgloss.AdaptiveColor{Light: "#AF0000", Dark: "#FF5F5F"}

	// ColorMuted is gray, used for secondary text.
	ColorMuted = lipgloss.AdaptiveColor{Light: "#585858", Dark: "#6C6C6C"}

	// StyleHeading renders section headings (project names, review titles).
	StyleHeading = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)

	// StyleSuccess renders success markers and completed tasks.
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess)

	// StyleWarning renders warnings.
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning)

	// StyleError renders errors.
	StyleError = lipgloss.NewStyle().Foreground(ColorError)

	// StyleMuted renders secondary text such as ids and timestamps.
	StyleMuted = lipgloss.NewStyle().Foreground(ColorMuted)

	// StyleBold applies bold formatting to text.
	StyleBold = lipgloss.NewStyle().Bold(true)
)

// CheckNoColor disables color output when the terminal does not support it.
func CheckNoColor() {
	if !HasColorSupport() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// HasColorSupport returns true if the terminal supports colors.
// Returns false if NO_COLOR is set (any value including empty string) or
// TERM=dumb. This follows the NO_COLOR standard: https://no-color.org/
func HasColorSupport() bool {
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return true
}
