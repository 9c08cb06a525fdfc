// Package style renders engine results for the terminal.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Styles used across renderers
var (
	TitleStyle   = lipgloss.NewStyle().Bold(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	WarnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	MutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	ArrowStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// colorEnabled reports whether styled output makes sense for stdout
func colorEnabled() bool {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return false
	}
	return termenv.ColorProfile() != termenv.Ascii
}
