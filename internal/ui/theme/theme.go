// Package theme defines the visual style shared by the terminal
// variants. Variants overlay nothing: they render with these styles
// as-is, so every chapter of the walkthrough looks the same and only
// the wiring differs.
package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// The Acme-inspired palette: warm cream surfaces, calm blue accents.
const (
	ColorCream    = lipgloss.Color("#FFFFEA")
	ColorPaleBlue = lipgloss.Color("#EAFFFF")
	ColorBorder   = lipgloss.Color("#8888CC")
	ColorText     = lipgloss.Color("#000000")
	ColorHigh     = lipgloss.Color("#EEEE9E")
	ColorGreyBlue = lipgloss.Color("#55AAAA")
)

// Theme holds the styles a variant renders with.
type Theme struct {
	Title lipgloss.Style
	Count lipgloss.Style
	Help  lipgloss.Style
	Frame lipgloss.Style
}

// Default returns the walkthrough's standard theme.
func Default() Theme {
	return Theme{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Background(ColorPaleBlue).
			Padding(0, 1),
		Count: lipgloss.NewStyle().
			Foreground(ColorText).
			Background(ColorHigh).
			Padding(0, 1),
		Help: lipgloss.NewStyle().
			Foreground(ColorGreyBlue),
		Frame: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2),
	}
}
