package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/eggrid/eggrid/pkg/termgrid"
)

// Centralized style definitions for the TUI chrome.
var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")) // cyan
	titleDimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))            // gray
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))            // gray
	noteStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))            // magenta
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))            // red
	overlayStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
)

// themeNames in cycling order. The first is the default.
var themeNames = []string{"charm", "ocean", "ember"}

// paletteFor returns the grid palette for a theme name. Unknown names fall
// back to the default.
func paletteFor(name string) termgrid.Palette {
	box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)

	switch name {
	case "ocean":
		return termgrid.Palette{
			Item:        box.BorderForeground(lipgloss.Color("31")),
			Selected:    box.BorderForeground(lipgloss.Color("45")).Bold(true),
			Covered:     box.BorderForeground(lipgloss.Color("24")).Faint(true),
			Placeholder: lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).Padding(0, 1).BorderForeground(lipgloss.Color("39")),
			Empty:       lipgloss.NewStyle().Border(lipgloss.HiddenBorder()).Padding(0, 1),
		}
	case "ember":
		return termgrid.Palette{
			Item:        box.BorderForeground(lipgloss.Color("166")),
			Selected:    box.BorderForeground(lipgloss.Color("214")).Bold(true),
			Covered:     box.BorderForeground(lipgloss.Color("94")).Faint(true),
			Placeholder: lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).Padding(0, 1).BorderForeground(lipgloss.Color("203")),
			Empty:       lipgloss.NewStyle().Border(lipgloss.HiddenBorder()).Padding(0, 1),
		}
	default:
		return termgrid.DefaultPalette()
	}
}

// nextTheme returns the theme after name in cycling order.
func nextTheme(name string) string {
	for i, n := range themeNames {
		if n == name {
			return themeNames[(i+1)%len(themeNames)]
		}
	}
	return themeNames[0]
}
