package main

import (
	_ "embed"
	"strings"

	"github.com/charmbracelet/glamour"
)

//go:embed help.md
var helpMarkdown string

// renderHelp renders the embedded manual for display in the terminal.
// Rendering failures fall back to the raw markdown.
func renderHelp(width int) string {
	if width <= 0 {
		width = 72
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return helpMarkdown
	}

	out, err := r.Render(helpMarkdown)
	if err != nil {
		return helpMarkdown
	}

	return strings.TrimRight(out, "\n")
}
