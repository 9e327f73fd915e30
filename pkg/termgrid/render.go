package termgrid

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/eggrid/eggrid/pkg/geom"
)

// Palette holds the lipgloss styles Render draws with. Every style carries
// a border so occupied, empty and placeholder cells share one footprint.
type Palette struct {
	Item        lipgloss.Style
	Selected    lipgloss.Style
	Covered     lipgloss.Style
	Placeholder lipgloss.Style
	Empty       lipgloss.Style
}

// DefaultPalette is a muted scheme that degrades to plain borders on
// colorless terminals.
func DefaultPalette() Palette {
	box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)

	return Palette{
		Item:        box.BorderForeground(lipgloss.Color("240")),
		Selected:    box.BorderForeground(lipgloss.Color("212")).Bold(true),
		Covered:     box.BorderForeground(lipgloss.Color("238")).Faint(true),
		Placeholder: lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).Padding(0, 1).BorderForeground(lipgloss.Color("63")),
		Empty:       lipgloss.NewStyle().Border(lipgloss.HiddenBorder()).Padding(0, 1),
	}
}

// Render draws the visible portion of the grid, cell by cell. An item's
// label shows in its base cell; the rest of a multi-span item renders as
// covered cells.
func (g *Grid) Render(p Palette) string {
	cols, rows := g.Columns(), g.Rows()
	gapCol := strings.Repeat(" ", g.cfg.Gap)

	rowBlocks := make([]string, 0, rows)
	for r := 1; r <= rows; r++ {
		cells := make([]string, 0, 2*cols)
		for c := 1; c <= cols; c++ {
			if c > 1 && g.cfg.Gap > 0 {
				cells = append(cells, gapCol)
			}
			cells = append(cells, g.renderCell(p, geom.Cell{Column: c, Row: r}))
		}
		rowBlocks = append(rowBlocks, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	content := strings.Join(rowBlocks, strings.Repeat("\n", g.cfg.Gap+1))

	return g.viewport(content)
}

func (g *Grid) renderCell(p Palette, cell geom.Cell) string {
	w, h := g.cfg.CellWidth, g.cfg.CellHeight
	it, base := g.itemCovering(cell)

	style := p.Empty
	label := ""
	switch {
	case it != nil && base && it.selected:
		style = p.Selected
		label = it.label
	case it != nil && base:
		style = p.Item
		label = it.label
	case it != nil:
		style = p.Covered
	default:
		if ph, ok := g.PlaceholderCell(); ok && ph == cell {
			style = p.Placeholder
		}
	}

	label = runewidth.Truncate(label, max(1, w-4), "…")

	return style.
		Width(w - 2).
		Height(h - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(label)
}

// viewport cuts the rendered content down to the configured window, honoring
// the vertical scroll offset.
func (g *Grid) viewport(content string) string {
	v := g.cfg.ViewportRows
	if v <= 0 {
		return content
	}

	lines := strings.Split(content, "\n")
	start := int(g.scroll.Y)
	if maxStart := len(lines) - v; start > maxStart {
		start = maxStart
	}
	if start < 0 {
		start = 0
	}
	end := start + v
	if end > len(lines) {
		end = len(lines)
	}

	return strings.Join(lines[start:end], "\n")
}
