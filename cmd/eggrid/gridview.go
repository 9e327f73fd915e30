package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/eggrid/eggrid/pkg/egg"
	"github.com/eggrid/eggrid/pkg/geom"
	"github.com/eggrid/eggrid/pkg/termgrid"
)

// gridViewModel draws the grid and feeds terminal input to the engine as
// host events. It owns no engine state: the grid and core are shared with
// the app model.
type gridViewModel struct {
	grid    *termgrid.Grid
	palette termgrid.Palette
	added   int
}

func newGridView(grid *termgrid.Grid, theme string, seeded int) gridViewModel {
	return gridViewModel{
		grid:    grid,
		palette: paletteFor(theme),
		added:   seeded,
	}
}

// handleMouse translates a terminal mouse event into the host pointer
// events the engine listens for. originX and originY locate the rendered
// grid inside the app view; coordinates outside the grid pass through
// unclamped, the engine treats them as misses.
func (m *gridViewModel) handleMouse(msg tea.MouseMsg, originX, originY int) {
	point := geom.Point{
		X: float64(msg.X - originX),
		Y: float64(msg.Y - originY),
	}

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.grid.ScrollBy(geom.Point{Y: -1})
	case msg.Button == tea.MouseButtonWheelDown:
		m.grid.ScrollBy(geom.Point{Y: 1})
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.grid.Emit(egg.Event{Name: egg.HostPointerDown, Point: point})
	case msg.Action == tea.MouseActionMotion:
		m.grid.Emit(egg.Event{Name: egg.HostPointerMove, Point: point})
	case msg.Action == tea.MouseActionRelease:
		m.grid.Emit(egg.Event{Name: egg.HostPointerUp, Point: point})
	}
}

// handleEngineKey forwards a key to the engine's keyboard module.
func (m *gridViewModel) handleEngineKey(name string) {
	m.grid.Emit(egg.Event{Name: egg.HostKeyDown, Key: name})
}

// addItem appends a freshly labelled item in the first free cell.
func (m *gridViewModel) addItem() {
	m.grid.AddItem(itemLabel(m.added))
	m.added++
}

// removeSelected removes the selected item, deselecting it first so the
// engine never holds a dangling reference.
func (m *gridViewModel) removeSelected(core *egg.Core) {
	it, ok := core.Selected().(*termgrid.Item)
	if !ok {
		return
	}
	core.Deselect()
	m.grid.Remove(it)
}

func (m *gridViewModel) setTheme(theme string) {
	m.palette = paletteFor(theme)
}

func (m gridViewModel) View() string {
	return m.grid.Render(m.palette)
}
