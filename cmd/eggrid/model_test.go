package main

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eggrid/eggrid/pkg/egg"
	"github.com/eggrid/eggrid/pkg/geom"
	"github.com/eggrid/eggrid/pkg/termgrid"
)

// newTestApp builds a live app over a 3x2 grid with two seeded items:
// "sunny" in (1,1) and "poached" in (2,1). The rendered grid starts two
// terminal rows below the top, so terminal y = grid y + 2.
func newTestApp(t *testing.T) appModel {
	t.Helper()

	p := prefs{
		Theme: "charm",
		Items: 2,
		Grid:  gridPrefs{Columns: 3, Rows: 2, CellWidth: 10, CellHeight: 4, ViewportRows: 2},
	}

	bus := termgrid.NewBus()
	grid := termgrid.New(termgrid.Config{
		Columns:      p.Grid.Columns,
		Rows:         p.Grid.Rows,
		CellWidth:    p.Grid.CellWidth,
		CellHeight:   p.Grid.CellHeight,
		ViewportRows: p.Grid.ViewportRows,
		Bus:          bus,
	})
	seedItems(grid, p.Items)

	var opts egg.Options
	applyTerminalScale(&opts)
	opts.Layout = grid

	core, err := egg.Init(grid, opts)
	require.NoError(t, err)
	t.Cleanup(core.Destroy)

	m := newAppModel(context.Background(), grid, core, bus, opts, p)
	return apply(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
}

func apply(t *testing.T, m appModel, msg tea.Msg) appModel {
	t.Helper()
	updated, _ := m.Update(msg)
	app, ok := updated.(appModel)
	require.True(t, ok)
	return app
}

func press(t *testing.T, m appModel, x, y int) appModel {
	t.Helper()
	return apply(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
}

func motion(t *testing.T, m appModel, x, y int) appModel {
	t.Helper()
	return apply(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
}

func release(t *testing.T, m appModel, x, y int) appModel {
	t.Helper()
	return apply(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
}

func keyRune(t *testing.T, m appModel, r rune) appModel {
	t.Helper()
	return apply(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

func itemAt(t *testing.T, m appModel, i int) *termgrid.Item {
	t.Helper()
	items := m.grid.Items()
	require.Greater(t, len(items), i)
	it, ok := items[i].(*termgrid.Item)
	require.True(t, ok)
	return it
}

func TestAppModel_MouseSelectsItem(t *testing.T) {
	m := newTestApp(t)

	m = press(t, m, 5, 3)

	require.NotNil(t, m.core.Selected())
	assert.Equal(t, "sunny", itemAt(t, m, 0).Label())
	assert.Equal(t, itemAt(t, m, 0).ID(), m.core.Selected().ID())
}

func TestAppModel_MouseDragMovesItem(t *testing.T) {
	m := newTestApp(t)

	// Press sunny in (1,1), drag into (2,1) and drop. Push displaces
	// poached one cell to the right.
	m = press(t, m, 5, 3)
	m = motion(t, m, 16, 3)
	m = release(t, m, 16, 3)

	assert.Equal(t, geom.Cell{Column: 2, Row: 1}, itemAt(t, m, 0).Cell())
	assert.Equal(t, geom.Cell{Column: 3, Row: 1}, itemAt(t, m, 1).Cell())
	require.NotNil(t, m.core.Selected())
}

func TestAppModel_ArrowMovesSelection(t *testing.T) {
	m := newTestApp(t)

	m = press(t, m, 5, 3)
	m = release(t, m, 5, 3)
	m = apply(t, m, tea.KeyMsg{Type: tea.KeyRight})

	require.NotNil(t, m.core.Selected())
	assert.Equal(t, "poached", itemAt(t, m, 1).Label())
	assert.Equal(t, itemAt(t, m, 1).ID(), m.core.Selected().ID())

	m = apply(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	assert.Nil(t, m.core.Selected())
}

func TestAppModel_AddAndRemoveItems(t *testing.T) {
	m := newTestApp(t)

	m = keyRune(t, m, 'a')
	require.Len(t, m.grid.Items(), 3)
	assert.Equal(t, "scrambled", itemAt(t, m, 2).Label())

	m = press(t, m, 5, 3)
	m = release(t, m, 5, 3)
	require.NotNil(t, m.core.Selected())

	m = keyRune(t, m, 'x')
	assert.Len(t, m.grid.Items(), 2)
	assert.Nil(t, m.core.Selected())
}

func TestAppModel_RemoveWithoutSelectionIsNoop(t *testing.T) {
	m := newTestApp(t)

	m = keyRune(t, m, 'x')
	assert.Len(t, m.grid.Items(), 2)
}

func TestAppModel_HelpOverlayToggles(t *testing.T) {
	m := newTestApp(t)

	m = keyRune(t, m, '?')
	assert.Equal(t, overlayHelp, m.overlay)
	assert.Contains(t, m.View(), "eggrid")

	// Engine keys are held back while an overlay is up.
	m = press(t, m, 5, 3)
	assert.Nil(t, m.core.Selected())

	m = keyRune(t, m, '?')
	assert.Equal(t, overlayNone, m.overlay)
}

func TestAppModel_StylesOverlay(t *testing.T) {
	m := newTestApp(t)

	m = keyRune(t, m, 's')
	assert.Equal(t, overlayStyles, m.overlay)
	assert.Contains(t, m.View(), "(no style layers set)")

	// Mid-drag the placeholder layer is visible in the overlay.
	m = keyRune(t, m, 's')
	m = press(t, m, 5, 3)
	m = motion(t, m, 16, 3)
	m = keyRune(t, m, 's')
	assert.Contains(t, m.View(), "grid-column: 2")
}

func TestAppModel_ThemeCycles(t *testing.T) {
	m := newTestApp(t)

	m = keyRune(t, m, 't')
	assert.Equal(t, "ocean", m.theme)
	assert.Contains(t, m.View(), "ocean")

	m = keyRune(t, m, 't')
	assert.Equal(t, "ember", m.theme)

	m = keyRune(t, m, 't')
	assert.Equal(t, "charm", m.theme)
}

func TestAppModel_AlgorithmCycles(t *testing.T) {
	m := newTestApp(t)
	first := m.core

	m = keyRune(t, m, 'g')
	require.Empty(t, m.errText)
	assert.Equal(t, egg.AlgorithmReorder, m.opts.Algorithm)
	assert.NotSame(t, first, m.core)
	assert.Contains(t, m.View(), "reorder")

	// The replacement core drives the grid: selection still works.
	m = press(t, m, 5, 3)
	require.NotNil(t, m.core.Selected())

	m = apply(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	m = keyRune(t, m, 'g')
	assert.Equal(t, egg.AlgorithmNone, m.opts.Algorithm)

	m = keyRune(t, m, 'g')
	assert.Equal(t, egg.AlgorithmPush, m.opts.Algorithm)
}

func TestAppModel_NotificationsReachStatusBar(t *testing.T) {
	m := newTestApp(t)

	m = apply(t, m, notificationMsg{note: termgrid.Notification{Name: egg.EventSelect, ItemID: "abc"}})

	assert.Equal(t, 1, m.statusBar.noteCount)
	assert.Contains(t, m.View(), egg.EventSelect)
	assert.Contains(t, m.View(), "1 events")
}

func TestAppModel_QuitReturnsQuitCmd(t *testing.T) {
	m := newTestApp(t)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	_, ok := updated.(appModel)
	require.True(t, ok)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestAppModel_StatusBarShowsPhase(t *testing.T) {
	m := newTestApp(t)
	assert.Contains(t, m.statusBar.View(), "phase: idle")

	m = press(t, m, 5, 3)
	assert.Contains(t, m.statusBar.View(), "phase: selected")
	assert.Contains(t, m.statusBar.View(), "sunny")

	m = motion(t, m, 16, 3)
	assert.Contains(t, m.statusBar.View(), "phase: dragging")

	m = release(t, m, 16, 3)
	assert.Contains(t, m.statusBar.View(), "phase: selected")
}
