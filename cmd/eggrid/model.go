package main

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/eggrid/eggrid/pkg/egg"
	"github.com/eggrid/eggrid/pkg/termgrid"
)

// overlay identifies what the main section currently shows.
type overlay int

const (
	overlayNone overlay = iota
	overlayHelp
	overlayStyles
)

// appModel is the bubbletea model at the root of the program.
type appModel struct {
	ctx  context.Context
	grid *termgrid.Grid
	core *egg.Core
	bus  *termgrid.Bus
	opts egg.Options

	gridView  gridViewModel
	statusBar statusBarModel
	keys      keyMap
	keyHints  help.Model

	theme        string
	overlay      overlay
	cancelBridge context.CancelFunc
	width        int
	height       int
	errText      string
}

func newAppModel(ctx context.Context, grid *termgrid.Grid, core *egg.Core, bus *termgrid.Bus, opts egg.Options, p prefs) appModel {
	return appModel{
		ctx:       ctx,
		grid:      grid,
		core:      core,
		bus:       bus,
		opts:      opts,
		gridView:  newGridView(grid, p.Theme, p.Items),
		statusBar: newStatusBar(core),
		keys:      defaultKeyMap(),
		keyHints:  help.New(),
		theme:     p.Theme,
	}
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.keyHints.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.overlay == overlayNone {
			m.gridView.handleMouse(msg, 0, lipgloss.Height(m.headerView()))
		}
		return m, nil

	case programReadyMsg:
		m.cancelBridge = startBridge(m.ctx, msg.program, m.bus)
		return m, nil

	case notificationMsg:
		m.statusBar.lastNote = msg.note
		m.statusBar.noteCount++
		return m, nil
	}

	return m, nil
}

func (m appModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var body string
	switch m.overlay {
	case overlayHelp:
		body = renderHelp(min(m.width-4, 72))
	case overlayStyles:
		body = m.stylesView()
	default:
		body = m.gridView.View()
	}

	sections := []string{
		m.headerView(),
		body,
		"",
		m.statusBar.View(),
		m.keyHints.View(m.keys),
	}
	if m.errText != "" {
		sections = append(sections, errorStyle.Render(" error: "+m.errText))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// headerView is rendered above the grid; the mouse handler measures it to
// locate the grid origin.
func (m appModel) headerView() string {
	title := titleStyle.Render(" eggrid ") +
		titleDimStyle.Render("· "+algorithmLabel(m.opts.Algorithm)+" · "+m.theme)
	return title + "\n"
}

// stylesView shows the stylesheet the engine composed onto the host.
func (m appModel) stylesView() string {
	content := m.core.Styles().String()
	if content == "" {
		content = "(no style layers set)"
	}
	return overlayStyle.Render(content)
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Escape closes an open overlay before anything else sees it.
	if msg.Type == tea.KeyEscape && m.overlay != overlayNone {
		m.overlay = overlayNone
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.cancelBridge != nil {
			m.cancelBridge()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.overlay = toggleOverlay(m.overlay, overlayHelp)
		return m, nil

	case key.Matches(msg, m.keys.Styles):
		m.overlay = toggleOverlay(m.overlay, overlayStyles)
		return m, nil

	case key.Matches(msg, m.keys.Add):
		m.gridView.addItem()
		return m, nil

	case key.Matches(msg, m.keys.Remove):
		m.gridView.removeSelected(m.core)
		return m, nil

	case key.Matches(msg, m.keys.Theme):
		m.theme = nextTheme(m.theme)
		m.gridView.setTheme(m.theme)
		return m, nil

	case key.Matches(msg, m.keys.Algorithm):
		m.cycleAlgorithm()
		return m, nil
	}

	if name := engineKeyName(msg); name != "" && m.overlay == overlayNone {
		m.gridView.handleEngineKey(name)
	}

	return m, nil
}

// cycleAlgorithm re-initializes the engine with the next layout algorithm.
// The grid and its items survive; only the interaction core is replaced.
func (m *appModel) cycleAlgorithm() {
	// Deselect first so the host's selected marker does not outlive the core.
	// Selected() is nil on a destroyed core, so a retry after a failed Init
	// skips straight to the idempotent Destroy.
	if m.core.Selected() != nil {
		m.core.Deselect()
	}
	m.core.Destroy()

	opts := m.opts
	opts.Algorithm = nextAlgorithm(opts.Algorithm)

	core, err := egg.Init(m.grid, opts)
	if err != nil {
		// The old core is already destroyed; its getters stay safe, so the
		// app keeps rendering and the user can retry or quit.
		m.errText = err.Error()
		return
	}

	m.opts = opts
	m.core = core
	m.statusBar.core = core
	m.errText = ""
}

func toggleOverlay(current, want overlay) overlay {
	if current == want {
		return overlayNone
	}
	return want
}

func nextAlgorithm(current string) string {
	switch current {
	case egg.AlgorithmReorder:
		return egg.AlgorithmNone
	case egg.AlgorithmNone:
		return egg.AlgorithmPush
	default:
		return egg.AlgorithmReorder
	}
}

func algorithmLabel(algorithm string) string {
	if algorithm == "" {
		return egg.AlgorithmPush
	}
	return algorithm
}
