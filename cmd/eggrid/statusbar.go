package main

import (
	"fmt"

	"github.com/eggrid/eggrid/pkg/egg"
	"github.com/eggrid/eggrid/pkg/termgrid"
)

// statusBarModel shows the interaction phase, the current selection and the
// last notification seen on the bus.
type statusBarModel struct {
	core      *egg.Core
	lastNote  termgrid.Notification
	noteCount int
}

func newStatusBar(core *egg.Core) statusBarModel {
	return statusBarModel{core: core}
}

func (m statusBarModel) View() string {
	snap := m.core.Machine().State()

	selected := "none"
	if it := m.core.Selected(); it != nil {
		selected = it.ID()
		if t, ok := it.(*termgrid.Item); ok {
			selected = t.Label()
		}
	}

	line := fmt.Sprintf(" phase: %s · selected: %s", snap.Phase, selected)
	if m.noteCount > 0 {
		return statusStyle.Render(fmt.Sprintf("%s · %d events · ", line, m.noteCount)) + noteStyle.Render(m.lastNote.Name)
	}

	return statusStyle.Render(line)
}
