// Package machine provides the default interaction.Machine: a small explicit
// transition table over idle, selected, dragging and resizing phases.
//
// Selection events are always honored so the machine's identifier stays in
// lock-step with the core's selected element. Gesture events are gated on the
// phase they extend: a DragStart while idle, or a ResizeEnd outside a resize,
// leaves the state untouched.
package machine

import "github.com/eggrid/eggrid/pkg/interaction"

// Machine is the default phase tracker. The zero value is idle; New is
// provided for symmetry with injected machines.
type Machine struct {
	phase      interaction.Phase
	selectedID string
}

var _ interaction.Machine = (*Machine)(nil)

// New returns an idle Machine.
func New() *Machine {
	return &Machine{phase: interaction.PhaseIdle}
}

// Transition applies ev. Invalid transitions are no-ops.
func (m *Machine) Transition(ev interaction.Event) {
	switch ev := ev.(type) {
	case interaction.Select:
		m.phase = interaction.PhaseSelected
		m.selectedID = ev.ItemID
	case interaction.Deselect:
		m.phase = interaction.PhaseIdle
		m.selectedID = ""
	case interaction.DragStart:
		if m.phase == interaction.PhaseSelected {
			m.phase = interaction.PhaseDragging
		}
	case interaction.DragEnd:
		if m.phase == interaction.PhaseDragging {
			m.phase = interaction.PhaseSelected
		}
	case interaction.ResizeStart:
		if m.phase == interaction.PhaseSelected {
			m.phase = interaction.PhaseResizing
		}
	case interaction.ResizeEnd:
		if m.phase == interaction.PhaseResizing {
			m.phase = interaction.PhaseSelected
		}
	}
}

// State returns the current snapshot.
func (m *Machine) State() interaction.Snapshot {
	phase := m.phase
	if phase == "" {
		phase = interaction.PhaseIdle
	}

	return interaction.Snapshot{Phase: phase, SelectedID: m.selectedID}
}

// IsResizing reports whether a resize gesture is in progress.
func (m *Machine) IsResizing() bool {
	return m.phase == interaction.PhaseResizing
}
