package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eggrid/eggrid/pkg/interaction"
)

func TestMachine_SelectDeselect(t *testing.T) {
	m := New()

	assert.Equal(t, interaction.PhaseIdle, m.State().Phase)

	m.Transition(interaction.Select{ItemID: "item-1"})
	assert.Equal(t, interaction.Snapshot{Phase: interaction.PhaseSelected, SelectedID: "item-1"}, m.State())

	m.Transition(interaction.Select{ItemID: "item-2"})
	assert.Equal(t, "item-2", m.State().SelectedID, "reselect replaces the identifier")

	m.Transition(interaction.Deselect{})
	assert.Equal(t, interaction.Snapshot{Phase: interaction.PhaseIdle}, m.State())
}

func TestMachine_DragCycle(t *testing.T) {
	m := New()

	m.Transition(interaction.Select{ItemID: "a"})
	m.Transition(interaction.DragStart{})
	assert.Equal(t, interaction.PhaseDragging, m.State().Phase)
	assert.Equal(t, "a", m.State().SelectedID, "dragging keeps the selection")

	m.Transition(interaction.DragEnd{})
	assert.Equal(t, interaction.PhaseSelected, m.State().Phase)
}

func TestMachine_ResizeCycle(t *testing.T) {
	m := New()

	m.Transition(interaction.Select{ItemID: "a"})
	assert.False(t, m.IsResizing())

	m.Transition(interaction.ResizeStart{})
	assert.True(t, m.IsResizing())
	assert.Equal(t, interaction.PhaseResizing, m.State().Phase)

	m.Transition(interaction.ResizeEnd{})
	assert.False(t, m.IsResizing())
	assert.Equal(t, interaction.PhaseSelected, m.State().Phase)
}

func TestMachine_InvalidTransitionsAreNoOps(t *testing.T) {
	tests := map[string]struct {
		setup []interaction.Event
		ev    interaction.Event
	}{
		"drag start while idle":   {nil, interaction.DragStart{}},
		"drag end while idle":     {nil, interaction.DragEnd{}},
		"resize start while idle": {nil, interaction.ResizeStart{}},
		"resize end while idle":   {nil, interaction.ResizeEnd{}},
		"resize start while dragging": {
			[]interaction.Event{interaction.Select{ItemID: "a"}, interaction.DragStart{}},
			interaction.ResizeStart{},
		},
		"drag start while resizing": {
			[]interaction.Event{interaction.Select{ItemID: "a"}, interaction.ResizeStart{}},
			interaction.DragStart{},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			m := New()
			for _, ev := range tc.setup {
				m.Transition(ev)
			}
			before := m.State()

			m.Transition(tc.ev)

			assert.Equal(t, before, m.State(), "snapshot must be unchanged")
		})
	}
}

func TestMachine_SelectDuringGesture(t *testing.T) {
	m := New()

	m.Transition(interaction.Select{ItemID: "a"})
	m.Transition(interaction.DragStart{})
	m.Transition(interaction.Select{ItemID: "b"})

	// Selection always lands so the machine never diverges from the core's
	// selected element.
	assert.Equal(t, interaction.Snapshot{Phase: interaction.PhaseSelected, SelectedID: "b"}, m.State())
}

func TestMachine_ZeroValueIsIdle(t *testing.T) {
	var m Machine

	assert.Equal(t, interaction.Snapshot{Phase: interaction.PhaseIdle}, m.State())
	assert.False(t, m.IsResizing())
}
