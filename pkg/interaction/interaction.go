// Package interaction defines the contract between the engine core and the
// state machine that tracks interaction phases. The core drives the machine
// with Events and reads back Snapshots; it never inspects machine internals.
//
// Machines must treat invalid transitions as no-ops. Transition never fails,
// so the core can forward events unconditionally.
package interaction

// Phase is the high-level interaction state owned by the machine.
type Phase string

const (
	PhaseIdle     Phase = "idle"
	PhaseSelected Phase = "selected"
	PhaseDragging Phase = "dragging"
	PhaseResizing Phase = "resizing"
)

// Event is one input to the machine. Implementations are the variant structs
// in this package; the marker method keeps the set closed.
type Event interface {
	isEvent()
}

// Select reports that an item became the current selection. ItemID is the
// identifier the core resolved for the item (possibly empty); Item is the
// host element, kept opaque so machines stay host-agnostic.
type Select struct {
	ItemID string
	Item   any
}

// Deselect reports that the selection was cleared.
type Deselect struct{}

// DragStart reports that the selected item started moving.
type DragStart struct{}

// DragEnd reports that a drag gesture finished or was cancelled.
type DragEnd struct{}

// ResizeStart reports that the selected item started resizing.
type ResizeStart struct{}

// ResizeEnd reports that a resize gesture finished or was cancelled.
type ResizeEnd struct{}

func (Select) isEvent()      {}
func (Deselect) isEvent()    {}
func (DragStart) isEvent()   {}
func (DragEnd) isEvent()     {}
func (ResizeStart) isEvent() {}
func (ResizeEnd) isEvent()   {}

// Snapshot is a read-only view of machine state at one instant.
type Snapshot struct {
	Phase      Phase
	SelectedID string
}

// Machine tracks interaction phases on behalf of the core. Implementations
// are single-threaded like the rest of the engine; calls arrive from host
// event handlers, never concurrently.
type Machine interface {
	// Transition applies one event. Invalid transitions are no-ops, never
	// errors.
	Transition(Event)
	// State returns the current snapshot.
	State() Snapshot
	// IsResizing reports whether a resize gesture is in progress.
	IsResizing() bool
}
