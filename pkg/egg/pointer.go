package egg

import (
	"math"

	"github.com/eggrid/eggrid/pkg/geom"
	"github.com/eggrid/eggrid/pkg/interaction"
)

// defaultDragDeadZone is the distance in pixels a pressed pointer travels
// before a drag starts.
const defaultDragDeadZone = 4.0

// attachPointer wires press, drag and release handling onto the core's
// target. A press on an item selects it; movement past the dead zone starts
// a drag that reports the hovered cell on every cell change; a release
// outside any item deselects.
func attachPointer(c *Core, o PointerOptions) (func(), error) {
	deadZone := o.DragDeadZone
	if deadZone <= 0 {
		deadZone = defaultDragDeadZone
	}

	target := c.Target()

	var (
		pressed  bool
		dragging bool
		origin   geom.Point
		item     Item
		lastCell geom.Cell
		haveCell bool
	)

	reset := func() {
		pressed, dragging, item, haveCell = false, false, nil, false
	}

	offDown := target.On(HostPointerDown, func(ev Event) {
		pressed = true
		origin = ev.Point
		item = target.ItemAt(ev.Point)
		if item != nil {
			c.Select(item)
		}
	})

	offMove := target.On(HostPointerMove, func(ev Event) {
		if !pressed || item == nil || c.Machine().IsResizing() {
			return
		}

		if dragging && c.Machine().State().Phase != interaction.PhaseDragging {
			// Cancelled elsewhere, e.g. escape deselected mid-drag.
			reset()
			return
		}

		if !dragging {
			if math.Hypot(ev.Point.X-origin.X, ev.Point.Y-origin.Y) <= deadZone {
				return
			}
			c.Machine().Transition(interaction.DragStart{})
			if c.Machine().State().Phase != interaction.PhaseDragging {
				return
			}
			dragging = true
			c.Emit(EventDragStart, map[string]any{"item": item})
		}

		cell, ok := c.CellFromPoint(ev.Point.X, ev.Point.Y)
		if !ok || (haveCell && cell == lastCell) {
			return
		}
		lastCell, haveCell = cell, true
		c.Emit(EventDragOver, map[string]any{"item": item, "cell": cell})
	})

	offUp := target.On(HostPointerUp, func(ev Event) {
		if !pressed {
			return
		}

		if dragging {
			c.Machine().Transition(interaction.DragEnd{})
			detail := map[string]any{"item": item}
			if haveCell {
				detail["cell"] = lastCell
			}
			c.Emit(EventDragEnd, detail)
			reset()
			return
		}

		// The resize module owns this release; see attachResize.
		if c.Machine().IsResizing() {
			reset()
			return
		}

		if target.ItemAt(ev.Point) == nil {
			c.Select(nil)
		}
		reset()
	})

	return func() {
		offDown()
		offMove()
		offUp()
	}, nil
}
