package egg

import (
	"github.com/eggrid/eggrid/pkg/geom"
	"github.com/eggrid/eggrid/pkg/interaction"
)

// defaultGripSize is the side length in pixels of the resize grip region.
const defaultGripSize = 12.0

// attachResize wires south-east grip resizing onto target. A press inside
// an item's grip starts a resize gesture; movement adjusts the item's
// column and row span through the layout model; release ends the gesture.
// Without a layout model the gesture still runs and raises notifications,
// but no span is applied.
func attachResize(target Element, c *Core, o ResizeOptions, layout LayoutModel) (func(), error) {
	gripSize := o.GripSize
	if gripSize <= 0 {
		gripSize = defaultGripSize
	}

	var (
		resizing bool
		item     Item
		base     geom.Cell
		cols     int
		rows     int
	)

	offDown := target.On(HostPointerDown, func(ev Event) {
		it := target.ItemAt(ev.Point)
		if it == nil || !gripRect(it.Bounds(), gripSize).Contains(ev.Point) {
			return
		}

		// The pointer module has usually selected the item by now; select
		// again regardless so the gesture works when it is disabled.
		c.Select(it)
		c.Machine().Transition(interaction.ResizeStart{})
		if !c.Machine().IsResizing() {
			return
		}

		b := it.Bounds()
		cell, ok := c.CellFromPoint(b.X, b.Y)
		if !ok {
			cell = geom.Cell{Column: 1, Row: 1}
		}

		resizing = true
		item = it
		base = cell
		cols, rows = 1, 1
		if layout != nil {
			cols, rows = layout.SpanOf(it)
		}
		c.Emit(EventResizeStart, map[string]any{"item": it})
	})

	offMove := target.On(HostPointerMove, func(ev Event) {
		if !resizing {
			return
		}

		cur, ok := c.CellFromPoint(ev.Point.X, ev.Point.Y)
		if !ok {
			return
		}

		nextCols := max(1, cur.Column-base.Column+1)
		nextRows := max(1, cur.Row-base.Row+1)
		if nextCols == cols && nextRows == rows {
			return
		}

		cols, rows = nextCols, nextRows
		if layout != nil {
			layout.SetSpan(item, cols, rows)
		}
	})

	offUp := target.On(HostPointerUp, func(_ Event) {
		if !resizing {
			return
		}

		c.Machine().Transition(interaction.ResizeEnd{})
		c.Emit(EventResizeEnd, map[string]any{"item": item, "columns": cols, "rows": rows})
		resizing = false
		item = nil
	})

	return func() {
		offDown()
		offMove()
		offUp()
	}, nil
}

// gripRect is the resize-sensitive square in an item's bottom-right corner.
func gripRect(b geom.Rect, size float64) geom.Rect {
	return geom.Rect{X: b.Right() - size, Y: b.Bottom() - size, Width: size, Height: size}
}
