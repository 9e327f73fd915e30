package egg

import "github.com/eggrid/eggrid/pkg/geom"

// attachPush wires the push layout algorithm: while an item drags over the
// grid it takes the hovered cell, and the displaced occupant moves one slot
// forward in reading order, cascading until a free cell absorbs the chain.
// No item is ever dropped. Inactive without a layout model.
func attachPush(target Element, c *Core, layout LayoutModel, o AlgorithmOptions) (func(), error) {
	if layout == nil {
		c.log.Debug("push inactive", "reason", "no layout model")
		return nil, nil
	}

	off := target.On(EventDragOver, func(ev Event) {
		if c.CameraScrolling() {
			return
		}

		item, _ := ev.Detail["item"].(Item)
		cell, ok := ev.Detail["cell"].(geom.Cell)
		if item == nil || !ok {
			return
		}

		pushTo(c, layout, item, cell, o.Columns)
	})

	return off, nil
}

// pushTo places dragged at dest and pushes displaced occupants forward.
func pushTo(c *Core, layout LayoutModel, dragged Item, dest geom.Cell, columns int) {
	cols := algorithmColumns(c, columns)

	byCell := make(map[geom.Cell]Item)
	for _, p := range layout.Placements() {
		if p.Item == dragged {
			if p.Cell == dest {
				return
			}
			continue
		}
		byCell[p.Cell] = p.Item
	}

	moving, cell := dragged, dest
	for moving != nil {
		displaced := byCell[cell]
		layout.Place(moving, cell)
		byCell[cell] = moving
		moving = displaced
		cell = nextReadingCell(cell, cols)
	}
}

// algorithmColumns resolves the column count an algorithm flows items into:
// the configured override, else the resolved track count, else 1.
func algorithmColumns(c *Core, override int) int {
	if override > 0 {
		return override
	}
	if n := len(c.GridInfo().ColumnTracks); n > 0 {
		return n
	}

	return 1
}

// nextReadingCell advances one step in reading order, wrapping to the next
// row after the last column.
func nextReadingCell(cell geom.Cell, cols int) geom.Cell {
	if cell.Column >= cols {
		return geom.Cell{Column: 1, Row: cell.Row + 1}
	}

	return geom.Cell{Column: cell.Column + 1, Row: cell.Row}
}
