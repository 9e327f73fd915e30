package egg

import "github.com/eggrid/eggrid/pkg/geom"

// Key names the keyboard module handles. Hosts normalize their input to
// these before dispatching keydown events.
const (
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyEscape     = "Escape"
)

// attachKeyboard wires arrow-key navigation: arrows move the selection to
// the item in the adjacent cell, escape deselects. Keys are ignored while a
// resize gesture is running.
func attachKeyboard(c *Core, _ KeyboardOptions) (func(), error) {
	off := c.Target().On(HostKeyDown, func(ev Event) {
		if c.Machine().IsResizing() {
			return
		}

		switch ev.Key {
		case KeyEscape:
			c.Select(nil)
		case KeyArrowLeft:
			moveSelection(c, -1, 0)
		case KeyArrowRight:
			moveSelection(c, 1, 0)
		case KeyArrowUp:
			moveSelection(c, 0, -1)
		case KeyArrowDown:
			moveSelection(c, 0, 1)
		}
	})

	return off, nil
}

// moveSelection steps the selection one cell along an axis, clamped to the
// grid's track range. No-op when nothing is selected or the adjacent cell
// holds no item.
func moveSelection(c *Core, dc, dr int) {
	cur := c.Selected()
	if cur == nil {
		return
	}

	cell, ok := itemCell(c, cur)
	if !ok {
		return
	}

	info := c.GridInfo()
	next := geom.Cell{
		Column: clampIndex(cell.Column+dc, len(info.ColumnTracks)),
		Row:    clampIndex(cell.Row+dr, len(info.RowTracks)),
	}
	if next == cell {
		return
	}

	if it := itemIn(c, next); it != nil {
		c.Select(it)
	}
}

// itemCell maps an item's bounds center to its grid cell.
func itemCell(c *Core, it Item) (geom.Cell, bool) {
	center := it.Bounds().Center()

	return c.CellFromPoint(center.X, center.Y)
}

// itemIn returns the first item whose center falls in cell, or nil.
func itemIn(c *Core, cell geom.Cell) Item {
	for _, it := range c.Target().Items() {
		if got, ok := itemCell(c, it); ok && got == cell {
			return it
		}
	}

	return nil
}

// clampIndex clamps a 1-based index to [1, n]; n below 1 clamps to 1.
func clampIndex(i, n int) int {
	if n < 1 {
		n = 1
	}
	if i < 1 {
		return 1
	}
	if i > n {
		return n
	}

	return i
}
