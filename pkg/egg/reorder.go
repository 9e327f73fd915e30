package egg

import "github.com/eggrid/eggrid/pkg/geom"

// attachReorder wires the reorder layout algorithm: the dragged item is
// removed from the reading-order sequence and reinserted at the hovered
// position, and every item reflows sequentially. The item set is preserved
// as a permutation. Inactive without a layout model.
func attachReorder(target Element, c *Core, layout LayoutModel, o AlgorithmOptions) (func(), error) {
	if layout == nil {
		c.log.Debug("reorder inactive", "reason", "no layout model")
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

		reorderTo(c, layout, item, cell, o.Columns)
	})

	return off, nil
}

// reorderTo reinserts dragged at dest's reading-order position and reflows
// the whole sequence row by row.
func reorderTo(c *Core, layout LayoutModel, dragged Item, dest geom.Cell, columns int) {
	cols := algorithmColumns(c, columns)

	placements := layout.Placements()
	rest := make([]Item, 0, len(placements))
	for _, p := range placements {
		if p.Item != dragged {
			rest = append(rest, p.Item)
		}
	}

	idx := (dest.Row-1)*cols + dest.Column - 1
	if idx < 0 {
		idx = 0
	}
	if idx > len(rest) {
		idx = len(rest)
	}

	seq := make([]Item, 0, len(rest)+1)
	seq = append(seq, rest[:idx]...)
	seq = append(seq, dragged)
	seq = append(seq, rest[idx:]...)

	for i, it := range seq {
		layout.Place(it, geom.Cell{Column: i%cols + 1, Row: i/cols + 1})
	}
}
