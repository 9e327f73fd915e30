package egg

import (
	"fmt"

	"github.com/eggrid/eggrid/pkg/geom"
)

const (
	placeholderLayer        = "placeholder"
	defaultPlaceholderClass = "egg-placeholder"
)

// attachPlaceholder maintains a style layer that places a drop indicator in
// the hovered cell while a drag runs. The layer is cleared when the drag
// ends or the selection is lost, and on cleanup.
func attachPlaceholder(target Element, c *Core, o PlaceholderOptions) (func(), error) {
	class := o.Class
	if class == "" {
		class = defaultPlaceholderClass
	}

	st := c.Styles()

	offOver := target.On(EventDragOver, func(ev Event) {
		cell, ok := ev.Detail["cell"].(geom.Cell)
		if !ok {
			return
		}
		st.Set(placeholderLayer, fmt.Sprintf(".%s {\n  grid-column: %d;\n  grid-row: %d;\n}", class, cell.Column, cell.Row))
		st.Commit()
	})

	clear := func(Event) {
		if st.Get(placeholderLayer) == "" {
			return
		}
		st.Clear(placeholderLayer)
		st.Commit()
	}
	offEnd := target.On(EventDragEnd, clear)
	offDeselect := target.On(EventDeselect, clear)

	return func() {
		offOver()
		offEnd()
		offDeselect()
		clear(Event{})
	}, nil
}
