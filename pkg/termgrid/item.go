package termgrid

import (
	"github.com/google/uuid"

	"github.com/eggrid/eggrid/pkg/egg"
	"github.com/eggrid/eggrid/pkg/geom"
)

// Item is a labeled widget occupying one or more grid cells. Events emitted
// on an item bubble to the grid after the item's own listeners ran.
type Item struct {
	grid     *Grid
	id       string
	label    string
	attrs    map[string]string
	cell     geom.Cell
	columns  int
	rows     int
	selected bool

	listeners map[string][]listener
	nextSub   int
}

var _ egg.Item = (*Item)(nil)

func newItem(g *Grid, label string, cell geom.Cell) *Item {
	return &Item{
		grid:      g,
		id:        uuid.NewString(),
		label:     label,
		attrs:     make(map[string]string),
		cell:      cell,
		columns:   1,
		rows:      1,
		listeners: make(map[string][]listener),
	}
}

// --- Node ---

func (i *Item) ID() string                 { return i.id }
func (i *Item) Attr(name string) string    { return i.attrs[name] }
func (i *Item) SetAttr(name, value string) { i.attrs[name] = value }
func (i *Item) RemoveAttr(name string)     { delete(i.attrs, name) }

// --- Item ---

func (i *Item) SetSelected(selected bool) { i.selected = selected }

// Selected reports whether the engine marked the item selected.
func (i *Item) Selected() bool { return i.selected }

// Bounds is the item's rectangle in viewport coordinates.
func (i *Item) Bounds() geom.Rect {
	return i.grid.cellRect(i.cell, i.columns, i.rows)
}

// Cell is the item's base cell.
func (i *Item) Cell() geom.Cell { return i.cell }

// Span reports the column and row span.
func (i *Item) Span() (int, int) { return i.columns, i.rows }

func (i *Item) Label() string         { return i.label }
func (i *Item) SetLabel(label string) { i.label = label }

// --- Events ---

// On registers fn for events named name on this item.
func (i *Item) On(name string, fn egg.Handler) func() {
	i.nextSub++
	id := i.nextSub
	i.listeners[name] = append(i.listeners[name], listener{id: id, fn: fn})

	return func() {
		entries := i.listeners[name]
		for j, e := range entries {
			if e.id == id {
				i.listeners[name] = append(entries[:j:j], entries[j+1:]...)
				return
			}
		}
	}
}

// Emit dispatches ev to the item's listeners, then bubbles it to the grid
// with the item still as target.
func (i *Item) Emit(ev egg.Event) {
	if ev.Target == nil {
		ev.Target = i
	}
	for _, l := range append([]listener(nil), i.listeners[ev.Name]...) {
		l.fn(ev)
	}
	i.grid.dispatch(ev)
}
