package termgrid

import (
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/eggrid/eggrid/pkg/egg"
	"github.com/eggrid/eggrid/pkg/geom"
)

// Defaults for zero Config fields.
const (
	defaultID         = "eggrid"
	defaultColumns    = 3
	defaultRows       = 3
	defaultCellWidth  = 16
	defaultCellHeight = 5
	defaultGap        = 1
)

// Config shapes a Grid. Zero fields fall back to the package defaults; a
// negative Gap means no gap at all.
type Config struct {
	ID           string
	Columns      int
	Rows         int
	CellWidth    int // character columns per track
	CellHeight   int // character rows per track
	Gap          int // characters between tracks
	ViewportRows int // visible character rows; 0 shows everything
	Logger       *slog.Logger
	Bus          *Bus
}

// Grid is a terminal-backed grid container. It implements the engine's host
// interfaces, including the layout model the drag algorithms reflow.
type Grid struct {
	cfg   Config
	log   *slog.Logger
	bus   *Bus
	attrs map[string]string
	items []*Item

	listeners map[string][]listener
	nextSub   int

	scroll geom.Point
	sheets []*Sheet

	// Derived from the committed stylesheets.
	styleColumns   int
	placeholder    geom.Cell
	hasPlaceholder bool
}

type listener struct {
	id int
	fn egg.Handler
}

var (
	_ egg.Element     = (*Grid)(nil)
	_ egg.Scroller    = (*Grid)(nil)
	_ egg.SheetHost   = (*Grid)(nil)
	_ egg.LayoutModel = (*Grid)(nil)
)

// New builds a Grid from cfg.
func New(cfg Config) *Grid {
	if cfg.ID == "" {
		cfg.ID = defaultID
	}
	if cfg.Columns <= 0 {
		cfg.Columns = defaultColumns
	}
	if cfg.Rows <= 0 {
		cfg.Rows = defaultRows
	}
	if cfg.CellWidth <= 0 {
		cfg.CellWidth = defaultCellWidth
	}
	if cfg.CellHeight <= 0 {
		cfg.CellHeight = defaultCellHeight
	}
	switch {
	case cfg.Gap == 0:
		cfg.Gap = defaultGap
	case cfg.Gap < 0:
		cfg.Gap = 0
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}

	return &Grid{
		cfg:       cfg,
		log:       cfg.Logger,
		bus:       cfg.Bus,
		attrs:     make(map[string]string),
		listeners: make(map[string][]listener),
	}
}

// --- Node ---

func (g *Grid) ID() string                 { return g.cfg.ID }
func (g *Grid) Attr(name string) string    { return g.attrs[name] }
func (g *Grid) SetAttr(name, value string) { g.attrs[name] = value }
func (g *Grid) RemoveAttr(name string)     { delete(g.attrs, name) }

// --- EventTarget ---

// On registers fn for events named name and returns its removal func.
func (g *Grid) On(name string, fn egg.Handler) func() {
	g.nextSub++
	id := g.nextSub
	g.listeners[name] = append(g.listeners[name], listener{id: id, fn: fn})

	return func() {
		entries := g.listeners[name]
		for i, e := range entries {
			if e.id == id {
				g.listeners[name] = append(entries[:i:i], entries[i+1:]...)
				return
			}
		}
	}
}

// Emit dispatches ev to the grid's listeners synchronously.
func (g *Grid) Emit(ev egg.Event) {
	if ev.Target == nil {
		ev.Target = g
	}
	g.dispatch(ev)
}

// dispatch runs the grid-level listeners and forwards engine notifications
// to the bus. Items bubble their events here with the item still as target.
func (g *Grid) dispatch(ev egg.Event) {
	for _, l := range append([]listener(nil), g.listeners[ev.Name]...) {
		l.fn(ev)
	}
	g.forward(ev)
}

func (g *Grid) forward(ev egg.Event) {
	if g.bus == nil || !strings.HasPrefix(ev.Name, egg.Namespace) {
		return
	}

	n := Notification{Name: ev.Name, Timestamp: time.Now(), Detail: ev.Detail}
	if it, ok := ev.Detail["item"].(egg.Item); ok && it != nil {
		n.ItemID = it.ID()
	}
	g.bus.Publish(n)
}

// --- Surface ---

// BoundingRect reports the viewport in character coordinates. Width always
// covers the whole content; height is capped by ViewportRows.
func (g *Grid) BoundingRect() geom.Rect {
	h := g.contentHeight()
	if v := g.cfg.ViewportRows; v > 0 && v < h {
		h = v
	}

	return geom.Rect{Width: float64(g.contentWidth()), Height: float64(h)}
}

func (g *Grid) ColumnTemplate() string { return trackTemplate(g.Columns(), g.cfg.CellWidth) }
func (g *Grid) RowTemplate() string    { return trackTemplate(g.Rows(), g.cfg.CellHeight) }

func (g *Grid) Gaps() (float64, float64) {
	return float64(g.cfg.Gap), float64(g.cfg.Gap)
}

func (g *Grid) Scroll() geom.Point { return g.scroll }

// --- Scroller ---

// ScrollBy moves the viewport vertically, clamped to the content. The grid
// is always as wide as its content, so horizontal deltas are absorbed.
func (g *Grid) ScrollBy(delta geom.Point) {
	maxY := float64(g.contentHeight()) - g.BoundingRect().Height
	g.scroll.Y = clamp(g.scroll.Y+delta.Y, 0, maxY)
}

// --- Items ---

// AddItem places a new item in the first free cell in reading order.
func (g *Grid) AddItem(label string) *Item {
	cell := geom.Cell{Column: 1, Row: 1}
	cols := g.Columns()
	for {
		if it, _ := g.itemCovering(cell); it == nil {
			break
		}
		if cell.Column >= cols {
			cell = geom.Cell{Column: 1, Row: cell.Row + 1}
		} else {
			cell.Column++
		}
	}

	return g.AddItemAt(label, cell)
}

// AddItemAt places a new item in cell without checking for occupancy.
func (g *Grid) AddItemAt(label string, cell geom.Cell) *Item {
	it := newItem(g, label, cell)
	g.items = append(g.items, it)
	g.log.Debug("item added", "id", it.id, "column", cell.Column, "row", cell.Row)

	return it
}

// Remove detaches it from the grid along with its listeners.
func (g *Grid) Remove(it *Item) {
	for i, other := range g.items {
		if other == it {
			g.items = append(g.items[:i:i], g.items[i+1:]...)
			g.log.Debug("item removed", "id", it.id)
			return
		}
	}
}

func (g *Grid) Items() []egg.Item {
	items := make([]egg.Item, len(g.items))
	for i, it := range g.items {
		items[i] = it
	}

	return items
}

func (g *Grid) ItemAt(p geom.Point) egg.Item {
	for _, it := range g.items {
		if it.Bounds().Contains(p) {
			return it
		}
	}

	return nil
}

// --- LayoutModel ---

func (g *Grid) Placements() []egg.Placement {
	out := make([]egg.Placement, 0, len(g.items))
	for _, it := range g.items {
		out = append(out, egg.Placement{Item: it, Cell: it.cell})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Cell.Row != out[j].Cell.Row {
			return out[i].Cell.Row < out[j].Cell.Row
		}
		return out[i].Cell.Column < out[j].Cell.Column
	})

	return out
}

func (g *Grid) Place(item egg.Item, cell geom.Cell) {
	if it, ok := item.(*Item); ok && it.grid == g {
		it.cell = cell
	}
}

func (g *Grid) SpanOf(item egg.Item) (int, int) {
	if it, ok := item.(*Item); ok {
		return it.columns, it.rows
	}

	return 1, 1
}

func (g *Grid) SetSpan(item egg.Item, columns, rows int) {
	if it, ok := item.(*Item); ok && it.grid == g {
		it.columns, it.rows = max(1, columns), max(1, rows)
	}
}

// --- Geometry ---

// Columns returns the effective column count, honoring a committed
// grid-template-columns override.
func (g *Grid) Columns() int {
	if g.styleColumns > 0 {
		return g.styleColumns
	}

	return g.cfg.Columns
}

// Rows returns the row count covering the configured minimum and every
// occupied cell.
func (g *Grid) Rows() int {
	rows := g.cfg.Rows
	for _, it := range g.items {
		if last := it.cell.Row + it.rows - 1; last > rows {
			rows = last
		}
	}

	return rows
}

// PlaceholderCell reports the drop indicator position committed by the
// engine's placeholder layer, if any.
func (g *Grid) PlaceholderCell() (geom.Cell, bool) {
	return g.placeholder, g.hasPlaceholder
}

func (g *Grid) contentWidth() int {
	cols := g.Columns()
	return cols*g.cfg.CellWidth + (cols-1)*g.cfg.Gap
}

func (g *Grid) contentHeight() int {
	rows := g.Rows()
	return rows*g.cfg.CellHeight + (rows-1)*g.cfg.Gap
}

// cellRect maps a cell and span to viewport coordinates.
func (g *Grid) cellRect(cell geom.Cell, columns, rows int) geom.Rect {
	w := float64(g.cfg.CellWidth)
	h := float64(g.cfg.CellHeight)
	gap := float64(g.cfg.Gap)

	return geom.Rect{
		X:      float64(cell.Column-1)*(w+gap) - g.scroll.X,
		Y:      float64(cell.Row-1)*(h+gap) - g.scroll.Y,
		Width:  float64(columns)*w + float64(columns-1)*gap,
		Height: float64(rows)*h + float64(rows-1)*gap,
	}
}

// itemCovering returns the item whose cell range covers cell, and whether
// cell is the item's base cell.
func (g *Grid) itemCovering(cell geom.Cell) (*Item, bool) {
	for _, it := range g.items {
		if cell.Column >= it.cell.Column && cell.Column < it.cell.Column+it.columns &&
			cell.Row >= it.cell.Row && cell.Row < it.cell.Row+it.rows {
			return it, cell == it.cell
		}
	}

	return nil, false
}

func trackTemplate(n, size int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = strconv.Itoa(size)
	}

	return strings.Join(parts, " ")
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
