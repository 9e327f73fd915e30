package egg

import (
	"log/slog"
	"os"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eggrid/eggrid/pkg/geom"
	"github.com/eggrid/eggrid/pkg/interaction"
	"github.com/eggrid/eggrid/pkg/machine"
	"github.com/eggrid/eggrid/pkg/styles"
)

// Shared in-memory host fakes. The grid fixture is 3x3 with 100px tracks
// and 20px gaps at origin (0,0), so cell boundaries sit at 110 and 230 on
// both axes.

type fakeSheet struct {
	content string
}

func (s *fakeSheet) Content() string       { return s.content }
func (s *fakeSheet) SetContent(css string) { s.content = css }

type fakeItem struct {
	id       string
	attrs    map[string]string
	bounds   geom.Rect
	selected bool
}

func newFakeItem(id string, bounds geom.Rect) *fakeItem {
	return &fakeItem{id: id, attrs: make(map[string]string), bounds: bounds}
}

func (i *fakeItem) ID() string                 { return i.id }
func (i *fakeItem) Attr(name string) string    { return i.attrs[name] }
func (i *fakeItem) SetAttr(name, value string) { i.attrs[name] = value }
func (i *fakeItem) RemoveAttr(name string)     { delete(i.attrs, name) }
func (i *fakeItem) SetSelected(selected bool)  { i.selected = selected }
func (i *fakeItem) Bounds() geom.Rect          { return i.bounds }

type listenerEntry struct {
	id int
	fn Handler
}

type fakeGrid struct {
	id      string
	attrs   map[string]string
	rect    geom.Rect
	colTmpl string
	rowTmpl string
	colGap  float64
	rowGap  float64
	scroll  geom.Point
	items   []*fakeItem

	listeners map[string][]listenerEntry
	nextID    int

	sheets   []*fakeSheet
	released []styles.Sheet
}

func newTestGrid() *fakeGrid {
	return &fakeGrid{
		id:        "grid",
		attrs:     make(map[string]string),
		rect:      geom.Rect{X: 0, Y: 0, Width: 340, Height: 340},
		colTmpl:   "100px 100px 100px",
		rowTmpl:   "100px 100px 100px",
		colGap:    20,
		rowGap:    20,
		listeners: make(map[string][]listenerEntry),
	}
}

// addItem creates an item whose bounds cover the given cell of the fixture.
func (g *fakeGrid) addItem(id string, cell geom.Cell) *fakeItem {
	x := g.rect.X + float64(cell.Column-1)*120
	y := g.rect.Y + float64(cell.Row-1)*120
	it := newFakeItem(id, geom.Rect{X: x, Y: y, Width: 100, Height: 100})
	g.items = append(g.items, it)

	return it
}

func (g *fakeGrid) ID() string                 { return g.id }
func (g *fakeGrid) Attr(name string) string    { return g.attrs[name] }
func (g *fakeGrid) SetAttr(name, value string) { g.attrs[name] = value }
func (g *fakeGrid) RemoveAttr(name string)     { delete(g.attrs, name) }

func (g *fakeGrid) On(name string, fn Handler) func() {
	g.nextID++
	id := g.nextID
	g.listeners[name] = append(g.listeners[name], listenerEntry{id: id, fn: fn})

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

func (g *fakeGrid) Emit(ev Event) {
	if ev.Target == nil {
		ev.Target = g
	}
	for _, e := range append([]listenerEntry(nil), g.listeners[ev.Name]...) {
		e.fn(ev)
	}
}

func (g *fakeGrid) BoundingRect() geom.Rect  { return g.rect }
func (g *fakeGrid) ColumnTemplate() string   { return g.colTmpl }
func (g *fakeGrid) RowTemplate() string      { return g.rowTmpl }
func (g *fakeGrid) Gaps() (float64, float64) { return g.colGap, g.rowGap }
func (g *fakeGrid) Scroll() geom.Point       { return g.scroll }

func (g *fakeGrid) Items() []Item {
	items := make([]Item, len(g.items))
	for i, it := range g.items {
		items[i] = it
	}

	return items
}

func (g *fakeGrid) ItemAt(p geom.Point) Item {
	for _, it := range g.items {
		if it.bounds.Contains(p) {
			return it
		}
	}

	return nil
}

func (g *fakeGrid) NewSheet() styles.Sheet {
	s := &fakeSheet{}
	g.sheets = append(g.sheets, s)

	return s
}

func (g *fakeGrid) ReleaseSheet(s styles.Sheet) {
	g.released = append(g.released, s)
}

// Input helpers.

func (g *fakeGrid) press(x, y float64)   { g.Emit(Event{Name: HostPointerDown, Point: geom.Point{X: x, Y: y}}) }
func (g *fakeGrid) move(x, y float64)    { g.Emit(Event{Name: HostPointerMove, Point: geom.Point{X: x, Y: y}}) }
func (g *fakeGrid) release(x, y float64) { g.Emit(Event{Name: HostPointerUp, Point: geom.Point{X: x, Y: y}}) }
func (g *fakeGrid) key(k string)         { g.Emit(Event{Name: HostKeyDown, Key: k}) }

// fakeScrollGrid adds Scroller to the grid fixture.
type fakeScrollGrid struct {
	*fakeGrid
	scrolls  []geom.Point
	onScroll func(delta geom.Point)
}

func (g *fakeScrollGrid) ScrollBy(delta geom.Point) {
	g.fakeGrid.scroll = g.fakeGrid.scroll.Add(delta)
	g.scrolls = append(g.scrolls, delta)
	if g.onScroll != nil {
		g.onScroll(delta)
	}
}

// bareGrid hides the sheet and scroll capabilities of the underlying grid.
type bareGrid struct {
	Element
}

// fakeLayout is an in-memory placement ledger.
type fakeLayout struct {
	placements []Placement
	spans      map[Item][2]int
}

func newFakeLayout() *fakeLayout {
	return &fakeLayout{spans: make(map[Item][2]int)}
}

func (l *fakeLayout) Placements() []Placement {
	out := append([]Placement(nil), l.placements...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Cell.Row != out[j].Cell.Row {
			return out[i].Cell.Row < out[j].Cell.Row
		}
		return out[i].Cell.Column < out[j].Cell.Column
	})

	return out
}

func (l *fakeLayout) Place(item Item, cell geom.Cell) {
	for i, p := range l.placements {
		if p.Item == item {
			l.placements[i].Cell = cell
			return
		}
	}
	l.placements = append(l.placements, Placement{Item: item, Cell: cell})
}

func (l *fakeLayout) SpanOf(item Item) (int, int) {
	if s, ok := l.spans[item]; ok {
		return s[0], s[1]
	}

	return 1, 1
}

func (l *fakeLayout) SetSpan(item Item, columns, rows int) {
	l.spans[item] = [2]int{columns, rows}
}

// cellOf returns the recorded cell for item.
func (l *fakeLayout) cellOf(item Item) geom.Cell {
	for _, p := range l.placements {
		if p.Item == item {
			return p.Cell
		}
	}

	return geom.Cell{}
}

// recordingMachine wraps a machine and logs every transition.
type recordingMachine struct {
	interaction.Machine
	events []interaction.Event
}

func (m *recordingMachine) Transition(ev interaction.Event) {
	m.events = append(m.events, ev)
	m.Machine.Transition(ev)
}

// eventLog captures notifications raised on a target.
type eventLog struct {
	events []Event
}

func record(target EventTarget, names ...string) *eventLog {
	l := &eventLog{}
	for _, name := range names {
		target.On(name, func(ev Event) { l.events = append(l.events, ev) })
	}

	return l
}

func (l *eventLog) names() []string {
	out := make([]string, len(l.events))
	for i, ev := range l.events {
		out[i] = ev.Name
	}

	return out
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// allDisabled returns options with every module switched off; module tests
// re-enable just the module under test.
func allDisabled() Options {
	return Options{
		Pointer:       PointerOptions{Disabled: true},
		Keyboard:      KeyboardOptions{Disabled: true},
		Accessibility: AccessibilityOptions{Disabled: true},
		Resize:        ResizeOptions{Disabled: true},
		Camera:        CameraOptions{Disabled: true},
		Placeholder:   PlaceholderOptions{Disabled: true},
		Responsive:    ResponsiveOptions{Disabled: true},
		Algorithm:     AlgorithmNone,
	}
}

// initCore runs Init with a recording machine and an in-memory sheet filled
// in, failing the test on error and destroying the core on cleanup.
func initCore(t *testing.T, target Element, opts Options) (*Core, *recordingMachine) {
	t.Helper()

	m, ok := opts.Machine.(*recordingMachine)
	if !ok {
		m = &recordingMachine{Machine: machine.New()}
		opts.Machine = m
	}
	if opts.Sheet == nil {
		opts.Sheet = &fakeSheet{}
	}

	c, err := Init(target, opts)
	require.NoError(t, err)
	t.Cleanup(c.Destroy)

	return c, m
}
