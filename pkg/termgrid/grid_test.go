package termgrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eggrid/eggrid/pkg/egg"
	"github.com/eggrid/eggrid/pkg/geom"
)

// Input helpers shared by the package tests.

func press(g *Grid, x, y float64) {
	g.Emit(egg.Event{Name: egg.HostPointerDown, Point: geom.Point{X: x, Y: y}})
}

func move(g *Grid, x, y float64) {
	g.Emit(egg.Event{Name: egg.HostPointerMove, Point: geom.Point{X: x, Y: y}})
}

func release(g *Grid, x, y float64) {
	g.Emit(egg.Event{Name: egg.HostPointerUp, Point: geom.Point{X: x, Y: y}})
}

func TestNew_Defaults(t *testing.T) {
	g := New(Config{})

	assert.Equal(t, "eggrid", g.ID())
	assert.Equal(t, 3, g.Columns())
	assert.Equal(t, "16 16 16", g.ColumnTemplate())
	assert.Equal(t, "5 5 5", g.RowTemplate())

	gx, gy := g.Gaps()
	assert.Equal(t, 1.0, gx)
	assert.Equal(t, 1.0, gy)

	assert.Equal(t, geom.Rect{Width: 50, Height: 17}, g.BoundingRect())
}

func TestNew_NegativeGapMeansNone(t *testing.T) {
	g := New(Config{Gap: -1})

	gx, _ := g.Gaps()
	assert.Equal(t, 0.0, gx)
	assert.Equal(t, geom.Rect{Width: 48, Height: 15}, g.BoundingRect())
}

func TestGrid_AddItemFillsReadingOrder(t *testing.T) {
	g := New(Config{Columns: 3, Rows: 2})

	cells := make([]geom.Cell, 0, 4)
	for _, label := range []string{"a", "b", "c", "d"} {
		cells = append(cells, g.AddItem(label).Cell())
	}

	assert.Equal(t, []geom.Cell{
		{Column: 1, Row: 1},
		{Column: 2, Row: 1},
		{Column: 3, Row: 1},
		{Column: 1, Row: 2},
	}, cells)
}

func TestGrid_ItemIDsAreUnique(t *testing.T) {
	g := New(Config{})
	a := g.AddItem("a")
	b := g.AddItem("b")

	assert.NotEmpty(t, a.ID())
	assert.NotEmpty(t, b.ID())
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestGrid_BoundsAndItemAt(t *testing.T) {
	g := New(Config{Columns: 3, Rows: 1, CellWidth: 16, CellHeight: 5, Gap: 1})
	g.AddItem("a")
	b := g.AddItem("b")

	assert.Equal(t, geom.Rect{X: 17, Y: 0, Width: 16, Height: 5}, b.Bounds())
	assert.Equal(t, b, g.ItemAt(geom.Point{X: 20, Y: 2}))
	assert.Nil(t, g.ItemAt(geom.Point{X: 16.5, Y: 2}), "the gap column belongs to nobody")
}

func TestGrid_EventBubbling(t *testing.T) {
	g := New(Config{})
	it := g.AddItem("a")

	var order []string
	it.On("ping", func(egg.Event) { order = append(order, "item") })
	g.On("ping", func(ev egg.Event) {
		order = append(order, "grid")
		assert.Equal(t, it, ev.Target, "the original target survives the bubble")
	})

	it.Emit(egg.Event{Name: "ping"})

	assert.Equal(t, []string{"item", "grid"}, order)
}

func TestGrid_OffRemovesListener(t *testing.T) {
	g := New(Config{})

	calls := 0
	off := g.On("ping", func(egg.Event) { calls++ })

	g.Emit(egg.Event{Name: "ping"})
	off()
	off() // removing twice is harmless
	g.Emit(egg.Event{Name: "ping"})

	assert.Equal(t, 1, calls)
}

func TestGrid_ScrollClampsToContent(t *testing.T) {
	g := New(Config{Columns: 3, Rows: 3, CellWidth: 16, CellHeight: 5, Gap: 1, ViewportRows: 10})

	require.Equal(t, 10.0, g.BoundingRect().Height)

	g.ScrollBy(geom.Point{Y: 100})
	assert.Equal(t, geom.Point{Y: 7}, g.Scroll(), "content is 17 rows, viewport 10")

	g.ScrollBy(geom.Point{Y: -100})
	assert.Equal(t, geom.Point{}, g.Scroll())

	g.ScrollBy(geom.Point{X: 32})
	assert.Equal(t, 0.0, g.Scroll().X, "horizontal deltas are absorbed")
}

func TestGrid_ScrollShiftsBounds(t *testing.T) {
	g := New(Config{Columns: 1, Rows: 3, CellWidth: 16, CellHeight: 5, Gap: 1, ViewportRows: 10})
	it := g.AddItemAt("a", geom.Cell{Column: 1, Row: 2})

	require.Equal(t, 6.0, it.Bounds().Y)

	g.ScrollBy(geom.Point{Y: 6})

	assert.Equal(t, 0.0, it.Bounds().Y, "bounds are viewport coordinates")
}

func TestGrid_LayoutModel(t *testing.T) {
	g := New(Config{Columns: 3, Rows: 2})
	a := g.AddItem("a")
	b := g.AddItem("b")

	g.Place(b, geom.Cell{Column: 1, Row: 2})

	placements := g.Placements()
	require.Len(t, placements, 2)
	assert.Equal(t, egg.Item(a), placements[0].Item, "reading order sorts by row, then column")
	assert.Equal(t, egg.Item(b), placements[1].Item)
	assert.Equal(t, geom.Cell{Column: 1, Row: 2}, b.Cell())

	g.SetSpan(a, 2, 1)
	cols, rows := g.SpanOf(a)
	assert.Equal(t, [2]int{2, 1}, [2]int{cols, rows})

	g.SetSpan(a, 0, -3)
	cols, rows = g.SpanOf(a)
	assert.Equal(t, [2]int{1, 1}, [2]int{cols, rows}, "spans clamp at one")
}

func TestGrid_RowsGrowWithItems(t *testing.T) {
	g := New(Config{Columns: 3, Rows: 2, CellHeight: 5})
	g.AddItemAt("far", geom.Cell{Column: 1, Row: 4})

	assert.Equal(t, 4, g.Rows())
	assert.Equal(t, "5 5 5 5", g.RowTemplate())
}

func TestGrid_RemoveDetachesItem(t *testing.T) {
	g := New(Config{})
	a := g.AddItem("a")
	b := g.AddItem("b")

	g.Remove(a)

	assert.Len(t, g.Items(), 1)
	assert.Nil(t, g.ItemAt(geom.Point{X: 1, Y: 1}))
	assert.Equal(t, b, g.ItemAt(geom.Point{X: 20, Y: 2}))
}
