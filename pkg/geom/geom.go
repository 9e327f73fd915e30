// Package geom provides the pixel-space geometry primitives for grid
// interaction: points, rectangles, 1-based grid cells, and the track math
// that maps pixel offsets onto grid tracks. All functions are pure and
// none of them can fail: malformed input degrades to a documented
// default so pointer math never aborts an interaction mid-gesture.
package geom

// Point is a position in pixel space.
type Point struct {
	X, Y float64
}

// Add returns p offset by other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns p with other subtracted.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// Rect is an axis-aligned rectangle in pixel space.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// IsEmpty reports whether the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool { return r.Width <= 0 || r.Height <= 0 }

// Contains reports whether p lies inside the rectangle. All four edges
// count as inside: a pointer resting exactly on the border still hits.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.Right() &&
		p.Y >= r.Y && p.Y <= r.Bottom()
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Cell identifies a grid position. Column and Row are 1-based, matching
// CSS grid line numbering.
type Cell struct {
	Column int
	Row    int
}

// Info is a snapshot of resolved grid geometry at query time. It is
// recomputed from the live host on every query and never cached: track
// sizes change between queries under responsive layouts and content
// reflow.
type Info struct {
	Rect         Rect
	ColumnTracks []float64
	RowTracks    []float64
	ColumnGap    float64
	RowGap       float64

	// CellWidth and CellHeight are the first track of each axis, or 0
	// when the axis has no tracks. Uniform grids read these instead of
	// indexing the track slices.
	CellWidth  float64
	CellHeight float64
}
