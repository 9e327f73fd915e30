package geom

import (
	"strconv"
	"strings"
)

// ParseTracks splits a resolved track template, a whitespace-separated
// list of pixel lengths such as "100px 100px 250px", into numeric track
// sizes. The host guarantees fr/%/auto units are resolved to pixels
// before this stage, so each token is a bare number with an optional px
// suffix. Unparsable tokens yield 0 for their slot rather than an error:
// a garbled template must never break hit-testing.
func ParseTracks(resolvedTemplate string) []float64 {
	fields := strings.Fields(resolvedTemplate)
	if len(fields) == 0 {
		return nil
	}

	tracks := make([]float64, len(fields))
	for i, f := range fields {
		f = strings.TrimSuffix(f, "px")
		v, err := strconv.ParseFloat(f, 64)
		if err != nil || v < 0 {
			continue // leave 0
		}
		tracks[i] = v
	}

	return tracks
}

// IndexForOffset maps a pixel offset along one axis to the 1-based index
// of the track it falls in. Each inter-track gap is split evenly between
// its neighbours: a track's effective boundary extends half the gap past
// its own edge, so the first half of a gap belongs to the preceding
// track and the second half to the following one. The same function
// serves both axes.
//
// Out-of-range offsets clamp: anything past the last boundary returns
// the last track's index, anything before the first returns 1, and an
// empty track list returns 1. IndexForOffset never fails.
func IndexForOffset(pos float64, tracks []float64, gap float64) int {
	if len(tracks) == 0 {
		return 1
	}

	var edge float64
	for i, track := range tracks {
		edge += track + gap
		if pos <= edge-gap/2 {
			return i + 1
		}
	}

	return len(tracks)
}

// CellFromPoint resolves a viewport point to a grid cell. It reports
// false when the point lies strictly outside the container rect; points
// exactly on an edge are inside. Otherwise the point is translated to
// content coordinates (container origin removed, current scroll offset
// added back) and each axis is resolved independently through
// IndexForOffset.
func CellFromPoint(p Point, container Rect, columns, rows []float64, columnGap, rowGap float64, scroll Point) (Cell, bool) {
	if !container.Contains(p) {
		return Cell{}, false
	}

	content := p.Sub(Point{X: container.X, Y: container.Y}).Add(scroll)

	return Cell{
		Column: IndexForOffset(content.X, columns, columnGap),
		Row:    IndexForOffset(content.Y, rows, rowGap),
	}, true
}
