package egg

import (
	"fmt"
	"sort"
)

const responsiveLayer = "responsive"

// attachResponsive applies breakpoint-driven column counts: on attach and
// on every host resize, the first breakpoint whose MaxWidth covers the
// container width writes a grid-template-columns rule into the responsive
// style layer; wider containers clear it. Inactive without breakpoints.
func attachResponsive(target Element, c *Core, o ResponsiveOptions) (func(), error) {
	if len(o.Breakpoints) == 0 {
		c.log.Debug("responsive inactive", "reason", "no breakpoints")
		return nil, nil
	}

	bps := append([]Breakpoint(nil), o.Breakpoints...)
	sort.Slice(bps, func(i, j int) bool { return bps[i].MaxWidth < bps[j].MaxWidth })

	selector := ".egg-grid"
	if id := target.ID(); id != "" {
		selector = "#" + id
	}

	st := c.Styles()
	apply := func() {
		width := target.BoundingRect().Width

		columns := 0
		for _, bp := range bps {
			if width <= bp.MaxWidth {
				columns = bp.Columns
				break
			}
		}

		if columns == 0 {
			st.Clear(responsiveLayer)
		} else {
			st.Set(responsiveLayer, fmt.Sprintf("%s {\n  grid-template-columns: repeat(%d, minmax(0, 1fr));\n}", selector, columns))
		}
		st.Commit()
	}

	apply()
	off := target.On(HostResize, func(_ Event) { apply() })

	return func() {
		off()
		st.Clear(responsiveLayer)
		st.Commit()
	}, nil
}
