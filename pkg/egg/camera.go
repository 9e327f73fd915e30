package egg

import (
	"github.com/eggrid/eggrid/pkg/geom"
	"github.com/eggrid/eggrid/pkg/interaction"
)

// Camera defaults: scrolling starts within edge pixels of a container edge
// and advances step pixels per pointer move.
const (
	defaultCameraEdge = 32.0
	defaultCameraStep = 16.0
)

// attachCamera wires edge auto-scroll during drags. When the dragging
// pointer comes within the edge distance of the container's border, the
// viewport scrolls one step in that direction. The core's cameraScrolling
// flag is set around each step so layout algorithms skip the reflow the
// scroll would otherwise trigger. Inactive when the target cannot scroll.
func attachCamera(target Element, c *Core, o CameraOptions) (func(), error) {
	scroller, ok := target.(Scroller)
	if !ok {
		c.log.Debug("camera inactive", "reason", "target does not scroll")
		return nil, nil
	}

	edge := o.Edge
	if edge <= 0 {
		edge = defaultCameraEdge
	}
	step := o.Step
	if step <= 0 {
		step = defaultCameraStep
	}

	off := target.On(HostPointerMove, func(ev Event) {
		if c.Machine().State().Phase != interaction.PhaseDragging {
			return
		}

		r := target.BoundingRect()
		var delta geom.Point
		switch {
		case ev.Point.X < r.X+edge:
			delta.X = -step
		case ev.Point.X > r.Right()-edge:
			delta.X = step
		}
		switch {
		case ev.Point.Y < r.Y+edge:
			delta.Y = -step
		case ev.Point.Y > r.Bottom()-edge:
			delta.Y = step
		}
		if delta == (geom.Point{}) {
			return
		}

		c.SetCameraScrolling(true)
		scroller.ScrollBy(delta)
		c.SetCameraScrolling(false)
	})

	return off, nil
}
