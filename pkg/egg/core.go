// Package egg is the interaction engine for grid-based layout widgets. It
// turns pointer and keyboard input into 1-based grid cells, owns the single
// source of truth for selection and interaction state, and wires optional
// capability modules (pointer, keyboard, accessibility, resize, camera,
// placeholder, layout algorithms, responsive columns) onto a shared core.
//
// Init assembles a Core for a host Element and attaches every enabled
// module; Destroy tears everything down exactly once. Hosts implement the
// narrow interfaces in host.go: the engine itself never computes pixel
// layout, it only interprets geometry the host already resolved.
package egg

import (
	"log/slog"
	"strings"

	"github.com/eggrid/eggrid/pkg/geom"
	"github.com/eggrid/eggrid/pkg/interaction"
	"github.com/eggrid/eggrid/pkg/styles"
)

// Namespace prefixes every notification the engine raises, keeping them
// clear of host event names.
const Namespace = "egg-"

// Notification names dispatched on the target element. Select and deselect
// come from the core; the rest from the built-in modules.
const (
	EventSelect      = Namespace + "select"
	EventDeselect    = Namespace + "deselect"
	EventDragStart   = Namespace + "drag-start"
	EventDragOver    = Namespace + "drag-over"
	EventDragEnd     = Namespace + "drag-end"
	EventResizeStart = Namespace + "resize-start"
	EventResizeEnd   = Namespace + "resize-end"
)

// Core is the long-lived handle shared by all capability modules. It owns
// the style composer and the state machine, borrows the target element, and
// coordinates selection so modules never need to know about each other.
//
// A Core is single-threaded: every operation runs synchronously on the host
// event loop and is safe to call reentrantly from within an event handler.
// After Destroy has run, coordinator operations panic.
type Core struct {
	target  Element
	machine interaction.Machine
	styles  *styles.Composer
	log     *slog.Logger

	selected        Item
	cameraScrolling bool

	cleanups  []func()
	destroyed bool

	// ownedSheet is set only when Init acquired the sheet through the host;
	// caller-supplied sheets are never released.
	ownedSheet styles.Sheet
	sheetHost  SheetHost
}

// Target returns the managed element.
func (c *Core) Target() Element { return c.target }

// Styles returns the style composer owned by the core. Modules write their
// layers through it and commit; they must not bypass it.
func (c *Core) Styles() *styles.Composer { return c.styles }

// Machine returns the state machine handle. Modules drive gesture events
// through it and read the phase back.
func (c *Core) Machine() interaction.Machine { return c.machine }

// Selected returns the currently selected item, or nil. All mutation goes
// through Select.
func (c *Core) Selected() Item { return c.selected }

// CameraScrolling reports whether a programmatic camera scroll step is in
// progress. Layout algorithms skip reflow while it is set.
func (c *Core) CameraScrolling() bool { return c.cameraScrolling }

// SetCameraScrolling flags the start and end of a programmatic scroll step.
// Only the camera module writes it.
func (c *Core) SetCameraScrolling(scrolling bool) { c.cameraScrolling = scrolling }

// Select makes item the current selection. Selecting the current item again
// is a no-op. Selecting nil deselects: the machine receives a deselect
// event, and a deselect notification is raised only when something was
// selected. Otherwise the machine receives a select event carrying the
// item's identifier (id, falling back to the data-identifier attribute,
// falling back to ""), the previous item's marker is cleared, the new item
// is marked, and a select notification is raised.
//
// The core never checks that item belongs to the managed grid; callers pass
// elements they obtained from it.
func (c *Core) Select(item Item) {
	c.ensureLive()

	if item == c.selected {
		return
	}

	prev := c.selected
	if prev != nil {
		prev.SetSelected(false)
	}

	if item == nil {
		c.machine.Transition(interaction.Deselect{})
		c.selected = nil
		c.log.Debug("deselect", "item", identify(prev))
		c.Emit(EventDeselect, map[string]any{"item": prev})
		return
	}

	id := identify(item)
	c.machine.Transition(interaction.Select{ItemID: id, Item: item})
	c.selected = item
	item.SetSelected(true)
	c.log.Debug("select", "item", id)
	c.Emit(EventSelect, map[string]any{"item": item})
}

// Deselect clears the selection. Shorthand for Select(nil).
func (c *Core) Deselect() {
	c.Select(nil)
}

// Emit raises a bubbling notification on the target element, synchronously.
// Names outside the engine namespace are prefixed with it so notifications
// never collide with host events; passing an already-namespaced constant is
// fine.
func (c *Core) Emit(name string, detail map[string]any) {
	c.ensureLive()

	if !strings.HasPrefix(name, Namespace) {
		name = Namespace + name
	}

	c.target.Emit(Event{Name: name, Target: c.target, Detail: detail})
}

// GridInfo returns a fresh snapshot of the target's resolved geometry. It is
// recomputed on every call because track sizes change between queries.
func (c *Core) GridInfo() geom.Info {
	c.ensureLive()

	info := geom.Info{
		Rect:         c.target.BoundingRect(),
		ColumnTracks: geom.ParseTracks(c.target.ColumnTemplate()),
		RowTracks:    geom.ParseTracks(c.target.RowTemplate()),
	}
	info.ColumnGap, info.RowGap = c.target.Gaps()

	if len(info.ColumnTracks) > 0 {
		info.CellWidth = info.ColumnTracks[0]
	}
	if len(info.RowTracks) > 0 {
		info.CellHeight = info.RowTracks[0]
	}

	return info
}

// CellFromPoint maps a viewport point to a 1-based grid cell. The second
// return is false when the point lies outside the target's bounding rect;
// points on the rect's edge are inside.
func (c *Core) CellFromPoint(x, y float64) (geom.Cell, bool) {
	c.ensureLive()

	info := c.GridInfo()

	return geom.CellFromPoint(
		geom.Point{X: x, Y: y},
		info.Rect,
		info.ColumnTracks, info.RowTracks,
		info.ColumnGap, info.RowGap,
		c.target.Scroll(),
	)
}

// Destroy drains every registered cleanup exactly once, releases a sheet
// the core acquired itself, and marks the core dead. Calling Destroy again
// is a no-op; calling anything else afterwards panics.
func (c *Core) Destroy() {
	if c.destroyed {
		return
	}
	c.destroyed = true

	cleanups := c.cleanups
	c.cleanups = nil
	for _, fn := range cleanups {
		fn()
	}

	if c.ownedSheet != nil {
		c.sheetHost.ReleaseSheet(c.ownedSheet)
		c.ownedSheet = nil
	}

	c.selected = nil
	c.log.Debug("core destroyed")
}

// ensureLive panics when the core is used after Destroy. Misuse, not an
// error value: a destroyed core has no valid degraded behavior.
func (c *Core) ensureLive() {
	if c.destroyed {
		panic("egg: core used after Destroy")
	}
}

// identify resolves the identifier carried by selection events: the item's
// id, falling back to its data-identifier attribute, falling back to "".
func identify(item Item) string {
	if item == nil {
		return ""
	}
	if id := item.ID(); id != "" {
		return id
	}

	return item.Attr("data-identifier")
}
