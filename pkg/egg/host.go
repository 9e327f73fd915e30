package egg

import (
	"github.com/eggrid/eggrid/pkg/geom"
	"github.com/eggrid/eggrid/pkg/styles"
)

// Host input event names the built-in modules subscribe to. Hosts dispatch
// these on the managed element; pointer coordinates are viewport-relative.
const (
	HostPointerDown = "pointerdown"
	HostPointerMove = "pointermove"
	HostPointerUp   = "pointerup"
	HostKeyDown     = "keydown"
	HostResize      = "resize"
	HostScroll      = "scroll"
)

// Event is one notification travelling through a host's element tree.
// A single struct covers host input and engine notifications; unused fields
// stay zero.
type Event struct {
	// Name identifies the event, e.g. "pointerdown" or "egg-select".
	Name string
	// Target is the node the event was dispatched on. Listeners on an
	// ancestor observe the original target while handling a bubbled event.
	Target Node
	// Point carries viewport coordinates for pointer events.
	Point geom.Point
	// Key carries the key name for keyboard events ("ArrowLeft", "Escape").
	Key string
	// Detail carries the structured payload of engine notifications.
	Detail map[string]any
}

// Handler consumes one dispatched Event.
type Handler func(Event)

// Node is the attribute surface shared by grid elements and items. Attr
// returns "" for an unset attribute; the engine treats empty and absent the
// same way.
type Node interface {
	ID() string
	Attr(name string) string
	SetAttr(name, value string)
	RemoveAttr(name string)
}

// EventTarget registers listeners and dispatches events. Dispatch is
// synchronous: Emit returns after every listener ran, and hosts bubble
// events from items up to the managed element.
type EventTarget interface {
	// On registers fn for the named event and returns the func that removes
	// it. Listeners for one name run in registration order.
	On(name string, fn Handler) (off func())
	// Emit dispatches ev on this target.
	Emit(ev Event)
}

// Surface exposes resolved layout geometry. Templates are already resolved
// to pixel lengths by the host layout engine; the core never computes track
// sizing itself.
type Surface interface {
	// BoundingRect returns the element's viewport-relative rect.
	BoundingRect() geom.Rect
	// ColumnTemplate and RowTemplate return the resolved track templates,
	// e.g. "100px 100px".
	ColumnTemplate() string
	RowTemplate() string
	// Gaps returns the column and row gap in pixels.
	Gaps() (column, row float64)
	// Scroll returns the current scroll offset of the element's content.
	Scroll() geom.Point
}

// Item is one child managed by the grid.
type Item interface {
	Node
	// SetSelected toggles the host's selected marker (class, highlight).
	SetSelected(selected bool)
	// Bounds returns the item's viewport-relative rect.
	Bounds() geom.Rect
}

// Element is the managed grid container a Core binds to.
type Element interface {
	Node
	EventTarget
	Surface
	// Items returns the managed items in reading order.
	Items() []Item
	// ItemAt returns the item under the viewport point, or nil.
	ItemAt(p geom.Point) Item
}

// Scroller is implemented by hosts whose viewport scrolls programmatically.
// The camera module discovers it by type assertion and degrades to a no-op
// when the target does not implement it.
type Scroller interface {
	ScrollBy(delta geom.Point)
}

// SheetHost creates and releases stylesheets scoped to the host document.
// Init acquires a sheet through it when the caller supplies none, and
// Destroy releases only sheets acquired that way.
type SheetHost interface {
	NewSheet() styles.Sheet
	ReleaseSheet(s styles.Sheet)
}

// Placement pairs an item with its 1-based grid cell.
type Placement struct {
	Item Item
	Cell geom.Cell
}

// LayoutModel is the host's placement ledger, consumed by the layout
// algorithms and the resize module. Hosts keep Placements in reading order.
type LayoutModel interface {
	Placements() []Placement
	Place(item Item, cell geom.Cell)
	SpanOf(item Item) (columns, rows int)
	SetSpan(item Item, columns, rows int)
}
