// Package styles composes stylesheet text from named, ordered layers.
//
// A Composer owns a set of layers keyed by name. Layers keep the position of
// their first insertion: clearing a layer empties its content but leaves its
// slot in place, so setting it again later restores it at the original
// position rather than appending it at the end. Commit joins every non-empty
// layer with a blank line and writes the result to the bound Sheet.
//
// None of the operations can fail; absent layers read as empty.
package styles

import "strings"

// BaseLayer is the layer name under which pre-existing sheet content is
// preserved at construction.
const BaseLayer = "base"

// Sheet is the stylesheet target a Composer writes to. Hosts provide the
// implementation: Content reads the current text, SetContent replaces it
// wholesale.
type Sheet interface {
	Content() string
	SetContent(css string)
}

// Composer merges named CSS layers into a single Sheet. It is not safe for
// concurrent use; callers serialize access through the host event loop.
type Composer struct {
	sheet  Sheet
	order  []string
	layers map[string]string
}

// New binds a Composer to sheet. Non-empty content already on the sheet is
// seeded as the first layer, named BaseLayer, so later commits keep it
// instead of discarding it.
func New(sheet Sheet) *Composer {
	c := &Composer{
		sheet:  sheet,
		layers: make(map[string]string),
	}

	if base := sheet.Content(); base != "" {
		c.order = append(c.order, BaseLayer)
		c.layers[BaseLayer] = base
	}

	return c
}

// Set stores css under name. A new layer is appended to the order; an
// existing one keeps its position and only its content is replaced.
func (c *Composer) Set(name, css string) {
	if _, ok := c.layers[name]; !ok {
		c.order = append(c.order, name)
	}
	c.layers[name] = css
}

// Get returns the content of the named layer, or "" when it is absent.
func (c *Composer) Get(name string) string {
	return c.layers[name]
}

// Clear empties the named layer without removing it from the order, so a
// later Set restores it at its original position instead of the end.
// Clearing an absent layer does nothing.
func (c *Composer) Clear(name string) {
	if _, ok := c.layers[name]; ok {
		c.layers[name] = ""
	}
}

// String returns the composed stylesheet: all non-empty layers in
// first-insertion order, joined by a blank line. It depends only on layer
// state and never touches the Sheet.
func (c *Composer) String() string {
	parts := make([]string, 0, len(c.order))
	for _, name := range c.order {
		if css := c.layers[name]; css != "" {
			parts = append(parts, css)
		}
	}

	return strings.Join(parts, "\n\n")
}

// Commit writes the composed stylesheet to the bound Sheet. It can be called
// repeatedly; the output is a pure function of current layer contents and
// order.
func (c *Composer) Commit() {
	c.sheet.SetContent(c.String())
}
