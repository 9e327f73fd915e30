package egg

import (
	"fmt"
	"log/slog"

	"github.com/eggrid/eggrid/pkg/machine"
	"github.com/eggrid/eggrid/pkg/styles"
)

// attachment is one row of Init's wiring table: a static attach call gated
// by the options. Modules attach only through this table.
type attachment struct {
	name    string
	enabled bool
	attach  func() (cleanup func(), err error)
}

// Init assembles a Core bound to target and attaches every enabled
// capability module in a fixed order. Cleanups returned by the modules are
// collected append-only and drained exactly once by Destroy.
//
// When a module's attach fails, Init destroys the partially built core,
// running every cleanup collected so far and releasing an acquired sheet,
// and returns the error.
func Init(target Element, opts Options) (*Core, error) {
	if target == nil {
		return nil, ErrNoTarget
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	m := opts.Machine
	if m == nil {
		m = machine.New()
	}

	// A caller-supplied sheet is borrowed; otherwise acquire one from the
	// host and remember to release it on Destroy.
	sheet := opts.Sheet
	var (
		owned styles.Sheet
		host  SheetHost
	)
	if sheet == nil {
		sh, ok := target.(SheetHost)
		if !ok {
			return nil, ErrNoSheet
		}
		sheet = sh.NewSheet()
		owned, host = sheet, sh
	}

	c := &Core{
		target:     target,
		machine:    m,
		styles:     styles.New(sheet),
		log:        logger,
		ownedSheet: owned,
		sheetHost:  host,
	}

	algorithm := opts.Algorithm
	if algorithm == "" {
		algorithm = AlgorithmPush
	}

	// Order matters: pointer listeners must run before resize listeners for
	// the same host event, so a grip press already sees the item selected.
	table := []attachment{
		{"pointer", !opts.Pointer.Disabled, func() (func(), error) { return attachPointer(c, opts.Pointer) }},
		{"keyboard", !opts.Keyboard.Disabled, func() (func(), error) { return attachKeyboard(c, opts.Keyboard) }},
		{"accessibility", !opts.Accessibility.Disabled, func() (func(), error) { return attachAccessibility(c, opts.Accessibility) }},
		{"resize", !opts.Resize.Disabled, func() (func(), error) { return attachResize(target, c, opts.Resize, opts.Layout) }},
		{"camera", !opts.Camera.Disabled, func() (func(), error) { return attachCamera(target, c, opts.Camera) }},
		{"placeholder", !opts.Placeholder.Disabled, func() (func(), error) { return attachPlaceholder(target, c, opts.Placeholder) }},
		{"push", algorithm == AlgorithmPush, func() (func(), error) { return attachPush(target, c, opts.Layout, opts.AlgorithmOptions) }},
		{"reorder", algorithm == AlgorithmReorder, func() (func(), error) { return attachReorder(target, c, opts.Layout, opts.AlgorithmOptions) }},
		{"responsive", !opts.Responsive.Disabled, func() (func(), error) { return attachResponsive(target, c, opts.Responsive) }},
	}

	if err := c.runAttachments(table); err != nil {
		return nil, err
	}

	return c, nil
}

// runAttachments walks the wiring table once, collecting cleanups. A failed
// attach destroys the core so earlier modules are torn down before the
// error surfaces.
func (c *Core) runAttachments(table []attachment) error {
	for _, a := range table {
		if !a.enabled {
			c.log.Debug("module disabled", "module", a.name)
			continue
		}

		cleanup, err := a.attach()
		if err != nil {
			c.Destroy()
			return fmt.Errorf("egg: attach %s: %w", a.name, err)
		}
		if cleanup != nil {
			c.cleanups = append(c.cleanups, cleanup)
		}

		c.log.Debug("module attached", "module", a.name)
	}

	return nil
}
