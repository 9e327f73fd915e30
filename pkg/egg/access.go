package egg

// attachAccessibility reflects the interaction state into accessibility
// attributes: the target becomes a focusable grid, items become grid cells
// with aria-selected and a roving tabindex. Cleanup restores every
// attribute to its prior state.
func attachAccessibility(c *Core, o AccessibilityOptions) (func(), error) {
	target := c.Target()

	role := o.Role
	if role == "" {
		role = "grid"
	}

	var restore []func()
	set := func(n Node, name, value string) {
		prev := n.Attr(name)
		if prev == "" {
			restore = append(restore, func() { n.RemoveAttr(name) })
		} else {
			restore = append(restore, func() { n.SetAttr(name, prev) })
		}
		n.SetAttr(name, value)
	}

	set(target, "role", role)
	set(target, "tabindex", "0")
	for _, it := range target.Items() {
		set(it, "role", "gridcell")
		set(it, "aria-selected", "false")
		set(it, "tabindex", "-1")
	}

	// Switching selection raises only a select notification, so the module
	// tracks the item it marked last and unmarks it itself.
	var marked Item
	unmark := func() {
		if marked == nil {
			return
		}
		marked.SetAttr("aria-selected", "false")
		marked.SetAttr("tabindex", "-1")
		marked = nil
	}

	offSelect := target.On(EventSelect, func(ev Event) {
		it, ok := ev.Detail["item"].(Item)
		if !ok || it == nil {
			return
		}
		unmark()
		it.SetAttr("aria-selected", "true")
		it.SetAttr("tabindex", "0")
		marked = it
	})
	offDeselect := target.On(EventDeselect, func(_ Event) {
		unmark()
	})

	return func() {
		offSelect()
		offDeselect()
		// Reverse order so the first snapshot of an attribute wins.
		for i := len(restore) - 1; i >= 0; i-- {
			restore[i]()
		}
	}, nil
}
