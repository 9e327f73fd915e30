package egg

import "errors"

var (
	// ErrNoTarget is returned by Init when no target element was given.
	ErrNoTarget = errors.New("egg: no target element")
	// ErrNoSheet is returned by Init when no stylesheet was supplied and the
	// target cannot create one.
	ErrNoSheet = errors.New("egg: target cannot provide a stylesheet")
)
