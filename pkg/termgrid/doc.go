// Package termgrid is a terminal host for the interaction engine. It models
// a CSS grid over character cells: items live in 1-based grid cells, track
// templates are derived from the configured cell size, and committed
// stylesheets are parsed so the handful of properties the engine writes
// (responsive column counts, the placeholder position) feed back into the
// host's geometry and rendering. Frontends drive it by emitting host events
// and drawing Render's output; engine notifications can be observed through
// a Bus.
//
// A Grid is not safe for concurrent use. It is meant to live inside a single
// event loop, such as a bubbletea program, with the Bus carrying
// notifications across goroutine boundaries.
package termgrid
