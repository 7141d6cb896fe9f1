// Package tooltip holds the runtime side of abbreviation tooltips: the
// hover/pin/dismiss state machine, widget placement, and the style and
// script block injected into every rendered page.
package tooltip
