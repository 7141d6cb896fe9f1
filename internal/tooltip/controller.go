package tooltip

import (
	"sync"
	"time"
)

// State is the visibility state of the shared tooltip widget.
type State int

const (
	// Idle means no tooltip is visible.
	Idle State = iota
	// Hovering means the tooltip follows a hovered marker and hides after a
	// grace period once the pointer leaves.
	Hovering
	// Pinned means the tooltip stays until its owner is clicked again, the
	// page is clicked elsewhere, or the cancel key is pressed.
	Pinned
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Hovering:
		return "hovering"
	case Pinned:
		return "pinned"
	default:
		return "unknown"
	}
}

// View renders the widget. The controller decides what is shown; the view
// only draws it.
type View interface {
	// Show swaps the widget content to owner's payload and positions it.
	Show(owner string)
	// Reposition recomputes the widget position for owner.
	Reposition(owner string)
	// Hide removes the widget from the screen.
	Hide()
}

// Timer is a pending callback that can be cancelled.
type Timer interface {
	Stop() bool
}

// Clock schedules callbacks.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }

// Controller is the hover/pin/dismiss state machine the page script
// implements. The script is tested step for step against it. It owns at
// most one hide timer at a time.
type Controller struct {
	mu    sync.Mutex
	opts  Options
	view  View
	clock Clock

	state State
	owner string
	hide  Timer
	gen   uint64
}

// NewController returns an idle controller. A nil clock uses real time.
func NewController(opts Options, view View, clock Clock) *Controller {
	if clock == nil {
		clock = realClock{}
	}
	return &Controller{opts: opts.withDefaults(), view: view, clock: clock}
}

// State returns the current state and owning marker.
func (c *Controller) State() (State, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state, c.owner
}

// Enter handles the pointer entering marker m. A pinned tooltip is never
// taken over by hovering.
func (c *Controller) Enter(m string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == Pinned {
		return
	}
	c.stopTimer()
	c.state, c.owner = Hovering, m
	c.view.Show(m)
}

// Move handles pointer movement over marker m.
func (c *Controller) Move(m string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == Hovering && c.owner == m {
		c.view.Reposition(m)
	}
}

// Leave handles the pointer leaving marker m.
func (c *Controller) Leave(m string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.requestHide()
}

// EnterWidget cancels a pending hide while the pointer is over the widget.
func (c *Controller) EnterWidget() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopTimer()
}

// LeaveWidget handles the pointer leaving the widget.
func (c *Controller) LeaveWidget() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.requestHide()
}

// Click handles a click on marker m: it unpins when m already owns the
// pinned tooltip, otherwise it pins the tooltip to m.
func (c *Controller) Click(m string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == Pinned && c.owner == m {
		c.dismiss()
		return
	}
	c.stopTimer()
	c.state, c.owner = Pinned, m
	c.view.Show(m)
}

// ClickOutside handles a click on neither the widget nor its owner.
func (c *Controller) ClickOutside() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == Pinned {
		c.dismiss()
	}
}

// Key handles a key press; only the cancel key has an effect.
func (c *Controller) Key(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if key == c.opts.CancelKey && c.state != Idle {
		c.dismiss()
	}
}

// requestHide arms the grace timer, replacing any pending one. Callers hold mu.
func (c *Controller) requestHide() {
	if c.state != Hovering {
		return
	}
	c.stopTimer()
	gen := c.gen
	c.hide = c.clock.AfterFunc(c.opts.GraceDelay, func() { c.expire(gen) })
}

// expire runs when the grace timer fires. A timer superseded by a later
// transition is ignored.
func (c *Controller) expire(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen || c.state != Hovering {
		return
	}
	c.hide = nil
	c.state, c.owner = Idle, ""
	c.view.Hide()
}

// dismiss hides the widget immediately. Callers hold mu.
func (c *Controller) dismiss() {
	c.stopTimer()
	c.state, c.owner = Idle, ""
	c.view.Hide()
}

// stopTimer cancels the pending hide, if any. Callers hold mu.
func (c *Controller) stopTimer() {
	c.gen++
	if c.hide != nil {
		c.hide.Stop()
		c.hide = nil
	}
}
