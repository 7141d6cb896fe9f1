package tooltip

// Rect is an on-screen rectangle in CSS pixels.
type Rect struct {
	Left, Top, Width, Height float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.Left + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Top + r.Height }

// Size is a width and height in CSS pixels.
type Size struct {
	Width, Height float64
}

// Point is the top-left corner of the widget.
type Point struct {
	Left, Top float64
}

// Place positions a widget of natural size tip for the marker at anchor.
// The widget is centered under the marker and clamped into the viewport
// with margin on each side; it flips above the marker when there is not
// enough room below.
func Place(anchor Rect, tip Size, viewport Size, margin float64) Point {
	left := anchor.Left + anchor.Width/2 - tip.Width/2
	if left+tip.Width+margin > viewport.Width {
		left = viewport.Width - tip.Width - margin
	}
	if left < margin {
		left = margin
	}

	top := anchor.Bottom() + margin
	if top+tip.Height+margin > viewport.Height {
		top = anchor.Top - tip.Height - margin
	}
	if top < margin {
		top = margin
	}

	return Point{Left: left, Top: top}
}
