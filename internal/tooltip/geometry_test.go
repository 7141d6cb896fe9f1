package tooltip

import "testing"

func TestPlace(t *testing.T) {
	viewport := Size{Width: 1000, Height: 800}
	const margin = 10

	tests := []struct {
		name   string
		anchor Rect
		tip    Size
		want   Point
	}{
		{
			name:   "centered below",
			anchor: Rect{Left: 400, Top: 100, Width: 40, Height: 20},
			tip:    Size{Width: 200, Height: 100},
			want:   Point{Left: 320, Top: 130},
		},
		{
			name:   "clamped to left margin",
			anchor: Rect{Left: 5, Top: 100, Width: 20, Height: 20},
			tip:    Size{Width: 200, Height: 100},
			want:   Point{Left: 10, Top: 130},
		},
		{
			name:   "clamped to right margin",
			anchor: Rect{Left: 960, Top: 100, Width: 30, Height: 20},
			tip:    Size{Width: 200, Height: 100},
			want:   Point{Left: 790, Top: 130},
		},
		{
			name:   "flipped above",
			anchor: Rect{Left: 400, Top: 700, Width: 40, Height: 20},
			tip:    Size{Width: 200, Height: 100},
			want:   Point{Left: 320, Top: 590},
		},
		{
			name:   "too tall either way pins to top margin",
			anchor: Rect{Left: 400, Top: 300, Width: 40, Height: 20},
			tip:    Size{Width: 200, Height: 780},
			want:   Point{Left: 320, Top: 10},
		},
		{
			name:   "wider than viewport pins to left margin",
			anchor: Rect{Left: 400, Top: 100, Width: 40, Height: 20},
			tip:    Size{Width: 1200, Height: 100},
			want:   Point{Left: 10, Top: 130},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Place(tt.anchor, tt.tip, viewport, margin)
			if got != tt.want {
				t.Errorf("Place = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := Rect{Left: 10, Top: 20, Width: 30, Height: 40}
	if r.Right() != 40 || r.Bottom() != 60 {
		t.Errorf("Right, Bottom = %v, %v, want 40, 60", r.Right(), r.Bottom())
	}
}
