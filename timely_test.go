package timely

import (
	"image/color"
	"testing"
)

// --- Rect ---

func TestRectContains(t *testing.T) {
	r := Rect{10, 20, 100, 50}
	tests := []struct {
		name   string
		x, y   float64
		expect bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"outside left", 9, 40, false},
		{"outside below", 50, 71, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Contains(tt.x, tt.y)
			if got != tt.expect {
				t.Errorf("Rect%v.Contains(%v, %v) = %v, want %v", r, tt.x, tt.y, got, tt.expect)
			}
		})
	}
}

func TestRectEmpty(t *testing.T) {
	tests := []struct {
		r    Rect
		want bool
	}{
		{Rect{0, 0, 10, 10}, false},
		{Rect{0, 0, 0, 10}, true},
		{Rect{0, 0, 10, 0}, true},
		{Rect{5, 5, -1, 10}, true},
	}
	for _, tt := range tests {
		if got := tt.r.Empty(); got != tt.want {
			t.Errorf("Rect%v.Empty() = %v, want %v", tt.r, got, tt.want)
		}
	}
}

// --- Color ---

func TestColorRGBAPremultiplied(t *testing.T) {
	got := Color{R: 1, G: 0.5, B: 0, A: 0.5}.RGBA()
	want := color.RGBA{R: 127, G: 63, B: 0, A: 127}
	if got != want {
		t.Errorf("RGBA() = %v, want %v", got, want)
	}
}

func TestColorRGBAClamps(t *testing.T) {
	got := Color{R: 2, G: -1, B: 0.5, A: 3}.RGBA()
	if got.R != 255 || got.G != 0 || got.A != 255 {
		t.Errorf("RGBA() = %v, want clamped components", got)
	}
}

func TestColorPremultiplied(t *testing.T) {
	r, g, b, a := Color{R: 1, G: 1, B: 0, A: 0.5}.premultiplied()
	if r != 0.5 || g != 0.5 || b != 0 || a != 0.5 {
		t.Errorf("premultiplied() = (%v, %v, %v, %v), want (0.5, 0.5, 0, 0.5)", r, g, b, a)
	}
}

// --- StrokeStyle ---

func TestDefaultStrokeStyle(t *testing.T) {
	s := DefaultStrokeStyle()
	if s.Color != ColorBlack {
		t.Errorf("Color = %v, want black", s.Color)
	}
	if s.Width != DefaultStrokeWidth {
		t.Errorf("Width = %v, want %v", s.Width, DefaultStrokeWidth)
	}
	if s.Cap != CapRound || s.Join != JoinRound {
		t.Errorf("Cap/Join = %v/%v, want round/round", s.Cap, s.Join)
	}
}

func TestStrokeStyleZeroWidthFallsBack(t *testing.T) {
	if w := (StrokeStyle{}).width(); w != DefaultStrokeWidth {
		t.Errorf("width() = %v, want %v", w, DefaultStrokeWidth)
	}
	if w := (StrokeStyle{Width: 2}).width(); w != 2 {
		t.Errorf("width() = %v, want 2", w)
	}
}
