package timely

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at stroke submission time.
type Color struct {
	R, G, B, A float64
}

// ColorBlack is the default stroke color of a Display.
var ColorBlack = Color{0, 0, 0, 1}

// ColorWhite is opaque white.
var ColorWhite = Color{1, 1, 1, 1}

// RGBA returns the color as a premultiplied color.RGBA.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// premultiplied returns the color components multiplied by alpha, as float32
// values suitable for ebiten vertex colors.
func (c Color) premultiplied() (r, g, b, a float32) {
	ca := clamp01(c.A)
	return float32(clamp01(c.R) * ca), float32(clamp01(c.G) * ca), float32(clamp01(c.B) * ca), float32(ca)
}

// Point is a control point. Glyph geometry is authored in the unit square,
// so both coordinates of a table point lie in [0, 1]; scaling to a drawing
// region happens at render time.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Empty reports whether the rectangle has no drawable area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Insets is the padding reserved on each side of a drawing region.
type Insets struct {
	Left, Top, Right, Bottom float64
}

// LineCap selects the shape drawn at the open ends of a stroked glyph.
type LineCap uint8

const (
	CapRound  LineCap = iota // half-disc past each end (default)
	CapButt                  // flat, ending exactly at the endpoint
	CapSquare                // flat, extended by half the stroke width
)

// LineJoin selects how consecutive segments are joined.
type LineJoin uint8

const (
	JoinRound LineJoin = iota // circular arc (default)
	JoinMiter                 // sharp corner
	JoinBevel                 // flattened corner
)

// DefaultStrokeWidth is the stroke width in pixels used when a StrokeStyle
// leaves Width at zero.
const DefaultStrokeWidth = 5.0

// StrokeStyle describes how a glyph outline is painted. Glyphs are stroked,
// never filled.
type StrokeStyle struct {
	Color Color
	Width float64 // pixels; 0 means DefaultStrokeWidth
	Cap   LineCap
	Join  LineJoin
}

// DefaultStrokeStyle returns the stroke used by a Display when none is
// configured: black, 5px wide, round caps and joins.
func DefaultStrokeStyle() StrokeStyle {
	return StrokeStyle{Color: ColorBlack, Width: DefaultStrokeWidth}
}

// width returns the effective stroke width.
func (s StrokeStyle) width() float64 {
	if s.Width <= 0 {
		return DefaultStrokeWidth
	}
	return s.Width
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
