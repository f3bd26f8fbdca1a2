package timely

import (
	"fmt"
	"math"
	"strconv"

	"honnef.co/go/curve"
)

// GlyphID identifies a renderable shape: one of the ten digits or the blank
// glyph used as the "nothing" end of enter and exit transitions.
type GlyphID int8

const (
	GlyphBlank GlyphID = -1 // collapsed shape with no visible extent
	Glyph0     GlyphID = 0
	Glyph1     GlyphID = 1
	Glyph2     GlyphID = 2
	Glyph3     GlyphID = 3
	Glyph4     GlyphID = 4
	Glyph5     GlyphID = 5
	Glyph6     GlyphID = 6
	Glyph7     GlyphID = 7
	Glyph8     GlyphID = 8
	Glyph9     GlyphID = 9
)

// glyphCount is the number of defined glyphs: ten digits plus blank.
const glyphCount = 11

// AllGlyphs lists every defined GlyphID, blank first.
var AllGlyphs = [glyphCount]GlyphID{
	GlyphBlank, Glyph0, Glyph1, Glyph2, Glyph3, Glyph4,
	Glyph5, Glyph6, Glyph7, Glyph8, Glyph9,
}

// Valid reports whether id is a digit or GlyphBlank.
func (id GlyphID) Valid() bool {
	return id >= GlyphBlank && id <= Glyph9
}

// String returns the digit as text, "blank" for GlyphBlank, or a
// diagnostic form for undefined values.
func (id GlyphID) String() string {
	switch {
	case id == GlyphBlank:
		return "blank"
	case id.Valid():
		return strconv.Itoa(int(id))
	default:
		return fmt.Sprintf("GlyphID(%d)", int(id))
	}
}

// index maps a valid GlyphID to its slot in a table array.
func (id GlyphID) index() int {
	return int(id) + 1
}

// GlyphForDigit returns the glyph for d in 0..9.
func GlyphForDigit(d int) (GlyphID, error) {
	if d < 0 || d > 9 {
		return GlyphBlank, fmt.Errorf("%w: digit %d", ErrGlyphOutOfRange, d)
	}
	return GlyphID(d), nil
}

// GlyphForRune returns the glyph for an ASCII digit. A space maps to
// GlyphBlank; any other rune is out of range.
func GlyphForRune(r rune) (GlyphID, error) {
	switch {
	case r >= '0' && r <= '9':
		return GlyphID(r - '0'), nil
	case r == ' ':
		return GlyphBlank, nil
	default:
		return GlyphBlank, fmt.Errorf("%w: rune %q", ErrGlyphOutOfRange, r)
	}
}

// GlyphPath is the outline of one glyph: a move anchor followed by groups of
// three points, each group one cubic Bézier segment (handle, handle,
// endpoint) continuing from the previous endpoint.
type GlyphPath []Point

// Segments returns the number of cubic segments in the path. Malformed paths
// report the number of whole triplets.
func (p GlyphPath) Segments() int {
	if len(p) == 0 {
		return 0
	}
	return (len(p) - 1) / 3
}

// Validate checks the structural invariant (len-1)%3 == 0 and that every
// coordinate is finite. Errors wrap ErrAuthoring.
func (p GlyphPath) Validate() error {
	return p.validate(GlyphBlank, false)
}

func (p GlyphPath) validate(id GlyphID, unit bool) error {
	if len(p) == 0 || (len(p)-1)%3 != 0 {
		return &AuthoringError{Glyph: id, Index: -1,
			Reason: fmt.Sprintf("%d points is not an anchor plus whole cubic triplets", len(p))}
	}
	for i, pt := range p {
		if math.IsNaN(pt.X) || math.IsNaN(pt.Y) || math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0) {
			return &AuthoringError{Glyph: id, Index: i, Reason: "coordinate is not finite"}
		}
		if unit && (pt.X < 0 || pt.X > 1 || pt.Y < 0 || pt.Y > 1) {
			return &AuthoringError{Glyph: id, Index: i,
				Reason: fmt.Sprintf("(%g, %g) lies outside the unit square", pt.X, pt.Y)}
		}
	}
	return nil
}

// Clone returns a copy of p that shares no memory with it.
func (p GlyphPath) Clone() GlyphPath {
	if p == nil {
		return nil
	}
	out := make(GlyphPath, len(p))
	copy(out, p)
	return out
}

// Equal reports whether p and o hold exactly the same points.
func (p GlyphPath) Equal(o GlyphPath) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if p[i] != o[i] {
			return false
		}
	}
	return true
}

// Scaled maps the unit-square path into region using one uniform scale
// factor, the smaller of the region's width and height, offset by the
// region's origin. The aspect ratio of the glyph is preserved.
func (p GlyphPath) Scaled(region Rect) []Point {
	s := math.Min(region.Width, region.Height)
	out := make([]Point, len(p))
	for i, pt := range p {
		out[i] = Point{X: region.X + pt.X*s, Y: region.Y + pt.Y*s}
	}
	return out
}

// BezPath converts p to a curve.BezPath: one MoveTo and a CubicTo per
// triplet. Trailing points that do not form a whole triplet are dropped.
func (p GlyphPath) BezPath() curve.BezPath {
	if len(p) == 0 {
		return nil
	}
	bp := make(curve.BezPath, 0, 1+p.Segments())
	bp.MoveTo(curve.Pt(p[0].X, p[0].Y))
	for i := 1; i+2 < len(p); i += 3 {
		bp.CubicTo(
			curve.Pt(p[i].X, p[i].Y),
			curve.Pt(p[i+1].X, p[i+1].Y),
			curve.Pt(p[i+2].X, p[i+2].Y),
		)
	}
	return bp
}

// Bounds returns the tight bounding box of the outline. Unlike the control
// point hull, handles that pull the curve without reaching it do not count.
func (p GlyphPath) Bounds() Rect {
	if len(p) == 0 {
		return Rect{}
	}
	bb := p.BezPath().BoundingBox()
	return Rect{X: bb.X0, Y: bb.Y0, Width: bb.Width(), Height: bb.Height()}
}

// Arclen returns the length of the outline in unit-square coordinates,
// accurate to within accuracy.
func (p GlyphPath) Arclen(accuracy float64) float64 {
	return p.BezPath().Arclen(accuracy)
}
