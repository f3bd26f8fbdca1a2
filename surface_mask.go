package timely

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"
	"honnef.co/go/curve"
)

// defaultMaskTolerance is the stroke expansion accuracy in pixels.
const defaultMaskTolerance = 0.1

// MaskSurface renders outlines into an 8-bit coverage mask. Strokes are
// expanded to fill outlines with the curve package and scan-converted with
// the x/image vector rasterizer, so the result is deterministic and
// independent of any GPU or window.
//
// Successive strokes accumulate into Mask with the Over operator.
type MaskSurface struct {
	Mask *image.Alpha

	// Tolerance bounds the stroke expansion error in pixels. Zero selects
	// 0.1.
	Tolerance float64

	path    curve.BezPath
	current curve.Point
	ras     vector.Rasterizer
}

// NewMaskSurface returns an empty width×height mask surface.
func NewMaskSurface(width, height int) *MaskSurface {
	return &MaskSurface{Mask: image.NewAlpha(image.Rect(0, 0, width, height))}
}

// MoveTo starts the path at (x, y).
func (s *MaskSurface) MoveTo(x, y float64) {
	s.current = curve.Pt(x, y)
	s.path.MoveTo(s.current)
}

// CubicTo appends a cubic segment ending at (x, y). Segments collapsed onto
// the current point are dropped since they cover nothing.
func (s *MaskSurface) CubicTo(x1, y1, x2, y2, x, y float64) {
	p1, p2, p3 := curve.Pt(x1, y1), curve.Pt(x2, y2), curve.Pt(x, y)
	if p1 == s.current && p2 == s.current && p3 == s.current {
		return
	}
	s.path.CubicTo(p1, p2, p3)
	s.current = p3
}

// Stroke expands the collected path with style, rasterizes it into Mask and
// clears the path. Coverage is scaled by the style color's alpha.
func (s *MaskSurface) Stroke(style StrokeStyle) error {
	defer s.path.Truncate(0)
	if len(s.path) < 2 {
		return nil
	}

	tol := s.Tolerance
	if tol <= 0 {
		tol = defaultMaskTolerance
	}
	capStyle := curveCap(style.Cap)
	st := curve.Stroke{
		Width:      style.width(),
		Join:       curveJoin(style.Join),
		MiterLimit: 4,
		StartCap:   capStyle,
		EndCap:     capStyle,
	}
	outline := curve.StrokePath(s.path.Elements(), st, curve.StrokeOpts{}, tol)

	b := s.Mask.Bounds()
	s.ras.Reset(b.Dx(), b.Dy())
	s.ras.DrawOp = draw.Over
	ox, oy := float64(b.Min.X), float64(b.Min.Y)
	pt := func(p curve.Point) (float32, float32) {
		return float32(p.X - ox), float32(p.Y - oy)
	}
	for el := range outline {
		switch el.Kind {
		case curve.MoveToKind:
			s.ras.MoveTo(pt(el.P0))
		case curve.LineToKind:
			s.ras.LineTo(pt(el.P0))
		case curve.QuadToKind:
			x1, y1 := pt(el.P0)
			x2, y2 := pt(el.P1)
			s.ras.QuadTo(x1, y1, x2, y2)
		case curve.CubicToKind:
			x1, y1 := pt(el.P0)
			x2, y2 := pt(el.P1)
			x3, y3 := pt(el.P2)
			s.ras.CubeTo(x1, y1, x2, y2, x3, y3)
		case curve.ClosePathKind:
			s.ras.ClosePath()
		}
	}

	src := image.NewUniform(color.Alpha{A: uint8(clamp01(style.Color.A) * 255)})
	s.ras.Draw(s.Mask, b, src, image.Point{})
	return nil
}

// Clear resets the mask to zero coverage.
func (s *MaskSurface) Clear() {
	clear(s.Mask.Pix)
}

// Coverage returns the coverage at pixel (x, y) in [0, 255].
func (s *MaskSurface) Coverage(x, y int) uint8 {
	return s.Mask.AlphaAt(x, y).A
}

func curveCap(c LineCap) curve.Cap {
	switch c {
	case CapButt:
		return curve.ButtCap
	case CapSquare:
		return curve.SquareCap
	default:
		return curve.RoundCap
	}
}

func curveJoin(j LineJoin) curve.Join {
	switch j {
	case JoinMiter:
		return curve.MiterJoin
	case JoinBevel:
		return curve.BevelJoin
	default:
		return curve.RoundJoin
	}
}
