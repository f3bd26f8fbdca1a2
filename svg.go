package timely

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"honnef.co/go/curve"
)

// CurveSurface records strokes as curve.BezPath values instead of painting
// pixels. It backs SVG export and lets callers inspect exactly what a render
// produced.
type CurveSurface struct {
	// MaxPrecision limits the digits after the decimal point in SVG output.
	// Zero keeps full precision.
	MaxPrecision int

	strokes []recordedStroke
	path    curve.BezPath
}

type recordedStroke struct {
	path  curve.BezPath
	style StrokeStyle
}

// MoveTo starts the path at (x, y).
func (s *CurveSurface) MoveTo(x, y float64) {
	s.path.MoveTo(curve.Pt(x, y))
}

// CubicTo appends a cubic segment ending at (x, y).
func (s *CurveSurface) CubicTo(x1, y1, x2, y2, x, y float64) {
	s.path.CubicTo(curve.Pt(x1, y1), curve.Pt(x2, y2), curve.Pt(x, y))
}

// Stroke records the collected path with style.
func (s *CurveSurface) Stroke(style StrokeStyle) error {
	s.strokes = append(s.strokes, recordedStroke{path: s.path, style: style})
	s.path = nil
	return nil
}

// Paths returns the recorded paths in stroke order.
func (s *CurveSurface) Paths() []curve.BezPath {
	out := make([]curve.BezPath, len(s.strokes))
	for i, st := range s.strokes {
		out[i] = st.path
	}
	return out
}

// Reset discards everything recorded so far.
func (s *CurveSurface) Reset() {
	s.strokes = s.strokes[:0]
	s.path = nil
}

// WriteSVG writes the recorded strokes as a standalone SVG document of the
// given size. Each stroke becomes one <path> element with no fill.
func (s *CurveSurface) WriteSVG(w io.Writer, width, height float64) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`+"\n",
		svgNum(width), svgNum(height), svgNum(width), svgNum(height))
	opts := curve.SVGOptions{MaxPrecision: s.MaxPrecision}
	for _, st := range s.strokes {
		c := st.style.Color
		fmt.Fprintf(bw, `<path fill="none" stroke="rgb(%d,%d,%d)" stroke-opacity="%s" stroke-width="%s" stroke-linecap="%s" stroke-linejoin="%s" d="`,
			colorByte(c.R), colorByte(c.G), colorByte(c.B), svgNum(clamp01(c.A)),
			svgNum(st.style.width()), svgLineCap(st.style.Cap), svgLineJoin(st.style.Join))
		if err := st.path.WriteSVG(bw, opts); err != nil {
			return fmt.Errorf("timely: write svg: %w", err)
		}
		bw.WriteString("\"/>\n")
	}
	bw.WriteString("</svg>\n")
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("timely: write svg: %w", err)
	}
	return nil
}

// WriteGlyphSVG renders path into a size×size square and writes it to w as
// an SVG document.
func WriteGlyphSVG(w io.Writer, path GlyphPath, size float64, style StrokeStyle) error {
	var s CurveSurface
	if err := Render(&s, path, Rect{Width: size, Height: size}, style); err != nil {
		return err
	}
	return s.WriteSVG(w, size, size)
}

func svgNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func colorByte(v float64) int {
	return int(clamp01(v)*255 + 0.5)
}

func svgLineCap(c LineCap) string {
	switch c {
	case CapButt:
		return "butt"
	case CapSquare:
		return "square"
	default:
		return "round"
	}
}

func svgLineJoin(j LineJoin) string {
	switch j {
	case JoinMiter:
		return "miter"
	case JoinBevel:
		return "bevel"
	default:
		return "round"
	}
}
