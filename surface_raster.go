package timely

import (
	"image"
	"io"

	"github.com/gogpu/gg"
)

// RasterSurface strokes outlines with the gg software renderer into an
// in-memory RGBA image. It needs no window or GPU, which makes it the
// surface of choice for exporting frames.
type RasterSurface struct {
	dc *gg.Context
}

// NewRasterSurface returns a transparent width×height surface.
func NewRasterSurface(width, height int) *RasterSurface {
	return &RasterSurface{dc: gg.NewContext(width, height)}
}

// MoveTo starts the path at (x, y).
func (s *RasterSurface) MoveTo(x, y float64) {
	s.dc.MoveTo(x, y)
}

// CubicTo appends a cubic segment ending at (x, y).
func (s *RasterSurface) CubicTo(x1, y1, x2, y2, x, y float64) {
	s.dc.CubicTo(x1, y1, x2, y2, x, y)
}

// Stroke paints the collected path with style and clears it.
func (s *RasterSurface) Stroke(style StrokeStyle) error {
	c := style.Color
	s.dc.SetRGBA(c.R, c.G, c.B, c.A)
	s.dc.SetLineWidth(style.width())
	s.dc.SetLineCap(ggLineCap(style.Cap))
	s.dc.SetLineJoin(ggLineJoin(style.Join))
	return s.dc.Stroke()
}

// Clear resets every pixel to transparent.
func (s *RasterSurface) Clear() {
	s.dc.Clear()
}

// Fill paints every pixel with c, typically a background before drawing.
func (s *RasterSurface) Fill(c Color) {
	s.dc.ClearWithColor(gg.RGBA2(c.R, c.G, c.B, c.A))
}

// Bounds returns the pixel bounds of the surface.
func (s *RasterSurface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.dc.Width(), s.dc.Height())
}

// Image returns the rendered pixels.
func (s *RasterSurface) Image() image.Image {
	return s.dc.Image()
}

// EncodePNG writes the rendered pixels to w as PNG.
func (s *RasterSurface) EncodePNG(w io.Writer) error {
	return s.dc.EncodePNG(w)
}

// Close releases renderer resources held by the surface.
func (s *RasterSurface) Close() error {
	return s.dc.Close()
}

func ggLineCap(c LineCap) gg.LineCap {
	switch c {
	case CapButt:
		return gg.LineCapButt
	case CapSquare:
		return gg.LineCapSquare
	default:
		return gg.LineCapRound
	}
}

func ggLineJoin(j LineJoin) gg.LineJoin {
	switch j {
	case JoinMiter:
		return gg.LineJoinMiter
	case JoinBevel:
		return gg.LineJoinBevel
	default:
		return gg.LineJoinRound
	}
}
