package timely

import (
	"fmt"
	"math"
)

// Surface receives a reconstructed outline in device space and paints it.
// A Surface collects exactly one path between Stroke calls: MoveTo starts
// it, CubicTo extends it, and Stroke paints it with the given style and
// clears it.
type Surface interface {
	MoveTo(x, y float64)
	CubicTo(x1, y1, x2, y2, x, y float64)
	Stroke(style StrokeStyle) error
}

// Render draws path into region on s.
//
// The unit-square geometry is scaled by the smaller of the region's width and
// height, so the glyph keeps its aspect ratio in a non-square region, and is
// offset by the region's origin. The path becomes one MoveTo followed by one
// CubicTo per triplet, and is stroked, never filled.
//
// A path that is not an anchor plus whole triplets is a programming error and
// returns an error wrapping ErrAuthoring without drawing anything. An empty
// region draws nothing.
func Render(s Surface, path GlyphPath, region Rect, style StrokeStyle) error {
	if err := path.Validate(); err != nil {
		return err
	}
	if region.Empty() {
		return nil
	}

	scale := math.Min(region.Width, region.Height)
	ox, oy := region.X, region.Y

	s.MoveTo(ox+path[0].X*scale, oy+path[0].Y*scale)
	for i := 1; i < len(path); i += 3 {
		h1, h2, end := path[i], path[i+1], path[i+2]
		s.CubicTo(
			ox+h1.X*scale, oy+h1.Y*scale,
			ox+h2.X*scale, oy+h2.Y*scale,
			ox+end.X*scale, oy+end.Y*scale,
		)
	}
	if err := s.Stroke(style); err != nil {
		return fmt.Errorf("timely: stroke: %w", err)
	}
	return nil
}
