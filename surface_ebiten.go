package timely

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// --- White pixel singleton (no sync.Once: ebiten drawing is single-threaded) ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image used as
// the texture of stroked triangles.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

// EbitenSurface strokes outlines into an ebiten image. The stroke is
// triangulated by the ebiten vector package and submitted with one
// DrawTriangles call per Stroke.
//
// Vertex and index buffers grow to a high-water mark and are reused, so a
// surface kept across frames does not allocate in steady state.
type EbitenSurface struct {
	Target    *ebiten.Image
	AntiAlias bool
	Blend     ebiten.Blend // zero value is source-over

	path  vector.Path
	verts []ebiten.Vertex
	inds  []uint16
}

// NewEbitenSurface returns an anti-aliased surface drawing into target.
func NewEbitenSurface(target *ebiten.Image) *EbitenSurface {
	return &EbitenSurface{Target: target, AntiAlias: true}
}

// MoveTo starts the path at (x, y).
func (s *EbitenSurface) MoveTo(x, y float64) {
	s.path.MoveTo(float32(x), float32(y))
}

// CubicTo appends a cubic segment ending at (x, y).
func (s *EbitenSurface) CubicTo(x1, y1, x2, y2, x, y float64) {
	s.path.CubicTo(float32(x1), float32(y1), float32(x2), float32(y2), float32(x), float32(y))
}

// Stroke paints the collected path with style and resets it.
func (s *EbitenSurface) Stroke(style StrokeStyle) error {
	s.triangulate(style)
	s.path = vector.Path{}
	if s.Target == nil || len(s.inds) == 0 {
		return nil
	}

	var triOp ebiten.DrawTrianglesOptions
	triOp.AntiAlias = s.AntiAlias
	triOp.Blend = s.Blend
	s.Target.DrawTriangles(s.verts, s.inds, ensureWhitePixel(), &triOp)
	return nil
}

// triangulate fills verts and inds with the stroke of the current path,
// colored with the premultiplied style color.
func (s *EbitenSurface) triangulate(style StrokeStyle) {
	op := &vector.StrokeOptions{
		Width:      float32(style.width()),
		LineCap:    ebitenLineCap(style.Cap),
		LineJoin:   ebitenLineJoin(style.Join),
		MiterLimit: 4,
	}
	s.verts, s.inds = s.path.AppendVerticesAndIndicesForStroke(s.verts[:0], s.inds[:0], op)

	r, g, b, a := style.Color.premultiplied()
	for i := range s.verts {
		v := &s.verts[i]
		v.SrcX = 0.5
		v.SrcY = 0.5
		v.ColorR = r
		v.ColorG = g
		v.ColorB = b
		v.ColorA = a
	}
}

func ebitenLineCap(c LineCap) vector.LineCap {
	switch c {
	case CapButt:
		return vector.LineCapButt
	case CapSquare:
		return vector.LineCapSquare
	default:
		return vector.LineCapRound
	}
}

func ebitenLineJoin(j LineJoin) vector.LineJoin {
	switch j {
	case JoinMiter:
		return vector.LineJoinMiter
	case JoinBevel:
		return vector.LineJoinBevel
	default:
		return vector.LineJoinRound
	}
}
