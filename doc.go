// Package timely draws digits as stroked outlines and morphs one digit into
// another, for "flip-clock" style readouts on [Ebitengine] or off screen.
//
// # Geometry
//
// Every glyph (the digits 0–9 and [GlyphBlank]) is a [GlyphPath]: a move
// anchor followed by cubic Bézier triplets, authored in the unit square. All
// glyphs of a [GlyphTable] share one point count, and point i plays the same
// role in every glyph, so two glyphs can be blended point for point:
//
//	table := timely.DefaultGlyphTable()
//	zero, _ := table.Path(timely.Glyph0)
//	eight, _ := table.Path(timely.Glyph8)
//	mid, err := timely.Interpolate(zero, eight, 0.5)
//
// Custom tables are loaded with [LoadGlyphTable] and validated once, when
// they are built.
//
// # Animation
//
// A [Morph] owns the timeline of one transition. The host calls
// [Morph.Update] with the frame time and receives each intermediate outline
// through [MorphConfig.OnTick]. Progress follows a [gween] easing function.
//
//	m, err := timely.AnimateIn(table, timely.Glyph5, timely.MorphConfig{
//		Duration: 0.4,
//		Ease:     ease.OutCubic,
//		OnTick:   func(p timely.GlyphPath) { /* draw p */ },
//	})
//
// [Display] wraps this for one on-screen glyph and [Readout] for a row of
// them, such as a clock:
//
//	r := timely.NewReadout(timely.ReadoutConfig{})
//	r.SetText("12:34")
//	// every frame:
//	r.Update(dt)
//	r.Draw(surface, bounds)
//
// # Rendering
//
// [Render] scales an outline into a region by the smaller side of the
// region and strokes it on a [Surface]. Surfaces are provided for ebiten
// images ([EbitenSurface]), software rasterization with gg
// ([RasterSurface]), 8-bit coverage masks ([MaskSurface]) and SVG export
// ([CurveSurface]).
//
// [Run] opens a window showing a Readout.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package timely
