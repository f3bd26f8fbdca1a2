package timely

import (
	"fmt"
	"log/slog"
)

// DisplayConfig configures a Display. The zero value is usable.
type DisplayConfig struct {
	// Table supplies glyph outlines. Nil selects DefaultGlyphTable.
	Table *GlyphTable

	// Style is the stroke used by Draw. The zero value selects
	// DefaultStrokeStyle.
	Style StrokeStyle

	// Morph sets duration and easing for every transition started by the
	// display. Its OnTick is ignored; use Display.OnChange instead.
	Morph MorphConfig

	// Insets is the padding kept clear inside the cell passed to DrawCell.
	Insets Insets
}

// Display shows one glyph and animates it between glyphs. It owns the
// outline currently on screen and at most one running Morph.
//
// A Display is driven by its owner: call Update(dt) once per frame and
// Draw (or DrawCell) when painting. It is not safe for concurrent use.
//
// Starting a transition while another is running supersedes it. Animate and
// AnimateIn resolve the new source glyph from the table, so the outline
// jumps to the canonical start shape; Retarget instead continues from the
// outline currently on screen.
type Display struct {
	// OnChange, if set, is called with the on-screen outline whenever it
	// changes. The slice is owned by the Display.
	OnChange func(GlyphPath)

	table    *GlyphTable
	style    StrokeStyle
	morphCfg MorphConfig
	insets   Insets

	points GlyphPath
	glyph  GlyphID
	shown  bool
	morph  *Morph
}

// NewDisplay creates an empty Display. Nothing is drawn until Show or one of
// the animation methods is called.
func NewDisplay(cfg DisplayConfig) *Display {
	d := &Display{
		table:    cfg.Table,
		style:    cfg.Style,
		morphCfg: cfg.Morph,
		insets:   cfg.Insets,
		glyph:    GlyphBlank,
	}
	if d.table == nil {
		d.table = DefaultGlyphTable()
	}
	if d.style == (StrokeStyle{}) {
		d.style = DefaultStrokeStyle()
	}
	d.morphCfg.OnTick = d.setPoints
	return d
}

// Show replaces the on-screen outline with id immediately, cancelling any
// running transition.
func (d *Display) Show(id GlyphID) error {
	p, err := d.table.path(id)
	if err != nil {
		return err
	}
	d.supersede(id)
	d.morph = nil
	d.glyph = id
	d.setPoints(p)
	return nil
}

// Animate starts a transition from one explicit glyph to another. The
// display jumps to from at once and reaches to after the configured
// duration of Updates.
func (d *Display) Animate(from, to GlyphID) error {
	m, err := NewMorph(d.table, MorphRequest{From: from, To: to}, d.morphCfg)
	if err != nil {
		return err
	}
	d.start(m)
	return nil
}

// AnimateIn starts a transition from GlyphBlank to id.
func (d *Display) AnimateIn(id GlyphID) error {
	return d.Animate(GlyphBlank, id)
}

// AnimateTo starts a transition from the glyph last requested on this
// display to id. A display that never showed anything enters from
// GlyphBlank.
func (d *Display) AnimateTo(id GlyphID) error {
	return d.Animate(d.glyph, id)
}

// Retarget starts a transition to id from the outline currently on screen,
// so an interrupted transition continues without a jump. A display that
// never showed anything enters from GlyphBlank.
func (d *Display) Retarget(id GlyphID) error {
	if !d.shown {
		return d.AnimateIn(id)
	}
	dst, err := d.table.path(id)
	if err != nil {
		return err
	}
	if len(d.points) != len(dst) {
		return &ShapeMismatchError{SourceLen: len(d.points), TargetLen: len(dst)}
	}
	req := MorphRequest{From: d.glyph, To: id}
	d.start(newMorph(req, d.points.Clone(), dst, d.morphCfg))
	return nil
}

func (d *Display) start(m *Morph) {
	req := m.Request()
	d.supersede(req.To)
	d.morph = m
	d.glyph = req.To
	m.Seek(0)
}

// supersede cancels the running morph, if any, before a new request for id
// takes over.
func (d *Display) supersede(id GlyphID) {
	if d.morph == nil || d.morph.Done() {
		return
	}
	old := d.morph.Request()
	Logger().Debug("morph supersede",
		slog.String("from", old.From.String()),
		slog.String("to", old.To.String()),
		slog.String("next", id.String()),
		slog.Float64("progress", d.morph.Progress()))
	d.morph.Cancel()
}

// Update advances the running transition by dt seconds.
func (d *Display) Update(dt float32) {
	if d.morph == nil {
		return
	}
	d.morph.Update(dt)
	if d.morph.Done() {
		d.morph = nil
	}
}

// Stop cancels the running transition, leaving the current outline on
// screen.
func (d *Display) Stop() {
	if d.morph != nil {
		d.morph.Cancel()
		d.morph = nil
	}
}

func (d *Display) setPoints(p GlyphPath) {
	if cap(d.points) < len(p) {
		d.points = make(GlyphPath, len(p))
	}
	d.points = d.points[:len(p)]
	copy(d.points, p)
	d.shown = true
	if d.OnChange != nil {
		d.OnChange(d.points)
	}
}

// Animating reports whether a transition is running.
func (d *Display) Animating() bool {
	return d.morph != nil && !d.morph.Done()
}

// Progress returns the progress of the running transition, or 1 when idle.
func (d *Display) Progress() float64 {
	if !d.Animating() {
		return 1
	}
	return d.morph.Progress()
}

// Glyph returns the glyph last requested: the target of the running
// transition, or the glyph on screen when idle.
func (d *Display) Glyph() GlyphID { return d.glyph }

// ControlPoints returns a copy of the on-screen outline, or nil if nothing
// has been shown.
func (d *Display) ControlPoints() GlyphPath {
	return d.points.Clone()
}

// SetColor sets the stroke color.
func (d *Display) SetColor(c Color) { d.style.Color = c }

// Color returns the stroke color.
func (d *Display) Color() Color { return d.style.Color }

// SetStyle replaces the stroke style.
func (d *Display) SetStyle(s StrokeStyle) { d.style = s }

// Style returns the stroke style.
func (d *Display) Style() StrokeStyle { return d.style }

// Table returns the glyph table the display resolves glyphs from.
func (d *Display) Table() *GlyphTable { return d.table }

// Draw renders the on-screen outline into region on s. It draws nothing
// when no glyph has been shown yet.
func (d *Display) Draw(s Surface, region Rect) error {
	if !d.shown {
		return nil
	}
	if err := Render(s, d.points, region, d.style); err != nil {
		return fmt.Errorf("timely: draw glyph %s: %w", d.glyph, err)
	}
	return nil
}

// DrawCell negotiates a square region inside cell, honoring the configured
// insets, and draws into it.
func (d *Display) DrawCell(s Surface, cell Rect) error {
	r := ResolveRegion(cell.Width, cell.Height, d.insets)
	r.X += cell.X
	r.Y += cell.Y
	return d.Draw(s, r)
}
