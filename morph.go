package timely

import (
	"log/slog"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DefaultMorphDuration is the morph length in seconds used when
// MorphConfig.Duration is zero.
const DefaultMorphDuration float32 = 0.3

// MorphRequest names the two ends of a transition. It is resolved against a
// GlyphTable once, when the Morph is created.
type MorphRequest struct {
	From, To GlyphID
}

// MorphConfig configures a Morph. The zero value is usable.
type MorphConfig struct {
	// Duration of the transition in seconds. Zero or negative selects
	// DefaultMorphDuration.
	Duration float32

	// Ease shapes progress over time. Nil selects ease.Linear. Easings that
	// overshoot (back, elastic) are clamped to the two end shapes.
	Ease ease.TweenFunc

	// OnTick receives the outline computed on every Update and Seek. The
	// slice is reused by the next tick; Clone it to keep it.
	OnTick func(GlyphPath)
}

// Morph drives one transition between two glyph outlines. Call Update(dt)
// from the host's frame callback; each call advances the timeline, computes
// the intermediate outline and hands it to OnTick.
//
// There is no global animation manager and no goroutine: a Morph moves only
// when its owner calls Update, and it belongs to that owner alone.
type Morph struct {
	req      MorphRequest
	src, dst GlyphPath
	buf      GlyphPath

	tween    *gween.Tween
	duration float32
	onTick   func(GlyphPath)

	progress  float64
	done      bool
	cancelled bool
}

// NewMorph resolves both ends of req in table and returns a Morph at
// progress 0. Nothing is published until the first Update or Seek.
//
// Unknown glyphs fail with ErrGlyphOutOfRange and outlines of different
// lengths with a *ShapeMismatchError, before any tick runs.
func NewMorph(table *GlyphTable, req MorphRequest, cfg MorphConfig) (*Morph, error) {
	src, err := table.path(req.From)
	if err != nil {
		return nil, err
	}
	dst, err := table.path(req.To)
	if err != nil {
		return nil, err
	}
	if len(src) != len(dst) {
		return nil, &ShapeMismatchError{SourceLen: len(src), TargetLen: len(dst)}
	}
	return newMorph(req, src, dst, cfg), nil
}

// newMorph builds a Morph over already-resolved outlines of equal length.
func newMorph(req MorphRequest, src, dst GlyphPath, cfg MorphConfig) *Morph {
	d := cfg.Duration
	if d <= 0 {
		d = DefaultMorphDuration
	}
	fn := cfg.Ease
	if fn == nil {
		fn = ease.Linear
	}
	m := &Morph{
		req:      req,
		src:      src,
		dst:      dst,
		buf:      src.Clone(),
		tween:    gween.New(0, 1, d, fn),
		duration: d,
		onTick:   cfg.OnTick,
	}
	Logger().Debug("morph start",
		slog.String("from", req.From.String()),
		slog.String("to", req.To.String()),
		slog.Float64("duration", float64(d)))
	return m
}

// Animate starts a transition from one explicit glyph to another.
func Animate(table *GlyphTable, from, to GlyphID, cfg MorphConfig) (*Morph, error) {
	return NewMorph(table, MorphRequest{From: from, To: to}, cfg)
}

// AnimateIn starts a transition from GlyphBlank to a glyph, used when a
// glyph first appears.
func AnimateIn(table *GlyphTable, to GlyphID, cfg MorphConfig) (*Morph, error) {
	return NewMorph(table, MorphRequest{From: GlyphBlank, To: to}, cfg)
}

// Update advances the timeline by dt seconds and publishes the resulting
// outline. Once the end is reached progress is exactly 1, the published
// outline equals the target exactly, and Done reports true. Updates after
// Done or Cancel are ignored.
func (m *Morph) Update(dt float32) {
	if m.done {
		return
	}
	val, finished := m.tween.Update(dt)
	m.advance(float64(val), finished)
}

// Seek jumps to progress p in [0, 1] of the timeline (time, not eased value)
// and publishes the outline there. Seeking to 1 completes the morph.
func (m *Morph) Seek(p float64) {
	if m.cancelled {
		return
	}
	p = clampProgress(p)
	val, finished := m.tween.Set(float32(p) * m.duration)
	m.done = false
	m.advance(float64(val), finished || p == 1)
}

func (m *Morph) advance(val float64, finished bool) {
	if finished {
		val = 1
	}
	m.progress = clampProgress(val)
	buf, err := InterpolateInto(m.buf, m.src, m.dst, m.progress)
	if err != nil {
		// Lengths are checked by NewMorph and Display.Retarget.
		panic(err)
	}
	m.buf = buf
	if m.onTick != nil {
		m.onTick(m.buf)
	}
	if finished && !m.done {
		m.done = true
		Logger().Debug("morph finish",
			slog.String("from", m.req.From.String()),
			slog.String("to", m.req.To.String()))
	}
}

// Cancel stops the morph immediately. The last published outline is left
// as is; no rollback is published.
func (m *Morph) Cancel() {
	if m.done {
		return
	}
	m.done = true
	m.cancelled = true
	Logger().Debug("morph cancel",
		slog.String("from", m.req.From.String()),
		slog.String("to", m.req.To.String()),
		slog.Float64("progress", m.progress))
}

// Done reports whether the morph finished or was cancelled.
func (m *Morph) Done() bool { return m.done }

// Cancelled reports whether the morph was stopped by Cancel.
func (m *Morph) Cancelled() bool { return m.cancelled }

// Progress returns the eased progress of the last tick, in [0, 1].
func (m *Morph) Progress() float64 { return m.progress }

// Request returns the glyph pair this morph was created for.
func (m *Morph) Request() MorphRequest { return m.req }

// Current returns the last published outline, or a copy of the source
// outline before the first tick. The slice is owned by the Morph.
func (m *Morph) Current() GlyphPath { return m.buf }
