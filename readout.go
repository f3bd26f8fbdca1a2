package timely

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
)

// DefaultSeparatorWidth is the width of a separator cell relative to the
// height of the readout.
const DefaultSeparatorWidth = 0.4

// ReadoutConfig configures a Readout. The zero value is usable.
type ReadoutConfig struct {
	// Display configures every digit cell.
	Display DisplayConfig

	// SeparatorWidth is the width of non-digit cells relative to the cell
	// height. Zero selects DefaultSeparatorWidth.
	SeparatorWidth float64

	// Seamless makes digit changes continue from the outline on screen
	// (Display.Retarget) instead of restarting from the previous glyph's
	// canonical shape.
	Seamless bool
}

// Readout is a row of glyph cells showing a short string of digits, such as
// a counter or a "12:34:56" clock. Digits and spaces occupy square cells
// backed by a Display each; any other rune is a narrow separator. ':' and
// '.' separators draw short marks, the rest are gaps.
//
// When the text changes only the cells whose glyph differs are animated.
type Readout struct {
	cfg   ReadoutConfig
	cells []readoutCell
	text  string
}

type readoutCell struct {
	sep     rune     // 0 for digit cells
	display *Display // nil for separators
}

// NewReadout creates an empty readout.
func NewReadout(cfg ReadoutConfig) *Readout {
	if cfg.SeparatorWidth <= 0 {
		cfg.SeparatorWidth = DefaultSeparatorWidth
	}
	return &Readout{cfg: cfg}
}

// SetText shows text, animating every digit cell whose glyph changes. Cells
// that appear for the first time enter from the blank glyph. If the layout
// of digits and separators changes, digit cells are matched by position.
func (r *Readout) SetText(text string) error {
	runes := []rune(text)
	old := r.cells
	next := make([]readoutCell, len(runes))
	var errs []error
	digit := 0
	for i, c := range runes {
		id, err := GlyphForRune(c)
		if err != nil {
			next[i] = readoutCell{sep: c}
			continue
		}
		d := r.takeDisplay(old, digit)
		digit++
		next[i] = readoutCell{display: d}
		if err := r.change(d, id); err != nil {
			errs = append(errs, fmt.Errorf("cell %d: %w", i, err))
		}
	}
	r.cells = next
	r.text = text
	return errors.Join(errs...)
}

// takeDisplay returns the n-th digit display of cells, or a fresh one.
func (r *Readout) takeDisplay(cells []readoutCell, n int) *Display {
	for _, c := range cells {
		if c.display == nil {
			continue
		}
		if n == 0 {
			return c.display
		}
		n--
	}
	return NewDisplay(r.cfg.Display)
}

func (r *Readout) change(d *Display, id GlyphID) error {
	switch {
	case d.shown && d.Glyph() == id:
		return nil
	case !d.shown && id == GlyphBlank:
		return d.Show(GlyphBlank)
	case !d.shown:
		return d.AnimateIn(id)
	case r.cfg.Seamless:
		return d.Retarget(id)
	default:
		return d.AnimateTo(id)
	}
}

// SetNumber shows v right-aligned in width digit cells, padding with blank
// glyphs. Values wider than width grow the readout. Negative values are out
// of range.
func (r *Readout) SetNumber(v, width int) error {
	if v < 0 {
		return fmt.Errorf("timely: readout value %d: %w", v, ErrGlyphOutOfRange)
	}
	s := strconv.Itoa(v)
	for len(s) < width {
		s = " " + s
	}
	return r.SetText(s)
}

// Text returns the text last passed to SetText.
func (r *Readout) Text() string { return r.text }

// Displays returns the digit cells in order.
func (r *Readout) Displays() []*Display {
	out := make([]*Display, 0, len(r.cells))
	for _, c := range r.cells {
		if c.display != nil {
			out = append(out, c.display)
		}
	}
	return out
}

// Update advances every running transition by dt seconds.
func (r *Readout) Update(dt float32) {
	for _, c := range r.cells {
		if c.display != nil {
			c.display.Update(dt)
		}
	}
}

// Animating reports whether any cell is mid-transition.
func (r *Readout) Animating() bool {
	for _, c := range r.cells {
		if c.display != nil && c.display.Animating() {
			return true
		}
	}
	return false
}

// Layout returns the cell rectangles for bounds, one per rune of the text.
// Cells are as tall as bounds allows while the whole row fits its width,
// and the row is centered.
func (r *Readout) Layout(bounds Rect) []Rect {
	units := 0.0
	for _, c := range r.cells {
		if c.display != nil {
			units++
		} else {
			units += r.cfg.SeparatorWidth
		}
	}
	if units == 0 || bounds.Empty() {
		return nil
	}

	h := math.Min(bounds.Height, bounds.Width/units)
	x := bounds.X + (bounds.Width-h*units)/2
	y := bounds.Y + (bounds.Height-h)/2

	rects := make([]Rect, len(r.cells))
	for i, c := range r.cells {
		w := h
		if c.display == nil {
			w = h * r.cfg.SeparatorWidth
		}
		rects[i] = Rect{X: x, Y: y, Width: w, Height: h}
		x += w
	}
	return rects
}

// Draw renders every cell into bounds on s. A failing cell is logged and
// skipped so the rest of the row still draws; the errors are returned
// joined.
func (r *Readout) Draw(s Surface, bounds Rect) error {
	var errs []error
	for i, cell := range r.Layout(bounds) {
		c := r.cells[i]
		var err error
		if c.display != nil {
			err = c.display.DrawCell(s, cell)
		} else {
			err = r.drawSeparator(s, c.sep, cell)
		}
		if err != nil {
			Logger().Warn("readout cell dropped", slog.Int("cell", i), slog.Any("err", err))
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Separator marks in a unit square that is as tall as a digit cell and
// mapped onto the narrow separator cell's height.
var (
	colonMarks = []GlyphPath{
		{{0.2, 0.3}, {0.2, 0.32}, {0.2, 0.34}, {0.2, 0.36}},
		{{0.2, 0.64}, {0.2, 0.66}, {0.2, 0.68}, {0.2, 0.7}},
	}
	dotMarks = []GlyphPath{
		{{0.2, 0.84}, {0.2, 0.86}, {0.2, 0.88}, {0.2, 0.9}},
	}
)

func (r *Readout) drawSeparator(s Surface, sep rune, cell Rect) error {
	var marks []GlyphPath
	switch sep {
	case ':':
		marks = colonMarks
	case '.':
		marks = dotMarks
	default:
		return nil
	}
	style := r.cfg.Display.Style
	if style == (StrokeStyle{}) {
		style = DefaultStrokeStyle()
	}
	// Marks are laid out against the cell height so they line up with the
	// digits; the x coordinate is authored for the narrow cell.
	region := Rect{X: cell.X, Y: cell.Y, Width: cell.Height, Height: cell.Height}
	for _, m := range marks {
		if err := Render(s, m, region, style); err != nil {
			return err
		}
	}
	return nil
}
