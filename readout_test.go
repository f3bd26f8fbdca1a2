package timely

import (
	"errors"
	"testing"
)

func settle(r *Readout) {
	for i := 0; i < 100 && r.Animating(); i++ {
		r.Update(0.1)
	}
}

func TestReadoutSetTextEntersFromBlank(t *testing.T) {
	r := NewReadout(ReadoutConfig{})
	if err := r.SetText("12:34"); err != nil {
		t.Fatal(err)
	}
	ds := r.Displays()
	if len(ds) != 4 {
		t.Fatalf("Displays() = %d, want 4", len(ds))
	}
	want := []GlyphID{Glyph1, Glyph2, Glyph3, Glyph4}
	for i, d := range ds {
		if d.Glyph() != want[i] {
			t.Errorf("display %d glyph = %v, want %v", i, d.Glyph(), want[i])
		}
		if !d.Animating() || d.morph.Request().From != GlyphBlank {
			t.Errorf("display %d should be entering from blank", i)
		}
	}
	settle(r)
	table := DefaultGlyphTable()
	for i, d := range ds {
		if !d.ControlPoints().Equal(table.MustPath(want[i])) {
			t.Errorf("display %d did not settle on %v", i, want[i])
		}
	}
	if r.Text() != "12:34" {
		t.Errorf("Text() = %q", r.Text())
	}
}

func TestReadoutAnimatesOnlyChangedCells(t *testing.T) {
	r := NewReadout(ReadoutConfig{})
	_ = r.SetText("12:34")
	settle(r)
	before := r.Displays()
	if err := r.SetText("12:35"); err != nil {
		t.Fatal(err)
	}
	after := r.Displays()
	for i := range after {
		if after[i] != before[i] {
			t.Errorf("display %d was replaced", i)
		}
	}
	for i, d := range after[:3] {
		if d.Animating() {
			t.Errorf("unchanged display %d is animating", i)
		}
	}
	last := after[3]
	if !last.Animating() {
		t.Fatal("changed display is not animating")
	}
	if req := last.morph.Request(); req != (MorphRequest{From: Glyph4, To: Glyph5}) {
		t.Errorf("request = %+v, want 4 -> 5", req)
	}
}

func TestReadoutInitialBlankIsStatic(t *testing.T) {
	r := NewReadout(ReadoutConfig{})
	_ = r.SetText(" 5")
	ds := r.Displays()
	if ds[0].Animating() || ds[0].Glyph() != GlyphBlank || ds[0].ControlPoints() == nil {
		t.Error("leading blank should be shown without a transition")
	}
	if !ds[1].Animating() {
		t.Error("digit should enter")
	}
}

func TestReadoutSeamless(t *testing.T) {
	r := NewReadout(ReadoutConfig{
		Display:  DisplayConfig{Morph: MorphConfig{Duration: 1}},
		Seamless: true,
	})
	_ = r.SetText("1")
	settle(r)
	_ = r.SetText("2")
	r.Update(0.5)
	d := r.Displays()[0]
	onScreen := d.ControlPoints()
	_ = r.SetText("3")
	if !d.ControlPoints().Equal(onScreen) {
		t.Error("seamless readout jumped on retarget")
	}
}

func TestReadoutSetNumber(t *testing.T) {
	r := NewReadout(ReadoutConfig{})
	if err := r.SetNumber(7, 3); err != nil {
		t.Fatal(err)
	}
	if r.Text() != "  7" {
		t.Errorf("Text() = %q, want %q", r.Text(), "  7")
	}
	if err := r.SetNumber(1234, 2); err != nil || r.Text() != "1234" {
		t.Errorf("SetNumber(1234, 2) = %v, text %q", err, r.Text())
	}
	if err := r.SetNumber(-1, 2); !errors.Is(err, ErrGlyphOutOfRange) {
		t.Errorf("SetNumber(-1) error = %v, want ErrGlyphOutOfRange", err)
	}
}

func TestReadoutLayout(t *testing.T) {
	r := NewReadout(ReadoutConfig{})
	_ = r.SetText("12:34")
	rects := r.Layout(Rect{Width: 440, Height: 100})
	if len(rects) != 5 {
		t.Fatalf("Layout() = %d rects, want 5", len(rects))
	}
	want := []Rect{
		{X: 0, Width: 100, Height: 100},
		{X: 100, Width: 100, Height: 100},
		{X: 200, Width: 40, Height: 100},
		{X: 240, Width: 100, Height: 100},
		{X: 340, Width: 100, Height: 100},
	}
	for i := range want {
		if !rectNear(rects[i], want[i]) {
			t.Errorf("rect %d = %v, want %v", i, rects[i], want[i])
		}
	}
}

func TestReadoutLayoutCentersRow(t *testing.T) {
	r := NewReadout(ReadoutConfig{})
	_ = r.SetText("00")
	rects := r.Layout(Rect{X: 10, Y: 20, Width: 400, Height: 100})
	if !rectNear(rects[0], Rect{X: 110, Y: 20, Width: 100, Height: 100}) {
		t.Errorf("rect 0 = %v", rects[0])
	}
	rects = r.Layout(Rect{Width: 100, Height: 300})
	if !rectNear(rects[1], Rect{X: 50, Y: 125, Width: 50, Height: 50}) {
		t.Errorf("rect 1 = %v", rects[1])
	}
}

func TestReadoutLayoutEmpty(t *testing.T) {
	r := NewReadout(ReadoutConfig{})
	if rects := r.Layout(Rect{Width: 100, Height: 100}); rects != nil {
		t.Errorf("Layout() = %v, want nil", rects)
	}
}

func TestReadoutDraw(t *testing.T) {
	r := NewReadout(ReadoutConfig{})
	_ = r.SetText("1:2.3")
	var s recordingSurface
	if err := r.Draw(&s, Rect{Width: 400, Height: 100}); err != nil {
		t.Fatal(err)
	}
	// 3 digits, 2 colon marks, 1 dot mark.
	if len(s.strokes) != 6 {
		t.Errorf("strokes = %d, want 6", len(s.strokes))
	}
}

func TestReadoutDrawJoinsErrors(t *testing.T) {
	r := NewReadout(ReadoutConfig{})
	_ = r.SetText("12")
	boom := errors.New("boom")
	s := recordingSurface{err: boom}
	err := r.Draw(&s, Rect{Width: 200, Height: 100})
	if !errors.Is(err, boom) {
		t.Fatalf("error = %v, want boom", err)
	}
	if len(s.strokes) != 2 {
		t.Errorf("strokes attempted = %d, want 2", len(s.strokes))
	}
}

func rectNear(a, b Rect) bool {
	return pointNear(Point{a.X, a.Y}, Point{b.X, b.Y}) &&
		pointNear(Point{a.Width, a.Height}, Point{b.Width, b.Height})
}
