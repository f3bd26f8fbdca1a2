package timely

import "testing"

func TestNewGameDefaults(t *testing.T) {
	g := NewGame(NewReadout(ReadoutConfig{}), nil, RunConfig{})
	if g.cfg.Width != 640 || g.cfg.Height != 240 {
		t.Errorf("size = %dx%d, want 640x240", g.cfg.Width, g.cfg.Height)
	}
	if g.cfg.ClearColor != ColorWhite {
		t.Errorf("ClearColor = %v, want white", g.cfg.ClearColor)
	}
}

func TestGameLayoutFollowsWindow(t *testing.T) {
	g := NewGame(NewReadout(ReadoutConfig{}), nil, RunConfig{Padding: 10})
	w, h := g.Layout(300, 200)
	if w != 300 || h != 200 {
		t.Errorf("Layout = %dx%d, want 300x200", w, h)
	}
	want := Rect{X: 10, Y: 10, Width: 280, Height: 180}
	if got := g.bounds(); got != want {
		t.Errorf("bounds() = %v, want %v", got, want)
	}
}

func TestGameUpdateDrivesReadout(t *testing.T) {
	r := NewReadout(ReadoutConfig{Display: DisplayConfig{Morph: MorphConfig{Duration: 10}}})
	calls := 0
	g := NewGame(r, func(dt float32) {
		if calls == 0 {
			_ = r.SetText("42")
		}
		calls++
		if dt <= 0 {
			t.Errorf("dt = %v, want > 0", dt)
		}
	}, RunConfig{})
	if err := g.Update(); err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Errorf("update calls = %d, want 1", calls)
	}
	for _, d := range r.Displays() {
		if p := d.Progress(); p <= 0 || p >= 1 {
			t.Errorf("progress = %v, want strictly between 0 and 1", p)
		}
	}
}
