package timely

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestInterpolateEndpointsExact(t *testing.T) {
	table := DefaultGlyphTable()
	for _, a := range AllGlyphs {
		for _, b := range AllGlyphs {
			src, dst := table.MustPath(a), table.MustPath(b)
			got0, err := Interpolate(src, dst, 0)
			if err != nil {
				t.Fatal(err)
			}
			if !got0.Equal(src) {
				t.Errorf("%v->%v at t=0 differs from source", a, b)
			}
			got1, _ := Interpolate(src, dst, 1)
			if !got1.Equal(dst) {
				t.Errorf("%v->%v at t=1 differs from target", a, b)
			}
		}
	}
}

func TestInterpolateZeroToEightQuarter(t *testing.T) {
	table := DefaultGlyphTable()
	src, dst := table.MustPath(Glyph0), table.MustPath(Glyph8)
	got, err := Interpolate(src, dst, 0.25)
	if err != nil {
		t.Fatal(err)
	}
	want := make(GlyphPath, len(src))
	for i := range src {
		want[i] = Point{
			X: 0.75*src[i].X + 0.25*dst[i].X,
			Y: 0.75*src[i].Y + 0.25*dst[i].Y,
		}
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("Interpolate(0, 8, 0.25) mismatch (-want +got):\n%s", diff)
	}
}

func TestInterpolateMidpointExact(t *testing.T) {
	src := GlyphPath{{0, 0}, {0.2, 0.4}, {1, 0.6}, {0.3, 0.3}}
	dst := GlyphPath{{1, 1}, {0.6, 0.2}, {0, 0.6}, {0.9, 0.1}}
	got, err := Interpolate(src, dst, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	for i := range src {
		want := Point{(src[i].X + dst[i].X) / 2, (src[i].Y + dst[i].Y) / 2}
		if got[i] != want {
			t.Errorf("point %d = %v, want %v", i, got[i], want)
		}
	}
}

func TestInterpolateStaysBetweenEnds(t *testing.T) {
	table := DefaultGlyphTable()
	for _, a := range AllGlyphs {
		for _, b := range AllGlyphs {
			src, dst := table.MustPath(a), table.MustPath(b)
			for _, tt := range []float64{0.1, 0.33, 0.5, 0.77, 0.999} {
				got, err := Interpolate(src, dst, tt)
				if err != nil {
					t.Fatal(err)
				}
				if len(got) != len(src) {
					t.Fatalf("len = %d, want %d", len(got), len(src))
				}
				for i := range got {
					if !between(got[i].X, src[i].X, dst[i].X) || !between(got[i].Y, src[i].Y, dst[i].Y) {
						t.Fatalf("%v->%v t=%v point %d = %v not between %v and %v",
							a, b, tt, i, got[i], src[i], dst[i])
					}
				}
			}
		}
	}
}

func between(v, a, b float64) bool {
	return v >= math.Min(a, b) && v <= math.Max(a, b)
}

func TestInterpolateClampsProgress(t *testing.T) {
	src := GlyphPath{{0, 0}}
	dst := GlyphPath{{1, 1}}
	tests := []struct {
		name string
		t    float64
		want Point
	}{
		{"negative", -0.5, Point{0, 0}},
		{"beyond one", 1.5, Point{1, 1}},
		{"nan", math.NaN(), Point{0, 0}},
		{"+inf", math.Inf(1), Point{1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Interpolate(src, dst, tt.t)
			if err != nil {
				t.Fatal(err)
			}
			if got[0] != tt.want {
				t.Errorf("got %v, want %v", got[0], tt.want)
			}
		})
	}
}

func TestInterpolateShapeMismatch(t *testing.T) {
	src := GlyphPath{{0, 0}}
	dst := GlyphPath{{0, 0}, {1, 1}, {1, 1}, {1, 1}}
	got, err := Interpolate(src, dst, 0.5)
	if got != nil {
		t.Errorf("got %v, want nil", got)
	}
	if !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("error = %v, want ErrShapeMismatch", err)
	}
	var se *ShapeMismatchError
	if !errors.As(err, &se) || se.SourceLen != 1 || se.TargetLen != 4 {
		t.Errorf("error = %#v, want lengths 1 and 4", err)
	}
}

func TestInterpolateIntoReusesBuffer(t *testing.T) {
	table := DefaultGlyphTable()
	src, dst := table.MustPath(Glyph2), table.MustPath(Glyph3)
	buf := make(GlyphPath, 0, len(src))
	out, err := InterpolateInto(buf, src, dst, 0.4)
	if err != nil {
		t.Fatal(err)
	}
	if &out[0] != &buf[:1][0] {
		t.Error("InterpolateInto allocated despite sufficient capacity")
	}
}

func TestInterpolateIntoLeavesBufferOnError(t *testing.T) {
	buf := GlyphPath{{0.1, 0.2}}
	_, err := InterpolateInto(buf, GlyphPath{{0, 0}}, GlyphPath{}, 0.5)
	if err == nil {
		t.Fatal("expected error")
	}
	if buf[0] != (Point{0.1, 0.2}) {
		t.Errorf("buffer modified on error: %v", buf[0])
	}
}

func TestInterpolateDoesNotModifyInputs(t *testing.T) {
	src := GlyphPath{{0, 0}, {0.1, 0.1}, {0.2, 0.2}, {0.3, 0.3}}
	dst := GlyphPath{{1, 1}, {0.9, 0.9}, {0.8, 0.8}, {0.7, 0.7}}
	srcCopy, dstCopy := src.Clone(), dst.Clone()
	if _, err := Interpolate(src, dst, 0.6); err != nil {
		t.Fatal(err)
	}
	if !src.Equal(srcCopy) || !dst.Equal(dstCopy) {
		t.Error("Interpolate modified its inputs")
	}
}

func TestLerpClamped(t *testing.T) {
	// (1-t)*a + t*b can round past b for some inputs; lerp never does.
	a, b := 0.1, 0.3
	for i := 1; i < 1000; i++ {
		tt := float64(i) / 1000
		v := lerp(a, b, tt)
		if v < a || v > b {
			t.Fatalf("lerp(%v, %v, %v) = %v out of range", a, b, tt, v)
		}
	}
}
