package timely

import "math"

// Interpolate returns the outline at progress t between src and dst. Each
// output point is the linear blend of the points at the same index in src
// and dst, on x and y independently. The blend is exact at the ends: t=0
// yields src and t=1 yields dst, point for point.
//
// t is clamped to [0, 1] and NaN is treated as 0. src and dst must have the
// same length; otherwise a *ShapeMismatchError is returned along with a nil
// path.
//
// Interpolate keeps no state and may be called concurrently.
func Interpolate(src, dst GlyphPath, t float64) (GlyphPath, error) {
	return InterpolateInto(nil, src, dst, t)
}

// InterpolateInto is like Interpolate but writes into out, growing it only
// when its capacity is too small. It returns the resliced buffer. On error
// out is left untouched.
func InterpolateInto(out, src, dst GlyphPath, t float64) (GlyphPath, error) {
	if len(src) != len(dst) {
		return nil, &ShapeMismatchError{SourceLen: len(src), TargetLen: len(dst)}
	}
	t = clampProgress(t)

	n := len(src)
	if cap(out) < n {
		out = make(GlyphPath, n)
	}
	out = out[:n]

	switch t {
	case 0:
		copy(out, src)
	case 1:
		copy(out, dst)
	default:
		for i := range src {
			out[i] = Point{
				X: lerp(src[i].X, dst[i].X, t),
				Y: lerp(src[i].Y, dst[i].Y, t),
			}
		}
	}
	return out, nil
}

// lerp blends a toward b. The result is held inside [min(a,b), max(a,b)] so
// rounding can never push a point past either end.
func lerp(a, b, t float64) float64 {
	v := (1-t)*a + t*b
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	return math.Min(math.Max(v, lo), hi)
}

func clampProgress(t float64) float64 {
	if math.IsNaN(t) || t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
