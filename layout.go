package timely

// DefaultAspectRatio is the width/height ratio of a glyph cell.
const DefaultAspectRatio = 1.0

// Measure negotiates the outer size of a glyph cell from the size a host
// layout proposes. A zero dimension takes the value of the other one. The
// content box (proposal minus insets) is then fitted to ratio by shrinking
// whichever side is too long; insets are added back to the result.
// A ratio of zero or less selects DefaultAspectRatio.
func Measure(proposedW, proposedH float64, insets Insets, ratio float64) (w, h float64) {
	if ratio <= 0 {
		ratio = DefaultAspectRatio
	}
	w, h = proposedW, proposedH
	if h == 0 {
		h = w
	} else if w == 0 {
		w = h
	}

	padX := insets.Left + insets.Right
	padY := insets.Top + insets.Bottom
	innerW := w - padX
	innerH := h - padY

	maxW := innerH * ratio
	maxH := innerW / ratio
	if innerW > maxW {
		w = maxW + padX
	} else {
		h = maxH + padY
	}
	return w, h
}

// ResolveRegion returns the content rectangle of a square glyph cell
// negotiated from a proposed size: the measured cell minus its insets,
// positioned at the top-left inset. Dimensions never go negative.
func ResolveRegion(proposedW, proposedH float64, insets Insets) Rect {
	return ResolveRegionRatio(proposedW, proposedH, insets, DefaultAspectRatio)
}

// ResolveRegionRatio is like ResolveRegion for a cell of the given
// width/height ratio.
func ResolveRegionRatio(proposedW, proposedH float64, insets Insets, ratio float64) Rect {
	w, h := Measure(proposedW, proposedH, insets, ratio)
	return Rect{
		X:      insets.Left,
		Y:      insets.Top,
		Width:  max(0, w-insets.Left-insets.Right),
		Height: max(0, h-insets.Top-insets.Bottom),
	}
}
