package timely

import (
	"errors"
	"fmt"
)

var (
	// ErrShapeMismatch reports that two glyph paths cannot be morphed point
	// for point because their lengths differ.
	ErrShapeMismatch = errors.New("timely: glyph paths differ in length")

	// ErrAuthoring reports glyph geometry that violates the path structure:
	// a move anchor followed by whole cubic triplets, inside the unit square,
	// with one point count across the table.
	ErrAuthoring = errors.New("timely: malformed glyph geometry")

	// ErrGlyphOutOfRange reports a lookup of a GlyphID outside the closed
	// set of digits and blank.
	ErrGlyphOutOfRange = errors.New("timely: glyph out of range")
)

// ShapeMismatchError carries the two lengths that prevented a morph.
type ShapeMismatchError struct {
	SourceLen int
	TargetLen int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("timely: cannot morph %d-point path into %d-point path", e.SourceLen, e.TargetLen)
}

// Unwrap returns ErrShapeMismatch.
func (e *ShapeMismatchError) Unwrap() error { return ErrShapeMismatch }

// AuthoringError describes a malformed glyph path. Glyph is GlyphBlank-valued
// or a digit when the path came from a table; Index is the offending point
// or -1 when the problem is the path as a whole.
type AuthoringError struct {
	Glyph  GlyphID
	Index  int
	Reason string
}

func (e *AuthoringError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("timely: glyph %s point %d: %s", e.Glyph, e.Index, e.Reason)
	}
	return fmt.Sprintf("timely: glyph %s: %s", e.Glyph, e.Reason)
}

// Unwrap returns ErrAuthoring.
func (e *AuthoringError) Unwrap() error { return ErrAuthoring }

func glyphOutOfRange(id GlyphID) error {
	return fmt.Errorf("%w: %d", ErrGlyphOutOfRange, int(id))
}
