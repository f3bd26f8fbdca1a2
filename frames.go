package timely

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FrameRecorder renders frames off screen with a RasterSurface and writes
// each as a numbered PNG file, e.g. for turning a transition into an image
// sequence.
type FrameRecorder struct {
	Dir           string
	Width, Height int
	Background    Color // transparent when zero

	frame int
}

// Capture renders one frame through draw and writes it to
// Dir/<label>_<frame>.png, returning the file path. draw receives the surface
// and its full bounds.
func (r *FrameRecorder) Capture(label string, draw func(s Surface, bounds Rect) error) (string, error) {
	if r.Width <= 0 || r.Height <= 0 {
		return "", fmt.Errorf("timely: capture %q: invalid frame size %dx%d", label, r.Width, r.Height)
	}
	if err := os.MkdirAll(r.Dir, 0o755); err != nil {
		return "", fmt.Errorf("timely: capture %q: mkdir %s: %w", label, r.Dir, err)
	}

	s := NewRasterSurface(r.Width, r.Height)
	defer s.Close()
	if r.Background != (Color{}) {
		s.Fill(r.Background)
	}
	if err := draw(s, Rect{Width: float64(r.Width), Height: float64(r.Height)}); err != nil {
		return "", fmt.Errorf("timely: capture %q: %w", label, err)
	}

	path := filepath.Join(r.Dir, fmt.Sprintf("%s_%04d.png", sanitizeLabel(label), r.frame))
	if err := writePNG(path, s); err != nil {
		return "", err
	}
	r.frame++
	return path, nil
}

// Frames returns the number of frames written so far.
func (r *FrameRecorder) Frames() int { return r.frame }

// writePNG encodes the surface to a PNG file at the given path.
func writePNG(path string, s *RasterSurface) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := s.EncodePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
