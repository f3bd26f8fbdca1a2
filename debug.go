package timely

import (
	"log/slog"
	"time"
)

// debugInterval is how often accumulated frame stats are logged, in frames.
const debugInterval = 60

// frameStats accumulates per-frame timing and stroke counts. Only populated
// when RunConfig.Debug is set.
type frameStats struct {
	frames    int
	drawTime  time.Duration
	maxDraw   time.Duration
	strokes   int
	animating int
}

// record adds one frame to the stats.
func (s *frameStats) record(draw time.Duration, strokes, animating int) {
	s.frames++
	s.drawTime += draw
	s.maxDraw = max(s.maxDraw, draw)
	s.strokes += strokes
	s.animating += animating
}

// flush logs the averages at debug level once debugInterval frames have been
// recorded, then resets.
func (s *frameStats) flush() {
	if s.frames < debugInterval {
		return
	}
	n := time.Duration(s.frames)
	Logger().Debug("frame stats",
		slog.Int("frames", s.frames),
		slog.Duration("draw_avg", s.drawTime/n),
		slog.Duration("draw_max", s.maxDraw),
		slog.Int("strokes_per_frame", s.strokes/s.frames),
		slog.Int("animating_per_frame", s.animating/s.frames))
	*s = frameStats{}
}

// countingSurface forwards to a Surface and counts strokes.
type countingSurface struct {
	Surface
	strokes int
}

func (c *countingSurface) Stroke(style StrokeStyle) error {
	c.strokes++
	return c.Surface.Stroke(style)
}
