package timely

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefresh is how often the FPS overlay redraws its text, in seconds.
const fpsRefresh = 0.5

// fpsOverlay shows the current FPS and TPS in the top-left corner of the
// window. The text is printed into its own image every fpsRefresh seconds
// and the image is drawn every frame.
type fpsOverlay struct {
	img     *ebiten.Image
	elapsed float32
	stale   bool
}

func newFPSOverlay() *fpsOverlay {
	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
	return &fpsOverlay{img: ebiten.NewImage(100, 32), stale: true}
}

func (o *fpsOverlay) update(dt float32) {
	o.elapsed += dt
	if o.elapsed >= fpsRefresh {
		o.elapsed = 0
		o.stale = true
	}
}

func (o *fpsOverlay) draw(screen *ebiten.Image) {
	if o.stale {
		o.stale = false
		o.img.Clear()
		// Semi-transparent background for readability
		o.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	screen.DrawImage(o.img, nil)
}
