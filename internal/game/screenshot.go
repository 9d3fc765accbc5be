package game

import (
	"errors"
	"image"
	"image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
)

// capture re-runs the distortion pass into a scratch image and reads the
// pixels back. The encode and save dialog happen on the next Update; pixel
// readback has to happen during the frame that owns the buffer contents.
func (g *Game) capture(src *ebiten.Image) {
	w, h := g.fb.Size()
	scratch := ebiten.NewImage(w, h)
	g.distortion.Apply(scratch, src, g.params.Mass(), g.params.Spin())

	pix := make([]byte, 4*w*h)
	scratch.ReadPixels(pix)
	scratch.Deallocate()

	g.shotPending = &image.RGBA{
		Pix:    pix,
		Stride: 4 * w,
		Rect:   image.Rect(0, 0, w, h),
	}
}

func saveScreenshot(img *image.RGBA) error {
	path, err := zenity.SelectFileSave(
		zenity.Title("Save Screenshot"),
		zenity.ConfirmOverwrite(),
		zenity.Filename("lens.png"),
		zenity.FileFilters{{
			Name:     "PNG image",
			Patterns: []string{"*.png"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
