package lens

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Surface is a disposable render target. *ebiten.Image satisfies it; tests
// substitute a fake so sizing and release semantics run without a GPU.
type Surface interface {
	Bounds() image.Rectangle
	Deallocate()
}

// AllocFunc creates a surface of the given size, or nil on failure.
type AllocFunc func(width, height int) Surface

// EbitenAlloc allocates GPU-backed surfaces.
func EbitenAlloc(width, height int) Surface {
	return ebiten.NewImage(width, height)
}

// FrameBuffer is the offscreen color buffer the scene is rendered into each
// frame before the distortion pass. Its size always matches the viewport;
// Resize replaces the allocation transactionally, so a consumer sees either
// the old buffer at the old size or the new buffer at the new size, never a
// mismatched pair.
type FrameBuffer struct {
	alloc   AllocFunc
	surface Surface
	width   int
	height  int
}

func NewFrameBuffer(alloc AllocFunc, width, height int) (*FrameBuffer, error) {
	fb := &FrameBuffer{alloc: alloc}
	if err := fb.Resize(width, height); err != nil {
		return nil, err
	}
	return fb, nil
}

// Resize releases the previous allocation and creates a new one of the
// requested size, discarding prior contents. Zero or negative dimensions
// are clamped to 1x1. On allocation failure the old buffer and size are
// kept so the pair stays consistent, and the error is surfaced.
func (f *FrameBuffer) Resize(width, height int) error {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if f.surface != nil && width == f.width && height == f.height {
		return nil
	}

	next := f.alloc(width, height)
	if next == nil {
		return fmt.Errorf("allocate %dx%d frame buffer", width, height)
	}
	if f.surface != nil {
		f.surface.Deallocate()
	}
	f.surface = next
	f.width = width
	f.height = height
	return nil
}

func (f *FrameBuffer) Size() (width, height int) {
	return f.width, f.height
}

// Image returns the underlying GPU image, or nil when the surface is not
// GPU-backed (fake allocators in tests).
func (f *FrameBuffer) Image() *ebiten.Image {
	img, _ := f.surface.(*ebiten.Image)
	return img
}

// Dispose releases the current allocation. The frame buffer must not be
// used afterwards.
func (f *FrameBuffer) Dispose() {
	if f.surface != nil {
		f.surface.Deallocate()
		f.surface = nil
	}
	f.width, f.height = 0, 0
}
