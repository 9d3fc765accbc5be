package lens

import (
	"image"
	"testing"
)

// fakeSurface tracks release so transactional resize semantics can be
// verified without a graphics context.
type fakeSurface struct {
	w, h     int
	released bool
}

func (s *fakeSurface) Bounds() image.Rectangle { return image.Rect(0, 0, s.w, s.h) }
func (s *fakeSurface) Deallocate()             { s.released = true }

type fakeAllocator struct {
	surfaces []*fakeSurface
	failNext bool
}

func (a *fakeAllocator) alloc(w, h int) Surface {
	if a.failNext {
		a.failNext = false
		return nil
	}
	s := &fakeSurface{w: w, h: h}
	a.surfaces = append(a.surfaces, s)
	return s
}

func TestFrameBufferResizeRoundTrip(t *testing.T) {
	a := &fakeAllocator{}
	fb, err := NewFrameBuffer(a.alloc, 800, 600)
	if err != nil {
		t.Fatal(err)
	}

	if err := fb.Resize(1920, 1080); err != nil {
		t.Fatal(err)
	}
	if w, h := fb.Size(); w != 1920 || h != 1080 {
		t.Fatalf("after grow: %dx%d", w, h)
	}

	if err := fb.Resize(800, 600); err != nil {
		t.Fatal(err)
	}
	if w, h := fb.Size(); w != 800 || h != 600 {
		t.Fatalf("after round trip: %dx%d, want 800x600", w, h)
	}

	// Every superseded allocation was released; only the live one was not.
	if n := len(a.surfaces); n != 3 {
		t.Fatalf("allocations = %d, want 3", n)
	}
	for i, s := range a.surfaces[:2] {
		if !s.released {
			t.Errorf("surface %d not released", i)
		}
	}
	if a.surfaces[2].released {
		t.Error("live surface released")
	}
}

func TestFrameBufferSurfaceMatchesSize(t *testing.T) {
	a := &fakeAllocator{}
	fb, err := NewFrameBuffer(a.alloc, 640, 480)
	if err != nil {
		t.Fatal(err)
	}
	if err := fb.Resize(1024, 768); err != nil {
		t.Fatal(err)
	}

	w, h := fb.Size()
	b := fb.surface.Bounds()
	if b.Dx() != w || b.Dy() != h {
		t.Errorf("surface %dx%d disagrees with Size %dx%d", b.Dx(), b.Dy(), w, h)
	}
}

func TestFrameBufferZeroAreaClampedToOne(t *testing.T) {
	a := &fakeAllocator{}
	fb, err := NewFrameBuffer(a.alloc, 0, -3)
	if err != nil {
		t.Fatal(err)
	}
	if w, h := fb.Size(); w != 1 || h != 1 {
		t.Errorf("Size() = %dx%d, want clamped to 1x1", w, h)
	}
}

func TestFrameBufferSameSizeIsNoop(t *testing.T) {
	a := &fakeAllocator{}
	fb, err := NewFrameBuffer(a.alloc, 800, 600)
	if err != nil {
		t.Fatal(err)
	}
	if err := fb.Resize(800, 600); err != nil {
		t.Fatal(err)
	}
	if n := len(a.surfaces); n != 1 {
		t.Errorf("allocations = %d, want 1 (same-size resize reallocated)", n)
	}
}

func TestFrameBufferAllocationFailureKeepsOldBuffer(t *testing.T) {
	a := &fakeAllocator{}
	fb, err := NewFrameBuffer(a.alloc, 800, 600)
	if err != nil {
		t.Fatal(err)
	}

	a.failNext = true
	if err := fb.Resize(4096, 4096); err == nil {
		t.Fatal("Resize succeeded with failing allocator")
	}

	// The old buffer and size survive as a consistent pair.
	if w, h := fb.Size(); w != 800 || h != 600 {
		t.Errorf("Size() = %dx%d after failed resize, want 800x600", w, h)
	}
	if a.surfaces[0].released {
		t.Error("old surface released after failed resize")
	}
}

func TestFrameBufferInitialAllocationFailure(t *testing.T) {
	a := &fakeAllocator{failNext: true}
	if _, err := NewFrameBuffer(a.alloc, 800, 600); err == nil {
		t.Fatal("NewFrameBuffer succeeded with failing allocator")
	}
}

func TestFrameBufferDispose(t *testing.T) {
	a := &fakeAllocator{}
	fb, err := NewFrameBuffer(a.alloc, 320, 200)
	if err != nil {
		t.Fatal(err)
	}
	fb.Dispose()
	if !a.surfaces[0].released {
		t.Error("Dispose did not release the surface")
	}
	if w, h := fb.Size(); w != 0 || h != 0 {
		t.Errorf("Size() = %dx%d after Dispose", w, h)
	}
}

func TestFrameBufferImageNilForFakeSurface(t *testing.T) {
	a := &fakeAllocator{}
	fb, err := NewFrameBuffer(a.alloc, 64, 64)
	if err != nil {
		t.Fatal(err)
	}
	if fb.Image() != nil {
		t.Error("Image() returned non-nil for a fake surface")
	}
}
