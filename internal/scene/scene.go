// Package scene renders the undistorted 3D view: a starfield on a distant
// shell and the central occluding body. The render pipeline only depends on
// Render painting the current view into a target image; everything else
// here is internal to the scene.
package scene

import (
	"image/color"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/gravity-lens/internal/config"
)

var background = color.RGBA{R: 4, G: 5, B: 10, A: 255}

type Scene struct {
	stars []Star
	cam   *Camera
	phase float32
}

func New(cam *Camera) *Scene {
	return &Scene{
		stars: GenerateStars(config.StarfieldSeed, config.StarCount),
		cam:   cam,
	}
}

func (s *Scene) Camera() *Camera { return s.cam }

// Advance moves the glow pulse forward by dt seconds. Rendering itself is a
// pure function of scene state, so skipping Advance freezes the picture.
func (s *Scene) Advance(dt float64) {
	s.phase += float32(dt) * config.GlowPulseSpeed
}

// Render paints the current view into dst, overwriting all prior contents.
func (s *Scene) Render(dst *ebiten.Image) {
	dst.Fill(background)

	b := dst.Bounds()
	w, h := float32(b.Dx()), float32(b.Dy())
	vp := s.cam.ViewProjection()

	for i := range s.stars {
		st := &s.stars[i]
		px, py, ok := project(vp, st.Pos, w, h)
		if !ok {
			continue
		}
		r, g, bb := hsvToRgb(st.Tint, 0.12, 0.55+0.45*st.Mag)
		radius := (0.6 + st.Mag*1.6) * h / float32(config.WindowHeight)
		vector.DrawFilledCircle(dst, px, py, radius, color.RGBA{R: r, G: g, B: bb, A: 255}, true)
	}

	s.drawOccluder(dst, w, h)
}

// project maps a world position through the view-projection matrix to pixel
// coordinates. ok is false for points behind the camera or far outside the
// frustum.
func project(vp mgl32.Mat4, pos mgl32.Vec3, w, h float32) (x, y float32, ok bool) {
	clip := vp.Mul4x1(pos.Vec4(1))
	cw := clip.W()
	if cw <= 0 {
		return 0, 0, false
	}
	ndcX := clip.X() / cw
	ndcY := clip.Y() / cw
	if ndcX < -1.1 || ndcX > 1.1 || ndcY < -1.1 || ndcY > 1.1 {
		return 0, 0, false
	}
	// NDC y points up, pixel y points down.
	return (ndcX*0.5 + 0.5) * w, (0.5 - ndcY*0.5) * h, true
}

// occluderRadius returns the projected radius of the event horizon in
// pixels for the current camera distance and viewport height.
func (s *Scene) occluderRadius(h float32) float32 {
	halfFov := mgl32.DegToRad(config.FOVDegrees) / 2
	return float32(config.HorizonRadius) / (s.cam.distance * math32.Tan(halfFov)) * (h / 2)
}

func (s *Scene) drawOccluder(dst *ebiten.Image, w, h float32) {
	cx, cy := w/2, h/2
	pr := s.occluderRadius(h)

	// Warm glow rings just outside the horizon, pulsing slowly.
	for i := 0; i < config.GlowRingCount; i++ {
		pulse := 0.06 * math32.Sin(s.phase+float32(i)*0.9)
		ringR := pr * (1.12 + 0.16*float32(i) + pulse)
		r, g, b := hsvToRgb(28+8*float32(i), 0.85, 0.9)
		alpha := clamp01(0.55 - 0.12*float32(i))
		vector.StrokeCircle(dst, cx, cy, ringR, 1.5, color.RGBA{R: r, G: g, B: b, A: uint8(alpha * 255)}, true)
	}

	vector.DrawFilledCircle(dst, cx, cy, pr, color.Black, true)
}
