package scene

import (
	"math/rand"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/iburimskiy/gravity-lens/internal/config"
)

// Star is a point light on the background shell.
type Star struct {
	Pos  mgl32.Vec3
	Mag  float32 // brightness in [0, 1]
	Tint float32 // hue offset in degrees around neutral white
}

// GenerateStars returns n stars distributed uniformly over a spherical
// shell around the origin. The same seed always yields the same field, so
// repeated frames with unchanged inputs stay pixel-identical.
func GenerateStars(seed int64, n int) []Star {
	rng := rand.New(rand.NewSource(seed))
	stars := make([]Star, n)
	for i := range stars {
		// Uniform direction: z uniform in [-1, 1], angle uniform in [0, 2pi).
		z := 2*rng.Float32() - 1
		theta := 2 * math32.Pi * rng.Float32()
		xy := math32.Sqrt(1 - z*z)
		dir := mgl32.Vec3{xy * math32.Cos(theta), xy * math32.Sin(theta), z}

		radius := float32(config.StarShellNear) +
			rng.Float32()*float32(config.StarShellFar-config.StarShellNear)

		stars[i] = Star{
			Pos:  dir.Mul(radius),
			Mag:  rng.Float32(),
			Tint: (rng.Float32() - 0.5) * 60,
		}
	}
	return stars
}
