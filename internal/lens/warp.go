package lens

import (
	"github.com/chewxy/math32"

	"github.com/iburimskiy/gravity-lens/internal/config"
)

// WarpUV is the CPU mirror of the distortion shader's coordinate warp. It
// maps an output pixel's normalized coordinate to the coordinate it samples
// from the scene buffer. Kept in float32 to match GPU precision; the shader
// in shader.go implements the same steps and the two must agree.
//
// The transform rotates the offset from the screen anchor by spin*lensing
// and pushes it outward by a factor of 1+lensing, where
// lensing = mass/(r+epsilon). At mass 0 it is exactly the identity.
func WarpUV(x, y, mass, spin float32) (float32, float32) {
	const (
		ax  = float32(config.AnchorX)
		ay  = float32(config.AnchorY)
		eps = float32(config.Epsilon)
	)

	dx := x - ax
	dy := y - ay
	r := math32.Hypot(dx, dy)

	lensing := mass / (r + eps)
	if lensing == 0 {
		return x, y
	}

	angle := spin * lensing
	s := math32.Sin(angle)
	c := math32.Cos(angle)
	rx := dx*c - dy*s
	ry := dx*s + dy*c

	scale := 1 + lensing
	return ax + rx*scale, ay + ry*scale
}

// InBounds reports whether a warped coordinate still falls inside the scene
// buffer. Samples outside are rendered as background black rather than
// clamped, to avoid smearing edge pixels across the warp.
func InBounds(x, y float32) bool {
	return x >= 0 && x <= 1 && y >= 0 && y <= 1
}
