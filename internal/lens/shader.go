package lens

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/gravity-lens/internal/config"
)

// distortionSrc is the Kage source for the lensing pass. It must mirror
// WarpUV in warp.go; out-of-range samples produce opaque black so nothing
// from outside the scene buffer leaks into the frame.
const distortionSrc = `//kage:unit pixels

package main

var Mass float
var Spin float
var Anchor vec2
var Resolution vec2

func rotate(v vec2, angle float) vec2 {
	c := cos(angle)
	s := sin(angle)
	return vec2(v.x*c-v.y*s, v.x*s+v.y*c)
}

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	origin := imageSrc0Origin()
	uv := (srcPos - origin) / Resolution

	off := uv - Anchor
	r := length(off)
	lensing := Mass / (r + 0.001)
	if lensing == 0.0 {
		return imageSrc0At(srcPos)
	}

	rotated := rotate(off, Spin*lensing)
	newUV := Anchor + rotated*(1.0+lensing)
	if newUV.x < 0.0 || newUV.x > 1.0 || newUV.y < 0.0 || newUV.y > 1.0 {
		return vec4(0.0, 0.0, 0.0, 1.0)
	}
	return imageSrc0At(newUV*Resolution + origin)
}
`

// Distortion is the full-screen lensing pass. It samples the scene buffer
// through the warp and writes the final displayed image.
type Distortion struct {
	shader *ebiten.Shader
}

// NewDistortion compiles the lensing shader. A compile failure is fatal to
// initialization; the caller must not fall back to rendering undistorted
// frames silently.
func NewDistortion() (*Distortion, error) {
	shader, err := ebiten.NewShader([]byte(distortionSrc))
	if err != nil {
		return nil, fmt.Errorf("compile distortion shader: %w", err)
	}
	return &Distortion{shader: shader}, nil
}

// Apply renders src through the lensing warp into dst, covering the whole
// of src. src must be the scene frame buffer, already sized to the current
// viewport.
func (d *Distortion) Apply(dst, src *ebiten.Image, mass, spin float64) {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	op := &ebiten.DrawRectShaderOptions{}
	op.Images[0] = src
	op.Uniforms = map[string]any{
		"Mass":       float32(mass),
		"Spin":       float32(spin),
		"Anchor":     []float32{config.AnchorX, config.AnchorY},
		"Resolution": []float32{float32(w), float32(h)},
	}
	dst.DrawRectShader(w, h, d.shader, op)
}

func (d *Distortion) Dispose() {
	if d.shader != nil {
		d.shader.Deallocate()
		d.shader = nil
	}
}
