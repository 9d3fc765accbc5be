package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/iburimskiy/gravity-lens/internal/config"
)

// Camera orbits the origin at a controllable distance. The distance follows
// the lens parameter store; yaw advances on its own unless orbiting is
// paused, and mouse drags adjust yaw and pitch directly.
type Camera struct {
	distance float32
	yaw      float32
	pitch    float32
	aspect   float32
	orbiting bool
}

func NewCamera() *Camera {
	return &Camera{
		distance: config.InitialDistance,
		aspect:   float32(config.WindowWidth) / float32(config.WindowHeight),
		orbiting: true,
	}
}

func (c *Camera) SetDistance(d float64) { c.distance = float32(d) }

func (c *Camera) SetAspect(width, height int) {
	if height < 1 {
		height = 1
	}
	c.aspect = float32(width) / float32(height)
}

func (c *Camera) Aspect() float32 { return c.aspect }

func (c *Camera) SetOrbiting(on bool) { c.orbiting = on }
func (c *Camera) Orbiting() bool      { return c.orbiting }

// Update advances the auto-orbit by dt seconds.
func (c *Camera) Update(dt float64) {
	if c.orbiting {
		c.yaw += float32(dt) * config.OrbitSpeed
	}
}

// Drag applies a mouse movement of (dx, dy) pixels to the orbit angles.
// Pitch is limited short of the poles to keep the view matrix well defined.
func (c *Camera) Drag(dx, dy float64) {
	c.yaw += float32(dx) * config.DragSpeed
	c.pitch += float32(dy) * config.DragSpeed
	if c.pitch > config.PitchLimit {
		c.pitch = config.PitchLimit
	}
	if c.pitch < -config.PitchLimit {
		c.pitch = -config.PitchLimit
	}
}

// Eye returns the camera position in world space.
func (c *Camera) Eye() mgl32.Vec3 {
	cp := math32.Cos(c.pitch)
	return mgl32.Vec3{
		c.distance * cp * math32.Sin(c.yaw),
		c.distance * math32.Sin(c.pitch),
		c.distance * cp * math32.Cos(c.yaw),
	}
}

// ViewProjection returns the combined perspective and look-at matrix. The
// camera always looks at the origin, where the occluding body sits.
func (c *Camera) ViewProjection() mgl32.Mat4 {
	proj := mgl32.Perspective(mgl32.DegToRad(config.FOVDegrees), c.aspect, config.NearPlane, config.FarPlane)
	view := mgl32.LookAtV(c.Eye(), mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})
	return proj.Mul4(view)
}
