// Package game drives the two-pass render loop: the scene is drawn into an
// offscreen frame buffer, then the distortion shader warps that buffer onto
// the visible surface using the current lens parameters.
package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/gravity-lens/internal/audio"
	"github.com/iburimskiy/gravity-lens/internal/config"
	"github.com/iburimskiy/gravity-lens/internal/lens"
	"github.com/iburimskiy/gravity-lens/internal/scene"
)

// Ebiten runs Update at a fixed 60 ticks per second.
const tickSeconds = 1.0 / 60.0

type Game struct {
	params     *lens.Params
	fb         *lens.FrameBuffer
	distortion *lens.Distortion
	cam        *scene.Camera
	scene      *scene.Scene
	hum        *audio.Hum

	pending       []event
	width, height int

	dragging    bool
	lastCursorX int
	lastCursorY int

	captureNext bool
	shotPending *image.RGBA

	lastErr error
}

// New builds the full pipeline. A shader compile failure or a failed
// initial allocation aborts startup.
func New() (*Game, error) {
	distortion, err := lens.NewDistortion()
	if err != nil {
		return nil, err
	}
	g, err := newGame(lens.EbitenAlloc)
	if err != nil {
		distortion.Dispose()
		return nil, err
	}
	g.distortion = distortion
	return g, nil
}

// newGame wires everything except the GPU shader, so tests can run the loop
// plumbing against a fake allocator.
func newGame(alloc lens.AllocFunc) (*Game, error) {
	fb, err := lens.NewFrameBuffer(alloc, config.WindowWidth, config.WindowHeight)
	if err != nil {
		return nil, err
	}

	params := lens.NewParams()
	cam := scene.NewCamera()
	params.Observe(func(name string, value float64) {
		if name == lens.ParamDistance {
			cam.SetDistance(value)
		}
	})

	return &Game{
		params: params,
		fb:     fb,
		cam:    cam,
		scene:  scene.New(cam),
		hum:    audio.NewHum(),
		width:  config.WindowWidth,
		height: config.WindowHeight,
	}, nil
}

func (g *Game) Update() error {
	g.drainEvents()

	if g.shotPending != nil {
		shot := g.shotPending
		g.shotPending = nil
		if err := saveScreenshot(shot); err != nil {
			g.lastErr = err
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.cam.SetOrbiting(!g.cam.Orbiting())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.toggleHum()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.captureNext = true
	}

	g.adjustParams()
	g.handleDrag()

	g.cam.Update(tickSeconds)
	g.scene.Advance(tickSeconds)
	g.hum.SetDrive(g.params.Mass(), g.params.Spin())
	return nil
}

// adjustParams applies held-key and wheel adjustments. Input runs inside
// the tick, between frames, so values are set directly; clamping happens in
// the parameter store.
func (g *Game) adjustParams() {
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.setParam(lens.ParamMass, g.params.Mass()+config.MassStep*tickSeconds)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.setParam(lens.ParamMass, g.params.Mass()-config.MassStep*tickSeconds)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		g.setParam(lens.ParamSpin, g.params.Spin()+config.SpinStep*tickSeconds)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		g.setParam(lens.ParamSpin, g.params.Spin()-config.SpinStep*tickSeconds)
	}
	if ebiten.IsKeyPressed(ebiten.KeyPageUp) {
		g.setParam(lens.ParamDistance, g.params.Distance()-config.DistanceStep*tickSeconds)
	}
	if ebiten.IsKeyPressed(ebiten.KeyPageDown) {
		g.setParam(lens.ParamDistance, g.params.Distance()+config.DistanceStep*tickSeconds)
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		g.setParam(lens.ParamDistance, g.params.Distance()-wy*config.WheelStep)
	}
}

func (g *Game) setParam(name string, value float64) {
	if err := g.params.Set(name, value); err != nil {
		g.lastErr = err
	}
}

func (g *Game) handleDrag() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.dragging = true
		g.lastCursorX, g.lastCursorY = ebiten.CursorPosition()
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.dragging = false
	}
	if g.dragging {
		x, y := ebiten.CursorPosition()
		g.cam.Drag(float64(x-g.lastCursorX), float64(y-g.lastCursorY))
		g.lastCursorX, g.lastCursorY = x, y
	}
}

func (g *Game) toggleHum() {
	if !g.hum.Started() {
		if err := g.hum.Start(); err != nil {
			g.lastErr = err
			return
		}
		g.hum.SetMuted(false)
		return
	}
	g.hum.SetMuted(!g.hum.Muted())
}

func (g *Game) Draw(screen *ebiten.Image) {
	img := g.fb.Image()
	if img == nil || g.distortion == nil {
		// Defined fallback: never present an undefined frame.
		screen.Fill(color.Black)
		return
	}

	// Pass 1: scene into the offscreen buffer.
	g.scene.Render(img)

	// Pass 2: full-screen warp onto the visible surface.
	g.distortion.Apply(screen, img, g.params.Mass(), g.params.Spin())

	if g.captureNext {
		g.captureNext = false
		g.capture(img)
	}

	status := g.params.Readout() +
		"  |  arrows: mass/spin  wheel/PgUp/PgDn: distance  drag: orbit  space: pause  M: hum  S: screenshot  Q: quit"
	if g.lastErr != nil {
		status += "\nerror: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

// Layout reports the viewport size. A change is queued and applied at the
// top of the next Update, before Draw runs, so the frame buffer, camera
// aspect and shader resolution never disagree within a frame.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth < 1 {
		outsideWidth = 1
	}
	if outsideHeight < 1 {
		outsideHeight = 1
	}
	if outsideWidth != g.width || outsideHeight != g.height {
		g.post(resizeEvent{width: outsideWidth, height: outsideHeight})
	}
	return outsideWidth, outsideHeight
}

func (g *Game) applyResize(width, height int) {
	if err := g.fb.Resize(width, height); err != nil {
		// Keep the old consistent buffer and surface the failure; the next
		// resize or tick retries.
		g.lastErr = err
		return
	}
	g.width, g.height = g.fb.Size()
	g.cam.SetAspect(g.width, g.height)
}

// Dispose releases GPU resources on shutdown.
func (g *Game) Dispose() {
	g.fb.Dispose()
	if g.distortion != nil {
		g.distortion.Dispose()
	}
}
