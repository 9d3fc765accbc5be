package lens

import (
	"errors"
	"fmt"

	"github.com/iburimskiy/gravity-lens/internal/config"
)

// Parameter names accepted by Params.Set.
const (
	ParamMass     = "mass"
	ParamSpin     = "spin"
	ParamDistance = "distance"
)

// ErrUnknownParameter is returned by Set for a name outside the declared set.
var ErrUnknownParameter = errors.New("unknown lens parameter")

// Observer is notified after a parameter value has been stored.
type Observer func(name string, value float64)

// Params holds the live lensing parameters. It has a single writer (the
// control layer) and is read once per frame by the render pipeline, so no
// locking is needed; all access happens on the game loop goroutine.
type Params struct {
	mass      float64
	spin      float64
	distance  float64
	observers []Observer
}

func NewParams() *Params {
	return &Params{
		mass:     config.InitialMass,
		spin:     config.InitialSpin,
		distance: config.InitialDistance,
	}
}

// Set clamps value to the declared range for name, stores it and notifies
// observers. Out-of-range values are clamped rather than rejected; only an
// unknown name is an error.
func (p *Params) Set(name string, value float64) error {
	switch name {
	case ParamMass:
		p.mass = clamp(value, 0, config.MassMax)
	case ParamSpin:
		p.spin = clamp(value, 0, config.SpinMax)
	case ParamDistance:
		p.distance = clamp(value, config.DistanceMin, config.DistanceMax)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownParameter, name)
	}

	stored, _ := p.Get(name)
	for _, fn := range p.observers {
		fn(name, stored)
	}
	return nil
}

// Get returns the current value for name.
func (p *Params) Get(name string) (float64, error) {
	switch name {
	case ParamMass:
		return p.mass, nil
	case ParamSpin:
		return p.spin, nil
	case ParamDistance:
		return p.distance, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownParameter, name)
}

func (p *Params) Mass() float64     { return p.mass }
func (p *Params) Spin() float64     { return p.spin }
func (p *Params) Distance() float64 { return p.distance }

// Observe registers fn to run after every successful Set. Observers are
// called in registration order on the caller's goroutine.
func (p *Params) Observe(fn Observer) {
	p.observers = append(p.observers, fn)
}

// Readout formats the current values to two decimal places for the
// on-screen overlay.
func (p *Params) Readout() string {
	return fmt.Sprintf("mass %.2f  spin %.2f  distance %.2f", p.mass, p.spin, p.distance)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
