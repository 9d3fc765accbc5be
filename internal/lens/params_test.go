package lens

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/iburimskiy/gravity-lens/internal/config"
)

func TestParamsSetReadback(t *testing.T) {
	p := NewParams()
	if err := p.Set(ParamMass, 1.37); err != nil {
		t.Fatal(err)
	}
	if got := p.Mass(); math.Abs(got-1.37) > 1e-12 {
		t.Errorf("Mass() = %v, want 1.37", got)
	}
	if r := p.Readout(); !strings.Contains(r, "1.37") {
		t.Errorf("Readout() = %q, want it to contain 1.37", r)
	}
}

func TestParamsClampAboveMax(t *testing.T) {
	p := NewParams()
	if err := p.Set(ParamSpin, config.SpinMax+100); err != nil {
		t.Fatal(err)
	}
	if got := p.Spin(); got != config.SpinMax {
		t.Errorf("Spin() = %v, want clamped to %v", got, config.SpinMax)
	}
}

func TestParamsClampBelowMin(t *testing.T) {
	p := NewParams()

	if err := p.Set(ParamMass, -5); err != nil {
		t.Fatal(err)
	}
	if got := p.Mass(); got != 0 {
		t.Errorf("Mass() = %v, want clamped to 0", got)
	}

	if err := p.Set(ParamDistance, 0); err != nil {
		t.Fatal(err)
	}
	if got := p.Distance(); got != config.DistanceMin {
		t.Errorf("Distance() = %v, want clamped to %v", got, config.DistanceMin)
	}
}

func TestParamsUnknownName(t *testing.T) {
	p := NewParams()
	err := p.Set("luminosity", 1)
	if !errors.Is(err, ErrUnknownParameter) {
		t.Errorf("Set unknown = %v, want ErrUnknownParameter", err)
	}
	if _, err := p.Get("luminosity"); !errors.Is(err, ErrUnknownParameter) {
		t.Errorf("Get unknown = %v, want ErrUnknownParameter", err)
	}
}

func TestParamsObserverSeesClampedValue(t *testing.T) {
	p := NewParams()

	var gotName string
	var gotValue float64
	calls := 0
	p.Observe(func(name string, value float64) {
		gotName = name
		gotValue = value
		calls++
	})

	if err := p.Set(ParamDistance, config.DistanceMax+50); err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Fatalf("observer called %d times, want 1", calls)
	}
	if gotName != ParamDistance || gotValue != config.DistanceMax {
		t.Errorf("observer saw (%q, %v), want (%q, %v)",
			gotName, gotValue, ParamDistance, float64(config.DistanceMax))
	}
}

func TestParamsObserverNotCalledOnError(t *testing.T) {
	p := NewParams()
	calls := 0
	p.Observe(func(string, float64) { calls++ })

	if err := p.Set("bogus", 1); err == nil {
		t.Fatal("Set bogus succeeded")
	}
	if calls != 0 {
		t.Errorf("observer called %d times on failed Set", calls)
	}
}

func TestParamsDefaults(t *testing.T) {
	p := NewParams()
	if p.Mass() != config.InitialMass || p.Spin() != config.InitialSpin || p.Distance() != config.InitialDistance {
		t.Errorf("defaults = (%v, %v, %v)", p.Mass(), p.Spin(), p.Distance())
	}
}

func TestParamsReadoutFormat(t *testing.T) {
	p := NewParams()
	if err := p.Set(ParamMass, 2); err != nil {
		t.Fatal(err)
	}
	if err := p.Set(ParamSpin, 0.5); err != nil {
		t.Fatal(err)
	}
	if err := p.Set(ParamDistance, 10); err != nil {
		t.Fatal(err)
	}
	want := "mass 2.00  spin 0.50  distance 10.00"
	if got := p.Readout(); got != want {
		t.Errorf("Readout() = %q, want %q", got, want)
	}
}
