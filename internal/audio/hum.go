// Package audio provides the accretion hum: a low procedural tone whose
// pitch follows the lens mass and whose level follows the spin.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/gravity-lens/internal/config"
)

// Hum is a beep.Streamer generating a sine tone. The game loop goroutine
// retargets frequency and gain while the speaker goroutine streams, so both
// live behind a mutex. Gain moves toward its target a little per sample to
// avoid clicks, and phase is continuous across frequency changes.
type Hum struct {
	mu         sync.Mutex
	sampleRate beep.SampleRate
	phase      float64
	freq       float64
	gain       float64
	targetGain float64
	muted      bool
	started    bool
}

func NewHum() *Hum {
	return &Hum{
		sampleRate: beep.SampleRate(config.HumSampleRate),
		freq:       config.HumBaseFreq,
		muted:      true,
	}
}

// Start initializes the speaker and begins playback. Safe to call once;
// subsequent toggling goes through SetMuted.
func (h *Hum) Start() error {
	h.mu.Lock()
	if h.started {
		h.mu.Unlock()
		return nil
	}
	h.started = true
	sr := h.sampleRate
	h.mu.Unlock()

	if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
		h.mu.Lock()
		h.started = false
		h.mu.Unlock()
		return err
	}
	speaker.Play(h)
	return nil
}

func (h *Hum) Started() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.started
}

func (h *Hum) SetMuted(muted bool) {
	h.mu.Lock()
	h.muted = muted
	h.mu.Unlock()
}

func (h *Hum) Muted() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.muted
}

// SetDrive retargets the tone from the current lens parameters.
func (h *Hum) SetDrive(mass, spin float64) {
	h.mu.Lock()
	h.freq = config.HumBaseFreq + config.HumFreqPerMass*mass
	h.targetGain = config.HumBaseGain + config.HumGainPerSpin*spin
	h.mu.Unlock()
}

func (h *Hum) Stream(samples [][2]float64) (int, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	target := h.targetGain
	if h.muted {
		target = 0
	}
	step := 2 * math.Pi * h.freq / float64(h.sampleRate)

	for i := range samples {
		if h.gain < target {
			h.gain += config.HumGainRamp
			if h.gain > target {
				h.gain = target
			}
		} else if h.gain > target {
			h.gain -= config.HumGainRamp
			if h.gain < target {
				h.gain = target
			}
		}

		v := math.Sin(h.phase) * h.gain
		samples[i][0] = v
		samples[i][1] = v

		h.phase += step
		if h.phase > 2*math.Pi {
			h.phase -= 2 * math.Pi
		}
	}
	return len(samples), true
}

func (h *Hum) Err() error { return nil }
