package config

const (
	WindowWidth  = 960
	WindowHeight = 720

	// Lens parameter bounds. Out-of-range values are clamped, never rejected,
	// so interactive controls stay responsive at the edges.
	MassMax     = 3.0
	SpinMax     = 6.0
	DistanceMin = 2.5
	DistanceMax = 24.0

	InitialMass     = 0.8
	InitialSpin     = 1.5
	InitialDistance = 9.0

	// Softening term added to the distance from the lens anchor so the
	// lensing factor stays finite at the anchor itself.
	Epsilon = 0.001

	// Projected center of the black hole in normalized screen coordinates.
	// The body is always screen-centered in this design.
	AnchorX = 0.5
	AnchorY = 0.5

	// Starfield parameters
	StarCount      = 1100
	StarfieldSeed  = 7
	StarShellNear  = 40.0
	StarShellFar   = 64.0
	HorizonRadius  = 0.9
	GlowRingCount  = 4
	GlowPulseSpeed = 0.8

	// Camera parameters
	FOVDegrees = 55.0
	NearPlane  = 0.1
	FarPlane   = 200.0
	OrbitSpeed = 0.12 // radians per second when auto-orbiting
	DragSpeed  = 0.008
	PitchLimit = 1.45

	// Per-second rates for key-held parameter adjustments.
	MassStep     = 0.6
	SpinStep     = 1.2
	DistanceStep = 4.0
	WheelStep    = 0.8

	// Accretion hum
	HumSampleRate  = 44100
	HumBaseFreq    = 48.0
	HumFreqPerMass = 36.0
	HumBaseGain    = 0.08
	HumGainPerSpin = 0.015
	HumGainRamp    = 0.001 // per-sample gain smoothing toward the target
)
