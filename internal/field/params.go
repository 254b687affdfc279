package field

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/PiyushKingg/yushen/internal/paint"
)

// Layout selects how particles are placed on (re)initialisation.
type Layout int

const (
	// Grid tiles the viewport with a fixed spacing.
	Grid Layout = iota
	// Scatter places a count proportional to the viewport area at random.
	Scatter
)

func (l Layout) String() string {
	if l == Scatter {
		return "scatter"
	}
	return "grid"
}

func (l *Layout) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "grid":
		*l = Grid
	case "scatter", "random":
		*l = Scatter
	default:
		return errors.Errorf("unknown layout %q", text)
	}
	return nil
}

// Interaction selects the direction of the pointer force.
type Interaction int

const (
	Attract Interaction = iota
	Repel
)

func (i Interaction) String() string {
	if i == Repel {
		return "repel"
	}
	return "attract"
}

func (i *Interaction) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "attract":
		*i = Attract
	case "repel":
		*i = Repel
	default:
		return errors.Errorf("unknown interaction %q", text)
	}
	return nil
}

// Params holds every tunable of the simulator. Distances are logical
// pixels, rates are per frame.
type Params struct {
	Layout      Layout
	Interaction Interaction
	Color       paint.Color

	// Grid layout.
	Spacing float64
	// Scatter layout: min(Cap, floor(w*h/AreaDivisor)) particles.
	Cap         int
	AreaDivisor float64

	MinRadius, MaxRadius   float64
	MinOpacity, MaxOpacity float64
	// Initial velocity components are drawn from [-Drift/2, Drift/2).
	Drift float64

	ForceRadius   float64
	ForceStrength float64
	// GlowRadius must be smaller than ForceRadius.
	GlowRadius float64
	GlowBoost  float64

	Spring  float64
	Damping float64
	// Leash bounces a particle back when it strays further than this from
	// its base: both velocity components flip and lose a tenth. 0 disables it.
	Leash float64

	ClickRadius     float64
	ClickImpulse    float64
	ExpandScale     float64
	ExpandSmoothing float64

	RippleGrowth    float64
	RippleDecay     float64
	RippleOpacity   float64
	RippleMaxRadius float64
	RippleCutoff    float64
	RippleRings     int

	Links        bool
	LinkDistance float64
	LinkOpacity  float64

	Wrap       bool
	WrapMargin float64

	TimeStep       float64
	PulseAmplitude float64
	PulseSpeed     float64

	ReducedMotion bool
}

// DefaultParams returns the floating scatter field: attraction, links,
// ripples and wraparound.
func DefaultParams() Params {
	return Params{
		Layout:      Scatter,
		Interaction: Attract,
		Color:       paint.White,

		Spacing:     50,
		Cap:         35,
		AreaDivisor: 30000,

		MinRadius:  1,
		MaxRadius:  2.5,
		MinOpacity: 0.1,
		MaxOpacity: 0.3,
		Drift:      0.2,

		ForceRadius:   120,
		ForceStrength: 0.015,
		GlowRadius:    80,
		GlowBoost:     0.15,

		Spring:  0.0008,
		Damping: 0.99,

		ClickRadius:     80,
		ClickImpulse:    1.5,
		ExpandScale:     1.8,
		ExpandSmoothing: 0.08,

		RippleGrowth:    2,
		RippleDecay:     0.97,
		RippleOpacity:   0.25,
		RippleMaxRadius: 60,
		RippleCutoff:    0.01,
		RippleRings:     2,

		Links:        true,
		LinkDistance: 100,
		LinkOpacity:  0.03,

		Wrap:       true,
		WrapMargin: 20,

		TimeStep:       0.016,
		PulseAmplitude: 0.05,
		PulseSpeed:     1.5,
	}
}

// GridParams returns the tiled variant: fixed spacing, repulsion, no links
// and no wraparound.
func GridParams() Params {
	p := DefaultParams()
	p.Layout = Grid
	p.Interaction = Repel
	p.MinRadius, p.MaxRadius = 1.5, 1.5
	p.MinOpacity, p.MaxOpacity = 0.08, 0.2
	p.Drift = 0.15
	p.ForceStrength = 0.6
	p.Spring = 0.001
	p.Leash = 20
	p.Links = false
	p.Wrap = false
	p.RippleRings = 1
	return p
}
