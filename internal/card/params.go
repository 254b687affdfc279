package card

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/PiyushKingg/yushen/internal/paint"
)

// Mode selects when an accelerated shell starts slowing down.
type Mode int

const (
	// Lap decelerates once the line has travelled a full perimeter since
	// the last click.
	Lap Mode = iota
	// Timer decelerates after AccelFrames frames.
	Timer
)

func (m Mode) String() string {
	if m == Timer {
		return "timer"
	}
	return "lap"
}

func (m *Mode) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "lap":
		*m = Lap
	case "timer":
		*m = Timer
	default:
		return errors.Errorf("unknown card mode %q", text)
	}
	return nil
}

// Params tunes one card shell. Speeds are in perimeter units per frame.
type Params struct {
	Animated bool
	Mode     Mode

	// Perimeter is the length of the cyclic border-position range; each
	// edge takes a quarter of it.
	Perimeter float64

	IdleSpeed float64
	FastSpeed float64
	// Smoothing is k in speed += (target-speed)*k.
	Smoothing float64
	// SettleDelta is how close to IdleSpeed counts as settled.
	SettleDelta  float64
	AccelFrames  int
	SettleFrames int

	// HardCancelOnOutsideClick drops straight back to idle on a click
	// outside the card instead of easing down.
	HardCancelOnOutsideClick bool
	// HideIdleLine hides the travelling line while idle unless hovered.
	HideIdleLine bool

	IdleLineLength   float64
	ActiveLineLength float64
	LineWidth        float64
	IdleLineAlpha    float64
	ActiveLineAlpha  float64

	CornerRadius     float64
	Padding          float64
	PanelAlpha       float64
	PanelHoverAlpha  float64
	BorderAlpha      float64
	BorderHoverAlpha float64
	LineColor        paint.Color
	PanelColor       paint.Color

	// ShineAlpha is the peak alpha of the hover highlight under the
	// pointer; 0 disables it. Its radius is half the card's shorter side.
	ShineAlpha float64

	PressScale      float64
	SpringFrequency float64
	SpringDamping   float64
}

func DefaultParams() Params {
	return Params{
		Animated:  true,
		Mode:      Lap,
		Perimeter: 100,

		IdleSpeed:    0.12,
		FastSpeed:    2.5,
		Smoothing:    0.02,
		SettleDelta:  0.005,
		AccelFrames:  90,
		SettleFrames: 600,

		IdleLineLength:   50,
		ActiveLineLength: 80,
		LineWidth:        2,
		IdleLineAlpha:    0.25,
		ActiveLineAlpha:  0.6,

		CornerRadius:     16,
		Padding:          24,
		PanelAlpha:       0.3,
		PanelHoverAlpha:  0.4,
		BorderAlpha:      0.3,
		BorderHoverAlpha: 0.5,
		LineColor:        paint.White,
		PanelColor:       paint.Color{R: 0.09, G: 0.09, B: 0.11, A: 1},
		ShineAlpha:       0.1,

		PressScale:      0.98,
		SpringFrequency: 8,
		SpringDamping:   0.8,
	}
}
