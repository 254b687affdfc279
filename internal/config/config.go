package config

import (
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/gcfg.v1"

	"github.com/PiyushKingg/yushen/internal/card"
	"github.com/PiyushKingg/yushen/internal/field"
	"github.com/PiyushKingg/yushen/internal/page"
	"github.com/PiyushKingg/yushen/internal/paint"
)

const (
	WindowWidth  = 1280
	WindowHeight = 720
	WindowTitle  = "Yushen - Esc/Q: quit, S: save frame, M: reduce motion"

	// TPS is the nominal frame rate the per-frame constants are tuned for.
	TPS = 60

	// EnvPath names the environment variable holding the config file path.
	EnvPath = "YUSHEN_CONFIG"

	// Click sound
	SoundSampleRate = 44100
	SoundFrequency  = 880
	SoundDuration   = 0.06
	SoundVolume     = 0.15
)

type Window struct {
	Width      int
	Height     int
	Title      string
	Background paint.Color
	Seed       int64
}

type Sound struct {
	Enabled    bool
	SampleRate int
	Frequency  float64
	Duration   float64
	Volume     float64
}

// Config is the whole file. Sections map to [window], [field], [card],
// [theme] and [sound].
type Config struct {
	Window Window
	Field  field.Params
	Card   card.Params
	Theme  page.Theme
	Sound  Sound
}

func Default() Config {
	return Config{
		Window: Window{
			Width:      WindowWidth,
			Height:     WindowHeight,
			Title:      WindowTitle,
			Background: paint.Color{R: 0.035, G: 0.035, B: 0.045, A: 1},
			Seed:       1,
		},
		Field: field.DefaultParams(),
		Card:  card.DefaultParams(),
		Theme: page.DefaultTheme(),
		Sound: Sound{
			SampleRate: SoundSampleRate,
			Frequency:  SoundFrequency,
			Duration:   SoundDuration,
			Volume:     SoundVolume,
		},
	}
}

// LoadEnv reads a .env file from the working directory if there is one.
func LoadEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errors.Wrap(err, "load .env")
	}
	return nil
}

// Path picks the config file: the flag value wins over the environment.
func Path(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(EnvPath)
}

// Load returns the defaults overridden by the file at path. An empty path
// yields the defaults. Unknown variables are logged and skipped.
func Load(path string) (Config, error) {
	return LoadOver(Default(), path)
}

// LoadOver is Load with base in place of the defaults, so presets chosen
// on the command line still yield to keys set in the file.
func LoadOver(base Config, path string) (Config, error) {
	cfg := base
	if path == "" {
		return cfg, nil
	}
	err := gcfg.ReadFileInto(&cfg, path)
	if fatal := gcfg.FatalOnly(err); fatal != nil {
		return cfg, errors.Wrapf(fatal, "read config %s", path)
	}
	if err != nil {
		slog.Warn("config: ignored entries", "path", path, "err", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Validate rejects settings that would make the animation diverge or
// divide by zero.
func (c Config) Validate() error {
	f, k := c.Field, c.Card
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return errors.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	case f.Layout == field.Grid && f.Spacing <= 0:
		return errors.New("field spacing must be positive")
	case f.Layout == field.Scatter && f.AreaDivisor <= 0:
		return errors.New("field areadivisor must be positive")
	case f.GlowRadius >= f.ForceRadius:
		return errors.Errorf("field glowradius %v must be below forceradius %v", f.GlowRadius, f.ForceRadius)
	case f.RippleDecay <= 0 || f.RippleDecay >= 1:
		return errors.Errorf("field rippledecay %v must be in (0, 1)", f.RippleDecay)
	case f.Damping <= 0 || f.Damping > 1:
		return errors.Errorf("field damping %v must be in (0, 1]", f.Damping)
	case f.Leash < 0:
		return errors.Errorf("field leash %v must not be negative", f.Leash)
	case k.Perimeter <= 0:
		return errors.New("card perimeter must be positive")
	case k.Smoothing <= 0 || k.Smoothing > 1:
		return errors.Errorf("card smoothing %v must be in (0, 1]", k.Smoothing)
	}
	return nil
}

const Example = `# Every key is optional; missing keys keep their defaults.

[window]
width = 1280
height = 720
background = "#09090b"
seed = 1

[field]
# grid | scatter
layout = scatter
# attract | repel
interaction = attract
color = "#ffffff"
cap = 35
areadivisor = 30000
forceradius = 120
glowradius = 80
spring = 0.0008
damping = 0.99
# 0 disables; the grid layout uses 20
leash = 0
links = true
wrap = true
reducedmotion = false

[card]
# lap | timer
mode = lap
idlespeed = 0.12
fastspeed = 2.5
smoothing = 0.02
hardcancelonoutsideclick = false
hideidleline = false

[theme]
accent = "#8cb3ff"

[sound]
enabled = false
volume = 0.15
`

// SetupLogging installs a text slog handler on stderr as the default
// logger. debug lowers the level to Debug.
func SetupLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
