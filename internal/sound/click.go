// Package sound plays a short tone when the page is clicked.
package sound

import (
	"log/slog"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/pkg/errors"

	"github.com/PiyushKingg/yushen/internal/config"
)

// Clicker synthesises and plays the click tone.
type Clicker struct {
	sr     beep.SampleRate
	freq   float64
	dur    time.Duration
	volume float64
	open   bool
}

func NewClicker(cfg config.Sound) *Clicker {
	sr := cfg.SampleRate
	if sr <= 0 {
		sr = config.SoundSampleRate
	}
	return &Clicker{
		sr:     beep.SampleRate(sr),
		freq:   cfg.Frequency,
		dur:    time.Duration(cfg.Duration * float64(time.Second)),
		volume: cfg.Volume,
	}
}

// Open initialises the speaker. Until it succeeds Click is a no-op.
func (c *Clicker) Open() error {
	if c.open {
		return nil
	}
	if err := speaker.Init(c.sr, c.sr.N(time.Second/20)); err != nil {
		return errors.Wrap(err, "init speaker")
	}
	c.open = true
	slog.Info("sound: speaker ready", "rate", int(c.sr))
	return nil
}

// Click plays one tone without blocking.
func (c *Clicker) Click() {
	if !c.open {
		return
	}
	speaker.Play(c.Tone())
}

// Close stops any tone still playing.
func (c *Clicker) Close() {
	if !c.open {
		return
	}
	speaker.Clear()
}

// Tone returns a sine blip with an exponential decay envelope.
func (c *Clicker) Tone() beep.Streamer {
	total := c.sr.N(c.dur)
	step := 2 * math.Pi * c.freq / float64(c.sr)
	i := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if i >= total {
			return 0, false
		}
		n := 0
		for n < len(samples) && i < total {
			env := math.Exp(-5 * float64(i) / float64(total))
			v := c.volume * env * math.Sin(step*float64(i))
			samples[n][0], samples[n][1] = v, v
			n++
			i++
		}
		return n, true
	})
}
