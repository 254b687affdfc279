package game

import (
	"fmt"
	"strings"
	"time"
)

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// hud is the one-line status shown in debug mode or after an error.
type hud struct {
	fps       float64
	frames    int64
	particles int
	// field viewport in logical pixels and simulation clock
	w, h  float64
	clock float64
	// pointer as the field last saw it
	px, py  float64
	pointer bool
	uptime  time.Duration
	reduced bool
	err     error
}

func (h hud) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%.0f fps | frame %d | %d particles | %.0fx%.0f | t=%.1f | %s",
		h.fps, h.frames, h.particles, h.w, h.h, h.clock, formatDuration(h.uptime))
	if h.pointer {
		fmt.Fprintf(&b, " | pointer %.0f,%.0f", h.px, h.py)
	}
	if h.reduced {
		b.WriteString(" | reduced motion")
	}
	if h.err != nil {
		b.WriteString(" | Error: " + h.err.Error())
	}
	return b.String()
}
