package paint

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHex(t *testing.T) {
	c, err := Hex("#ffffff")
	require.NoError(t, err)
	assert.Equal(t, White, c)

	_, err = Hex("not-a-colour")
	assert.Error(t, err)
}

func TestNRGBAClamps(t *testing.T) {
	c := Color{R: 2, G: -1, B: 0.5, A: 1.5}.NRGBA()
	assert.Equal(t, uint8(255), c.R)
	assert.Equal(t, uint8(0), c.G)
	assert.Equal(t, uint8(128), c.B)
	assert.Equal(t, uint8(255), c.A)
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 100, H: 50}
	assert.True(t, r.Contains(10, 10))
	assert.True(t, r.Contains(110, 60))
	assert.False(t, r.Contains(111, 30))
	assert.False(t, Rect{}.Contains(0, 0), "unmeasured rect contains nothing")
}

func TestRectScaleKeepsCentre(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 100, H: 40}
	s := r.Scale(0.98)
	cx, cy := s.Center()
	assert.InDelta(t, 50, cx, 1e-9)
	assert.InDelta(t, 20, cy, 1e-9)
	assert.InDelta(t, 98, s.W, 1e-9)
}

func TestRoundRectOutlineClosed(t *testing.T) {
	pts := RoundRectOutline(Rect{X: 0, Y: 0, W: 200, H: 100}, 16, 4)
	require.NotEmpty(t, pts)
	assert.Equal(t, pts[0], pts[len(pts)-1])
	for _, p := range pts {
		assert.True(t, p.X >= -1e-9 && p.X <= 200+1e-9)
		assert.True(t, p.Y >= -1e-9 && p.Y <= 100+1e-9)
	}
}

func TestFadeAlpha(t *testing.T) {
	assert.InDelta(t, 0, FadeAlpha(0), 1e-12)
	assert.InDelta(t, 1, FadeAlpha(0.5), 1e-12)
	assert.InDelta(t, 0, FadeAlpha(1), 1e-12)
	assert.False(t, math.IsNaN(FadeAlpha(2)))
}
