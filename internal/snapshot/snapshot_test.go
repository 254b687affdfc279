package snapshot

import (
	"context"
	"image"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PiyushKingg/yushen/internal/config"
	"github.com/PiyushKingg/yushen/internal/loop"
	"github.com/PiyushKingg/yushen/internal/paint"
)

var _ paint.Canvas = (*Canvas)(nil)

func alphaAt(img image.Image, x, y int) uint32 {
	_, _, _, a := img.At(x, y).RGBA()
	return a
}

func TestCanvasResizeScalesBacking(t *testing.T) {
	c := NewCanvas(100, 50, 2)
	w, h := c.Size()
	assert.Equal(t, 100, w)
	assert.Equal(t, 50, h)
	b := c.Image().Bounds()
	assert.Equal(t, 200, b.Dx())
	assert.Equal(t, 100, b.Dy())

	c.Resize(0, -3, 0)
	w, h = c.Size()
	assert.Equal(t, 1, w)
	assert.Equal(t, 1, h)
}

func TestCanvasFillCircle(t *testing.T) {
	c := NewCanvas(40, 40, 1)
	c.Clear()
	assert.Zero(t, alphaAt(c.Image(), 20, 20))

	c.FillCircle(20, 20, 6, paint.White)
	img := c.Image()
	assert.NotZero(t, alphaAt(img, 20, 20))
	assert.Zero(t, alphaAt(img, 2, 2))
}

func TestCanvasClearUsesBackground(t *testing.T) {
	c := NewCanvas(10, 10, 1)
	c.FillCircle(5, 5, 4, paint.White)
	c.Background = paint.Color{R: 0, G: 0, B: 1, A: 1}
	c.Clear()
	r, _, b, a := c.Image().At(5, 5).RGBA()
	assert.Zero(t, r)
	assert.NotZero(t, b)
	assert.NotZero(t, a)
}

func TestOverlayKeepsPixels(t *testing.T) {
	c := NewCanvas(20, 20, 1)
	c.FillCircle(10, 10, 5, paint.White)
	paint.Overlay(c).Clear()
	assert.NotZero(t, alphaAt(c.Image(), 10, 10))
}

func TestOrbitClicks(t *testing.T) {
	s := Orbit(800, 600, 10)
	assert.Len(t, s(0), 1)
	assert.Len(t, s(3), 1)
	evs := s(10)
	require.Len(t, evs, 4)
	assert.Equal(t, loop.PointerMove, evs[0].Kind)
	assert.Equal(t, loop.Click, evs[3].Kind)
	assert.Equal(t, evs[0].X, evs[3].X)
}

func TestRenderWritesFrames(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	paths, err := Render(context.Background(), cfg, Options{
		Width: 320, Height: 240, DPR: 1,
		Frames: 10, Every: 4, Dir: dir,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "frame-0000.png"),
		filepath.Join(dir, "frame-0004.png"),
		filepath.Join(dir, "frame-0008.png"),
		filepath.Join(dir, "frame-0009.png"),
	}, paths)
	for _, p := range paths {
		assert.FileExists(t, p)
	}
}

func TestRenderRejectsBadOptions(t *testing.T) {
	_, err := Render(context.Background(), config.Default(), Options{Width: 0, Height: 10, Frames: 1, Dir: t.TempDir()})
	assert.ErrorContains(t, err, "must be positive")
	_, err = Render(context.Background(), config.Default(), Options{Width: 10, Height: 10, Dir: t.TempDir()})
	assert.ErrorContains(t, err, "frame count")
}

func TestRenderStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	paths, err := Render(ctx, config.Default(), Options{Width: 64, Height: 64, Frames: 5, Dir: t.TempDir()})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, paths)
}

func TestWritePNG(t *testing.T) {
	c := NewCanvas(16, 16, 1)
	c.FillCircle(8, 8, 4, paint.White)
	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, WritePNG(c.Image(), path))
	assert.FileExists(t, path)
}
