package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetSizeDropsTextOnWidthChange(t *testing.T) {
	s := NewSurface()
	assert.False(t, s.setSize(0, 50, 1))

	s.text["stale"] = nil
	assert.True(t, s.setSize(100, 50, 1))
	assert.Empty(t, s.text)
	assert.Equal(t, 100, s.w)

	s.text["hello"] = nil
	assert.True(t, s.setSize(100, 80, 1), "no image yet, so still allocates")
	assert.Len(t, s.text, 1, "height-only change keeps cached text")

	assert.True(t, s.setSize(100, 80, 2))
	assert.Empty(t, s.text, "scale change drops cached text")

	s.text["hello"] = nil
	assert.True(t, s.setSize(120, 80, 2))
	assert.Empty(t, s.text)
	assert.Equal(t, 2.0, s.dpr)
}

func TestSetSizeDefaultsScale(t *testing.T) {
	s := NewSurface()
	assert.True(t, s.setSize(10, 10, 0))
	assert.Equal(t, 1.0, s.dpr)
}
