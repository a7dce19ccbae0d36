package fireworks

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInput_SetViewport(t *testing.T) {
	input := &Input{}

	input.SetViewport(640, 480, 2)
	assert.True(t, input.Resized)
	w, h := input.DevicePixels()
	assert.Equal(t, 1280, w)
	assert.Equal(t, 960, h)

	inputResetSystem(input)
	input.SetViewport(640, 480, 2)
	assert.False(t, input.Resized, "same size is not a resize")
}

func TestInput_DevicePixelsDefaultsRatio(t *testing.T) {
	input := &Input{ViewportWidth: 300, ViewportHeight: 200}
	w, h := input.DevicePixels()
	assert.Equal(t, 300, w)
	assert.Equal(t, 200, h)
}

func TestInputResetSystem(t *testing.T) {
	input := &Input{Clicks: 3, Resized: true, MouseDown: true}
	inputResetSystem(input)
	assert.Zero(t, input.Clicks)
	assert.False(t, input.Resized)
	assert.True(t, input.MouseDown, "button state carries across frames")
}
