package fireworks

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Input is the per-frame view of the window the burst display cares about:
// clicks and viewport size. Headless runs get a static one.
type Input struct {
	MouseDown bool
	Clicks    int

	// Viewport size in window coordinates; device pixels are size * PixelRatio.
	ViewportWidth, ViewportHeight int
	PixelRatio                    float32
	Resized                       bool
}

// SetViewport records a new viewport size and flags the change.
func (input *Input) SetViewport(width, height int, pixelRatio float32) {
	if width == input.ViewportWidth && height == input.ViewportHeight && pixelRatio == input.PixelRatio {
		return
	}
	input.ViewportWidth = width
	input.ViewportHeight = height
	input.PixelRatio = pixelRatio
	input.Resized = true
}

// DevicePixels is the framebuffer size implied by the viewport.
func (input *Input) DevicePixels() (int, int) {
	ratio := input.PixelRatio
	if ratio <= 0 {
		ratio = 1
	}
	return int(float32(input.ViewportWidth) * ratio), int(float32(input.ViewportHeight) * ratio)
}

type InputModule struct{}

func (mod InputModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(&Input{})
	app.UseSystem(
		System(inputSystem).
			InStage(PreUpdate),
	)
	app.UseSystem(
		System(inputResetSystem).
			InStage(Finale),
	)
}

func inputSystem(s *WindowState, input *Input, cmd *Commands) {
	glfw.PollEvents()

	win := s.windowGlfw
	if win.ShouldClose() || win.GetKey(glfw.KeyEscape) == glfw.Press {
		cmd.Exit()
	}

	down := win.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press
	if down && !input.MouseDown {
		input.Clicks++
	}
	input.MouseDown = down

	fbW, _ := win.GetFramebufferSize()
	s.WindowWidth, s.WindowHeight = win.GetSize()
	ratio := float32(1)
	if s.WindowWidth > 0 {
		ratio = float32(fbW) / float32(s.WindowWidth)
	}
	input.SetViewport(s.WindowWidth, s.WindowHeight, ratio)
}

// inputResetSystem clears per-frame edges once every stage has seen them.
func inputResetSystem(input *Input) {
	input.Clicks = 0
	input.Resized = false
}
