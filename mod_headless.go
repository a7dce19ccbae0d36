package fireworks

import (
	"reflect"

	"github.com/gekko3d/fireworks/burstrt/rt/core"
	"github.com/gekko3d/fireworks/burstrt/rt/headless"
)

// HeadlessModule renders bursts on the CPU and exits after Frames frames
// (zero runs until something else calls Exit).
type HeadlessModule struct {
	Width, Height int
	PixelRatio    float32
	Frames        int
	ReportEvery   int
}

// HeadlessStats accumulates frame statistics of a headless run.
type HeadlessStats struct {
	Frames int
	Last   headless.FrameStats
	Peak   headless.FrameStats
}

type headlessState struct {
	backend     *headless.Backend
	scene       *core.Scene
	logger      Logger
	frames      int
	reportEvery int
}

func (mod HeadlessModule) Install(app *App, cmd *Commands) {
	ensureSingleRenderer(app, RendererHeadless)

	if mod.Width <= 0 {
		mod.Width = 1280
	}
	if mod.Height <= 0 {
		mod.Height = 720
	}
	if mod.PixelRatio <= 0 {
		mod.PixelRatio = 1
	}

	logger := app.Logger()
	backend := headless.NewBackend()
	scene := core.NewScene()
	ctx := core.NewRenderContext(scene, backend, logger)
	ctx.SetResolution(mod.Width, mod.Height, mod.PixelRatio)

	ownInput := !app.hasResource(reflect.TypeOf((*Input)(nil)).Elem())
	if ownInput {
		input := &Input{}
		input.SetViewport(mod.Width, mod.Height, mod.PixelRatio)
		input.Resized = false
		cmd.AddResources(input)
	}

	cmd.AddResources(ctx, backend, &HeadlessStats{}, &headlessState{
		backend:     backend,
		scene:       scene,
		logger:      logger,
		frames:      mod.Frames,
		reportEvery: mod.ReportEvery,
	})

	app.UseSystem(
		System(headlessFrameSystem).
			InStage(Render),
	)
	if ownInput {
		app.UseSystem(
			System(inputResetSystem).
				InStage(Finale),
		)
	}
	logger.Infof("Renderer selected: %s (%dx%d)", RendererHeadless, mod.Width, mod.Height)
}

func headlessFrameSystem(state *headlessState, stats *HeadlessStats, cmd *Commands) {
	frame := state.backend.Frame(state.scene)

	stats.Frames++
	stats.Last = frame
	if frame.Particles > stats.Peak.Particles {
		stats.Peak.Particles = frame.Particles
	}
	if frame.Bursts > stats.Peak.Bursts {
		stats.Peak.Bursts = frame.Bursts
	}
	if frame.Visible > stats.Peak.Visible {
		stats.Peak.Visible = frame.Visible
	}
	if frame.MaxExtent > stats.Peak.MaxExtent {
		stats.Peak.MaxExtent = frame.MaxExtent
	}

	if state.reportEvery > 0 && stats.Frames%state.reportEvery == 0 {
		state.logger.Infof("frame %d: %s", stats.Frames, frame)
	}
	if state.frames > 0 && stats.Frames >= state.frames {
		geometries, programs := state.backend.Allocated()
		state.logger.Infof("headless run done after %d frames, peak %s, still allocated %d/%d",
			stats.Frames, stats.Peak, geometries, programs)
		cmd.Exit()
	}
}
