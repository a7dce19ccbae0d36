package fireworks

import (
	"fmt"

	burstapp "github.com/gekko3d/fireworks/burstrt/rt/app"
	"github.com/gekko3d/fireworks/burstrt/rt/core"

	"github.com/cogentcore/webgpu/wgpu"
)

// ClientModule is the WebGPU renderer. It needs a WindowState, so install
// PlatformWindowModule and InputModule before it.
type ClientModule struct {
	ClearColor *wgpu.Color
	ReportFPS  bool
}

type clientState struct {
	rt        *burstapp.App
	logger    Logger
	reportFPS bool
	lastFPS   int
}

func (mod ClientModule) Install(app *App, cmd *Commands) {
	ensureSingleRenderer(app, RendererWGPU)

	ws, ok := Resource[WindowState](app)
	if !ok {
		panic("ClientModule needs PlatformWindowModule installed before it")
	}

	scene := core.NewScene()
	rt := burstapp.NewApp(ws.windowGlfw, scene)
	if mod.ClearColor != nil {
		rt.ClearColor = *mod.ClearColor
	}
	if err := rt.Init(); err != nil {
		panic(fmt.Errorf("init wgpu: %w", err))
	}
	cmd.OnShutdown(rt.Release)

	logger := app.Logger()
	ctx := core.NewRenderContext(scene, rt.Backend, logger)
	ctx.SetResolution(ws.WindowWidth, ws.WindowHeight, 1)

	cmd.AddResources(ctx, &clientState{
		rt:        rt,
		logger:    logger,
		reportFPS: mod.ReportFPS,
	})

	app.UseSystem(
		System(clientResizeSystem).
			InStage(PreUpdate),
	)
	app.UseSystem(
		System(clientRenderSystem).
			InStage(Render),
	)
	logger.Infof("Renderer selected: %s (%v)", RendererWGPU, rt.Config.Format)
}

func clientResizeSystem(input *Input, state *clientState) {
	if !input.Resized {
		return
	}
	state.rt.Resize(input.DevicePixels())
}

func clientRenderSystem(state *clientState) {
	if err := state.rt.Render(); err != nil {
		state.logger.Errorf("render: %v", err)
		return
	}
	if state.reportFPS {
		fps := int(state.rt.FPS)
		if fps != state.lastFPS {
			state.lastFPS = fps
			state.logger.Debugf("renderer fps: %d, bursts: %d", fps, state.rt.Scene.Len())
		}
	}
}
