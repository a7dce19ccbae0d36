package fireworks

import (
	"fmt"
	"reflect"

	"github.com/gekko3d/fireworks/burstrt/rt/core"
)

// RendererName identifies a concrete renderer module.
type RendererName string

const (
	RendererWGPU     RendererName = "wgpu"
	RendererHeadless RendererName = "headless"
)

// RendererTag marks that a renderer has been installed into the App.
type RendererTag struct {
	Name RendererName
}

// ensureSingleRenderer panics if a different renderer is already installed.
// Installing the same renderer twice is a no-op.
func ensureSingleRenderer(app *App, name RendererName) {
	if app == nil {
		panic("ensureSingleRenderer: app is nil")
	}
	t := reflect.TypeOf((*RendererTag)(nil)).Elem()
	if res, ok := app.resources[t]; ok {
		if tag, ok2 := res.(*RendererTag); ok2 {
			if tag.Name != name {
				app.Logger().Errorf("Multiple renderers installed: %s and %s", tag.Name, name)
				panic(fmt.Sprintf("Multiple renderers installed: %s and %s", tag.Name, name))
			}
			return
		}
		panic("RendererTag resource present with unexpected type")
	}
	app.addResources(&RendererTag{Name: name})
}

// requireRenderContext fetches the render context a renderer module installed.
func requireRenderContext(app *App, who string) *core.RenderContext {
	ctx, ok := Resource[core.RenderContext](app)
	if !ok {
		panic(fmt.Sprintf("%s needs a renderer module (ClientModule or HeadlessModule) installed before it", who))
	}
	return ctx
}
