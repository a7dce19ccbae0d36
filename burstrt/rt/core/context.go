package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

// SceneHost draws renderables while they are attached.
type SceneHost interface {
	Attach(r *Renderable)
	Detach(r *Renderable)
}

// Geometry is the GPU-resident vertex data of one burst.
type Geometry interface {
	Count() int
	Dispose()
}

// Program is the GPU-resident shader state of one burst.
type Program interface {
	Dispose()
}

// ResourceFactory allocates burst resources on a rendering backend.
type ResourceFactory interface {
	NewGeometry(attrs ParticleAttributes) (Geometry, error)
	NewProgram(desc ProgramDesc) (Program, error)
}

// RenderContext is owned by the application for its whole lifetime and passed
// to every component that attaches to the scene or reads the resolution.
type RenderContext struct {
	Scene      SceneHost
	Resources  ResourceFactory
	Resolution mgl32.Vec2
	Logger     Logger
}

func NewRenderContext(scene SceneHost, resources ResourceFactory, logger Logger) *RenderContext {
	return &RenderContext{
		Scene:      scene,
		Resources:  resources,
		Resolution: mgl32.Vec2{1, 1},
		Logger:     orNop(logger),
	}
}

// SetResolution stores the viewport size in device pixels.
func (c *RenderContext) SetResolution(width, height int, pixelRatio float32) {
	if pixelRatio <= 0 {
		pixelRatio = 1
	}
	c.Resolution = mgl32.Vec2{
		max(float32(width)*pixelRatio, 1),
		max(float32(height)*pixelRatio, 1),
	}
}
