package core

import (
	"fmt"

	"github.com/google/uuid"
)

// Burst is one firework explosion. It is attached to the scene from Build until
// the launcher tears it down; a torn-down burst is never revived.
type Burst struct {
	ID         uuid.UUID
	Spec       BurstSpec
	Attributes ParticleAttributes

	ctx        *RenderContext
	renderable *Renderable
	handle     *OwnedResource
	attached   bool
	launched   bool
}

// Build realises a spec into geometry and shader state and attaches it to the scene.
func Build(ctx *RenderContext, spec BurstSpec, attrs ParticleAttributes, sprite TextureHandle) (*Burst, error) {
	id := uuid.New()

	geometry, err := ctx.Resources.NewGeometry(attrs)
	if err != nil {
		return nil, fmt.Errorf("burst %s geometry: %w", id, err)
	}

	uniforms := &Uniforms{
		Size:       spec.PointSize,
		Resolution: ctx.Resolution,
		Sprite:     sprite,
		Color:      spec.Color,
		Progress:   0,
	}
	program, err := ctx.Resources.NewProgram(burstProgramDesc("burst "+id.String(), uniforms))
	if err != nil {
		geometry.Dispose()
		return nil, fmt.Errorf("burst %s program: %w", id, err)
	}

	b := &Burst{
		ID:         id,
		Spec:       spec,
		Attributes: attrs,
		ctx:        ctx,
		renderable: &Renderable{
			ID:       id,
			Origin:   spec.SpawnPosition,
			Geometry: geometry,
			Program:  program,
			Uniforms: uniforms,
		},
	}
	b.handle = NewOwnedResource("burst "+id.String(), b.teardown)

	ctx.Scene.Attach(b.renderable)
	b.attached = true
	return b, nil
}

func (b *Burst) Renderable() *Renderable {
	return b.renderable
}

func (b *Burst) Uniforms() *Uniforms {
	return b.renderable.Uniforms
}

func (b *Burst) Progress() float32 {
	return b.renderable.Uniforms.Progress
}

func (b *Burst) Attached() bool {
	return b.attached
}

func (b *Burst) SetResolution(width, height float32) {
	b.renderable.Uniforms.Resolution[0] = width
	b.renderable.Uniforms.Resolution[1] = height
}

// teardown runs once, through the owned handle.
func (b *Burst) teardown() {
	b.ctx.Scene.Detach(b.renderable)
	b.renderable.Geometry.Dispose()
	b.renderable.Program.Dispose()
	b.attached = false
}
