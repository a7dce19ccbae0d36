// Package headless renders bursts on the CPU. It backs runs without a GPU and
// integration tests, and tracks every allocation so leaks are visible.
package headless

import (
	"fmt"

	"github.com/gekko3d/fireworks/burstrt/rt/core"
	"github.com/go-gl/mathgl/mgl32"
)

type Geometry struct {
	attrs    core.ParticleAttributes
	backend  *Backend
	disposed bool
}

func (g *Geometry) Count() int { return g.attrs.Len() }

func (g *Geometry) Dispose() {
	if g.disposed {
		panic("headless: geometry disposed twice")
	}
	g.disposed = true
	g.backend.geometries--
}

type Program struct {
	Uniforms *core.Uniforms
	backend  *Backend
	disposed bool
}

func (p *Program) Dispose() {
	if p.disposed {
		panic("headless: program disposed twice")
	}
	p.disposed = true
	p.backend.programs--
}

// Backend is a core.ResourceFactory that keeps everything in memory.
type Backend struct {
	geometries int
	programs   int
}

func NewBackend() *Backend {
	return &Backend{}
}

func (b *Backend) NewGeometry(attrs core.ParticleAttributes) (core.Geometry, error) {
	if len(attrs.SizeFactors) != attrs.Len() || len(attrs.TimeFactors) != attrs.Len() {
		return nil, fmt.Errorf("headless: attribute lengths differ: %d/%d/%d",
			attrs.Len(), len(attrs.SizeFactors), len(attrs.TimeFactors))
	}
	b.geometries++
	return &Geometry{attrs: attrs, backend: b}, nil
}

func (b *Backend) NewProgram(desc core.ProgramDesc) (core.Program, error) {
	if desc.Uniforms == nil {
		return nil, fmt.Errorf("headless: program %q has no uniforms", desc.Label)
	}
	if !desc.Uniforms.Sprite.Valid() {
		return nil, fmt.Errorf("headless: program %q has no sprite", desc.Label)
	}
	b.programs++
	return &Program{Uniforms: desc.Uniforms, backend: b}, nil
}

// Allocated reports live geometries and programs.
func (b *Backend) Allocated() (geometries, programs int) {
	return b.geometries, b.programs
}

type FrameStats struct {
	Bursts    int
	Particles int
	Visible   int
	MaxExtent float32 // furthest visible particle from its burst origin
}

func (s FrameStats) String() string {
	return fmt.Sprintf("bursts=%d particles=%d visible=%d extent=%.3f", s.Bursts, s.Particles, s.Visible, s.MaxExtent)
}

// Frame evaluates every attached burst the way the vertex stage does.
func (b *Backend) Frame(scene *core.Scene) FrameStats {
	var stats FrameStats
	for _, r := range scene.Renderables() {
		geo, ok := r.Geometry.(*Geometry)
		if !ok {
			continue
		}
		stats.Bursts++
		stats.Particles += geo.Count()

		progress := r.Uniforms.Progress
		for i, off := range geo.attrs.Offsets {
			st := core.EvaluateParticle(off, geo.attrs.TimeFactors[i], progress)
			if st.Opacity <= 0 || st.SizeScale*geo.attrs.SizeFactors[i] <= 0 {
				continue
			}
			stats.Visible++
			stats.MaxExtent = max(stats.MaxExtent, extent(st.Offset))
		}
	}
	return stats
}

func extent(v mgl32.Vec3) float32 {
	return v.Len()
}
