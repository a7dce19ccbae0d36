package core

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// Renderable is one drawable point cloud: geometry + program + uniform bindings.
type Renderable struct {
	ID       uuid.UUID
	Origin   mgl32.Vec3
	Geometry Geometry
	Program  Program
	Uniforms *Uniforms
}

// Scene keeps attached renderables in attach order.
type Scene struct {
	renderables []*Renderable
}

func NewScene() *Scene {
	return &Scene{}
}

func (s *Scene) Attach(r *Renderable) {
	if s.index(r) >= 0 {
		panic(fmt.Sprintf("renderable %s is already attached", r.ID))
	}
	s.renderables = append(s.renderables, r)
}

func (s *Scene) Detach(r *Renderable) {
	i := s.index(r)
	if i < 0 {
		panic(fmt.Sprintf("renderable %s is not attached", r.ID))
	}
	copy(s.renderables[i:], s.renderables[i+1:])
	s.renderables[len(s.renderables)-1] = nil
	s.renderables = s.renderables[:len(s.renderables)-1]
}

// Renderables returns the attached renderables. The slice must not be modified.
func (s *Scene) Renderables() []*Renderable {
	return s.renderables
}

func (s *Scene) Len() int {
	return len(s.renderables)
}

func (s *Scene) index(r *Renderable) int {
	for i, o := range s.renderables {
		if o == r {
			return i
		}
	}
	return -1
}
