package core

import (
	"github.com/gekko3d/fireworks/burstrt/rt/shaders"
	"github.com/go-gl/mathgl/mgl32"
)

type BlendMode int

const (
	BlendAdditive BlendMode = iota
	BlendAlpha
)

// Uniforms is the controllable shader state of one burst.
// Progress is the only field animated after construction.
type Uniforms struct {
	Size       float32
	Resolution mgl32.Vec2 // device pixels
	Sprite     TextureHandle
	Color      mgl32.Vec3
	Progress   float32
}

// ProgramDesc is what a ResourceFactory needs to build a burst program.
type ProgramDesc struct {
	Label          string
	VertexSource   string
	VertexEntry    string
	FragmentSource string
	FragmentEntry  string
	Uniforms       *Uniforms
	Blend          BlendMode
	DepthWrite     bool
}

func burstProgramDesc(label string, u *Uniforms) ProgramDesc {
	return ProgramDesc{
		Label:          label,
		VertexSource:   shaders.BurstVertexWGSL,
		VertexEntry:    shaders.BurstVertexEntry,
		FragmentSource: shaders.BurstFragmentWGSL,
		FragmentEntry:  shaders.BurstFragmentEntry,
		Uniforms:       u,
		Blend:          BlendAdditive,
		DepthWrite:     false,
	}
}
