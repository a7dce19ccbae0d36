package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Fall distance applied to every particle by the end of its local animation.
const burstFall = 0.2

// ParticleState is the shader's view of one particle at a given burst progress.
// It mirrors burst_vertex.wgsl and is used for CPU rendering and checks.
type ParticleState struct {
	Offset    mgl32.Vec3
	SizeScale float32
	Opacity   float32
}

// LocalProgress is the particle's own time-remapped progress.
func LocalProgress(progress, timeFactor float32) float32 {
	return clamp32(progress*timeFactor, 0, 1)
}

func EvaluateParticle(offset mgl32.Vec3, timeFactor, progress float32) ParticleState {
	local := LocalProgress(progress, timeFactor)

	expand := easeOutCubic(clamp32(remap(local, 0, 0.1, 0, 1), 0, 1))
	pos := offset.Mul(expand)
	fall := easeOutCubic(clamp32(remap(local, 0.1, 1, 0, 1), 0, 1))
	pos[1] -= fall * burstFall

	opening := remap(local, 0, 0.125, 0, 1)
	closing := remap(local, 0.125, 1, 1, 0)
	size := clamp32(min(opening, closing), 0, 1)
	twinkleProgress := clamp32(remap(local, 0.2, 0.8, 0, 1), 0, 1)
	twinkle := 1 - (float32(math.Sin(float64(local)*30))*0.5+0.5)*twinkleProgress

	return ParticleState{
		Offset:    pos,
		SizeScale: size * twinkle,
		Opacity:   1 - local,
	}
}

func remap(v, inLo, inHi, outLo, outHi float32) float32 {
	return outLo + (v-inLo)*(outHi-outLo)/(inHi-inLo)
}

func easeOutCubic(t float32) float32 {
	u := 1 - t
	return 1 - u*u*u
}

func clamp32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
