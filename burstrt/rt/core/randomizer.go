package core

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	MinParticleCount = 400
	MaxParticleCount = 1400

	MinPointSize = 0.1
	MaxPointSize = 0.2

	MinRadius = 0.5
	MaxRadius = 1.5

	burstSaturation = 1.0
	burstLightness  = 0.7
)

// Rand is the random source used for burst parameters. *rand.Rand satisfies it.
type Rand interface {
	RandomSource
	IntN(n int) int
}

// BurstSpec describes one firework before it is realised into geometry.
type BurstSpec struct {
	ParticleCount int
	SpawnPosition mgl32.Vec3
	PointSize     float32
	SpriteIndex   int
	Radius        float32
	Color         mgl32.Vec3 // linear-ish RGB in [0,1]
}

// Dud reports whether the spec produces no visible particles.
func (s BurstSpec) Dud() bool {
	return s.ParticleCount <= 0 || s.Radius <= 0
}

// Randomizer picks parameters for spontaneous bursts.
type Randomizer struct {
	rng         Rand
	spriteCount int
}

func NewRandomizer(rng Rand, spriteCount int) *Randomizer {
	return &Randomizer{rng: rng, spriteCount: spriteCount}
}

func (r *Randomizer) Randomize() BurstSpec {
	spec := BurstSpec{
		ParticleCount: MinParticleCount + r.rng.IntN(MaxParticleCount-MinParticleCount+1),
		SpawnPosition: mgl32.Vec3{
			float32(r.rng.Float64()*2 - 1),
			float32(r.rng.Float64()),
			float32(r.rng.Float64()*2 - 1),
		},
		PointSize: float32(MinPointSize + r.rng.Float64()*(MaxPointSize-MinPointSize)),
	}
	if r.spriteCount > 0 {
		spec.SpriteIndex = r.rng.IntN(r.spriteCount)
	}
	spec.Radius = float32(MinRadius + r.rng.Float64()*(MaxRadius-MinRadius))

	c := colorful.Hsl(r.rng.Float64()*360, burstSaturation, burstLightness).Clamped()
	spec.Color = mgl32.Vec3{float32(c.R), float32(c.G), float32(c.B)}
	return spec
}
