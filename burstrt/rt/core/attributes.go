package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// RandomSource yields uniform draws in [0,1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// ParticleAttributes holds the per-particle vertex inputs of one burst.
// All three slices have the same length; index i describes the same particle.
type ParticleAttributes struct {
	Offsets     []mgl32.Vec3
	SizeFactors []float32 // [0,1)
	TimeFactors []float32 // [1,2)
}

func (a ParticleAttributes) Len() int {
	return len(a.Offsets)
}

func (a ParticleAttributes) Empty() bool {
	return len(a.Offsets) == 0
}

// GenerateAttributes samples count particles on a hollow sphere shell of the given radius.
// Particles sit between 75% and 100% of the radius. The polar angle is drawn uniformly
// over [0,PI), so density is higher near the poles.
// A non-positive count or radius yields empty attributes.
func GenerateAttributes(rng RandomSource, count int, radius float32) ParticleAttributes {
	if count <= 0 || radius <= 0 {
		return ParticleAttributes{}
	}

	attrs := ParticleAttributes{
		Offsets:     make([]mgl32.Vec3, count),
		SizeFactors: make([]float32, count),
		TimeFactors: make([]float32, count),
	}

	for i := 0; i < count; i++ {
		r := float64(radius) * (0.75 + rng.Float64()*0.25)
		phi := rng.Float64() * math.Pi
		theta := rng.Float64() * 2 * math.Pi
		attrs.Offsets[i] = sphericalToCartesian(r, phi, theta)

		attrs.SizeFactors[i] = below(float32(rng.Float64()), 1)
		attrs.TimeFactors[i] = below(float32(1+rng.Float64()), 2)
	}
	return attrs
}

// sphericalToCartesian uses phi as the polar angle from +Y and theta as the azimuth
// around Y, measured from +Z.
func sphericalToCartesian(r, phi, theta float64) mgl32.Vec3 {
	sinPhi := math.Sin(phi)
	return mgl32.Vec3{
		float32(r * sinPhi * math.Sin(theta)),
		float32(r * math.Cos(phi)),
		float32(r * sinPhi * math.Cos(theta)),
	}
}

// below keeps v strictly under limit after float32 rounding.
func below(v, limit float32) float32 {
	if v >= limit {
		return math.Nextafter32(limit, 0)
	}
	return v
}
