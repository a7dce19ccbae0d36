package gpu

import (
	"unsafe"

	"github.com/gekko3d/fireworks/burstrt/rt/core"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// ParticleInstance layout: offset vec3, size factor, time factor.
	instanceFloats = 5
	instanceStride = instanceFloats * 4

	// struct Burst in burst_vertex.wgsl / burst_fragment.wgsl.
	burstUniformFloats = 12
	burstUniformSize   = burstUniformFloats * 4

	// struct Camera in burst_vertex.wgsl.
	cameraUniformFloats = 32
	cameraUniformSize   = cameraUniformFloats * 4
)

// packInstances interleaves particle attributes for the instance vertex buffer.
func packInstances(attrs core.ParticleAttributes) []float32 {
	out := make([]float32, 0, attrs.Len()*instanceFloats)
	for i, off := range attrs.Offsets {
		out = append(out, off[0], off[1], off[2], attrs.SizeFactors[i], attrs.TimeFactors[i])
	}
	return out
}

func packBurstUniforms(dst []float32, u *core.Uniforms, origin mgl32.Vec3) []float32 {
	dst = append(dst[:0],
		u.Color[0], u.Color[1], u.Color[2], 1,
		origin[0], origin[1], origin[2], 0,
		u.Resolution[0], u.Resolution[1],
		u.Size,
		u.Progress,
	)
	return dst
}

func packCamera(view, proj mgl32.Mat4) []float32 {
	out := make([]float32, 0, cameraUniformFloats)
	out = append(out, view[:]...)
	return append(out, proj[:]...)
}

func float32Bytes(data []float32) []byte {
	if len(data) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), len(data)*4)
}
