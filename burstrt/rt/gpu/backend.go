package gpu

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/gekko3d/fireworks/burstrt/rt/core"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// PointGeometry is the per-burst instance buffer.
type PointGeometry struct {
	Buffer *wgpu.Buffer
	count  int
}

func (g *PointGeometry) Count() int { return g.count }

func (g *PointGeometry) Dispose() {
	if g.Buffer != nil {
		g.Buffer.Release()
		g.Buffer = nil
	}
}

// BurstProgram is the per-burst uniform buffer and bind group.
// The pipeline and sprite texture are shared and owned by the Backend.
type BurstProgram struct {
	Uniforms  *core.Uniforms
	pipe      *burstPipeline
	buffer    *wgpu.Buffer
	bindGroup *wgpu.BindGroup
	staging   []float32
}

func (p *BurstProgram) Dispose() {
	if p.bindGroup != nil {
		p.bindGroup.Release()
		p.bindGroup = nil
	}
	if p.buffer != nil {
		p.buffer.Release()
		p.buffer = nil
	}
}

type pipelineKey struct {
	vertex, fragment string
	blend            core.BlendMode
}

// burstPipeline pairs a pipeline with the camera bind group built from its layout.
type burstPipeline struct {
	pipeline *wgpu.RenderPipeline
	cameraBG *wgpu.BindGroup
}

type spriteTexture struct {
	texture *wgpu.Texture
	view    *wgpu.TextureView
}

// Backend is the WebGPU core.ResourceFactory and burst draw pass.
type Backend struct {
	Device *wgpu.Device
	Queue  *wgpu.Queue
	Format wgpu.TextureFormat

	cameraBuf *wgpu.Buffer
	sampler   *wgpu.Sampler

	pipelines map[pipelineKey]*burstPipeline
	sprites   map[uuid.UUID]*spriteTexture
}

func NewBackend(device *wgpu.Device, format wgpu.TextureFormat) (*Backend, error) {
	b := &Backend{
		Device:    device,
		Queue:     device.GetQueue(),
		Format:    format,
		pipelines: make(map[pipelineKey]*burstPipeline),
		sprites:   make(map[uuid.UUID]*spriteTexture),
	}

	var err error
	b.cameraBuf, err = device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "BurstCameraBuffer",
		Size:  cameraUniformSize,
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("camera buffer: %w", err)
	}

	b.sampler, err = device.CreateSampler(&wgpu.SamplerDescriptor{
		AddressModeU:  wgpu.AddressModeClampToEdge,
		AddressModeV:  wgpu.AddressModeClampToEdge,
		AddressModeW:  wgpu.AddressModeClampToEdge,
		MinFilter:     wgpu.FilterModeLinear,
		MagFilter:     wgpu.FilterModeLinear,
		LodMaxClamp:   1.,
		MaxAnisotropy: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("sprite sampler: %w", err)
	}
	return b, nil
}

func (b *Backend) NewGeometry(attrs core.ParticleAttributes) (core.Geometry, error) {
	g := &PointGeometry{count: attrs.Len()}
	if attrs.Empty() {
		return g, nil
	}

	data := float32Bytes(packInstances(attrs))
	buf, err := b.Device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "BurstInstanceBuffer",
		Size:  uint64(len(data)),
		Usage: wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, err
	}
	b.Queue.WriteBuffer(buf, 0, data)
	g.Buffer = buf
	return g, nil
}

func (b *Backend) NewProgram(desc core.ProgramDesc) (core.Program, error) {
	if desc.Uniforms == nil {
		return nil, fmt.Errorf("program %q: no uniforms", desc.Label)
	}

	pipe, err := b.pipelineFor(desc)
	if err != nil {
		return nil, err
	}
	sprite, err := b.spriteView(desc.Uniforms.Sprite)
	if err != nil {
		return nil, err
	}

	buf, err := b.Device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: desc.Label,
		Size:  burstUniformSize,
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, err
	}

	bg, err := b.Device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  desc.Label,
		Layout: pipe.pipeline.GetBindGroupLayout(1),
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, Buffer: buf, Size: burstUniformSize},
			{Binding: 1, TextureView: sprite},
			{Binding: 2, Sampler: b.sampler},
		},
	})
	if err != nil {
		buf.Release()
		return nil, err
	}

	return &BurstProgram{
		Uniforms:  desc.Uniforms,
		pipe:      pipe,
		buffer:    buf,
		bindGroup: bg,
		staging:   make([]float32, 0, burstUniformFloats),
	}, nil
}

func (b *Backend) pipelineFor(desc core.ProgramDesc) (*burstPipeline, error) {
	key := pipelineKey{vertex: desc.VertexSource, fragment: desc.FragmentSource, blend: desc.Blend}
	if p, ok := b.pipelines[key]; ok {
		return p, nil
	}

	vs, err := b.Device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "BurstVertex",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: desc.VertexSource},
	})
	if err != nil {
		return nil, fmt.Errorf("burst vertex stage: %w", err)
	}
	defer vs.Release()

	fs, err := b.Device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "BurstFragment",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: desc.FragmentSource},
	})
	if err != nil {
		return nil, fmt.Errorf("burst fragment stage: %w", err)
	}
	defer fs.Release()

	pipeline, err := b.Device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label: "BurstPipeline",
		Vertex: wgpu.VertexState{
			Module:     vs,
			EntryPoint: desc.VertexEntry,
			Buffers: []wgpu.VertexBufferLayout{
				{
					ArrayStride: instanceStride,
					StepMode:    wgpu.VertexStepModeInstance,
					Attributes: []wgpu.VertexAttribute{
						{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
						{Format: wgpu.VertexFormatFloat32, Offset: 12, ShaderLocation: 1},
						{Format: wgpu.VertexFormatFloat32, Offset: 16, ShaderLocation: 2},
					},
				},
			},
		},
		Fragment: &wgpu.FragmentState{
			Module:     fs,
			EntryPoint: desc.FragmentEntry,
			Targets: []wgpu.ColorTargetState{
				{
					Format:    b.Format,
					WriteMask: wgpu.ColorWriteMaskAll,
					Blend:     blendState(desc.Blend),
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		DepthStencil: nil,
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("burst pipeline: %w", err)
	}

	cameraBG, err := b.Device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "BurstCameraBG",
		Layout: pipeline.GetBindGroupLayout(0),
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, Buffer: b.cameraBuf, Size: cameraUniformSize},
		},
	})
	if err != nil {
		pipeline.Release()
		return nil, fmt.Errorf("camera bind group: %w", err)
	}

	p := &burstPipeline{pipeline: pipeline, cameraBG: cameraBG}
	b.pipelines[key] = p
	return p, nil
}

// blendState expects premultiplied fragment output.
func blendState(mode core.BlendMode) *wgpu.BlendState {
	dst := wgpu.BlendFactorOne
	if mode == core.BlendAlpha {
		dst = wgpu.BlendFactorOneMinusSrcAlpha
	}
	return &wgpu.BlendState{
		Color: wgpu.BlendComponent{
			Operation: wgpu.BlendOperationAdd,
			SrcFactor: wgpu.BlendFactorOne,
			DstFactor: dst,
		},
		Alpha: wgpu.BlendComponent{
			Operation: wgpu.BlendOperationAdd,
			SrcFactor: wgpu.BlendFactorOne,
			DstFactor: dst,
		},
	}
}

// spriteView uploads a sprite on first use; later bursts share the view.
func (b *Backend) spriteView(h core.TextureHandle) (*wgpu.TextureView, error) {
	if s, ok := b.sprites[h.ID]; ok {
		return s.view, nil
	}
	if !h.Valid() || h.Width == 0 || h.Height == 0 {
		return nil, fmt.Errorf("sprite %q is not loaded", h.Path)
	}

	size := wgpu.Extent3D{Width: h.Width, Height: h.Height, DepthOrArrayLayers: 1}
	tex, err := b.Device.CreateTexture(&wgpu.TextureDescriptor{
		Label:         h.Path,
		Size:          size,
		Format:        wgpu.TextureFormatRGBA8Unorm,
		Usage:         wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst,
		Dimension:     wgpu.TextureDimension2D,
		MipLevelCount: 1,
		SampleCount:   1,
	})
	if err != nil {
		return nil, fmt.Errorf("sprite %q texture: %w", h.Path, err)
	}
	b.Queue.WriteTexture(tex.AsImageCopy(), h.Texels, &wgpu.TextureDataLayout{
		Offset:       0,
		BytesPerRow:  4 * h.Width,
		RowsPerImage: h.Height,
	}, &size)

	view, err := tex.CreateView(nil)
	if err != nil {
		tex.Release()
		return nil, fmt.Errorf("sprite %q view: %w", h.Path, err)
	}
	b.sprites[h.ID] = &spriteTexture{texture: tex, view: view}
	return view, nil
}

// UpdateCamera uploads the matrices used by every burst this frame.
func (b *Backend) UpdateCamera(view, proj mgl32.Mat4) {
	b.Queue.WriteBuffer(b.cameraBuf, 0, float32Bytes(packCamera(view, proj)))
}

// Draw records every attached burst into the pass.
func (b *Backend) Draw(pass *wgpu.RenderPassEncoder, scene *core.Scene) {
	for _, r := range scene.Renderables() {
		geo, ok := r.Geometry.(*PointGeometry)
		if !ok || geo.Buffer == nil {
			continue
		}
		prog, ok := r.Program.(*BurstProgram)
		if !ok || prog.bindGroup == nil {
			continue
		}

		prog.staging = packBurstUniforms(prog.staging, prog.Uniforms, r.Origin)
		b.Queue.WriteBuffer(prog.buffer, 0, float32Bytes(prog.staging))

		pass.SetPipeline(prog.pipe.pipeline)
		pass.SetBindGroup(0, prog.pipe.cameraBG, nil)
		pass.SetBindGroup(1, prog.bindGroup, nil)
		pass.SetVertexBuffer(0, geo.Buffer, 0, geo.Buffer.GetSize())
		pass.Draw(6, uint32(geo.count), 0, 0)
	}
}

// Release frees shared GPU state. Burst resources are released by their owners.
func (b *Backend) Release() {
	for id, s := range b.sprites {
		s.view.Release()
		s.texture.Release()
		delete(b.sprites, id)
	}
	for k, p := range b.pipelines {
		p.cameraBG.Release()
		p.pipeline.Release()
		delete(b.pipelines, k)
	}
	if b.sampler != nil {
		b.sampler.Release()
	}
	if b.cameraBuf != nil {
		b.cameraBuf.Release()
	}
}
