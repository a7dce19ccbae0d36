package core

import (
	"errors"
	"testing"
)

// constSource returns the same draw forever.
type constSource struct {
	v float64
}

func (c constSource) Float64() float64 { return c.v }
func (c constSource) IntN(n int) int   { return int(c.v * float64(n)) }

// seqSource replays draws in order and wraps around.
type seqSource struct {
	draws []float64
	i     int
}

func (s *seqSource) Float64() float64 {
	v := s.draws[s.i%len(s.draws)]
	s.i++
	return v
}

type fakeGeometry struct {
	count    int
	disposed int
}

func (g *fakeGeometry) Count() int { return g.count }
func (g *fakeGeometry) Dispose()   { g.disposed++ }

type fakeProgram struct {
	desc     ProgramDesc
	disposed int
}

func (p *fakeProgram) Dispose() { p.disposed++ }

type fakeResources struct {
	geometries []*fakeGeometry
	programs   []*fakeProgram
	programErr error
}

func (f *fakeResources) NewGeometry(attrs ParticleAttributes) (Geometry, error) {
	g := &fakeGeometry{count: attrs.Len()}
	f.geometries = append(f.geometries, g)
	return g, nil
}

func (f *fakeResources) NewProgram(desc ProgramDesc) (Program, error) {
	if f.programErr != nil {
		return nil, f.programErr
	}
	p := &fakeProgram{desc: desc}
	f.programs = append(f.programs, p)
	return p, nil
}

func newTestContext() (*RenderContext, *Scene, *fakeResources) {
	scene := NewScene()
	res := &fakeResources{}
	ctx := NewRenderContext(scene, res, nil)
	ctx.SetResolution(800, 600, 2)
	return ctx, scene, res
}

func testSprite() TextureHandle {
	bank, err := LoadTextureBank(DecodeSprite, []string{BuiltinSpritePrefix + "soft"})
	if err != nil {
		panic(err)
	}
	h, _ := bank.Get(0)
	return h
}

// requirePanicsWith fails unless fn panics with an error wrapping target.
func requirePanicsWith(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic wrapping %v, got none", target)
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, target) {
			t.Fatalf("expected panic wrapping %v, got %v", target, r)
		}
	}()
	fn()
}
