package fireworks

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gekko3d/fireworks/burstrt/rt/core"
	"github.com/gekko3d/fireworks/burstrt/rt/headless"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHeadlessApp(t *testing.T, step time.Duration, fw *FireworksModule, frames int) *App {
	t.Helper()
	app := NewApp().UseModules(
		TimeModule{FixedStep: step},
		HeadlessModule{Width: 800, Height: 600, Frames: frames},
		fw,
	)
	app.build()
	return app
}

func mustResource[T any](t *testing.T, app *App) *T {
	t.Helper()
	res, ok := Resource[T](app)
	require.True(t, ok)
	return res
}

func TestFireworks_BurstLivesForItsDuration(t *testing.T) {
	mod := NewFireworksModule()
	mod.Seed = 7
	mod.Duration = time.Second
	app := newHeadlessApp(t, 100*time.Millisecond, mod, 0)

	fw := mustResource[Fireworks](t, app)
	stats := mustResource[HeadlessStats](t, app)
	backend := mustResource[headless.Backend](t, app)

	require.True(t, app.Step())
	require.Len(t, fw.Display.Live(), 1)
	burst := fw.Display.Live()[0]
	assert.InDelta(t, 0.1, burst.Progress(), 1e-6)
	assert.Equal(t, 1, stats.Last.Bursts)
	assert.Equal(t, burst.Spec.ParticleCount, stats.Last.Particles)

	for i := 0; i < 8; i++ {
		app.Step()
	}
	require.Len(t, fw.Display.Live(), 1)
	assert.True(t, burst.Attached())

	app.Step()
	assert.Empty(t, fw.Display.Live())
	assert.False(t, burst.Attached())
	assert.Equal(t, 0, stats.Last.Bursts)

	geometries, programs := backend.Allocated()
	assert.Zero(t, geometries)
	assert.Zero(t, programs)
	assert.Equal(t, 1, fw.Spawned)
}

func TestFireworks_ClickLaunchesBursts(t *testing.T) {
	mod := NewFireworksModule()
	mod.Seed = 1
	mod.LaunchOnStart = 0
	app := newHeadlessApp(t, 10*time.Millisecond, mod, 0)

	fw := mustResource[Fireworks](t, app)
	input := mustResource[Input](t, app)

	app.Step()
	assert.Empty(t, fw.Display.Live())

	input.Clicks = 2
	app.Step()
	assert.Len(t, fw.Display.Live(), 2)
	assert.Zero(t, input.Clicks, "clicks are consumed at the end of the frame")

	app.Step()
	assert.Len(t, fw.Display.Live(), 2)
}

func TestFireworks_AutoInterval(t *testing.T) {
	mod := NewFireworksModule()
	mod.Seed = 3
	mod.LaunchOnStart = 0
	mod.AutoInterval = 250 * time.Millisecond
	app := newHeadlessApp(t, 100*time.Millisecond, mod, 0)

	fw := mustResource[Fireworks](t, app)
	for i := 0; i < 8; i++ {
		app.Step()
	}
	assert.Equal(t, 3, fw.Spawned)
	assert.Len(t, fw.Display.Live(), 3)
}

func TestFireworks_ResizeReachesLiveBursts(t *testing.T) {
	mod := NewFireworksModule()
	mod.Seed = 5
	app := newHeadlessApp(t, 10*time.Millisecond, mod, 0)

	fw := mustResource[Fireworks](t, app)
	input := mustResource[Input](t, app)
	ctx := mustResource[core.RenderContext](t, app)

	app.Step()
	assert.Equal(t, mgl32.Vec2{800, 600}, ctx.Resolution)

	input.SetViewport(1000, 500, 2)
	app.Step()

	assert.Equal(t, mgl32.Vec2{2000, 1000}, ctx.Resolution)
	for _, b := range fw.Display.Live() {
		assert.Equal(t, mgl32.Vec2{2000, 1000}, b.Uniforms().Resolution)
	}
	assert.False(t, input.Resized)
}

func TestFireworks_SameSeedSameBursts(t *testing.T) {
	run := func() core.BurstSpec {
		mod := NewFireworksModule()
		mod.Seed = 42
		app := newHeadlessApp(t, 10*time.Millisecond, mod, 0)
		app.Step()
		fw := mustResource[Fireworks](t, app)
		require.Len(t, fw.Display.Live(), 1)
		return fw.Display.Live()[0].Spec
	}

	assert.Equal(t, run(), run())
}

func TestFireworks_HeadlessRunStopsAfterFrames(t *testing.T) {
	mod := NewFireworksModule()
	mod.Seed = 9
	mod.AutoInterval = 100 * time.Millisecond
	app := newHeadlessApp(t, 50*time.Millisecond, mod, 40)

	app.Run()

	stats := mustResource[HeadlessStats](t, app)
	assert.Equal(t, 40, stats.Frames)
	assert.Greater(t, stats.Peak.Visible, 0)
	assert.LessOrEqual(t, stats.Peak.MaxExtent, float32(core.MaxRadius+0.2)+1e-4)
}

func TestFireworks_MissingSpritePanics(t *testing.T) {
	mod := NewFireworksModule()
	mod.SpritePaths = []string{filepath.Join(t.TempDir(), "missing.png")}
	app := NewApp().UseModules(HeadlessModule{}, mod)

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	}()
	app.build()
}

func TestFireworks_NeedsRenderer(t *testing.T) {
	app := NewApp().UseModules(TimeModule{}, NewFireworksModule())

	assert.Panics(t, func() { app.build() })
}
