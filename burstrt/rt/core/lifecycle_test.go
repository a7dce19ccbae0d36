package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureDriver records scheduled tweens without running them.
type captureDriver struct {
	targets []*float32
	tweens  []Tween
}

func (d *captureDriver) Schedule(target *float32, tw Tween) {
	d.targets = append(d.targets, target)
	d.tweens = append(d.tweens, tw)
}

func buildTestBurst(t *testing.T, ctx *RenderContext) *Burst {
	t.Helper()
	b, err := Build(ctx, testSpec(), GenerateAttributes(constSource{0.5}, 20, 1), testSprite())
	require.NoError(t, err)
	return b
}

func TestLauncher_SchedulesLinearTweenToOne(t *testing.T) {
	ctx, _, _ := newTestContext()
	b := buildTestBurst(t, ctx)
	d := &captureDriver{}

	NewLauncher(d, nil).Launch(b, DefaultBurstDuration)

	require.Len(t, d.tweens, 1)
	assert.Same(t, &b.Uniforms().Progress, d.targets[0])
	assert.Equal(t, float32(1), d.tweens[0].To)
	assert.Equal(t, 3*time.Second, d.tweens[0].Duration)
	assert.Equal(t, 0.25, d.tweens[0].Ease(0.25))
	assert.Equal(t, float32(0), b.Progress())
}

func TestLauncher_TeardownOnCompletion(t *testing.T) {
	ctx, scene, res := newTestContext()
	sched := NewTweenScheduler()
	l := NewLauncher(sched, nil)
	b := buildTestBurst(t, ctx)

	var torn []*Burst
	l.OnTeardown = func(b *Burst) { torn = append(torn, b) }

	l.Launch(b, 3*time.Second)
	assert.Equal(t, float32(0), b.Progress())
	assert.Len(t, l.Live(), 1)

	sched.Advance(1500 * time.Millisecond)
	assert.InDelta(t, 0.5, b.Progress(), 1e-6)
	assert.True(t, b.Attached())
	assert.Empty(t, torn)

	sched.Advance(1500 * time.Millisecond)
	assert.Equal(t, float32(1), b.Progress())
	assert.False(t, b.Attached())
	assert.Equal(t, []*Burst{b}, torn)
	assert.Equal(t, 0, scene.Len())
	assert.Empty(t, l.Live())
	assert.Equal(t, 1, res.geometries[0].disposed)
	assert.Equal(t, 1, res.programs[0].disposed)

	sched.Advance(3 * time.Second)
	assert.Len(t, torn, 1)
	assert.Equal(t, 1, res.geometries[0].disposed)
}

func TestLauncher_SecondCompletionIsFatal(t *testing.T) {
	ctx, _, res := newTestContext()
	d := &captureDriver{}
	b := buildTestBurst(t, ctx)

	NewLauncher(d, nil).Launch(b, time.Second)
	d.tweens[0].OnComplete()

	requirePanicsWith(t, ErrDoubleRelease, d.tweens[0].OnComplete)
	assert.Equal(t, 1, res.geometries[0].disposed)
	assert.Equal(t, 1, res.programs[0].disposed)
}

func TestLauncher_LaunchTwiceIsFatal(t *testing.T) {
	ctx, _, _ := newTestContext()
	l := NewLauncher(&captureDriver{}, nil)
	b := buildTestBurst(t, ctx)

	l.Launch(b, time.Second)
	requirePanicsWith(t, ErrAlreadyLaunched, func() { l.Launch(b, time.Second) })
}

func TestLauncher_LaunchDeadBurstIsFatal(t *testing.T) {
	ctx, _, _ := newTestContext()
	d := &captureDriver{}
	l := NewLauncher(d, nil)
	b := buildTestBurst(t, ctx)

	l.Launch(b, time.Second)
	d.tweens[0].OnComplete()

	requirePanicsWith(t, ErrBurstDead, func() { l.Launch(b, time.Second) })
}

func TestLauncher_BurstsAreIndependent(t *testing.T) {
	ctx, scene, _ := newTestContext()
	sched := NewTweenScheduler()
	l := NewLauncher(sched, nil)

	first := buildTestBurst(t, ctx)
	l.Launch(first, 2*time.Second)
	sched.Advance(time.Second)

	second := buildTestBurst(t, ctx)
	l.Launch(second, 2*time.Second)
	sched.Advance(time.Second)

	assert.False(t, first.Attached())
	assert.True(t, second.Attached())
	assert.InDelta(t, 0.5, second.Progress(), 1e-6)
	assert.Equal(t, []*Burst{second}, l.Live())
	assert.Equal(t, 1, scene.Len())
}
