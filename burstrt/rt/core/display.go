package core

import (
	"time"
)

type DisplayConfig struct {
	Duration time.Duration
	Logger   Logger
}

// Display wires randomizer, attribute generator, builder and launcher together.
type Display struct {
	ctx        *RenderContext
	bank       *TextureBank
	rng        Rand
	randomizer *Randomizer
	scheduler  *TweenScheduler
	launcher   *Launcher
	duration   time.Duration
	logger     Logger
}

func NewDisplay(ctx *RenderContext, bank *TextureBank, rng Rand, cfg DisplayConfig) *Display {
	if cfg.Duration <= 0 {
		cfg.Duration = DefaultBurstDuration
	}
	logger := orNop(cfg.Logger)
	scheduler := NewTweenScheduler()
	return &Display{
		ctx:        ctx,
		bank:       bank,
		rng:        rng,
		randomizer: NewRandomizer(rng, bank.Len()),
		scheduler:  scheduler,
		launcher:   NewLauncher(scheduler, logger),
		duration:   cfg.Duration,
		logger:     logger,
	}
}

// Spawn builds and launches a burst. A dud spec still yields a burst with no particles.
func (d *Display) Spawn(spec BurstSpec) (*Burst, error) {
	sprite, err := d.bank.Get(spec.SpriteIndex)
	if err != nil {
		return nil, err
	}
	if spec.Dud() {
		d.logger.Warnf("dud burst: %d particles, radius %.2f", spec.ParticleCount, spec.Radius)
	}

	attrs := GenerateAttributes(d.rng, spec.ParticleCount, spec.Radius)
	b, err := Build(d.ctx, spec, attrs, sprite)
	if err != nil {
		return nil, err
	}
	d.launcher.Launch(b, d.duration)
	return b, nil
}

func (d *Display) SpawnRandom() (*Burst, error) {
	return d.Spawn(d.randomizer.Randomize())
}

// Advance ticks every burst's progress tween.
func (d *Display) Advance(dt time.Duration) {
	d.scheduler.Advance(dt)
}

// Resize refreshes the resolution on the context and every live burst.
func (d *Display) Resize(width, height int, pixelRatio float32) {
	d.ctx.SetResolution(width, height, pixelRatio)
	for _, b := range d.launcher.Live() {
		b.SetResolution(d.ctx.Resolution.X(), d.ctx.Resolution.Y())
	}
}

func (d *Display) Duration() time.Duration {
	return d.duration
}

func (d *Display) Live() []*Burst {
	return d.launcher.Live()
}

func (d *Display) Launcher() *Launcher {
	return d.launcher
}

func (d *Display) Context() *RenderContext {
	return d.ctx
}
