package fireworks

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/gekko3d/fireworks/burstrt/rt/core"
)

// FireworksModule owns the burst display: it loads the sprite bank, launches
// a burst per click (and optionally on a timer) and keeps resolution in sync.
// Install it after the logger, time, input and renderer modules.
type FireworksModule struct {
	SpritePaths   []string
	Duration      time.Duration
	Seed          uint64 // zero seeds from the clock
	LaunchOnStart int
	AutoInterval  time.Duration
}

func NewFireworksModule() *FireworksModule {
	return &FireworksModule{
		SpritePaths:   core.DefaultSpritePaths(),
		Duration:      core.DefaultBurstDuration,
		LaunchOnStart: 1,
	}
}

// Fireworks is the resource systems use to reach the display.
type Fireworks struct {
	Display *core.Display
	Bank    *core.TextureBank
	Seed    uint64
	Spawned int
	Failed  int

	logger        Logger
	pendingStart  int
	autoInterval  time.Duration
	sinceAutoFire time.Duration
}

func (mod FireworksModule) Install(app *App, cmd *Commands) {
	ctx := requireRenderContext(app, "FireworksModule")
	logger := app.Logger()

	paths := mod.SpritePaths
	if len(paths) == 0 {
		paths = core.DefaultSpritePaths()
	}
	bank, err := core.LoadTextureBank(core.DecodeSprite, paths)
	if err != nil {
		panic(fmt.Errorf("fireworks: %w", err))
	}

	seed := mod.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	display := core.NewDisplay(ctx, bank, rng, core.DisplayConfig{
		Duration: mod.Duration,
		Logger:   logger,
	})

	cmd.AddResources(&Fireworks{
		Display:      display,
		Bank:         bank,
		Seed:         seed,
		logger:       logger,
		pendingStart: mod.LaunchOnStart,
		autoInterval: mod.AutoInterval,
	})

	app.UseSystem(
		System(fireworksResizeSystem).
			InStage(PreUpdate),
	)
	app.UseSystem(
		System(fireworksLaunchSystem).
			InStage(Update),
	)
	installBurstLifecycle(app)

	logger.Infof("Fireworks ready: %d sprites, seed %d, burst duration %s", bank.Len(), seed, display.Duration())
}

// Launch spawns one random burst, logging instead of failing the frame.
func (fw *Fireworks) Launch() *core.Burst {
	b, err := fw.Display.SpawnRandom()
	if err != nil {
		fw.Failed++
		fw.logger.Errorf("launch burst: %v", err)
		return nil
	}
	fw.Spawned++
	fw.logger.Debugf("burst %s: %d particles at %v", b.ID, b.Spec.ParticleCount, b.Spec.SpawnPosition)
	return b
}

func fireworksResizeSystem(input *Input, fw *Fireworks) {
	if !input.Resized {
		return
	}
	fw.Display.Resize(input.ViewportWidth, input.ViewportHeight, input.PixelRatio)
}

func fireworksLaunchSystem(input *Input, t *Time, fw *Fireworks) {
	for ; fw.pendingStart > 0; fw.pendingStart-- {
		fw.Launch()
	}
	for i := 0; i < input.Clicks; i++ {
		fw.Launch()
	}

	if fw.autoInterval <= 0 {
		return
	}
	fw.sinceAutoFire += t.Dt
	for fw.sinceAutoFire >= fw.autoInterval {
		fw.sinceAutoFire -= fw.autoInterval
		fw.Launch()
	}
}
