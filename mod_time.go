package fireworks

import (
	"time"
)

// Time is the frame clock. With FixedStep set, every frame advances by
// exactly that amount regardless of wall time.
type Time struct {
	Time      time.Time
	Dt        time.Duration
	FixedStep time.Duration
}

type TimeModule struct {
	FixedStep time.Duration
}

func (mod TimeModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(&Time{
		Time:      time.Now(),
		Dt:        0,
		FixedStep: mod.FixedStep,
	})
	app.UseSystem(
		System(timeSystem).
			InStage(Prelude),
	)
}

func timeSystem(timeResource *Time) {
	if timeResource.FixedStep > 0 {
		timeResource.Dt = timeResource.FixedStep
		timeResource.Time = timeResource.Time.Add(timeResource.FixedStep)
		return
	}

	now := time.Now()

	timeResource.Dt = now.Sub(timeResource.Time)
	timeResource.Time = now
}
