package fireworks

// installBurstLifecycle ticks every live burst's progress once per frame.
// Bursts that reach full progress release their GPU resources inside the tick.
func installBurstLifecycle(app *App) {
	app.UseSystem(
		System(burstLifecycleSystem).
			InStage(PostUpdate),
	)
}

func burstLifecycleSystem(t *Time, fw *Fireworks) {
	if t.Dt <= 0 {
		return
	}
	fw.Display.Advance(t.Dt)
}
