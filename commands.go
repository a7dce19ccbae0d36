package fireworks

type Commands struct {
	app *App
}

func (cmd *Commands) AddResources(resources ...any) *Commands {
	cmd.app.addResources(resources...)
	return cmd
}

// Exit stops the app after the current frame.
func (cmd *Commands) Exit() {
	cmd.app.exit()
}

// OnShutdown registers fn to run when Run returns. Later registrations run first.
func (cmd *Commands) OnShutdown(fn func()) *Commands {
	cmd.app.addCleanup(fn)
	return cmd
}
