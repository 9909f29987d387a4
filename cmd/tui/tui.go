package tui

import "context"

type TUI struct {
	app *App
}

func New(app *App) *TUI {
	return &TUI{app: app}
}

// Start runs the application until the user quits or ctx is cancelled.
func (t *TUI) Start(ctx context.Context) error {
	return t.app.Run(ctx)
}

func (t *TUI) Stop() {
	t.app.Quit()
}
