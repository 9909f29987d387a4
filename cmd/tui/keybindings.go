package tui

import (
	"time"

	"github.com/awesome-gocui/gocui"
	"github.com/ostclient/ost/cmd/events"
	"github.com/ostclient/ost/cmd/tui/state"
	"github.com/ostclient/ost/cmd/tui/types"
)

func (app *App) setupKeybindings() error {
	for _, kb := range app.keybindings() {
		if err := app.gui.SetKeybinding(kb.View, kb.Key, kb.Mod, kb.Handler); err != nil {
			return err
		}
	}
	return nil
}

// keybindings lists every bound key. Keys without a binding reach the editor
// of the current view.
func (app *App) keybindings() []*types.KeyBinding {
	compose := app.composeComponent.GetViewName()
	newline := app.handler(app.composeState.InsertNewline)

	bindings := []*types.KeyBinding{
		{View: "", Key: gocui.KeyCtrlC, Mod: gocui.ModNone, Handler: app.quitOrDismissHelp},
		{View: "", Key: gocui.KeyCtrlD, Mod: gocui.ModNone, Handler: app.handler(app.debugController.ToggleDebugPanel)},
		{View: "", Key: gocui.KeyCtrlY, Mod: gocui.ModNone, Handler: app.handler(app.copyDebugLog)},
		{View: "", Key: gocui.KeyCtrlL, Mod: gocui.ModNone, Handler: app.handler(app.debugController.ClearDebugMessages)},
		{View: "", Key: gocui.KeyPgup, Mod: gocui.ModNone, Handler: app.handler(func() {
			app.debugController.PageUp(app.debugPageSize())
		})},
		{View: "", Key: gocui.KeyPgdn, Mod: gocui.ModNone, Handler: app.handler(func() {
			app.debugController.PageDown(app.debugPageSize())
		})},
		{View: "", Key: gocui.KeyTab, Mod: gocui.ModNone, Handler: app.handler(app.uiState.FocusNext)},
		{View: "", Key: gocui.KeyBacktab, Mod: gocui.ModNone, Handler: app.handler(app.uiState.FocusPrev)},

		{View: compose, Key: gocui.KeyEnter, Mod: gocui.ModNone, Handler: app.handler(app.sendCompose)},
		// gocui drops Ctrl from Ctrl+Enter, so Ctrl+J and Alt+Enter break lines.
		{View: compose, Key: gocui.KeyCtrlJ, Mod: gocui.ModNone, Handler: newline},
		{View: compose, Key: gocui.KeyEnter, Mod: gocui.ModAlt, Handler: newline},
		{View: compose, Key: gocui.KeyEsc, Mod: gocui.ModNone, Handler: app.focusPane(state.PaneMessages)},
		{View: compose, Key: gocui.KeyCtrlU, Mod: gocui.ModNone, Handler: app.handler(app.composeState.Clear)},
	}

	for _, view := range []string{app.sidebarComponent.GetViewName(), app.messagesComponent.GetViewName()} {
		bindings = append(bindings,
			&types.KeyBinding{View: view, Key: '?', Mod: gocui.ModNone, Handler: app.handler(app.helpController.ToggleHelp)},
			&types.KeyBinding{View: view, Key: 'q', Mod: gocui.ModNone, Handler: func(*gocui.Gui, *gocui.View) error {
				return app.handleKey(app.quit)
			}},
			&types.KeyBinding{View: view, Key: '1', Mod: gocui.ModNone, Handler: app.focusPane(state.PaneSidebar)},
			&types.KeyBinding{View: view, Key: '2', Mod: gocui.ModNone, Handler: app.focusPane(state.PaneMessages)},
			&types.KeyBinding{View: view, Key: '3', Mod: gocui.ModNone, Handler: app.focusPane(state.PaneCompose)},
			&types.KeyBinding{View: view, Key: gocui.KeyArrowLeft, Mod: gocui.ModNone, Handler: app.handler(app.uiState.FocusPrev)},
			&types.KeyBinding{View: view, Key: gocui.KeyArrowRight, Mod: gocui.ModNone, Handler: app.handler(app.uiState.FocusNext)},
		)
	}
	return bindings
}

// handleKey runs fn for one key press. Every key press clears the status
// message. While the help overlay is open the key only closes it.
func (app *App) handleKey(fn func() error) error {
	app.uiState.ClearStatus()
	if app.helpController.Dismiss() {
		return nil
	}
	return fn()
}

func (app *App) handler(fn func()) func(*gocui.Gui, *gocui.View) error {
	return func(*gocui.Gui, *gocui.View) error {
		return app.handleKey(func() error {
			fn()
			return nil
		})
	}
}

// editor routes the keys no binding claims through handleKey before inner
// sees them. A nil inner ignores them.
func (app *App) editor(inner gocui.Editor) gocui.Editor {
	return gocui.EditorFunc(func(v *gocui.View, key gocui.Key, ch rune, mod gocui.Modifier) {
		_ = app.handleKey(func() error {
			if inner != nil {
				inner.Edit(v, key, ch, mod)
			}
			return nil
		})
	})
}

// quitOrDismissHelp handles Ctrl+C. With the help overlay open it only
// closes the overlay, like any other key.
func (app *App) quitOrDismissHelp(*gocui.Gui, *gocui.View) error {
	if app.helpController.Dismiss() {
		app.uiState.ClearStatus()
		return nil
	}
	app.logger.Debug("quit requested", "key", "Ctrl+C")
	return app.quit()
}

func (app *App) focusPane(pane state.Pane) func(*gocui.Gui, *gocui.View) error {
	return app.handler(func() {
		app.uiState.SetFocused(pane)
	})
}

func (app *App) copyDebugLog() {
	if app.debugState.Visible() {
		app.debugController.CopyDebugMessages()
	}
}

func (app *App) sendCompose() {
	text, ok := app.composeState.Send()
	if !ok {
		return
	}
	app.chatController.SendMessage(events.UserInputEvent{
		Channel: app.uiState.Channel(),
		Text:    text,
		SentAt:  time.Now(),
	})
}
