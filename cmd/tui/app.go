package tui

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/awesome-gocui/gocui"
	"github.com/ostclient/ost/cmd/events"
	"github.com/ostclient/ost/cmd/tui/component"
	"github.com/ostclient/ost/cmd/tui/controllers"
	"github.com/ostclient/ost/cmd/tui/helpers"
	"github.com/ostclient/ost/cmd/tui/layout"
	"github.com/ostclient/ost/cmd/tui/presentation"
	"github.com/ostclient/ost/cmd/tui/render"
	"github.com/ostclient/ost/cmd/tui/state"
	"github.com/ostclient/ost/cmd/tui/types"
	"github.com/ostclient/ost/pkg/logcapture"
	"github.com/ostclient/ost/pkg/logging"
)

type App struct {
	gui     *gocui.Gui
	helpers *helpers.Helpers
	config  *helpers.Config
	palette presentation.Palette
	logger  logging.Logger

	// Event bus for command-level communication
	commandEventBus *events.CommandEventBus

	composeState *state.ComposeState
	debugState   *state.DebugLogState
	uiState      *state.UIState

	layoutManager *layout.LayoutManager

	headerComponent     *component.HeaderComponent
	sidebarComponent    *component.SidebarComponent
	messagesComponent   *component.MessagesComponent
	composeComponent    *component.ComposeComponent
	debugComponent      *component.DebugLogComponent
	statusComponent     *component.StatusComponent
	helpComponent       *component.HelpComponent
	helpFooterComponent *component.HelpFooterComponent

	chatController  *controllers.ChatController
	debugController *controllers.DebugController
	helpController  *controllers.HelpController

	done      chan struct{}
	closeOnce sync.Once
}

func NewApp(
	gui *gocui.Gui,
	logBuffer *logcapture.LogBuffer,
	h *helpers.Helpers,
	commandEventBus *events.CommandEventBus,
) (*App, error) {
	config := h.Config.GetConfig()
	logger := logging.NewComponentLogger("tui")

	theme, err := presentation.ResolveTheme(config.Theme, h.Config.ThemesDir())
	if err != nil {
		logging.LogError(logger, "failed to load theme, using default", err, "theme", config.Theme)
	}
	palette := presentation.NewPalette(theme)

	app := &App{
		gui:             gui,
		helpers:         h,
		config:          config,
		palette:         palette,
		logger:          logger,
		commandEventBus: commandEventBus,
		composeState:    state.NewComposeState(),
		debugState:      state.NewDebugLogState(logBuffer),
		uiState:         state.NewUIState(config.Channel),
		done:            make(chan struct{}),
	}

	gui.Cursor = true
	gui.FrameColor = palette.Muted

	app.layoutManager = layout.NewLayoutManager(
		layout.NewDefaultLayoutConfig(component.ComposeHeight, config.DebugPaneHeight),
	)
	app.setupComponents(config)

	app.chatController = controllers.NewChatController(app, app.uiState, h.Config, commandEventBus)
	app.debugController = controllers.NewDebugController(app.debugState, app.uiState, h.Clipboard)
	app.helpController = controllers.NewHelpController(app.uiState)

	if config.ShowDebugOnStart {
		app.debugState.SetVisible(true)
	}

	// SetManagerFunc drops existing keybindings, so it goes first.
	gui.SetManagerFunc(app.layout)
	if err := app.setupKeybindings(); err != nil {
		return nil, fmt.Errorf("failed to set up keybindings: %w", err)
	}

	return app, nil
}

func (app *App) setupComponents(config *helpers.Config) {
	app.headerComponent = component.NewHeaderComponent(app.palette, config.UserName)
	app.sidebarComponent = component.NewSidebarComponent(app.uiState, app.palette)
	app.messagesComponent = component.NewMessagesComponent(app.uiState, app.palette)
	app.composeComponent = component.NewComposeComponent(app.composeState, app.uiState, app.palette)
	app.debugComponent = component.NewDebugLogComponent(app.debugState, app.palette)
	app.statusComponent = component.NewStatusComponent(app.uiState, app.palette)
	app.helpComponent = component.NewHelpComponent(app.palette)
	app.helpFooterComponent = component.NewHelpFooterComponent(app.palette)

	app.composeComponent.SetEditor(app.editor(component.NewComposeEditor(app.composeState)))
	app.sidebarComponent.SetEditor(app.editor(nil))
	app.messagesComponent.SetEditor(app.editor(nil))
	app.helpComponent.SetEditor(app.editor(nil))

	app.layoutManager.SetComponent(layout.WindowHeader, app.headerComponent)
	app.layoutManager.SetComponent(layout.WindowSidebar, app.sidebarComponent)
	app.layoutManager.SetComponent(layout.WindowMessages, app.messagesComponent)
	app.layoutManager.SetComponent(layout.WindowCompose, app.composeComponent)
	app.layoutManager.SetComponent(layout.WindowDebug, app.debugComponent)
	app.layoutManager.SetComponent(layout.WindowStatus, app.statusComponent)
}

// PostUIUpdate runs fn on the UI loop before the next frame.
func (app *App) PostUIUpdate(fn func()) {
	app.gui.Update(func(*gocui.Gui) error {
		fn()
		return nil
	})
}

// Run drives the gui main loop until the user quits or ctx is cancelled. A
// panic inside the loop restores the terminal before it propagates.
func (app *App) Run(ctx context.Context) error {
	defer func() {
		if r := recover(); r != nil {
			app.shutdown()
			panic(r)
		}
	}()

	go app.tick(app.config.RefreshInterval())
	go func() {
		select {
		case <-ctx.Done():
			app.Quit()
		case <-app.done:
		}
	}()

	app.logger.Info("tui started", "channel", app.uiState.Channel())
	err := app.gui.MainLoop()
	app.logger.Info("tui stopped")
	app.shutdown()

	if errors.Is(err, gocui.ErrQuit) {
		return nil
	}
	return err
}

// tick redraws at the refresh interval so new log lines reach the debug pane.
func (app *App) tick(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			app.gui.Update(func(*gocui.Gui) error { return nil })
		case <-app.done:
			return
		}
	}
}

// Quit asks the main loop to stop. It is safe to call from any goroutine.
func (app *App) Quit() {
	select {
	case <-app.done:
		return
	default:
	}
	app.gui.Update(func(*gocui.Gui) error {
		return app.quit()
	})
}

func (app *App) quit() error {
	app.uiState.Quit()
	return gocui.ErrQuit
}

func (app *App) shutdown() {
	app.closeOnce.Do(func() {
		close(app.done)
		app.chatController.Close()
		app.gui.Close()
	})
}

// layout is the gui manager. It runs before every frame: captured log lines
// are drained first so the debug pane shows everything logged up to now.
func (app *App) layout(g *gocui.Gui) error {
	width, height := g.Size()
	return app.arrange(g, width, height)
}

func (app *App) arrange(g *gocui.Gui, width, height int) error {
	app.debugState.Refresh()

	if err := app.layoutManager.Layout(g, width, height, app.debugState.Visible()); err != nil {
		return err
	}
	if err := app.layoutHelp(g, render.NewRect(0, 0, width, height)); err != nil {
		return err
	}
	app.focusCurrentView(g)
	return nil
}

// layoutHelp places the help overlay above every pane while it is open.
func (app *App) layoutHelp(g *gocui.Gui, screen render.Rect) error {
	help := app.helpComponent.GetViewName()
	footer := app.helpFooterComponent.GetViewName()
	if !app.uiState.HelpVisible() {
		if err := layout.RemoveWindow(g, footer); err != nil {
			return err
		}
		return layout.RemoveWindow(g, help)
	}

	popup := app.helpComponent.PopupRect(screen)
	if err := app.placeOnTop(g, app.helpComponent, popup); err != nil {
		return err
	}
	return app.placeOnTop(g, app.helpFooterComponent, app.helpFooterComponent.FooterRect(popup))
}

func (app *App) placeOnTop(g *gocui.Gui, c types.Component, rect render.Rect) error {
	if err := layout.PlaceWindow(g, c, rect); err != nil {
		return err
	}
	if _, err := g.SetViewOnTop(c.GetViewName()); err != nil && !errors.Is(err, gocui.ErrUnknownView) {
		return err
	}
	return nil
}

// focusCurrentView hands the keyboard to the help overlay or the focused
// pane. The cursor is only shown while typing into the compose box.
func (app *App) focusCurrentView(g *gocui.Gui) {
	name := app.focusedViewName()
	if _, err := g.SetCurrentView(name); err != nil {
		// The sidebar is dropped on narrow screens.
		_, _ = g.SetCurrentView(app.messagesComponent.GetViewName())
	}
	g.Cursor = app.composeComponent.Focused()
}

func (app *App) focusedViewName() string {
	if app.uiState.HelpVisible() {
		return app.helpComponent.GetViewName()
	}
	switch app.uiState.Focused() {
	case state.PaneSidebar:
		return app.sidebarComponent.GetViewName()
	case state.PaneMessages:
		return app.messagesComponent.GetViewName()
	default:
		return app.composeComponent.GetViewName()
	}
}

// debugPageSize is the number of log rows visible inside the debug pane border.
func (app *App) debugPageSize() int {
	return app.layoutManager.GetConfig().DebugHeight - 2
}
