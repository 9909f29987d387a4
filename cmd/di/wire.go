//go:build wireinject

package di

import (
	"github.com/awesome-gocui/gocui"
	"github.com/google/wire"
	"github.com/ostclient/ost/cmd/events"
	"github.com/ostclient/ost/cmd/tui"
	"github.com/ostclient/ost/cmd/tui/helpers"
	"github.com/ostclient/ost/pkg/logcapture"
)

// Shared command event bus instance
var commandEventBus = events.NewCommandEventBus()

// ProvideCommandEventBus provides a shared command event bus instance
func ProvideCommandEventBus() *events.CommandEventBus {
	return commandEventBus
}

// ProvideGui provides the gui on the real terminal in true-color mode
func ProvideGui() (*gocui.Gui, error) {
	return gocui.NewGui(gocui.OutputTrue, true)
}

// ProvideApp provides an App instance with injected dependencies
func ProvideApp(
	gui *gocui.Gui,
	logBuffer *logcapture.LogBuffer,
	h *helpers.Helpers,
	commandEventBus *events.CommandEventBus,
) (*tui.App, error) {
	return tui.NewApp(gui, logBuffer, h, commandEventBus)
}

// ProvideTUI provides a TUI instance with injected App
func ProvideTUI(app *tui.App) *tui.TUI {
	return tui.New(app)
}

// Wire set for shared command infrastructure
var CommandWireSet = wire.NewSet(
	ProvideCommandEventBus,
)

// InjectTUI builds the TUI on the real terminal. The caller owns the log
// buffer so records written before the TUI starts are kept.
func InjectTUI(h *helpers.Helpers, logBuffer *logcapture.LogBuffer) (*tui.TUI, error) {
	wire.Build(CommandWireSet, ProvideGui, ProvideApp, ProvideTUI)
	return nil, nil
}
