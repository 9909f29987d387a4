package controllers

import (
	"fmt"
	"strings"

	"github.com/ostclient/ost/cmd/tui/state"
	"github.com/ostclient/ost/pkg/logging"
)

// ClipboardWriter receives copied text.
type ClipboardWriter interface {
	Copy(text string) error
}

type DebugController struct {
	debugState *state.DebugLogState
	uiState    *state.UIState
	clipboard  ClipboardWriter
	logger     logging.Logger
}

func NewDebugController(
	debugState *state.DebugLogState,
	uiState *state.UIState,
	clipboard ClipboardWriter,
) *DebugController {
	return &DebugController{
		debugState: debugState,
		uiState:    uiState,
		clipboard:  clipboard,
		logger:     logging.NewComponentLogger("debug"),
	}
}

// ToggleDebugPanel shows or hides the debug pane.
func (c *DebugController) ToggleDebugPanel() {
	c.debugState.Toggle()
	c.logger.Debug("debug pane toggled", "visible", c.debugState.Visible())
}

// PageUp scrolls towards older lines by one pane height.
func (c *DebugController) PageUp(height int) {
	if !c.debugState.Visible() {
		return
	}
	c.debugState.ScrollUp(max(height, 1))
}

// PageDown scrolls towards newer lines by one pane height.
func (c *DebugController) PageDown(height int) {
	if !c.debugState.Visible() {
		return
	}
	c.debugState.ScrollDown(max(height, 1))
}

// ClearDebugMessages drops the debug history while the pane is open.
func (c *DebugController) ClearDebugMessages() {
	if !c.debugState.Visible() {
		return
	}
	cleared := c.debugState.LineCount()
	c.debugState.Clear()
	c.logger.Debug("debug log cleared", "lines", cleared)
	c.uiState.SetStatus(fmt.Sprintf("Cleared %d debug lines", cleared), state.StatusInfo)
}

// CopyDebugMessages copies the debug history to the clipboard and reports the
// outcome in the status bar.
func (c *DebugController) CopyDebugMessages() {
	lines := c.debugState.Lines()
	if err := c.clipboard.Copy(strings.Join(lines, "\n")); err != nil {
		logging.LogError(c.logger, "failed to copy debug log", err)
		c.uiState.SetStatus(fmt.Sprintf("Copy failed: %v", err), state.StatusError)
		return
	}
	c.uiState.SetStatus(fmt.Sprintf("Copied %d debug lines", len(lines)), state.StatusSuccess)
}
