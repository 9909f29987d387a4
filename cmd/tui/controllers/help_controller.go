package controllers

import (
	"github.com/ostclient/ost/cmd/tui/state"
)

type HelpController struct {
	uiState *state.UIState
}

func NewHelpController(uiState *state.UIState) *HelpController {
	return &HelpController{uiState: uiState}
}

func (c *HelpController) ToggleHelp() {
	c.uiState.ToggleHelp()
}

// Dismiss closes the help overlay. It reports whether the overlay was open.
func (c *HelpController) Dismiss() bool {
	if !c.uiState.HelpVisible() {
		return false
	}
	c.uiState.SetHelpVisible(false)
	return true
}
