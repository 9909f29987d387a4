package controllers

import (
	"github.com/ostclient/ost/cmd/tui/helpers"
)

// UIPoster schedules fn to run on the UI loop.
type UIPoster interface {
	PostUIUpdate(fn func())
}

type BaseController struct {
	gui           UIPoster
	configManager *helpers.ConfigManager
}

func NewBaseController(gui UIPoster, configManager *helpers.ConfigManager) *BaseController {
	return &BaseController{
		gui:           gui,
		configManager: configManager,
	}
}

func (c *BaseController) PostUIUpdate(fn func()) {
	if c.gui != nil {
		c.gui.PostUIUpdate(fn)
	}
}

// GetConfig returns the current config from ConfigManager
func (c *BaseController) GetConfig() *helpers.Config {
	if c.configManager == nil {
		return nil
	}
	return c.configManager.GetConfig()
}
