package controllers

import (
	"github.com/ostclient/ost/cmd/events"
	"github.com/ostclient/ost/cmd/tui/helpers"
	"github.com/ostclient/ost/cmd/tui/state"
	"github.com/ostclient/ost/pkg/logging"
)

const statusMessageSent = "Message sent"

// ChatController consumes messages sent from the compose box. Sending is
// local: each message is logged, echoed into the messages pane and
// acknowledged back on the bus.
type ChatController struct {
	*BaseController
	uiState         *state.UIState
	commandEventBus *events.CommandEventBus
	logger          logging.Logger
	unsubscribe     []func()
}

func NewChatController(
	gui UIPoster,
	uiState *state.UIState,
	configManager *helpers.ConfigManager,
	commandEventBus *events.CommandEventBus,
) *ChatController {
	c := &ChatController{
		BaseController:  NewBaseController(gui, configManager),
		uiState:         uiState,
		commandEventBus: commandEventBus,
		logger:          logging.NewComponentLogger("chat"),
	}

	c.unsubscribe = append(c.unsubscribe,
		commandEventBus.Subscribe(events.EventUserInputText, func(e any) {
			if event, ok := e.(events.UserInputEvent); ok {
				c.handleUserInput(event)
			}
		}),
		commandEventBus.Subscribe(events.EventStatusMessage, func(e any) {
			if event, ok := e.(events.StatusMessageEvent); ok {
				c.showStatus(event)
			}
		}),
	)

	return c
}

// SendMessage publishes text as sent to channel.
func (c *ChatController) SendMessage(event events.UserInputEvent) {
	c.logger.Debug("event emitted", "topic", events.EventUserInputText, "channel", event.Channel)
	c.commandEventBus.Emit(events.EventUserInputText, event)
}

func (c *ChatController) handleUserInput(event events.UserInputEvent) {
	c.logger.Info("message sent",
		"channel", event.Channel,
		"chars", len([]rune(event.Text)),
	)

	c.PostUIUpdate(func() {
		c.uiState.AddMessage(event.Text)
		c.uiState.SetStatus(statusMessageSent, state.StatusSuccess)
	})

	c.commandEventBus.Emit(events.EventMessageAcknowledged, events.MessageAcknowledgedEvent{
		Channel: event.Channel,
		Text:    event.Text,
	})
}

func (c *ChatController) showStatus(event events.StatusMessageEvent) {
	kind := state.StatusInfo
	if event.IsError {
		kind = state.StatusError
		c.logger.Warn("status error", "message", event.Message)
	}
	c.PostUIUpdate(func() {
		c.uiState.SetStatus(event.Message, kind)
	})
}

// Close unsubscribes the controller from the bus.
func (c *ChatController) Close() {
	for _, unsubscribe := range c.unsubscribe {
		unsubscribe()
	}
	c.unsubscribe = nil
}
