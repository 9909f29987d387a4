package events

import "time"

// Event types emitted on the CommandEventBus.
const (
	// EventUserInputText is emitted by the compose box when a message is sent.
	EventUserInputText = "user.input.text"
	// EventMessageAcknowledged is emitted once a sent message was handled.
	EventMessageAcknowledged = "chat.message.acknowledged"
	// EventStatusMessage asks the UI to show a transient status message.
	EventStatusMessage = "ui.status.message"
)

// UserInputEvent carries a message sent from the compose box.
type UserInputEvent struct {
	Channel string
	Text    string
	SentAt  time.Time
}

// MessageAcknowledgedEvent reports that a sent message was handled.
type MessageAcknowledgedEvent struct {
	Channel string
	Text    string
	Err     error
}

// StatusMessageEvent is a transient status bar message.
type StatusMessageEvent struct {
	Message string
	IsError bool
}
