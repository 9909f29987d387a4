package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPane_Cycle(t *testing.T) {
	assert.Equal(t, PaneMessages, PaneSidebar.Next())
	assert.Equal(t, PaneSidebar, PaneCompose.Next())
	assert.Equal(t, PaneCompose, PaneSidebar.Prev())
	assert.Equal(t, "Messages", PaneMessages.String())
	assert.Equal(t, "Unknown", Pane(7).String())
}

func TestUIState(t *testing.T) {
	s := NewUIState("general")

	assert.Equal(t, PaneCompose, s.Focused())
	assert.Equal(t, "general", s.Channel())
	assert.True(t, s.Running())

	s.FocusNext()
	assert.Equal(t, PaneSidebar, s.Focused())
	s.FocusPrev()
	s.FocusPrev()
	assert.Equal(t, PaneMessages, s.Focused())

	s.ToggleHelp()
	assert.True(t, s.HelpVisible())
	s.SetHelpVisible(false)
	assert.False(t, s.HelpVisible())

	s.SetStatus("Message sent", StatusSuccess)
	msg, kind := s.Status()
	assert.Equal(t, "Message sent", msg)
	assert.Equal(t, StatusSuccess, kind)

	s.ClearStatus()
	msg, kind = s.Status()
	assert.Empty(t, msg)
	assert.Equal(t, StatusInfo, kind)

	s.AddMessage("hello")
	msgs := s.Messages()
	msgs[0] = "changed"
	assert.Equal(t, []string{"hello"}, s.Messages())

	s.Quit()
	assert.False(t, s.Running())
}
