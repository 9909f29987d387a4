package component

import (
	"strings"

	"github.com/awesome-gocui/gocui"
	"github.com/ostclient/ost/cmd/tui/presentation"
	"github.com/ostclient/ost/cmd/tui/state"
	"github.com/ostclient/ost/cmd/tui/types"
)

// SidebarComponent lists the channels the client knows about.
type SidebarComponent struct {
	*BaseComponent
	ui *state.UIState
}

func NewSidebarComponent(ui *state.UIState, palette presentation.Palette) *SidebarComponent {
	return &SidebarComponent{
		BaseComponent: NewBaseComponent("sidebar", palette, types.WindowProperties{Frame: true, KeybindOnEdit: true}),
		ui:            ui,
	}
}

func (c *SidebarComponent) Render(v *gocui.View) error {
	c.ApplyFocusFrame(v, c.ui.Focused() == state.PaneSidebar, " Channels ")
	writeLines(v, []string{presentation.StyledBold(" # "+c.ui.Channel(), c.palette.Accent).String()})
	return nil
}

// MessagesComponent shows the messages sent in this session, newest at the
// bottom. Embedded newlines are folded the same way the compose box does.
type MessagesComponent struct {
	*BaseComponent
	ui *state.UIState
}

func NewMessagesComponent(ui *state.UIState, palette presentation.Palette) *MessagesComponent {
	return &MessagesComponent{
		BaseComponent: NewBaseComponent("messages", palette, types.WindowProperties{Frame: true, KeybindOnEdit: true}),
		ui:            ui,
	}
}

func (c *MessagesComponent) Render(v *gocui.View) error {
	c.ApplyFocusFrame(v, c.ui.Focused() == state.PaneMessages, " #"+c.ui.Channel()+" ")

	messages := c.ui.Messages()
	if len(messages) == 0 {
		writeLines(v, []string{presentation.Styled(" No messages yet", c.palette.Muted).String()})
		return nil
	}

	_, height := v.Size()
	visible := messages[max(len(messages)-max(height, 0), 0):]
	lines := make([]string, len(visible))
	for i, msg := range visible {
		lines[i] = presentation.Line(
			presentation.StyledBold(" you: ", c.palette.Title),
			presentation.Styled(strings.ReplaceAll(msg, "\n", FoldMarker), c.palette.Primary),
		)
	}
	writeLines(v, lines)
	return nil
}
