package component

import (
	"strings"
	"testing"

	"github.com/awesome-gocui/gocui"
	"github.com/ostclient/ost/cmd/tui/presentation"
	"github.com/ostclient/ost/cmd/tui/state"
	tuitesting "github.com/ostclient/ost/cmd/tui/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderComponent_Render(t *testing.T) {
	g := tuitesting.NewTestGui(t)
	v := tuitesting.NewTestView(t, g, "header", 60, 1)
	palette := presentation.DefaultPalette()
	c := NewHeaderComponent(palette, "bob")

	require.NoError(t, c.Render(v))

	lines := v.BufferLines()
	require.Len(t, lines, 1)
	assert.True(t, strings.HasPrefix(lines[0], " OST Client"))
	assert.True(t, strings.HasSuffix(lines[0], " [?] Help  o offline  bob "))
	assert.Len(t, lines[0], 60)
	assert.False(t, v.Frame)
	assert.Equal(t, palette.HeaderBg, v.BgColor)
	assert.Contains(t, c.line(60), presentation.StyledBold(" OST Client", palette.Primary).String())
	assert.Contains(t, c.line(60), presentation.Styled(" o offline ", palette.Error).String())

	c.SetOnline(true)
	require.NoError(t, c.Render(v))
	assert.Contains(t, v.BufferLines()[0], "* online")
	assert.Contains(t, c.line(60), presentation.Styled(" * online ", palette.Success).String())
}

func TestHeaderComponent_NarrowKeepsTitle(t *testing.T) {
	g := tuitesting.NewTestGui(t)
	v := tuitesting.NewTestView(t, g, "header", 15, 1)

	require.NoError(t, NewHeaderComponent(presentation.DefaultPalette(), "bob").Render(v))

	assert.Equal(t, []string{" OST Client [?]"}, v.BufferLines())
}

func TestStatusComponent_Render(t *testing.T) {
	g := tuitesting.NewTestGui(t)
	v := tuitesting.NewTestView(t, g, "status", 78, 1)
	palette := presentation.DefaultPalette()
	ui := state.NewUIState("general")
	c := NewStatusComponent(ui, palette)

	require.NoError(t, c.Render(v))
	assert.Equal(t, []string{" o offline  | #general | Tab: Compose  | ?: help"}, v.BufferLines())

	ui.SetStatus("Message sent", state.StatusSuccess)
	ui.SetFocused(state.PaneMessages)
	require.NoError(t, c.Render(v))

	line := v.BufferLines()[0]
	assert.Contains(t, line, "Tab: Messages")
	assert.True(t, strings.HasSuffix(line, " | Message sent"))
	assert.Contains(t, c.line(78), presentation.Styled("Message sent", palette.Success).String())

	ui.SetStatus("boom", state.StatusError)
	assert.Contains(t, c.line(78), presentation.Styled("boom", palette.Error).String())
}

func TestStatusComponent_StatusColor(t *testing.T) {
	palette := presentation.DefaultPalette()
	c := NewStatusComponent(state.NewUIState("general"), palette)

	assert.Equal(t, palette.Success, c.StatusColor(state.StatusSuccess))
	assert.Equal(t, palette.Error, c.StatusColor(state.StatusError))
	assert.Equal(t, palette.Primary, c.StatusColor(state.StatusInfo))
}

func TestSidebarComponent_FocusFrame(t *testing.T) {
	g := tuitesting.NewTestGui(t)
	v := tuitesting.NewTestView(t, g, "sidebar", 22, 4)
	palette := presentation.DefaultPalette()
	ui := state.NewUIState("general")
	c := NewSidebarComponent(ui, palette)

	ui.SetFocused(state.PaneSidebar)
	require.NoError(t, c.Render(v))

	assert.Equal(t, " Channels ", v.Title)
	assert.Equal(t, DoubleFrameRunes, v.FrameRunes)
	assert.Equal(t, palette.Focus, v.FrameColor)
	assert.Equal(t, palette.Title|gocui.AttrBold, v.TitleColor)
	assert.Equal(t, []string{" # general"}, v.BufferLines())

	ui.SetFocused(state.PaneCompose)
	require.NoError(t, c.Render(v))

	assert.Equal(t, PlainFrameRunes, v.FrameRunes)
	assert.Equal(t, palette.Muted, v.FrameColor)
	assert.Equal(t, palette.Muted, v.TitleColor)
}

func TestMessagesComponent_Render(t *testing.T) {
	g := tuitesting.NewTestGui(t)
	v := tuitesting.NewTestView(t, g, "messages", 28, 2)
	ui := state.NewUIState("general")
	c := NewMessagesComponent(ui, presentation.DefaultPalette())

	require.NoError(t, c.Render(v))
	assert.Equal(t, " #general ", v.Title)
	assert.Equal(t, []string{" No messages yet"}, v.BufferLines())

	ui.AddMessage("first")
	ui.AddMessage("second\nline")
	ui.AddMessage("third")
	require.NoError(t, c.Render(v))

	assert.Equal(t, []string{" you: second | line", " you: third"}, v.BufferLines())
}
