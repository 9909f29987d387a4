package component

import (
	"strings"
	"testing"

	"github.com/awesome-gocui/gocui"
	"github.com/ostclient/ost/cmd/tui/presentation"
	"github.com/ostclient/ost/cmd/tui/render"
	tuitesting "github.com/ostclient/ost/cmd/tui/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHelpColumns_Tables(t *testing.T) {
	left, right := HelpColumns()

	titles := func(cats []Category) []string {
		var out []string
		for _, c := range cats {
			out = append(out, c.Title)
		}
		return out
	}
	assert.Equal(t, []string{"NAVIGATION", "PANES", "VIEWS"}, titles(left))
	assert.Equal(t, []string{"MESSAGING", "ACTIONS", "MISC"}, titles(right))

	assert.Len(t, NavigationShortcuts.Shortcuts, 8)
	assert.Len(t, PaneShortcuts.Shortcuts, 3)
	assert.Len(t, ViewShortcuts.Shortcuts, 5)
	assert.Len(t, MessagingShortcuts.Shortcuts, 4)
	assert.Len(t, ActionShortcuts.Shortcuts, 6)
	assert.Len(t, MiscShortcuts.Shortcuts, 7)

	assert.Equal(t, Shortcut{"Shift+Tab", "Cycle focus backward"}, NavigationShortcuts.Shortcuts[3])
	assert.Equal(t, Shortcut{"Ctrl+Enter", "New line in compose"}, MessagingShortcuts.Shortcuts[1])
	assert.Equal(t, Shortcut{"d", "Delete message (confirm)"}, ActionShortcuts.Shortcuts[2])
	assert.Equal(t, Shortcut{"Ctrl+,", "Settings"}, MiscShortcuts.Shortcuts[4])
	assert.Equal(t, Shortcut{"?", "Toggle this help"}, MiscShortcuts.Shortcuts[6])
}

func TestHelpComponent_PopupRect(t *testing.T) {
	c := NewHelpComponent(presentation.DefaultPalette())

	assert.Equal(t, render.NewRect(18, 5, 84, 30), c.PopupRect(render.NewRect(0, 0, 120, 40)))
	assert.Equal(t, render.NewRect(1, 1, 48, 18), c.PopupRect(render.NewRect(0, 0, 50, 20)))
	assert.Equal(t, render.NewRect(1, 1, 84, 30), c.PopupRect(render.NewRect(0, 0, 86, 32)))
}

func TestHelpComponent_Render(t *testing.T) {
	v := tuitesting.NewTestView(t, tuitesting.NewTestGui(t), "help", HelpWidth-2, HelpHeight-2)
	palette := presentation.DefaultPalette()
	c := NewHelpComponent(palette)

	require.NoError(t, c.Render(v))

	assert.Equal(t, " HELP (? to close) ", v.Title)
	assert.Equal(t, palette.Accent, v.FrameColor)
	assert.Equal(t, palette.Accent|gocui.AttrBold, v.TitleColor)
	assert.Equal(t, PlainFrameRunes, v.FrameRunes)

	lines := v.BufferLines()
	require.Len(t, lines, HelpHeight-2)
	assert.Equal(t, "", lines[0])
	assert.Equal(t, " NAVIGATION"+strings.Repeat(" ", 31)+"MESSAGING", lines[1])
	assert.Equal(t, " "+strings.Repeat("─", 36)+strings.Repeat(" ", 5)+strings.Repeat("─", 36), lines[2])
	assert.Equal(t, " Up/Down     Move within pane"+strings.Repeat(" ", 13)+"Enter       Send message / Open thread", lines[3])
	assert.Equal(t, " PANES", strings.TrimRight(lines[12][:42], " "))
	assert.True(t, strings.HasSuffix(lines[8], "ACTIONS"))
}

func TestHelpComponent_LineColors(t *testing.T) {
	palette := presentation.DefaultPalette()
	lines := NewHelpComponent(palette).Lines(HelpWidth-2, HelpHeight-2)

	assert.Contains(t, lines[1], presentation.StyledBold("NAVIGATION", palette.Primary).String())
	assert.Contains(t, lines[2], presentation.Styled(strings.Repeat("─", 36), palette.Muted).String())
	assert.Contains(t, lines[3], presentation.Styled("Up/Down     ", palette.Accent).String())
	assert.Contains(t, lines[3], presentation.Styled("Move within pane", palette.Muted).String())
}

func TestHelpComponent_SmallArea(t *testing.T) {
	c := NewHelpComponent(presentation.DefaultPalette())

	assert.Nil(t, c.Lines(0, 0))
	assert.Nil(t, c.Lines(10, 0))

	lines := c.Lines(46, 16)
	require.Len(t, lines, 16)
	assert.Equal(t, " NAVIGATION"+strings.Repeat(" ", 13)+"MESSAGING", lines[1])
	assert.Equal(t, " Up/Down     Move with"+"  "+"Enter       Send mess", lines[3])

	require.NotPanics(t, func() { c.Lines(1, 1) })
}

func TestHelpFooterComponent(t *testing.T) {
	palette := presentation.DefaultPalette()
	c := NewHelpFooterComponent(palette)

	assert.Equal(t, render.NewRect(19, 34, 24, 1), c.FooterRect(render.NewRect(18, 5, 84, 30)))
	assert.Equal(t, render.NewRect(2, 3, 8, 1), c.FooterRect(render.NewRect(1, 1, 10, 3)))
	assert.True(t, c.FooterRect(render.NewRect(1, 1, 10, 1)).IsEmpty())

	v := tuitesting.NewTestView(t, tuitesting.NewTestGui(t), "help-footer", 24, 1)
	require.NoError(t, c.Render(v))

	assert.Equal(t, []string{" Press any key to close "}, v.BufferLines())
	assert.False(t, v.Frame)
	assert.Equal(t, palette.Muted, v.FgColor)
}
