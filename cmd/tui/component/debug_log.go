package component

import (
	"strings"

	"github.com/awesome-gocui/gocui"
	"github.com/ostclient/ost/cmd/tui/presentation"
	"github.com/ostclient/ost/cmd/tui/state"
	"github.com/ostclient/ost/cmd/tui/types"
)

const debugLogTitle = " Debug Log "

type DebugLogComponent struct {
	*BaseComponent
	state *state.DebugLogState
}

func NewDebugLogComponent(debugState *state.DebugLogState, palette presentation.Palette) *DebugLogComponent {
	return &DebugLogComponent{
		BaseComponent: NewBaseComponent("debug", palette, types.WindowProperties{Frame: true}),
		state:         debugState,
	}
}

// Render shows the window of history that ends ScrollOffset lines before the
// newest line.
func (c *DebugLogComponent) Render(v *gocui.View) error {
	v.Frame = true
	v.Title = debugLogTitle
	v.FrameRunes = PlainFrameRunes
	v.FrameColor = c.palette.Muted
	v.TitleColor = c.palette.Title | gocui.AttrBold

	_, height := v.Size()
	writeLines(v, c.lines(height))
	return nil
}

func (c *DebugLogComponent) lines(height int) []string {
	window := c.state.Window(height)
	lines := make([]string, len(window))
	for i, line := range window {
		lines[i] = presentation.Styled(line, c.LineColor(line)).String()
	}
	return lines
}

type levelToken struct {
	spaced, colon string
	color         func(presentation.Palette) gocui.Attribute
}

// First match wins.
var levelTokens = []levelToken{
	{" ERROR ", "ERROR:", func(p presentation.Palette) gocui.Attribute { return p.Error }},
	{" WARN ", "WARN:", func(p presentation.Palette) gocui.Attribute { return p.Warning }},
	{" INFO ", "INFO:", func(p presentation.Palette) gocui.Attribute { return p.Success }},
	{" DEBUG ", "DEBUG:", func(p presentation.Palette) gocui.Attribute { return p.Muted }},
	{" TRACE ", "TRACE:", func(p presentation.Palette) gocui.Attribute { return p.Muted }},
}

// LineColor picks the color of a log line by the first level token it
// contains.
func (c *DebugLogComponent) LineColor(line string) gocui.Attribute {
	for _, tok := range levelTokens {
		if strings.Contains(line, tok.spaced) || strings.Contains(line, tok.colon) {
			return tok.color(c.palette)
		}
	}
	return c.palette.Primary
}
