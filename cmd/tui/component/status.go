package component

import (
	"github.com/awesome-gocui/gocui"
	"github.com/ostclient/ost/cmd/tui/presentation"
	"github.com/ostclient/ost/cmd/tui/state"
	"github.com/ostclient/ost/cmd/tui/types"
)

// StatusComponent is the one-row bar at the bottom of the screen.
type StatusComponent struct {
	*BaseComponent
	ui     *state.UIState
	online bool
}

func NewStatusComponent(ui *state.UIState, palette presentation.Palette) *StatusComponent {
	return &StatusComponent{
		BaseComponent: NewBaseComponent("status", palette, types.WindowProperties{}),
		ui:            ui,
	}
}

func (c *StatusComponent) SetOnline(online bool) {
	c.online = online
}

func (c *StatusComponent) Render(v *gocui.View) error {
	applyBarColors(v, c.palette)
	width, _ := v.Size()
	writeLines(v, []string{c.line(width)})
	return nil
}

func (c *StatusComponent) line(width int) string {
	sep := presentation.Styled(" | ", c.palette.Muted)
	symbol, color := connectionIndicator(c.palette, c.online)

	spans := []presentation.Span{
		presentation.Styled(" "+symbol+" "+onlineLabel(c.online)+" ", color),
		sep,
		presentation.Styled("#"+c.ui.Channel(), c.palette.Accent),
		sep,
		presentation.Styled("Tab: "+c.ui.Focused().String()+" ", c.palette.Title),
		sep,
		presentation.Styled("?: help", c.palette.Muted),
	}
	if msg, kind := c.ui.Status(); msg != "" {
		spans = append(spans, sep, presentation.Styled(msg, c.StatusColor(kind)))
	}

	return presentation.Line(presentation.Fit(width, spans...)...)
}

func (c *StatusComponent) StatusColor(kind state.StatusKind) gocui.Attribute {
	switch kind {
	case state.StatusSuccess:
		return c.palette.Success
	case state.StatusError:
		return c.palette.Error
	default:
		return c.palette.Primary
	}
}
