package component

import (
	"strings"

	"github.com/awesome-gocui/gocui"
	"github.com/ostclient/ost/cmd/tui/presentation"
	"github.com/ostclient/ost/cmd/tui/types"
)

const headerTitle = " OST Client"

// HeaderComponent is the one-row bar at the top of the screen.
type HeaderComponent struct {
	*BaseComponent
	userName string
	online   bool
}

func NewHeaderComponent(palette presentation.Palette, userName string) *HeaderComponent {
	return &HeaderComponent{
		BaseComponent: NewBaseComponent("header", palette, types.WindowProperties{}),
		userName:      userName,
	}
}

func (c *HeaderComponent) SetOnline(online bool) {
	c.online = online
}

func (c *HeaderComponent) Render(v *gocui.View) error {
	applyBarColors(v, c.palette)
	width, _ := v.Size()
	writeLines(v, []string{c.line(width)})
	return nil
}

func (c *HeaderComponent) line(width int) string {
	symbol, color := connectionIndicator(c.palette, c.online)
	right := []presentation.Span{
		presentation.Styled(" [?] Help ", c.palette.Muted),
		presentation.Styled(" "+symbol+" "+onlineLabel(c.online)+" ", color),
		presentation.Styled(" "+c.userName+" ", c.palette.Title),
	}

	title := presentation.StyledBold(headerTitle, c.palette.Primary)
	padding := max(width-title.Width()-presentation.LineWidth(right...), 0)
	spans := append([]presentation.Span{title, {Text: strings.Repeat(" ", padding)}}, right...)

	return presentation.Line(presentation.Fit(width, spans...)...)
}

// applyBarColors gives a frameless bar the header background. Spans with no
// color of their own use the primary foreground.
func applyBarColors(v *gocui.View, p presentation.Palette) {
	v.Frame = false
	v.BgColor = p.HeaderBg
	v.FgColor = p.Primary
}

func onlineLabel(online bool) string {
	if online {
		return "online"
	}
	return "offline"
}

func connectionIndicator(p presentation.Palette, online bool) (string, gocui.Attribute) {
	if online {
		return "*", p.Success
	}
	return "o", p.Error
}
