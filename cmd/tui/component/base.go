package component

import (
	"fmt"
	"strings"

	"github.com/awesome-gocui/gocui"
	"github.com/ostclient/ost/cmd/tui/presentation"
	"github.com/ostclient/ost/cmd/tui/types"
)

// Frame rune sets in gocui order: horizontal, vertical, then the top-left,
// top-right, bottom-left and bottom-right corners.
var (
	PlainFrameRunes  = []rune{'─', '│', '┌', '┐', '└', '┘'}
	DoubleFrameRunes = []rune{'═', '║', '╔', '╗', '╚', '╝'}
)

// BaseComponent carries what every window shares: its view name, the palette
// it draws with and how gocui should treat the view.
type BaseComponent struct {
	viewName    string
	palette     presentation.Palette
	windowProps types.WindowProperties
}

func NewBaseComponent(viewName string, palette presentation.Palette, props types.WindowProperties) *BaseComponent {
	return &BaseComponent{viewName: viewName, palette: palette, windowProps: props}
}

func (c *BaseComponent) GetViewName() string {
	return c.viewName
}

func (c *BaseComponent) GetWindowProperties() types.WindowProperties {
	return c.windowProps
}

// SetEditor routes the keys no binding claims to editor and makes the view
// editable so gocui hands them over.
func (c *BaseComponent) SetEditor(editor gocui.Editor) {
	c.windowProps.Editable = editor != nil
	c.windowProps.Editor = editor
}

func (c *BaseComponent) Palette() presentation.Palette {
	return c.palette
}

func (c *BaseComponent) SetPalette(palette presentation.Palette) {
	c.palette = palette
}

// ApplyFocusFrame styles the frame of a focusable pane: a double line in the
// focus color when focused, a plain muted line otherwise.
func (c *BaseComponent) ApplyFocusFrame(v *gocui.View, focused bool, title string) {
	v.Frame = true
	v.Title = title
	if focused {
		v.FrameRunes = DoubleFrameRunes
		v.FrameColor = c.palette.Focus
		v.TitleColor = c.palette.Title | gocui.AttrBold
		return
	}
	v.FrameRunes = PlainFrameRunes
	v.FrameColor = c.palette.Muted
	v.TitleColor = c.palette.Muted
}

// writeLines replaces the content of v.
func writeLines(v *gocui.View, lines []string) {
	v.Clear()
	fmt.Fprint(v, strings.Join(lines, "\n"))
}
