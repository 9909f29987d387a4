package component

import (
	"fmt"
	"strings"

	"github.com/awesome-gocui/gocui"
	"github.com/jesseduffield/lazycore/pkg/boxlayout"
	"github.com/ostclient/ost/cmd/tui/presentation"
	"github.com/ostclient/ost/cmd/tui/render"
	"github.com/ostclient/ost/cmd/tui/types"
)

const (
	HelpWidth  = 84
	HelpHeight = 30

	helpKeyWidth  = 12
	helpRuleWidth = 36

	helpTitle  = " HELP (? to close) "
	helpFooter = " Press any key to close "
)

type Shortcut struct {
	Key         string
	Description string
}

type Category struct {
	Title     string
	Shortcuts []Shortcut
}

var (
	NavigationShortcuts = Category{Title: "NAVIGATION", Shortcuts: []Shortcut{
		{"Up/Down", "Move within pane"},
		{"Left/Right", "Switch between panes"},
		{"Tab", "Cycle focus forward"},
		{"Shift+Tab", "Cycle focus backward"},
		{"g g", "Jump to top"},
		{"G", "Jump to bottom"},
		{"/", "Search in current view"},
		{"Ctrl+K", "Global search"},
	}}
	PaneShortcuts = Category{Title: "PANES", Shortcuts: []Shortcut{
		{"1", "Teams/Channels pane"},
		{"2", "Chat/Messages pane"},
		{"3", "Compose pane"},
	}}
	ViewShortcuts = Category{Title: "VIEWS", Shortcuts: []Shortcut{
		{"F1", "Activity"},
		{"F2", "Chats"},
		{"F3", "Teams"},
		{"F4", "Calendar"},
		{"F5", "Calls"},
	}}
	MessagingShortcuts = Category{Title: "MESSAGING", Shortcuts: []Shortcut{
		{"Enter", "Send message / Open thread"},
		{"Ctrl+Enter", "New line in compose"},
		{"Esc", "Cancel / Close popup"},
		{"Ctrl+U", "Clear compose box"},
	}}
	ActionShortcuts = Category{Title: "ACTIONS", Shortcuts: []Shortcut{
		{"r", "Reply to message"},
		{"e", "Edit your message"},
		{"d", "Delete message (confirm)"},
		{"+", "Add reaction"},
		{"@", "Mention user"},
		{"Ctrl+P", "Attach file"},
	}}
	MiscShortcuts = Category{Title: "MISC", Shortcuts: []Shortcut{
		{"Ctrl+R", "Refresh"},
		{"Ctrl+N", "New chat"},
		{"Ctrl+T", "New channel post"},
		{"Ctrl+D", "Toggle debug log"},
		{"Ctrl+,", "Settings"},
		{"q", "Quit (confirm)"},
		{"?", "Toggle this help"},
	}}
)

// HelpColumns returns the categories of the left and right columns.
func HelpColumns() (left, right []Category) {
	return []Category{NavigationShortcuts, PaneShortcuts, ViewShortcuts},
		[]Category{MessagingShortcuts, ActionShortcuts, MiscShortcuts}
}

// HelpComponent is the modal shortcut overlay.
type HelpComponent struct {
	*BaseComponent
}

func NewHelpComponent(palette presentation.Palette) *HelpComponent {
	return &HelpComponent{
		BaseComponent: NewBaseComponent("help", palette, types.WindowProperties{Frame: true}),
	}
}

// PopupRect returns the overlay rectangle for a screen area.
func (c *HelpComponent) PopupRect(area render.Rect) render.Rect {
	return area.Centered(HelpWidth, HelpHeight)
}

func (c *HelpComponent) Render(v *gocui.View) error {
	v.Frame = true
	v.Title = helpTitle
	v.FrameRunes = PlainFrameRunes
	v.FrameColor = c.palette.Accent
	v.TitleColor = c.palette.Accent | gocui.AttrBold

	width, height := v.Size()
	writeLines(v, c.Lines(width, height))
	return nil
}

// Lines lays the two shortcut columns side by side in the width x height area
// inside the frame. Each column keeps one cell of margin.
func (c *HelpComponent) Lines(width, height int) []string {
	if width <= 0 || height <= 0 {
		return nil
	}

	columns := boxlayout.ArrangeWindows(&boxlayout.Box{
		Direction: boxlayout.COLUMN,
		Children: []*boxlayout.Box{
			{Window: "left", Weight: 1},
			{Window: "right", Weight: 1},
		},
	}, 0, 0, width, height)

	rows := make([][]presentation.Span, height)
	left, right := HelpColumns()
	c.placeColumn(rows, render.FromDimensions(columns["left"]).Inset(1, 1), c.columnLines(left))
	c.placeColumn(rows, render.FromDimensions(columns["right"]).Inset(1, 1), c.columnLines(right))

	lines := make([]string, height)
	for i, row := range rows {
		lines[i] = presentation.Line(row...)
	}
	return lines
}

// placeColumn appends the column lines to rows, padding each row out to the
// column's left edge. Columns must be placed left to right.
func (c *HelpComponent) placeColumn(rows [][]presentation.Span, area render.Rect, lines [][]presentation.Span) {
	if area.IsEmpty() {
		return
	}
	for i, line := range lines {
		if i >= area.Height {
			return
		}
		y := area.Y + i
		if pad := area.X - presentation.LineWidth(rows[y]...); pad > 0 {
			rows[y] = append(rows[y], presentation.Span{Text: strings.Repeat(" ", pad)})
		}
		rows[y] = append(rows[y], presentation.Fit(area.Width, line...)...)
	}
}

func (c *HelpComponent) columnLines(categories []Category) [][]presentation.Span {
	var lines [][]presentation.Span
	for i, cat := range categories {
		if i > 0 {
			lines = append(lines, nil)
		}
		lines = append(lines,
			[]presentation.Span{presentation.StyledBold(cat.Title, c.palette.Primary)},
			[]presentation.Span{presentation.Styled(strings.Repeat("─", helpRuleWidth), c.palette.Muted)},
		)
		for _, sc := range cat.Shortcuts {
			lines = append(lines, []presentation.Span{
				presentation.Styled(fmt.Sprintf("%-*s", helpKeyWidth, sc.Key), c.palette.Accent),
				presentation.Styled(sc.Description, c.palette.Muted),
			})
		}
	}
	return lines
}

// HelpFooterComponent writes the dismiss hint over the bottom edge of the
// help frame. gocui frames only carry a title on the top edge.
type HelpFooterComponent struct {
	*BaseComponent
}

func NewHelpFooterComponent(palette presentation.Palette) *HelpFooterComponent {
	return &HelpFooterComponent{
		BaseComponent: NewBaseComponent("help-footer", palette, types.WindowProperties{}),
	}
}

// FooterRect returns the stretch of the popup's bottom edge the hint covers,
// starting one cell in from the corner.
func (c *HelpFooterComponent) FooterRect(popup render.Rect) render.Rect {
	if popup.Height < 2 {
		return render.Rect{}
	}
	width := min(presentation.Styled(helpFooter, c.palette.Muted).Width(), popup.Width-2)
	return render.NewRect(popup.X+1, popup.Bottom()-1, width, 1)
}

func (c *HelpFooterComponent) Render(v *gocui.View) error {
	v.Frame = false
	v.FgColor = c.palette.Muted
	v.BgColor = gocui.ColorDefault
	writeLines(v, []string{helpFooter})
	return nil
}
