package component

import (
	"strings"

	"github.com/awesome-gocui/gocui"
	"github.com/ostclient/ost/cmd/tui/presentation"
	"github.com/ostclient/ost/cmd/tui/state"
	"github.com/ostclient/ost/cmd/tui/types"
)

// ComposeHeight is the fixed height of the compose box: two border rows, the
// toolbar and the input row.
const ComposeHeight = 4

// FoldMarker stands in for each newline on the single input row.
const FoldMarker = " | "

const (
	toolbarLeft  = " \U0001D401  \U0001D43C  U  ~  \U0001F517  \U0001F4CE  \U0001F60A"
	toolbarRight = "\U0001F4F7  \U0001F3A4  ➤"
)

// DisplayText is the part of the folded input that fits the input row.
type DisplayText struct {
	Visible string
	// CursorOffset is the cursor column relative to the first visible char.
	CursorOffset int
}

// ComposeDisplayText folds newlines in input and scrolls horizontally so the
// cursor stays on screen. width includes the one column of left margin.
func ComposeDisplayText(input string, cursorPos, width int) DisplayText {
	folded := []rune(strings.ReplaceAll(input, "\n", FoldMarker))

	foldedCursor := 0
	i := 0
	for _, r := range input {
		if i == cursorPos {
			break
		}
		if r == '\n' {
			foldedCursor += len(FoldMarker)
		} else {
			foldedCursor++
		}
		i++
	}

	avail := width - 1
	if avail <= 0 {
		return DisplayText{}
	}

	if len(folded) <= avail {
		return DisplayText{Visible: string(folded), CursorOffset: foldedCursor}
	}

	start := 0
	if foldedCursor >= avail {
		start = foldedCursor - avail + 1
	}
	end := min(start+avail, len(folded))
	return DisplayText{Visible: string(folded[start:end]), CursorOffset: foldedCursor - start}
}

// ComposeComponent renders the compose box: a toolbar row above a single
// scrolling input row.
type ComposeComponent struct {
	*BaseComponent
	state *state.ComposeState
	ui    *state.UIState
}

func NewComposeComponent(compose *state.ComposeState, ui *state.UIState, palette presentation.Palette) *ComposeComponent {
	return &ComposeComponent{
		BaseComponent: NewBaseComponent("compose", palette, types.WindowProperties{Frame: true}),
		state:         compose,
		ui:            ui,
	}
}

// Placeholder is the hint shown while the input is empty.
func (c *ComposeComponent) Placeholder() string {
	return " Type a message to " + c.ui.Channel() + "..."
}

// Focused reports whether typing goes to the compose box. The help overlay
// takes the keyboard while it is open.
func (c *ComposeComponent) Focused() bool {
	return c.ui.Focused() == state.PaneCompose && !c.ui.HelpVisible()
}

func (c *ComposeComponent) Render(v *gocui.View) error {
	focused := c.Focused()
	c.ApplyFocusFrame(v, focused, "")

	width, height := v.Size()
	if width <= 0 || height <= 0 {
		v.Clear()
		return nil
	}

	lines := []string{c.toolbarLine(width, focused)}
	if height >= 2 {
		lines = append(lines, c.inputLine(width))
	}
	writeLines(v, lines)

	if !focused || height < 2 {
		return nil
	}
	return v.SetCursor(1+c.cursorOffset(width), 1)
}

// cursorOffset is the cursor column after the one column of left margin.
func (c *ComposeComponent) cursorOffset(width int) int {
	if c.state.IsEmpty() {
		return 0
	}
	return ComposeDisplayText(c.state.Input(), c.state.CursorPos(), width).CursorOffset
}

func (c *ComposeComponent) toolbarLine(width int, focused bool) string {
	left := presentation.Styled(toolbarLeft, c.palette.Muted)
	right := presentation.Styled(toolbarRight, c.palette.Muted)
	if focused {
		left = presentation.Styled(toolbarLeft, c.palette.Primary)
		right = presentation.StyledBold(toolbarRight, c.palette.Accent)
	}

	padding := max(width-(left.Width()+right.Width()+1), 0)
	return presentation.Line(presentation.Fit(width,
		left,
		presentation.Span{Text: strings.Repeat(" ", padding)},
		right,
		presentation.Span{Text: " "},
	)...)
}

func (c *ComposeComponent) inputLine(width int) string {
	if c.state.IsEmpty() {
		placeholder := []rune(c.Placeholder())
		if len(placeholder) > width {
			placeholder = placeholder[:width]
		}
		return presentation.Styled(string(placeholder), c.palette.Muted).String()
	}

	display := ComposeDisplayText(c.state.Input(), c.state.CursorPos(), width)
	return presentation.Styled(" "+display.Visible, c.palette.Primary).String()
}
