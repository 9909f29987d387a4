package presentation

import (
	"fmt"
	"strings"

	"github.com/awesome-gocui/gocui"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Palette is a Theme converted to gocui colors.
type Palette struct {
	Focus    gocui.Attribute
	Accent   gocui.Attribute
	Primary  gocui.Attribute
	Muted    gocui.Attribute
	Title    gocui.Attribute
	Error    gocui.Attribute
	Warning  gocui.Attribute
	Success  gocui.Attribute
	HeaderBg gocui.Attribute
}

func NewPalette(theme *Theme) Palette {
	if theme == nil {
		theme = Themes[DefaultThemeName]
	}
	return Palette{
		Focus:    ParseColor(theme.Focus),
		Accent:   ParseColor(theme.Accent),
		Primary:  ParseColor(theme.Primary),
		Muted:    ParseColor(theme.Muted),
		Title:    ParseColor(theme.Title),
		Error:    ParseColor(theme.Error),
		Warning:  ParseColor(theme.Warning),
		Success:  ParseColor(theme.Success),
		HeaderBg: ParseColor(theme.HeaderBg),
	}
}

// DefaultPalette is the palette of the default theme.
func DefaultPalette() Palette {
	return NewPalette(Themes[DefaultThemeName])
}

// ParseColor converts "#RRGGBB" or a color name. Anything else maps to the
// terminal default.
func ParseColor(value string) gocui.Attribute {
	return gocui.Attribute(tcell.GetColor(strings.ToLower(strings.TrimSpace(value))))
}

const ansiReset = "\033[0m"

// Span is a run of text written in one color.
type Span struct {
	Text  string
	Color gocui.Attribute
	Bold  bool
}

func Styled(text string, color gocui.Attribute) Span {
	return Span{Text: text, Color: color}
}

func StyledBold(text string, color gocui.Attribute) Span {
	return Span{Text: text, Color: color, Bold: true}
}

// String returns the text wrapped in the escape sequence a gocui view decodes
// into the span's color. Default colors keep the view's own foreground.
func (s Span) String() string {
	if s.Text == "" {
		return ""
	}
	r, g, b := s.Color.RGB()
	switch {
	case r < 0 && s.Bold:
		return "\033[1m" + s.Text + ansiReset
	case r < 0:
		return s.Text
	case s.Bold:
		return fmt.Sprintf("\033[38;2;%d;%d;%d;1m%s%s", r, g, b, s.Text, ansiReset)
	}
	return fmt.Sprintf("\033[38;2;%d;%d;%dm%s%s", r, g, b, s.Text, ansiReset)
}

// Width returns the number of terminal columns of the span text.
func (s Span) Width() int {
	return runewidth.StringWidth(s.Text)
}

// Line joins spans into one line of view content.
func Line(spans ...Span) string {
	var sb strings.Builder
	for _, span := range spans {
		sb.WriteString(span.String())
	}
	return sb.String()
}

// LineWidth is the total column width of spans.
func LineWidth(spans ...Span) int {
	total := 0
	for _, span := range spans {
		total += span.Width()
	}
	return total
}

// Fit drops whatever does not fit in width columns. A wide rune that would
// straddle the limit is dropped too.
func Fit(width int, spans ...Span) []Span {
	var out []Span
	used := 0
	for _, span := range spans {
		if used >= width {
			break
		}
		if w := span.Width(); used+w <= width {
			out = append(out, span)
			used += w
			continue
		}
		var sb strings.Builder
		for _, r := range span.Text {
			w := runewidth.RuneWidth(r)
			if used+w > width {
				break
			}
			sb.WriteRune(r)
			used += w
		}
		span.Text = sb.String()
		out = append(out, span)
		break
	}
	return out
}
