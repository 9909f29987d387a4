package component

import (
	"github.com/awesome-gocui/gocui"
	"github.com/ostclient/ost/cmd/tui/state"
)

// ComposeEditor applies the editing keys no keybinding claims to the compose
// state. The view is redrawn from that state on the next layout pass, so the
// view buffer itself is never edited.
type ComposeEditor struct {
	state *state.ComposeState
}

func NewComposeEditor(compose *state.ComposeState) *ComposeEditor {
	return &ComposeEditor{state: compose}
}

// Edit implements gocui.Editor.
func (e *ComposeEditor) Edit(v *gocui.View, key gocui.Key, ch rune, mod gocui.Modifier) {
	if ch != 0 {
		if mod == gocui.ModNone {
			e.state.InsertChar(ch)
		}
		return
	}

	switch key {
	case gocui.KeySpace:
		e.state.InsertChar(' ')
	case gocui.KeyBackspace, gocui.KeyBackspace2:
		e.state.Backspace()
	case gocui.KeyDelete:
		e.state.Delete()
	case gocui.KeyArrowLeft:
		e.state.MoveLeft()
	case gocui.KeyArrowRight:
		e.state.MoveRight()
	case gocui.KeyHome:
		e.state.MoveHome()
	case gocui.KeyEnd:
		e.state.MoveEnd()
	}
}
