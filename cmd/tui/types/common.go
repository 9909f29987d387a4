package types

import "github.com/awesome-gocui/gocui"

type KeyBinding struct {
	View    string
	Key     interface{}
	Mod     gocui.Modifier
	Handler func(*gocui.Gui, *gocui.View) error
}

// Component is anything the layout manager places in a window.
type Component interface {
	GetViewName() string
	GetWindowProperties() WindowProperties

	// Render redraws the view. It runs on every layout pass.
	Render(v *gocui.View) error
}

type WindowProperties struct {
	Frame    bool
	Editable bool
	// KeybindOnEdit lets rune keybindings of the view fire while it is editable.
	KeybindOnEdit bool
	Editor        gocui.Editor
}
