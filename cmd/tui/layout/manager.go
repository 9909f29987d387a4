package layout

import (
	"errors"

	"github.com/awesome-gocui/gocui"
	"github.com/jesseduffield/lazycore/pkg/boxlayout"
	"github.com/ostclient/ost/cmd/tui/render"
	"github.com/ostclient/ost/cmd/tui/types"
)

// Window names used as keys of the arranged layout.
const (
	WindowHeader   = "header"
	WindowSidebar  = "sidebar"
	WindowMessages = "messages"
	WindowCompose  = "compose"
	WindowDebug    = "debug"
	WindowStatus   = "status"
)

// windowOrder is the order views are created in, which is also the order
// gocui draws them in.
var windowOrder = []string{WindowHeader, WindowSidebar, WindowMessages, WindowCompose, WindowDebug, WindowStatus}

type LayoutConfig struct {
	HeaderHeight  int // Fixed height for the header bar
	StatusHeight  int // Fixed height for the status bar
	ComposeHeight int // Fixed height for the compose box
	SidebarWidth  int // Fixed width for the channel list
	DebugHeight   int // Fixed height for the debug pane when shown
	MinMainWidth  int // Below this width the sidebar is dropped
}

func NewDefaultLayoutConfig(composeHeight, debugHeight int) *LayoutConfig {
	return &LayoutConfig{
		HeaderHeight:  1,
		StatusHeight:  1,
		ComposeHeight: composeHeight,
		SidebarWidth:  24,
		DebugHeight:   debugHeight,
		MinMainWidth:  60,
	}
}

type LayoutManager struct {
	config     *LayoutConfig
	components map[string]types.Component
}

func NewLayoutManager(config *LayoutConfig) *LayoutManager {
	return &LayoutManager{
		config:     config,
		components: make(map[string]types.Component),
	}
}

func (lm *LayoutManager) SetComponent(window string, component types.Component) {
	lm.components[window] = component
}

func (lm *LayoutManager) GetComponent(window string) types.Component {
	return lm.components[window]
}

// Layout arranges a width x height screen and places every window that got
// a rect, removing the views of windows that did not.
func (lm *LayoutManager) Layout(g *gocui.Gui, width, height int, debugVisible bool) error {
	rects := lm.Arrange(width, height, debugVisible)
	for _, window := range windowOrder {
		component := lm.components[window]
		if component == nil {
			continue
		}
		rect, ok := rects[window]
		if !ok {
			if err := RemoveWindow(g, component.GetViewName()); err != nil {
				return err
			}
			continue
		}
		if err := PlaceWindow(g, component, rect); err != nil {
			return err
		}
	}
	return nil
}

// PlaceWindow creates or moves the component's view onto rect, applies the
// component's window properties and renders it. A rect too small to hold
// the view removes it instead.
func PlaceWindow(g *gocui.Gui, component types.Component, rect render.Rect) error {
	name := component.GetViewName()
	props := component.GetWindowProperties()

	x0, y0, x1, y1, ok := ViewBounds(rect, props.Frame)
	if !ok {
		return RemoveWindow(g, name)
	}

	v, err := g.SetView(name, x0, y0, x1, y1, 0)
	if err != nil && !errors.Is(err, gocui.ErrUnknownView) {
		return err
	}

	v.Frame = props.Frame
	v.Editable = props.Editable
	v.Editor = props.Editor
	v.KeybindOnEdit = props.KeybindOnEdit
	return component.Render(v)
}

// RemoveWindow deletes a view if it exists.
func RemoveWindow(g *gocui.Gui, name string) error {
	if err := g.DeleteView(name); err != nil && !errors.Is(err, gocui.ErrUnknownView) {
		return err
	}
	return nil
}

// ViewBounds converts rect to gocui view corners. gocui draws a view's
// content one cell inside its corners, so a frameless view is grown by one
// cell on every side to keep its content on rect. ok is false when rect
// cannot hold the view.
func ViewBounds(rect render.Rect, frame bool) (x0, y0, x1, y1 int, ok bool) {
	if frame {
		if rect.Width < 2 || rect.Height < 2 {
			return 0, 0, 0, 0, false
		}
		return rect.X, rect.Y, rect.Right() - 1, rect.Bottom() - 1, true
	}
	if rect.IsEmpty() {
		return 0, 0, 0, 0, false
	}
	return rect.X - 1, rect.Y - 1, rect.Right(), rect.Bottom(), true
}

func (lm *LayoutManager) GetConfig() *LayoutConfig {
	return lm.config
}

// Arrange splits a width x height screen into windows. The debug window is
// only present while debugVisible is set.
func (lm *LayoutManager) Arrange(width, height int, debugVisible bool) map[string]render.Rect {
	rects := make(map[string]render.Rect)
	if width <= 0 || height <= 0 {
		return rects
	}

	for name, dims := range boxlayout.ArrangeWindows(lm.buildLayoutTree(debugVisible), 0, 0, width, height) {
		rects[name] = render.FromDimensions(dims)
	}
	return rects
}

func (lm *LayoutManager) buildLayoutTree(debugVisible bool) *boxlayout.Box {
	rows := []*boxlayout.Box{
		lm.createPanelBox(WindowHeader, lm.config.HeaderHeight, 0),
		{
			Direction:           boxlayout.COLUMN,
			Weight:              1,
			ConditionalChildren: lm.buildCenterColumns,
		},
	}

	if debugVisible {
		rows = append(rows, lm.createPanelBox(WindowDebug, lm.config.DebugHeight, 0))
	}
	rows = append(rows, lm.createPanelBox(WindowStatus, lm.config.StatusHeight, 0))

	return &boxlayout.Box{
		Direction: boxlayout.ROW,
		Children:  rows,
	}
}

// buildCenterColumns lays out the sidebar next to the chat column, dropping
// the sidebar on narrow screens.
func (lm *LayoutManager) buildCenterColumns(width, height int) []*boxlayout.Box {
	chat := &boxlayout.Box{
		Direction: boxlayout.ROW,
		Weight:    1,
		Children: []*boxlayout.Box{
			lm.createPanelBox(WindowMessages, 0, 1),
			lm.createPanelBox(WindowCompose, lm.config.ComposeHeight, 0),
		},
	}

	if width < lm.config.MinMainWidth {
		return []*boxlayout.Box{chat}
	}
	return []*boxlayout.Box{
		lm.createPanelBox(WindowSidebar, lm.config.SidebarWidth, 0),
		chat,
	}
}

// createPanelBox creates a boxlayout.Box for a window with given size/weight
func (lm *LayoutManager) createPanelBox(name string, size, weight int) *boxlayout.Box {
	box := &boxlayout.Box{Window: name}
	if size > 0 {
		box.Size = size
	} else {
		box.Weight = weight
	}
	return box
}
