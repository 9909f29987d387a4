package testing

import (
	"strings"
	"testing"
	"time"

	"github.com/awesome-gocui/gocui"
	"github.com/stretchr/testify/require"
)

// maxQueuedKeys keeps typed text under the ten events the simulated
// terminal queues, leaving room for the sync event.
const maxQueuedKeys = 8

// NewTestGui creates a gui on gocui's simulated 80x25 terminal. gocui keeps
// the terminal in a package variable, so tests using it must not run in
// parallel.
func NewTestGui(t *testing.T) *gocui.Gui {
	t.Helper()
	g, err := gocui.NewGui(gocui.OutputSimulator, true)
	require.NoError(t, err)
	return g
}

// NewTestView creates a view whose content area is width x height cells.
func NewTestView(t *testing.T, g *gocui.Gui, name string, width, height int) *gocui.View {
	t.Helper()
	v, err := g.SetView(name, 0, 0, width+1, height+1, 0)
	if err != nil {
		require.ErrorIs(t, err, gocui.ErrUnknownView)
	}
	return v
}

// GuiDriver runs a gui main loop on the simulated terminal and feeds it keys.
type GuiDriver struct {
	Gui    *gocui.Gui
	screen gocui.TestingScreen
	t      *testing.T
	exited bool
}

// StartGuiDriver starts the main loop of g. It is stopped when the test ends.
func StartGuiDriver(t *testing.T, g *gocui.Gui) *GuiDriver {
	t.Helper()
	d := &GuiDriver{Gui: g, screen: g.GetTestingScreen(), t: t}
	d.screen.StartGui()
	t.Cleanup(d.stop)
	return d
}

// stop ends the main loop through the update queue. The simulated terminal
// is left open: closing it would let the input goroutine read from the
// terminal of the next test.
func (d *GuiDriver) stop() {
	if d.exited {
		return
	}
	done := make(chan struct{})
	d.Gui.Update(func(*gocui.Gui) error {
		close(done)
		return gocui.ErrQuit
	})
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		d.t.Error("gui main loop did not stop")
	}
}

// Press sends keys one at a time, waiting until the main loop has handled
// each.
func (d *GuiDriver) Press(keys ...gocui.Key) {
	for _, key := range keys {
		d.screen.SendKeySync(key)
	}
}

// PressToExit sends a key whose handler ends the main loop. There is no loop
// left to wait for afterwards.
func (d *GuiDriver) PressToExit(key gocui.Key) {
	d.exited = true
	d.screen.SendKey(key)
}

// TypeToExit types ASCII text whose last key ends the main loop.
func (d *GuiDriver) TypeToExit(text string) {
	d.exited = true
	d.screen.SendStringAsKeys(text)
}

// Type sends ASCII text as key presses and waits until all are handled.
func (d *GuiDriver) Type(text string) {
	for len(text) > 0 {
		n := min(len(text), maxQueuedKeys)
		d.screen.SendStringAsKeys(text[:n])
		d.screen.WaitSync()
		text = text[n:]
	}
}

// Sync waits for one more pass of the main loop, so that updates posted
// before the call have been drawn.
func (d *GuiDriver) Sync() {
	d.screen.WaitSync()
}

// Row returns the text on row y of the terminal.
func (d *GuiDriver) Row(y int) string {
	width, _ := d.Gui.Size()
	return d.RowRange(y, 0, width)
}

// RowRange returns the text between columns [from, to) on row y.
func (d *GuiDriver) RowRange(y, from, to int) string {
	var sb strings.Builder
	for x := from; x < to; x++ {
		r, err := d.Gui.Rune(x, y)
		require.NoError(d.t, err)
		sb.WriteRune(r)
	}
	return sb.String()
}

// Rune returns the rune drawn at (x, y).
func (d *GuiDriver) Rune(x, y int) rune {
	r, err := d.Gui.Rune(x, y)
	require.NoError(d.t, err)
	return r
}

// ViewContent returns the text inside the frame of a view as drawn.
func (d *GuiDriver) ViewContent(name string) string {
	content, err := d.screen.GetViewContent(name)
	require.NoError(d.t, err)
	return content
}

// Dump returns every row joined by newlines, handy in failure messages.
func (d *GuiDriver) Dump() string {
	_, height := d.Gui.Size()
	rows := make([]string, height)
	for y := range rows {
		rows[y] = d.Row(y)
	}
	return strings.Join(rows, "\n")
}
