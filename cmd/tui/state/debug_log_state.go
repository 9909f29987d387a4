package state

// MaxHistoryLines bounds the debug pane history.
const MaxHistoryLines = 1000

// LineSource is drained once per frame for new log lines.
type LineSource interface {
	Drain() []string
}

// DebugLogState holds the lines shown in the debug pane and how far the pane
// is scrolled back. ScrollOffset counts lines up from the newest.
type DebugLogState struct {
	source       LineSource
	lines        []string
	visible      bool
	scrollOffset int
	maxLines     int
}

func NewDebugLogState(source LineSource) *DebugLogState {
	return &DebugLogState{
		source:   source,
		maxLines: MaxHistoryLines,
	}
}

// Refresh moves everything buffered in the source into the history and trims
// it to MaxHistoryLines. Trimming pulls the scroll offset down by the number
// of dropped lines.
func (s *DebugLogState) Refresh() {
	if s.source != nil {
		s.lines = append(s.lines, s.source.Drain()...)
	}
	if excess := len(s.lines) - s.maxLines; excess > 0 {
		n := copy(s.lines, s.lines[excess:])
		clear(s.lines[n:])
		s.lines = s.lines[:n]
		s.scrollOffset = max(s.scrollOffset-excess, 0)
	}
}

// Toggle flips visibility. Opening the pane snaps it to the newest line.
func (s *DebugLogState) Toggle() {
	s.SetVisible(!s.visible)
}

func (s *DebugLogState) Visible() bool {
	return s.visible
}

func (s *DebugLogState) SetVisible(visible bool) {
	s.visible = visible
	if visible {
		s.scrollOffset = 0
	}
}

// ScrollUp moves n lines towards older entries. Negative n is a no-op.
func (s *DebugLogState) ScrollUp(n int) {
	n = max(n, 0)
	s.scrollOffset = min(s.scrollOffset+n, max(len(s.lines)-1, 0))
}

// ScrollDown moves n lines towards newer entries. Negative n is a no-op.
func (s *DebugLogState) ScrollDown(n int) {
	n = max(n, 0)
	s.scrollOffset = max(s.scrollOffset-n, 0)
}

func (s *DebugLogState) ScrollOffset() int {
	return s.scrollOffset
}

// Lines returns a copy of the history, oldest first.
func (s *DebugLogState) Lines() []string {
	out := make([]string, len(s.lines))
	copy(out, s.lines)
	return out
}

func (s *DebugLogState) LineCount() int {
	return len(s.lines)
}

// Clear drops the history and resets scrolling.
func (s *DebugLogState) Clear() {
	s.lines = nil
	s.scrollOffset = 0
}

// Window returns the lines visible in a pane of the given height: the height
// lines ending scrollOffset lines before the newest.
func (s *DebugLogState) Window(height int) []string {
	if height <= 0 {
		return nil
	}
	end := max(len(s.lines)-s.scrollOffset, 0)
	start := max(end-height, 0)
	return s.lines[start:end]
}
