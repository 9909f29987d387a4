package state

import "sync"

// Pane identifies one of the focusable panes.
type Pane int

const (
	PaneSidebar Pane = iota
	PaneMessages
	PaneCompose
)

var paneNames = [...]string{"Sidebar", "Messages", "Compose"}

func (p Pane) String() string {
	if p < 0 || int(p) >= len(paneNames) {
		return "Unknown"
	}
	return paneNames[p]
}

// Next returns the pane after p, wrapping around.
func (p Pane) Next() Pane {
	return (p + 1) % Pane(len(paneNames))
}

// Prev returns the pane before p, wrapping around.
func (p Pane) Prev() Pane {
	return (p + Pane(len(paneNames)) - 1) % Pane(len(paneNames))
}

// StatusKind selects how the status message is colored.
type StatusKind int

const (
	StatusInfo StatusKind = iota
	StatusSuccess
	StatusError
)

type UIState struct {
	mu          sync.RWMutex
	focused     Pane
	helpVisible bool
	status      string
	statusKind  StatusKind
	channel     string
	messages    []string
	running     bool
}

func NewUIState(channel string) *UIState {
	return &UIState{
		focused: PaneCompose,
		channel: channel,
		running: true,
	}
}

func (s *UIState) Focused() Pane {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.focused
}

func (s *UIState) SetFocused(p Pane) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.focused = p
}

func (s *UIState) FocusNext() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.focused = s.focused.Next()
}

func (s *UIState) FocusPrev() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.focused = s.focused.Prev()
}

func (s *UIState) HelpVisible() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.helpVisible
}

func (s *UIState) SetHelpVisible(visible bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.helpVisible = visible
}

func (s *UIState) ToggleHelp() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.helpVisible = !s.helpVisible
}

// Status returns the transient status bar message.
func (s *UIState) Status() (string, StatusKind) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status, s.statusKind
}

func (s *UIState) SetStatus(msg string, kind StatusKind) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = msg
	s.statusKind = kind
}

// ClearStatus drops the status message. The app calls it on every key press.
func (s *UIState) ClearStatus() {
	s.SetStatus("", StatusInfo)
}

func (s *UIState) Channel() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.channel
}

// AddMessage records a message sent during this session.
func (s *UIState) AddMessage(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, text)
}

// Messages returns a copy of the messages sent during this session.
func (s *UIState) Messages() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.messages))
	copy(out, s.messages)
	return out
}

func (s *UIState) Running() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

// Quit marks the UI loop for exit.
func (s *UIState) Quit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = false
}
