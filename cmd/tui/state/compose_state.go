package state

import (
	"strings"
	"unicode/utf8"
)

// ComposeState is the text being written in the compose box. The cursor is a
// code point index into the input, never a byte offset.
type ComposeState struct {
	input     string
	cursorPos int
}

func NewComposeState() *ComposeState {
	return &ComposeState{}
}

// Input returns the current text.
func (s *ComposeState) Input() string {
	return s.input
}

// CursorPos returns the cursor as a code point index.
func (s *ComposeState) CursorPos() int {
	return s.cursorPos
}

func (s *ComposeState) IsEmpty() bool {
	return s.input == ""
}

// RuneCount returns the number of code points in the input.
func (s *ComposeState) RuneCount() int {
	return utf8.RuneCountInString(s.input)
}

// InsertChar inserts c before the cursor and advances the cursor.
func (s *ComposeState) InsertChar(c rune) {
	at := s.charToByte(s.cursorPos)
	s.input = s.input[:at] + string(c) + s.input[at:]
	s.cursorPos++
}

// InsertNewline inserts a line break at the cursor.
func (s *ComposeState) InsertNewline() {
	s.InsertChar('\n')
}

// Backspace removes the code point before the cursor.
func (s *ComposeState) Backspace() {
	if s.cursorPos == 0 {
		return
	}
	start := s.charToByte(s.cursorPos - 1)
	end := s.charToByte(s.cursorPos)
	s.input = s.input[:start] + s.input[end:]
	s.cursorPos--
}

// Delete removes the code point under the cursor.
func (s *ComposeState) Delete() {
	if s.cursorPos >= s.RuneCount() {
		return
	}
	start := s.charToByte(s.cursorPos)
	end := s.charToByte(s.cursorPos + 1)
	s.input = s.input[:start] + s.input[end:]
}

func (s *ComposeState) MoveLeft() {
	if s.cursorPos > 0 {
		s.cursorPos--
	}
}

func (s *ComposeState) MoveRight() {
	if s.cursorPos < s.RuneCount() {
		s.cursorPos++
	}
}

func (s *ComposeState) MoveHome() {
	s.cursorPos = 0
}

func (s *ComposeState) MoveEnd() {
	s.cursorPos = s.RuneCount()
}

// Clear empties the input and resets the cursor.
func (s *ComposeState) Clear() {
	s.input = ""
	s.cursorPos = 0
}

// Send returns the trimmed input and clears the state. Whitespace-only input
// returns false and leaves the state untouched.
func (s *ComposeState) Send() (string, bool) {
	text := strings.TrimSpace(s.input)
	if text == "" {
		return "", false
	}
	s.Clear()
	return text, true
}

// charToByte maps a code point index to its byte offset. Indexes at or past
// the end map to len(input).
func (s *ComposeState) charToByte(pos int) int {
	if pos <= 0 {
		return 0
	}
	n := 0
	for i := range s.input {
		if n == pos {
			return i
		}
		n++
	}
	return len(s.input)
}
