package logcapture

import (
	"bytes"
	"strings"
	"unicode/utf8"
)

// LineWriter turns a byte stream into whole lines pushed to a LogBuffer.
// Bytes after the last newline are held until the next newline, Flush or Close.
// A LineWriter is meant for one producer; it is not safe for concurrent use.
type LineWriter struct {
	buffer  *LogBuffer
	pending []byte
}

// NewLineWriter creates a writer that pushes complete lines to buffer.
func NewLineWriter(buffer *LogBuffer) *LineWriter {
	return &LineWriter{buffer: buffer}
}

// Write accepts all of p and pushes every newline-terminated line it completes.
func (w *LineWriter) Write(p []byte) (int, error) {
	w.pending = append(w.pending, p...)

	consumed := 0
	for {
		idx := bytes.IndexByte(w.pending[consumed:], '\n')
		if idx < 0 {
			break
		}
		w.buffer.Push(decodeLossy(w.pending[consumed : consumed+idx]))
		consumed += idx + 1
	}

	if consumed > 0 {
		n := copy(w.pending, w.pending[consumed:])
		w.pending = w.pending[:n]
	}
	return len(p), nil
}

// Flush pushes any partial line as a line of its own.
func (w *LineWriter) Flush() error {
	if len(w.pending) == 0 {
		return nil
	}
	w.buffer.Push(decodeLossy(w.pending))
	w.pending = w.pending[:0]
	return nil
}

// Close flushes the remaining partial line. It is safe to call more than once.
func (w *LineWriter) Close() error {
	_ = w.Flush()
	return nil
}

// Pending returns the bytes still waiting for a newline.
func (w *LineWriter) Pending() []byte {
	return w.pending
}

// decodeLossy replaces every maximal invalid subsequence with one U+FFFD:
// each stray byte gets its own replacement, a truncated sequence gets one.
func decodeLossy(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}

	var sb strings.Builder
	sb.Grow(len(b) + 8)
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		if r == utf8.RuneError && size == 1 {
			sb.WriteRune(utf8.RuneError)
			b = b[invalidPrefixLen(b):]
			continue
		}
		sb.Write(b[:size])
		b = b[size:]
	}
	return sb.String()
}

// invalidPrefixLen returns how many bytes of an invalid sequence at the start
// of b form one maximal subpart, following the Unicode replacement practice.
func invalidPrefixLen(b []byte) int {
	n, lo, hi := sequenceShape(b[0])
	if n == 0 || len(b) < 2 || b[1] < lo || b[1] > hi {
		return 1
	}
	i := 2
	for i < n && i < len(b) && b[i] >= 0x80 && b[i] <= 0xBF {
		i++
	}
	return i
}

// sequenceShape gives the encoded length announced by a lead byte and the
// range allowed for the byte after it. Bytes that cannot lead return n == 0.
func sequenceShape(lead byte) (n int, lo, hi byte) {
	switch {
	case lead >= 0xC2 && lead <= 0xDF:
		return 2, 0x80, 0xBF
	case lead == 0xE0:
		return 3, 0xA0, 0xBF
	case lead == 0xED:
		return 3, 0x80, 0x9F
	case lead >= 0xE1 && lead <= 0xEF:
		return 3, 0x80, 0xBF
	case lead == 0xF0:
		return 4, 0x90, 0xBF
	case lead >= 0xF1 && lead <= 0xF3:
		return 4, 0x80, 0xBF
	case lead == 0xF4:
		return 4, 0x80, 0x8F
	}
	return 0, 0, 0
}
