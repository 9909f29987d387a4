// Package logcapture collects formatted log lines in memory so they can be
// shown inside the TUI instead of being written over the alternate screen.
package logcapture

import (
	"io"
	"sync"
)

// RingCapacity is the number of lines a LogBuffer retains between drains.
const RingCapacity = 500

// WriterMaker is implemented by sinks that hand out a fresh writer for every
// write session. The logging layer closes each writer when the record is done.
type WriterMaker interface {
	MakeWriter() io.WriteCloser
}

// LogBuffer is a bounded FIFO of log lines shared by any number of producers
// and a single consumer. When full, the oldest line is dropped.
type LogBuffer struct {
	mu    sync.Mutex
	ring  []string
	head  int
	count int
}

// NewLogBuffer creates an empty buffer holding up to RingCapacity lines.
func NewLogBuffer() *LogBuffer {
	return NewLogBufferWithCapacity(RingCapacity)
}

// NewLogBufferWithCapacity creates an empty buffer with a custom bound.
// Non-positive limits fall back to RingCapacity.
func NewLogBufferWithCapacity(limit int) *LogBuffer {
	if limit <= 0 {
		limit = RingCapacity
	}
	return &LogBuffer{ring: make([]string, limit)}
}

// Push appends a line, evicting the oldest one when the buffer is full.
func (b *LogBuffer) Push(line string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.count == len(b.ring) {
		b.ring[b.head] = line
		b.head = (b.head + 1) % len(b.ring)
		return
	}
	b.ring[(b.head+b.count)%len(b.ring)] = line
	b.count++
}

// Drain removes and returns every buffered line, oldest first.
func (b *LogBuffer) Drain() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]string, b.count)
	for i := range out {
		idx := (b.head + i) % len(b.ring)
		out[i] = b.ring[idx]
		b.ring[idx] = ""
	}
	b.head = 0
	b.count = 0
	return out
}

// Len reports how many lines are waiting to be drained.
func (b *LogBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.count
}

// Capacity returns the maximum number of retained lines.
func (b *LogBuffer) Capacity() int {
	return len(b.ring)
}

// MakeWriter returns a new LineWriter bound to this buffer.
func (b *LogBuffer) MakeWriter() io.WriteCloser {
	return NewLineWriter(b)
}
