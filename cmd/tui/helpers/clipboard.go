package helpers

import (
	"errors"

	"github.com/atotto/clipboard"
)

var ErrClipboardUnavailable = errors.New("clipboard is not available on this system")

type Clipboard struct{}

func NewClipboard() *Clipboard {
	return &Clipboard{}
}

func (h *Clipboard) Copy(text string) error {
	if !h.IsAvailable() {
		return ErrClipboardUnavailable
	}
	return clipboard.WriteAll(text)
}

// IsAvailable reports whether a clipboard utility was found at startup.
func (h *Clipboard) IsAvailable() bool {
	return !clipboard.Unsupported
}
