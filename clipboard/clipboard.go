// Package clipboard provides clipboard operations using the atotto/clipboard
// library, which shells out to pbcopy, xclip, xsel, wl-copy or the Windows API.
package clipboard

import (
	"errors"

	clipboardlib "github.com/atotto/clipboard"

	"github.com/fwojciec/glyphgrad"
)

// Ensure System implements the Clipboard interface.
var _ glyphgrad.Clipboard = (*System)(nil)

// ErrUnsupported is returned when no clipboard utility is available.
var ErrUnsupported = errors.New("clipboard: no clipboard utility available")

// System implements Clipboard using the platform clipboard.
type System struct{}

// NewSystem returns a new System clipboard.
func NewSystem() *System {
	return &System{}
}

// Available reports whether a clipboard utility was found on this platform.
func (s *System) Available() bool {
	return !clipboardlib.Unsupported
}

// Copy writes content to the system clipboard.
func (s *System) Copy(content string) error {
	if clipboardlib.Unsupported {
		return ErrUnsupported
	}
	return clipboardlib.WriteAll(content)
}

// Paste reads the current clipboard content.
func (s *System) Paste() (string, error) {
	if clipboardlib.Unsupported {
		return "", ErrUnsupported
	}
	return clipboardlib.ReadAll()
}
