package mock

import "github.com/fwojciec/glyphgrad"

// Compile-time interface verification.
var _ glyphgrad.Clipboard = (*Clipboard)(nil)

// Clipboard is a mock implementation of glyphgrad.Clipboard.
type Clipboard struct {
	CopyFn  func(content string) error
	PasteFn func() (string, error)
}

func (c *Clipboard) Copy(content string) error {
	return c.CopyFn(content)
}

func (c *Clipboard) Paste() (string, error) {
	return c.PasteFn()
}
