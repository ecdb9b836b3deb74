package mock

import (
	"context"

	"github.com/fwojciec/glyphgrad"
)

// Compile-time interface verification.
var _ glyphgrad.Editor = (*Editor)(nil)

// Editor is a mock implementation of glyphgrad.Editor.
type Editor struct {
	EditFn func(ctx context.Context, text string) (string, error)
}

func (e *Editor) Edit(ctx context.Context, text string) (string, error) {
	return e.EditFn(ctx, text)
}
