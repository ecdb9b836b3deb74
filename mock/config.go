package mock

import "github.com/fwojciec/glyphgrad"

// Compile-time interface verification.
var _ glyphgrad.ConfigLoader = (*ConfigLoader)(nil)

// ConfigLoader is a mock implementation of glyphgrad.ConfigLoader.
type ConfigLoader struct {
	LoadFn func(path string) (*glyphgrad.Config, error)
}

func (l *ConfigLoader) Load(path string) (*glyphgrad.Config, error) {
	return l.LoadFn(path)
}
