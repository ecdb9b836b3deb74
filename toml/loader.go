// Package toml loads glyphgrad configuration files written in TOML.
package toml

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tomllib "github.com/BurntSushi/toml"

	"github.com/fwojciec/glyphgrad"
)

// Compile-time interface verification.
var _ glyphgrad.ConfigLoader = (*Loader)(nil)

// FileName is the name of the configuration file in the user config directory.
const FileName = "glyphgrad.toml"

// Loader reads a Config from a TOML file, layered over the built-in defaults.
type Loader struct {
	parser glyphgrad.ColorParser
}

// NewLoader creates a Loader. Colors in the file are checked with p; a nil p
// accepts "#RRGGBB" only.
func NewLoader(p glyphgrad.ColorParser) *Loader {
	if p == nil {
		p = glyphgrad.HexParser{}
	}
	return &Loader{parser: p}
}

// Load implements glyphgrad.ConfigLoader. Keys the Config does not declare
// are rejected, as are values that do not resolve.
func (l *Loader) Load(path string) (*glyphgrad.Config, error) {
	cfg := glyphgrad.DefaultConfig()
	md, err := tomllib.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("load config %s: %w", path, &glyphgrad.ConfigError{
			Field:  "key",
			Value:  strings.Join(keys, ", "),
			Reason: "unknown",
		})
	}
	if err := l.check(cfg); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return &cfg, nil
}

// DefaultPath returns the path of the configuration file in the user config
// directory and whether that file exists.
func DefaultPath() (string, bool) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", false
	}
	path := filepath.Join(dir, "glyphgrad", FileName)
	if _, err := os.Stat(path); err != nil {
		return path, false
	}
	return path, true
}

func (l *Loader) check(cfg glyphgrad.Config) error {
	if _, err := cfg.Gradient.Spec(l.parser); err != nil {
		return err
	}
	if _, err := cfg.Markup.Resolve(l.parser); err != nil {
		return err
	}
	for _, name := range cfg.PresetNames() {
		p, err := cfg.Preset(name)
		if err != nil {
			return err
		}
		if _, err := p.Spec(l.parser); err != nil {
			return fmt.Errorf("preset %s: %w", name, err)
		}
	}
	return nil
}
