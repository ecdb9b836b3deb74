package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/fwojciec/glyphgrad"
	"github.com/fwojciec/glyphgrad/chroma"
)

// ErrNoInput is returned when there is no text to color.
var ErrNoInput = errors.New("no input text")

// App encapsulates the application logic for testing.
type App struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Loader    glyphgrad.ConfigLoader
	Parser    glyphgrad.ColorParser
	Segmenter glyphgrad.Segmenter
	Previewer glyphgrad.Previewer
	Clipboard glyphgrad.Clipboard
	NewLayout func(cfg glyphgrad.LayoutConfig) glyphgrad.Layout
	NewEditor func(layout glyphgrad.Layout, spec glyphgrad.GradientSpec, tpl glyphgrad.MarkupTemplate) glyphgrad.Editor

	// ConfigPath is loaded when --config is not given. Empty means the
	// built-in defaults.
	ConfigPath string

	config glyphgrad.Config
	paste  bool
}

// Command builds the root command with all subcommands registered.
func (a *App) Command() *cobra.Command {
	var (
		configPath string
		verbose    bool
	)

	root := &cobra.Command{
		Use:           "glyphgrad",
		Short:         "Color text with gradients and encode it as markup",
		Long:          `glyphgrad assigns gradient colors to the glyphs of a text, by position on a monospace grid or by reading order, and prints the result as compact color markup.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			logger := newLogger(a.Stderr, level)
			cmd.SetContext(withLogger(cmd.Context(), logger))

			if configPath == "" {
				configPath = a.ConfigPath
			}
			return a.loadConfig(configPath, logger)
		},
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a TOML configuration file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().BoolVar(&a.paste, "paste", false, "read the input text from the clipboard")

	root.AddCommand(a.markupCommand())
	root.AddCommand(a.colorsCommand())
	root.AddCommand(a.previewCommand())
	root.AddCommand(a.editCommand())
	root.AddCommand(a.stylesCommand())

	return root
}

func (a *App) loadConfig(path string, logger *log.Logger) error {
	if path == "" {
		a.config = glyphgrad.DefaultConfig()
		logger.Debug("Using built-in configuration")
		return nil
	}
	cfg, err := a.Loader.Load(path)
	if err != nil {
		return err
	}
	a.config = *cfg
	logger.Debug("Loaded configuration", "path", path, "presets", len(cfg.Presets))
	return nil
}

// readInput returns the clipboard text with --paste, otherwise the text of
// the named file, or of stdin when no file (or "-") is given. A single
// trailing newline is dropped.
func (a *App) readInput(args []string) (string, error) {
	var data []byte
	var err error
	switch {
	case a.paste:
		if len(args) > 0 {
			return "", errors.New("--paste takes no file argument")
		}
		data, err = a.pasteInput()
	case len(args) > 0 && args[0] != "-":
		data, err = os.ReadFile(args[0])
	default:
		data, err = io.ReadAll(a.Stdin)
	}
	if err != nil {
		return "", err
	}
	text := strings.TrimSuffix(strings.TrimSuffix(string(data), "\n"), "\r")
	if text == "" {
		return "", ErrNoInput
	}
	return text, nil
}

// gradientFlags are the command-line overrides of a GradientConfig.
type gradientFlags struct {
	start  string
	end    string
	space  string
	cycles int
	mode   string
	preset string
	style  string
}

func (f *gradientFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.start, "start", "", "start color")
	fs.StringVar(&f.end, "end", "", "end color")
	fs.StringVar(&f.space, "space", "", "interpolation space: RGB or HSV")
	fs.IntVar(&f.cycles, "cycles", 0, "number of gradient cycles across the text")
	fs.StringVar(&f.mode, "mode", "", "cycle mode: none, repeat or reflect")
	fs.StringVar(&f.preset, "preset", "", "gradient preset from the configuration file")
	fs.StringVar(&f.style, "style", "", "take colors from a chroma highlighting style (see 'glyphgrad styles')")
}

// resolve layers the configuration, the preset, the style and the flags set
// on the command line, in that order.
func (f *gradientFlags) resolve(cmd *cobra.Command, cfg glyphgrad.Config) (glyphgrad.GradientConfig, glyphgrad.MarkupConfig, error) {
	g, m := cfg.Gradient, cfg.Markup
	if f.preset != "" {
		p, err := cfg.Preset(f.preset)
		if err != nil {
			return g, m, err
		}
		g = p
	}
	if f.style != "" {
		p, err := chroma.Lookup(f.style)
		if err != nil {
			return g, m, err
		}
		g = g.Merge(p.Gradient())
		m = m.Merge(p.Markup())
	}

	var layer glyphgrad.GradientConfig
	fs := cmd.Flags()
	if fs.Changed("start") {
		layer.Start = f.start
	}
	if fs.Changed("end") {
		layer.End = f.end
	}
	if fs.Changed("space") {
		layer.Space = f.space
	}
	if fs.Changed("cycles") {
		if f.cycles < 1 {
			return g, m, &glyphgrad.ConfigError{Field: "cycles", Value: f.cycles, Reason: "must be at least 1"}
		}
		layer.Cycles = f.cycles
	}
	if fs.Changed("mode") {
		layer.Mode = f.mode
	}
	return g.Merge(layer), m, nil
}

// markupFlags are the command-line overrides of a MarkupConfig.
type markupFlags struct {
	template  string
	def       string
	lineBreak string
	uppercase bool
}

func (f *markupFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.template, "template", "", "markup template with %%color and %%words placeholders")
	fs.StringVar(&f.def, "default", "", "default font color, emitted without markup")
	fs.StringVar(&f.lineBreak, "break", "", "token written for line breaks")
	fs.BoolVar(&f.uppercase, "uppercase", false, "write colors as #RRGGBB")
}

func (f *markupFlags) apply(m glyphgrad.MarkupConfig) glyphgrad.MarkupConfig {
	return m.Merge(glyphgrad.MarkupConfig{
		Template:  f.template,
		Default:   f.def,
		Break:     f.lineBreak,
		Uppercase: f.uppercase,
	})
}

// settings resolves the gradient and template for a command.
func (a *App) settings(cmd *cobra.Command, gf *gradientFlags, mf *markupFlags) (glyphgrad.GradientSpec, glyphgrad.MarkupTemplate, error) {
	g, m, err := gf.resolve(cmd, a.config)
	if err != nil {
		return glyphgrad.GradientSpec{}, glyphgrad.MarkupTemplate{}, err
	}
	if mf != nil {
		m = mf.apply(m)
	}
	spec, err := g.Spec(a.Parser)
	if err != nil {
		return glyphgrad.GradientSpec{}, glyphgrad.MarkupTemplate{}, fmt.Errorf("gradient: %w", err)
	}
	tpl, err := m.Resolve(a.Parser)
	if err != nil {
		return glyphgrad.GradientSpec{}, glyphgrad.MarkupTemplate{}, fmt.Errorf("markup: %w", err)
	}
	loggerFromContext(cmd.Context()).Debug("Resolved gradient",
		"start", spec.Start, "end", spec.End, "space", spec.Space,
		"cycles", spec.Cycles, "mode", spec.Mode)
	return spec, tpl, nil
}

func (a *App) pasteInput() ([]byte, error) {
	if a.Clipboard == nil {
		return nil, errors.New("clipboard not available")
	}
	s, err := a.Clipboard.Paste()
	if err != nil {
		return nil, fmt.Errorf("paste from clipboard: %w", err)
	}
	return []byte(s), nil
}

// copyOutput copies s to the clipboard when requested.
func (a *App) copyOutput(cmd *cobra.Command, s string) error {
	if a.Clipboard == nil {
		return errors.New("clipboard not available")
	}
	if err := a.Clipboard.Copy(s); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	loggerFromContext(cmd.Context()).Info("Copied markup to clipboard", "bytes", len(s))
	return nil
}
