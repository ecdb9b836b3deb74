// Command glyphgrad colors text with gradients and prints it as markup.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fwojciec/glyphgrad"
	"github.com/fwojciec/glyphgrad/bubbletea"
	"github.com/fwojciec/glyphgrad/clipboard"
	"github.com/fwojciec/glyphgrad/colorful"
	"github.com/fwojciec/glyphgrad/lipgloss"
	"github.com/fwojciec/glyphgrad/toml"
	"github.com/fwojciec/glyphgrad/uniseg"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130) // Standard shell convention for SIGINT
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	parser := colorful.NewParser()
	previewer := lipgloss.NewPreviewer()
	theme := lipgloss.DetectTheme()

	var cb glyphgrad.Clipboard
	if sys := clipboard.NewSystem(); sys.Available() {
		cb = sys
	}

	app := &App{
		Stdin:     os.Stdin,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		Loader:    toml.NewLoader(parser),
		Parser:    parser,
		Segmenter: uniseg.NewSegmenter(),
		Previewer: previewer,
		Clipboard: cb,
		NewLayout: func(cfg glyphgrad.LayoutConfig) glyphgrad.Layout {
			return uniseg.NewLayout(cfg)
		},
		NewEditor: func(layout glyphgrad.Layout, spec glyphgrad.GradientSpec, tpl glyphgrad.MarkupTemplate) glyphgrad.Editor {
			return bubbletea.NewEditor(layout, previewer,
				bubbletea.WithSpec(spec),
				bubbletea.WithTemplate(tpl),
				bubbletea.WithClipboard(cb),
				bubbletea.WithTheme(theme),
			)
		},
	}
	if path, ok := toml.DefaultPath(); ok {
		app.ConfigPath = path
	}

	return app.Command().ExecuteContext(ctx)
}
