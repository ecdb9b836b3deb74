package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fwojciec/glyphgrad"
	"github.com/fwojciec/glyphgrad/chroma"
	"github.com/fwojciec/glyphgrad/jsonl"
)

// layout positions text with the configured cell geometry.
func (a *App) layout(cmd *cobra.Command, text string) *glyphgrad.GlyphCollection {
	c := glyphgrad.NewGlyphCollection(a.NewLayout(a.config.Layout).Layout(text))
	loggerFromContext(cmd.Context()).Debug("Laid out text",
		"glyphs", c.Len(), "width", c.Width(), "height", c.Height())
	return c
}

// markupCommand colors text by position and prints it as markup.
func (a *App) markupCommand() *cobra.Command {
	var (
		gf        gradientFlags
		mf        markupFlags
		selection []int
		noMerge   bool
		copyOut   bool
	)

	cmd := &cobra.Command{
		Use:   "markup [file]",
		Short: "Color text by glyph position and print it as markup",
		Long:  `Lays the text out on a monospace grid, colors every glyph by its position across the bounding box of the text and prints the result with adjacent glyphs of one color merged into a single tag.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.readInput(args)
			if err != nil {
				return err
			}
			spec, tpl, err := a.settings(cmd, &gf, &mf)
			if err != nil {
				return err
			}

			c := a.layout(cmd, text)
			if len(selection) > 0 {
				if err := c.Recolor(selection, spec); err != nil {
					return err
				}
			} else {
				c.RecolorAll(spec)
			}

			var out string
			if noMerge {
				out = tpl.EncodeEach(c.Glyphs())
			} else {
				out = c.Encode(tpl)
			}
			if _, err := fmt.Fprintln(a.Stdout, out); err != nil {
				return err
			}
			if copyOut {
				return a.copyOutput(cmd, out)
			}
			return nil
		},
	}

	gf.register(cmd)
	mf.register(cmd)
	cmd.Flags().IntSliceVar(&selection, "select", nil, "color only these glyph IDs, with the gradient spanning their bounding box")
	cmd.Flags().BoolVar(&noMerge, "no-merge", false, "emit one tag per glyph")
	cmd.Flags().BoolVar(&copyOut, "copy", false, "also copy the markup to the clipboard")

	return cmd
}

// colorsCommand prints sequential gradient colors per line as JSON Lines.
func (a *App) colorsCommand() *cobra.Command {
	var (
		start, end, space string
		length, offset    int
		span              bool
		out               string
		mf                markupFlags
		markup            bool
	)

	cmd := &cobra.Command{
		Use:   "colors [file]",
		Short: "Print sequential gradient colors for each line as JSON Lines",
		Long:  `Assigns gradient colors to the glyphs of each line in reading order, skipping whitespace. With --length and --offset a line shows a window of a longer gradient; with --span one gradient runs across all lines. With --markup the colored lines are printed as markup instead of records.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.readInput(args)
			if err != nil {
				return err
			}

			g := a.config.Gradient.Merge(glyphgrad.GradientConfig{Start: start, End: end, Space: space})
			startColor, err := a.Parser.Parse(g.Start)
			if err != nil {
				return fmt.Errorf("start: %w", err)
			}
			endColor, err := a.Parser.Parse(g.End)
			if err != nil {
				return fmt.Errorf("end: %w", err)
			}
			cs, err := glyphgrad.ParseColorSpace(g.Space)
			if err != nil {
				return err
			}
			if length < 0 {
				return &glyphgrad.ConfigError{Field: "length", Value: length, Reason: "must not be negative"}
			}

			lines := glyphgrad.SplitLines(a.Segmenter.Segment(text))
			total := 0
			for _, line := range lines {
				total += glyphgrad.CountColorable(line)
			}

			gradients := make([]glyphgrad.LineGradient, len(lines))
			done := 0
			for i, line := range lines {
				lg := glyphgrad.LineGradient{Start: startColor, End: endColor, Space: cs, Length: length, Offset: offset}
				if span {
					lg.Length = max(length, total)
					lg.Offset = offset + done
				}
				gradients[i] = lg
				done += glyphgrad.CountColorable(line)
			}
			loggerFromContext(cmd.Context()).Debug("Colored lines", "lines", len(lines), "glyphs", total)

			if markup {
				tpl, err := mf.apply(a.config.Markup).Resolve(a.Parser)
				if err != nil {
					return fmt.Errorf("markup: %w", err)
				}
				runs := make([][]glyphgrad.Run, len(lines))
				for i, line := range lines {
					runs[i] = gradients[i].Runs(line)
				}
				_, err = fmt.Fprintln(a.Stdout, tpl.EncodeRuns(glyphgrad.JoinLines(runs)))
				return err
			}

			records := make([]jsonl.Record, 0, len(lines))
			for i, line := range lines {
				records = append(records, jsonl.Record{Line: i, Glyphs: line, Colors: gradients[i].Colors(line)})
			}

			if out != "" {
				if err := jsonl.NewSaver().Save(out, records); err != nil {
					return err
				}
				loggerFromContext(cmd.Context()).Info("Wrote colors", "path", out, "lines", len(records))
				return nil
			}
			w := jsonl.NewWriter(a.Stdout)
			for _, r := range records {
				if err := w.Write(r); err != nil {
					return err
				}
			}
			return nil
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&start, "start", "", "start color")
	fs.StringVar(&end, "end", "", "end color")
	fs.StringVar(&space, "space", "", "interpolation space: RGB or HSV")
	fs.IntVar(&length, "length", 0, "length of the full gradient in glyphs (0: the line length)")
	fs.IntVar(&offset, "offset", 0, "index into the full gradient where the line starts")
	fs.BoolVar(&span, "span", false, "run one gradient across all lines")
	fs.StringVarP(&out, "output", "o", "", "append records to this JSONL file instead of stdout")
	fs.BoolVar(&markup, "markup", false, "print the colored lines as markup")
	mf.register(cmd)

	return cmd
}

// previewCommand prints the colored text with terminal colors.
func (a *App) previewCommand() *cobra.Command {
	var (
		gf        gradientFlags
		selection []int
	)

	cmd := &cobra.Command{
		Use:   "preview [file]",
		Short: "Print the colored text with terminal colors",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.readInput(args)
			if err != nil {
				return err
			}
			spec, _, err := a.settings(cmd, &gf, nil)
			if err != nil {
				return err
			}

			c := a.layout(cmd, text)
			if len(selection) > 0 {
				if err := c.Recolor(selection, spec); err != nil {
					return err
				}
			} else {
				c.RecolorAll(spec)
			}
			_, err = fmt.Fprintln(a.Stdout, a.Previewer.Preview(c.Glyphs()))
			return err
		},
	}

	gf.register(cmd)
	cmd.Flags().IntSliceVar(&selection, "select", nil, "color only these glyph IDs, with the gradient spanning their bounding box")

	return cmd
}

// editCommand opens the interactive editor and prints the final markup.
func (a *App) editCommand() *cobra.Command {
	var (
		gf      gradientFlags
		mf      markupFlags
		copyOut bool
	)

	cmd := &cobra.Command{
		Use:   "edit [file]",
		Short: "Edit text interactively with a live gradient preview",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var text string
			switch {
			case a.paste:
				data, err := a.pasteInput()
				if err != nil {
					return err
				}
				text = string(data)
			case len(args) > 0:
				data, err := os.ReadFile(args[0])
				if err != nil {
					return err
				}
				text = string(data)
			}
			spec, tpl, err := a.settings(cmd, &gf, &mf)
			if err != nil {
				return err
			}

			editor := a.NewEditor(a.NewLayout(a.config.Layout), spec, tpl)
			markup, err := editor.Edit(cmd.Context(), text)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintln(a.Stdout, markup); err != nil {
				return err
			}
			if copyOut {
				return a.copyOutput(cmd, markup)
			}
			return nil
		},
	}

	gf.register(cmd)
	mf.register(cmd)
	cmd.Flags().BoolVar(&copyOut, "copy", false, "also copy the final markup to the clipboard")

	return cmd
}

// stylesCommand lists the chroma styles and configured presets.
func (a *App) stylesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "List the styles and presets usable with --style and --preset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range chroma.StyleNames() {
				p, err := chroma.Lookup(name)
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintf(a.Stdout, "style  %-24s %s → %s  text %s\n", name, p.Start, p.End, p.Text); err != nil {
					return err
				}
			}
			for _, name := range a.config.PresetNames() {
				p, err := a.config.Preset(name)
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintf(a.Stdout, "preset %-24s %s → %s  %s %s ×%d\n", name, p.Start, p.End, p.Space, p.Mode, p.Cycles); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
