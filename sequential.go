package glyphgrad

import (
	"strings"
	"unicode"
)

// Segmenter splits text into glyphs.
type Segmenter interface {
	Segment(text string) []string
}

// RuneSegmenter treats every rune as one glyph.
type RuneSegmenter struct{}

// Segment implements Segmenter.
func (RuneSegmenter) Segment(text string) []string {
	out := make([]string, 0, len(text))
	for _, r := range text {
		out = append(out, string(r))
	}
	return out
}

// Linspace returns n colors evenly spaced from start to end, both included.
// A single sample is start; n <= 0 yields nil.
func Linspace(start, end Color, space ColorSpace, n int) []Color {
	if n <= 0 {
		return nil
	}
	out := make([]Color, n)
	for i := range out {
		out[i] = sample(start, end, space, i, n)
	}
	return out
}

// sample returns the i-th of n evenly spaced colors.
func sample(start, end Color, space ColorSpace, i, n int) Color {
	if n <= 1 {
		return start
	}
	if i >= n {
		i = n - 1
	}
	return Interpolate(start, end, space, float64(i)/float64(n-1))
}

// Colorable reports whether a glyph receives a color in sequential mode.
// Whitespace and line breaks do not.
func Colorable(glyph string) bool {
	return strings.IndexFunc(glyph, func(r rune) bool { return !unicode.IsSpace(r) }) >= 0
}

// CountColorable returns the number of colorable glyphs.
func CountColorable(glyphs []string) int {
	n := 0
	for _, g := range glyphs {
		if Colorable(g) {
			n++
		}
	}
	return n
}

// LineGradient colors a flat run of glyphs. A gradient of Length samples may
// be spread across several lines by giving each line the Offset of its first
// colorable glyph within the whole.
type LineGradient struct {
	Start  Color
	End    Color
	Space  ColorSpace
	Length int // total samples; 0 means the line's own colorable count
	Offset int // index of the line's first sample, clamped to [0, Length-count]
}

// window returns the effective total length and the clamped offset for a
// line holding count colorable glyphs.
func (g LineGradient) window(count int) (total, offset int) {
	total = g.Length
	if total <= 0 {
		total = count
	}
	offset = g.Offset
	if offset > total-count {
		offset = total - count
	}
	if offset < 0 {
		offset = 0
	}
	return total, offset
}

// Colors returns hex colors aligned 1:1 with the colorable glyphs.
func (g LineGradient) Colors(glyphs []string) []string {
	count := CountColorable(glyphs)
	out := make([]string, 0, count)
	if g.Start.Equal(g.End) {
		for i := 0; i < count; i++ {
			out = append(out, g.Start.String())
		}
		return out
	}
	total, offset := g.window(count)
	for i := 0; i < count; i++ {
		out = append(out, sample(g.Start, g.End, g.Space, offset+i, total).String())
	}
	return out
}

// Runs returns one run per glyph: colorable glyphs carry their color,
// whitespace carries none, and line breaks become break runs. When Start and
// End are equal each stretch between line breaks is a single run of that
// color.
func (g LineGradient) Runs(glyphs []string) []Run {
	if g.Start.Equal(g.End) {
		return solidRuns(glyphs, g.Start)
	}
	total, offset := g.window(CountColorable(glyphs))
	runs := make([]Run, 0, len(glyphs))
	i := 0
	for _, text := range glyphs {
		switch {
		case text == LineBreak:
			runs = append(runs, Run{Break: true})
		case !Colorable(text):
			runs = append(runs, Run{Text: text})
		default:
			c := sample(g.Start, g.End, g.Space, offset+i, total)
			runs = append(runs, Run{Text: text, Color: &c})
			i++
		}
	}
	return runs
}

func solidRuns(glyphs []string, c Color) []Run {
	var runs []Run
	var sb strings.Builder
	flush := func() {
		if sb.Len() > 0 {
			runs = append(runs, Run{Text: sb.String(), Color: &c})
			sb.Reset()
		}
	}
	for _, text := range glyphs {
		if text == LineBreak {
			flush()
			runs = append(runs, Run{Break: true})
			continue
		}
		sb.WriteString(text)
	}
	flush()
	return runs
}

// Lines spreads one gradient across lines, computing the total length and
// each line's offset. Length and Offset of g are ignored.
func (g LineGradient) Lines(lines [][]string) [][]Run {
	total := 0
	for _, line := range lines {
		total += CountColorable(line)
	}
	out := make([][]Run, len(lines))
	offset := 0
	for i, line := range lines {
		lg := g
		lg.Length = total
		lg.Offset = offset
		out[i] = lg.Runs(line)
		offset += CountColorable(line)
	}
	return out
}

// SplitLines splits glyphs at line breaks. The breaks are dropped.
func SplitLines(glyphs []string) [][]string {
	lines := [][]string{{}}
	for _, g := range glyphs {
		if g == LineBreak {
			lines = append(lines, []string{})
			continue
		}
		lines[len(lines)-1] = append(lines[len(lines)-1], g)
	}
	return lines
}

// JoinLines joins per-line runs into one run sequence with a break run
// between lines.
func JoinLines(lines [][]Run) []Run {
	var out []Run
	for i, line := range lines {
		if i > 0 {
			out = append(out, Run{Break: true})
		}
		out = append(out, line...)
	}
	return out
}
