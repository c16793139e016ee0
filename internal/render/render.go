package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gridlabs/gridart/internal/grid"
)

// borderPadding is the fixed extra width the decorative frame adds around
// the content: "| " on the left and " |" on the right.
const borderPadding = 4

// DefaultTitle labels the bordered frame when no title is configured.
const DefaultTitle = "ASCII Art"

// Options selects the output shape. Rendering is pure and cannot fail on a
// valid grid.
type Options struct {
	// Fill substitutes for positions with no cell. Zero means space.
	Fill   rune
	Border bool
	// Info prepends grid statistics to the rendered art.
	Info  bool
	Title string
}

// Lines formats g as text lines per opts: one line per display row, columns
// left to right, top row holding the highest source y.
func Lines(g *grid.Grid, opts Options) []string {
	fill := opts.Fill
	if fill == 0 {
		fill = ' '
	}
	rows := plainRows(g, fill)

	var out []string
	if opts.Info {
		out = append(out, infoLines(g, len(rows))...)
	}
	if opts.Border {
		out = append(out, borderedRows(rows, opts.Title)...)
	} else {
		out = append(out, rows...)
	}
	return out
}

func plainRows(g *grid.Grid, fill rune) []string {
	width, height := g.Width(), g.Height()
	rows := make([]string, 0, height)
	var b strings.Builder
	for row := 0; row < height; row++ {
		b.Reset()
		for col := 0; col < width; col++ {
			b.WriteRune(g.RowRuneAt(col, row, fill))
		}
		// Trailing whitespace carries no art; a visible fill rune survives.
		rows = append(rows, strings.TrimRight(b.String(), " \t"))
	}
	return rows
}

func borderedRows(rows []string, title string) []string {
	if title == "" {
		title = DefaultTitle
	}
	content := 0
	for _, r := range rows {
		if n := utf8.RuneCountInString(r); n > content {
			content = n
		}
	}
	if n := utf8.RuneCountInString(title); n > content {
		content = n
	}
	total := content + borderPadding
	rail := strings.Repeat("=", total)

	out := make([]string, 0, len(rows)+4)
	out = append(out, rail)
	out = append(out, "| "+center(title, content)+" |")
	out = append(out, rail)
	for _, r := range rows {
		out = append(out, "| "+ljust(r, content)+" |")
	}
	out = append(out, rail)
	return out
}

func infoLines(g *grid.Grid, lineCount int) []string {
	minX, maxX, minY, maxY := g.Bounds()
	return []string{
		"Debug Info:",
		fmt.Sprintf("  Cells parsed: %d", g.Count()),
		fmt.Sprintf("  Grid bounds: X[%d..%d], Y[%d..%d]", minX, maxX, minY, maxY),
		fmt.Sprintf("  Grid size: %dx%d", g.Width(), g.Height()),
		fmt.Sprintf("  Output lines: %d", lineCount),
		"",
	}
}

func center(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}

func ljust(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
