package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/chriserin/story/internal/parser"
)

func ListRow(w io.Writer, s parser.Summary, fileWidth, nameWidth int) {
	p := newPalette(w)
	fmt.Fprintf(w, "%s  %s  %s\n",
		pad(s.File, fileWidth),
		pad(s.Name, nameWidth),
		p.faint.Render(fmt.Sprintf("%d scenarios, %d steps", s.Scenarios, s.Steps)))
}

func ShowHeader(w io.Writer, path string) {
	p := newPalette(w)
	fmt.Fprintln(w, p.heading.Render(path))
}

// ShowFeature prints a parsed feature back in its canonical layout.
func ShowFeature(w io.Writer, f *parser.Feature) {
	for _, line := range f.Description {
		fmt.Fprintln(w, line)
	}
	for _, sc := range f.Scenarios {
		fmt.Fprintln(w)
		for _, line := range sc.Description {
			fmt.Fprintln(w, "  "+line)
		}
		for _, step := range sc.Steps {
			fmt.Fprintln(w, "    "+step.Text)
		}
	}
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
