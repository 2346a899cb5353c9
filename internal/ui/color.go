package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// palette holds styles rendered for one writer, so colour is only emitted
// when that writer is a terminal.
type palette struct {
	passed  lipgloss.Style
	failed  lipgloss.Style
	skipped lipgloss.Style
	missing lipgloss.Style
	pending lipgloss.Style
	heading lipgloss.Style
	faint   lipgloss.Style
}

func newPalette(w io.Writer) palette {
	r := lipgloss.NewRenderer(w)
	return palette{
		passed:  r.NewStyle().Foreground(lipgloss.Color("2")),
		failed:  r.NewStyle().Foreground(lipgloss.Color("1")),
		skipped: r.NewStyle().Foreground(lipgloss.Color("6")),
		missing: r.NewStyle().Foreground(lipgloss.Color("5")),
		pending: r.NewStyle().Foreground(lipgloss.Color("3")),
		heading: r.NewStyle().Bold(true),
		faint:   r.NewStyle().Faint(true),
	}
}

func NewLine(w io.Writer, path string) {
	p := newPalette(w)
	fmt.Fprintln(w, p.passed.Render("new")+"  "+path)
}

func TrkLine(w io.Writer, path string) {
	p := newPalette(w)
	fmt.Fprintln(w, p.faint.Render("trk")+"  "+path)
}
