package ui

import (
	"fmt"
	"io"
	"strings"
)

func RunRow(w io.Writer, id, startedAt, status, summary string) {
	p := newPalette(w)
	st := p.passed
	switch status {
	case "failed":
		st = p.failed
	case "running":
		st = p.pending
	}
	fmt.Fprintf(w, "%s  %s  %s  %s\n", shortID(id), startedAt, st.Render(pad(status, 7)), summary)
}

func StepRow(w io.Writer, feature, scenario, step, status, errText string) {
	p := newPalette(w)
	st := p.passed
	switch status {
	case "failed":
		st = p.failed
	case "skipped":
		st = p.skipped
	case "missing":
		st = p.missing
	case "pending":
		st = p.pending
	}
	fmt.Fprintf(w, "%s  %s / %s / %s\n", st.Render(pad("["+status+"]", 9)), feature, scenario, step)
	for _, line := range strings.Split(errText, "\n") {
		if line != "" {
			fmt.Fprintln(w, "    "+line)
		}
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
