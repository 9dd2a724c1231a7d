package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type reportStyles struct {
	header lipgloss.Style
	cell   lipgloss.Style
	ok     lipgloss.Style
	failed lipgloss.Style
}

func newReportStyles(plain bool) reportStyles {
	s := reportStyles{
		header: lipgloss.NewStyle(),
		cell:   lipgloss.NewStyle(),
		ok:     lipgloss.NewStyle(),
		failed: lipgloss.NewStyle(),
	}
	if !plain {
		s.header = s.header.Bold(true).Underline(true)
		s.ok = s.ok.Foreground(lipgloss.Color("10"))
		s.failed = s.failed.Foreground(lipgloss.Color("9")).Bold(true)
	}
	return s
}

var columnWidths = []int{5, 34, 18, 18, 10}

func (s reportStyles) row(style lipgloss.Style, cols ...string) string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = style.Width(columnWidths[i]).Render(c)
	}
	return strings.TrimRight(strings.Join(out, " "), " ")
}

func renderPart(s reportStyles, p PartResult) string {
	if p.Err != nil {
		return s.failed.Render("FAIL")
	}
	return s.ok.Render(fmt.Sprint(p.Answer))
}

// RenderResults lays the results out as a table, one day per row, with the
// failures listed underneath.
func RenderResults(results []Result, plain bool) string {
	s := newReportStyles(plain)
	lines := []string{s.row(s.header, "Day", "Puzzle", "Part 1", "Part 2", "Time")}
	failures := make([]string, 0)
	for _, r := range results {
		total := r.Parts[0].Elapsed + r.Parts[1].Elapsed
		lines = append(lines, s.row(s.cell,
			fmt.Sprint(r.Day.Number),
			r.Day.Title,
			renderPart(s, r.Parts[0]),
			renderPart(s, r.Parts[1]),
			fmt.Sprintf("%.4fs", total.Seconds())))
		for _, p := range r.Parts {
			if p.Err != nil {
				failures = append(failures, s.failed.Render("  "+p.Err.Error()))
			}
		}
	}
	if len(failures) > 0 {
		lines = append(lines, "", s.header.Render("Failures"))
		lines = append(lines, failures...)
	}
	return strings.Join(lines, "\n") + "\n"
}
