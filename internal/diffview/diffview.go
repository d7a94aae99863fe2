// Package diffview renders the change a format run made, for the CLI's
// --diff preview and its notices.
package diffview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	dmp "github.com/sergi/go-diff/diffmatchpatch"
)

var (
	delLine = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"})
	addLine = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"})
	header  = lipgloss.NewStyle().Bold(true)
	faint   = lipgloss.NewStyle().Faint(true)

	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "130", Dark: "214"}).Bold(true)
)

// Stats counts changed lines.
type Stats struct {
	Added   int
	Removed int
}

// Changed reports whether any line differs.
func (s Stats) Changed() bool { return s.Added > 0 || s.Removed > 0 }

// Lines computes a line-level diff between before and after.
func Lines(before, after string) []dmp.Diff {
	d := dmp.New()
	a, b, lines := d.DiffLinesToChars(before, after)
	diffs := d.DiffMain(a, b, false)
	return d.DiffCharsToLines(diffs, lines)
}

// Render returns a unified-style listing of the changed lines, with
// unchanged lines within context lines of a change. name labels the header.
func Render(name, before, after string, context int) (string, Stats) {
	type line struct {
		op   dmp.Operation
		text string
	}
	var all []line
	var stats Stats
	for _, df := range Lines(before, after) {
		for _, text := range splitLines(df.Text) {
			all = append(all, line{df.Type, text})
			switch df.Type {
			case dmp.DiffInsert:
				stats.Added++
			case dmp.DiffDelete:
				stats.Removed++
			}
		}
	}
	if !stats.Changed() {
		return "", stats
	}

	keep := make([]bool, len(all))
	for i, l := range all {
		if l.op == dmp.DiffEqual {
			continue
		}
		for j := max(0, i-context); j <= min(len(all)-1, i+context); j++ {
			keep[j] = true
		}
	}

	var sb strings.Builder
	sb.WriteString(header.Render("--- "+name) + "\n")
	sb.WriteString(header.Render("+++ "+name+" (formatted)") + "\n")
	skipped := false
	for i, l := range all {
		if !keep[i] {
			skipped = true
			continue
		}
		if skipped {
			sb.WriteString(faint.Render("...") + "\n")
			skipped = false
		}
		switch l.op {
		case dmp.DiffDelete:
			sb.WriteString(delLine.Render("-"+l.text) + "\n")
		case dmp.DiffInsert:
			sb.WriteString(addLine.Render("+"+l.text) + "\n")
		default:
			sb.WriteString(faint.Render(" "+l.text) + "\n")
		}
	}
	return sb.String(), stats
}

// Notice styles a one-line user notice for the terminal.
func Notice(message string) string {
	return noticeStyle.Render(message)
}

// splitLines splits text into lines without their terminators.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}
