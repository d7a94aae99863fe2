package diffview

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestRenderUnchanged(t *testing.T) {
	out, stats := Render("a.c", "int x;\n", "int x;\n", 1)
	assert.Empty(t, out)
	assert.False(t, stats.Changed())
}

func TestRenderShowsChangedLinesWithContext(t *testing.T) {
	before := "a\nb\nc\nint  x;\nd\ne\nf\n"
	after := "a\nb\nc\nint x;\nd\ne\nf\n"

	out, stats := Render("main.c", before, after, 1)
	assert.Equal(t, Stats{Added: 1, Removed: 1}, stats)
	assert.Equal(t, "--- main.c\n"+
		"+++ main.c (formatted)\n"+
		"...\n"+
		" c\n"+
		"-int  x;\n"+
		"+int x;\n"+
		" d\n", out)
}

func TestRenderAddedLines(t *testing.T) {
	out, stats := Render("x", "a{b}", "a\n{\n    b\n}\n", 0)
	assert.Equal(t, Stats{Added: 4, Removed: 1}, stats)
	assert.Contains(t, out, "-a{b}\n")
	assert.Contains(t, out, "+    b\n")
}
