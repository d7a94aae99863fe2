// internal/tui/drawing.go
package tui

import (
	"github.com/bethropolis/tide-astyle/internal/statusbar"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// calculateVisualColumn returns the cell width of the first runeIndex runes
// of line.
func calculateVisualColumn(line string, runeIndex int) int {
	if runeIndex <= 0 {
		return 0
	}
	visualWidth := 0
	currentRuneIndex := 0

	gr := uniseg.NewGraphemes(line)
	for gr.Next() {
		if currentRuneIndex >= runeIndex {
			break
		}
		visualWidth += gr.Width()
		currentRuneIndex += len(gr.Runes())
	}
	return visualWidth
}

// fillRow paints row y with style.
func fillRow(screen tcell.Screen, y, width int, style tcell.Style) {
	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}
}

// drawRow fills row y and draws text on it.
func drawRow(screen tcell.Screen, y, width int, text string, style tcell.Style) {
	fillRow(screen, y, width, style)
	statusbar.DrawText(screen, 0, y, width, text, style)
}

// drawEntry draws a single-line input field on row y, scrolled so the
// cursor stays visible, and returns the cursor's screen column.
func drawEntry(screen tcell.Screen, y, width int, text string, cursor int, style, cursorStyle tcell.Style) int {
	fillRow(screen, y, width, style)
	if width <= 0 {
		return 0
	}

	runes := []rune(text)
	start := 0
	for start < cursor && calculateVisualColumn(string(runes[start:]), cursor-start) >= width {
		start++
	}
	visible := string(runes[start:])
	statusbar.DrawText(screen, 0, y, width, visible, style)

	cursorX := calculateVisualColumn(visible, cursor-start)
	if cursorX < width {
		mainc, combc, _, _ := screen.GetContent(cursorX, y)
		screen.SetContent(cursorX, y, mainc, combc, cursorStyle)
	}
	return cursorX
}
