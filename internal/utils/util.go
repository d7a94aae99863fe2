package utils

import (
	"unicode/utf8"
)

// RuneIndexToByteOffset converts a rune index to a byte offset in a byte slice.
// Returns -1 if runeIndex is out of bounds.
func RuneIndexToByteOffset(line []byte, runeIndex int) int {
	if runeIndex <= 0 {
		return 0
	}
	byteOffset := 0
	currentRune := 0
	for byteOffset < len(line) {
		if currentRune == runeIndex {
			return byteOffset
		}
		_, size := utf8.DecodeRune(line[byteOffset:])
		byteOffset += size
		currentRune++
	}
	if currentRune == runeIndex {
		return len(line)
	} // Allow index at the very end
	return -1 // Index out of bounds
}

// InsertAtRune inserts text before the rune at runeIndex, clamping the
// index to the string's bounds.
func InsertAtRune(s string, runeIndex int, text string) string {
	off := RuneIndexToByteOffset([]byte(s), runeIndex)
	if off < 0 {
		off = len(s)
	}
	return s[:off] + text + s[off:]
}

// DeleteRune removes the rune at runeIndex. Out-of-range indexes leave s
// unchanged.
func DeleteRune(s string, runeIndex int) string {
	if runeIndex < 0 {
		return s
	}
	start := RuneIndexToByteOffset([]byte(s), runeIndex)
	if start < 0 || start >= len(s) {
		return s
	}
	_, size := utf8.DecodeRuneInString(s[start:])
	return s[:start] + s[start+size:]
}
