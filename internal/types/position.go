// internal/types/position.go
package types

// Position is a cursor position within a document.
// Line is the 0-based line index, Col the 0-based rune index within the line.
type Position struct {
	Line int
	Col  int
}
