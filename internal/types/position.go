// internal/types/position.go
package types

import "fmt"

// Position represents a location between characters in a document.
// Line is the 0-based line index.
// Col is the 0-based column (rune) index within the line.
type Position struct {
	Line int
	Col  int // Rune index
}

// String renders the position as "line:col".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Compare orders positions by line, then column. It returns -1, 0 or +1.
func Compare(a, b Position) int {
	switch {
	case a.Line < b.Line:
		return -1
	case a.Line > b.Line:
		return 1
	case a.Col < b.Col:
		return -1
	case a.Col > b.Col:
		return 1
	}
	return 0
}

// Before reports whether p comes strictly before o.
func (p Position) Before(o Position) bool {
	return Compare(p, o) < 0
}

// Range is a span of text between two positions, Start <= End.
type Range struct {
	Start Position
	End   Position
}

// NewRange builds a Range from two positions in any order.
func NewRange(a, b Position) Range {
	if b.Before(a) {
		a, b = b, a
	}
	return Range{Start: a, End: b}
}

// IsEmpty reports whether the range covers no characters.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// Contains reports whether p lies within the range (inclusive of both ends).
func (r Range) Contains(p Position) bool {
	return Compare(r.Start, p) <= 0 && Compare(p, r.End) <= 0
}

func (r Range) String() string {
	return fmt.Sprintf("(%s)-(%s)", r.Start, r.End)
}

// Selection is the selected range of a document plus the cursor, which sits
// on one of the range endpoints.
type Selection struct {
	Range  Range
	Cursor Position
}

// CursorSelection returns an empty selection collapsed onto pos.
func CursorSelection(pos Position) Selection {
	return Selection{Range: Range{Start: pos, End: pos}, Cursor: pos}
}
