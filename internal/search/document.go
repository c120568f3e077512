package search

import (
	"strings"

	"github.com/bethropolis/seek/internal/types"
)

// Document is the read-only view of a text buffer the engine searches.
// LineText must only be called with rows in [0, LineCount()).
type Document interface {
	LineCount() int
	LineText(row int) string
	Selection() types.Selection
}

// LinesDocument is an in-memory Document over a fixed list of lines.
type LinesDocument struct {
	lines []string
	sel   types.Selection
}

// NewLinesDocument creates a Document over lines with the given selection.
func NewLinesDocument(lines []string, sel types.Selection) *LinesDocument {
	return &LinesDocument{lines: lines, sel: sel}
}

// NewTextDocument splits text on newlines and places the cursor at pos.
func NewTextDocument(text string, pos types.Position) *LinesDocument {
	return NewLinesDocument(strings.Split(text, "\n"), types.CursorSelection(pos))
}

func (d *LinesDocument) LineCount() int { return len(d.lines) }

func (d *LinesDocument) LineText(row int) string { return d.lines[row] }

func (d *LinesDocument) Selection() types.Selection { return d.sel }

// Select replaces the selection.
func (d *LinesDocument) Select(sel types.Selection) {
	d.sel = sel
}
