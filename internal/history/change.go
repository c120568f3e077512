// Package history provides undo/redo for replacements via a change stack.
package history

import (
	"strings"

	"github.com/bethropolis/seek/internal/types"
	"github.com/bethropolis/seek/internal/utils"
)

// Edit is one replacement of the text in [Start, OldEnd) by NewText.
type Edit struct {
	Start   types.Position
	OldEnd  types.Position
	OldText string
	NewText string
}

// NewEnd is the position after the inserted text.
func (e Edit) NewEnd() types.Position {
	return endOf(e.Start, e.NewText)
}

// Change is a group of edits undone and redone as one step, such as a
// replace-all. Edits are listed in the order they were applied.
type Change struct {
	Edits        []Edit
	CursorBefore types.Position // Cursor position *before* the change was applied
	CursorAfter  types.Position
}

// endOf returns the position after text inserted at start.
func endOf(start types.Position, text string) types.Position {
	nl := strings.LastIndexByte(text, '\n')
	if nl < 0 {
		return types.Position{Line: start.Line, Col: start.Col + utils.RuneLen(text)}
	}
	return types.Position{
		Line: start.Line + strings.Count(text, "\n"),
		Col:  utils.RuneLen(text[nl+1:]),
	}
}
