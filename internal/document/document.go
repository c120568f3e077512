// Package document joins a text buffer and its cursor/selection into the
// read-only view consumed by the search engine.
package document

import (
	"fmt"

	"github.com/bethropolis/seek/internal/buffer"
	"github.com/bethropolis/seek/internal/search"
	"github.com/bethropolis/seek/internal/selection"
	"github.com/bethropolis/seek/internal/types"
	"github.com/bethropolis/seek/internal/utils"
)

// Document is a buffer plus the selection state of its view.
type Document struct {
	buf buffer.Buffer
	sel *selection.Manager
}

// New creates a Document with the cursor at the start of buf.
func New(buf buffer.Buffer) *Document {
	return &Document{buf: buf, sel: selection.NewManager()}
}

// FromString is a convenience for tests and tools working on plain text.
func FromString(text string) *Document {
	return New(buffer.NewSliceBufferFromString(text))
}

func (d *Document) Buffer() buffer.Buffer { return d.buf }

func (d *Document) SelectionManager() *selection.Manager { return d.sel }

func (d *Document) LineCount() int {
	return d.buf.LineCount()
}

// LineText returns the text of row. Rows outside the buffer are a caller bug.
func (d *Document) LineText(row int) string {
	line, err := d.buf.Line(row)
	if err != nil {
		panic(fmt.Sprintf("document: %v", err))
	}
	return string(line)
}

func (d *Document) Selection() types.Selection {
	return d.sel.Selection()
}

// Text returns the text covered by r, joining lines with '\n'.
func (d *Document) Text(r types.Range) string {
	r = types.NewRange(r.Start, r.End)
	if r.Start.Line == r.End.Line {
		return utils.SliceRunes(d.LineText(r.Start.Line), r.Start.Col, r.End.Col)
	}
	text := utils.SliceRunes(d.LineText(r.Start.Line), r.Start.Col, -1)
	for row := r.Start.Line + 1; row < r.End.Line; row++ {
		text += "\n" + d.LineText(row)
	}
	return text + "\n" + utils.SliceRunes(d.LineText(r.End.Line), 0, r.End.Col)
}

var _ search.Document = (*Document)(nil)
