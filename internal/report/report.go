// Package report prints search results for terminals, underlining each
// match with a marker line aligned by grapheme display width.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/bethropolis/seek/internal/search"
	"github.com/bethropolis/seek/internal/types"
)

// Printer writes matches in "name:line:col: text" form. Line and column are
// 1-based, as in compiler and grep output.
type Printer struct {
	w      io.Writer
	name   string
	marker bool
}

// NewPrinter creates a printer. An empty name drops the name prefix; marker
// adds a line of carets under each match.
func NewPrinter(w io.Writer, name string, marker bool) *Printer {
	return &Printer{w: w, name: name, marker: marker}
}

// Print writes one match found in doc.
func (p *Printer) Print(doc search.Document, r types.Range) error {
	line := doc.LineText(r.Start.Line)
	prefix := fmt.Sprintf("%d:%d: ", r.Start.Line+1, r.Start.Col+1)
	if p.name != "" {
		prefix = p.name + ":" + prefix
	}
	if _, err := fmt.Fprintf(p.w, "%s%s\n", prefix, line); err != nil {
		return err
	}
	if !p.marker {
		return nil
	}
	end := r.End.Col
	if r.End.Line != r.Start.Line {
		end = -1
	}
	_, err := fmt.Fprintf(p.w, "%s%s\n", strings.Repeat(" ", uniseg.StringWidth(prefix)), Marker(line, r.Start.Col, end))
	return err
}

// Summary writes the match count.
func (p *Printer) Summary(n int) error {
	noun := "matches"
	if n == 1 {
		noun = "match"
	}
	_, err := fmt.Fprintf(p.w, "%d %s\n", n, noun)
	return err
}

// Marker returns the indentation and carets that underline rune columns
// [from, to) of line on a terminal. A negative to runs to the end of line.
// Tabs in the indentation are kept so the marker lines up with the text.
func Marker(line string, from, to int) string {
	var indent, carets strings.Builder
	col := 0
	gr := uniseg.NewGraphemes(line)
	for gr.Next() {
		runes := len(gr.Runes())
		switch {
		case col < from:
			if gr.Str() == "\t" {
				indent.WriteByte('\t')
			} else {
				indent.WriteString(strings.Repeat(" ", gr.Width()))
			}
		case to < 0 || col < to:
			width := gr.Width()
			if width < 1 {
				width = 1
			}
			carets.WriteString(strings.Repeat("^", width))
		}
		col += runes
	}
	if carets.Len() == 0 {
		carets.WriteByte('^') // Zero-width match
	}
	return indent.String() + carets.String()
}
