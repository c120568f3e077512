package search

import (
	"fmt"
	"iter"

	"github.com/bethropolis/seek/internal/types"
	"github.com/bethropolis/seek/internal/utils"
)

// segment is one line handed to the matcher together with the window of
// rune columns its matches must lie in. The regexp always runs on the whole
// line, so word boundaries and anchors are judged at the real line edges.
type segment struct {
	Row  int
	Line string
	From int // Matches start at or after From
	To   int // and end at or before To

	// Revisit marks the second look at the origin row after wrapping. It
	// keeps only what the first pass could not report: matches starting
	// before Origin going forward, ending after Origin going backward.
	Revisit bool
	Origin  int
}

// keeps reports whether a match covering rune columns [start, end) belongs
// to the segment.
func (s segment) keeps(start, end int, backwards bool) bool {
	if start < s.From || end > s.To {
		return false
	}
	switch {
	case !s.Revisit:
		return true
	case backwards:
		return end > s.Origin
	default:
		return start < s.Origin
	}
}

// region is the in-scope part of a document.
type region struct {
	doc      Document
	first    int // First in-scope row
	last     int // Last in-scope row
	startCol int // Clip column on the first row
	endCol   int // Clip column on the last row, -1 for end of line
}

func newRegion(doc Document, opts Options, sel types.Selection) region {
	if opts.Scope == ScopeSelection {
		r := types.NewRange(sel.Range.Start, sel.Range.End)
		return region{doc: doc, first: r.Start.Line, last: r.End.Line, startCol: r.Start.Col, endCol: r.End.Col}
	}
	return region{doc: doc, first: 0, last: doc.LineCount() - 1, endCol: -1}
}

func (g region) contains(row int) bool {
	return row >= g.first && row <= g.last
}

// clamp moves p into a selection region.
func (g region) clamp(p types.Position) types.Position {
	if start := (types.Position{Line: g.first, Col: g.startCol}); p.Before(start) {
		return start
	}
	if end := (types.Position{Line: g.last, Col: g.endCol}); end.Before(p) {
		return end
	}
	return p
}

// segment windows row to [from, to) intersected with the region's clip
// columns. A negative to means end of line.
func (g region) segment(row, from, to int) segment {
	n := g.doc.LineCount()
	if row < 0 || row >= n {
		panic(fmt.Sprintf("search: row %d out of range [0,%d)", row, n))
	}
	line := g.doc.LineText(row)
	length := utils.RuneLen(line)

	if from < 0 {
		from = 0
	}
	if row == g.first && from < g.startCol {
		from = g.startCol
	}
	if to < 0 || to > length {
		to = length
	}
	if row == g.last && g.endCol >= 0 && to > g.endCol {
		to = g.endCol
	}
	return segment{Row: row, Line: line, From: min(from, length), To: to}
}

// lines produces the segments to scan, in search order, starting at the
// cursor (or the selection end when searching a selection backwards).
// With wrap the start row is revisited once for the matches the first pass
// skipped, including one straddling the origin, so none is produced twice.
func lines(doc Document, opts Options) iter.Seq[segment] {
	return func(yield func(segment) bool) {
		if doc.LineCount() == 0 {
			return
		}
		sel := doc.Selection()
		g := newRegion(doc, opts, sel)
		if g.first > g.last {
			return
		}

		origin := sel.Cursor
		if opts.Scope == ScopeSelection {
			if opts.Backwards {
				origin = types.NewRange(sel.Range.Start, sel.Range.End).End
			}
			origin = g.clamp(origin)
		}
		if origin.Col < 0 {
			origin.Col = 0
		}

		// The first pass covers the origin row on the search side of the
		// origin column.
		var head segment
		step, restart := 1, g.first
		if opts.Backwards {
			step, restart = -1, g.last
			head = g.segment(origin.Line, 0, origin.Col)
		} else {
			head = g.segment(origin.Line, origin.Col, -1)
		}

		if !yield(head) {
			return
		}
		for row := origin.Line + step; g.contains(row); row += step {
			if !yield(g.segment(row, 0, -1)) {
				return
			}
		}
		if !opts.Wrap {
			return
		}
		for row := restart; row != origin.Line; row += step {
			if !yield(g.segment(row, 0, -1)) {
				return
			}
		}
		tail := g.segment(origin.Line, 0, -1)
		tail.Revisit, tail.Origin = true, origin.Col
		yield(tail)
	}
}
