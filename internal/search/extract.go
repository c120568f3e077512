package search

import (
	"regexp"
	"slices"

	"github.com/bethropolis/seek/internal/types"
	"github.com/bethropolis/seek/internal/utils"
)

// match is a hit inside one line. Offset is its rune column.
type match struct {
	Text   string
	Offset int
}

// matches runs re over the segment's whole line and returns the
// non-overlapping hits the segment keeps, left to right.
func matches(re *regexp.Regexp, seg segment, backwards bool) []match {
	locs := re.FindAllStringIndex(seg.Line, -1)
	if len(locs) == 0 {
		return nil
	}
	found := make([]match, 0, len(locs))
	for _, loc := range locs {
		text := seg.Line[loc[0]:loc[1]]
		start := utils.ByteOffsetToRuneIndex(seg.Line, loc[0])
		if !seg.keeps(start, start+utils.RuneLen(text), backwards) {
			continue
		}
		found = append(found, match{Text: text, Offset: start})
	}
	return found
}

// rangeFromMatch converts a hit on row into document coordinates.
func rangeFromMatch(row int, m match) types.Range {
	return types.Range{
		Start: types.Position{Line: row, Col: m.Offset},
		End:   types.Position{Line: row, Col: m.Offset + utils.RuneLen(m.Text)},
	}
}

// extract returns the segment's matches as ranges in search order:
// ascending columns forward, descending backward.
func extract(re *regexp.Regexp, seg segment, backwards bool) []types.Range {
	found := matches(re, seg, backwards)
	ranges := make([]types.Range, len(found))
	for i, m := range found {
		ranges[i] = rangeFromMatch(seg.Row, m)
	}
	if backwards {
		slices.Reverse(ranges)
	}
	return ranges
}
