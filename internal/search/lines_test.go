package search

import (
	"regexp"
	"slices"
	"testing"

	"github.com/bethropolis/seek/internal/types"
)

func collect(doc Document, opts Options) []segment {
	var segs []segment
	for seg := range lines(doc, opts) {
		segs = append(segs, seg)
	}
	return segs
}

func TestLinesForwardOrder(t *testing.T) {
	doc := NewTextDocument("zero\none\ntwo\nthree", types.Position{Line: 1, Col: 1})

	got := collect(doc, Options{})
	want := []segment{
		{Row: 1, Line: "one", From: 1, To: 3},
		{Row: 2, Line: "two", From: 0, To: 3},
		{Row: 3, Line: "three", From: 0, To: 5},
	}
	if !slices.Equal(got, want) {
		t.Fatalf("expected %+v, got %+v", want, got)
	}

	got = collect(doc, Options{Wrap: true})
	want = append(want,
		segment{Row: 0, Line: "zero", From: 0, To: 4},
		segment{Row: 1, Line: "one", From: 0, To: 3, Revisit: true, Origin: 1},
	)
	if !slices.Equal(got, want) {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestLinesBackwardOrder(t *testing.T) {
	doc := NewTextDocument("zero\none\ntwo\nthree", types.Position{Line: 1, Col: 1})

	got := collect(doc, Options{Backwards: true, Wrap: true})
	want := []segment{
		{Row: 1, Line: "one", From: 0, To: 1},
		{Row: 0, Line: "zero", From: 0, To: 4},
		{Row: 3, Line: "three", From: 0, To: 5},
		{Row: 2, Line: "two", From: 0, To: 3},
		{Row: 1, Line: "one", From: 0, To: 3, Revisit: true, Origin: 1},
	}
	if !slices.Equal(got, want) {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestLinesSelectionClip(t *testing.T) {
	doc := NewLinesDocument([]string{"abcdef", "ghijkl", "mnopqr", "stuvwx"}, types.Selection{
		Range:  types.Range{Start: types.Position{Line: 1, Col: 2}, End: types.Position{Line: 2, Col: 3}},
		Cursor: types.Position{Line: 1, Col: 2},
	})

	got := collect(doc, Options{Scope: ScopeSelection})
	want := []segment{
		{Row: 1, Line: "ghijkl", From: 2, To: 6},
		{Row: 2, Line: "mnopqr", From: 0, To: 3},
	}
	if !slices.Equal(got, want) {
		t.Fatalf("forward: expected %+v, got %+v", want, got)
	}

	got = collect(doc, Options{Scope: ScopeSelection, Backwards: true})
	want = []segment{
		{Row: 2, Line: "mnopqr", From: 0, To: 3},
		{Row: 1, Line: "ghijkl", From: 2, To: 6},
	}
	if !slices.Equal(got, want) {
		t.Fatalf("backward: expected %+v, got %+v", want, got)
	}
}

func TestLinesCursorClampedIntoSelection(t *testing.T) {
	doc := NewLinesDocument([]string{"abc", "def", "ghi"}, types.Selection{
		Range:  types.Range{Start: types.Position{Line: 1, Col: 1}, End: types.Position{Line: 2, Col: 2}},
		Cursor: types.Position{Line: 0, Col: 0},
	})
	got := collect(doc, Options{Scope: ScopeSelection})
	if len(got) == 0 || got[0].Row != 1 || got[0].From != 1 {
		t.Fatalf("expected traversal to begin at the selection start, got %+v", got)
	}
}

func TestExtract(t *testing.T) {
	re := regexp.MustCompile("ab")
	seg := segment{Row: 4, Line: "ab-ab-ab", From: 3, To: 8}

	fwd := extract(re, seg, false)
	want := []types.Range{
		{Start: types.Position{Line: 4, Col: 3}, End: types.Position{Line: 4, Col: 5}},
		{Start: types.Position{Line: 4, Col: 6}, End: types.Position{Line: 4, Col: 8}},
	}
	if !slices.Equal(fwd, want) {
		t.Fatalf("expected %v, got %v", want, fwd)
	}

	bwd := extract(re, seg, true)
	slices.Reverse(want)
	if !slices.Equal(bwd, want) {
		t.Fatalf("expected %v, got %v", want, bwd)
	}
}

func TestSegmentKeeps(t *testing.T) {
	window := segment{From: 2, To: 8}
	revisit := segment{From: 0, To: 8, Revisit: true, Origin: 4}
	tests := []struct {
		name       string
		seg        segment
		start, end int
		backwards  bool
		want       bool
	}{
		{"inside window", window, 2, 5, false, true},
		{"starts before window", window, 1, 3, false, false},
		{"ends after window", window, 6, 9, false, false},
		{"revisit forward keeps straddling match", revisit, 3, 6, false, true},
		{"revisit forward drops match at origin", revisit, 4, 6, false, false},
		{"revisit forward drops empty match at origin", revisit, 4, 4, false, false},
		{"revisit backward keeps straddling match", revisit, 3, 6, true, true},
		{"revisit backward drops match ending at origin", revisit, 1, 4, true, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.seg.keeps(tc.start, tc.end, tc.backwards); got != tc.want {
				t.Errorf("keeps(%d, %d, %v) = %v, want %v", tc.start, tc.end, tc.backwards, got, tc.want)
			}
		})
	}
}

func TestMatchesSeeWholeLine(t *testing.T) {
	re := regexp.MustCompile(`\bcat\b`)
	// The window starts mid-word; "cat" inside "concat" is not a word.
	if got := matches(re, segment{Line: "concat cat", From: 3, To: 10}, false); len(got) != 1 || got[0].Offset != 7 {
		t.Fatalf("expected only the match at 7, got %+v", got)
	}
}
