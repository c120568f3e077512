package report

import (
	"bytes"
	"testing"

	"github.com/bethropolis/seek/internal/search"
	"github.com/bethropolis/seek/internal/types"
)

func TestMarker(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		from, to int
		want     string
	}{
		{"ascii", "foo bar", 4, 7, "    ^^^"},
		{"wide runes", "日本 go", 3, 5, "     ^^"},
		{"tab kept", "\tx = 1", 1, 2, "\t^"},
		{"wide match", "ab日本", 2, 4, "  ^^^^"},
		{"zero width", "abc", 1, 1, " ^"},
		{"to end of line", "abcd", 2, -1, "  ^^"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Marker(tc.line, tc.from, tc.to); got != tc.want {
				t.Errorf("Marker(%q, %d, %d) = %q, want %q", tc.line, tc.from, tc.to, got, tc.want)
			}
		})
	}
}

func TestPrinter(t *testing.T) {
	doc := search.NewTextDocument("foo bar\nbar baz", types.Position{})
	var out bytes.Buffer
	p := NewPrinter(&out, "doc.txt", true)

	r := types.Range{Start: types.Position{Line: 1, Col: 4}, End: types.Position{Line: 1, Col: 7}}
	if err := p.Print(doc, r); err != nil {
		t.Fatal(err)
	}
	if err := p.Summary(1); err != nil {
		t.Fatal(err)
	}
	want := "doc.txt:2:5: bar baz\n" +
		"                 ^^^\n" +
		"1 match\n"
	if out.String() != want {
		t.Fatalf("unexpected output:\n%q\nwant:\n%q", out.String(), want)
	}
}
