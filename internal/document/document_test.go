package document

import (
	"testing"

	"github.com/bethropolis/seek/internal/search"
	"github.com/bethropolis/seek/internal/types"
)

func TestDocumentFeedsEngine(t *testing.T) {
	doc := FromString("foo bar\nbar baz\nfoo foo")
	doc.SelectionManager().SetCursor(types.Position{Line: 2, Col: 7})

	e := search.NewDefault().Set(search.Partial{Needle: search.Ptr("foo"), Backwards: search.Ptr(true)})
	r, err := e.Find(doc)
	if err != nil {
		t.Fatalf("Find error: %v", err)
	}
	if r == nil || *r != (types.Range{Start: types.Position{Line: 2, Col: 4}, End: types.Position{Line: 2, Col: 7}}) {
		t.Fatalf("unexpected match %v", r)
	}
	if got := doc.Text(*r); got != "foo" {
		t.Fatalf("expected %q, got %q", "foo", got)
	}
}

func TestText(t *testing.T) {
	doc := FromString("alpha\nbeta\ngamma")
	r := types.Range{Start: types.Position{Line: 0, Col: 3}, End: types.Position{Line: 2, Col: 2}}
	if got := doc.Text(r); got != "ha\nbeta\nga" {
		t.Fatalf("unexpected text %q", got)
	}
}

func TestLineTextOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	FromString("one").LineText(3)
}
