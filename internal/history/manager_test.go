package history

import (
	"testing"

	"github.com/bethropolis/seek/internal/document"
	"github.com/bethropolis/seek/internal/event"
	"github.com/bethropolis/seek/internal/types"
)

func pos(line, col int) types.Position { return types.Position{Line: line, Col: col} }

func TestEndOf(t *testing.T) {
	tests := []struct {
		start types.Position
		text  string
		want  types.Position
	}{
		{pos(0, 2), "", pos(0, 2)},
		{pos(1, 2), "héllo", pos(1, 7)},
		{pos(1, 2), "ab\ncd\nx", pos(3, 1)},
		{pos(0, 5), "ab\n", pos(1, 0)},
	}
	for _, tt := range tests {
		if got := endOf(tt.start, tt.text); got != tt.want {
			t.Errorf("endOf(%v, %q) = %v, want %v", tt.start, tt.text, got, tt.want)
		}
	}
}

func TestUndoRedoMultiline(t *testing.T) {
	doc := document.FromString("one two\nthree")
	events := event.NewManager()
	modified := 0
	events.Subscribe(event.TypeBufferModified, func(e event.Event) bool {
		modified++
		return false
	})
	h := NewManager(doc, events, 0)

	// Apply "two" -> "2\n2" by hand, as the find manager would.
	edit := Edit{Start: pos(0, 4), OldEnd: pos(0, 7), OldText: "two", NewText: "2\n2"}
	if _, err := doc.Buffer().Delete(edit.Start, edit.OldEnd); err != nil {
		t.Fatal(err)
	}
	if _, err := doc.Buffer().Insert(edit.Start, []byte(edit.NewText)); err != nil {
		t.Fatal(err)
	}
	h.RecordChange(Change{Edits: []Edit{edit}, CursorBefore: pos(0, 1), CursorAfter: edit.NewEnd()})

	if !h.CanUndo() || h.CanRedo() {
		t.Fatal("unexpected history state after record")
	}
	if ok, err := h.Undo(); !ok || err != nil {
		t.Fatalf("Undo: %v, %v", ok, err)
	}
	if got := string(doc.Buffer().Bytes()); got != "one two\nthree" {
		t.Fatalf("undo left %q", got)
	}
	if doc.Selection().Cursor != pos(0, 1) {
		t.Fatalf("cursor not restored: %v", doc.Selection().Cursor)
	}

	if ok, err := h.Redo(); !ok || err != nil {
		t.Fatalf("Redo: %v, %v", ok, err)
	}
	if got := string(doc.Buffer().Bytes()); got != "one 2\n2\nthree" {
		t.Fatalf("redo left %q", got)
	}
	if doc.Selection().Cursor != pos(1, 1) {
		t.Fatalf("cursor after redo: %v", doc.Selection().Cursor)
	}
	if modified != 2 {
		t.Fatalf("expected 2 BufferModified events, got %d", modified)
	}

	h.Clear()
	if h.CanUndo() || h.CanRedo() {
		t.Fatal("expected empty history after Clear")
	}
	if ok, _ := h.Redo(); ok {
		t.Fatal("redo on empty history should do nothing")
	}
}

func TestMaxHistory(t *testing.T) {
	h := NewManager(document.FromString(""), nil, 2)
	for i := 0; i < 3; i++ {
		h.RecordChange(Change{Edits: []Edit{{NewText: "x"}}})
	}
	if len(h.changes) != 2 || h.currentIndex != 2 {
		t.Fatalf("expected 2 retained changes, got %d (index %d)", len(h.changes), h.currentIndex)
	}
	h.RecordChange(Change{})
	if len(h.changes) != 2 {
		t.Fatal("empty change should not be recorded")
	}
}
