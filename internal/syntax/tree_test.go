package syntax

import (
	"context"
	"testing"

	"github.com/bethropolis/seek/internal/buffer"
	"github.com/bethropolis/seek/internal/types"
)

func TestForFile(t *testing.T) {
	tests := map[string]string{
		"main.go":      "Go",
		"lib/mod.RS":   "Rust",
		"data.json":    "JSON",
		"script.py":    "Python",
		"notes.txt":    "",
		"no-extension": "",
	}
	for path, want := range tests {
		lang := ForFile(path)
		got := ""
		if lang != nil {
			got = lang.Name
		}
		if got != want {
			t.Errorf("ForFile(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestIncrementalEditDetectsBreakage(t *testing.T) {
	ctx := context.Background()
	buf := buffer.NewSliceBufferFromString("package main\n\nfunc main() {\n\tx := 1\n\t_ = x\n}")
	tree, err := Parse(ctx, ForFile("main.go"), buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	defer tree.Close()
	if tree.HasError() {
		t.Fatal("expected valid Go source to parse cleanly")
	}

	// Rename x to y: still valid.
	for _, line := range []int{4, 3} {
		del, err := buf.Delete(types.Position{Line: line, Col: identCol(line)}, types.Position{Line: line, Col: identCol(line) + 1})
		if err != nil {
			t.Fatal(err)
		}
		tree.Edit(del)
		ins, err := buf.Insert(types.Position{Line: line, Col: identCol(line)}, []byte("y"))
		if err != nil {
			t.Fatal(err)
		}
		tree.Edit(ins)
	}
	if err := tree.Reparse(ctx, buf.Bytes()); err != nil {
		t.Fatal(err)
	}
	if tree.HasError() {
		t.Fatalf("rename should keep the source valid: %s", buf.Bytes())
	}

	// Drop the closing brace of the function.
	del, err := buf.Delete(types.Position{Line: 5, Col: 0}, types.Position{Line: 5, Col: 1})
	if err != nil {
		t.Fatal(err)
	}
	tree.Edit(del)
	if err := tree.Reparse(ctx, buf.Bytes()); err != nil {
		t.Fatal(err)
	}
	if !tree.HasError() {
		t.Fatalf("expected a syntax error after removing the brace: %q", buf.Bytes())
	}
	if _, ok := tree.FirstError(); !ok {
		t.Fatal("expected FirstError to locate the error")
	}
}

// identCol is the column of the identifier on the test's assignment lines.
func identCol(line int) int {
	if line == 3 {
		return 1 // "\tx := 1"
	}
	return 5 // "\t_ = x"
}
