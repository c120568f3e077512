// Package syntax keeps a tree-sitter tree in step with buffer edits so a
// replacement that breaks the source file can be reported.
package syntax

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/bethropolis/seek/internal/logger"
	"github.com/bethropolis/seek/internal/types"
)

// Tree is a parsed document that is updated incrementally.
type Tree struct {
	lang   *Language
	parser *sitter.Parser
	tree   *sitter.Tree
}

// Parse parses src with lang.
func Parse(ctx context.Context, lang *Language, src []byte) (*Tree, error) {
	if lang == nil {
		return nil, fmt.Errorf("no language provided for parsing")
	}
	parser := sitter.NewParser()
	parser.SetLanguage(lang.TreeSitterLang)

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		parser.Close()
		return nil, fmt.Errorf("parsing failed: %w", err)
	}
	logger.DebugTagf("syntax", "Parsed %d bytes as %s", len(src), lang.Name)
	return &Tree{lang: lang, parser: parser, tree: tree}, nil
}

// Language returns the grammar the tree was parsed with.
func (t *Tree) Language() *Language { return t.lang }

// Edit records a buffer edit on the tree. Call Reparse once the edits are done.
func (t *Tree) Edit(e types.EditInfo) {
	t.tree.Edit(e.InputEdit())
}

// Reparse parses src again, reusing the unchanged parts of the edited tree.
func (t *Tree) Reparse(ctx context.Context, src []byte) error {
	tree, err := t.parser.ParseCtx(ctx, t.tree, src)
	if err != nil {
		return fmt.Errorf("reparsing failed: %w", err)
	}
	t.tree.Close()
	t.tree = tree
	return nil
}

// HasError reports whether the tree contains syntax errors.
func (t *Tree) HasError() bool {
	return t.tree.RootNode().HasError()
}

// FirstError returns the position of the first error or missing node.
// The column is a byte offset.
func (t *Tree) FirstError() (sitter.Point, bool) {
	var walk func(n *sitter.Node) (sitter.Point, bool)
	walk = func(n *sitter.Node) (sitter.Point, bool) {
		if n.IsError() || n.IsMissing() {
			return n.StartPoint(), true
		}
		if !n.HasError() {
			return sitter.Point{}, false
		}
		for i := 0; i < int(n.ChildCount()); i++ {
			if p, ok := walk(n.Child(i)); ok {
				return p, true
			}
		}
		return sitter.Point{}, false
	}
	return walk(t.tree.RootNode())
}

// Close releases the tree and parser.
func (t *Tree) Close() {
	t.tree.Close()
	t.parser.Close()
}
