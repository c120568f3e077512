// internal/app/app.go
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bethropolis/seek/internal/buffer"
	"github.com/bethropolis/seek/internal/clipboard"
	"github.com/bethropolis/seek/internal/config"
	"github.com/bethropolis/seek/internal/document"
	"github.com/bethropolis/seek/internal/event"
	"github.com/bethropolis/seek/internal/find"
	"github.com/bethropolis/seek/internal/logger"
	"github.com/bethropolis/seek/internal/report"
	"github.com/bethropolis/seek/internal/syntax"
	"github.com/bethropolis/seek/internal/types"
)

// Request describes one command-line search.
type Request struct {
	Needle        string
	FromClipboard bool
	FilePath      string // "-" reads the input stream

	Cursor    types.Position
	Selection *types.Range // Replaces Cursor when set

	All     bool
	Count   bool
	Replace *string
}

// App wires a document, the find manager and the report printer for a
// single run.
type App struct {
	cfg     *config.Config
	req     Request
	buf     *buffer.SliceBuffer
	doc     *document.Document
	events  *event.Manager
	finder  *find.Manager
	printer *report.Printer
	out     io.Writer

	edits        int          // BufferModified events seen
	tree         *syntax.Tree // Parsed source for replacements in known languages
	syntaxBroken bool         // A replacement introduced syntax errors
}

// NewApp loads the document named by req and prepares the find manager.
func NewApp(cfg *config.Config, req Request, in io.Reader, out io.Writer) (*App, error) {
	if req.FromClipboard {
		needle, err := clipboard.NewManager(cfg.Editor.SystemClipboard).Needle()
		if err != nil {
			return nil, fmt.Errorf("failed to read needle from clipboard: %w", err)
		}
		req.Needle = needle
	}
	if req.Needle == "" {
		return nil, find.ErrNoPattern
	}

	buf, err := loadBuffer(req.FilePath, in)
	if err != nil {
		return nil, err
	}
	doc := document.New(buf)
	if err := placeCursor(doc, req, cfg.Search.Backwards); err != nil {
		return nil, err
	}

	eventManager := event.NewManager()
	name := req.FilePath
	if name == "-" {
		name = ""
	}

	a := &App{
		cfg:     cfg,
		req:     req,
		buf:     buf,
		doc:     doc,
		events:  eventManager,
		finder:  find.NewManager(doc, eventManager, cfg.SearchOptions(req.Needle)),
		printer: report.NewPrinter(out, name, cfg.Search.Marker),
		out:     out,
	}
	a.subscribe()
	if req.Replace != nil {
		a.openSyntax()
	}

	logger.Debugf("App: searching %q for %q with %+v", req.FilePath, req.Needle, a.finder.Options())
	return a, nil
}

func loadBuffer(filePath string, in io.Reader) (*buffer.SliceBuffer, error) {
	buf := buffer.NewSliceBuffer()
	if filePath == "" || filePath == "-" {
		if in == nil {
			return nil, errors.New("no input file specified")
		}
		if _, err := buf.ReadFrom(in); err != nil {
			return nil, fmt.Errorf("error reading input: %w", err)
		}
		return buf, nil
	}
	// The buffer treats a missing file as a new one; a search needs content.
	if _, err := os.Stat(filePath); err != nil {
		return nil, fmt.Errorf("cannot search '%s': %w", filePath, err)
	}
	if err := buf.Load(filePath); err != nil {
		return nil, err
	}
	return buf, nil
}

// placeCursor puts the cursor where a search in the configured direction
// starts: the selection start going forward, the selection end backward.
func placeCursor(doc *document.Document, req Request, backwards bool) error {
	check := func(p types.Position) error {
		if p.Line < 0 || p.Line >= doc.LineCount() || p.Col < 0 {
			return fmt.Errorf("position %v is outside the document (%d lines)", p, doc.LineCount())
		}
		return nil
	}

	sel := doc.SelectionManager()
	if req.Selection != nil {
		r := types.NewRange(req.Selection.Start, req.Selection.End)
		if err := check(r.Start); err != nil {
			return err
		}
		if err := check(r.End); err != nil {
			return err
		}
		if backwards {
			sel.Select(r.Start, r.End)
		} else {
			sel.Select(r.End, r.Start)
		}
		return nil
	}
	if err := check(req.Cursor); err != nil {
		return err
	}
	sel.SetCursor(req.Cursor)
	return nil
}

// openSyntax parses the document when its file type has a grammar, so the
// edits made by a replacement can be checked afterwards.
func (a *App) openSyntax() {
	lang := syntax.ForFile(a.req.FilePath)
	if lang == nil {
		return
	}
	tree, err := syntax.Parse(context.Background(), lang, a.buf.Bytes())
	if err != nil {
		logger.Warnf("App: %v", err)
		return
	}
	if tree.HasError() {
		// Already broken; nothing useful to report after replacing.
		tree.Close()
		return
	}
	a.tree = tree
}

// checkSyntax reparses the edited document and warns when it no longer
// parses.
func (a *App) checkSyntax() {
	if a.tree == nil {
		return
	}
	if err := a.tree.Reparse(context.Background(), a.buf.Bytes()); err != nil {
		logger.Warnf("App: %v", err)
		return
	}
	if !a.tree.HasError() {
		return
	}
	a.syntaxBroken = true
	if p, ok := a.tree.FirstError(); ok {
		logger.Warnf("Replacement leaves %s syntax errors in %s, first at line %d", a.tree.Language().Name, a.req.FilePath, p.Row+1)
		return
	}
	logger.Warnf("Replacement leaves %s syntax errors in %s", a.tree.Language().Name, a.req.FilePath)
}

// Close releases the resources held by the app.
func (a *App) Close() {
	if a.tree != nil {
		a.tree.Close()
		a.tree = nil
	}
}

// Run performs the requested operation and returns the number of matches
// (or replacements). Zero means nothing was found.
func (a *App) Run() (int, error) {
	switch {
	case a.req.Replace != nil:
		return a.replaceAll(*a.req.Replace)
	case a.req.Count:
		n, err := a.finder.Count()
		if err != nil {
			return 0, err
		}
		_, err = fmt.Fprintln(a.out, n)
		return n, err
	case a.req.All:
		return a.printAll()
	default:
		return a.printNext()
	}
}

func (a *App) printNext() (int, error) {
	match, err := a.finder.FindNext()
	if err != nil {
		return 0, err
	}
	if match == nil {
		logger.Infof("App: no match for %q", a.req.Needle)
		return 0, nil
	}
	return 1, a.printer.Print(a.doc, *match)
}

func (a *App) printAll() (int, error) {
	n, err := a.finder.HighlightMatches()
	if err != nil {
		return 0, err
	}
	for _, r := range a.finder.GetHighlights() {
		if err := a.printer.Print(a.doc, r); err != nil {
			return 0, err
		}
	}
	return n, a.printer.Summary(n)
}

// replaceAll rewrites the file in place, or writes the new text to the
// output when reading from a stream.
func (a *App) replaceAll(replacement string) (int, error) {
	n, err := a.finder.ReplaceAll(replacement)
	if err != nil {
		return n, err
	}
	a.checkSyntax()

	if a.buf.FilePath() == "" {
		_, err := a.buf.WriteTo(a.out)
		return n, err
	}
	if n == 0 {
		return 0, nil
	}
	if err := a.buf.Save(""); err != nil {
		return n, err
	}
	logger.Infof("App: saved %s after %d edit(s)", a.buf.FilePath(), a.edits)
	return n, a.printer.Summary(n)
}
