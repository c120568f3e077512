// Package find drives the search engine on behalf of an editor view: find
// next/previous moves the selection onto the match, find-all feeds search
// highlights, and replace edits the buffer through the same matches.
package find

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/bethropolis/seek/internal/document"
	"github.com/bethropolis/seek/internal/event"
	"github.com/bethropolis/seek/internal/history"
	"github.com/bethropolis/seek/internal/logger"
	"github.com/bethropolis/seek/internal/search"
	"github.com/bethropolis/seek/internal/types"
	"github.com/bethropolis/seek/internal/utils"
)

var (
	// ErrNoPattern is returned when an operation needs a needle and none is set.
	ErrNoPattern = errors.New("search pattern cannot be empty")
	// ErrNoMatch is returned by Replace when there is nothing to replace.
	ErrNoMatch = errors.New("no match")
)

// Manager handles find, replace, and search highlighting for one document.
type Manager struct {
	doc     *document.Document
	events  *event.Manager // May be nil
	history *history.Manager

	mutex      sync.RWMutex
	engine     *search.Engine
	highlights []types.Range
	lastMatch  *types.Range
}

// NewManager creates a find manager searching doc with opts.
func NewManager(doc *document.Document, events *event.Manager, opts search.Options) *Manager {
	return &Manager{
		doc:     doc,
		events:  events,
		history: history.NewManager(doc, events, history.DefaultMaxHistory),
		engine:  search.New(opts),
	}
}

// SetOptions merges p into the search options and forgets the last match.
func (m *Manager) SetOptions(p search.Partial) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.engine.Set(p)
	m.lastMatch = nil
}

// Options returns the current search options.
func (m *Manager) Options() search.Options {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.engine.Options()
}

// FindNext searches in the configured direction and selects the match.
func (m *Manager) FindNext() (*types.Range, error) {
	return m.find(m.Options())
}

// FindPrevious searches against the configured direction.
func (m *Manager) FindPrevious() (*types.Range, error) {
	opts := m.Options()
	return m.find(opts.With(search.Partial{Backwards: search.Ptr(!opts.Backwards)}))
}

func (m *Manager) find(opts search.Options) (*types.Range, error) {
	if opts.Needle == "" {
		return nil, ErrNoPattern
	}
	m.mutex.RLock()
	last := m.lastMatch
	m.mutex.RUnlock()
	// Continue from the side of the selected match facing the search
	// direction, so reversing direction never returns the same match.
	if last != nil && m.doc.Selection().Range == *last {
		m.orient(*last, opts.Backwards)
	}

	engine := search.New(opts)
	r, err := engine.Find(m.doc)
	if err != nil {
		return nil, err
	}

	// A zero-width match right at the cursor would be found again forever.
	if r != nil && !opts.Backwards && r.IsEmpty() && last != nil && *r == *last {
		next, ok := m.stepPast(r.Start, opts.Wrap)
		r = nil
		if ok {
			m.doc.SelectionManager().SetCursor(next)
			again, err := engine.Find(m.doc)
			if err != nil {
				return nil, err
			}
			if again != nil && *again != *last {
				r = again
			}
		}
	}
	if r == nil {
		logger.Debugf("FindManager: no match for %q", opts.Needle)
		return nil, nil
	}

	m.selectMatch(*r, opts.Backwards)
	m.mutex.Lock()
	m.lastMatch = r
	m.mutex.Unlock()
	return r, nil
}

// stepPast returns the position one character after p, moving to the next
// line (or the document start when wrapping) at the end of a line.
func (m *Manager) stepPast(p types.Position, wrap bool) (types.Position, bool) {
	if p.Col < utils.RuneLen(m.doc.LineText(p.Line)) {
		return types.Position{Line: p.Line, Col: p.Col + 1}, true
	}
	if p.Line+1 < m.doc.LineCount() {
		return types.Position{Line: p.Line + 1}, true
	}
	return types.Position{}, wrap
}

// orient selects r with the cursor on its start for backward searches and
// on its end for forward ones.
func (m *Manager) orient(r types.Range, backwards bool) {
	sel := m.doc.SelectionManager()
	if backwards {
		sel.Select(r.End, r.Start)
	} else {
		sel.Select(r.Start, r.End)
	}
}

// selectMatch selects r, leaving the cursor on the side the next search in
// the same direction continues from.
func (m *Manager) selectMatch(r types.Range, backwards bool) {
	m.orient(r, backwards)
	sel := m.doc.SelectionManager()
	if m.events != nil {
		m.events.Dispatch(event.TypeCursorMoved, event.CursorMovedData{NewPosition: sel.Cursor(), Match: r})
	}
}

// scopeOptions covers the whole scope regardless of the cursor.
func (m *Manager) scopeOptions() search.Options {
	return m.Options().With(search.Partial{Wrap: search.Ptr(true)})
}

// HighlightMatches finds every match in scope and stores it for highlighting.
func (m *Manager) HighlightMatches() (int, error) {
	m.ClearHighlights()

	opts := m.scopeOptions()
	if opts.Needle == "" {
		return 0, nil
	}
	ranges, err := search.New(opts).FindAll(m.doc)
	if err != nil {
		return 0, fmt.Errorf("invalid search pattern: %w", err)
	}

	m.mutex.Lock()
	m.highlights = ranges
	m.mutex.Unlock()
	logger.Debugf("FindManager: %d search highlights for %q", len(ranges), opts.Needle)

	if m.events != nil {
		m.events.Dispatch(event.TypeSearchCompleted, event.SearchCompletedData{Needle: opts.Needle, Matches: slices.Clone(ranges)})
	}
	return len(ranges), nil
}

// Count returns the number of matches in scope without storing them.
func (m *Manager) Count() (int, error) {
	opts := m.scopeOptions()
	if opts.Needle == "" {
		return 0, nil
	}
	n, err := search.New(opts).Count(m.doc)
	if err != nil {
		return 0, fmt.Errorf("invalid search pattern: %w", err)
	}
	return n, nil
}

// ClearHighlights removes search highlight regions.
func (m *Manager) ClearHighlights() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if len(m.highlights) > 0 {
		logger.Debugf("FindManager: clearing %d search highlights", len(m.highlights))
	}
	m.highlights = nil
}

// HasHighlights checks if there are any search highlights.
func (m *Manager) HasHighlights() bool {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.highlights) > 0
}

// GetHighlights returns a copy of the current highlight regions.
func (m *Manager) GetHighlights() []types.Range {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return slices.Clone(m.highlights)
}

// --- Replace Logic ---

// Replace replaces the selected match, or the next match when the last
// match is no longer selected, then moves on to the following match.
func (m *Manager) Replace(replacement string) (*types.Range, error) {
	opts := m.Options()
	if opts.Needle == "" {
		return nil, ErrNoPattern
	}

	m.mutex.RLock()
	last := m.lastMatch
	m.mutex.RUnlock()

	target := last
	if target == nil || m.doc.Selection().Range != *target {
		var err error
		if target, err = m.FindNext(); err != nil {
			return nil, err
		}
		if target == nil {
			return nil, ErrNoMatch
		}
	}

	texts, err := m.expand(opts, []types.Range{*target}, replacement)
	if err != nil {
		return nil, err
	}
	edit, err := m.replaceRange(*target, texts[0])
	if err != nil {
		return nil, err
	}

	m.mutex.Lock()
	m.lastMatch = nil
	m.mutex.Unlock()
	// Continue after the inserted text so it is never matched again.
	after := m.afterReplacement(edit, opts.Backwards)
	m.doc.SelectionManager().SetCursor(after)
	m.history.RecordChange(history.Change{Edits: []history.Edit{edit}, CursorBefore: target.Start, CursorAfter: after})
	if _, err := m.find(opts); err != nil {
		return nil, err
	}
	return target, nil
}

func (m *Manager) afterReplacement(e history.Edit, backwards bool) types.Position {
	if backwards {
		return e.Start
	}
	return e.NewEnd()
}

// ReplaceAll replaces every match in scope and returns the number of
// replacements.
func (m *Manager) ReplaceAll(replacement string) (int, error) {
	opts := m.scopeOptions()
	if opts.Needle == "" {
		return 0, ErrNoPattern
	}
	ranges, err := search.New(opts).FindAll(m.doc)
	if err != nil {
		return 0, err
	}
	if len(ranges) == 0 {
		return 0, nil
	}

	// Edit bottom-up so earlier ranges stay valid.
	slices.SortFunc(ranges, func(a, b types.Range) int { return types.Compare(b.Start, a.Start) })
	texts, err := m.expand(opts, ranges, replacement)
	if err != nil {
		return 0, err
	}
	change := history.Change{CursorBefore: m.doc.SelectionManager().Cursor()}
	for i, r := range ranges {
		edit, err := m.replaceRange(r, texts[i])
		if err != nil {
			m.history.RecordChange(change)
			return i, err
		}
		change.Edits = append(change.Edits, edit)
	}

	m.mutex.Lock()
	m.lastMatch = nil
	m.highlights = nil
	m.mutex.Unlock()
	change.CursorAfter = ranges[len(ranges)-1].Start
	m.doc.SelectionManager().SetCursor(change.CursorAfter)
	m.history.RecordChange(change)

	logger.Debugf("FindManager: replaced %d occurrence(s) of %q", len(ranges), opts.Needle)
	return len(ranges), nil
}

// expand computes the replacement text for each range before any edit is
// made. Regexp searches expand $1-style templates against the match.
func (m *Manager) expand(opts search.Options, ranges []types.Range, replacement string) ([]string, error) {
	texts := make([]string, len(ranges))
	if !opts.RegExp {
		for i := range texts {
			texts[i] = replacement
		}
		return texts, nil
	}

	re, err := opts.Pattern()
	if err != nil {
		return nil, err
	}
	for i, r := range ranges {
		line := m.doc.LineText(r.Start.Line)
		start := utils.RuneIndexToByteOffset(line, r.Start.Col)
		texts[i] = replacement
		for _, loc := range re.FindAllStringSubmatchIndex(line, -1) {
			if loc[0] == start {
				texts[i] = string(re.ExpandString(nil, replacement, line, loc))
				break
			}
		}
	}
	return texts, nil
}

// replaceRange swaps the text in r for text and reports the net edit.
func (m *Manager) replaceRange(r types.Range, text string) (history.Edit, error) {
	buf := m.doc.Buffer()
	edit := history.Edit{Start: r.Start, OldEnd: r.End, OldText: m.doc.Text(r), NewText: text}

	del, err := buf.Delete(r.Start, r.End)
	if err != nil {
		return edit, fmt.Errorf("replace failed during delete: %w", err)
	}
	ins, err := buf.Insert(r.Start, []byte(text))
	if err != nil {
		return edit, fmt.Errorf("replace failed during insert: %w", err)
	}
	logger.Debugf("Replace: %v -> %q", r, text)

	if m.events != nil {
		m.events.Dispatch(event.TypeBufferModified, event.BufferModifiedData{Edit: types.EditInfo{
			StartIndex:     del.StartIndex,
			StartPosition:  del.StartPosition,
			OldEndIndex:    del.OldEndIndex,
			OldEndPosition: del.OldEndPosition,
			NewEndIndex:    ins.NewEndIndex,
			NewEndPosition: ins.NewEndPosition,
		}})
	}
	return edit, nil
}

// Undo reverts the last Replace or ReplaceAll.
func (m *Manager) Undo() (bool, error) {
	m.forget()
	return m.history.Undo()
}

// Redo reapplies the last undone replacement.
func (m *Manager) Redo() (bool, error) {
	m.forget()
	return m.history.Redo()
}

func (m *Manager) forget() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.lastMatch = nil
	m.highlights = nil
}
