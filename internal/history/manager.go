package history

import (
	"fmt"
	"sync"

	"github.com/bethropolis/seek/internal/buffer"
	"github.com/bethropolis/seek/internal/event"
	"github.com/bethropolis/seek/internal/logger"
	"github.com/bethropolis/seek/internal/selection"
	"github.com/bethropolis/seek/internal/types"
)

const DefaultMaxHistory = 100

// Target is the document the history edits.
type Target interface {
	Buffer() buffer.Buffer
	SelectionManager() *selection.Manager
}

// Manager handles the undo/redo stack.
type Manager struct {
	target       Target
	events       *event.Manager // May be nil
	changes      []Change
	currentIndex int // Index of the *next* change to potentially Redo
	maxHistory   int
	mutex        sync.Mutex
}

// NewManager creates a history manager.
func NewManager(target Target, events *event.Manager, maxHistory int) *Manager {
	if maxHistory <= 0 {
		maxHistory = DefaultMaxHistory
	}
	return &Manager{
		target:     target,
		events:     events,
		changes:    make([]Change, 0, maxHistory),
		maxHistory: maxHistory,
	}
}

// RecordChange adds a new change, clearing any redo history.
func (m *Manager) RecordChange(change Change) {
	if len(change.Edits) == 0 {
		return
	}
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.currentIndex < len(m.changes) {
		m.changes = m.changes[:m.currentIndex]
	}
	m.changes = append(m.changes, change)
	if len(m.changes) > m.maxHistory {
		m.changes = m.changes[len(m.changes)-m.maxHistory:]
	}
	m.currentIndex = len(m.changes)

	logger.DebugTagf("history", "History: Recorded %d edit(s). Index: %d, Count: %d", len(change.Edits), m.currentIndex, len(m.changes))
}

// Undo reverts the last recorded change.
func (m *Manager) Undo() (bool, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.currentIndex <= 0 {
		logger.DebugTagf("history", "History: Nothing to undo.")
		return false, nil
	}
	change := m.changes[m.currentIndex-1]

	// Reverse application order keeps every recorded position valid.
	for i := len(change.Edits) - 1; i >= 0; i-- {
		e := change.Edits[i]
		if err := m.apply(e.Start, e.NewEnd(), e.OldText); err != nil {
			return false, fmt.Errorf("undo failed: %w", err)
		}
	}
	m.currentIndex--
	m.target.SelectionManager().SetCursor(change.CursorBefore)
	logger.DebugTagf("history", "History: Undid change %d", m.currentIndex)
	return true, nil
}

// Redo reapplies the last undone change.
func (m *Manager) Redo() (bool, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.currentIndex >= len(m.changes) {
		logger.DebugTagf("history", "History: Nothing to redo.")
		return false, nil
	}
	change := m.changes[m.currentIndex]

	for _, e := range change.Edits {
		if err := m.apply(e.Start, e.OldEnd, e.NewText); err != nil {
			return false, fmt.Errorf("redo failed: %w", err)
		}
	}
	m.currentIndex++
	m.target.SelectionManager().SetCursor(change.CursorAfter)
	logger.DebugTagf("history", "History: Redid change %d", m.currentIndex-1)
	return true, nil
}

// apply swaps the text in [start, end) for text.
func (m *Manager) apply(start, end types.Position, text string) error {
	buf := m.target.Buffer()
	del, err := buf.Delete(start, end)
	if err != nil {
		return err
	}
	ins, err := buf.Insert(start, []byte(text))
	if err != nil {
		return err
	}
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
	return nil
}

// Clear resets the history stack. Call this on file load.
func (m *Manager) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.changes = m.changes[:0]
	m.currentIndex = 0
}

// CanUndo returns true if there are changes that can be undone.
func (m *Manager) CanUndo() bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.currentIndex > 0
}

// CanRedo returns true if there are changes that can be redone.
func (m *Manager) CanRedo() bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.currentIndex < len(m.changes)
}
