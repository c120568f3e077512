package selection

import (
	"github.com/bethropolis/seek/internal/logger"
	"github.com/bethropolis/seek/internal/types"
)

// Manager owns the cursor and the selection anchor of one document.
type Manager struct {
	cursor    types.Position
	selecting bool
	anchor    types.Position // Fixed end of the selection; the cursor is the moving end
}

// NewManager creates a manager with the cursor at the document start.
func NewManager() *Manager {
	return &Manager{}
}

// Cursor returns the current cursor position.
func (m *Manager) Cursor() types.Position {
	return m.cursor
}

// SetCursor moves the cursor and drops any selection.
func (m *Manager) SetCursor(pos types.Position) {
	m.cursor = pos
	m.ClearSelection()
}

// Select selects the text between anchor and cursor, leaving the cursor on
// the cursor end.
func (m *Manager) Select(anchor, cursor types.Position) {
	m.anchor = anchor
	m.cursor = cursor
	m.selecting = true
	logger.DebugTagf("selection", "Selection Manager: selected %v -> %v", anchor, cursor)
}

// SelectRange selects r with the cursor on its end.
func (m *Manager) SelectRange(r types.Range) {
	m.Select(r.Start, r.End)
}

// ExtendTo moves the cursor to pos, starting a selection anchored at the old
// cursor if none is active.
func (m *Manager) ExtendTo(pos types.Position) {
	if !m.selecting {
		m.anchor = m.cursor
		m.selecting = true
	}
	m.cursor = pos
}

// HasSelection reports whether a non-empty selection is active.
func (m *Manager) HasSelection() bool {
	return m.selecting && m.anchor != m.cursor
}

// GetSelection returns the normalized selection range (start <= end).
func (m *Manager) GetSelection() (start types.Position, end types.Position, ok bool) {
	if !m.HasSelection() {
		return m.cursor, m.cursor, false
	}
	r := types.NewRange(m.anchor, m.cursor)
	return r.Start, r.End, true
}

// ClearSelection resets the selection state.
func (m *Manager) ClearSelection() {
	if m.selecting {
		logger.DebugTagf("selection", "Selection Manager: cleared")
	}
	m.selecting = false
	m.anchor = m.cursor
}

// Selection reports the selection in the form the search engine consumes.
// Without a selection the range collapses onto the cursor.
func (m *Manager) Selection() types.Selection {
	start, end, _ := m.GetSelection()
	return types.Selection{Range: types.Range{Start: start, End: end}, Cursor: m.cursor}
}
