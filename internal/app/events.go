package app

import (
	"github.com/bethropolis/seek/internal/event"
	"github.com/bethropolis/seek/internal/logger"
)

func (a *App) subscribe() {
	a.events.Subscribe(event.TypeBufferModified, a.handleBufferModified)
	a.events.Subscribe(event.TypeCursorMoved, a.handleCursorMoved)
	a.events.Subscribe(event.TypeSearchCompleted, a.handleSearchCompleted)
}

// handleBufferModified counts replacement edits and keeps the syntax tree
// in step with them.
func (a *App) handleBufferModified(e event.Event) bool {
	if data, ok := e.Data.(event.BufferModifiedData); ok {
		a.edits++
		if a.tree != nil {
			a.tree.Edit(data.Edit)
		}
		logger.DebugTagf("app", "App: edit at byte %d (%d -> %d)",
			data.Edit.StartIndex, data.Edit.OldEndIndex, data.Edit.NewEndIndex)
	}
	return false // Not consumed
}

func (a *App) handleCursorMoved(e event.Event) bool {
	if data, ok := e.Data.(event.CursorMovedData); ok {
		logger.DebugTagf("app", "App: cursor moved to %v on match %v", data.NewPosition, data.Match)
	}
	return false
}

func (a *App) handleSearchCompleted(e event.Event) bool {
	if data, ok := e.Data.(event.SearchCompletedData); ok {
		logger.DebugTagf("app", "App: %d match(es) for %q", len(data.Matches), data.Needle)
	}
	return false
}
