// internal/event/event.go
package event

import "github.com/bethropolis/seek/internal/types"

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	TypeBufferModified  // Buffer content changed (insert/delete/replace)
	TypeCursorMoved     // Cursor or selection moved to a match
	TypeSearchCompleted // A find-all pass finished
)

func (t Type) String() string {
	switch t {
	case TypeBufferModified:
		return "BufferModified"
	case TypeCursorMoved:
		return "CursorMoved"
	case TypeSearchCompleted:
		return "SearchCompleted"
	}
	return "Unknown"
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data interface{}
}

// BufferModifiedData contains info about buffer changes, including EditInfo.
type BufferModifiedData struct {
	Edit types.EditInfo // Information about the change for incremental parsing
}

// CursorMovedData contains the new cursor position and the selected match.
type CursorMovedData struct {
	NewPosition types.Position
	Match       types.Range
}

// SearchCompletedData reports the needle and every match found.
type SearchCompletedData struct {
	Needle  string
	Matches []types.Range
}
