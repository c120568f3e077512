// internal/buffer/buffer.go
package buffer

import "github.com/bethropolis/seek/internal/types"

// Buffer defines the interface for text buffer operations.
type Buffer interface {
	Load(filePath string) error
	Lines() [][]byte
	Line(index int) ([]byte, error)
	LineCount() int
	// Mutations report the change for incremental reparsing.
	Insert(pos types.Position, text []byte) (types.EditInfo, error)
	Delete(start, end types.Position) (types.EditInfo, error)
	Save(filePath string) error
	Bytes() []byte
	FilePath() string
	IsModified() bool
}
