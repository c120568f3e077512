// internal/buffer/slice_buffer.go
package buffer

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/bethropolis/seek/internal/types"
)

// SliceBuffer stores a document as one byte slice per line.
type SliceBuffer struct {
	lines        [][]byte
	filePath     string
	modified     bool
	finalNewline bool
}

// NewSliceBuffer creates an empty SliceBuffer holding a single empty line.
func NewSliceBuffer() *SliceBuffer {
	return &SliceBuffer{lines: [][]byte{{}}}
}

// NewSliceBufferFromString creates a buffer from text split on '\n'.
func NewSliceBufferFromString(text string) *SliceBuffer {
	sb := NewSliceBuffer()
	parts := bytes.Split([]byte(text), []byte("\n"))
	sb.lines = make([][]byte, len(parts))
	for i, p := range parts {
		sb.lines[i] = bytes.Clone(p)
	}
	return sb
}

// Load reads a file into the buffer, replacing its content. A missing file
// yields an empty buffer bound to filePath.
func (sb *SliceBuffer) Load(filePath string) error {
	sb.modified = false

	file, err := os.Open(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			sb.lines = [][]byte{{}}
			sb.finalNewline = false
			sb.filePath = filePath
			return nil
		}
		return fmt.Errorf("failed to open file '%s': %w", filePath, err)
	}
	defer file.Close()

	if _, err := sb.ReadFrom(file); err != nil {
		return fmt.Errorf("error reading file '%s': %w", filePath, err)
	}
	sb.filePath = filePath
	return nil
}

// ReadFrom replaces the buffer content with the lines read from r.
// A final newline is remembered and restored by Save.
func (sb *SliceBuffer) ReadFrom(r io.Reader) (int64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return int64(len(data)), err
	}
	n := int64(len(data))
	sb.finalNewline = bytes.HasSuffix(data, []byte("\n"))
	data = bytes.TrimSuffix(data, []byte("\n"))

	parts := bytes.Split(data, []byte("\n"))
	sb.lines = make([][]byte, len(parts))
	for i, p := range parts {
		sb.lines[i] = bytes.Clone(p)
	}
	return n, nil
}

func (sb *SliceBuffer) Lines() [][]byte {
	return sb.lines
}

func (sb *SliceBuffer) LineCount() int {
	return len(sb.lines)
}

func (sb *SliceBuffer) Line(index int) ([]byte, error) {
	if index < 0 || index >= len(sb.lines) {
		return nil, fmt.Errorf("line index %d out of bounds (0-%d)", index, len(sb.lines)-1)
	}
	return sb.lines[index], nil
}

// Bytes joins the lines with '\n'.
func (sb *SliceBuffer) Bytes() []byte {
	return bytes.Join(sb.lines, []byte("\n"))
}

// WriteTo writes the content as it would be saved, including the final
// newline of the loaded input.
func (sb *SliceBuffer) WriteTo(w io.Writer) (int64, error) {
	data := sb.Bytes()
	if sb.finalNewline {
		data = append(data, '\n')
	}
	n, err := w.Write(data)
	return int64(n), err
}

// Save writes the buffer content to filePath, or to the loaded path if empty.
func (sb *SliceBuffer) Save(filePath string) error {
	path := sb.filePath
	if filePath != "" {
		path = filePath
	}
	if path == "" {
		return errors.New("no file path specified for saving")
	}

	var data bytes.Buffer
	if _, err := sb.WriteTo(&data); err != nil {
		return err
	}
	if err := os.WriteFile(path, data.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write file '%s': %w", path, err)
	}
	sb.filePath = path
	sb.modified = false
	return nil
}

func (sb *SliceBuffer) IsModified() bool {
	return sb.modified
}

func (sb *SliceBuffer) FilePath() string {
	return sb.filePath
}

// --- Buffer Modification Methods ---

// validatePosition clamps pos into the buffer and returns its byte column.
func (sb *SliceBuffer) validatePosition(pos types.Position) (types.Position, int) {
	if pos.Line < 0 {
		pos.Line = 0
	}
	if pos.Line >= len(sb.lines) {
		pos.Line = len(sb.lines) - 1
	}
	if pos.Col < 0 {
		pos.Col = 0
	}

	line := sb.lines[pos.Line]
	byteOff, runeCount := 0, 0
	for byteOff < len(line) && runeCount < pos.Col {
		_, size := utf8.DecodeRune(line[byteOff:])
		byteOff += size
		runeCount++
	}
	pos.Col = runeCount
	return pos, byteOff
}

// byteIndex returns the absolute byte offset of (line, byteCol) in Bytes().
func (sb *SliceBuffer) byteIndex(line, byteCol int) uint32 {
	idx := 0
	for i := 0; i < line; i++ {
		idx += len(sb.lines[i]) + 1
	}
	return uint32(idx + byteCol)
}

// Insert inserts text at pos. Text may span several lines.
func (sb *SliceBuffer) Insert(pos types.Position, text []byte) (types.EditInfo, error) {
	vPos, byteOffset := sb.validatePosition(pos)
	start := sb.byteIndex(vPos.Line, byteOffset)
	startPoint := types.Point(vPos.Line, byteOffset)
	if len(text) == 0 {
		return types.EditInfo{
			StartIndex: start, OldEndIndex: start, NewEndIndex: start,
			StartPosition: startPoint, OldEndPosition: startPoint, NewEndPosition: startPoint,
		}, nil
	}
	sb.modified = true

	current := sb.lines[vPos.Line]
	tail := bytes.Clone(current[byteOffset:])
	insertLines := bytes.Split(text, []byte("\n"))

	head := append(bytes.Clone(current[:byteOffset]), insertLines[0]...)
	newLines := make([][]byte, 0, len(insertLines))
	newLines = append(newLines, head)
	for _, l := range insertLines[1:] {
		newLines = append(newLines, bytes.Clone(l))
	}
	last := len(newLines) - 1
	endLine, endCol := vPos.Line+last, len(newLines[last])
	if last == 0 {
		endCol = byteOffset + len(insertLines[0])
	}
	newLines[last] = append(newLines[last], tail...)

	sb.lines = append(sb.lines[:vPos.Line], append(newLines, sb.lines[vPos.Line+1:]...)...)

	return types.EditInfo{
		StartIndex:     start,
		OldEndIndex:    start,
		NewEndIndex:    start + uint32(len(text)),
		StartPosition:  startPoint,
		OldEndPosition: startPoint,
		NewEndPosition: types.Point(endLine, endCol),
	}, nil
}

// Delete removes the text between start (inclusive) and end (exclusive).
func (sb *SliceBuffer) Delete(start, end types.Position) (types.EditInfo, error) {
	if end.Before(start) {
		start, end = end, start
	}
	vStart, startOffset := sb.validatePosition(start)
	vEnd, endOffset := sb.validatePosition(end)

	startIdx := sb.byteIndex(vStart.Line, startOffset)
	endIdx := sb.byteIndex(vEnd.Line, endOffset)
	info := types.EditInfo{
		StartIndex:     startIdx,
		OldEndIndex:    endIdx,
		NewEndIndex:    startIdx,
		StartPosition:  types.Point(vStart.Line, startOffset),
		OldEndPosition: types.Point(vEnd.Line, endOffset),
		NewEndPosition: types.Point(vStart.Line, startOffset),
	}
	if vStart == vEnd {
		return info, nil
	}
	sb.modified = true

	merged := append(bytes.Clone(sb.lines[vStart.Line][:startOffset]), sb.lines[vEnd.Line][endOffset:]...)
	sb.lines = append(sb.lines[:vStart.Line+1], sb.lines[vEnd.Line+1:]...)
	sb.lines[vStart.Line] = merged
	return info, nil
}

// Ensure SliceBuffer satisfies the Buffer interface
var _ Buffer = (*SliceBuffer)(nil)
