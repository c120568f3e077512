package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bethropolis/seek/internal/types"
)

// ParsePosition parses "line:col" (both 0-based).
func ParsePosition(s string) (types.Position, error) {
	lineStr, colStr, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return types.Position{}, fmt.Errorf("invalid position %q: want line:col", s)
	}
	line, err := strconv.Atoi(lineStr)
	if err != nil {
		return types.Position{}, fmt.Errorf("invalid line in %q: %w", s, err)
	}
	col, err := strconv.Atoi(colStr)
	if err != nil {
		return types.Position{}, fmt.Errorf("invalid column in %q: %w", s, err)
	}
	if line < 0 || col < 0 {
		return types.Position{}, fmt.Errorf("invalid position %q: negative value", s)
	}
	return types.Position{Line: line, Col: col}, nil
}

// ParseRange parses "line:col-line:col" into a normalized range.
func ParseRange(s string) (types.Range, error) {
	from, to, ok := strings.Cut(s, "-")
	if !ok {
		return types.Range{}, fmt.Errorf("invalid selection %q: want line:col-line:col", s)
	}
	start, err := ParsePosition(from)
	if err != nil {
		return types.Range{}, err
	}
	end, err := ParsePosition(to)
	if err != nil {
		return types.Range{}, err
	}
	return types.NewRange(start, end), nil
}
