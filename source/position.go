package source

import (
	"fmt"
	"strings"
)

type Position struct {
	File   string
	Offset int
	Line   int
	Column int
}

func (p Position) IsValid() bool {
	return p.Line > 0
}

func (p Position) String() string {
	if p.File != "" {
		return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// PositionOf resolves a byte offset into text to a 1-based line and column.
// Columns count bytes, not runes.
func PositionOf(text string, offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(text) {
		offset = len(text)
	}
	before := text[:offset]
	line := strings.Count(before, "\n") + 1
	column := offset - (strings.LastIndexByte(before, '\n') + 1) + 1
	return Position{Offset: offset, Line: line, Column: column}
}

// Position returns the position of the first byte of s.
func (s Slice) Position() Position {
	return PositionOf(s.source, s.offset)
}

// End returns the position just past the last byte of s.
func (s Slice) End() Position {
	return PositionOf(s.source, s.IndexAfter())
}

// LineAt returns the full line of text containing offset, without its
// terminator.
func LineAt(text string, offset int) string {
	if offset > len(text) {
		offset = len(text)
	}
	start := strings.LastIndexByte(text[:offset], '\n') + 1
	end := strings.IndexByte(text[start:], '\n')
	if end < 0 {
		return strings.TrimRight(text[start:], "\r")
	}
	return strings.TrimRight(text[start:start+end], "\r")
}
