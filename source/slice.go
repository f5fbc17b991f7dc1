// Package source provides position-tracked views into a single document
// string.
//
// A Slice never copies text: it records the whole document plus an absolute
// offset and length, so every slice derived from another one can be traced
// back to the exact bytes it came from.
package source

import (
	"fmt"
	"strings"
)

// LineBreaks lists the line terminators recognized by Lines and used as end
// markers by the lesson parser. Longest match wins, so "\r\n" is preferred
// over a bare "\n" or "\r".
var LineBreaks = []string{"\r\n", "\n", "\r"}

// Slice is an immutable reference to source[offset:offset+length].
type Slice struct {
	source string
	offset int
	length int
}

// New returns a slice covering all of text.
func New(text string) Slice {
	return Slice{source: text, offset: 0, length: len(text)}
}

// Source returns the complete document the slice points into.
func (s Slice) Source() string { return s.source }

// Offset returns the absolute start of the slice.
func (s Slice) Offset() int { return s.offset }

// Len returns the number of bytes covered by the slice.
func (s Slice) Len() int { return s.length }

// IndexAfter returns the absolute offset just past the slice.
func (s Slice) IndexAfter() int { return s.offset + s.length }

// Text returns the referenced text.
func (s Slice) Text() string { return s.source[s.offset : s.offset+s.length] }

func (s Slice) String() string { return s.Text() }

func (s Slice) IsEmpty() bool { return s.length == 0 }

// IsBlank reports whether the slice holds only whitespace.
func (s Slice) IsBlank() bool {
	return strings.TrimSpace(s.Text()) == ""
}

// Range returns a slice of the same source covering the absolute offsets
// [start, end).
func (s Slice) Range(start, end int) Slice {
	if start < 0 || end < start || end > len(s.source) {
		panic(fmt.Sprintf("source: range [%d,%d) out of bounds for source of length %d", start, end, len(s.source)))
	}
	return Slice{source: s.source, offset: start, length: end - start}
}

// Sub returns the part of s starting rel bytes into it.
func (s Slice) Sub(rel int) Slice {
	return s.SubN(rel, s.length-rel)
}

// SubN returns n bytes of s starting rel bytes into it.
func (s Slice) SubN(rel, n int) Slice {
	if rel < 0 || n < 0 || rel+n > s.length {
		panic(fmt.Sprintf("source: sub-slice [%d:+%d] out of bounds for slice of length %d", rel, n, s.length))
	}
	return Slice{source: s.source, offset: s.offset + rel, length: n}
}

func (s Slice) HasPrefix(prefix string) bool {
	return strings.HasPrefix(s.Text(), prefix)
}

func (s Slice) HasSuffix(suffix string) bool {
	return strings.HasSuffix(s.Text(), suffix)
}

// Index returns the position of sub relative to the start of s, or -1.
func (s Slice) Index(sub string) int {
	return strings.Index(s.Text(), sub)
}

// Trim removes leading and trailing characters contained in cutset.
func (s Slice) Trim(cutset string) Slice {
	return s.TrimStart(cutset).TrimEnd(cutset)
}

func (s Slice) TrimStart(cutset string) Slice {
	trimmed := strings.TrimLeft(s.Text(), cutset)
	return s.Sub(s.length - len(trimmed))
}

func (s Slice) TrimEnd(cutset string) Slice {
	trimmed := strings.TrimRight(s.Text(), cutset)
	return s.SubN(0, len(trimmed))
}

// TrimSpace trims ASCII whitespace from both ends.
func (s Slice) TrimSpace() Slice {
	return s.Trim(" \t\r\n")
}

// TrimMarker strips the longest candidate that prefixes s and returns the
// remaining slice together with the marker that was removed. When no
// candidate matches, s is returned unchanged with an empty marker.
func (s Slice) TrimMarker(candidates ...string) (Slice, string) {
	marker := longestMatch(candidates, s.HasPrefix)
	return s.Sub(len(marker)), marker
}

// TrimMarkerEnd is TrimMarker for suffixes.
func (s Slice) TrimMarkerEnd(candidates ...string) (Slice, string) {
	marker := longestMatch(candidates, s.HasSuffix)
	return s.SubN(0, s.length-len(marker)), marker
}

func longestMatch(candidates []string, matches func(string) bool) string {
	best := ""
	for _, c := range candidates {
		if len(c) > len(best) && matches(c) {
			best = c
		}
	}
	return best
}

// SplitOnAny cuts s in front of every occurrence of any separator. The
// separator is not removed: it stays at the start of the piece that follows
// it. The first piece may be empty when s starts with a separator.
func (s Slice) SplitOnAny(separators ...string) []Slice {
	var parts []Slice
	text := s.Text()
	prev := 0
	next := indexOfAny(text, separators, 0)
	for next >= 0 {
		parts = append(parts, s.SubN(prev, next-prev))
		prev = next
		next = indexOfAny(text, separators, next+1)
	}
	return append(parts, s.Sub(prev))
}

// Split is SplitOnAny followed by removing the separator from each piece.
func (s Slice) Split(separators ...string) []Slice {
	parts := s.SplitOnAny(separators...)
	for i, p := range parts {
		parts[i], _ = p.TrimMarker(separators...)
	}
	return parts
}

func indexOfAny(text string, values []string, from int) int {
	if from > len(text) {
		return -1
	}
	best := -1
	for _, v := range values {
		if v == "" {
			continue
		}
		if i := strings.Index(text[from:], v); i >= 0 && (best < 0 || from+i < best) {
			best = from + i
		}
	}
	return best
}

// Lines splits s into lines. Each line keeps its own terminator, so the
// lines of s always tile it exactly. A trailing line without terminator is
// returned as is; an empty slice yields no lines.
func (s Slice) Lines() []Slice {
	var lines []Slice
	text := s.Text()
	start := 0
	for start < len(text) {
		end := strings.IndexByte(text[start:], '\n')
		if end < 0 {
			lines = append(lines, s.Sub(start))
			break
		}
		lines = append(lines, s.SubN(start, end+1))
		start += end + 1
	}
	return lines
}

// SplitAfterFirstLine returns the first line of s including its terminator
// and the rest of s. ok is false when s contains no line break, in which
// case first is all of s and rest is empty.
func (s Slice) SplitAfterFirstLine() (first, rest Slice, ok bool) {
	i := s.Index("\n")
	if i < 0 {
		return s, s.Sub(s.length), false
	}
	return s.SubN(0, i+1), s.Sub(i + 1), true
}

// TrimLineBreak strips one trailing line terminator.
func (s Slice) TrimLineBreak() Slice {
	trimmed, _ := s.TrimMarkerEnd(LineBreaks...)
	return trimmed
}
