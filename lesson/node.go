package lesson

import (
	"slices"

	"github.com/dhamidi/tutor/source"
)

// Node is implemented by every element of a lesson tree.
type Node interface {
	Kind() Kind
	// Content is the node's own significant text. For spans the markers are
	// already stripped.
	Content() source.Slice
	// Parent is the enclosing block, or nil for the document and for
	// comments. It is only valid on a decorated tree.
	Parent() Block

	base() *node
}

// Span is a leaf node bounded by a start and an end marker.
type Span interface {
	Node
	StartMarker() string
	EndMarker() string
	// SkippedPreText is the source text between the end of the previous
	// span's content and the start of this one.
	SkippedPreText() source.Slice
	Text() string
	// Raw is the span's source text including its markers.
	Raw() source.Slice

	spanBase() *span
}

// Block is a composite node holding children in document order.
type Block interface {
	Node
	Children() []Node

	blockBase() *block
}

type node struct {
	kind    Kind
	content source.Slice
	parent  Block
}

func (n *node) Kind() Kind { return n.kind }
func (n *node) Content() source.Slice { return n.content }
func (n *node) Parent() Block { return n.parent }
func (n *node) base() *node { return n }

type span struct {
	node
	startMarker string
	endMarker   string
	skipped     source.Slice
	decorated   bool
}

// newSpan strips the longest matching start and end markers from raw. The
// markers stored on the span are the ones actually removed, so
// startMarker+content+endMarker is always exactly raw.
func newSpan(kind Kind, raw source.Slice, starts, ends []string) span {
	content, start := raw.TrimMarker(starts...)
	content, end := content.TrimMarkerEnd(ends...)
	return span{
		node:        node{kind: kind, content: content},
		startMarker: start,
		endMarker:   end,
	}
}

func (s *span) StartMarker() string { return s.startMarker }
func (s *span) EndMarker() string { return s.endMarker }
func (s *span) SkippedPreText() source.Slice { return s.skipped }
func (s *span) Text() string { return s.content.Text() }
func (s *span) spanBase() *span { return s }

func (s *span) Raw() source.Slice {
	start := s.content.Offset() - len(s.startMarker)
	return s.content.Range(start, s.content.IndexAfter()+len(s.endMarker))
}

type block struct {
	node
	children []Node
}

func newBlock(kind Kind, content source.Slice, children ...Node) block {
	return block{node: node{kind: kind, content: content}, children: children}
}

// Children returns a copy of the block's children.
func (b *block) Children() []Node { return slices.Clone(b.children) }
func (b *block) blockBase() *block { return b }

func firstOf[T Node](nodes []Node) T {
	for _, n := range nodes {
		if v, ok := n.(T); ok {
			return v
		}
	}
	var zero T
	return zero
}

func allOf[T Node](nodes []Node) []T {
	var result []T
	for _, n := range nodes {
		if v, ok := n.(T); ok {
			result = append(result, v)
		}
	}
	return result
}

// Walk visits n and its descendants depth-first in document order. If fn
// returns false the children of that node are skipped.
func Walk(n Node, fn func(Node) bool) {
	if !fn(n) {
		return
	}
	if b, ok := n.(Block); ok {
		for _, c := range b.blockBase().children {
			Walk(c, fn)
		}
	}
}
