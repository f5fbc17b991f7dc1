package lesson

import "github.com/dhamidi/tutor/source"

// decorate runs after the whole tree exists. It links every node to its
// parent and assigns each span the text lying between it and the previous
// span. Neither step changes anything set during parsing.
func decorate(file string, doc *Document) error {
	if err := linkParents(file, doc); err != nil {
		return err
	}
	return assignSkippedPreText(file, doc)
}

func linkParents(file string, b Block) error {
	for _, c := range b.blockBase().children {
		n := c.base()
		if n.parent != nil {
			return invariant(file, c.Content(), "%s already has a parent", c.Kind())
		}
		n.parent = b
		if child, ok := c.(Block); ok {
			if err := linkParents(file, child); err != nil {
				return err
			}
		}
	}
	return nil
}

func assignSkippedPreText(file string, doc *Document) error {
	prev := 0
	for _, s := range FlattenSpans(doc) {
		content := s.Content()
		if content.Offset() < prev {
			return invariant(file, content, "%s starts at offset %d but the previous span ends at %d", s.Kind(), content.Offset(), prev)
		}
		sp := s.spanBase()
		if sp.decorated {
			return invariant(file, content, "%s decorated twice", s.Kind())
		}
		sp.skipped = content.Range(prev, content.Offset())
		sp.decorated = true
		prev = content.IndexAfter()
	}
	return nil
}

// FlattenSpans returns the spans below b in document order.
func FlattenSpans(b Block) []Span {
	var spans []Span
	Walk(b, func(n Node) bool {
		if s, ok := n.(Span); ok {
			spans = append(spans, s)
		}
		return true
	})
	return spans
}

// FirstSpan returns the first span below b, or nil for an empty block.
func FirstSpan(b Block) Span {
	for _, c := range b.blockBase().children {
		switch n := c.(type) {
		case Span:
			return n
		case Block:
			if s := FirstSpan(n); s != nil {
				return s
			}
		}
	}
	return nil
}

// LastSpan returns the last span below b, or nil for an empty block.
func LastSpan(b Block) Span {
	children := b.blockBase().children
	for i := len(children) - 1; i >= 0; i-- {
		switch n := children[i].(type) {
		case Span:
			return n
		case Block:
			if s := LastSpan(n); s != nil {
				return s
			}
		}
	}
	return nil
}

// Comments recovers the "//" lines the parser skipped, in source order.
// Only lines starting in column one are comments, including those sitting
// between the lines of a code span. Each comment's skipped pre-text is the
// part of the gap between the previous comment (or span start) and itself.
func Comments(doc *Document) []*Comment {
	var comments []*Comment
	for _, s := range FlattenSpans(doc) {
		comments = appendComments(comments, s.SkippedPreText())
		if c, ok := s.(*Code); ok {
			comments = appendComments(comments, c.Content())
		}
	}
	return comments
}

func appendComments(comments []*Comment, text source.Slice) []*Comment {
	prev := text.Offset()
	for _, line := range text.Lines() {
		if !isComment(line) || !startsLine(line) {
			continue
		}
		c := newComment(line)
		c.skipped = line.Range(prev, line.Offset())
		c.decorated = true
		prev = c.content.IndexAfter()
		comments = append(comments, c)
	}
	return comments
}

func startsLine(s source.Slice) bool {
	return s.Offset() == 0 || s.Source()[s.Offset()-1] == '\n'
}
