package lesson

import (
	"strings"

	"github.com/dhamidi/tutor/source"
)

// Reconstruct concatenates the skipped pre-text and content of every span
// below b. For a parsed document this reproduces the source exactly.
func Reconstruct(b Block) string {
	var sb strings.Builder
	for _, s := range FlattenSpans(b) {
		sb.WriteString(s.SkippedPreText().Text())
		sb.WriteString(s.Content().Text())
	}
	return sb.String()
}

// Render concatenates the markers and content of every span below n. Text
// the parser skipped is not part of the result.
func Render(n Node) string {
	var sb strings.Builder
	Walk(n, func(n Node) bool {
		if s, ok := n.(Span); ok {
			sb.WriteString(s.StartMarker())
			sb.WriteString(s.Text())
			sb.WriteString(s.EndMarker())
		}
		return true
	})
	return sb.String()
}

// ContentWindow returns the source range from the skipped pre-text of the
// first span below b to the end of the last span's content. ok is false when
// b holds no spans.
func ContentWindow(b Block) (window source.Slice, ok bool) {
	first, last := FirstSpan(b), LastSpan(b)
	if first == nil || last == nil {
		return source.Slice{}, false
	}
	start := first.SkippedPreText().Offset()
	return first.Content().Range(start, last.Content().IndexAfter()), true
}

// Verify checks the guarantees of a parsed document: the tree reconstructs
// its source, spans do not overlap, no block's spans reach past the block's
// content, paragraphs are either phrases or code, and parent links match
// ownership. It returns an error of type ErrorTypeInvariant on the first
// violation.
func Verify(doc *Document) error {
	text := doc.Content().Source()

	if rebuilt := Reconstruct(doc); rebuilt != text {
		at := firstDifference(rebuilt, text)
		return invariant("", doc.Content().Range(at, at), "reconstructed text differs from source at offset %d", at)
	}

	spans := FlattenSpans(doc)
	for i := 1; i < len(spans); i++ {
		a, b := spans[i-1], spans[i]
		if a.Content().IndexAfter() > b.SkippedPreText().Offset() {
			return invariant("", b.Content(), "%s overlaps the preceding %s", b.Kind(), a.Kind())
		}
	}

	var err error
	Walk(doc, func(n Node) bool {
		if err != nil {
			return false
		}
		b, ok := n.(Block)
		if !ok {
			return true
		}
		for _, c := range b.blockBase().children {
			if c.Parent() != b {
				err = invariant("", c.Content(), "%s is not linked to its parent %s", c.Kind(), b.Kind())
				return false
			}
		}
		if window, ok := ContentWindow(b); ok && window.IndexAfter() > b.Content().IndexAfter() {
			err = invariant("", b.Content(), "spans of %s end at %d, past the block's content at %d", b.Kind(), window.IndexAfter(), b.Content().IndexAfter())
			return false
		}
		if p, ok := n.(*Paragraph); ok {
			phrases, code := len(p.Phrases()), p.Code() != nil
			if (phrases > 0) == code {
				err = invariant("", p.Content(), "paragraph holds %d phrase(s) and code=%v", phrases, code)
				return false
			}
		}
		return true
	})
	return err
}

func firstDifference(a, b string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}
