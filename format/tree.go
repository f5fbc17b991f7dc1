package format

import (
	"io"
	"strconv"
	"strings"

	"github.com/dhamidi/tutor/lesson"
)

// TreeEncoder prints one node per line, children indented by two spaces.
// Spans show their text quoted.
type TreeEncoder struct {
	w    io.Writer
	opts options
}

func NewTreeEncoder(w io.Writer, opts ...Option) *TreeEncoder {
	return &TreeEncoder{w: w, opts: newOptions(opts)}
}

func (e *TreeEncoder) Encode(doc *lesson.Document) error {
	text, err := e.MarshalDocument(doc)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TreeEncoder) MarshalDocument(doc *lesson.Document) ([]byte, error) {
	var sb strings.Builder
	e.writeNode(&sb, doc, 0)
	if e.opts.comments {
		for _, c := range lesson.Comments(doc) {
			e.writeNode(&sb, c, 0)
		}
	}
	return []byte(sb.String()), nil
}

func (e *TreeEncoder) writeNode(sb *strings.Builder, n lesson.Node, indent int) {
	sb.WriteString(strings.Repeat("  ", indent))
	sb.WriteString(n.Kind().String())
	if e.opts.positions {
		sb.WriteString(" [" + n.Content().Position().String() + "-" + n.Content().End().String() + "]")
	}
	if n.Kind().IsSpan() {
		sb.WriteString(" " + strconv.Quote(n.(lesson.Span).Text()))
	}
	sb.WriteString("\n")

	if b, ok := n.(lesson.Block); ok {
		for _, child := range b.Children() {
			e.writeNode(sb, child, indent+1)
		}
	}
}
