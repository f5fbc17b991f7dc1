package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/tutor/lesson"
)

type JSONEncoder struct {
	w    io.Writer
	opts options
}

func NewJSONEncoder(w io.Writer, opts ...Option) *JSONEncoder {
	return &JSONEncoder{w: w, opts: newOptions(opts)}
}

func (e *JSONEncoder) Encode(doc *lesson.Document) error {
	text, err := e.MarshalDocument(doc)
	if err != nil {
		return err
	}
	_, err = e.w.Write(append(text, '\n'))
	return err
}

func (e *JSONEncoder) MarshalDocument(doc *lesson.Document) ([]byte, error) {
	out := jsonDocument{Document: e.nodeToJSON(doc)}
	if e.opts.comments {
		for _, c := range lesson.Comments(doc) {
			out.Comments = append(out.Comments, e.nodeToJSON(c))
		}
	}
	return json.MarshalIndent(out, "", "  ")
}

type jsonDocument struct {
	Document *jsonNode   `json:"document"`
	Comments []*jsonNode `json:"comments,omitempty"`
}

type jsonNode struct {
	Kind        string      `json:"kind"`
	Span        *jsonSpan   `json:"span,omitempty"`
	Skipped     string      `json:"skipped,omitempty"`
	StartMarker string      `json:"startMarker,omitempty"`
	Text        *string     `json:"text,omitempty"`
	EndMarker   string      `json:"endMarker,omitempty"`
	Children    []*jsonNode `json:"children,omitempty"`
}

type jsonSpan struct {
	Start jsonPosition `json:"start"`
	End   jsonPosition `json:"end"`
}

type jsonPosition struct {
	Offset int `json:"offset"`
	Line   int `json:"line"`
	Column int `json:"column"`
}

func (e *JSONEncoder) nodeToJSON(n lesson.Node) *jsonNode {
	jn := &jsonNode{Kind: n.Kind().String()}

	if e.opts.positions {
		start, end := n.Content().Position(), n.Content().End()
		jn.Span = &jsonSpan{
			Start: jsonPosition{Offset: start.Offset, Line: start.Line, Column: start.Column},
			End:   jsonPosition{Offset: end.Offset, Line: end.Line, Column: end.Column},
		}
	}

	switch n := n.(type) {
	case lesson.Span:
		text := n.Text()
		jn.Skipped = n.SkippedPreText().Text()
		jn.StartMarker = n.StartMarker()
		jn.Text = &text
		jn.EndMarker = n.EndMarker()
	case lesson.Block:
		for _, child := range n.Children() {
			jn.Children = append(jn.Children, e.nodeToJSON(child))
		}
	}
	return jn
}
