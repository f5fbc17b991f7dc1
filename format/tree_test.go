package format

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/dhamidi/tutor/lesson"
)

const minimal = "% TITLE = Demo\r\n# STEP = One\r\n- Do thing.\r\n\r\n## GOAL\r\n- done\r\n// bye\r\n"

func parseMinimal(t *testing.T) *lesson.Document {
	t.Helper()
	doc, err := lesson.Parse(minimal)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return doc
}

func TestTreeEncoder(t *testing.T) {
	var buf bytes.Buffer
	if err := NewTreeEncoder(&buf).Encode(parseMinimal(t)); err != nil {
		t.Fatal(err)
	}

	want := `Document
  Title "Demo"
  Step
    StepTitle "One"
    Instructions
      Paragraph
        Phrase "Do thing."
    Goal
      Paragraph
        Phrase "done"
  End ""
`
	if got := buf.String(); got != want {
		t.Errorf("tree output mismatch\n got:\n%s\nwant:\n%s", got, want)
	}
}

func TestTreeEncoderOptions(t *testing.T) {
	out, err := NewTreeEncoder(nil, WithPositions(), WithComments()).MarshalDocument(parseMinimal(t))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(string(out), "\n"), "\n")

	tests := []struct {
		name string
		line string
	}{
		{"title", `  Title [1:11-1:15] "Demo"`},
		{"comment", `Comment [7:4-7:7] "bye"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, line := range lines {
				if line == tt.line {
					return
				}
			}
			t.Errorf("missing line %q in:\n%s", tt.line, out)
		})
	}
}

func TestJSONEncoder(t *testing.T) {
	out, err := NewJSONEncoder(nil, WithComments()).MarshalDocument(parseMinimal(t))
	if err != nil {
		t.Fatal(err)
	}

	var decoded jsonDocument
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	root := decoded.Document
	if root.Kind != "Document" || root.Span != nil {
		t.Errorf("root = %s (span %v), want Document without span", root.Kind, root.Span)
	}
	if len(root.Children) != 3 {
		t.Fatalf("expected Title, Step, End; got %d children", len(root.Children))
	}

	title := root.Children[0]
	if title.Text == nil || *title.Text != "Demo" || title.StartMarker != "% TITLE = " || title.EndMarker != "\r" {
		t.Errorf("title = %+v", title)
	}

	end := root.Children[2]
	if end.Text == nil || *end.Text != "" {
		t.Error("end span must carry an empty text")
	}
	if end.Skipped != "\r\n// bye\r\n" {
		t.Errorf("end skipped = %q", end.Skipped)
	}

	if len(decoded.Comments) != 1 || *decoded.Comments[0].Text != "bye" {
		t.Errorf("comments = %+v", decoded.Comments)
	}
}
