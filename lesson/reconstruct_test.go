package lesson

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/dhamidi/tutor/source"
)

func TestRoundTripTestdata(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "*.lesson"))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatal("no testdata found")
	}

	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			t.Fatal(err)
		}
		for _, variant := range []struct {
			name string
			text string
		}{
			{"lf", string(data)},
			{"crlf", crlf(string(data))},
		} {
			t.Run(filepath.Base(file)+"/"+variant.name, func(t *testing.T) {
				doc, err := Parse(variant.text, WithFile(file))
				if err != nil {
					t.Fatalf("Parse failed: %v", err)
				}
				if got := Reconstruct(doc); got != variant.text {
					t.Errorf("Reconstruct differs at offset %d", firstDifference(got, variant.text))
				}
				if err := Verify(doc); err != nil {
					t.Errorf("Verify failed: %v", err)
				}

				again, err := Parse(Reconstruct(doc))
				if err != nil {
					t.Fatalf("reparse failed: %v", err)
				}
				if got := Reconstruct(again); got != variant.text {
					t.Error("reconstruction is not a fixed point")
				}
			})
		}
	}
}

func TestRenderMatchesRaw(t *testing.T) {
	doc := mustParse(t, crlf(readTestdata(t, "sample.lesson")))
	for _, s := range FlattenSpans(doc) {
		if got, want := Render(s), s.Raw().Text(); got != want {
			t.Errorf("%s: Render = %q, Raw = %q", s.Kind(), got, want)
		}
	}
}

func TestRenderStep(t *testing.T) {
	doc := mustParse(t, "% TITLE = T\n# STEP = One\n- a\n\n// note\n## GOAL\n- b\n")
	want := "# STEP = One\n" + "- a\n" + "- b\n"
	if got := Render(doc.Steps()[0]); got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestSkippedPreText(t *testing.T) {
	src := "% TITLE = T\n# STEP = One\n- a\n\n## GOAL\n- b\n// tail\n"
	doc := mustParse(t, src)

	tests := []struct {
		name string
		span Span
		want string
	}{
		{"title", doc.Title(), "% TITLE = "},
		{"step title", doc.Steps()[0].Title(), "\n# STEP = "},
		{"first phrase", doc.Steps()[0].Instructions().Paragraphs()[0].Phrases()[0], "\n- "},
		{"goal phrase", doc.Steps()[0].Goal().Paragraphs()[0].Phrases()[0], "\n\n## GOAL\n- "},
		{"end", doc.End(), "\n// tail\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.span.SkippedPreText().Text(); got != tt.want {
				t.Errorf("skipped = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParentLinks(t *testing.T) {
	doc := mustParse(t, readTestdata(t, "sample.lesson"))
	if doc.Parent() != nil {
		t.Error("document must not have a parent")
	}
	step := doc.Steps()[0]
	if step.Parent() != Block(doc) {
		t.Error("step is not linked to the document")
	}
	quote := step.Explanation().CodeExplanations()[0].CodeQuote()
	if quote.Parent().Kind() != KindCodeExplanation {
		t.Errorf("quote parent = %s", quote.Parent().Kind())
	}
	if quote.Parent().Parent() != Block(step.Explanation()) {
		t.Error("code explanation is not linked to its explanation")
	}
}

func TestContentWindow(t *testing.T) {
	doc := mustParse(t, readTestdata(t, "sample.lesson"))
	Walk(doc, func(n Node) bool {
		b, ok := n.(Block)
		if !ok {
			return false
		}
		window, ok := ContentWindow(b)
		if !ok {
			return true
		}
		if window.IndexAfter() > b.Content().IndexAfter() {
			t.Errorf("%s at %s: window ends at %d, past content end %d",
				b.Kind(), b.Content().Position(), window.IndexAfter(), b.Content().IndexAfter())
		}
		return true
	})

	if _, ok := ContentWindow(doc.Steps()[0].Summary()); !ok {
		t.Error("summary with a phrase should have a window")
	}
}

func TestContentWindowEmptyBlock(t *testing.T) {
	doc := mustParse(t, readTestdata(t, "tricky.lesson"))
	if _, ok := ContentWindow(doc.Steps()[0].Summary()); ok {
		t.Error("empty summary should have no window")
	}
}

func TestComments(t *testing.T) {
	tests := []struct {
		file string
		want []string
	}{
		{
			file: "sample.lesson",
			want: []string{
				"Sample lesson used by the parser tests.",
				"Lines starting with // are comments.",
				"The next paragraph shows the starting point.",
				"quotes may be followed by several phrases",
				"trailing comment",
			},
		},
		{
			file: "tricky.lesson",
			want: []string{
				"leading comment before the title",
				"a paragraph made only of comments",
				"disappears from the tree",
				"a column one comment inside code",
			},
		},
		{
			file: "minimal.lesson",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			text := crlf(readTestdata(t, tt.file))
			doc := mustParse(t, text)
			comments := Comments(doc)

			var got []string
			for _, c := range comments {
				got = append(got, c.Text())
				if c.Parent() != nil {
					t.Errorf("comment %q has a parent", c.Text())
				}
				if c.EndMarker() != "\r\n" {
					t.Errorf("comment %q end marker = %q", c.Text(), c.EndMarker())
				}
			}
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Errorf("comments = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCommentsInsideCode(t *testing.T) {
	text := "% TITLE = T\r\n" +
		"# STEP = S\r\n" +
		"- do\r\n" +
		"\r\n" +
		"## GOAL\r\n" +
		"- done\r\n" +
		"\r\n" +
		"## TEST\r\n" +
		"\tone()\r\n" +
		"// hidden note\r\n" +
		"\t// shown to the learner\r\n" +
		"\ttwo()\r\n"
	doc := mustParse(t, text)

	code := doc.Steps()[0].Test().Code()
	want := []string{"one()", "// shown to the learner", "two()"}
	if got := code.Lines(); !reflect.DeepEqual(got, want) {
		t.Errorf("code lines = %q, want %q", got, want)
	}

	comments := Comments(doc)
	if len(comments) != 1 {
		t.Fatalf("expected 1 comment, got %d", len(comments))
	}
	c := comments[0]
	if c.Text() != "hidden note" {
		t.Errorf("comment text = %q", c.Text())
	}
	if got := c.Content().Position().Line; got != 10 {
		t.Errorf("comment line = %d, want 10", got)
	}
	if got := c.SkippedPreText().Text(); got != "\tone()\r\n" {
		t.Errorf("comment skipped text = %q", got)
	}
	if got := Reconstruct(doc); got != text {
		t.Errorf("Reconstruct changed the document:\n got %q\nwant %q", got, text)
	}
}

func TestKindIsSpan(t *testing.T) {
	doc := mustParse(t, crlf(readTestdata(t, "sample.lesson")))
	Walk(doc, func(n Node) bool {
		_, isSpan := n.(Span)
		if got := n.Kind().IsSpan(); got != isSpan {
			t.Errorf("%s.IsSpan() = %v, want %v", n.Kind(), got, isSpan)
		}
		return true
	})
	for _, c := range Comments(doc) {
		if !c.Kind().IsSpan() {
			t.Errorf("%s.IsSpan() = false", c.Kind())
		}
	}
	if KindInvalid.IsSpan() || Kind(100).IsSpan() {
		t.Error("invalid kinds should not be spans")
	}
}

func TestDecorateRejectsOverlap(t *testing.T) {
	text := source.New("% TITLE = T\n")
	first := newTitle(text.SubN(0, 12))
	second := newTitle(text.SubN(2, 10))
	end, err := newEnd("", text.Range(12, 12))
	if err != nil {
		t.Fatal(err)
	}
	doc := &Document{newBlock(KindDocument, text, first, second, end)}

	err = decorate("overlap.lesson", doc)
	if !errors.Is(err, ErrInvariantViolation) {
		t.Fatalf("expected ErrInvariantViolation, got %v", err)
	}
	if errors.Is(err, ErrMalformedDocument) {
		t.Error("an invariant violation must not be reported as malformed input")
	}
}

func TestDecorateRejectsSecondPass(t *testing.T) {
	doc := mustParse(t, "% TITLE = T\n")
	if err := decorate("", doc); !errors.Is(err, ErrInvariantViolation) {
		t.Errorf("expected ErrInvariantViolation on second decoration, got %v", err)
	}
}

func TestNewEndMustBeEmpty(t *testing.T) {
	text := source.New("abc")
	if _, err := newEnd("", text.SubN(1, 1)); !errors.Is(err, ErrInvariantViolation) {
		t.Errorf("expected ErrInvariantViolation, got %v", err)
	}
}

func TestVerifyDetectsBrokenParagraph(t *testing.T) {
	doc := mustParse(t, "% TITLE = T\n# STEP = One\n- a\n## GOAL\n- b\n")
	para := doc.Steps()[0].Instructions().Paragraphs()[0]
	para.children = nil

	if err := Verify(doc); !errors.Is(err, ErrInvariantViolation) {
		t.Errorf("expected ErrInvariantViolation, got %v", err)
	}
}

func TestWalkSkipsChildren(t *testing.T) {
	doc := mustParse(t, readTestdata(t, "sample.lesson"))
	var visited []Kind
	Walk(doc, func(n Node) bool {
		visited = append(visited, n.Kind())
		return n.Kind() == KindDocument
	})
	want := []Kind{KindDocument, KindTitle, KindStep, KindStep, KindEnd}
	if strings.Join(kindStrings(visited), ",") != strings.Join(kindStrings(want), ",") {
		t.Errorf("visited = %v, want %v", visited, want)
	}
}

func kindStrings(ks []Kind) []string {
	var out []string
	for _, k := range ks {
		out = append(out, k.String())
	}
	return out
}
