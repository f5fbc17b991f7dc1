package tutorial

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/dhamidi/tutor/lesson"
)

const sample = "% TITLE = Demo\r\n" +
	"# STEP = One\r\n" +
	"- Do thing.\r\n" +
	"\r\n" +
	"## GOAL\r\n" +
	"- done\r\n" +
	"\r\n" +
	"## TEST\r\n" +
	"\tfmt.Println(1)\r\n" +
	"\r\n" +
	"## EXPLANATION\r\n" +
	"* fmt.Println\r\n" +
	"- prints a line\r\n" +
	"\r\n" +
	"## FILE = main.go > main\r\n" +
	"\tpackage main\r\n" +
	"\r\n" +
	"# STEP = Two\r\n" +
	"- Again.\r\n" +
	"\r\n" +
	"## GOAL\r\n" +
	"- done again\r\n"

func parse(t *testing.T) Document {
	t.Helper()
	doc, err := lesson.Parse(sample)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return FromDocument(doc)
}

func texts(list []Text) []string {
	var out []string
	for _, t := range list {
		out = append(out, t.Text())
	}
	return out
}

func TestFromDocument(t *testing.T) {
	doc := parse(t)

	if got := doc.Title().Text(); got != "Demo" {
		t.Errorf("title = %q, want %q", got, "Demo")
	}
	steps := doc.Steps()
	if len(steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(steps))
	}

	first := steps[0]
	if got := first.Title().Text(); got != "One" {
		t.Errorf("step title = %q", got)
	}
	if got := texts(first.Instructions().Paragraphs()[0].Phrases()); !reflect.DeepEqual(got, []string{"Do thing."}) {
		t.Errorf("instructions = %q", got)
	}
	if got := texts(first.Goal().Paragraphs()[0].Phrases()); !reflect.DeepEqual(got, []string{"done"}) {
		t.Errorf("goal = %q", got)
	}
	if got := first.Test().Code().Lines(); !reflect.DeepEqual(got, []string{"fmt.Println(1)"}) {
		t.Errorf("test code = %q", got)
	}

	explained := first.Explanation().CodeExplanations()
	if len(explained) != 1 {
		t.Fatalf("expected 1 code explanation, got %d", len(explained))
	}
	if got := explained[0].CodeQuote().Text(); got != "fmt.Println" {
		t.Errorf("quote = %q", got)
	}
	if got := texts(explained[0].Phrases()); !reflect.DeepEqual(got, []string{"prints a line"}) {
		t.Errorf("explanation phrases = %q", got)
	}

	f := first.File()
	if got := f.FileMethodReference().Text(); got != "main.go > main" {
		t.Errorf("file method reference = %q", got)
	}
	if f.Path() != "main.go" || f.Context() != "main" {
		t.Errorf("file = %q > %q", f.Path(), f.Context())
	}
	if !f.Paragraphs()[0].IsCode() {
		t.Error("file paragraph should be code")
	}
	if got := f.Code().Text(); got != "\tpackage main" {
		t.Errorf("file code = %q", got)
	}
}

func TestAbsentSectionsAreNil(t *testing.T) {
	second := parse(t).Steps()[1]

	if second.Summary() != nil {
		t.Error("Summary() should be a nil interface")
	}
	if second.Test() != nil {
		t.Error("Test() should be a nil interface")
	}
	if second.Explanation() != nil {
		t.Error("Explanation() should be a nil interface")
	}
	if second.File() != nil {
		t.Error("File() should be a nil interface")
	}

	para := second.Instructions().Paragraphs()[0]
	if para.Code() != nil {
		t.Error("phrase paragraph Code() should be a nil interface")
	}
	if para.IsCode() {
		t.Error("phrase paragraph reported as code")
	}
}

func TestFromNilDocument(t *testing.T) {
	if FromDocument(nil) != nil {
		t.Error("FromDocument(nil) should return a nil interface")
	}
}

// reached collects every span handed out by the views of doc.
func reached(doc Document) map[lesson.Span]bool {
	seen := map[lesson.Span]bool{}
	add := func(t Text) {
		if s, ok := t.(lesson.Span); ok {
			seen[s] = true
		}
	}
	addParagraphs := func(list []Paragraph) {
		for _, p := range list {
			for _, phrase := range p.Phrases() {
				add(phrase)
			}
			add(p.Code())
		}
	}

	add(doc.Title())
	for _, step := range doc.Steps() {
		add(step.Title())
		if s := step.Instructions(); s != nil {
			addParagraphs(s.Paragraphs())
		}
		if s := step.Goal(); s != nil {
			addParagraphs(s.Paragraphs())
		}
		if s := step.Summary(); s != nil {
			addParagraphs(s.Paragraphs())
		}
		if s := step.Test(); s != nil {
			addParagraphs(s.Paragraphs())
		}
		if s := step.Explanation(); s != nil {
			for _, c := range s.CodeExplanations() {
				add(c.CodeQuote())
				for _, phrase := range c.Phrases() {
					add(phrase)
				}
			}
		}
		if s := step.File(); s != nil {
			add(s.FileMethodReference())
			addParagraphs(s.Paragraphs())
		}
	}
	return seen
}

func TestAllChildrenReachable(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("..", "lesson", "testdata", "*.lesson"))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatal("no lesson files in testdata")
	}

	for _, path := range files {
		t.Run(filepath.Base(path), func(t *testing.T) {
			text, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			doc, err := lesson.Parse(string(text))
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			seen := reached(FromDocument(doc))
			lesson.Walk(doc, func(n lesson.Node) bool {
				s, ok := n.(lesson.Span)
				if !ok || n.Kind() == lesson.KindEnd {
					return true
				}
				if !seen[s] {
					pos := n.Content().Position()
					t.Errorf("%s %q at %s is not reachable through the views", n.Kind(), s.Text(), pos)
				}
				return true
			})
		})
	}
}
