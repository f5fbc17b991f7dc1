package tutorial

import "github.com/dhamidi/tutor/lesson"

type document struct{ d *lesson.Document }

func (v document) Title() Text {
	if t := v.d.Title(); t != nil {
		return t
	}
	return nil
}

func (v document) Steps() []Step {
	steps := v.d.Steps()
	out := make([]Step, len(steps))
	for i, s := range steps {
		out[i] = step{s}
	}
	return out
}

type step struct{ s *lesson.Step }

func (v step) Title() Text {
	if t := v.s.Title(); t != nil {
		return t
	}
	return nil
}

func (v step) Instructions() Instructions {
	if i := v.s.Instructions(); i != nil {
		return paragraphs{i.Paragraphs}
	}
	return nil
}

func (v step) Goal() Goal {
	if g := v.s.Goal(); g != nil {
		return paragraphs{g.Paragraphs}
	}
	return nil
}

func (v step) Summary() Summary {
	if s := v.s.Summary(); s != nil {
		return paragraphs{s.Paragraphs}
	}
	return nil
}

func (v step) Test() Test {
	if t := v.s.Test(); t != nil {
		return test{t}
	}
	return nil
}

func (v step) Explanation() Explanation {
	if e := v.s.Explanation(); e != nil {
		return explanation{e}
	}
	return nil
}

func (v step) File() File {
	if f := v.s.File(); f != nil {
		return file{f}
	}
	return nil
}

// paragraphs serves every section that is nothing but paragraphs.
type paragraphs struct{ list func() []*lesson.Paragraph }

func (v paragraphs) Paragraphs() []Paragraph { return wrapParagraphs(v.list()) }

type test struct{ t *lesson.Test }

func (v test) Paragraphs() []Paragraph { return wrapParagraphs(v.t.Paragraphs()) }
func (v test) Code() Code { return code(v.t.Code()) }

type explanation struct{ e *lesson.Explanation }

func (v explanation) CodeExplanations() []CodeExplanation {
	list := v.e.CodeExplanations()
	out := make([]CodeExplanation, len(list))
	for i, c := range list {
		out[i] = codeExplanation{c}
	}
	return out
}

type codeExplanation struct{ c *lesson.CodeExplanation }

func (v codeExplanation) CodeQuote() Text {
	if q := v.c.CodeQuote(); q != nil {
		return q
	}
	return nil
}

func (v codeExplanation) Phrases() []Text { return phrases(v.c.Phrases()) }

type file struct{ f *lesson.File }

func (v file) FileMethodReference() Text {
	if r := v.f.FileMethodReference(); r != nil {
		return r
	}
	return nil
}

func (v file) Path() string { return v.f.Path() }
func (v file) Context() string { return v.f.Context() }
func (v file) Paragraphs() []Paragraph { return wrapParagraphs(v.f.Paragraphs()) }
func (v file) Code() Code { return code(v.f.Code()) }

type paragraph struct{ p *lesson.Paragraph }

func (v paragraph) Phrases() []Text { return phrases(v.p.Phrases()) }
func (v paragraph) Code() Code { return code(v.p.Code()) }
func (v paragraph) IsCode() bool { return v.p.IsCode() }

func wrapParagraphs(list []*lesson.Paragraph) []Paragraph {
	out := make([]Paragraph, len(list))
	for i, p := range list {
		out[i] = paragraph{p}
	}
	return out
}

func phrases(list []*lesson.Phrase) []Text {
	out := make([]Text, len(list))
	for i, p := range list {
		out[i] = p
	}
	return out
}

func code(c *lesson.Code) Code {
	if c == nil {
		return nil
	}
	return c
}
