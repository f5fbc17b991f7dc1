package lesson

import (
	"strings"

	"github.com/dhamidi/tutor/source"
)

// Markers of the lesson format. Where a marker has several candidates the
// longest one present is stripped.
var (
	TitleMarkers     = []string{"% TITLE = ", "% TITLE ="}
	StepTitleMarkers = []string{"# STEP = "}
	PhraseMarkers    = []string{"- ", "-"}
	QuoteMarkers     = []string{"* ", "*"}
	CommentMarkers   = []string{"// ", "//"}
	FileMarkers      = []string{"## FILE = "}
	CodeIndents      = []string{"\t", "    "}
)

const (
	StepSeparator      = "\n# STEP = "
	SectionSeparator   = "\n#"
	FileContextDivider = ">"
)

// Document is the root of a lesson tree.
type Document struct{ block }

func (d *Document) Title() *Title { return firstOf[*Title](d.children) }
func (d *Document) Steps() []*Step { return allOf[*Step](d.children) }
func (d *Document) End() *End { return firstOf[*End](d.children) }

type Step struct{ block }

func (s *Step) Title() *StepTitle { return firstOf[*StepTitle](s.children) }
func (s *Step) Instructions() *Instructions {
	return firstOf[*Instructions](s.children)
}
func (s *Step) Goal() *Goal { return firstOf[*Goal](s.children) }
func (s *Step) Summary() *Summary { return firstOf[*Summary](s.children) }
func (s *Step) Test() *Test { return firstOf[*Test](s.children) }
func (s *Step) Explanation() *Explanation { return firstOf[*Explanation](s.children) }
func (s *Step) File() *File { return firstOf[*File](s.children) }

type Instructions struct{ block }

func (i *Instructions) Paragraphs() []*Paragraph { return allOf[*Paragraph](i.children) }

type Goal struct{ block }

func (g *Goal) Paragraphs() []*Paragraph { return allOf[*Paragraph](g.children) }

type Summary struct{ block }

func (s *Summary) Paragraphs() []*Paragraph { return allOf[*Paragraph](s.children) }

// Test holds the code a learner is expected to end up with.
type Test struct{ block }

func (t *Test) Paragraphs() []*Paragraph { return allOf[*Paragraph](t.children) }
func (t *Test) Code() *Code { return firstCode(t.Paragraphs()) }

// File names a source file and method the step edits, followed by its code.
type File struct{ block }

func (f *File) FileMethodReference() *FileMethodReference {
	return firstOf[*FileMethodReference](f.children)
}
func (f *File) Paragraphs() []*Paragraph { return allOf[*Paragraph](f.children) }
func (f *File) Code() *Code { return firstCode(f.Paragraphs()) }

// Path is the part of the file reference before the first '>'.
//
// TODO: replace the '>' split with a real reference grammar once the format
// defines escaping.
func (f *File) Path() string {
	path, _, _ := strings.Cut(f.FileMethodReference().Text(), FileContextDivider)
	return strings.TrimSpace(path)
}

// Context is the part of the file reference after the first '>'.
func (f *File) Context() string {
	_, context, _ := strings.Cut(f.FileMethodReference().Text(), FileContextDivider)
	return strings.TrimSpace(context)
}

// Paragraph holds either one or more phrases or exactly one code span.
type Paragraph struct{ block }

func (p *Paragraph) Phrases() []*Phrase { return allOf[*Phrase](p.children) }
func (p *Paragraph) Code() *Code { return firstOf[*Code](p.children) }

func (p *Paragraph) IsCode() bool { return p.Code() != nil }

type Explanation struct{ block }

func (e *Explanation) CodeExplanations() []*CodeExplanation {
	return allOf[*CodeExplanation](e.children)
}

// CodeExplanation quotes a piece of code and explains it in phrases.
type CodeExplanation struct{ block }

func (c *CodeExplanation) CodeQuote() *CodeExplanationQuote {
	return firstOf[*CodeExplanationQuote](c.children)
}
func (c *CodeExplanation) Phrases() []*Phrase { return allOf[*Phrase](c.children) }

func firstCode(paragraphs []*Paragraph) *Code {
	for _, p := range paragraphs {
		if c := p.Code(); c != nil {
			return c
		}
	}
	return nil
}

type Title struct{ span }

func newTitle(raw source.Slice) *Title {
	return &Title{newSpan(KindTitle, raw, TitleMarkers, source.LineBreaks)}
}

type StepTitle struct{ span }

func newStepTitle(raw source.Slice) *StepTitle {
	return &StepTitle{newSpan(KindStepTitle, raw, StepTitleMarkers, source.LineBreaks)}
}

type Phrase struct{ span }

func newPhrase(raw source.Slice) *Phrase {
	return &Phrase{newSpan(KindPhrase, raw, PhraseMarkers, source.LineBreaks)}
}

// Code is an indented block of one or more lines. Its markers are empty: the
// content keeps its indentation and inner line breaks.
type Code struct{ span }

func newCode(raw source.Slice) *Code {
	return &Code{newSpan(KindCode, raw, nil, nil)}
}

// Lines returns the code lines with one level of indentation removed.
// Column-one comments between code lines are left out.
func (c *Code) Lines() []string {
	var lines []string
	for _, l := range c.content.Lines() {
		if isComment(l) && startsLine(l) {
			continue
		}
		text, _ := l.TrimLineBreak().TrimMarker(CodeIndents...)
		lines = append(lines, text.Text())
	}
	return lines
}

// Comment is a "//" line. Comments are never children of a block; they are
// recovered from skipped text by Comments.
type Comment struct{ span }

func newComment(raw source.Slice) *Comment {
	return &Comment{newSpan(KindComment, raw, CommentMarkers, source.LineBreaks)}
}

type FileMethodReference struct{ span }

func newFileMethodReference(raw source.Slice) *FileMethodReference {
	return &FileMethodReference{newSpan(KindFileMethodReference, raw, FileMarkers, source.LineBreaks)}
}

type CodeExplanationQuote struct{ span }

func newCodeExplanationQuote(raw source.Slice) *CodeExplanationQuote {
	return &CodeExplanationQuote{newSpan(KindCodeExplanationQuote, raw, QuoteMarkers, source.LineBreaks)}
}

// End is the empty span anchored at the end of the document. It owns the
// text trailing the last real span as its skipped pre-text.
type End struct{ span }

func newEnd(file string, at source.Slice) (*End, error) {
	if at.Len() != 0 {
		return nil, invariant(file, at, "end of document span must be empty, got %d bytes", at.Len())
	}
	return &End{newSpan(KindEnd, at, nil, nil)}, nil
}
