// Package tutorial is the read-only view of a parsed lesson that playback
// code consumes. Each node kind gets one narrow interface; optional sections
// that are absent come back as nil interfaces.
package tutorial

import "github.com/dhamidi/tutor/lesson"

// Text is any span whose marker-stripped content is shown to the learner.
type Text interface {
	Text() string
}

// Code is a code span. Lines drops one level of indentation.
type Code interface {
	Text
	Lines() []string
}

type Document interface {
	Title() Text
	Steps() []Step
}

type Step interface {
	Title() Text
	Instructions() Instructions
	Goal() Goal
	Summary() Summary
	Test() Test
	Explanation() Explanation
	File() File
}

type Instructions interface {
	Paragraphs() []Paragraph
}

type Goal interface {
	Paragraphs() []Paragraph
}

type Summary interface {
	Paragraphs() []Paragraph
}

type Test interface {
	Paragraphs() []Paragraph
	Code() Code
}

type Explanation interface {
	CodeExplanations() []CodeExplanation
}

type CodeExplanation interface {
	CodeQuote() Text
	Phrases() []Text
}

// File names the file a step edits. Path and Context are the two halves of
// the method reference.
type File interface {
	FileMethodReference() Text
	Path() string
	Context() string
	Paragraphs() []Paragraph
	Code() Code
}

// Paragraph holds either phrases or one code span.
type Paragraph interface {
	Phrases() []Text
	Code() Code
	IsCode() bool
}

// FromDocument wraps a decorated tree. It returns nil for a nil document.
func FromDocument(doc *lesson.Document) Document {
	if doc == nil {
		return nil
	}
	return document{doc}
}
