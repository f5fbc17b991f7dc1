// Package lesson parses tutorial lesson documents into a syntax tree that
// keeps the exact source position of every character.
//
// # Format
//
// Lines end in "\r\n" ("\n" is accepted too).
//
//	% TITLE = Hello Go
//	// comments start in column one and may appear anywhere
//	# STEP = Print something
//	- Instructions are phrases, one per line.
//
//	## GOAL
//	- Print "hello".
//
//	## TEST
//		fmt.Println("hello")
//
//	## EXPLANATION
//	* fmt.Println
//	- prints its arguments followed by a newline.
//
//	## FILE = main.go > main
//		package main
//
// A step needs a title, at least one instruction paragraph and a GOAL
// section. SUMMARY, TEST, EXPLANATION and FILE are optional, but EXPLANATION
// requires TEST. Paragraphs are separated by blank lines and hold either
// "-" phrase lines or tab/four-space indented code lines, never both.
//
// # Tree
//
// Nodes are either spans or blocks:
//
//	Document
//	├── Title
//	├── Step
//	│   ├── StepTitle
//	│   ├── Instructions
//	│   │   └── Paragraph
//	│   │       └── Phrase
//	│   ├── Goal
//	│   ├── Test
//	│   ├── Explanation
//	│   │   └── CodeExplanation
//	│   │       ├── CodeExplanationQuote
//	│   │       └── Phrase
//	│   └── File
//	│       ├── FileMethodReference
//	│       └── Paragraph
//	│           └── Code
//	└── End
//
// Spans hold marker-stripped content. Everything between two spans that no
// span claims (markers, blank lines, comments, section headers) is recorded
// as the second span's skipped pre-text, so
//
//	Reconstruct(doc) == source
//
// holds for every document Parse accepts. The End span is empty and sits at
// the end of the source to own any trailing text.
//
// # Errors
//
// Parse returns either a complete, decorated tree or an *Error. Malformed
// input unwraps to ErrMalformedDocument; a tree that breaks the parser's
// own guarantees unwraps to ErrInvariantViolation.
package lesson
