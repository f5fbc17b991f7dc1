// Package format writes parsed lesson documents as an indented tree or as
// JSON.
package format

import "github.com/dhamidi/tutor/lesson"

type Encoder interface {
	Encode(doc *lesson.Document) error
	MarshalDocument(doc *lesson.Document) ([]byte, error)
}

type Option func(*options)

type options struct {
	positions bool
	comments  bool
}

// WithPositions adds the line:column range of every node to the output.
func WithPositions() Option {
	return func(o *options) {
		o.positions = true
	}
}

// WithComments appends the comments recovered from skipped text.
func WithComments() Option {
	return func(o *options) {
		o.comments = true
	}
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
