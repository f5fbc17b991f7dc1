package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dhamidi/tutor/lesson"
)

// readLesson reads path, or stdin when path is empty or "-".
func readLesson(path string, stdin io.Reader) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	return string(data), nil
}

// checkLesson parses and verifies one file. size is the number of bytes
// read, zero when the file could not be read.
func checkLesson(path string) (doc *lesson.Document, size int, err error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("read file: %w", err)
	}
	doc, err = lesson.Parse(string(text), lesson.WithFile(path))
	if err != nil {
		return nil, len(text), err
	}
	if err := lesson.Verify(doc); err != nil {
		return nil, len(text), err
	}
	return doc, len(text), nil
}
