package lsp

import (
	"errors"
	"strings"

	"github.com/dhamidi/tutor/lesson"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Diagnostics turns the result of parsing text into LSP diagnostics. A nil
// err yields an empty, non-nil list so that stale diagnostics get cleared.
func Diagnostics(text string, err error, sourceName string) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	if err == nil {
		return diagnostics
	}

	severity := protocol.DiagnosticSeverityError
	d := protocol.Diagnostic{
		Severity: &severity,
		Message:  err.Error(),
	}
	if sourceName != "" {
		d.Source = &sourceName
	}

	var perr *lesson.Error
	if errors.As(err, &perr) {
		d.Message = perr.Message
		code := protocol.IntegerOrString{Value: string(perr.Type)}
		d.Code = &code
		d.Range = errorRange(text, perr.Position.Offset)
	}
	return append(diagnostics, d)
}

// errorRange covers the rest of the line starting at offset.
func errorRange(text string, offset int) protocol.Range {
	offset = min(max(offset, 0), len(text))
	end := len(text)
	if i := strings.IndexByte(text[offset:], '\n'); i >= 0 {
		end = offset + i
	}
	end = offset + len(strings.TrimRight(text[offset:end], "\r"))
	return protocol.Range{
		Start: toPosition(text, offset),
		End:   toPosition(text, end),
	}
}
