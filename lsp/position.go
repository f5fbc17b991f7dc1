package lsp

import (
	"net/url"
	"path/filepath"
	"strings"
	"unicode/utf16"

	"github.com/dhamidi/tutor/source"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// toPosition converts a byte offset into text to an LSP position, whose
// character counts UTF-16 code units.
func toPosition(text string, offset int) protocol.Position {
	offset = min(max(offset, 0), len(text))
	before := text[:offset]
	lineStart := strings.LastIndexByte(before, '\n') + 1
	return protocol.Position{
		Line:      protocol.UInteger(strings.Count(before, "\n")),
		Character: protocol.UInteger(len(utf16.Encode([]rune(before[lineStart:])))),
	}
}

func toRange(s source.Slice) protocol.Range {
	return protocol.Range{
		Start: toPosition(s.Source(), s.Offset()),
		End:   toPosition(s.Source(), s.IndexAfter()),
	}
}

func uriToPath(uri protocol.DocumentUri) string {
	if strings.HasPrefix(string(uri), "file://") {
		if parsed, err := url.Parse(string(uri)); err == nil {
			return filepath.Clean(parsed.Path)
		}
	}
	return string(uri)
}
