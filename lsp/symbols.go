package lsp

import (
	"github.com/dhamidi/tutor/lesson"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// DocumentSymbols outlines a lesson: the title, then one symbol per step
// with its sections as children.
func DocumentSymbols(doc *lesson.Document) []protocol.DocumentSymbol {
	var symbols []protocol.DocumentSymbol

	if title := doc.Title(); title != nil {
		symbols = append(symbols, protocol.DocumentSymbol{
			Name:           title.Text(),
			Kind:           protocol.SymbolKindFile,
			Range:          toRange(title.Raw()),
			SelectionRange: toRange(title.Content()),
		})
	}

	for _, step := range doc.Steps() {
		title := step.Title()
		symbol := protocol.DocumentSymbol{
			Name:           title.Text(),
			Kind:           protocol.SymbolKindNamespace,
			Range:          blockRange(step),
			SelectionRange: toRange(title.Content()),
		}
		for _, child := range step.Children() {
			b, ok := child.(lesson.Block)
			if !ok || b.Kind() == lesson.KindInstructions {
				continue
			}
			symbol.Children = append(symbol.Children, sectionSymbol(b))
		}
		symbols = append(symbols, symbol)
	}
	return symbols
}

func sectionSymbol(b lesson.Block) protocol.DocumentSymbol {
	r := blockRange(b)
	symbol := protocol.DocumentSymbol{
		Name:           b.Kind().String(),
		Kind:           protocol.SymbolKindObject,
		Range:          r,
		SelectionRange: protocol.Range{Start: r.Start, End: r.Start},
	}
	if f, ok := b.(*lesson.File); ok {
		context := f.Context()
		symbol.Name = f.Path()
		symbol.Detail = &context
		symbol.Kind = protocol.SymbolKindFile
		symbol.SelectionRange = toRange(f.FileMethodReference().Content())
	}
	return symbol
}

// blockRange runs from the start of a block's content to the end of its
// last span, leaving out trailing blank lines.
func blockRange(b lesson.Block) protocol.Range {
	content := b.Content()
	end := content.Offset()
	if last := lesson.LastSpan(b); last != nil {
		end = last.Content().IndexAfter()
	}
	return toRange(content.Range(content.Offset(), max(end, content.Offset())))
}

// FoldingRanges folds every step and every section spanning more than one
// line.
func FoldingRanges(doc *lesson.Document) []protocol.FoldingRange {
	var ranges []protocol.FoldingRange
	add := func(b lesson.Block) {
		r := blockRange(b)
		if r.End.Line > r.Start.Line {
			ranges = append(ranges, protocol.FoldingRange{StartLine: r.Start.Line, EndLine: r.End.Line})
		}
	}
	for _, step := range doc.Steps() {
		add(step)
		for _, child := range step.Children() {
			if b, ok := child.(lesson.Block); ok && b.Kind() != lesson.KindInstructions {
				add(b)
			}
		}
	}
	return ranges
}
