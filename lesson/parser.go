package lesson

import (
	"cmp"
	"slices"
	"strings"

	"github.com/dhamidi/tutor/source"
)

type Option func(*parser)

// WithFile sets the file name reported in error positions.
func WithFile(path string) Option {
	return func(p *parser) {
		p.file = path
	}
}

type parser struct {
	file string
}

// Parse parses a complete lesson document. On success the returned tree is
// fully decorated: every node knows its parent and every span its skipped
// pre-text. On failure no tree is returned.
func Parse(text string, opts ...Option) (*Document, error) {
	p := &parser{}
	for _, opt := range opts {
		opt(p)
	}

	doc, err := p.parseDocument(source.New(text))
	if err != nil {
		return nil, err
	}
	if err := decorate(p.file, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

const (
	sectionGoal        = "## GOAL"
	sectionSummary     = "## SUMMARY"
	sectionTest        = "## TEST"
	sectionExplanation = "## EXPLANATION"
	sectionFile        = "## FILE = "
)

var sectionMarkers = []string{
	sectionGoal,
	sectionSummary,
	sectionTest,
	sectionExplanation,
	sectionFile,
}

func (p *parser) parseDocument(text source.Slice) (*Document, error) {
	sections := text.SplitOnAny(StepSeparator)

	title, err := p.parseTitle(sections[0])
	if err != nil {
		return nil, err
	}
	children := []Node{title}

	for _, section := range sections[1:] {
		step, err := p.parseStep(section)
		if err != nil {
			return nil, err
		}
		children = append(children, step)
	}

	end, err := newEnd(p.file, text.Range(text.IndexAfter(), text.IndexAfter()))
	if err != nil {
		return nil, err
	}
	children = append(children, end)

	return &Document{newBlock(KindDocument, text, children...)}, nil
}

func (p *parser) parseTitle(header source.Slice) (*Title, error) {
	for _, line := range header.Lines() {
		if !hasAnyPrefix(line, TitleMarkers) {
			continue
		}
		title := newTitle(line)
		if strings.TrimSpace(title.Text()) == "" {
			return nil, malformed(p.file, line, "document title is empty")
		}
		return title, nil
	}
	return nil, malformed(p.file, header, "missing %q line before the first step", TitleMarkers[0])
}

func (p *parser) parseStep(section source.Slice) (*Step, error) {
	body, _ := section.TrimMarker("\n")
	pieces := body.SplitOnAny(SectionSeparator)

	titleLine, instructionsText, _ := pieces[0].SplitAfterFirstLine()
	title := newStepTitle(titleLine)
	name := strings.TrimSpace(title.Text())
	if name == "" {
		return nil, malformed(p.file, titleLine, "step title is empty")
	}

	instructions, err := p.parseInstructions(instructionsText)
	if err != nil {
		return nil, err
	}
	if len(instructions.children) == 0 {
		return nil, malformed(p.file, titleLine, "step %q has no instructions", name)
	}

	seen := map[Kind]bool{}
	var sections []Node
	for _, piece := range pieces[1:] {
		sec, err := p.parseSection(piece)
		if err != nil {
			return nil, err
		}
		if seen[sec.Kind()] {
			return nil, malformed(p.file, sec.Content(), "step %q has more than one %s section", name, sec.Kind())
		}
		seen[sec.Kind()] = true
		sections = append(sections, sec)
	}

	if !seen[KindGoal] {
		return nil, malformed(p.file, titleLine, "step %q has no %s section", name, sectionGoal)
	}

	slices.SortStableFunc(sections, func(a, b Node) int {
		return cmp.Compare(a.Content().Offset(), b.Content().Offset())
	})

	children := append([]Node{title, instructions}, sections...)
	step := &Step{newBlock(KindStep, body, children...)}

	if step.Explanation() != nil && step.Test() == nil {
		return nil, malformed(p.file, step.Explanation().Content(), "step %q: %s requires a %s section", name, sectionExplanation, sectionTest)
	}
	return step, nil
}

func (p *parser) parseInstructions(text source.Slice) (*Instructions, error) {
	paragraphs, err := p.parseParagraphs(text)
	if err != nil {
		return nil, err
	}
	return &Instructions{newBlock(KindInstructions, text, paragraphs...)}, nil
}

func (p *parser) parseSection(piece source.Slice) (Node, error) {
	text, _ := piece.TrimMarker("\n")
	header, body, _ := text.SplitAfterFirstLine()

	_, marker := header.TrimMarker(sectionMarkers...)
	if marker == "" {
		return nil, malformed(p.file, header, "unknown section %q", header.TrimLineBreak().Text())
	}

	if marker == sectionFile {
		return p.parseFile(text, header, body)
	}

	if rest := header.Sub(len(marker)); !rest.IsBlank() {
		return nil, malformed(p.file, rest, "unexpected text after %q", marker)
	}

	if marker == sectionExplanation {
		return p.parseExplanation(text, body)
	}

	paragraphs, err := p.parseParagraphs(body)
	if err != nil {
		return nil, err
	}
	switch marker {
	case sectionGoal:
		return &Goal{newBlock(KindGoal, text, paragraphs...)}, nil
	case sectionSummary:
		return &Summary{newBlock(KindSummary, text, paragraphs...)}, nil
	default:
		return &Test{newBlock(KindTest, text, paragraphs...)}, nil
	}
}

func (p *parser) parseFile(text, header, body source.Slice) (*File, error) {
	ref := newFileMethodReference(header)
	if !strings.Contains(ref.Text(), FileContextDivider) {
		return nil, malformed(p.file, header, "file reference %q has no %q between path and context", ref.Text(), FileContextDivider)
	}

	paragraphs, err := p.parseParagraphs(body)
	if err != nil {
		return nil, err
	}
	children := append([]Node{ref}, paragraphs...)
	return &File{newBlock(KindFile, text, children...)}, nil
}

func (p *parser) parseExplanation(text, body source.Slice) (*Explanation, error) {
	var explanations []Node
	var quote *CodeExplanationQuote
	var parts []Node
	var start, end int

	flush := func() {
		if quote == nil {
			return
		}
		content := text.Range(start, end)
		explanations = append(explanations, &CodeExplanation{newBlock(KindCodeExplanation, content, parts...)})
		quote, parts = nil, nil
	}

	for _, line := range body.Lines() {
		if line.IsBlank() || isComment(line) {
			continue
		}
		switch {
		case hasAnyPrefix(line, QuoteMarkers):
			flush()
			quote = newCodeExplanationQuote(line)
			parts = []Node{quote}
			start = line.Offset()
		case isPhrase(line):
			if quote == nil {
				return nil, malformed(p.file, line, "phrase in %s must follow a %q code quote", sectionExplanation, QuoteMarkers[0])
			}
			parts = append(parts, newPhrase(line))
		default:
			return nil, malformed(p.file, line, "line in %s is neither a code quote nor a phrase", sectionExplanation)
		}
		end = line.IndexAfter()
	}
	flush()

	return &Explanation{newBlock(KindExplanation, text, explanations...)}, nil
}

// parseParagraphs splits text at blank lines. Paragraphs that hold nothing
// but comments are dropped.
func (p *parser) parseParagraphs(text source.Slice) ([]Node, error) {
	var paragraphs []Node
	for _, chunk := range splitParagraphs(text) {
		para, err := p.parseParagraph(chunk)
		if err != nil {
			return nil, err
		}
		if para != nil {
			paragraphs = append(paragraphs, para)
		}
	}
	return paragraphs, nil
}

func splitParagraphs(text source.Slice) []source.Slice {
	var chunks []source.Slice
	start := -1
	end := 0
	for _, line := range text.Lines() {
		if line.IsBlank() {
			if start >= 0 {
				chunks = append(chunks, text.Range(start, end))
				start = -1
			}
			continue
		}
		if start < 0 {
			start = line.Offset()
		}
		end = line.IndexAfter()
	}
	if start >= 0 {
		chunks = append(chunks, text.Range(start, end))
	}
	return chunks
}

func (p *parser) parseParagraph(chunk source.Slice) (*Paragraph, error) {
	var lines []source.Slice
	phrases, code := 0, 0
	for _, line := range chunk.Lines() {
		if line.IsBlank() || isComment(line) {
			continue
		}
		switch {
		case isPhrase(line):
			phrases++
		case isCode(line):
			code++
		default:
			return nil, malformed(p.file, line, "line is neither a phrase (%q) nor indented code", PhraseMarkers[0])
		}
		lines = append(lines, line)
	}

	switch {
	case len(lines) == 0:
		return nil, nil
	case phrases > 0 && code > 0:
		return nil, malformed(p.file, chunk, "paragraph mixes %d phrase line(s) with %d code line(s)", phrases, code)
	case code > 0:
		first, last := lines[0], lines[len(lines)-1]
		raw := chunk.Range(first.Offset(), last.TrimLineBreak().IndexAfter())
		return &Paragraph{newBlock(KindParagraph, chunk, newCode(raw))}, nil
	}

	children := make([]Node, 0, len(lines))
	for _, line := range lines {
		children = append(children, newPhrase(line))
	}
	return &Paragraph{newBlock(KindParagraph, chunk, children...)}, nil
}

func isComment(line source.Slice) bool { return hasAnyPrefix(line, CommentMarkers) }
func isPhrase(line source.Slice) bool { return hasAnyPrefix(line, PhraseMarkers) }
func isCode(line source.Slice) bool { return hasAnyPrefix(line, CodeIndents) }

func hasAnyPrefix(line source.Slice, prefixes []string) bool {
	for _, prefix := range prefixes {
		if line.HasPrefix(prefix) {
			return true
		}
	}
	return false
}
