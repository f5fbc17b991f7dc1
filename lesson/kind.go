package lesson

type Kind int

const (
	KindInvalid Kind = iota

	// Blocks
	KindDocument
	KindStep
	KindInstructions
	KindGoal
	KindSummary
	KindTest
	KindExplanation
	KindCodeExplanation
	KindFile
	KindParagraph

	// Spans
	KindTitle
	KindStepTitle
	KindPhrase
	KindCode
	KindComment
	KindFileMethodReference
	KindCodeExplanationQuote
	KindEnd
)

var kindNames = map[Kind]string{
	KindInvalid:              "Invalid",
	KindDocument:             "Document",
	KindStep:                 "Step",
	KindInstructions:         "Instructions",
	KindGoal:                 "Goal",
	KindSummary:              "Summary",
	KindTest:                 "Test",
	KindExplanation:          "Explanation",
	KindCodeExplanation:      "CodeExplanation",
	KindFile:                 "File",
	KindParagraph:            "Paragraph",
	KindTitle:                "Title",
	KindStepTitle:            "StepTitle",
	KindPhrase:               "Phrase",
	KindCode:                 "Code",
	KindComment:              "Comment",
	KindFileMethodReference:  "FileMethodReference",
	KindCodeExplanationQuote: "CodeExplanationQuote",
	KindEnd:                  "End",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsSpan reports whether nodes of this kind are leaves.
func (k Kind) IsSpan() bool {
	return k >= KindTitle && k <= KindEnd
}
