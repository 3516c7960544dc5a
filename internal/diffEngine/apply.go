package diffEngine

import (
	"strings"

	"github.com/akolanti/ResumeRAG/internal/domain/docModel"
)

// Apply patches content with an ordered sequence of line operations and
// returns the new content. It is a single-pass cursor walk over the original
// lines: each operation targets its explicit Line when set, otherwise the
// position the previous operation left off at.
//
// OldText on delete/replace is a hint from the model for the caller, it is
// NOT verified against the actual line. A mismatched operation produces a
// wrong result rather than an error.
func Apply(content string, operations []docModel.DiffOperation) string {
	lines := strings.Split(content, "\n")
	var result []string
	currentLine := 0

	for _, op := range operations {
		targetLine := currentLine
		if op.Line != nil {
			targetLine = *op.Line
		}

		for currentLine < targetLine && currentLine < len(lines) {
			result = append(result, lines[currentLine])
			currentLine++
		}

		switch op.Type {
		case docModel.DiffInsert:
			// the original line at the cursor is still pending
			result = append(result, op.NewText)

		case docModel.DiffDelete:
			if currentLine < len(lines) {
				currentLine++
			}

		case docModel.DiffReplace:
			// past end of content a replace degrades to an append
			result = append(result, op.NewText)
			if currentLine < len(lines) {
				currentLine++
			}
		}
	}

	for currentLine < len(lines) {
		result = append(result, lines[currentLine])
		currentLine++
	}

	return strings.Join(result, "\n")
}
