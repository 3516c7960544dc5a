package diffEngine

import (
	"strings"

	"github.com/akolanti/ResumeRAG/internal/domain/docModel"
)

// Preview computes a line-level diff between two full texts for human
// review. It walks a longest-common-subsequence table so the number of
// added plus removed lines is minimal. Line numbers are 1-based in the old
// content for removed/unchanged rows and in the new content for added rows.
func Preview(oldContent, newContent string) []docModel.DiffLine {
	oldLines := strings.Split(oldContent, "\n")
	newLines := strings.Split(newContent, "\n")

	lcs := lcsTable(oldLines, newLines)

	// backtrack from the end so ties resolve to "removed before added",
	// then reverse into document order
	var reversed []docModel.DiffLine
	i, j := len(oldLines), len(newLines)
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && oldLines[i-1] == newLines[j-1]:
			reversed = append(reversed, docModel.DiffLine{
				Type:       docModel.LineUnchanged,
				Line:       oldLines[i-1],
				LineNumber: i,
			})
			i--
			j--
		case j > 0 && (i == 0 || lcs[i][j-1] >= lcs[i-1][j]):
			reversed = append(reversed, docModel.DiffLine{
				Type:       docModel.LineAdded,
				Line:       newLines[j-1],
				LineNumber: j,
			})
			j--
		default:
			reversed = append(reversed, docModel.DiffLine{
				Type:       docModel.LineRemoved,
				Line:       oldLines[i-1],
				LineNumber: i,
			})
			i--
		}
	}

	diff := make([]docModel.DiffLine, 0, len(reversed))
	for k := len(reversed) - 1; k >= 0; k-- {
		diff = append(diff, reversed[k])
	}
	return diff
}

func lcsTable(oldLines, newLines []string) [][]int {
	table := make([][]int, len(oldLines)+1)
	for i := range table {
		table[i] = make([]int, len(newLines)+1)
	}
	for i := 1; i <= len(oldLines); i++ {
		for j := 1; j <= len(newLines); j++ {
			if oldLines[i-1] == newLines[j-1] {
				table[i][j] = table[i-1][j-1] + 1
			} else if table[i-1][j] >= table[i][j-1] {
				table[i][j] = table[i-1][j]
			} else {
				table[i][j] = table[i][j-1]
			}
		}
	}
	return table
}
