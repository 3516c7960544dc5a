package diffEngine

import (
	"testing"

	"github.com/akolanti/ResumeRAG/internal/domain/docModel"
)

func lineAt(n int) *int { return &n }

func TestApply_Scenarios(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		ops      []docModel.DiffOperation
		expected string
	}{
		{
			name:     "No_Ops_Is_Identity",
			content:  "line0\nline1\nline2",
			ops:      nil,
			expected: "line0\nline1\nline2",
		},
		{
			name:    "Insert_Before_Line",
			content: "line0\nline1",
			ops: []docModel.DiffOperation{
				{Type: docModel.DiffInsert, Line: lineAt(1), NewText: "NEW"},
			},
			expected: "line0\nNEW\nline1",
		},
		{
			name:    "Replace_Line",
			content: "a\nb\nc",
			ops: []docModel.DiffOperation{
				{Type: docModel.DiffReplace, Line: lineAt(1), OldText: "b", NewText: "B"},
			},
			expected: "a\nB\nc",
		},
		{
			name:    "Delete_Line",
			content: "a\nb\nc",
			ops: []docModel.DiffOperation{
				{Type: docModel.DiffDelete, Line: lineAt(1), OldText: "b"},
			},
			expected: "a\nc",
		},
		{
			name:    "Implicit_Cursor_Advances",
			content: "a\nb\nc\nd",
			ops: []docModel.DiffOperation{
				{Type: docModel.DiffReplace, Line: lineAt(1), OldText: "b", NewText: "B"},
				// no Line: applies right after the replace consumed line 1
				{Type: docModel.DiffDelete, OldText: "c"},
			},
			expected: "a\nB\nd",
		},
		{
			name:    "Replace_Past_End_Appends",
			content: "a\nb",
			ops: []docModel.DiffOperation{
				{Type: docModel.DiffReplace, Line: lineAt(5), OldText: "", NewText: "tail"},
			},
			expected: "a\nb\ntail",
		},
		{
			name:    "Delete_Past_End_Is_NoOp",
			content: "a\nb",
			ops: []docModel.DiffOperation{
				{Type: docModel.DiffDelete, Line: lineAt(5), OldText: "zzz"},
			},
			expected: "a\nb",
		},
		{
			name:    "Insert_At_Start",
			content: "a\nb",
			ops: []docModel.DiffOperation{
				{Type: docModel.DiffInsert, Line: lineAt(0), NewText: "HEADER"},
			},
			expected: "HEADER\na\nb",
		},
		{
			name:    "Multiple_Inserts_Same_Line",
			content: "a\nb",
			ops: []docModel.DiffOperation{
				{Type: docModel.DiffInsert, Line: lineAt(1), NewText: "x"},
				{Type: docModel.DiffInsert, Line: lineAt(1), NewText: "y"},
			},
			expected: "a\nx\ny\nb",
		},
		{
			name:    "OldText_Is_Not_Verified",
			content: "a\nb\nc",
			ops: []docModel.DiffOperation{
				// OldText does not match line 1 - the patch still applies
				{Type: docModel.DiffReplace, Line: lineAt(1), OldText: "WRONG", NewText: "B"},
			},
			expected: "a\nB\nc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(tt.content, tt.ops)
			if got != tt.expected {
				t.Errorf("Apply got %q, want %q", got, tt.expected)
			}
		})
	}
}
