package diffEngine

import (
	"strings"
	"testing"

	"github.com/akolanti/ResumeRAG/internal/domain/docModel"
)

// Concatenating added+unchanged rows must rebuild the new content, and
// removed+unchanged rows the old content.
func assertRoundTrip(t *testing.T, oldContent, newContent string) {
	t.Helper()
	diff := Preview(oldContent, newContent)

	var rebuiltNew, rebuiltOld []string
	for _, d := range diff {
		switch d.Type {
		case docModel.LineAdded:
			rebuiltNew = append(rebuiltNew, d.Line)
		case docModel.LineRemoved:
			rebuiltOld = append(rebuiltOld, d.Line)
		case docModel.LineUnchanged:
			rebuiltNew = append(rebuiltNew, d.Line)
			rebuiltOld = append(rebuiltOld, d.Line)
		}
	}

	if got := strings.Join(rebuiltNew, "\n"); got != newContent {
		t.Errorf("added+unchanged rebuilt %q, want %q", got, newContent)
	}
	if got := strings.Join(rebuiltOld, "\n"); got != oldContent {
		t.Errorf("removed+unchanged rebuilt %q, want %q", got, oldContent)
	}
}

func TestPreview_Identical(t *testing.T) {
	content := "a\nb\nc"
	diff := Preview(content, content)

	if len(diff) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(diff))
	}
	for i, d := range diff {
		if d.Type != docModel.LineUnchanged {
			t.Errorf("row %d: expected unchanged, got %s", i, d.Type)
		}
		if d.LineNumber != i+1 {
			t.Errorf("row %d: expected line number %d, got %d", i, i+1, d.LineNumber)
		}
	}
	assertRoundTrip(t, content, content)
}

func TestPreview_FullyDisjoint(t *testing.T) {
	oldContent := "a\nb"
	newContent := "x\ny"
	diff := Preview(oldContent, newContent)

	removed, added := 0, 0
	for _, d := range diff {
		switch d.Type {
		case docModel.LineRemoved:
			removed++
		case docModel.LineAdded:
			added++
		case docModel.LineUnchanged:
			t.Errorf("unexpected unchanged row: %+v", d)
		}
	}
	if removed != 2 || added != 2 {
		t.Errorf("Expected 2 removed / 2 added, got %d / %d", removed, added)
	}
	assertRoundTrip(t, oldContent, newContent)
}

func TestPreview_SingleReplace(t *testing.T) {
	diff := Preview("a\nb\nc", "a\nB\nc")

	var types []docModel.DiffLineType
	for _, d := range diff {
		types = append(types, d.Type)
	}
	expected := []docModel.DiffLineType{
		docModel.LineUnchanged,
		docModel.LineRemoved,
		docModel.LineAdded,
		docModel.LineUnchanged,
	}
	if len(types) != len(expected) {
		t.Fatalf("Expected %d rows, got %d: %v", len(expected), len(types), types)
	}
	for i := range expected {
		if types[i] != expected[i] {
			t.Errorf("row %d: got %s, want %s", i, types[i], expected[i])
		}
	}
	assertRoundTrip(t, "a\nb\nc", "a\nB\nc")
}

func TestPreview_MinimalEditCount(t *testing.T) {
	// one line inserted in the middle must not cascade into a tail rewrite
	oldContent := "a\nb\nc\nd"
	newContent := "a\nb\nNEW\nc\nd"
	diff := Preview(oldContent, newContent)

	edits := 0
	for _, d := range diff {
		if d.Type != docModel.LineUnchanged {
			edits++
		}
	}
	if edits != 1 {
		t.Errorf("Expected exactly 1 edit row, got %d: %+v", edits, diff)
	}
	assertRoundTrip(t, oldContent, newContent)
}

func TestPreview_RoundTrip_Mixed(t *testing.T) {
	cases := [][2]string{
		{"", ""},
		{"", "a\nb"},
		{"a\nb", ""},
		{"SUMMARY\nexperienced engineer\nSKILLS\nGo, SQL", "SUMMARY\nsenior engineer\nEXPERIENCE\nAcme Corp\nSKILLS\nGo, SQL, Python"},
		{"a\nb\nc\nd\ne", "b\nc\nX\ne"},
	}
	for _, c := range cases {
		assertRoundTrip(t, c[0], c[1])
	}
}
