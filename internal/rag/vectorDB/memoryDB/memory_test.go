package memoryDB

import (
	"context"
	"testing"

	"github.com/akolanti/ResumeRAG/internal/domain/docModel"
)

func seedStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore()
	ctx := context.Background()

	docA := docModel.Document{Id: 1, Name: "resume"}
	docB := docModel.Document{Id: 2, Name: "notes"}

	// three vectors with known pairwise similarity to the probe {1,0,0}
	err := s.UpsertChunks(ctx, docA, []string{"exact", "close"}, [][]float32{
		{1, 0, 0},
		{1, 1, 0},
	})
	if err != nil {
		t.Fatalf("UpsertChunks failed: %v", err)
	}
	err = s.UpsertChunks(ctx, docB, []string{"far"}, [][]float32{
		{0, 1, 0},
	})
	if err != nil {
		t.Fatalf("UpsertChunks failed: %v", err)
	}
	return s
}

func TestSearch_RankedBySimilarity(t *testing.T) {
	s := seedStore(t)

	matches, err := s.Search(context.Background(), []float32{1, 0, 0}, 3, nil)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(matches) != 3 {
		t.Fatalf("Expected 3 matches, got %d", len(matches))
	}

	expected := []string{"exact", "close", "far"}
	for i, want := range expected {
		if matches[i].ChunkText != want {
			t.Errorf("rank %d: got %q, want %q", i, matches[i].ChunkText, want)
		}
	}
	if matches[0].Score < 0.999 {
		t.Errorf("self similarity should be ~1.0, got %f", matches[0].Score)
	}
	if matches[0].DocumentName != "resume" {
		t.Errorf("Expected document name carried through, got %q", matches[0].DocumentName)
	}
}

func TestSearch_ScopeFilter(t *testing.T) {
	s := seedStore(t)

	// probe matches doc 2's vector exactly, but scope only allows doc 1
	matches, err := s.Search(context.Background(), []float32{0, 1, 0}, 5, []int64{1})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	for _, m := range matches {
		if m.DocumentId != 1 {
			t.Errorf("scope violated: got chunk from document %d", m.DocumentId)
		}
	}
	if len(matches) != 2 {
		t.Errorf("Expected 2 in-scope matches, got %d", len(matches))
	}
}

func TestSearch_FewerThanLimit(t *testing.T) {
	s := NewStore()
	matches, err := s.Search(context.Background(), []float32{1, 0}, 5, nil)
	if err != nil {
		t.Fatalf("empty index search must not error: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("Expected no matches, got %d", len(matches))
	}
}

func TestSearch_TiesAreDeterministic(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	doc := docModel.Document{Id: 7, Name: "dup"}
	// identical vectors: insertion order must decide, every time
	if err := s.UpsertChunks(ctx, doc, []string{"one", "two", "three"}, [][]float32{
		{1, 0}, {1, 0}, {1, 0},
	}); err != nil {
		t.Fatalf("UpsertChunks failed: %v", err)
	}

	for run := 0; run < 5; run++ {
		matches, err := s.Search(ctx, []float32{1, 0}, 3, nil)
		if err != nil {
			t.Fatalf("Search failed: %v", err)
		}
		for i, want := range []string{"one", "two", "three"} {
			if matches[i].ChunkText != want {
				t.Fatalf("run %d rank %d: got %q, want %q", run, i, matches[i].ChunkText, want)
			}
		}
	}
}

func TestDeleteByDocument(t *testing.T) {
	s := seedStore(t)
	ctx := context.Background()

	if err := s.DeleteByDocument(ctx, 1); err != nil {
		t.Fatalf("DeleteByDocument failed: %v", err)
	}

	matches, err := s.Search(ctx, []float32{1, 0, 0}, 5, nil)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	for _, m := range matches {
		if m.DocumentId == 1 {
			t.Errorf("chunk from deleted document survived: %+v", m)
		}
	}
	if len(matches) != 1 {
		t.Errorf("Expected 1 remaining chunk, got %d", len(matches))
	}
}

func TestUpsertChunks_CountMismatch(t *testing.T) {
	s := NewStore()
	err := s.UpsertChunks(context.Background(), docModel.Document{Id: 1}, []string{"a", "b"}, [][]float32{{1}})
	if err == nil {
		t.Error("Expected mismatch error, got nil")
	}
}
