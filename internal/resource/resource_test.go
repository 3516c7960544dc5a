package resource

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/akolanti/ResumeRAG/internal/domain/docModel"
)

type mockDocStore struct {
	docs   map[int64]docModel.Document
	nextId int64
}

func newMockDocStore() *mockDocStore {
	return &mockDocStore{docs: map[int64]docModel.Document{}, nextId: 1}
}

func (m *mockDocStore) Insert(ctx context.Context, name, content string, docType docModel.DocType, tags []string) (int64, error) {
	id := m.nextId
	m.nextId++
	m.docs[id] = docModel.Document{Id: id, Name: name, Content: content, Type: docType, Tags: tags, CreatedAt: time.Now()}
	return id, nil
}

func (m *mockDocStore) Get(ctx context.Context, id int64) (docModel.Document, bool, error) {
	doc, ok := m.docs[id]
	return doc, ok, nil
}

func (m *mockDocStore) UpdateContent(ctx context.Context, id int64, content, name string) error {
	doc := m.docs[id]
	doc.Content = content
	if name != "" {
		doc.Name = name
	}
	m.docs[id] = doc
	return nil
}

func (m *mockDocStore) Delete(ctx context.Context, id int64) error {
	delete(m.docs, id)
	return nil
}

func (m *mockDocStore) List(ctx context.Context, typeFilter docModel.DocType) ([]docModel.Document, error) {
	var out []docModel.Document
	for _, d := range m.docs {
		if typeFilter == "" || d.Type == typeFilter {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *mockDocStore) Close() error { return nil }

type mockEmbedder struct {
	batchFunc func(ctx context.Context, chunks []string) ([][]float32, error)
}

func (m *mockEmbedder) BatchEmbedding(ctx context.Context, chunks []string) ([][]float32, error) {
	if m.batchFunc != nil {
		return m.batchFunc(ctx, chunks)
	}
	vectors := make([][]float32, len(chunks))
	for i := range chunks {
		vectors[i] = []float32{1, 0, 0}
	}
	return vectors, nil
}

func (m *mockEmbedder) GetEmbedding(ctx context.Context, query string) ([]float32, error) {
	vectors, err := m.BatchEmbedding(ctx, []string{query})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

type mockIndex struct {
	upserts   map[int64]int
	deletes   []int64
	upsertErr error
	deleteErr error
	callOrder []string
}

func newMockIndex() *mockIndex {
	return &mockIndex{upserts: map[int64]int{}}
}

func (m *mockIndex) Init(ctx context.Context) error { return nil }

func (m *mockIndex) UpsertChunks(ctx context.Context, doc docModel.Document, chunkTexts []string, vectors [][]float32) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	m.upserts[doc.Id] += len(chunkTexts)
	m.callOrder = append(m.callOrder, "upsert")
	return nil
}

func (m *mockIndex) Search(ctx context.Context, vector []float32, limit int, scope []int64) ([]docModel.ChunkMatch, error) {
	return nil, nil
}

func (m *mockIndex) DeleteByDocument(ctx context.Context, documentId int64) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deletes = append(m.deletes, documentId)
	m.callOrder = append(m.callOrder, "delete")
	return nil
}

func newTestManager() (Manager, *mockDocStore, *mockIndex) {
	store := newMockDocStore()
	index := newMockIndex()
	return NewManager(store, &mockEmbedder{}, index), store, index
}

func TestCreate(t *testing.T) {
	mgr, store, index := newTestManager()

	doc, chunks, err := mgr.Create(context.Background(), "hello resume content", "My Resume", docModel.TypeResume, []string{"resume"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if doc.Id == 0 || doc.Name != "My Resume" {
		t.Errorf("unexpected document: %+v", doc)
	}
	if chunks != 1 {
		t.Errorf("Expected 1 chunk, got %d", chunks)
	}
	if index.upserts[doc.Id] != 1 {
		t.Errorf("Expected 1 chunk indexed, got %d", index.upserts[doc.Id])
	}
	if _, ok := store.docs[doc.Id]; !ok {
		t.Error("document row missing")
	}
}

func TestCreate_DefaultName(t *testing.T) {
	mgr, _, _ := newTestManager()

	doc, _, err := mgr.Create(context.Background(), "content", "", docModel.TypeOther, nil)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if !strings.HasPrefix(doc.Name, "Document ") {
		t.Errorf("Expected generated name, got %q", doc.Name)
	}
}

func TestCreate_EmptyContent(t *testing.T) {
	mgr, store, index := newTestManager()

	for _, content := range []string{"", "   \n\t  "} {
		_, _, err := mgr.Create(context.Background(), content, "x", docModel.TypeOther, nil)
		if !errors.Is(err, ErrEmptyContent) {
			t.Errorf("content %q: expected ErrEmptyContent, got %v", content, err)
		}
	}
	if len(store.docs) != 0 {
		t.Error("rejected content must not create a row")
	}
	if len(index.upserts) != 0 {
		t.Error("rejected content must not touch the index")
	}
}

func TestCreate_EmbeddingFailureBlocksInsert(t *testing.T) {
	store := newMockDocStore()
	index := newMockIndex()
	embedder := &mockEmbedder{batchFunc: func(ctx context.Context, chunks []string) ([][]float32, error) {
		return nil, errors.New("provider down")
	}}
	mgr := NewManager(store, embedder, index)

	_, _, err := mgr.Create(context.Background(), "content", "x", docModel.TypeOther, nil)
	if err == nil {
		t.Fatal("Expected error when embedding fails")
	}
	if len(store.docs) != 0 {
		t.Error("document row created despite embedding failure")
	}
}

func TestUpdate_DeleteThenReinsert(t *testing.T) {
	mgr, store, index := newTestManager()

	doc, _, err := mgr.Create(context.Background(), "original", "x", docModel.TypeOther, nil)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	index.callOrder = nil

	updated, chunks, err := mgr.Update(context.Background(), doc.Id, "revised content", "")
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Content != "revised content" {
		t.Errorf("content not updated: %q", updated.Content)
	}
	if chunks != 1 {
		t.Errorf("Expected 1 chunk, got %d", chunks)
	}
	if len(index.callOrder) != 2 || index.callOrder[0] != "delete" || index.callOrder[1] != "upsert" {
		t.Errorf("Expected delete then upsert, got %v", index.callOrder)
	}
	if store.docs[doc.Id].Content != "revised content" {
		t.Error("store row not updated")
	}
}

func TestUpdate_NotFound(t *testing.T) {
	mgr, _, _ := newTestManager()

	_, _, err := mgr.Update(context.Background(), 999, "content", "")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestUpdate_EmptyContentLeavesDocumentAlone(t *testing.T) {
	mgr, store, _ := newTestManager()

	doc, _, err := mgr.Create(context.Background(), "original", "x", docModel.TypeOther, nil)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	_, _, err = mgr.Update(context.Background(), doc.Id, "  ", "")
	if !errors.Is(err, ErrEmptyContent) {
		t.Fatalf("Expected ErrEmptyContent, got %v", err)
	}
	if store.docs[doc.Id].Content != "original" {
		t.Error("document mutated by rejected update")
	}
}

func TestDelete_RemovesVectorsAndRow(t *testing.T) {
	mgr, store, index := newTestManager()

	doc, _, err := mgr.Create(context.Background(), "content", "x", docModel.TypeOther, nil)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := mgr.Delete(context.Background(), doc.Id); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if len(index.deletes) != 1 || index.deletes[0] != doc.Id {
		t.Errorf("index delete not called for document %d: %v", doc.Id, index.deletes)
	}
	if _, ok := store.docs[doc.Id]; ok {
		t.Error("document row survived delete")
	}
}

func TestDelete_NotFound(t *testing.T) {
	mgr, _, _ := newTestManager()
	if err := mgr.Delete(context.Background(), 404); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestReindex(t *testing.T) {
	mgr, _, index := newTestManager()

	doc, _, err := mgr.Create(context.Background(), "content to reindex", "x", docModel.TypeOther, nil)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	index.callOrder = nil

	chunks, err := mgr.Reindex(context.Background(), doc.Id)
	if err != nil {
		t.Fatalf("Reindex failed: %v", err)
	}
	if chunks != 1 {
		t.Errorf("Expected 1 chunk, got %d", chunks)
	}
	if len(index.callOrder) != 2 || index.callOrder[0] != "delete" {
		t.Errorf("Expected delete then upsert, got %v", index.callOrder)
	}
}

func TestApplyDiff_Preview(t *testing.T) {
	mgr, store, index := newTestManager()

	doc, _, err := mgr.Create(context.Background(), "line one\nline two", "x", docModel.TypeOther, nil)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	index.callOrder = nil

	line := 1
	updated, preview, err := mgr.ApplyDiff(context.Background(), doc.Id, []docModel.DiffOperation{
		{Type: docModel.DiffReplace, Line: &line, OldText: "line two", NewText: "line 2 revised"},
	}, false)
	if err != nil {
		t.Fatalf("ApplyDiff failed: %v", err)
	}
	if updated != "line one\nline 2 revised" {
		t.Errorf("unexpected result: %q", updated)
	}
	if len(preview) == 0 {
		t.Error("Expected a non-empty preview")
	}
	if len(index.callOrder) != 0 {
		t.Error("preview must not touch the index")
	}
	if store.docs[doc.Id].Content != "line one\nline two" {
		t.Error("preview must not persist")
	}
}

func TestApplyDiff_Persist(t *testing.T) {
	mgr, store, _ := newTestManager()

	doc, _, err := mgr.Create(context.Background(), "line one\nline two", "x", docModel.TypeOther, nil)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	line := 0
	updated, _, err := mgr.ApplyDiff(context.Background(), doc.Id, []docModel.DiffOperation{
		{Type: docModel.DiffDelete, Line: &line, OldText: "line one"},
	}, true)
	if err != nil {
		t.Fatalf("ApplyDiff failed: %v", err)
	}
	if updated != "line two" {
		t.Errorf("unexpected result: %q", updated)
	}
	if store.docs[doc.Id].Content != "line two" {
		t.Errorf("persisted content mismatch: %q", store.docs[doc.Id].Content)
	}
}
