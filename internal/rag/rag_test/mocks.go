package rag_test

import (
	"context"

	"github.com/akolanti/ResumeRAG/internal/domain/docModel"
	"github.com/akolanti/ResumeRAG/internal/rag/llm"
)

// MockIndex implements vectorDB.Index
type MockIndex struct {
	// Control fields to simulate different behaviors
	OnSearch           func(ctx context.Context, vector []float32, limit int, scope []int64) ([]docModel.ChunkMatch, error)
	OnUpsertChunks     func(ctx context.Context, doc docModel.Document, chunkTexts []string, vectors [][]float32) error
	OnDeleteByDocument func(ctx context.Context, documentId int64) error
}

func (m *MockIndex) Init(ctx context.Context) error { return nil }

func (m *MockIndex) Search(ctx context.Context, vector []float32, limit int, scope []int64) ([]docModel.ChunkMatch, error) {
	if m.OnSearch != nil {
		return m.OnSearch(ctx, vector, limit, scope)
	}
	return []docModel.ChunkMatch{{ChunkText: "default context", DocumentId: 1, DocumentName: "default doc", Score: 0.9}}, nil
}

func (m *MockIndex) UpsertChunks(ctx context.Context, doc docModel.Document, chunkTexts []string, vectors [][]float32) error {
	if m.OnUpsertChunks != nil {
		return m.OnUpsertChunks(ctx, doc, chunkTexts, vectors)
	}
	return nil
}

func (m *MockIndex) DeleteByDocument(ctx context.Context, documentId int64) error {
	if m.OnDeleteByDocument != nil {
		return m.OnDeleteByDocument(ctx, documentId)
	}
	return nil
}

// MockEmbedder implements embedding.Embedder
type MockEmbedder struct {
	OnGetEmbedding   func(ctx context.Context, text string) ([]float32, error)
	OnBatchEmbedding func(ctx context.Context, chunks []string) ([][]float32, error)
}

func (m *MockEmbedder) GetEmbedding(ctx context.Context, query string) ([]float32, error) {
	if m.OnGetEmbedding != nil {
		return m.OnGetEmbedding(ctx, query)
	}
	return []float32{0.1}, nil
}

func (m *MockEmbedder) BatchEmbedding(ctx context.Context, chunks []string) ([][]float32, error) {
	if m.OnBatchEmbedding != nil {
		return m.OnBatchEmbedding(ctx, chunks)
	}
	vectors := make([][]float32, len(chunks))
	for i := range vectors {
		vectors[i] = []float32{0.1}
	}
	return vectors, nil
}

// MockLLM implements llm.Provider
type MockLLM struct {
	OnGenerate func(ctx context.Context, system string, history []llm.Exchange, query string, tools llm.Executor) (llm.Reply, error)
}

func (m *MockLLM) Generate(ctx context.Context, system string, history []llm.Exchange, query string, tools llm.Executor) (llm.Reply, error) {
	if m.OnGenerate != nil {
		return m.OnGenerate(ctx, system, history, query, tools)
	}
	return llm.Reply{Text: "mocked llm response", Steps: 1}, nil
}

// MockResources implements resource.Manager
type MockResources struct {
	OnCreate func(ctx context.Context, content, name string, docType docModel.DocType, tags []string) (docModel.Document, int, error)
	OnGet    func(ctx context.Context, id int64) (docModel.Document, error)
}

func (m *MockResources) Create(ctx context.Context, content, name string, docType docModel.DocType, tags []string) (docModel.Document, int, error) {
	if m.OnCreate != nil {
		return m.OnCreate(ctx, content, name, docType, tags)
	}
	return docModel.Document{Id: 1, Name: name, Content: content, Type: docType, Tags: tags}, 1, nil
}

func (m *MockResources) Get(ctx context.Context, id int64) (docModel.Document, error) {
	if m.OnGet != nil {
		return m.OnGet(ctx, id)
	}
	return docModel.Document{Id: id, Name: "doc", Content: "doc content"}, nil
}

func (m *MockResources) List(ctx context.Context, typeFilter docModel.DocType) ([]docModel.Document, error) {
	return nil, nil
}

func (m *MockResources) Update(ctx context.Context, id int64, content, name string) (docModel.Document, int, error) {
	return docModel.Document{Id: id, Content: content}, 1, nil
}

func (m *MockResources) Delete(ctx context.Context, id int64) error { return nil }

func (m *MockResources) Reindex(ctx context.Context, id int64) (int, error) { return 0, nil }

func (m *MockResources) ApplyDiff(ctx context.Context, id int64, ops []docModel.DiffOperation, persist bool) (string, []docModel.DiffLine, error) {
	return "", nil, nil
}
