package rag_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/akolanti/ResumeRAG/internal/domain/docModel"
	"github.com/akolanti/ResumeRAG/internal/rag"
	"github.com/akolanti/ResumeRAG/internal/rag/llm"
)

func newService(index *MockIndex, provider *MockLLM, embedder *MockEmbedder, resources *MockResources) rag.Service {
	if index == nil {
		index = &MockIndex{}
	}
	if provider == nil {
		provider = &MockLLM{}
	}
	if embedder == nil {
		embedder = &MockEmbedder{}
	}
	if resources == nil {
		resources = &MockResources{}
	}
	return rag.NewService(index, provider, embedder, resources)
}

func TestBuildContext(t *testing.T) {
	matches := []docModel.ChunkMatch{
		{ChunkText: "first chunk", DocumentName: "resume.md"},
		{ChunkText: "second chunk", DocumentName: "notes.txt"},
	}

	got := rag.BuildContext(matches)
	want := "--- SECTION 1 FROM: resume.md ---\nfirst chunk\n\n--- SECTION 2 FROM: notes.txt ---\nsecond chunk"
	if got != want {
		t.Errorf("BuildContext mismatch:\ngot:  %q\nwant: %q", got, want)
	}
}

func TestBuildContext_Empty(t *testing.T) {
	if got := rag.BuildContext(nil); got != "" {
		t.Errorf("Expected empty context, got %q", got)
	}
}

func TestSearch_DefaultLimit(t *testing.T) {
	var gotLimit int
	index := &MockIndex{
		OnSearch: func(ctx context.Context, vector []float32, limit int, scope []int64) ([]docModel.ChunkMatch, error) {
			gotLimit = limit
			return nil, nil
		},
	}
	svc := newService(index, nil, nil, nil)

	if _, err := svc.Search(context.Background(), "query", 0, nil); err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if gotLimit != 5 {
		t.Errorf("Expected default limit 5, got %d", gotLimit)
	}
}

func TestSearch_EmbeddingFailure(t *testing.T) {
	searched := false
	index := &MockIndex{
		OnSearch: func(ctx context.Context, vector []float32, limit int, scope []int64) ([]docModel.ChunkMatch, error) {
			searched = true
			return nil, nil
		},
	}
	embedder := &MockEmbedder{
		OnGetEmbedding: func(ctx context.Context, text string) ([]float32, error) {
			return nil, errors.New("api limit")
		},
	}
	svc := newService(index, nil, embedder, nil)

	if _, err := svc.Search(context.Background(), "query", 5, nil); err == nil {
		t.Fatal("Expected embedding error to propagate")
	}
	if searched {
		t.Error("Search must not hit the index when embedding fails")
	}
}

func TestSearch_ScopeForwarded(t *testing.T) {
	var gotScope []int64
	index := &MockIndex{
		OnSearch: func(ctx context.Context, vector []float32, limit int, scope []int64) ([]docModel.ChunkMatch, error) {
			gotScope = scope
			return nil, nil
		},
	}
	svc := newService(index, nil, nil, nil)

	if _, err := svc.Search(context.Background(), "query", 5, []int64{7, 8}); err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(gotScope) != 2 || gotScope[0] != 7 || gotScope[1] != 8 {
		t.Errorf("scope not forwarded: %v", gotScope)
	}
}

func TestContextForQuery(t *testing.T) {
	svc := newService(nil, nil, nil, nil)

	got, err := svc.ContextForQuery(context.Background(), "query", 5, nil)
	if err != nil {
		t.Fatalf("ContextForQuery failed: %v", err)
	}
	if !strings.HasPrefix(got, "--- SECTION 1 FROM: default doc ---") {
		t.Errorf("unexpected context: %q", got)
	}
}

func TestChat_PlainAnswer(t *testing.T) {
	provider := &MockLLM{
		OnGenerate: func(ctx context.Context, system string, history []llm.Exchange, query string, tools llm.Executor) (llm.Reply, error) {
			if tools == nil {
				t.Error("chat must offer tools to the model")
			}
			if len(tools.Definitions()) != 4 {
				t.Errorf("Expected 4 tools, got %d", len(tools.Definitions()))
			}
			return llm.Reply{Text: "final answer", Steps: 1}, nil
		},
	}
	svc := newService(nil, provider, nil, nil)

	result, err := svc.Chat(context.Background(), "what did I do", nil, nil, nil)
	if err != nil {
		t.Fatalf("Chat failed: %v", err)
	}
	if result.Answer != "final answer" || result.Steps != 1 {
		t.Errorf("unexpected result: %+v", result)
	}
	if len(result.StructuredChanges) != 0 {
		t.Errorf("Expected no structured changes, got %v", result.StructuredChanges)
	}
}

func TestChat_ToolRoundTrip(t *testing.T) {
	provider := &MockLLM{
		OnGenerate: func(ctx context.Context, system string, history []llm.Exchange, query string, tools llm.Executor) (llm.Reply, error) {
			// behave like a real provider: run one tool call, then answer
			out, err := tools.Execute(ctx, llm.ToolCall{
				Id:        "call_1",
				Name:      "get_information",
				Arguments: json.RawMessage(`{"query":"previous roles"}`),
			})
			if err != nil {
				return llm.Reply{}, err
			}
			return llm.Reply{
				Text:        "based on your history: " + out[:20],
				ToolResults: []llm.ToolResult{{Call: llm.ToolCall{Name: "get_information"}, Content: out}},
				Steps:       2,
			}, nil
		},
	}
	svc := newService(nil, provider, nil, nil)

	result, err := svc.Chat(context.Background(), "what did I do", nil, nil, nil)
	if err != nil {
		t.Fatalf("Chat failed: %v", err)
	}
	if result.Steps != 2 {
		t.Errorf("Expected 2 steps, got %d", result.Steps)
	}
}

func TestChat_StructuredChangesExtracted(t *testing.T) {
	docId := int64(3)
	toolPayload := `{"suggestions":"add Go","structuredChanges":[{"type":"insert","line":4,"newText":"- Go"}],"documentId":3}`
	provider := &MockLLM{
		OnGenerate: func(ctx context.Context, system string, history []llm.Exchange, query string, tools llm.Executor) (llm.Reply, error) {
			return llm.Reply{
				Text: "here are my suggestions",
				ToolResults: []llm.ToolResult{
					{Call: llm.ToolCall{Name: "provide_resume_suggestions"}, Content: toolPayload},
				},
				Steps: 2,
			}, nil
		},
	}
	svc := newService(nil, provider, nil, nil)

	result, err := svc.Chat(context.Background(), "improve my resume", nil, &docId, nil)
	if err != nil {
		t.Fatalf("Chat failed: %v", err)
	}
	if len(result.StructuredChanges) != 1 {
		t.Fatalf("Expected 1 structured change, got %d", len(result.StructuredChanges))
	}
	op := result.StructuredChanges[0]
	if op.Type != docModel.DiffInsert || op.Line == nil || *op.Line != 4 || op.NewText != "- Go" {
		t.Errorf("unexpected operation: %+v", op)
	}
	if result.DocumentId == nil || *result.DocumentId != 3 {
		t.Errorf("documentId not carried through: %v", result.DocumentId)
	}
}

func TestChat_LLMFailure(t *testing.T) {
	provider := &MockLLM{
		OnGenerate: func(ctx context.Context, system string, history []llm.Exchange, query string, tools llm.Executor) (llm.Reply, error) {
			return llm.Reply{}, errors.New("model unavailable")
		},
	}
	svc := newService(nil, provider, nil, nil)

	if _, err := svc.Chat(context.Background(), "hello", nil, nil, nil); err == nil {
		t.Fatal("Expected LLM failure to propagate")
	}
}
