package tools

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/akolanti/ResumeRAG/internal/domain/docModel"
	"github.com/akolanti/ResumeRAG/internal/rag/llm"
)

type fakeRetriever struct {
	contextFunc func(ctx context.Context, query string, limit int, scope []int64) (string, error)
}

func (f *fakeRetriever) ContextForQuery(ctx context.Context, query string, limit int, scope []int64) (string, error) {
	return f.contextFunc(ctx, query, limit, scope)
}

type fakeResources struct {
	createFunc func(ctx context.Context, content, name string, docType docModel.DocType, tags []string) (docModel.Document, int, error)
	getFunc    func(ctx context.Context, id int64) (docModel.Document, error)
}

func (f *fakeResources) Create(ctx context.Context, content, name string, docType docModel.DocType, tags []string) (docModel.Document, int, error) {
	return f.createFunc(ctx, content, name, docType, tags)
}

func (f *fakeResources) Get(ctx context.Context, id int64) (docModel.Document, error) {
	return f.getFunc(ctx, id)
}

func (f *fakeResources) List(ctx context.Context, typeFilter docModel.DocType) ([]docModel.Document, error) {
	return nil, nil
}

func (f *fakeResources) Update(ctx context.Context, id int64, content, name string) (docModel.Document, int, error) {
	return docModel.Document{}, 0, errors.New("not implemented")
}

func (f *fakeResources) Delete(ctx context.Context, id int64) error { return nil }

func (f *fakeResources) Reindex(ctx context.Context, id int64) (int, error) { return 0, nil }

func (f *fakeResources) ApplyDiff(ctx context.Context, id int64, ops []docModel.DiffOperation, persist bool) (string, []docModel.DiffLine, error) {
	return "", nil, nil
}

type fakeProvider struct {
	generateFunc func(ctx context.Context, system string, history []llm.Exchange, query string, tools llm.Executor) (llm.Reply, error)
}

func (f *fakeProvider) Generate(ctx context.Context, system string, history []llm.Exchange, query string, tools llm.Executor) (llm.Reply, error) {
	return f.generateFunc(ctx, system, history, query, tools)
}

func TestFormatExperience(t *testing.T) {
	got := FormatExperience(ExperienceInput{
		Date:        "2024-01",
		Description: "Built a search service",
		Company:     "Acme",
		Skills:      []string{"Go", "SQL"},
	})

	want := "Date: 2024-01\n    Description: Built a search service\n    Company: Acme\n    Skills: Go, SQL"
	if got != want {
		t.Errorf("FormatExperience mismatch:\ngot:  %q\nwant: %q", got, want)
	}
}

func TestFormatExperience_RequiredOnly(t *testing.T) {
	got := FormatExperience(ExperienceInput{Date: "2023", Description: "Something"})
	if got != "Date: 2023\n    Description: Something" {
		t.Errorf("unexpected format: %q", got)
	}
	if strings.Contains(got, "Title:") {
		t.Error("empty optional fields must be omitted")
	}
}

func TestAddExperience_Execute(t *testing.T) {
	var gotContent, gotName string
	var gotType docModel.DocType
	resources := &fakeResources{
		createFunc: func(ctx context.Context, content, name string, docType docModel.DocType, tags []string) (docModel.Document, int, error) {
			gotContent, gotName, gotType = content, name, docType
			return docModel.Document{Id: 12}, 3, nil
		},
	}

	out, err := NewAddExperience(resources).Execute(context.Background(),
		json.RawMessage(`{"date":"2024","description":"shipped things","skills":["Go"]}`))
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if !strings.HasPrefix(gotName, "Experience - ") {
		t.Errorf("unexpected document name %q", gotName)
	}
	if gotType != docModel.TypeOther {
		t.Errorf("Expected type other, got %q", gotType)
	}
	if !strings.Contains(gotContent, "Skills: Go") {
		t.Errorf("skills missing from content: %q", gotContent)
	}

	var result map[string]any
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("result is not JSON: %v", err)
	}
	if result["success"] != true || result["documentId"] != float64(12) || result["chunksProcessed"] != float64(3) {
		t.Errorf("unexpected result: %v", result)
	}
}

func TestAddJobPosting_Execute(t *testing.T) {
	var gotContent string
	var gotTags []string
	resources := &fakeResources{
		createFunc: func(ctx context.Context, content, name string, docType docModel.DocType, tags []string) (docModel.Document, int, error) {
			gotContent, gotTags = content, tags
			return docModel.Document{Id: 5}, 1, nil
		},
	}

	_, err := NewAddJobPosting(resources).Execute(context.Background(),
		json.RawMessage(`{"jobPosting":"Senior Go engineer wanted","link":"https://example.com/job"}`))
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if gotContent != "Senior Go engineer wanted\n\nLink: https://example.com/job" {
		t.Errorf("unexpected content: %q", gotContent)
	}
	if len(gotTags) != 1 || gotTags[0] != "job" {
		t.Errorf("Expected job tag, got %v", gotTags)
	}
}

func TestGetInformation_Execute(t *testing.T) {
	var gotQuery string
	var gotLimit int
	var gotScope []int64
	retriever := &fakeRetriever{
		contextFunc: func(ctx context.Context, query string, limit int, scope []int64) (string, error) {
			gotQuery, gotLimit, gotScope = query, limit, scope
			return "the context", nil
		},
	}

	out, err := NewGetInformation(retriever, []int64{3, 4}).Execute(context.Background(),
		json.RawMessage(`{"query":"what did I do at Acme"}`))
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if out != "the context" {
		t.Errorf("unexpected output: %q", out)
	}
	if gotQuery != "what did I do at Acme" || gotLimit != 10 {
		t.Errorf("unexpected retriever call: query=%q limit=%d", gotQuery, gotLimit)
	}
	if len(gotScope) != 2 || gotScope[0] != 3 {
		t.Errorf("scope not forwarded: %v", gotScope)
	}
}

func TestRegistry_Dispatch(t *testing.T) {
	retriever := &fakeRetriever{
		contextFunc: func(ctx context.Context, query string, limit int, scope []int64) (string, error) {
			return "found", nil
		},
	}
	registry := NewRegistry(NewGetInformation(retriever, nil))

	defs := registry.Definitions()
	if len(defs) != 1 || defs[0].Name != "get_information" {
		t.Fatalf("unexpected definitions: %v", defs)
	}

	out, err := registry.Execute(context.Background(), llm.ToolCall{
		Name:      "get_information",
		Arguments: json.RawMessage(`{"query":"x"}`),
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if out != "found" {
		t.Errorf("unexpected output: %q", out)
	}

	if _, err := registry.Execute(context.Background(), llm.ToolCall{Name: "nope"}); err == nil {
		t.Error("Expected error for unknown tool")
	}
}

func TestResumeSuggestions_EmptyKnowledgeBase(t *testing.T) {
	retriever := &fakeRetriever{
		contextFunc: func(ctx context.Context, query string, limit int, scope []int64) (string, error) {
			return "", nil
		},
	}
	tool := NewResumeSuggestions(retriever, nil, &fakeResources{}, nil)

	out, err := tool.Execute(context.Background(), json.RawMessage(`{"query":"help"}`))
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !strings.Contains(out, "don't have any documents") {
		t.Errorf("Expected empty-knowledge-base message, got %q", out)
	}
}

func TestResumeSuggestions_TextOnly(t *testing.T) {
	retriever := &fakeRetriever{
		contextFunc: func(ctx context.Context, query string, limit int, scope []int64) (string, error) {
			return "context here", nil
		},
	}
	provider := &fakeProvider{
		generateFunc: func(ctx context.Context, system string, history []llm.Exchange, query string, tools llm.Executor) (llm.Reply, error) {
			if tools != nil {
				t.Error("nested suggestion call must not carry tools")
			}
			return llm.Reply{Text: "add more numbers to your bullets"}, nil
		},
	}
	tool := NewResumeSuggestions(retriever, provider, &fakeResources{}, nil)

	out, err := tool.Execute(context.Background(), json.RawMessage(`{"query":"improve my resume"}`))
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	var result map[string]any
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("result is not JSON: %v", err)
	}
	if result["suggestions"] != "add more numbers to your bullets" {
		t.Errorf("unexpected suggestions: %v", result["suggestions"])
	}
	if _, ok := result["structuredChanges"]; ok {
		t.Error("text-only path must not emit structuredChanges")
	}
}

func TestResumeSuggestions_WithDiffs(t *testing.T) {
	docId := int64(9)
	retriever := &fakeRetriever{
		contextFunc: func(ctx context.Context, query string, limit int, scope []int64) (string, error) {
			return "context here", nil
		},
	}
	resources := &fakeResources{
		getFunc: func(ctx context.Context, id int64) (docModel.Document, error) {
			return docModel.Document{Id: id, Content: "# Resume\n\n## Skills"}, nil
		},
	}
	provider := &fakeProvider{
		generateFunc: func(ctx context.Context, system string, history []llm.Exchange, query string, tools llm.Executor) (llm.Reply, error) {
			return llm.Reply{Text: "```json\n{\"suggestions\":\"add Go\",\"operations\":[{\"type\":\"insert\",\"section\":\"Skills\",\"line\":2,\"newText\":\"- Go\"}]}\n```"}, nil
		},
	}
	tool := NewResumeSuggestions(retriever, provider, resources, &docId)

	out, err := tool.Execute(context.Background(), json.RawMessage(`{"query":"add my Go experience"}`))
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	var result struct {
		Suggestions       string                   `json:"suggestions"`
		StructuredChanges []docModel.DiffOperation `json:"structuredChanges"`
		DocumentId        int64                    `json:"documentId"`
	}
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("result is not JSON: %v", err)
	}
	if result.Suggestions != "add Go" || result.DocumentId != 9 {
		t.Errorf("unexpected result: %+v", result)
	}
	if len(result.StructuredChanges) != 1 || result.StructuredChanges[0].Type != docModel.DiffInsert {
		t.Errorf("operations not carried through: %+v", result.StructuredChanges)
	}
}

func TestResumeSuggestions_UnparseableFallsBackToText(t *testing.T) {
	docId := int64(9)
	retriever := &fakeRetriever{
		contextFunc: func(ctx context.Context, query string, limit int, scope []int64) (string, error) {
			return "context here", nil
		},
	}
	resources := &fakeResources{
		getFunc: func(ctx context.Context, id int64) (docModel.Document, error) {
			return docModel.Document{Id: id, Content: "resume"}, nil
		},
	}
	provider := &fakeProvider{
		generateFunc: func(ctx context.Context, system string, history []llm.Exchange, query string, tools llm.Executor) (llm.Reply, error) {
			return llm.Reply{Text: "just prose, no JSON"}, nil
		},
	}
	tool := NewResumeSuggestions(retriever, provider, resources, &docId)

	out, err := tool.Execute(context.Background(), json.RawMessage(`{"query":"help"}`))
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !strings.Contains(out, "just prose, no JSON") {
		t.Errorf("Expected raw text fallback, got %q", out)
	}
}
