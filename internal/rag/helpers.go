package rag

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/akolanti/ResumeRAG/internal/config"
	"github.com/akolanti/ResumeRAG/internal/domain/docModel"
	"github.com/akolanti/ResumeRAG/internal/metrics"
	"github.com/akolanti/ResumeRAG/internal/rag/llm"
)

// BuildContext renders matches as numbered sections the model can cite.
// No matches means an empty string, which callers treat as "nothing known".
func BuildContext(matches []docModel.ChunkMatch) string {
	if len(matches) == 0 {
		return ""
	}

	sections := make([]string, 0, len(matches))
	for i, match := range matches {
		sections = append(sections, fmt.Sprintf("--- SECTION %d FROM: %s ---\n%s", i+1, match.DocumentName, match.ChunkText))
	}
	return strings.Join(sections, "\n\n")
}

// extractStructuredChanges pulls diff operations out of suggestion tool
// results. When the model called the tool more than once the last result with
// operations wins.
func extractStructuredChanges(results []llm.ToolResult) []docModel.DiffOperation {
	var changes []docModel.DiffOperation
	for _, result := range results {
		if result.Call.Name != "provide_resume_suggestions" {
			continue
		}
		var payload struct {
			StructuredChanges []docModel.DiffOperation `json:"structuredChanges"`
		}
		if err := json.Unmarshal([]byte(result.Content), &payload); err != nil {
			continue
		}
		if len(payload.StructuredChanges) > 0 {
			changes = payload.StructuredChanges
		}
	}
	return changes
}

func (s *service) executeEmbeddingStep(ctx context.Context, query string) ([]float32, error) {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("embedding", time.Since(start)) }()

	return s.embedder.GetEmbedding(ctx, query)
}

func (s *service) executeVectorSearchStep(ctx context.Context, vector []float32, limit int, scope []int64) ([]docModel.ChunkMatch, error) {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("vector_search", time.Since(start)) }()

	return s.vectorDB.Search(ctx, vector, limit, scope)
}

func (s *service) executeLLMStep(ctx context.Context, query string, history []llm.Exchange, registry llm.Executor) (llm.Reply, error) {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("llm_generation", time.Since(start)) }()

	return s.llmProvider.Generate(ctx, config.ModelContext, history, query, registry)
}
