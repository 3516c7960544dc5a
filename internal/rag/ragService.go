package rag

import (
	"context"
	"time"

	"github.com/akolanti/ResumeRAG/internal/config"
	"github.com/akolanti/ResumeRAG/internal/domain/docModel"
	"github.com/akolanti/ResumeRAG/internal/rag/embedding"
	"github.com/akolanti/ResumeRAG/internal/rag/llm"
	"github.com/akolanti/ResumeRAG/internal/rag/tools"
	"github.com/akolanti/ResumeRAG/internal/rag/vectorDB"
	"github.com/akolanti/ResumeRAG/internal/resource"
	"github.com/akolanti/ResumeRAG/pkg/logger_i"
)

// ChatResult is a finished assistant turn. StructuredChanges carries the diff
// operations produced by the suggestion tool, when the model used it.
type ChatResult struct {
	Answer            string
	StructuredChanges []docModel.DiffOperation
	DocumentId        *int64
	Steps             int
}

// Service is the retrieval surface the handlers and the MCP server talk to.
// They never touch the embedder, the vector index or the LLM directly.
type Service interface {
	Search(ctx context.Context, query string, limit int, scope []int64) ([]docModel.ChunkMatch, error)
	ContextForQuery(ctx context.Context, query string, limit int, scope []int64) (string, error)
	Chat(ctx context.Context, query string, history []llm.Exchange, documentId *int64, scope []int64) (ChatResult, error)
}

type service struct {
	vectorDB    vectorDB.Index
	llmProvider llm.Provider
	embedder    embedding.Embedder
	resources   resource.Manager
	logger      *logger_i.Logger
}

func NewService(index vectorDB.Index, provider llm.Provider, em embedding.Embedder, resources resource.Manager) Service {
	return &service{
		vectorDB:    index,
		llmProvider: provider,
		embedder:    em,
		resources:   resources,
		logger:      logger_i.NewLogger("RAG Service :"),
	}
}

func (s *service) Search(ctx context.Context, query string, limit int, scope []int64) ([]docModel.ChunkMatch, error) {
	loggr := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY))

	if limit <= 0 {
		limit = config.DefaultSearchLimit
	}

	vector, err := s.executeEmbeddingStep(ctx, query)
	if err != nil {
		loggr.Error("Query embedding failed", "error", err)
		return nil, err
	}

	matches, err := s.executeVectorSearchStep(ctx, vector, limit, scope)
	if err != nil {
		loggr.Error("Vector search failed", "error", err)
		return nil, err
	}

	loggr.Debug("Search complete", "matches", len(matches))
	return matches, nil
}

func (s *service) ContextForQuery(ctx context.Context, query string, limit int, scope []int64) (string, error) {
	matches, err := s.Search(ctx, query, limit, scope)
	if err != nil {
		return "", err
	}
	return BuildContext(matches), nil
}

func (s *service) Chat(ctx context.Context, query string, history []llm.Exchange, documentId *int64, scope []int64) (ChatResult, error) {
	loggr := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY))

	processContext, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	registry := tools.NewRegistry(
		tools.NewGetInformation(s, scope),
		tools.NewAddExperience(s.resources),
		tools.NewAddJobPosting(s.resources),
		tools.NewResumeSuggestions(s, s.llmProvider, s.resources, documentId),
	)

	reply, err := s.executeLLMStep(processContext, query, history, registry)
	if err != nil {
		loggr.Error("LLM generation failed", "error", err)
		return ChatResult{}, err
	}

	result := ChatResult{
		Answer:     reply.Text,
		DocumentId: documentId,
		Steps:      reply.Steps,
	}
	result.StructuredChanges = extractStructuredChanges(reply.ToolResults)

	loggr.Debug("Chat complete", "steps", reply.Steps, "structuredChanges", len(result.StructuredChanges))
	return result, nil
}
