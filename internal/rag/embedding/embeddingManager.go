package embedding

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/akolanti/ResumeRAG/internal/config"
	"github.com/akolanti/ResumeRAG/pkg/logger_i"
)

// Embedder is what the rest of the system depends on - the lifecycle
// manager and the RAG service never talk to a provider directly.
type Embedder interface {
	GetEmbedding(ctx context.Context, query string) ([]float32, error)
	BatchEmbedding(ctx context.Context, chunks []string) ([][]float32, error)
}

// Client is the raw provider capability: embed a batch of texts, preserving
// order and count. Implemented by openaiEmbedding and googleEmbedding.
type Client interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

var (
	ErrCountMismatch    = errors.New("embedding count mismatch")
	ErrInvalidEmbedding = errors.New("invalid embedding")
	ErrEmbeddingFailed  = errors.New("failed to generate embedding")
)

// Manager wraps a provider Client and validates everything that comes back.
// It has no retry logic of its own - a broken batch is fatal for the caller.
type Manager struct {
	client Client
	logger *logger_i.Logger
}

func NewManager(client Client) *Manager {
	return &Manager{
		client: client,
		logger: logger_i.NewLogger("Embedding Manager"),
	}
}

func (m *Manager) BatchEmbedding(ctx context.Context, chunks []string) ([][]float32, error) {
	if len(chunks) == 0 {
		return [][]float32{}, nil
	}

	vectors, err := m.client.Embed(ctx, chunks)
	if err != nil {
		return nil, err
	}

	if len(vectors) != len(chunks) {
		return nil, fmt.Errorf("%w: expected %d, got %d", ErrCountMismatch, len(chunks), len(vectors))
	}

	for i, vector := range vectors {
		if len(vector) == 0 {
			return nil, fmt.Errorf("%w: empty vector at index %d", ErrInvalidEmbedding, i)
		}
		for _, val := range vector {
			f := float64(val)
			if math.IsNaN(f) || math.IsInf(f, 0) {
				return nil, fmt.Errorf("%w: non-finite value at index %d", ErrInvalidEmbedding, i)
			}
		}
		// dimension drift only degrades search quality, so warn and carry on
		if int32(len(vector)) != config.EmbeddingOutputDimensionality {
			m.logger.Warn("Unexpected embedding dimension", "index", i, "got", len(vector), "want", config.EmbeddingOutputDimensionality)
		}
	}

	return vectors, nil
}

func (m *Manager) GetEmbedding(ctx context.Context, query string) ([]float32, error) {
	vectors, err := m.BatchEmbedding(ctx, []string{query})
	if err != nil {
		return nil, err
	}
	if len(vectors) == 0 {
		return nil, ErrEmbeddingFailed
	}
	return vectors[0], nil
}
