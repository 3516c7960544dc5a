package memoryDB

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/akolanti/ResumeRAG/internal/domain/docModel"
	"github.com/akolanti/ResumeRAG/pkg/logger_i"
)

// Store is a brute-force cosine similarity index. It backs tests and acts
// as the fallback when qdrant is unreachable, the same way the job stores
// fall back to memory when redis is offline.
type Store struct {
	mu     sync.RWMutex
	rows   []row
	logger *logger_i.Logger
}

type row struct {
	documentId   int64
	documentName string
	chunkText    string
	chunkIndex   int
	vector       []float32
}

func NewStore() *Store {
	return &Store{logger: logger_i.NewLogger("InMem VectorDB")}
}

func (s *Store) Init(ctx context.Context) error {
	return nil
}

func (s *Store) UpsertChunks(ctx context.Context, doc docModel.Document, chunkTexts []string, vectors [][]float32) error {
	if len(chunkTexts) != len(vectors) {
		return fmt.Errorf("mismatch: got %d chunks but %d vectors", len(chunkTexts), len(vectors))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range chunkTexts {
		s.rows = append(s.rows, row{
			documentId:   doc.Id,
			documentName: doc.Name,
			chunkText:    chunkTexts[i],
			chunkIndex:   i,
			vector:       vectors[i],
		})
	}
	s.logger.Debug("Upserted chunks", "documentId", doc.Id, "count", len(chunkTexts))
	return nil
}

func (s *Store) Search(ctx context.Context, vector []float32, limit int, scope []int64) ([]docModel.ChunkMatch, error) {
	if limit <= 0 {
		return nil, nil
	}

	allowed := map[int64]bool{}
	for _, id := range scope {
		allowed[id] = true
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	type scored struct {
		idx   int
		score float32
	}
	var candidates []scored
	for i, r := range s.rows {
		if len(allowed) > 0 && !allowed[r.documentId] {
			continue
		}
		candidates = append(candidates, scored{idx: i, score: cosineSimilarity(vector, r.vector)})
	}

	// stable sort keeps insertion order for exact ties, so results are
	// deterministic for a fixed index state
	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].score > candidates[b].score
	})

	if limit > len(candidates) {
		limit = len(candidates)
	}
	matches := make([]docModel.ChunkMatch, 0, limit)
	for _, c := range candidates[:limit] {
		r := s.rows[c.idx]
		matches = append(matches, docModel.ChunkMatch{
			ChunkText:    r.chunkText,
			DocumentId:   r.documentId,
			DocumentName: r.documentName,
			Score:        c.score,
		})
	}
	return matches, nil
}

func (s *Store) DeleteByDocument(ctx context.Context, documentId int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.rows[:0]
	for _, r := range s.rows {
		if r.documentId != documentId {
			kept = append(kept, r)
		}
	}
	s.rows = kept
	return nil
}

func cosineSimilarity(a, b []float32) float32 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return float32(dot / (math.Sqrt(normA) * math.Sqrt(normB)))
}
