package vectorDB

import (
	"context"

	"github.com/akolanti/ResumeRAG/internal/domain/docModel"
)

// Index stores chunk vectors and answers similarity queries. The chunk set
// for a document is only ever replaced wholesale: DeleteByDocument followed
// by UpsertChunks. Individual chunks are never edited.
type Index interface {
	// Init makes sure the backing collection exists.
	Init(ctx context.Context) error

	// UpsertChunks stores one vector per chunk text for the given document.
	// chunk index is positional, so vectors must be ordered like chunkTexts.
	UpsertChunks(ctx context.Context, doc docModel.Document, chunkTexts []string, vectors [][]float32) error

	// Search returns up to limit matches ranked by descending cosine
	// similarity. A non-empty scope restricts ranking to those document ids.
	// Fewer (or zero) matches than limit is not an error.
	Search(ctx context.Context, vector []float32, limit int, scope []int64) ([]docModel.ChunkMatch, error)

	// DeleteByDocument removes every chunk belonging to the document.
	DeleteByDocument(ctx context.Context, documentId int64) error
}
