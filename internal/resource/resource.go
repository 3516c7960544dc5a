package resource

import (
	"context"
	"errors"

	"github.com/akolanti/ResumeRAG/internal/domain/docModel"
)

var (
	// ErrEmptyContent is returned when a document body is empty or whitespace,
	// or when chunking produces nothing to index.
	ErrEmptyContent = errors.New("document content is empty")
	ErrNotFound     = errors.New("document not found")
)

// Manager owns the document lifecycle: every mutation keeps the document row
// and its chunk vectors moving together. Callers must serialize mutations to
// the same document id; concurrent writers can interleave delete and reinsert
// phases and leave the index stale. Reindex repairs that.
type Manager interface {
	Create(ctx context.Context, content, name string, docType docModel.DocType, tags []string) (docModel.Document, int, error)
	Get(ctx context.Context, id int64) (docModel.Document, error)
	List(ctx context.Context, typeFilter docModel.DocType) ([]docModel.Document, error)
	Update(ctx context.Context, id int64, content, name string) (docModel.Document, int, error)
	Delete(ctx context.Context, id int64) error
	// Reindex rebuilds the vectors for a document from its stored content.
	Reindex(ctx context.Context, id int64) (int, error)
	// ApplyDiff runs the operations against the document's current content and
	// returns the result with a line preview. With persist it also updates the
	// document and its vectors.
	ApplyDiff(ctx context.Context, id int64, ops []docModel.DiffOperation, persist bool) (string, []docModel.DiffLine, error)
}
