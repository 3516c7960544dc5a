package docStore

import (
	"context"

	"github.com/akolanti/ResumeRAG/internal/domain/docModel"
)

// Store owns the document rows. Chunk rows live in the vector index and are
// kept in sync by the resource lifecycle service, not here.
type Store interface {
	Insert(ctx context.Context, name, content string, docType docModel.DocType, tags []string) (int64, error)
	Get(ctx context.Context, id int64) (docModel.Document, bool, error)
	// UpdateContent overwrites content, and name too when non-empty.
	UpdateContent(ctx context.Context, id int64, content, name string) error
	Delete(ctx context.Context, id int64) error
	// List returns documents without their content, newest first,
	// optionally filtered by type.
	List(ctx context.Context, typeFilter docModel.DocType) ([]docModel.Document, error)
	Close() error
}
