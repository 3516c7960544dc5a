package resource

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/akolanti/ResumeRAG/internal/config"
	"github.com/akolanti/ResumeRAG/internal/data/docStore"
	"github.com/akolanti/ResumeRAG/internal/diffEngine"
	"github.com/akolanti/ResumeRAG/internal/domain/docModel"
	"github.com/akolanti/ResumeRAG/internal/metrics"
	"github.com/akolanti/ResumeRAG/internal/rag/chunker"
	"github.com/akolanti/ResumeRAG/internal/rag/embedding"
	"github.com/akolanti/ResumeRAG/internal/rag/vectorDB"
	"github.com/akolanti/ResumeRAG/pkg/logger_i"
)

type resourceManager struct {
	documents docStore.Store
	embedder  embedding.Embedder
	index     vectorDB.Index
	logger    *logger_i.Logger
}

func NewManager(documents docStore.Store, embedder embedding.Embedder, index vectorDB.Index) Manager {
	return &resourceManager{
		documents: documents,
		embedder:  embedder,
		index:     index,
		logger:    logger_i.NewLogger("Resource Manager"),
	}
}

func (r *resourceManager) Create(ctx context.Context, content, name string, docType docModel.DocType, tags []string) (docModel.Document, int, error) {
	loggr := r.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY))
	start := time.Now()

	chunks, vectors, err := r.prepare(ctx, content)
	if err != nil {
		return docModel.Document{}, 0, err
	}

	if name == "" {
		name = fmt.Sprintf("Document %d", time.Now().UnixMilli())
	}

	id, err := r.documents.Insert(ctx, name, content, docType, tags)
	if err != nil {
		return docModel.Document{}, 0, fmt.Errorf("could not store document: %w", err)
	}

	doc, found, err := r.documents.Get(ctx, id)
	if err != nil || !found {
		return docModel.Document{}, 0, fmt.Errorf("could not read back document %d: %w", id, err)
	}

	// the row exists even if indexing fails here; Reindex is the repair path
	if err := r.index.UpsertChunks(ctx, doc, chunks, vectors); err != nil {
		loggr.Error("Document stored but not indexed", "documentId", id, "error", err)
		return doc, 0, fmt.Errorf("document %d stored but indexing failed: %w", id, err)
	}

	metrics.CaptureExecutionMetrics("resource_create", time.Since(start))
	loggr.Info("Document created", "documentId", id, "chunks", len(chunks))
	return doc, len(chunks), nil
}

func (r *resourceManager) Get(ctx context.Context, id int64) (docModel.Document, error) {
	doc, found, err := r.documents.Get(ctx, id)
	if err != nil {
		return docModel.Document{}, err
	}
	if !found {
		return docModel.Document{}, ErrNotFound
	}
	return doc, nil
}

func (r *resourceManager) List(ctx context.Context, typeFilter docModel.DocType) ([]docModel.Document, error) {
	return r.documents.List(ctx, typeFilter)
}

func (r *resourceManager) Update(ctx context.Context, id int64, content, name string) (docModel.Document, int, error) {
	loggr := r.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY))
	start := time.Now()

	if _, err := r.Get(ctx, id); err != nil {
		return docModel.Document{}, 0, err
	}

	chunks, vectors, err := r.prepare(ctx, content)
	if err != nil {
		return docModel.Document{}, 0, err
	}

	if err := r.documents.UpdateContent(ctx, id, content, name); err != nil {
		return docModel.Document{}, 0, fmt.Errorf("could not update document %d: %w", id, err)
	}

	doc, found, err := r.documents.Get(ctx, id)
	if err != nil || !found {
		return docModel.Document{}, 0, fmt.Errorf("could not read back document %d: %w", id, err)
	}

	// delete then reinsert; there is no transaction spanning both stores, so
	// a failure in between leaves the document searchable only after Reindex
	if err := r.index.DeleteByDocument(ctx, id); err != nil {
		loggr.Error("Stale vectors not removed", "documentId", id, "error", err)
		return doc, 0, fmt.Errorf("document %d updated but old vectors remain: %w", id, err)
	}
	if err := r.index.UpsertChunks(ctx, doc, chunks, vectors); err != nil {
		loggr.Error("Document updated but not reindexed", "documentId", id, "error", err)
		return doc, 0, fmt.Errorf("document %d updated but indexing failed: %w", id, err)
	}

	metrics.CaptureExecutionMetrics("resource_update", time.Since(start))
	loggr.Info("Document updated", "documentId", id, "chunks", len(chunks))
	return doc, len(chunks), nil
}

func (r *resourceManager) Delete(ctx context.Context, id int64) error {
	loggr := r.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY))

	if _, err := r.Get(ctx, id); err != nil {
		return err
	}

	if err := r.index.DeleteByDocument(ctx, id); err != nil {
		return fmt.Errorf("could not remove vectors for document %d: %w", id, err)
	}
	if err := r.documents.Delete(ctx, id); err != nil {
		return fmt.Errorf("could not delete document %d: %w", id, err)
	}

	loggr.Info("Document deleted", "documentId", id)
	return nil
}

func (r *resourceManager) Reindex(ctx context.Context, id int64) (int, error) {
	loggr := r.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY))
	start := time.Now()

	doc, err := r.Get(ctx, id)
	if err != nil {
		return 0, err
	}

	chunks, vectors, err := r.prepare(ctx, doc.Content)
	if err != nil {
		return 0, err
	}

	if err := r.index.DeleteByDocument(ctx, id); err != nil {
		return 0, fmt.Errorf("could not clear vectors for document %d: %w", id, err)
	}
	if err := r.index.UpsertChunks(ctx, doc, chunks, vectors); err != nil {
		return 0, fmt.Errorf("could not reindex document %d: %w", id, err)
	}

	metrics.CaptureExecutionMetrics("resource_reindex", time.Since(start))
	loggr.Info("Document reindexed", "documentId", id, "chunks", len(chunks))
	return len(chunks), nil
}

func (r *resourceManager) ApplyDiff(ctx context.Context, id int64, ops []docModel.DiffOperation, persist bool) (string, []docModel.DiffLine, error) {
	doc, err := r.Get(ctx, id)
	if err != nil {
		return "", nil, err
	}

	updated := diffEngine.Apply(doc.Content, ops)
	preview := diffEngine.Preview(doc.Content, updated)

	if persist {
		if _, _, err := r.Update(ctx, id, updated, ""); err != nil {
			return "", nil, err
		}
	}
	return updated, preview, nil
}

// prepare turns raw content into chunks and validated vectors. Whitespace-only
// content is rejected before any provider call is made.
func (r *resourceManager) prepare(ctx context.Context, content string) ([]string, [][]float32, error) {
	if strings.TrimSpace(content) == "" {
		return nil, nil, ErrEmptyContent
	}

	chunks, err := chunker.Chunk(content)
	if err != nil {
		return nil, nil, err
	}
	if len(chunks) == 0 {
		return nil, nil, ErrEmptyContent
	}

	vectors, err := r.embedder.BatchEmbedding(ctx, chunks)
	if err != nil {
		return nil, nil, fmt.Errorf("embedding failed: %w", err)
	}
	return chunks, vectors, nil
}
