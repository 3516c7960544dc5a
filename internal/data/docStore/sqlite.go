package docStore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/akolanti/ResumeRAG/internal/domain/docModel"
	"github.com/akolanti/ResumeRAG/pkg/logger_i"
	_ "github.com/mattn/go-sqlite3"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS documents (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	content TEXT NOT NULL,
	type TEXT NOT NULL DEFAULT 'other',
	tags TEXT NOT NULL DEFAULT '[]',
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS documents_type_idx ON documents(type);
`

type SQLiteStore struct {
	db     *sql.DB
	logger *logger_i.Logger
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("could not open document db: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}
	return &SQLiteStore{
		db:     db,
		logger: logger_i.NewLogger("DocumentStore"),
	}, nil
}

func (s *SQLiteStore) Insert(ctx context.Context, name, content string, docType docModel.DocType, tags []string) (int64, error) {
	if docType == "" {
		docType = docModel.TypeOther
	}
	if tags == nil {
		tags = []string{}
	}
	tagsJSON, err := json.Marshal(tags)
	if err != nil {
		return 0, err
	}

	result, err := s.db.ExecContext(ctx,
		`INSERT INTO documents (name, content, type, tags, created_at) VALUES (?, ?, ?, ?, ?)`,
		name, content, string(docType), string(tagsJSON), time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return 0, fmt.Errorf("insert document failed: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	s.logger.Debug("Inserted document", "id", id, "name", name)
	return id, nil
}

func (s *SQLiteStore) Get(ctx context.Context, id int64) (docModel.Document, bool, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, content, type, tags, created_at FROM documents WHERE id = ?`, id)

	doc, err := scanDocument(row.Scan)
	if err == sql.ErrNoRows {
		return docModel.Document{}, false, nil
	}
	if err != nil {
		return docModel.Document{}, false, err
	}
	return doc, true, nil
}

func (s *SQLiteStore) UpdateContent(ctx context.Context, id int64, content, name string) error {
	var err error
	if name != "" {
		_, err = s.db.ExecContext(ctx, `UPDATE documents SET content = ?, name = ? WHERE id = ?`, content, name, id)
	} else {
		_, err = s.db.ExecContext(ctx, `UPDATE documents SET content = ? WHERE id = ?`, content, id)
	}
	if err != nil {
		return fmt.Errorf("update document %d failed: %w", id, err)
	}
	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM documents WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete document %d failed: %w", id, err)
	}
	return nil
}

func (s *SQLiteStore) List(ctx context.Context, typeFilter docModel.DocType) ([]docModel.Document, error) {
	query := `SELECT id, name, '', type, tags, created_at FROM documents ORDER BY created_at DESC`
	args := []any{}
	if typeFilter == docModel.TypeResume || typeFilter == docModel.TypeOther {
		query = `SELECT id, name, '', type, tags, created_at FROM documents WHERE type = ? ORDER BY created_at DESC`
		args = append(args, string(typeFilter))
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []docModel.Document
	for rows.Next() {
		doc, err := scanDocument(rows.Scan)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func scanDocument(scan func(dest ...any) error) (docModel.Document, error) {
	var doc docModel.Document
	var docType, tagsJSON, createdAt string

	if err := scan(&doc.Id, &doc.Name, &doc.Content, &docType, &tagsJSON, &createdAt); err != nil {
		return doc, err
	}

	doc.Type = docModel.DocType(docType)
	if err := json.Unmarshal([]byte(tagsJSON), &doc.Tags); err != nil {
		doc.Tags = []string{}
	}
	if ts, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
		doc.CreatedAt = ts
	}
	return doc, nil
}
