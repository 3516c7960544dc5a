package docModel

import "time"

type DocType string

const (
	TypeResume DocType = "resume"
	TypeOther  DocType = "other"
)

// Document is the authoritative record - content always reflects the latest
// saved version, and the chunk set in the vector index must be derived from it.
type Document struct {
	Id        int64     `json:"id"`
	Name      string    `json:"name"`
	Content   string    `json:"content"`
	Type      DocType   `json:"type"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
}

// ChunkMatch is one retrieval hit, ranked by cosine similarity.
type ChunkMatch struct {
	ChunkText    string  `json:"chunk_text"`
	DocumentId   int64   `json:"document_id"`
	DocumentName string  `json:"name"`
	Score        float32 `json:"score"`
}

type DiffOpType string

const (
	DiffInsert  DiffOpType = "insert"
	DiffDelete  DiffOpType = "delete"
	DiffReplace DiffOpType = "replace"
)

// DiffOperation is a line-anchored edit instruction consumed from the model.
// Line is 0-based into the original content; when nil the operation applies
// at the implicit cursor left by the previous operation.
type DiffOperation struct {
	Type    DiffOpType `json:"type"`
	Section string     `json:"section,omitempty"`
	Line    *int       `json:"line,omitempty"`
	OldText string     `json:"oldText,omitempty"`
	NewText string     `json:"newText,omitempty"`
}

type DiffLineType string

const (
	LineAdded     DiffLineType = "added"
	LineRemoved   DiffLineType = "removed"
	LineUnchanged DiffLineType = "unchanged"
)

// DiffLine is one row of a human-readable preview. LineNumber is 1-based in
// the old content for removed/unchanged lines and in the new content for
// added lines.
type DiffLine struct {
	Type       DiffLineType `json:"type"`
	Line       string       `json:"line"`
	LineNumber int          `json:"lineNumber"`
}
