package api

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// requests---------------------

type CreateDocumentRequest struct {
	Content string   `json:"content" example:"# My Resume\n..."`
	Name    string   `json:"name,omitempty" example:"My Resume"`
	Type    string   `json:"type,omitempty" example:"resume"`
	Tags    []string `json:"tags,omitempty"`
}

func (r CreateDocumentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Content, validation.Required),
		validation.Field(&r.Type, validation.In("", "resume", "other")),
	)
}

type UpdateDocumentRequest struct {
	Content string `json:"content"`
	Name    string `json:"name,omitempty"`
}

func (r UpdateDocumentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Content, validation.Required),
	)
}

type InitDocumentRequest struct {
	Name string `json:"name,omitempty" example:"My Resume"`
}

type SearchRequest struct {
	Query       string  `json:"query" example:"golang experience"`
	Limit       int     `json:"limit,omitempty" example:"5"`
	DocumentIds []int64 `json:"documentIds,omitempty"`
}

func (r SearchRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Query, validation.Required),
		validation.Field(&r.Limit, validation.Min(0), validation.Max(50)),
	)
}

type DiffOperation struct {
	Type    string `json:"type" example:"replace"`
	Section string `json:"section,omitempty" example:"Skills"`
	Line    *int   `json:"line,omitempty" example:"12"`
	OldText string `json:"oldText,omitempty"`
	NewText string `json:"newText,omitempty"`
}

func (op DiffOperation) Validate() error {
	return validation.ValidateStruct(&op,
		validation.Field(&op.Type, validation.Required, validation.In("insert", "delete", "replace")),
	)
}

type DiffRequest struct {
	Operations []DiffOperation `json:"operations"`
	Persist    bool            `json:"persist,omitempty"`
}

func (r DiffRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Operations, validation.Required),
	)
}

type AddExperienceRequest struct {
	Date           string   `json:"date" example:"2024-01"`
	Description    string   `json:"description"`
	Title          string   `json:"title,omitempty"`
	Company        string   `json:"company,omitempty"`
	Position       string   `json:"position,omitempty"`
	Location       string   `json:"location,omitempty"`
	URL            string   `json:"url,omitempty"`
	Tags           []string `json:"tags,omitempty"`
	Skills         []string `json:"skills,omitempty"`
	Tools          []string `json:"tools,omitempty"`
	Technologies   []string `json:"technologies,omitempty"`
	Projects       []string `json:"projects,omitempty"`
	Education      []string `json:"education,omitempty"`
	Certifications []string `json:"certifications,omitempty"`
	Awards         []string `json:"awards,omitempty"`
	Publications   []string `json:"publications,omitempty"`
}

func (r AddExperienceRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Date, validation.Required),
		validation.Field(&r.Description, validation.Required),
	)
}

type ChatRequest struct {
	Message    string  `json:"message" example:"How do I add my new job?"`
	ChatID     string  `json:"chatID,omitempty"`
	DocumentID *int64  `json:"documentId,omitempty"`
	ContextIDs []int64 `json:"contextIds,omitempty"`
}

func (r ChatRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Message, validation.Required),
	)
}

// responses---------------------

type ErrorResponse struct {
	Code    int    `json:"code" example:"400"`
	Message string `json:"message" example:"Bad Request"`
	Id      string `json:"id,omitempty"`
}

type DocumentResponse struct {
	Id        int64     `json:"id" example:"1"`
	Name      string    `json:"name" example:"My Resume"`
	Content   string    `json:"content,omitempty"`
	Type      string    `json:"type" example:"resume"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
}

type DocumentListResponse struct {
	Documents []DocumentResponse `json:"documents"`
}

type CreateDocumentResponse struct {
	DocumentId      int64  `json:"documentId" example:"1"`
	ChunksProcessed int    `json:"chunksProcessed" example:"3"`
	Message         string `json:"message"`
}

type ReindexResponse struct {
	DocumentId      int64 `json:"documentId"`
	ChunksProcessed int   `json:"chunksProcessed"`
}

type MatchResponse struct {
	ChunkText    string  `json:"chunkText"`
	DocumentId   int64   `json:"documentId"`
	DocumentName string  `json:"documentName"`
	Score        float32 `json:"score"`
}

type SearchResponse struct {
	Matches []MatchResponse `json:"matches"`
	Context string          `json:"context"`
}

type DiffLine struct {
	Type       string `json:"type" example:"added"`
	Line       string `json:"line"`
	LineNumber int    `json:"lineNumber" example:"4"`
}

type DiffResponse struct {
	DocumentId int64      `json:"documentId"`
	Content    string     `json:"content"`
	Preview    []DiffLine `json:"preview"`
	Persisted  bool       `json:"persisted"`
}

type ChatResponse struct {
	ChatId            string          `json:"chatId"`
	Answer            string          `json:"answer"`
	StructuredChanges []DiffOperation `json:"structuredChanges,omitempty"`
	DocumentId        *int64          `json:"documentId,omitempty"`
}
