package mcpServer

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/akolanti/ResumeRAG/internal/domain/docModel"
	"github.com/akolanti/ResumeRAG/internal/rag"
	"github.com/akolanti/ResumeRAG/internal/rag/tools"
)

// SearchInput is the input schema for the search tool.
type SearchInput struct {
	Query       string  `json:"query" jsonschema:"the search query to run against the stored documents"`
	Limit       int     `json:"limit,omitempty" jsonschema:"maximum number of chunks to return (default 5)"`
	DocumentIds []int64 `json:"documentIds,omitempty" jsonschema:"restrict the search to these document ids"`
}

type SearchOutput struct {
	Matches []MatchOutput `json:"matches"`
	Context string        `json:"context"`
}

type MatchOutput struct {
	ChunkText    string  `json:"chunkText"`
	DocumentId   int64   `json:"documentId"`
	DocumentName string  `json:"documentName"`
	Score        float32 `json:"score"`
}

type ListDocumentsInput struct {
	Type string `json:"type,omitempty" jsonschema:"filter by document type: resume or other"`
}

type ListDocumentsOutput struct {
	Documents []DocumentOutput `json:"documents"`
	Count     int              `json:"count"`
}

type DocumentOutput struct {
	Id        int64     `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Tags      []string  `json:"tags,omitempty"`
	Content   string    `json:"content,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type GetDocumentInput struct {
	DocumentId int64 `json:"documentId" jsonschema:"the id of the document to fetch"`
}

type CreateDocumentInput struct {
	Content string   `json:"content" jsonschema:"the full text of the document"`
	Name    string   `json:"name,omitempty" jsonschema:"display name for the document"`
	Type    string   `json:"type,omitempty" jsonschema:"document type: resume or other"`
	Tags    []string `json:"tags,omitempty" jsonschema:"free form tags"`
}

type CreateDocumentOutput struct {
	DocumentId      int64 `json:"documentId"`
	ChunksProcessed int   `json:"chunksProcessed"`
}

type AddExperienceInput struct {
	Date           string   `json:"date" jsonschema:"the date of the experience"`
	Description    string   `json:"description" jsonschema:"the description of the experience"`
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

func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_documents",
		Description: "Semantic search across the stored resume and job posting documents",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_documents",
		Description: "List the stored documents without their content",
	}, s.handleListDocuments)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_document",
		Description: "Fetch a single document including its full content",
	}, s.handleGetDocument)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_document",
		Description: "Store a new document and index it for search",
	}, s.handleCreateDocument)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "add_experience",
		Description: "Add a work or project experience entry as its own searchable document",
	}, s.handleAddExperience)
}

func (s *Server) handleSearch(ctx context.Context, _ *mcp.CallToolRequest, input SearchInput) (*mcp.CallToolResult, SearchOutput, error) {
	matches, err := s.ragService.Search(ctx, input.Query, input.Limit, input.DocumentIds)
	if err != nil {
		s.logger.Error("Search tool failed", "error", err)
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Matches: make([]MatchOutput, len(matches)),
		Context: rag.BuildContext(matches),
	}
	for i, m := range matches {
		output.Matches[i] = MatchOutput{
			ChunkText:    m.ChunkText,
			DocumentId:   m.DocumentId,
			DocumentName: m.DocumentName,
			Score:        m.Score,
		}
	}
	return nil, output, nil
}

func (s *Server) handleListDocuments(ctx context.Context, _ *mcp.CallToolRequest, input ListDocumentsInput) (*mcp.CallToolResult, ListDocumentsOutput, error) {
	docs, err := s.resources.List(ctx, docModel.DocType(input.Type))
	if err != nil {
		s.logger.Error("List tool failed", "error", err)
		return nil, ListDocumentsOutput{}, err
	}

	output := ListDocumentsOutput{
		Documents: make([]DocumentOutput, len(docs)),
		Count:     len(docs),
	}
	for i, doc := range docs {
		output.Documents[i] = toDocumentOutput(doc, false)
	}
	return nil, output, nil
}

func (s *Server) handleGetDocument(ctx context.Context, _ *mcp.CallToolRequest, input GetDocumentInput) (*mcp.CallToolResult, DocumentOutput, error) {
	doc, err := s.resources.Get(ctx, input.DocumentId)
	if err != nil {
		return nil, DocumentOutput{}, err
	}
	return nil, toDocumentOutput(doc, true), nil
}

func (s *Server) handleCreateDocument(ctx context.Context, _ *mcp.CallToolRequest, input CreateDocumentInput) (*mcp.CallToolResult, CreateDocumentOutput, error) {
	doc, chunks, err := s.resources.Create(ctx, input.Content, input.Name, docModel.DocType(input.Type), input.Tags)
	if err != nil {
		s.logger.Error("Create tool failed", "error", err)
		return nil, CreateDocumentOutput{}, err
	}
	return nil, CreateDocumentOutput{DocumentId: doc.Id, ChunksProcessed: chunks}, nil
}

func (s *Server) handleAddExperience(ctx context.Context, _ *mcp.CallToolRequest, input AddExperienceInput) (*mcp.CallToolResult, CreateDocumentOutput, error) {
	doc, chunks, err := tools.StoreExperience(ctx, s.resources, tools.ExperienceInput{
		Date:           input.Date,
		Description:    input.Description,
		Title:          input.Title,
		Company:        input.Company,
		Position:       input.Position,
		Location:       input.Location,
		URL:            input.URL,
		Tags:           input.Tags,
		Skills:         input.Skills,
		Tools:          input.Tools,
		Technologies:   input.Technologies,
		Projects:       input.Projects,
		Education:      input.Education,
		Certifications: input.Certifications,
		Awards:         input.Awards,
		Publications:   input.Publications,
	})
	if err != nil {
		s.logger.Error("Add experience tool failed", "error", err)
		return nil, CreateDocumentOutput{}, err
	}
	return nil, CreateDocumentOutput{DocumentId: doc.Id, ChunksProcessed: chunks}, nil
}

func toDocumentOutput(doc docModel.Document, withContent bool) DocumentOutput {
	out := DocumentOutput{
		Id:        doc.Id,
		Name:      doc.Name,
		Type:      string(doc.Type),
		Tags:      doc.Tags,
		CreatedAt: doc.CreatedAt,
	}
	if withContent {
		out.Content = doc.Content
	}
	return out
}
