package adapter

import (
	"github.com/akolanti/ResumeRAG/internal/api"
	"github.com/akolanti/ResumeRAG/internal/domain/docModel"
)

func BadRequest(id string, message string, code int) api.ErrorResponse {
	return api.ErrorResponse{
		Code:    code,
		Message: message,
		Id:      id,
	}
}

func ToDocumentResponse(doc docModel.Document) api.DocumentResponse {
	tags := doc.Tags
	if tags == nil {
		tags = []string{}
	}
	return api.DocumentResponse{
		Id:        doc.Id,
		Name:      doc.Name,
		Content:   doc.Content,
		Type:      string(doc.Type),
		Tags:      tags,
		CreatedAt: doc.CreatedAt,
	}
}

func ToDocumentListResponse(docs []docModel.Document) api.DocumentListResponse {
	out := api.DocumentListResponse{Documents: make([]api.DocumentResponse, 0, len(docs))}
	for _, doc := range docs {
		out.Documents = append(out.Documents, ToDocumentResponse(doc))
	}
	return out
}

func ToCreateDocumentResponse(doc docModel.Document, chunks int, message string) api.CreateDocumentResponse {
	return api.CreateDocumentResponse{
		DocumentId:      doc.Id,
		ChunksProcessed: chunks,
		Message:         message,
	}
}

func ToSearchResponse(matches []docModel.ChunkMatch, context string) api.SearchResponse {
	out := api.SearchResponse{Matches: make([]api.MatchResponse, 0, len(matches)), Context: context}
	for _, match := range matches {
		out.Matches = append(out.Matches, api.MatchResponse{
			ChunkText:    match.ChunkText,
			DocumentId:   match.DocumentId,
			DocumentName: match.DocumentName,
			Score:        match.Score,
		})
	}
	return out
}

func ToDiffOperations(ops []api.DiffOperation) []docModel.DiffOperation {
	out := make([]docModel.DiffOperation, 0, len(ops))
	for _, op := range ops {
		out = append(out, docModel.DiffOperation{
			Type:    docModel.DiffOpType(op.Type),
			Section: op.Section,
			Line:    op.Line,
			OldText: op.OldText,
			NewText: op.NewText,
		})
	}
	return out
}

func FromDiffOperations(ops []docModel.DiffOperation) []api.DiffOperation {
	out := make([]api.DiffOperation, 0, len(ops))
	for _, op := range ops {
		out = append(out, api.DiffOperation{
			Type:    string(op.Type),
			Section: op.Section,
			Line:    op.Line,
			OldText: op.OldText,
			NewText: op.NewText,
		})
	}
	return out
}

func ToDiffResponse(documentId int64, content string, preview []docModel.DiffLine, persisted bool) api.DiffResponse {
	out := api.DiffResponse{
		DocumentId: documentId,
		Content:    content,
		Preview:    make([]api.DiffLine, 0, len(preview)),
		Persisted:  persisted,
	}
	for _, line := range preview {
		out.Preview = append(out.Preview, api.DiffLine{
			Type:       string(line.Type),
			Line:       line.Line,
			LineNumber: line.LineNumber,
		})
	}
	return out
}
