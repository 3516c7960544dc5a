package handlers

import (
	"net/http"

	"github.com/akolanti/ResumeRAG/internal/adapter"
	"github.com/akolanti/ResumeRAG/internal/api"
	"github.com/akolanti/ResumeRAG/internal/domain/docModel"
	"github.com/akolanti/ResumeRAG/internal/resource"
)

func GetHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// CreateDocumentHandler godoc
// @Summary      Create a document
// @Description  Stores a document, chunks it and indexes the chunk embeddings for retrieval.
// @Tags         Documents
// @Accept       json
// @Produce      json
// @Param        request  body      api.CreateDocumentRequest   true  "Document content with optional name, type and tags"
// @Success      201      {object}  api.CreateDocumentResponse  "Document stored and indexed"
// @Failure      400      {object}  api.ErrorResponse           "Invalid request data"
// @Router       /documents [post]
func CreateDocumentHandler(w http.ResponseWriter, request *http.Request) {
	if !validateContext(request.Context()) {
		logRH.Warn("Invalid Context by request ", "remote", request.RemoteAddr)
		return
	}

	var requestData api.CreateDocumentRequest
	if err := decodeRequest(request, &requestData); err != nil {
		logRH.Warn("Bad Create Document Request: ", "error:", err)
		WriteErrorResponse(w, http.StatusBadRequest, "", "Bad Request")
		return
	}

	doc, chunks, err := resources.Create(request.Context(), requestData.Content, requestData.Name,
		docModel.DocType(requestData.Type), requestData.Tags)
	if err != nil {
		handleResourceError(w, "", err)
		return
	}

	writeJsonResponse(w, http.StatusCreated,
		adapter.ToCreateDocumentResponse(doc, chunks, "Document stored successfully and is now available for RAG queries."))
}

// InitDocumentHandler godoc
// @Summary      Create a starter resume
// @Description  Creates a resume document from the built-in ATS template so the assistant has something to edit.
// @Tags         Documents
// @Accept       json
// @Produce      json
// @Param        request  body      api.InitDocumentRequest     false  "Optional document name"
// @Success      201      {object}  api.CreateDocumentResponse  "Template document created"
// @Router       /documents/init [post]
func InitDocumentHandler(w http.ResponseWriter, request *http.Request) {
	if !validateContext(request.Context()) {
		return
	}

	var requestData api.InitDocumentRequest
	// body is optional for this endpoint
	_ = decodeJsonBody(request, &requestData)

	name := requestData.Name
	if name == "" {
		name = "My Resume"
	}

	doc, chunks, err := resources.Create(request.Context(), resource.ATSResumeTemplate, name,
		docModel.TypeResume, []string{"resume"})
	if err != nil {
		handleResourceError(w, "", err)
		return
	}

	writeJsonResponse(w, http.StatusCreated,
		adapter.ToCreateDocumentResponse(doc, chunks, "Starter resume created from template."))
}

// ListDocumentsHandler godoc
// @Summary      List documents
// @Description  Lists stored documents without their content, newest first. Filter with ?type=resume or ?type=other.
// @Tags         Documents
// @Produce      json
// @Param        type  query     string  false  "Document type filter"
// @Success      200   {object}  api.DocumentListResponse
// @Router       /documents [get]
func ListDocumentsHandler(w http.ResponseWriter, request *http.Request) {
	if !validateContext(request.Context()) {
		return
	}

	typeFilter := docModel.DocType(request.URL.Query().Get("type"))
	docs, err := resources.List(request.Context(), typeFilter)
	if err != nil {
		handleResourceError(w, "", err)
		return
	}

	writeJsonResponse(w, http.StatusOK, adapter.ToDocumentListResponse(docs))
}

// GetDocumentHandler godoc
// @Summary      Get a document
// @Description  Retrieves a document with its full content.
// @Tags         Documents
// @Produce      json
// @Param        id   path      int  true  "Document ID"
// @Success      200  {object}  api.DocumentResponse
// @Failure      404  {object}  api.ErrorResponse  "Document not found"
// @Router       /documents/{id} [get]
func GetDocumentHandler(w http.ResponseWriter, request *http.Request) {
	if !validateContext(request.Context()) {
		return
	}

	id, err := parseDocumentId(request)
	if err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "", "Invalid document id")
		return
	}

	doc, err := resources.Get(request.Context(), id)
	if err != nil {
		handleResourceError(w, "", err)
		return
	}

	writeJsonResponse(w, http.StatusOK, adapter.ToDocumentResponse(doc))
}

// UpdateDocumentHandler godoc
// @Summary      Update a document
// @Description  Replaces a document's content (and optionally name), then reindexes its chunks.
// @Tags         Documents
// @Accept       json
// @Produce      json
// @Param        id       path      int                         true  "Document ID"
// @Param        request  body      api.UpdateDocumentRequest   true  "New content"
// @Success      200      {object}  api.CreateDocumentResponse  "Document updated and reindexed"
// @Failure      404      {object}  api.ErrorResponse           "Document not found"
// @Router       /documents/{id} [put]
func UpdateDocumentHandler(w http.ResponseWriter, request *http.Request) {
	if !validateContext(request.Context()) {
		return
	}

	id, err := parseDocumentId(request)
	if err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "", "Invalid document id")
		return
	}

	var requestData api.UpdateDocumentRequest
	if err := decodeRequest(request, &requestData); err != nil {
		logRH.Warn("Bad Update Document Request: ", "error:", err)
		WriteErrorResponse(w, http.StatusBadRequest, "", "Bad Request")
		return
	}

	doc, chunks, err := resources.Update(request.Context(), id, requestData.Content, requestData.Name)
	if err != nil {
		handleResourceError(w, "", err)
		return
	}

	writeJsonResponse(w, http.StatusOK,
		adapter.ToCreateDocumentResponse(doc, chunks, "Document updated and reindexed."))
}

// DeleteDocumentHandler godoc
// @Summary      Delete a document
// @Description  Removes a document and all of its indexed chunks.
// @Tags         Documents
// @Produce      json
// @Param        id   path  int  true  "Document ID"
// @Success      204  "Document deleted"
// @Failure      404  {object}  api.ErrorResponse  "Document not found"
// @Router       /documents/{id} [delete]
func DeleteDocumentHandler(w http.ResponseWriter, request *http.Request) {
	if !validateContext(request.Context()) {
		return
	}

	id, err := parseDocumentId(request)
	if err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "", "Invalid document id")
		return
	}

	if err := resources.Delete(request.Context(), id); err != nil {
		handleResourceError(w, "", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ReindexDocumentHandler godoc
// @Summary      Reindex a document
// @Description  Rebuilds a document's chunk vectors from its stored content. The repair path after a partial indexing failure.
// @Tags         Documents
// @Produce      json
// @Param        id   path      int  true  "Document ID"
// @Success      200  {object}  api.ReindexResponse
// @Failure      404  {object}  api.ErrorResponse  "Document not found"
// @Router       /documents/{id}/reindex [post]
func ReindexDocumentHandler(w http.ResponseWriter, request *http.Request) {
	if !validateContext(request.Context()) {
		return
	}

	id, err := parseDocumentId(request)
	if err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "", "Invalid document id")
		return
	}

	chunks, err := resources.Reindex(request.Context(), id)
	if err != nil {
		handleResourceError(w, "", err)
		return
	}

	writeJsonResponse(w, http.StatusOK, api.ReindexResponse{DocumentId: id, ChunksProcessed: chunks})
}

// DiffDocumentHandler godoc
// @Summary      Apply or preview diff operations
// @Description  Runs line operations against a document's content. With persist=true the result replaces the document and its index.
// @Tags         Documents
// @Accept       json
// @Produce      json
// @Param        id       path      int              true  "Document ID"
// @Param        request  body      api.DiffRequest  true  "Diff operations"
// @Success      200      {object}  api.DiffResponse
// @Failure      404      {object}  api.ErrorResponse  "Document not found"
// @Router       /documents/{id}/diff [post]
func DiffDocumentHandler(w http.ResponseWriter, request *http.Request) {
	if !validateContext(request.Context()) {
		return
	}

	id, err := parseDocumentId(request)
	if err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "", "Invalid document id")
		return
	}

	var requestData api.DiffRequest
	if err := decodeRequest(request, &requestData); err != nil {
		logRH.Warn("Bad Diff Request: ", "error:", err)
		WriteErrorResponse(w, http.StatusBadRequest, "", "Bad Request")
		return
	}

	content, preview, err := resources.ApplyDiff(request.Context(), id,
		adapter.ToDiffOperations(requestData.Operations), requestData.Persist)
	if err != nil {
		handleResourceError(w, "", err)
		return
	}

	writeJsonResponse(w, http.StatusOK, adapter.ToDiffResponse(id, content, preview, requestData.Persist))
}
