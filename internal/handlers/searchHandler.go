package handlers

import (
	"net/http"

	"github.com/akolanti/ResumeRAG/internal/adapter"
	"github.com/akolanti/ResumeRAG/internal/api"
	"github.com/akolanti/ResumeRAG/internal/rag"
)

// SearchHandler godoc
// @Summary      Semantic search
// @Description  Embeds the query and returns the most similar document chunks, optionally restricted to a set of document ids.
// @Tags         Retrieval
// @Accept       json
// @Produce      json
// @Param        request  body      api.SearchRequest   true  "Query with optional limit and document scope"
// @Success      200      {object}  api.SearchResponse
// @Failure      400      {object}  api.ErrorResponse  "Invalid request data"
// @Router       /search [post]
func SearchHandler(w http.ResponseWriter, request *http.Request) {
	if !validateContext(request.Context()) {
		logRH.Warn("Invalid Context by request ", "remote", request.RemoteAddr)
		return
	}

	var requestData api.SearchRequest
	if err := decodeRequest(request, &requestData); err != nil {
		logRH.Warn("Bad Search Request: ", "error:", err)
		WriteErrorResponse(w, http.StatusBadRequest, "", "Bad Request")
		return
	}

	matches, err := ragService.Search(request.Context(), requestData.Query, requestData.Limit, requestData.DocumentIds)
	if err != nil {
		logRH.Error("Search failed", "error", err)
		WriteErrorResponse(w, http.StatusInternalServerError, "", "Internal Server Error")
		return
	}

	writeJsonResponse(w, http.StatusOK, adapter.ToSearchResponse(matches, rag.BuildContext(matches)))
}
