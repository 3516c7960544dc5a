package handlers

import (
	"net/http"

	"github.com/akolanti/ResumeRAG/internal/adapter"
	"github.com/akolanti/ResumeRAG/internal/api"
	"github.com/akolanti/ResumeRAG/internal/rag/tools"
)

// AddExperienceHandler godoc
// @Summary      Add an experience entry
// @Description  Formats a structured experience entry and stores it as its own searchable document.
// @Tags         Documents
// @Accept       json
// @Produce      json
// @Param        request  body      api.AddExperienceRequest    true  "Experience fields, date and description required"
// @Success      201      {object}  api.CreateDocumentResponse  "Experience stored and indexed"
// @Failure      400      {object}  api.ErrorResponse           "Invalid request data"
// @Router       /documents/experience [post]
func AddExperienceHandler(w http.ResponseWriter, request *http.Request) {
	if !validateContext(request.Context()) {
		return
	}

	var requestData api.AddExperienceRequest
	if err := decodeRequest(request, &requestData); err != nil {
		logRH.Warn("Bad Add Experience Request: ", "error:", err)
		WriteErrorResponse(w, http.StatusBadRequest, "", "Bad Request")
		return
	}

	doc, chunks, err := tools.StoreExperience(request.Context(), resources, tools.ExperienceInput{
		Date:           requestData.Date,
		Description:    requestData.Description,
		Title:          requestData.Title,
		Company:        requestData.Company,
		Position:       requestData.Position,
		Location:       requestData.Location,
		URL:            requestData.URL,
		Tags:           requestData.Tags,
		Skills:         requestData.Skills,
		Tools:          requestData.Tools,
		Technologies:   requestData.Technologies,
		Projects:       requestData.Projects,
		Education:      requestData.Education,
		Certifications: requestData.Certifications,
		Awards:         requestData.Awards,
		Publications:   requestData.Publications,
	})
	if err != nil {
		handleResourceError(w, "", err)
		return
	}

	writeJsonResponse(w, http.StatusCreated,
		adapter.ToCreateDocumentResponse(doc, chunks, "Experience stored successfully and is now available for RAG queries."))
}
