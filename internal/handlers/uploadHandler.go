package handlers

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/akolanti/ResumeRAG/internal/adapter"
	"github.com/akolanti/ResumeRAG/internal/domain/docModel"
	"github.com/akolanti/ResumeRAG/internal/ingest"
)

// UploadDocumentHandler handles the uploading of PDF or DOCX documents.
// @Summary      Upload a document
// @Description  Receives a file via multipart/form-data, extracts its text and stores it as a searchable document.
// @Tags         Documents
// @Accept       multipart/form-data
// @Produce      json
// @Param        document_name  formData  string  true   "The display name of the document"
// @Param        document       formData  file    true   "The PDF, DOCX, ODT, RTF or TXT file to upload"
// @Param        type           formData  string  false  "Document type: resume or other"
// @Success      201  {object}  api.CreateDocumentResponse  "Document stored and indexed"
// @Failure      400  {object}  api.ErrorResponse  "Bad Request - Missing fields or file too large"
// @Failure      500  {object}  api.ErrorResponse  "Internal Server Error - Storage or Write Error"
// @Router       /documents/upload [post]
func UploadDocumentHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logRH.Warn("Invalid Context by request ", "remote", r.RemoteAddr)
		return
	}

	targetDir, errString := getTargetDirectory()
	if errString != "" {
		logRH.Error("Couldn't get target directory :", "err", errString)
		WriteErrorResponse(w, http.StatusInternalServerError, "", errString)
		return
	}

	const maxUploadSize = 32 << 20 //32mb
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "", "File too large or bad request")
		return
	}

	docName := r.FormValue("document_name")
	if docName == "" {
		WriteErrorResponse(w, http.StatusBadRequest, "", "document_name is required")
		return
	}
	docType := docModel.DocType(r.FormValue("type"))

	fileReader, fileMetadata, err := r.FormFile("document")
	if err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, docName, "Could not retrieve file")
		return
	}
	defer fileReader.Close()

	filename := fmt.Sprintf("%d-%s", time.Now().UnixNano(), fileMetadata.Filename)
	tempFilePath := filepath.Join(targetDir, filename)
	destinationFileWriter, err := os.Create(tempFilePath)
	if err != nil {
		WriteErrorResponse(w, http.StatusInternalServerError, docName, "Storage error")
		return
	}

	if _, err := io.Copy(destinationFileWriter, fileReader); err != nil {
		destinationFileWriter.Close()
		WriteErrorResponse(w, http.StatusInternalServerError, docName, "Write error")
		return
	}
	destinationFileWriter.Close()
	defer func() {
		if err := os.Remove(tempFilePath); err != nil {
			logRH.Error("Error removing file", "error", err)
		}
	}()

	content, err := ingest.ExtractFile(tempFilePath)
	if err != nil {
		logRH.Warn("Extraction failed", "file", fileMetadata.Filename, "error", err)
		WriteErrorResponse(w, http.StatusBadRequest, docName, "Could not extract document content")
		return
	}

	doc, chunks, err := resources.Create(r.Context(), content, docName, docType, nil)
	if err != nil {
		handleResourceError(w, docName, err)
		return
	}

	writeJsonResponse(w, http.StatusCreated,
		adapter.ToCreateDocumentResponse(doc, chunks, "Document uploaded and indexed."))
}
