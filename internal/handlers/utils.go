package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/akolanti/ResumeRAG/internal/adapter"
	"github.com/akolanti/ResumeRAG/internal/adapter/utils"
	"github.com/akolanti/ResumeRAG/internal/config"
	"github.com/akolanti/ResumeRAG/internal/data/store"
	"github.com/akolanti/ResumeRAG/internal/rag"
	"github.com/akolanti/ResumeRAG/internal/resource"
	"github.com/akolanti/ResumeRAG/pkg/logger_i"
)

var logRH *logger_i.Logger
var resources resource.Manager
var ragService rag.Service
var messageStore store.MessageStore

// Initialize wires the handler package once at startup, before the router
// starts serving.
func Initialize(res resource.Manager, svc rag.Service, messages store.MessageStore) {
	logRH = logger_i.NewLogger("Handlers")
	resources = res
	ragService = svc
	messageStore = messages
}

func writeJsonResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but can't send a clean status code now
		logRH.Error("Error encoding response: %v", err)
	}
}

func WriteErrorResponse(w http.ResponseWriter, httpCode int, id string, error string) {
	writeJsonResponse(w, httpCode, adapter.BadRequest(id, error, httpCode))
}

func validateContext(ctx context.Context) bool {
	if ctx.Err() != nil {
		logRH.Warn("context error", "err", ctx.Err())
		return false
	}

	select {
	case <-ctx.Done():
		logRH.Warn("context cancelled")
		return false
	default:
		return true
	}
}

type validatable interface {
	Validate() error
}

// decodeRequest reads and closes the body, then runs the DTO's validation.
func decodeRequest(request *http.Request, dst validatable) error {
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			logRH.Error("Couldn't close the request body reader :", "err", err)
		}
	}(request.Body)

	if err := json.NewDecoder(request.Body).Decode(dst); err != nil {
		return err
	}
	return dst.Validate()
}

// decodeJsonBody is for endpoints where the body is optional.
func decodeJsonBody(request *http.Request, dst any) error {
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			logRH.Error("Couldn't close the request body reader :", "err", err)
		}
	}(request.Body)
	return json.NewDecoder(request.Body).Decode(dst)
}

func parseDocumentId(request *http.Request) (int64, error) {
	idString := utils.GetChiURLParam(request, "id")
	if idString == "" {
		return 0, errors.New("empty document id")
	}
	return strconv.ParseInt(idString, 10, 64)
}

// handleResourceError maps lifecycle errors onto http status codes.
func handleResourceError(w http.ResponseWriter, id string, err error) {
	switch {
	case errors.Is(err, resource.ErrNotFound):
		WriteErrorResponse(w, http.StatusNotFound, id, "Document not found")
	case errors.Is(err, resource.ErrEmptyContent):
		WriteErrorResponse(w, http.StatusBadRequest, id, "Document content is empty")
	default:
		logRH.Error("Request failed", "error", err)
		WriteErrorResponse(w, http.StatusInternalServerError, id, "Internal Server Error")
	}
}

func getTargetDirectory() (string, string) {
	root, err := os.Getwd()
	if err != nil {
		return "", "Storage Error"
	}

	targetDir := filepath.Join(root, "temporary_data")
	if err := os.MkdirAll(targetDir, 0750); err != nil {
		return "", "Storage Error"
	}
	return targetDir, ""
}

func traceIdFromContext(ctx context.Context) string {
	trace, _ := ctx.Value(config.TRACE_ID_KEY).(string)
	return trace
}
