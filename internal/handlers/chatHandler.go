package handlers

import (
	"net/http"

	"github.com/akolanti/ResumeRAG/internal/adapter"
	"github.com/akolanti/ResumeRAG/internal/adapter/utils"
	"github.com/akolanti/ResumeRAG/internal/api"
	"github.com/akolanti/ResumeRAG/internal/rag/llm"
)

// ChatHandler godoc
// @Summary      Chat with the resume assistant
// @Description  Answers a message using retrieval and tools, synchronously. Omit chatID to start a new conversation; pass documentId to get structured resume changes.
// @Tags         Messaging
// @Accept       json
// @Produce      json
// @Param        request  body      api.ChatRequest   true  "Message with optional chat ID, document ID and context scope"
// @Success      200      {object}  api.ChatResponse  "Assistant answer"
// @Failure      400      {object}  api.ErrorResponse "Invalid request data or chat ID"
// @Router       /chat [post]
func ChatHandler(w http.ResponseWriter, request *http.Request) {
	if !validateContext(request.Context()) {
		logRH.Warn("Invalid Context by request ", "remote", request.RemoteAddr)
		return
	}

	var requestData api.ChatRequest
	if err := decodeRequest(request, &requestData); err != nil {
		logRH.Warn("Bad Chat Request: ", "error:", err, "request data:", requestData)
		WriteErrorResponse(w, http.StatusBadRequest, requestData.ChatID, "Bad Request")
		return
	}

	ctx := request.Context()
	log := logRH.With("traceId", traceIdFromContext(ctx))

	chatId := requestData.ChatID
	if chatId == "" {
		chatId = utils.GetNewUUID()
		log.Debug(" New Chat request : ", "chatID:", chatId)
		if err := messageStore.InitNewChat(ctx, chatId); err != nil {
			log.Error("Could not initialize chat", "error", err)
			WriteErrorResponse(w, http.StatusInternalServerError, chatId, "Internal Server Error")
			return
		}
	} else if !messageStore.ValidateChatId(ctx, chatId) {
		WriteErrorResponse(w, http.StatusBadRequest, chatId, "Unknown chat id")
		return
	}

	history, err := messageStore.GetMessageHistory(ctx, chatId)
	if err != nil {
		// history is best effort, answer without it
		log.Error("Could not load message history", "error", err)
		history = nil
	}

	result, err := ragService.Chat(ctx, requestData.Message, history, requestData.DocumentID, requestData.ContextIDs)
	if err != nil {
		log.Error("Chat failed", "error", err)
		WriteErrorResponse(w, http.StatusInternalServerError, chatId, "Internal Server Error")
		return
	}

	if err := messageStore.TrySaveChat(ctx, chatId, llm.Exchange{Question: requestData.Message, Answer: result.Answer}); err != nil {
		log.Error("Could not save exchange", "error", err)
	}

	writeJsonResponse(w, http.StatusOK, api.ChatResponse{
		ChatId:            chatId,
		Answer:            result.Answer,
		StructuredChanges: adapter.FromDiffOperations(result.StructuredChanges),
		DocumentId:        result.DocumentId,
	})
}
