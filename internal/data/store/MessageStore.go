package store

import (
	"context"

	"github.com/akolanti/ResumeRAG/internal/rag/llm"
)

// MessageStore keeps per-chat conversation history. Exchanges come back in
// chronological order, capped to the configured window.
type MessageStore interface {
	ValidateChatId(ctx context.Context, chatId string) bool
	InitNewChat(ctx context.Context, chatId string) error
	TrySaveChat(ctx context.Context, chatId string, exchange llm.Exchange) error
	GetMessageHistory(ctx context.Context, chatId string) ([]llm.Exchange, error)
}
