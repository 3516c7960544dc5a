package store

import (
	"context"
	"sync"

	"github.com/akolanti/ResumeRAG/internal/config"
	"github.com/akolanti/ResumeRAG/internal/rag/llm"
	"github.com/akolanti/ResumeRAG/pkg/logger_i"
)

type InMemoryMessageStore struct {
	chatLock *sync.RWMutex
	chatMap  map[string][]llm.Exchange
	logger   *logger_i.Logger
}

func InitMessageStore() *InMemoryMessageStore {
	return &InMemoryMessageStore{
		chatLock: new(sync.RWMutex),
		chatMap:  make(map[string][]llm.Exchange),
		logger:   logger_i.NewLogger("InMem MessageStore"),
	}
}

func (store *InMemoryMessageStore) ValidateChatId(ctx context.Context, chatId string) bool {
	store.chatLock.RLock()
	defer store.chatLock.RUnlock()
	_, ok := store.chatMap[chatId]
	return ok
}

func (store *InMemoryMessageStore) InitNewChat(ctx context.Context, chatId string) error {
	store.chatLock.Lock()
	defer store.chatLock.Unlock()
	store.chatMap[chatId] = make([]llm.Exchange, 0)
	return nil
}

func (store *InMemoryMessageStore) TrySaveChat(ctx context.Context, chatId string, exchange llm.Exchange) error {
	if !store.ValidateChatId(ctx, chatId) {
		return nil
	}
	store.chatLock.Lock()
	defer store.chatLock.Unlock()
	store.chatMap[chatId] = append(store.chatMap[chatId], exchange)
	store.logger.Debug("Saved convo to chat message store", "chat Id", chatId)
	return nil
}

func (store *InMemoryMessageStore) GetMessageHistory(ctx context.Context, chatId string) ([]llm.Exchange, error) {
	store.chatLock.RLock()
	defer store.chatLock.RUnlock()

	history := store.chatMap[chatId]
	if len(history) > config.MessageHistorySize {
		history = history[len(history)-config.MessageHistorySize:]
	}
	out := make([]llm.Exchange, len(history))
	copy(out, history)
	return out, nil
}
