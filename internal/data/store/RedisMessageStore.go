package store

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/akolanti/ResumeRAG/internal/config"
	"github.com/akolanti/ResumeRAG/internal/data/redisStore"
	"github.com/akolanti/ResumeRAG/internal/rag/llm"
	"github.com/akolanti/ResumeRAG/pkg/logger_i"
)

type RedisMessageStore struct {
	store  *redisStore.Store
	logger *logger_i.Logger
}

// GetRedisMessageStore returns nil when redis is offline; main falls back to
// the in-memory store in that case.
func GetRedisMessageStore(ctx context.Context) *RedisMessageStore {
	backing := redisStore.GetRedisStore(ctx, config.RedisMessageStore)
	if backing == nil {
		return nil
	}
	return &RedisMessageStore{
		store:  backing,
		logger: logger_i.NewLogger("MessageStore"),
	}
}

// NewRedisMessageStore wraps an existing store, for tests.
func NewRedisMessageStore(backing *redisStore.Store) *RedisMessageStore {
	return &RedisMessageStore{
		store:  backing,
		logger: logger_i.NewLogger("MessageStore"),
	}
}

func (s *RedisMessageStore) ValidateChatId(ctx context.Context, chatId string) bool {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "chat Id", chatId)
	isFound, err := s.store.Exists(ctx, chatId)
	if s.store.IsNil(err) {
		return false
	} else if err != nil {
		log.Error("Failed to check if chatId exists", "err", err)
		return false
	}
	return isFound
}

func (s *RedisMessageStore) InitNewChat(ctx context.Context, chatId string) error {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "chat Id", chatId)
	log.Debug("Initializing new chat")
	if err := s.store.Del(ctx, chatId); err != nil && !s.store.IsNil(err) {
		log.Error("Error clearing previous chat", "err", err)
		return err
	}
	// a sentinel entry makes the key exist so ValidateChatId passes
	if err := s.saveExchange(ctx, chatId, llm.Exchange{}); err != nil {
		return err
	}
	return s.store.Expire(ctx, chatId, config.RedisMessageStoreTTL)
}

func (s *RedisMessageStore) TrySaveChat(ctx context.Context, chatId string, exchange llm.Exchange) error {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "chat Id", chatId)
	if !s.ValidateChatId(ctx, chatId) {
		err := errors.New("invalid chat id")
		log.Error("Failed Validation before saving", "err", err)
		return err
	}
	return s.saveExchange(ctx, chatId, exchange)
}

func (s *RedisMessageStore) saveExchange(ctx context.Context, chatId string, exchange llm.Exchange) error {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "chat Id", chatId)
	payload, err := json.Marshal(exchange)
	if err != nil {
		log.Error("Error marshalling exchange", "err", err)
		return err
	}
	if err := s.store.ListPush(ctx, chatId, payload); err != nil {
		log.Error("error saving chat", "error:", err)
		return err
	}
	log.Debug("Saved chat successfully")
	return nil
}

func (s *RedisMessageStore) GetMessageHistory(ctx context.Context, chatId string) ([]llm.Exchange, error) {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "chat Id", chatId)
	log.Debug("Getting message history")

	raw, err := s.store.ListGetLastN(ctx, chatId, config.MessageHistorySize)
	if err != nil {
		log.Error("Error getting history", "error:", err)
		return nil, err
	}

	history := make([]llm.Exchange, 0, len(raw))
	for _, entry := range raw {
		var exchange llm.Exchange
		if err := json.Unmarshal([]byte(entry), &exchange); err != nil {
			log.Error("Skipping corrupt history entry", "error:", err)
			continue
		}
		if exchange.Question == "" && exchange.Answer == "" {
			continue
		}
		history = append(history, exchange)
	}
	return history, nil
}
