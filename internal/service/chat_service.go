package service

import (
	"context"
	"strings"
	"time"

	"github.com/yaakydd/DriveGreen-sub000/internal/engine"
	"github.com/yaakydd/DriveGreen-sub000/internal/models"
	"github.com/yaakydd/DriveGreen-sub000/internal/repository"
	"github.com/yaakydd/DriveGreen-sub000/pkg/config"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ChatService struct {
	engine    *engine.Engine
	eventRepo *repository.ChatEventRepository // nil when analytics is disabled
	config    *config.ChatConfig
	logger    *zap.Logger
}

func NewChatService(
	eng *engine.Engine,
	eventRepo *repository.ChatEventRepository,
	cfg *config.ChatConfig,
	logger *zap.Logger,
) *ChatService {
	return &ChatService{
		engine:    eng,
		eventRepo: eventRepo,
		config:    cfg,
		logger:    logger,
	}
}

// Answer runs one chat turn. The engine call itself cannot fail; the only
// error path is context cancellation during the cosmetic typing delay.
// The reply is computed before the delay starts, so cancellation can skip
// the reply but never change it.
func (s *ChatService) Answer(ctx context.Context, message string, pc *models.PredictionContext) (string, error) {
	start := time.Now()
	result := s.engine.RespondDetailed(message, pc)
	latency := time.Since(start)

	s.logger.Info("Chat turn",
		zap.String("topic", result.Topic),
		zap.String("band", result.Band),
		zap.Float64("score", result.Score),
		zap.Int("intents", result.Intents),
		zap.Bool("had_prediction", pc != nil),
		zap.Duration("latency", latency),
	)

	s.recordEvent(ctx, message, pc != nil, result, latency)

	if s.config.TypingDelay > 0 {
		select {
		case <-time.After(s.config.TypingDelay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	return result.Text, nil
}

// Suggestions returns the quick-prompt chips for the UI.
func (s *ChatService) Suggestions(hasPrediction bool) []string {
	return engine.QuickPrompts(hasPrediction)
}

func (s *ChatService) KnowledgeSize() int {
	return s.engine.Knowledge().Len()
}

func (s *ChatService) AnalyticsEnabled() bool {
	return s.eventRepo != nil
}

// RecentEvents reads back the analytics log.
func (s *ChatService) RecentEvents(ctx context.Context, limit int) ([]*models.ChatEvent, error) {
	if s.eventRepo == nil {
		return nil, ErrAnalyticsDisabled
	}
	if limit <= 0 || limit > s.config.EventsLimit {
		limit = s.config.EventsLimit
	}
	return s.eventRepo.ListRecent(ctx, limit)
}

// recordEvent writes the analytics record best-effort: a failed write never
// affects the chat response. Only derived facts are stored, not the message.
func (s *ChatService) recordEvent(ctx context.Context, message string, hadPrediction bool, result engine.Result, latency time.Duration) {
	if s.eventRepo == nil {
		return
	}

	event := &models.ChatEvent{
		ID:            uuid.New(),
		Topic:         result.Topic,
		Tags:          sanitizeUTF8(strings.Join(result.Tags, ",")),
		Band:          result.Band,
		Score:         result.Score,
		Intents:       result.Intents,
		HadPrediction: hadPrediction,
		MessageLen:    len(message),
		LatencyMs:     latency.Milliseconds(),
		CreatedAt:     time.Now().UTC(),
	}

	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
	defer cancel()
	if err := s.eventRepo.Create(writeCtx, event); err != nil {
		s.logger.Warn("Failed to record chat event", zap.Error(err))
	}
}
