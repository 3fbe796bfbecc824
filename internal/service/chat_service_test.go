package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/yaakydd/DriveGreen-sub000/internal/engine"
	"github.com/yaakydd/DriveGreen-sub000/internal/models"
	"github.com/yaakydd/DriveGreen-sub000/pkg/config"
)

func newChatService(typingDelay time.Duration) *ChatService {
	eng := engine.New(engine.DefaultKnowledgeBase())
	cfg := &config.ChatConfig{
		TypingDelay: typingDelay,
		EventsLimit: 50,
	}
	return NewChatService(eng, nil, cfg, zap.NewNop())
}

func TestAnswer(t *testing.T) {
	svc := newChatService(0)

	text, err := svc.Answer(context.Background(), "hi", nil)
	require.NoError(t, err)
	assert.Contains(t, text, "Eco-Copilot")
}

func TestAnswer_WithPredictionContext(t *testing.T) {
	svc := newChatService(0)
	pc := &models.PredictionContext{
		PredictedEmissions: 185,
		Category:           models.CategoryAverage,
		Vehicle: models.VehicleSpec{
			FuelType:         models.FuelRegularGas,
			Cylinders:        4,
			EngineSizeLiters: 2.0,
		},
	}

	text, err := svc.Answer(context.Background(), "explain my result", pc)
	require.NoError(t, err)
	assert.Contains(t, text, "185 g/km")
	assert.Contains(t, text, "Average Performance")
}

func TestAnswer_TypingDelayElapses(t *testing.T) {
	svc := newChatService(5 * time.Millisecond)

	start := time.Now()
	text, err := svc.Answer(context.Background(), "hi", nil)
	require.NoError(t, err)
	assert.NotEmpty(t, text)
	assert.GreaterOrEqual(t, time.Since(start), 5*time.Millisecond)
}

func TestAnswer_CancelledDuringTypingDelay(t *testing.T) {
	svc := newChatService(5 * time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	text, err := svc.Answer(ctx, "hi", nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, text)
}

func TestSuggestions(t *testing.T) {
	svc := newChatService(0)

	assert.Contains(t, svc.Suggestions(true), "Explain my result")
	assert.Contains(t, svc.Suggestions(false), "What fuel types exist?")
}

func TestKnowledgeSize(t *testing.T) {
	svc := newChatService(0)
	assert.GreaterOrEqual(t, svc.KnowledgeSize(), 15)
}

func TestAnalyticsDisabled(t *testing.T) {
	svc := newChatService(0)

	assert.False(t, svc.AnalyticsEnabled())

	_, err := svc.RecentEvents(context.Background(), 10)
	assert.ErrorIs(t, err, ErrAnalyticsDisabled)
}
