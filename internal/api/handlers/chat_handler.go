package handlers

import (
	"errors"
	"strconv"

	"github.com/yaakydd/DriveGreen-sub000/internal/dto"
	"github.com/yaakydd/DriveGreen-sub000/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ChatHandler struct {
	chatService *service.ChatService
	logger      *zap.Logger
}

func NewChatHandler(chatService *service.ChatService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		logger:      logger,
	}
}

// Chat godoc
// @Summary Ask the emissions assistant
// @Description One chat turn: free-text message plus the optional last prediction
// @Tags chat
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Chat request"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/chat [post]
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	response, err := h.chatService.Answer(c.Context(), req.Message, req.PredictionData)
	if err != nil {
		// only reachable through request cancellation during the typing delay
		h.logger.Debug("Chat turn abandoned", zap.Error(err))
		return c.Status(fiber.StatusRequestTimeout).JSON(fiber.Map{
			"error": "Request cancelled",
		})
	}

	return c.JSON(dto.ChatResponse{Response: response})
}

// Health godoc
// @Summary Chat service health
// @Tags chat
// @Produce json
// @Success 200 {object} dto.ChatHealthResponse
// @Router /api/v1/chat/health [get]
func (h *ChatHandler) Health(c *fiber.Ctx) error {
	return c.JSON(dto.ChatHealthResponse{
		Status:           "healthy",
		KnowledgeEntries: h.chatService.KnowledgeSize(),
		AnalyticsEnabled: h.chatService.AnalyticsEnabled(),
	})
}

// Suggestions godoc
// @Summary Quick-prompt suggestions
// @Description Prompt chips for the UI; the set changes once a prediction exists
// @Tags chat
// @Produce json
// @Param has_prediction query bool false "Whether a prediction context exists"
// @Success 200 {object} dto.SuggestionsResponse
// @Router /api/v1/chat/suggestions [get]
func (h *ChatHandler) Suggestions(c *fiber.Ctx) error {
	hasPrediction := c.Query("has_prediction") == "true"
	return c.JSON(dto.SuggestionsResponse{
		Suggestions: h.chatService.Suggestions(hasPrediction),
	})
}

// Events godoc
// @Summary Recent chat analytics events
// @Tags chat
// @Produce json
// @Param limit query int false "Max events to return"
// @Success 200 {array} dto.ChatEventResponse
// @Failure 503 {object} map[string]string
// @Router /api/v1/chat/events [get]
func (h *ChatHandler) Events(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit"))

	events, err := h.chatService.RecentEvents(c.Context(), limit)
	if err != nil {
		if errors.Is(err, service.ErrAnalyticsDisabled) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": "Chat analytics is disabled",
			})
		}
		h.logger.Error("Failed to list chat events", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list chat events",
		})
	}

	out := make([]dto.ChatEventResponse, 0, len(events))
	for _, event := range events {
		out = append(out, dto.ChatEventResponse{
			ID:            event.ID.String(),
			Topic:         event.Topic,
			Tags:          event.Tags,
			Band:          event.Band,
			Score:         event.Score,
			Intents:       event.Intents,
			HadPrediction: event.HadPrediction,
			MessageLen:    event.MessageLen,
			LatencyMs:     event.LatencyMs,
			CreatedAt:     event.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	return c.JSON(out)
}
