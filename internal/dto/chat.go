package dto

import "github.com/yaakydd/DriveGreen-sub000/internal/models"

type ChatRequest struct {
	Message        string                    `json:"message"`
	PredictionData *models.PredictionContext `json:"prediction_data,omitempty"`
}

type ChatResponse struct {
	Response string `json:"response"`
}

type SuggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}

type ChatHealthResponse struct {
	Status           string `json:"status"`
	KnowledgeEntries int    `json:"knowledge_entries"`
	AnalyticsEnabled bool   `json:"analytics_enabled"`
}

type ChatEventResponse struct {
	ID            string  `json:"id"`
	Topic         string  `json:"topic"`
	Tags          string  `json:"tags"`
	Band          string  `json:"band"`
	Score         float64 `json:"score"`
	Intents       int     `json:"intents"`
	HadPrediction bool    `json:"had_prediction"`
	MessageLen    int     `json:"message_len"`
	LatencyMs     int64   `json:"latency_ms"`
	CreatedAt     string  `json:"created_at"`
}
