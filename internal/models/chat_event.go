package models

import (
	"time"

	"github.com/google/uuid"
)

// ChatEvent is one analytics record per chat turn: which topic answered,
// in which confidence band, and how long the engine took. The raw message is
// not stored, only its length, so the log never holds conversation content.
type ChatEvent struct {
	ID            uuid.UUID `db:"id"`
	Topic         string    `db:"topic"`
	Tags          string    `db:"tags"` // comma-joined entry tags
	Band          string    `db:"band"` // none | low | high | context | missing_context
	Score         float64   `db:"score"`
	Intents       int       `db:"intents"`
	HadPrediction bool      `db:"had_prediction"`
	MessageLen    int       `db:"message_len"`
	LatencyMs     int64     `db:"latency_ms"`
	CreatedAt     time.Time `db:"created_at"`
}
