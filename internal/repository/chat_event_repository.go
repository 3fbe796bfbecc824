package repository

import (
	"context"

	"github.com/yaakydd/DriveGreen-sub000/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type ChatEventRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewChatEventRepository(db *pgxpool.Pool, logger *zap.Logger) *ChatEventRepository {
	return &ChatEventRepository{
		db:     db,
		logger: logger,
	}
}

func (r *ChatEventRepository) Create(ctx context.Context, event *models.ChatEvent) error {
	query := squirrel.Insert("chat_events").
		Columns("id", "topic", "tags", "band", "score", "intents", "had_prediction", "message_len", "latency_ms", "created_at").
		Values(event.ID, event.Topic, event.Tags, event.Band, event.Score, event.Intents, event.HadPrediction, event.MessageLen, event.LatencyMs, event.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// ListRecent returns the newest events first, capped at limit.
func (r *ChatEventRepository) ListRecent(ctx context.Context, limit int) ([]*models.ChatEvent, error) {
	query := squirrel.Select("id", "topic", "tags", "band", "score", "intents", "had_prediction", "message_len", "latency_ms", "created_at").
		From("chat_events").
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*models.ChatEvent
	for rows.Next() {
		var event models.ChatEvent
		if err := rows.Scan(
			&event.ID, &event.Topic, &event.Tags, &event.Band, &event.Score,
			&event.Intents, &event.HadPrediction, &event.MessageLen, &event.LatencyMs, &event.CreatedAt,
		); err != nil {
			return nil, err
		}
		results = append(results, &event)
	}

	return results, rows.Err()
}
