package main

import (
	"context"
	"log"

	"github.com/yaakydd/DriveGreen-sub000/pkg/config"
	"github.com/yaakydd/DriveGreen-sub000/pkg/logger"
	"github.com/yaakydd/DriveGreen-sub000/pkg/postgres"

	"go.uber.org/zap"
)

// chat_events backs the optional analytics log. The engine itself never
// reads this table.
const chatEventsSchema = `
CREATE TABLE IF NOT EXISTS chat_events (
    id             UUID PRIMARY KEY,
    topic          TEXT NOT NULL,
    tags           TEXT NOT NULL DEFAULT '',
    band           TEXT NOT NULL,
    score          DOUBLE PRECISION NOT NULL DEFAULT 0,
    intents        INTEGER NOT NULL DEFAULT 1,
    had_prediction BOOLEAN NOT NULL DEFAULT FALSE,
    message_len    INTEGER NOT NULL DEFAULT 0,
    latency_ms     BIGINT NOT NULL DEFAULT 0,
    created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_chat_events_created_at ON chat_events (created_at DESC);
CREATE INDEX IF NOT EXISTS idx_chat_events_topic ON chat_events (topic);
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if _, err := db.Exec(ctx, chatEventsSchema); err != nil {
		appLogger.Fatal("Failed to create analytics schema", zap.Error(err))
	}

	appLogger.Info("Analytics schema ready", zap.String("table", "chat_events"))
}
