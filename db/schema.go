// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the sentiment service.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Polls: one row per two-sided voting card. Immutable after creation except
-- for the active flag and the two tally columns.
CREATE TABLE IF NOT EXISTS sentiment_poll (
    id BIGSERIAL PRIMARY KEY,
    category TEXT NOT NULL CHECK (category IN ('ADD_DROP', 'START_SIT', 'TRADE')),
    prompt TEXT NOT NULL,
    player_a_id TEXT NOT NULL,
    player_a_name TEXT NOT NULL,
    player_a_team TEXT NOT NULL,
    player_a_position TEXT NOT NULL,
    player_b_id TEXT NOT NULL,
    player_b_name TEXT NOT NULL,
    player_b_team TEXT NOT NULL,
    player_b_position TEXT NOT NULL,
    votes_a INTEGER NOT NULL DEFAULT 0 CHECK (votes_a >= 0),
    votes_b INTEGER NOT NULL DEFAULT 0 CHECK (votes_b >= 0),
    week INTEGER NOT NULL CHECK (week BETWEEN 1 AND 18),
    year INTEGER NOT NULL,
    active BOOLEAN NOT NULL DEFAULT TRUE,
    created_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_sentiment_poll_active ON sentiment_poll(active, created_at DESC);
CREATE INDEX IF NOT EXISTS idx_sentiment_poll_week ON sentiment_poll(year, week);

-- Votes: append-only ledger. The composite UNIQUE constraint is the sole
-- defense against duplicate voting and must never be relaxed.
CREATE TABLE IF NOT EXISTS sentiment_vote (
    id BIGSERIAL PRIMARY KEY,
    poll_id BIGINT NOT NULL REFERENCES sentiment_poll(id) ON DELETE CASCADE,
    session_id TEXT NOT NULL,
    side TEXT NOT NULL CHECK (side IN ('A', 'B')),
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    UNIQUE (poll_id, session_id)
);

CREATE INDEX IF NOT EXISTS idx_sentiment_vote_poll ON sentiment_vote(poll_id);

-- Weekly stats read model. Owned and populated by the analytics importer;
-- created here so a fresh database can serve trending queries.
CREATE TABLE IF NOT EXISTS player_week_stats (
    player_id TEXT NOT NULL,
    player_name TEXT NOT NULL,
    team TEXT NOT NULL,
    position TEXT NOT NULL,
    week INTEGER NOT NULL,
    season INTEGER NOT NULL,
    fantasy_points_ppr DOUBLE PRECISION,
    PRIMARY KEY (player_id, season, week)
);

CREATE INDEX IF NOT EXISTS idx_player_week_stats_week ON player_week_stats(season, week, position);
`
