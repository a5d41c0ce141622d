// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package trending ranks players by weekly performance for poll generation.
package trending

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"
)

// Positions eligible for poll generation, in pairing priority order.
var Positions = []string{"QB", "RB", "WR", "TE"}

// TopN is the per-position ranking depth.
const TopN = 10

// Player is one entry in a trending snapshot. Ephemeral - produced on
// demand, consumed by the generator, never persisted.
type Player struct {
	PlayerID string
	Name     string
	Team     string
	Position string
	Points   float64
}

// TopPerformers returns up to TopN players per position for the given week
// and year, ranked by PPR fantasy points descending. Players with no
// recorded metric are excluded. Ties break on player_id ascending so
// repeated runs over the same stats rank identically.
func TopPerformers(conn *sql.DB, week, year int) (map[string][]Player, error) {
	rows, err := conn.Query(`
		SELECT player_id, player_name, team, position, fantasy_points_ppr
		FROM player_week_stats
		WHERE week = $1 AND season = $2
		  AND fantasy_points_ppr IS NOT NULL
		  AND position = ANY($3)
		ORDER BY position, fantasy_points_ppr DESC, player_id
	`, week, year, pq.Array(Positions))
	if err != nil {
		return nil, fmt.Errorf("query weekly stats: %w", err)
	}
	defer rows.Close()

	grouped := make(map[string][]Player)
	for rows.Next() {
		var p Player
		if err := rows.Scan(&p.PlayerID, &p.Name, &p.Team, &p.Position, &p.Points); err != nil {
			return nil, fmt.Errorf("scan stat row: %w", err)
		}
		if len(grouped[p.Position]) < TopN {
			grouped[p.Position] = append(grouped[p.Position], p)
		}
	}
	return grouped, rows.Err()
}
