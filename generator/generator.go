// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package generator synthesizes the daily batch of sentiment polls.
package generator

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/danielhkuo/gridiron-pulse/models"
	"github.com/danielhkuo/gridiron-pulse/pollstore"
	"github.com/danielhkuo/gridiron-pulse/trending"
)

const (
	// BatchSize is the number of polls created per generation cycle.
	BatchSize = 3
	// MinPlayers is the minimum total ranked players needed to generate.
	MinPlayers = 6
)

type Generator struct {
	db *sql.DB
}

func New(conn *sql.DB) *Generator {
	return &Generator{db: conn}
}

// Run executes one generation cycle for the given week and year: deactivate
// every active poll, rank the week's trending players, and create up to
// BatchSize new polls across the category taxonomy. Returns the number of
// polls created.
//
// Deactivation is not conditional on the ranking succeeding: a cycle that
// finds fewer than MinPlayers ranked players returns 0 and leaves the active
// set empty until the next run. Each poll insert commits on its own, so a
// failure partway through the batch leaves the earlier polls in place and
// aborts the rest.
func (g *Generator) Run(week, year int) (int, error) {
	deactivated, err := pollstore.DeactivateAll(g.db)
	if err != nil {
		return 0, fmt.Errorf("deactivate active polls: %w", err)
	}
	slog.Info("deactivated previous polls", "count", deactivated, "week", week, "year", year)

	ranked, err := trending.TopPerformers(g.db, week, year)
	if err != nil {
		return 0, fmt.Errorf("rank trending players: %w", err)
	}

	total := 0
	for _, group := range ranked {
		total += len(group)
	}
	if total < MinPlayers {
		slog.Warn("not enough trending players to generate polls",
			"found", total, "needed", MinPlayers, "week", week, "year", year)
		return 0, nil
	}

	created := 0
	for _, category := range models.Categories {
		if created == BatchSize {
			break
		}
		a, b, ok := takePair(ranked)
		if !ok {
			break
		}
		id, err := pollstore.Insert(g.db, pollstore.NewPoll{
			Category: category,
			Prompt:   promptFor(category, week, a, b),
			SideA:    sidePayload(a),
			SideB:    sidePayload(b),
			Week:     week,
			Year:     year,
		})
		if err != nil {
			return created, fmt.Errorf("create %s poll: %w", category, err)
		}
		slog.Info("poll generated", "poll_id", id, "category", category,
			"side_a", a.Name, "side_b", b.Name)
		created++
	}
	return created, nil
}

// takePair pops the top two players from the first position group that still
// has at least two left, walking positions in fixed priority order. Consuming
// the pair keeps later categories from re-matching the same two players.
func takePair(ranked map[string][]trending.Player) (a, b trending.Player, ok bool) {
	for _, pos := range trending.Positions {
		group := ranked[pos]
		if len(group) < 2 {
			continue
		}
		a, b = group[0], group[1]
		ranked[pos] = group[2:]
		return a, b, true
	}
	return trending.Player{}, trending.Player{}, false
}

func sidePayload(p trending.Player) models.SidePayload {
	return models.SidePayload{
		PlayerID: p.PlayerID,
		Name:     p.Name,
		Team:     p.Team,
		Position: p.Position,
	}
}

func promptFor(category string, week int, a, b trending.Player) string {
	switch category {
	case models.CategoryAddDrop:
		return fmt.Sprintf("Week %d waiver call: who are you adding, %s or %s?", week, a.Name, b.Name)
	case models.CategoryStartSit:
		return fmt.Sprintf("Who do you start in Week %d: %s or %s?", week, a.Name, b.Name)
	case models.CategoryTrade:
		return fmt.Sprintf("Who holds more trade value after Week %d: %s or %s?", week, a.Name, b.Name)
	}
	return fmt.Sprintf("Week %d: %s or %s?", week, a.Name, b.Name)
}
