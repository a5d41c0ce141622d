// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package generator

import (
	"testing"

	"github.com/danielhkuo/gridiron-pulse/models"
	"github.com/danielhkuo/gridiron-pulse/testutil"
	"github.com/danielhkuo/gridiron-pulse/trending"
)

func TestRun_FullBatch(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	// Three position groups with two players each: enough for the whole
	// category taxonomy.
	testutil.InsertStat(t, db, "qb1", "QB One", "KC", "QB", 10, 2024, 30.0)
	testutil.InsertStat(t, db, "qb2", "QB Two", "BUF", "QB", 10, 2024, 28.0)
	testutil.InsertStat(t, db, "rb1", "RB One", "SF", "RB", 10, 2024, 25.0)
	testutil.InsertStat(t, db, "rb2", "RB Two", "DET", "RB", 10, 2024, 22.0)
	testutil.InsertStat(t, db, "wr1", "WR One", "MIA", "WR", 10, 2024, 24.0)
	testutil.InsertStat(t, db, "wr2", "WR Two", "DAL", "WR", 10, 2024, 21.0)

	created, err := New(db).Run(10, 2024)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if created != BatchSize {
		t.Fatalf("expected %d polls, got %d", BatchSize, created)
	}

	rows, err := db.Query(`
		SELECT category, player_a_id, player_b_id, votes_a, votes_b, active, week, year
		FROM sentiment_poll ORDER BY id
	`)
	if err != nil {
		t.Fatalf("Failed to query polls: %v", err)
	}
	defer rows.Close()

	categories := []string{}
	for rows.Next() {
		var category, aID, bID string
		var votesA, votesB, week, year int
		var active bool
		if err := rows.Scan(&category, &aID, &bID, &votesA, &votesB, &active, &week, &year); err != nil {
			t.Fatalf("Failed to scan poll: %v", err)
		}
		categories = append(categories, category)
		if aID == bID {
			t.Errorf("%s poll pairs a player with themselves: %s", category, aID)
		}
		if votesA != 0 || votesB != 0 {
			t.Errorf("%s poll has non-zero counters (%d, %d)", category, votesA, votesB)
		}
		if !active {
			t.Errorf("%s poll is not active", category)
		}
		if week != 10 || year != 2024 {
			t.Errorf("%s poll targets week %d of %d, want 10 of 2024", category, week, year)
		}
	}

	// Every category used once, in taxonomy order
	for i, want := range models.Categories {
		if i >= len(categories) || categories[i] != want {
			t.Errorf("expected category %s at position %d, got %v", want, i, categories)
		}
	}
}

func TestRun_DeactivatesPreviousPolls(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	old1 := testutil.CreateTestPoll(t, db, models.CategoryTrade, 9, 2024, true)
	old2 := testutil.CreateTestPoll(t, db, models.CategoryAddDrop, 9, 2024, true)

	// No stats: generation aborts after deactivation with zero created
	created, err := New(db).Run(10, 2024)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if created != 0 {
		t.Fatalf("expected 0 polls created, got %d", created)
	}

	for _, id := range []int64{old1, old2} {
		var active bool
		if err := db.QueryRow(`SELECT active FROM sentiment_poll WHERE id = $1`, id).Scan(&active); err != nil {
			t.Fatalf("Failed to query poll %d: %v", id, err)
		}
		if active {
			t.Errorf("poll %d still active after generation cycle", id)
		}
	}
}

func TestRun_BelowMinimumPlayers(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	// Only 4 ranked players across all positions - below the threshold of 6
	testutil.InsertStat(t, db, "qb1", "QB One", "KC", "QB", 10, 2024, 30.0)
	testutil.InsertStat(t, db, "qb2", "QB Two", "BUF", "QB", 10, 2024, 28.0)
	testutil.InsertStat(t, db, "rb1", "RB One", "SF", "RB", 10, 2024, 25.0)
	testutil.InsertStat(t, db, "rb2", "RB Two", "DET", "RB", 10, 2024, 22.0)

	created, err := New(db).Run(10, 2024)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if created != 0 {
		t.Errorf("expected 0 polls below minimum player count, got %d", created)
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM sentiment_poll`).Scan(&count); err != nil {
		t.Fatalf("Failed to count polls: %v", err)
	}
	if count != 0 {
		t.Errorf("expected no polls persisted, got %d", count)
	}
}

func TestRun_PartialBatchWhenPairsRunOut(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	// Two pairable groups plus two unpaired singles: 6 players total passes
	// the threshold, but only two pairs exist.
	testutil.InsertStat(t, db, "qb1", "QB One", "KC", "QB", 10, 2024, 30.0)
	testutil.InsertStat(t, db, "qb2", "QB Two", "BUF", "QB", 10, 2024, 28.0)
	testutil.InsertStat(t, db, "rb1", "RB One", "SF", "RB", 10, 2024, 25.0)
	testutil.InsertStat(t, db, "rb2", "RB Two", "DET", "RB", 10, 2024, 22.0)
	testutil.InsertStat(t, db, "wr1", "WR One", "MIA", "WR", 10, 2024, 24.0)
	testutil.InsertStat(t, db, "te1", "TE One", "KC", "TE", 10, 2024, 14.0)

	created, err := New(db).Run(10, 2024)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if created != 2 {
		t.Errorf("expected 2 polls from 2 pairable groups, got %d", created)
	}
}

func TestRun_PairsTopTwoByPoints(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	testutil.InsertStat(t, db, "qb1", "QB One", "KC", "QB", 10, 2024, 18.0)
	testutil.InsertStat(t, db, "qb2", "QB Two", "BUF", "QB", 10, 2024, 33.0)
	testutil.InsertStat(t, db, "qb3", "QB Three", "CIN", "QB", 10, 2024, 27.0)
	testutil.InsertStat(t, db, "rb1", "RB One", "SF", "RB", 10, 2024, 25.0)
	testutil.InsertStat(t, db, "rb2", "RB Two", "DET", "RB", 10, 2024, 22.0)
	testutil.InsertStat(t, db, "wr1", "WR One", "MIA", "WR", 10, 2024, 24.0)

	if _, err := New(db).Run(10, 2024); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// The first poll pairs the two best QBs, best first
	var aID, bID string
	err := db.QueryRow(`
		SELECT player_a_id, player_b_id FROM sentiment_poll ORDER BY id LIMIT 1
	`).Scan(&aID, &bID)
	if err != nil {
		t.Fatalf("Failed to query first poll: %v", err)
	}
	if aID != "qb2" || bID != "qb3" {
		t.Errorf("expected sides (qb2, qb3), got (%s, %s)", aID, bID)
	}
}

func TestTakePair_ConsumesPlayers(t *testing.T) {
	ranked := map[string][]trending.Player{
		"QB": {{PlayerID: "qb1"}, {PlayerID: "qb2"}},
		"RB": {{PlayerID: "rb1"}, {PlayerID: "rb2"}, {PlayerID: "rb3"}},
	}

	a, b, ok := takePair(ranked)
	if !ok || a.PlayerID != "qb1" || b.PlayerID != "qb2" {
		t.Fatalf("first pair = (%s, %s, %v), want (qb1, qb2, true)", a.PlayerID, b.PlayerID, ok)
	}

	// QBs are exhausted; the next pair comes from the RB group
	a, b, ok = takePair(ranked)
	if !ok || a.PlayerID != "rb1" || b.PlayerID != "rb2" {
		t.Fatalf("second pair = (%s, %s, %v), want (rb1, rb2, true)", a.PlayerID, b.PlayerID, ok)
	}

	// One RB left: no pair remains
	if _, _, ok = takePair(ranked); ok {
		t.Error("expected no third pair with a single player remaining")
	}
}
