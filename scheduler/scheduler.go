// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package scheduler triggers daily poll generation on a wall-clock cadence.
package scheduler

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/danielhkuo/gridiron-pulse/generator"
	"github.com/danielhkuo/gridiron-pulse/pollstore"
)

// Scheduler fires the generator once per day at a fixed local hour, plus
// once at startup if no polls are active. It is owned by the composition
// root: Run blocks until its context is cancelled, which is the stop handle.
type Scheduler struct {
	db    *sql.DB
	gen   *generator.Generator
	hour  int
	loc   *time.Location
	grace time.Duration
}

func New(conn *sql.DB, gen *generator.Generator, hour int, loc *time.Location) *Scheduler {
	return &Scheduler{
		db:    conn,
		gen:   gen,
		hour:  hour,
		loc:   loc,
		grace: 15 * time.Second,
	}
}

// Run blocks until ctx is cancelled. After a grace delay (letting the
// database become reachable on cold deploys) it seeds the poll set, then
// fires one generation cycle per day at the configured hour. Generation
// failures are logged and swallowed; the next day's run is the retry.
func (s *Scheduler) Run(ctx context.Context) {
	select {
	case <-ctx.Done():
		return
	case <-time.After(s.grace):
	}
	s.seed()

	for {
		wait := time.Until(s.nextRun(time.Now().In(s.loc)))
		select {
		case <-ctx.Done():
			return
		case <-time.After(wait):
			s.generate()
		}
	}
}

// seed runs a startup generation cycle when no polls are active. A failed
// check counts as "no polls" - generating anyway beats leaving the system
// pollless until tomorrow's run.
func (s *Scheduler) seed() {
	count, err := pollstore.ActiveCount(s.db)
	if err != nil {
		slog.Warn("active poll check failed, generating anyway", "error", err)
	} else if count > 0 {
		slog.Info("active polls present, skipping startup generation", "count", count)
		return
	}
	s.generate()
}

func (s *Scheduler) generate() {
	week, year := generator.DefaultTarget(time.Now().In(s.loc))
	created, err := s.gen.Run(week, year)
	if err != nil {
		slog.Error("poll generation failed", "error", err, "week", week, "year", year)
		return
	}
	slog.Info("poll generation finished", "created", created, "week", week, "year", year)
}

// nextRun returns the next daily fire time strictly after now.
func (s *Scheduler) nextRun(now time.Time) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), s.hour, 0, 0, 0, s.loc)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
