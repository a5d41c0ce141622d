// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package generator

import (
	"time"

	"github.com/danielhkuo/gridiron-pulse/models"
)

// DefaultTarget derives the in-season week and year from a wall-clock time.
// The regular season is treated as starting the first Thursday of September;
// before that point the previous season is still current. Results are
// clamped to the valid week/year bounds.
func DefaultTarget(now time.Time) (week, year int) {
	year = now.Year()
	start := seasonStart(year, now.Location())
	if now.Before(start) {
		year--
		start = seasonStart(year, now.Location())
	}
	week = int(now.Sub(start)/(7*24*time.Hour)) + 1
	return models.ClampWeek(week), models.ClampYear(year)
}

func seasonStart(year int, loc *time.Location) time.Time {
	d := time.Date(year, time.September, 1, 0, 0, 0, 0, loc)
	for d.Weekday() != time.Thursday {
		d = d.AddDate(0, 0, 1)
	}
	return d
}
