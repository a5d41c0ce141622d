// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package pollstore

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/danielhkuo/gridiron-pulse/db"
	"github.com/danielhkuo/gridiron-pulse/models"
)

var (
	// ErrPollNotFound means the poll identifier resolves to no stored poll.
	ErrPollNotFound = errors.New("poll not found")
	// ErrDuplicateVote means this session has already voted on this poll.
	ErrDuplicateVote = errors.New("session has already voted on this poll")
)

// Postgres error code for unique constraint violations.
const uniqueViolation = "23505"

// NewPoll is the input for poll creation. Counters start at zero and the
// poll is created active.
type NewPoll struct {
	Category string
	Prompt   string
	SideA    models.SidePayload
	SideB    models.SidePayload
	Week     int
	Year     int
}

// Tally is the pair of counters for one poll.
type Tally struct {
	VotesA int
	VotesB int
}

// Insert persists a poll with zeroed counters and active = true, returning
// the assigned identifier.
func Insert(conn *sql.DB, p NewPoll) (int64, error) {
	var id int64
	err := db.WithTx(conn, func(tx *sql.Tx) error {
		return tx.QueryRow(`
			INSERT INTO sentiment_poll (
				category, prompt,
				player_a_id, player_a_name, player_a_team, player_a_position,
				player_b_id, player_b_name, player_b_team, player_b_position,
				week, year, active, created_at
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, TRUE, $13)
			RETURNING id
		`, p.Category, p.Prompt,
			p.SideA.PlayerID, p.SideA.Name, p.SideA.Team, p.SideA.Position,
			p.SideB.PlayerID, p.SideB.Name, p.SideB.Team, p.SideB.Position,
			p.Week, p.Year, time.Now()).Scan(&id)
	})
	if err != nil {
		return 0, fmt.Errorf("insert poll: %w", err)
	}
	return id, nil
}

// RecordVote records one vote by sessionID on pollID under a single
// transaction: existence check, duplicate check, ledger insert, and relative
// counter increment commit together or not at all. The UNIQUE
// (poll_id, session_id) constraint backstops the pre-check, so two racing
// submissions from the same session can never both count. Returns the
// updated tally.
func RecordVote(conn *sql.DB, pollID int64, sessionID, side string) (Tally, error) {
	var tally Tally
	err := db.WithTx(conn, func(tx *sql.Tx) error {
		var exists bool
		if err := tx.QueryRow(`
			SELECT EXISTS(SELECT 1 FROM sentiment_poll WHERE id = $1)
		`, pollID).Scan(&exists); err != nil {
			return fmt.Errorf("check poll: %w", err)
		}
		if !exists {
			return ErrPollNotFound
		}

		var voted bool
		if err := tx.QueryRow(`
			SELECT EXISTS(
				SELECT 1 FROM sentiment_vote
				WHERE poll_id = $1 AND session_id = $2
			)
		`, pollID, sessionID).Scan(&voted); err != nil {
			return fmt.Errorf("check existing vote: %w", err)
		}
		if voted {
			return ErrDuplicateVote
		}

		_, err := tx.Exec(`
			INSERT INTO sentiment_vote (poll_id, session_id, side, created_at)
			VALUES ($1, $2, $3, $4)
		`, pollID, sessionID, side, time.Now())
		if err != nil {
			if isUniqueViolation(err) {
				return ErrDuplicateVote
			}
			return fmt.Errorf("insert vote: %w", err)
		}

		// Relative increment only - a read-modify-write here would lose
		// updates under concurrent votes on the same poll.
		column := "votes_a"
		if side == models.SideB {
			column = "votes_b"
		}
		if err := tx.QueryRow(`
			UPDATE sentiment_poll
			SET `+column+` = `+column+` + 1
			WHERE id = $1
			RETURNING votes_a, votes_b
		`, pollID).Scan(&tally.VotesA, &tally.VotesB); err != nil {
			return fmt.Errorf("increment tally: %w", err)
		}
		return nil
	})
	if err != nil {
		return Tally{}, err
	}
	return tally, nil
}

// ListActive returns up to models.ActivePollLimit active polls, newest
// first, each annotated with the viewer's own vote (nil if they have not
// voted). Read-only; safe to call on every client refresh.
func ListActive(conn *sql.DB, sessionID string) ([]models.ActivePoll, error) {
	rows, err := conn.Query(`
		SELECT p.id, p.category, p.prompt,
		       p.player_a_id, p.player_a_name, p.player_a_team, p.player_a_position,
		       p.player_b_id, p.player_b_name, p.player_b_team, p.player_b_position,
		       p.votes_a, p.votes_b, p.week, p.year, p.active, p.created_at,
		       v.side
		FROM sentiment_poll p
		LEFT JOIN sentiment_vote v
		       ON v.poll_id = p.id AND v.session_id = $1
		WHERE p.active
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT $2
	`, sessionID, models.ActivePollLimit)
	if err != nil {
		return nil, fmt.Errorf("query active polls: %w", err)
	}
	defer rows.Close()

	polls := []models.ActivePoll{}
	for rows.Next() {
		var ap models.ActivePoll
		var myVote sql.NullString
		if err := rows.Scan(
			&ap.ID, &ap.Category, &ap.Prompt,
			&ap.SideA.PlayerID, &ap.SideA.Name, &ap.SideA.Team, &ap.SideA.Position,
			&ap.SideB.PlayerID, &ap.SideB.Name, &ap.SideB.Team, &ap.SideB.Position,
			&ap.SideA.Votes, &ap.SideB.Votes, &ap.Week, &ap.Year, &ap.Active, &ap.CreatedAt,
			&myVote,
		); err != nil {
			return nil, fmt.Errorf("scan poll: %w", err)
		}
		if myVote.Valid {
			ap.MyVote = &myVote.String
		}
		polls = append(polls, ap)
	}
	return polls, rows.Err()
}

// DeactivateAll marks every active poll inactive and returns how many were
// flipped. Called unconditionally at the start of each generation cycle.
func DeactivateAll(conn *sql.DB) (int64, error) {
	res, err := conn.Exec(`UPDATE sentiment_poll SET active = FALSE WHERE active`)
	if err != nil {
		return 0, fmt.Errorf("deactivate polls: %w", err)
	}
	return res.RowsAffected()
}

// ActiveCount returns the number of currently active polls.
func ActiveCount(conn *sql.DB) (int, error) {
	var count int
	err := conn.QueryRow(`SELECT COUNT(*) FROM sentiment_poll WHERE active`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count active polls: %w", err)
	}
	return count, nil
}

// Results returns derived statistics for polls, optionally filtered by week
// and year. Majority, shares, and totals are computed from the stored
// counters at read time.
func Results(conn *sql.DB, week, year *int) ([]models.PollResult, error) {
	query := `
		SELECT id, category, prompt,
		       player_a_id, player_a_name, player_a_team, player_a_position,
		       player_b_id, player_b_name, player_b_team, player_b_position,
		       votes_a, votes_b, week, year
		FROM sentiment_poll`
	conds := []string{}
	args := []interface{}{}
	if week != nil {
		args = append(args, *week)
		conds = append(conds, fmt.Sprintf("week = $%d", len(args)))
	}
	if year != nil {
		args = append(args, *year)
		conds = append(conds, fmt.Sprintf("year = $%d", len(args)))
	}
	for i, cond := range conds {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY created_at DESC, id DESC"

	rows, err := conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query poll results: %w", err)
	}
	defer rows.Close()

	results := []models.PollResult{}
	for rows.Next() {
		var pr models.PollResult
		if err := rows.Scan(
			&pr.PollID, &pr.Category, &pr.Prompt,
			&pr.SideA.PlayerID, &pr.SideA.Name, &pr.SideA.Team, &pr.SideA.Position,
			&pr.SideB.PlayerID, &pr.SideB.Name, &pr.SideB.Team, &pr.SideB.Position,
			&pr.SideA.Votes, &pr.SideB.Votes, &pr.Week, &pr.Year,
		); err != nil {
			return nil, fmt.Errorf("scan poll result: %w", err)
		}
		pr.TotalVotes = pr.SideA.Votes + pr.SideB.Votes
		switch {
		case pr.SideA.Votes > pr.SideB.Votes:
			pr.Majority = models.MajorityA
		case pr.SideB.Votes > pr.SideA.Votes:
			pr.Majority = models.MajorityB
		default:
			pr.Majority = models.MajorityTie
		}
		if pr.TotalVotes > 0 {
			pr.ShareA = float64(pr.SideA.Votes) / float64(pr.TotalVotes) * 100
			pr.ShareB = float64(pr.SideB.Votes) / float64(pr.TotalVotes) * 100
		}
		results = append(results, pr)
	}
	return results, rows.Err()
}

// Delete removes a poll and, via the cascade, its votes. Administrative
// side channel only - normal operation never deletes polls.
func Delete(conn *sql.DB, pollID int64) error {
	res, err := conn.Exec(`DELETE FROM sentiment_poll WHERE id = $1`, pollID)
	if err != nil {
		return fmt.Errorf("delete poll: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete poll: %w", err)
	}
	if affected == 0 {
		return ErrPollNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
