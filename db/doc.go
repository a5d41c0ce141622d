// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation and transaction scoping.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

The schema includes:

  - sentiment_poll: Two-sided poll cards with denormalized tallies
  - sentiment_vote: Append-only vote ledger, UNIQUE (poll_id, session_id)
  - player_week_stats: Weekly performance read model (populated externally)

# Relationships

	sentiment_poll 1──* sentiment_vote

The vote foreign key uses ON DELETE CASCADE, so deleting a poll removes
its votes.

# Transactions

WithTx scopes a transaction around a function body:

	err := db.WithTx(conn, func(tx *sql.Tx) error {
		// multi-step write
		return nil
	})

Commit on nil, rollback on error. Vote submission and poll creation both
use this to guarantee their atomicity contracts.
*/
package db
